package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hotel-concierge/api-gateway/internal/gateway"
	"hotel-concierge/config"

	"github.com/rs/cors"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadService(config.GatewayPort)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := config.NewLogger(cfg.Env, "api-gateway")
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	gw := gateway.NewGateway(gateway.Config{
		ConciergeSvcURL: cfg.Gateway.ConciergeSvcURL,
		FeedSvcURL:      cfg.Gateway.FeedSvcURL,
	}, &http.Client{Timeout: 30 * time.Second}, logger)

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.App.PublicURL, "*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	server := &http.Server{
		Addr:         cfg.App.Address(),
		Handler:      c.Handler(gw.SetupRoutes()),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 45 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("API Gateway starting",
			zap.String("address", server.Addr),
			zap.String("concierge_svc", cfg.Gateway.ConciergeSvcURL),
			zap.String("feed_svc", cfg.Gateway.FeedSvcURL))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Failed to shutdown server gracefully", zap.Error(err))
	}
}
