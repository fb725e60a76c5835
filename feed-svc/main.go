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

	"hotel-concierge/config"
	httpapi "hotel-concierge/feed-svc/internal/api/http"
	"hotel-concierge/feed-svc/internal/service"
	"hotel-concierge/feed-svc/internal/storage"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadService(config.FeedPort)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := config.NewLogger(cfg.Env, "feed-svc")
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	backend, err := config.InitPostgres(cfg.DB)
	if err != nil {
		logger.Error("Failed to connect to database, feed will report no live data", zap.Error(err))
		backend = config.Unconfigured()
	}
	defer backend.Close()

	store := storage.NewOrderStore(backend)

	var source service.ChangeSource
	switch cfg.Feed.Source {
	case config.FeedSourceKafka:
		reader := config.NewKafkaReader(cfg.Kafka)
		defer reader.Close()
		source = storage.NewKafkaChangeSource(reader, logger)
	default:
		source = storage.NewPostgresChangeSource(backend, cfg.Feed.Channel, cfg.Feed.RegisterTimeout, logger)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	synchronizer := service.NewSynchronizer(store, source, logger)
	sub := synchronizer.Start(ctx, cfg.Feed.Limit)
	defer sub.Stop()

	status := sub.Status()
	logger.Info("Order feed started",
		zap.String("source", cfg.Feed.Source),
		zap.String("state", string(status.State)),
		zap.String("diagnostic", status.Diagnostic))

	handler := httpapi.NewHandler(sub, store, cfg.Feed.Limit)
	server := &http.Server{
		Addr:         cfg.App.Address(),
		Handler:      httpapi.NewRouter(handler, logger),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Feed Service starting", zap.String("address", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	sub.Stop()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Failed to shutdown server gracefully", zap.Error(err))
	}
	logger.Info("Feed Service stopped")
}
