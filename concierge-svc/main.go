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

	httpapi "hotel-concierge/concierge-svc/internal/api/http"
	"hotel-concierge/concierge-svc/internal/scraper"
	"hotel-concierge/concierge-svc/internal/service"
	"hotel-concierge/concierge-svc/internal/storage"
	"hotel-concierge/config"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadService(config.ConciergePort)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := config.NewLogger(cfg.Env, "concierge-svc")
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	backend, err := config.InitPostgres(cfg.DB)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer backend.Close()

	repo := storage.NewPostgresRepository(backend)
	if backend.Configured() {
		if err := repo.EnsureSchema(context.Background(), cfg.Feed.Channel); err != nil {
			logger.Fatal("Failed to ensure schema", zap.Error(err))
		}
	} else {
		logger.Warn("DB_HOST is not set; hotel, menu and order endpoints will report the store as unavailable")
	}

	var cache service.ScrapeCache
	rdb, err := config.InitRedis(cfg.Redis)
	if err != nil {
		logger.Warn("Redis unavailable, scrape cache disabled", zap.Error(err))
	} else if rdb != nil {
		defer rdb.Close()
		cache = storage.NewRedisScrapeCache(rdb, cfg.Redis.TTL)
	}

	var publisher service.OrderPublisher
	if writer := config.NewKafkaWriter(cfg.Kafka); writer != nil {
		defer writer.Close()
		publisher = storage.NewKafkaPublisher(writer)
	}

	menuScraper := scraper.New(scraper.Options{
		Timeout:    cfg.Scraper.Timeout,
		NameMaxLen: cfg.Scraper.NameMaxLen,
		MaxItems:   cfg.Scraper.MaxItems,
		UserAgent:  cfg.Scraper.UserAgent,
	})

	scrapeSvc := service.NewScrapeService(menuScraper, cache, logger)
	hotelSvc := service.NewHotelService(repo, repo, scrapeSvc, service.DefaultQRGenerator{}, logger)
	orderSvc := service.NewOrderService(repo, repo, repo, publisher, logger)
	voiceSvc := service.NewVoiceService(repo, repo, orderSvc, service.VoiceSettings{
		AgentID:         cfg.Voice.AgentID,
		LLMWebsocketURL: cfg.Voice.LLMWebsocketURL,
	}, logger)

	handler := httpapi.NewHandler(scrapeSvc, hotelSvc, orderSvc, voiceSvc)
	server := &http.Server{
		Addr:         cfg.App.Address(),
		Handler:      httpapi.NewRouter(handler, logger),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Concierge Service starting", zap.String("address", server.Addr))
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
	logger.Info("Concierge Service stopped")
}
