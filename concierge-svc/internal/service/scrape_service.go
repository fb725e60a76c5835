package service

import (
	"context"

	"hotel-concierge/concierge-svc/internal/domain"

	"go.uber.org/zap"
)

type ScrapeService struct {
	scraper MenuScraper
	cache   ScrapeCache
	logger  *zap.Logger
}

// NewScrapeService accepts a nil cache; results are then never cached.
func NewScrapeService(scraper MenuScraper, cache ScrapeCache, logger *zap.Logger) *ScrapeService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScrapeService{scraper: scraper, cache: cache, logger: logger}
}

func (s *ScrapeService) Scrape(ctx context.Context, url string) (domain.ScrapeResult, error) {
	if err := validateInput(domain.ScrapeRequest{URL: url}); err != nil {
		return domain.ScrapeResult{}, err
	}

	if s.cache != nil {
		cached, ok, err := s.cache.Get(ctx, url)
		if err != nil {
			s.logger.Warn("scrape cache read failed", zap.String("url", url), zap.Error(err))
		} else if ok {
			return *cached, nil
		}
	}

	result, err := s.scraper.Scrape(ctx, url)
	if err != nil {
		s.logger.Error("scrape failed", zap.String("url", url), zap.Error(err))
		return domain.ScrapeResult{}, err
	}

	if result.Source == domain.SourceDemoFallback {
		s.logger.Info("scraper found no items, returning demo menu", zap.String("url", url))
		return result, nil
	}

	s.logger.Info("scraped menu", zap.String("url", url), zap.Int("items", len(result.Menu)))
	if s.cache != nil {
		if err := s.cache.Set(ctx, url, result); err != nil {
			s.logger.Warn("scrape cache write failed", zap.String("url", url), zap.Error(err))
		}
	}
	return result, nil
}
