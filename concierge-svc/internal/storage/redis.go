package storage

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"hotel-concierge/concierge-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

type RedisScrapeCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisScrapeCache(client *redis.Client, ttl time.Duration) *RedisScrapeCache {
	return &RedisScrapeCache{Client: client, TTL: ttl}
}

func (c *RedisScrapeCache) ScrapeKey(url string) string {
	return "scrape:" + url
}

func (c *RedisScrapeCache) Get(ctx context.Context, url string) (*domain.ScrapeResult, bool, error) {
	payload, err := c.Client.Get(ctx, c.ScrapeKey(url)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var result domain.ScrapeResult
	if err := json.Unmarshal(payload, &result); err != nil {
		return nil, false, err
	}
	return &result, true, nil
}

func (c *RedisScrapeCache) Set(ctx context.Context, url string, result domain.ScrapeResult) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, c.ScrapeKey(url), payload, c.TTL).Err()
}
