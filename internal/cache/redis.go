package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Domenick1991/homestay/config"
	"github.com/Domenick1991/homestay/internal/domain"
	"github.com/redis/go-redis/v9"
)

// RedisCache holds the listing-summary page used by list views. It is a
// pure read-through cache; writers must call InvalidateListings.
type RedisCache struct {
	client      *redis.Client
	listingsTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, listingsTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:      redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		listingsTTL: listingsTTL,
	}
}

func (c *RedisCache) GetListings(ctx context.Context) ([]domain.ListingSummary, error) {
	data, err := c.client.Get(ctx, listingsKey()).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var summaries []domain.ListingSummary
	if err := json.Unmarshal(data, &summaries); err != nil {
		return nil, err
	}
	return summaries, nil
}

func (c *RedisCache) SetListings(ctx context.Context, summaries []domain.ListingSummary) error {
	payload, err := json.Marshal(summaries)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, listingsKey(), payload, c.listingsTTL).Err()
}

func (c *RedisCache) InvalidateListings(ctx context.Context) error {
	return c.client.Del(ctx, listingsKey()).Err()
}

func listingsKey() string {
	return "cache:listings"
}
