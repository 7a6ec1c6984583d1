package rewards

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	config "github.com/glkeru/loyalty/rewards/internal/config"
	models "github.com/glkeru/loyalty/rewards/internal/models"
	redis "github.com/redis/go-redis/v9"
)

const (
	tiersKey = "rewards:tiers"
	tiersTTL = 5 * time.Minute
)

// Кэш отсортированной таблицы уровней
type CacheService struct {
	client *redis.Client
}

func NewCacheService(ctx context.Context, cfg config.CacheConfig) (serv *CacheService, err error) {
	if cfg.Addr == "" {
		return nil, fmt.Errorf("env REWARDS_CACHE_URL is not set")
	}
	db := redis.NewClient(&redis.Options{
		Addr:        cfg.Addr,
		Username:    cfg.User,
		Password:    cfg.Password,
		DB:          0,
		MaxRetries:  5,
		DialTimeout: 10 * time.Second,
	})
	err = db.Ping(ctx).Err()
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return NewCacheServiceWithClient(db), nil
}

func NewCacheServiceWithClient(client *redis.Client) *CacheService {
	return &CacheService{client}
}

func (c *CacheService) GetTiers(ctx context.Context) ([]models.Tier, error) {
	val, err := c.client.Get(ctx, tiersKey).Bytes()
	if err == redis.Nil {
		return nil, fmt.Errorf("tiers %w", models.ErrNotFound)
	} else if err != nil {
		return nil, err
	}

	var tiers []models.Tier
	err = json.Unmarshal(val, &tiers)
	if err != nil {
		return nil, err
	}
	return tiers, nil
}

func (c *CacheService) SetTiers(ctx context.Context, tiers []models.Tier) error {
	val, err := json.Marshal(tiers)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, tiersKey, val, tiersTTL).Err()
}

func (c *CacheService) InvalidateTiers(ctx context.Context) error {
	return c.client.Del(ctx, tiersKey).Err()
}

func (c *CacheService) Close() error {
	return c.client.Close()
}
