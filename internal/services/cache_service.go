package services

import (
	"context"
	"encoding/json"
	"fmt"
	"landmark-explorer/internal/config"
	"landmark-explorer/internal/models"
	"landmark-explorer/internal/pkg/errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	FavoriteChannel      = "landmarks:favorites"
	lastChangeKeyPattern = "landmarks:favorites:last:%d"
)

// RedisChangePublisher fans favorite changes out over Redis pub/sub and keeps
// the latest change per landmark for late subscribers.
type RedisChangePublisher struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisChangePublisher(cfg *config.CacheConfig) (*RedisChangePublisher, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx := context.Background()
	_, err := client.Ping(ctx).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %v", err)
	}

	return &RedisChangePublisher{client: client, ttl: cfg.DefaultTTL}, nil
}

func LastChangeKey(landmarkID int) string {
	return fmt.Sprintf(lastChangeKeyPattern, landmarkID)
}

func (c *RedisChangePublisher) PublishFavoriteChange(ctx context.Context, change models.FavoriteChange) error {
	jsonData, err := json.Marshal(change)
	if err != nil {
		return fmt.Errorf("failed to marshal change: %v", err)
	}

	if err := c.client.Set(ctx, LastChangeKey(change.Landmark.ID), jsonData, c.ttl).Err(); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrCacheError, err)
	}
	if err := c.client.Publish(ctx, FavoriteChannel, jsonData).Err(); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrCacheError, err)
	}
	return nil
}

// LastChange returns the most recent change stored for a landmark.
func (c *RedisChangePublisher) LastChange(ctx context.Context, landmarkID int) (*models.FavoriteChange, error) {
	data, err := c.client.Get(ctx, LastChangeKey(landmarkID)).Bytes()
	if err == redis.Nil {
		return nil, fmt.Errorf("last change for landmark %d: %w", landmarkID, errors.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrCacheError, err)
	}

	var change models.FavoriteChange
	if err := json.Unmarshal(data, &change); err != nil {
		return nil, fmt.Errorf("%w: decode last change: %v", errors.ErrCacheError, err)
	}
	return &change, nil
}

func (c *RedisChangePublisher) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisChangePublisher) Close() error {
	return c.client.Close()
}
