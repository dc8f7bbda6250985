// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/go-auction/internal/config"
	"github.com/MKhiriev/go-auction/internal/logger"
	"github.com/MKhiriev/go-auction/models"
	"github.com/redis/go-redis/v9"
)

const winnerKeyPrefix = "auction:winner:"

func winnerKey(itemID int64) string {
	return winnerKeyPrefix + strconv.FormatInt(itemID, 10)
}

// redisWinnerCache stores final [models.WinnerResult] values as JSON strings.
type redisWinnerCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisWinnerCache wraps an existing client. Entries expire after ttl.
func NewRedisWinnerCache(client *redis.Client, ttl time.Duration) WinnerCache {
	return &redisWinnerCache{client: client, ttl: ttl}
}

// NewConnectRedis creates a client for cfg and verifies it with a ping.
func NewConnectRedis(ctx context.Context, cfg config.Cache, log *logger.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddress,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		log.Err(err).Str("func", "NewConnectRedis").Msg("error connecting redis (ping)")
		_ = client.Close()
		return nil, fmt.Errorf("error connecting redis: %w", err)
	}
	log.Info().Str("func", "NewConnectRedis").Msg("connected to redis successfully")

	return client, nil
}

func (c *redisWinnerCache) Get(ctx context.Context, itemID int64) (models.WinnerResult, error) {
	raw, err := c.client.Get(ctx, winnerKey(itemID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return models.WinnerResult{}, ErrCacheMiss
		}
		return models.WinnerResult{}, fmt.Errorf("error reading cached winner: %w", err)
	}

	var result models.WinnerResult
	if err = json.Unmarshal(raw, &result); err != nil {
		return models.WinnerResult{}, fmt.Errorf("error decoding cached winner: %w", err)
	}

	return result, nil
}

// Set caches result. Results that can still change are ignored.
func (c *redisWinnerCache) Set(ctx context.Context, result models.WinnerResult) error {
	if !result.IsFinal() {
		return nil
	}

	raw, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("error encoding winner: %w", err)
	}

	if err = c.client.Set(ctx, winnerKey(result.AuctionID), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("error caching winner: %w", err)
	}

	return nil
}

func (c *redisWinnerCache) Invalidate(ctx context.Context, itemID int64) error {
	if err := c.client.Del(ctx, winnerKey(itemID)).Err(); err != nil {
		return fmt.Errorf("error invalidating cached winner: %w", err)
	}
	return nil
}

// nopWinnerCache is used when no Redis address is configured.
type nopWinnerCache struct{}

// NewNopWinnerCache returns a cache that stores nothing and always misses.
func NewNopWinnerCache() WinnerCache {
	return nopWinnerCache{}
}

func (nopWinnerCache) Get(context.Context, int64) (models.WinnerResult, error) {
	return models.WinnerResult{}, ErrCacheMiss
}

func (nopWinnerCache) Set(context.Context, models.WinnerResult) error { return nil }

func (nopWinnerCache) Invalidate(context.Context, int64) error { return nil }
