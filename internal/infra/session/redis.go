package session

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"exam_results_bot/internal/domain/session"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "results:stream:"

// RedisStore keeps stream choices in Redis; expiry is left to key TTLs.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore parses a redis:// URL and pings the server.
func NewRedisStore(ctx context.Context, url string, ttl time.Duration) (*RedisStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return &RedisStore{client: client, ttl: ttl}, nil
}

func (s *RedisStore) SetStream(ctx context.Context, chatID int64, streamID string) error {
	if err := s.client.Set(ctx, redisKey(chatID), streamID, s.ttl).Err(); err != nil {
		return fmt.Errorf("error storing stream for chat %d: %w", chatID, err)
	}
	return nil
}

func (s *RedisStore) GetStream(ctx context.Context, chatID int64) (string, error) {
	v, err := s.client.Get(ctx, redisKey(chatID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", session.ErrNoStream
	}
	if err != nil {
		return "", fmt.Errorf("error reading stream for chat %d: %w", chatID, err)
	}
	return v, nil
}

// Sweep is a no-op; Redis expires keys itself.
func (s *RedisStore) Sweep(context.Context) (int, error) {
	return 0, nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}

func redisKey(chatID int64) string {
	return redisKeyPrefix + strconv.FormatInt(chatID, 10)
}
