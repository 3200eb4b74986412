package session

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/listener-admin/internal/config"
)

// RedisStore keeps the token in redis so console replicas behind one address
// share the admin session.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to redis using the provided configuration.
func NewRedisStore(cfg config.SessionConfig, logger *zap.Logger) *RedisStore {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		logger.Warn("unable to reach redis", zap.Error(err))
	} else {
		logger.Info("connected to redis")
	}

	return &RedisStore{client: client}
}

// Read returns the persisted token, empty when the key is missing.
func (r *RedisStore) Read(ctx context.Context) (string, error) {
	val, err := r.client.Get(ctx, TokenKey).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

// Write persists the token.
func (r *RedisStore) Write(ctx context.Context, token string) error {
	return r.client.Set(ctx, TokenKey, token, 0).Err()
}

// Delete removes the persisted token.
func (r *RedisStore) Delete(ctx context.Context) error {
	return r.client.Del(ctx, TokenKey).Err()
}

// Close closes the client.
func (r *RedisStore) Close() {
	if r != nil && r.client != nil {
		_ = r.client.Close()
	}
}
