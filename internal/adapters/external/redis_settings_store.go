package external

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"localweather.app/internal/config"
	"localweather.app/pkg/errors"
)

const redisSettingsPrefix = "settings:"

// RedisSettingsStore implements SettingsStore port using Redis
type RedisSettingsStore struct {
	client *redis.Client
}

// NewRedisSettingsStore creates a new Redis settings store
func NewRedisSettingsStore(config *config.RedisConfig) (*RedisSettingsStore, error) {
	if config == nil {
		return nil, errors.NewConfigurationError("redis config cannot be nil", nil)
	}

	client := redis.NewClient(&redis.Options{
		Addr:         config.Addr,
		Password:     config.Password,
		DB:           config.DB,
		DialTimeout:  time.Duration(config.DialTimeout) * time.Second,
		ReadTimeout:  time.Duration(config.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(config.WriteTimeout) * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.NewStorageError("failed to connect to Redis", err)
	}

	return &RedisSettingsStore{
		client: client,
	}, nil
}

// GetString returns the stored value for key, or def when the key is absent
func (r *RedisSettingsStore) GetString(ctx context.Context, key, def string) (string, error) {
	if key == "" {
		return def, errors.NewValidationError("settings key cannot be empty")
	}

	val, err := r.client.Get(ctx, redisSettingsPrefix+key).Result()
	if err != nil {
		if err == redis.Nil {
			return def, nil
		}
		return def, errors.NewStorageError("redis get operation failed", err)
	}

	return val, nil
}

// SetString stores value under key without expiry
func (r *RedisSettingsStore) SetString(ctx context.Context, key, value string) error {
	if key == "" {
		return errors.NewValidationError("settings key cannot be empty")
	}

	if err := r.client.Set(ctx, redisSettingsPrefix+key, value, 0).Err(); err != nil {
		return errors.NewStorageError("redis set operation failed", err)
	}

	return nil
}

// Ping checks if Redis connection is alive
func (r *RedisSettingsStore) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return errors.NewStorageError("Redis ping failed", err)
	}
	return nil
}

// Close closes the Redis client connection
func (r *RedisSettingsStore) Close() error {
	if err := r.client.Close(); err != nil {
		return errors.NewStorageError("failed to close Redis connection", err)
	}
	return nil
}
