package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	redisClient "idguard.io/infrastructure/database/connection/cache"
	"idguard.io/infrastructure/logger"
)

var (
	Cache RedisRepository
)

// RedisRepository is the hot tier for attendance dedup markers and the
// recognition counters. Every operation degrades to a miss on failure;
// callers treat redis as advisory, never authoritative.
type RedisRepository struct {
	Client *redis.Client
}

func (redisRepo *RedisRepository) preRequest() {
	if redisRepo.Client == nil {
		client, _ := redisClient.GetInstance()
		redisRepo.Client = client.Client
		logger.Info("redis repository initialisation complete")
	}
}

// CreateEntry stores a value under key for ttl. A zero ttl keeps the key
// until it is deleted.
func (redisRepo *RedisRepository) CreateEntry(key string, payload interface{}, ttl time.Duration) bool {
	redisRepo.preRequest()
	err := redisRepo.Client.Set(context.Background(), key, payload, ttl).Err()
	if err != nil {
		logger.Error("redis SET failed", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		}, logger.LoggerOptions{
			Key:  "key",
			Data: key,
		})
		return false
	}
	return true
}

// FindOne returns the value stored under key, or nil on a miss.
func (redisRepo *RedisRepository) FindOne(key string) *string {
	redisRepo.preRequest()
	result, err := redisRepo.Client.Get(context.Background(), key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.Error("redis GET failed", logger.LoggerOptions{
				Key:  "error",
				Data: err,
			}, logger.LoggerOptions{
				Key:  "key",
				Data: key,
			})
		}
		return nil
	}
	return &result
}

// IncrementField adds amount to a numeric counter key, creating it at zero
// if absent, and returns the new value. Zero means the increment was lost.
func (redisRepo *RedisRepository) IncrementField(key string, amount int64) int64 {
	redisRepo.preRequest()
	result, err := redisRepo.Client.IncrBy(context.Background(), key, amount).Result()
	if err != nil {
		logger.Error("redis INCRBY failed", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		}, logger.LoggerOptions{
			Key:  "key",
			Data: key,
		})
		return 0
	}
	return result
}
