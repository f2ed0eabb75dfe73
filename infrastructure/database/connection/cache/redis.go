package cache

import (
	"os"
	"sync"

	"github.com/redis/go-redis/v9"
	"idguard.io/infrastructure/logger"
)

type RedisClient struct {
	Client *redis.Client
}

var (
	instance *RedisClient
	once     sync.Once
)

// GetInstance returns the shared redis client, creating it on first use.
func GetInstance() (*RedisClient, error) {
	once.Do(func() {
		opt := &redis.Options{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       0,
			PoolSize: 10,
		}
		instance = &RedisClient{
			Client: redis.NewClient(opt),
		}
		logger.Info("connected to redis successfully")
	})
	return instance, nil
}

func ConnectToCache() {
	GetInstance()
}

func CleanUp() {
	if instance != nil && instance.Client != nil {
		instance.Client.Close()
	}
}
