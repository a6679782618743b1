package mock

import (
	"context"
	"sync"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

var (
	redisOnce   sync.Once
	redisServer *miniredis.Miniredis
	redisClient *redis.Client
)

// NewRedis returns a client for an in-process Redis shared by every scenario.
func NewRedis() *redis.Client {
	redisOnce.Do(func() {
		server, err := miniredis.Run()
		if err != nil {
			panic("failed to start miniredis. err: " + err.Error())
		}
		redisServer = server
		redisClient = redis.NewClient(&redis.Options{Addr: server.Addr()})
	})

	return redisClient
}

// ClearRedis drops every key, including the cached catalog.
func ClearRedis(client redis.UniversalClient) error {
	return client.FlushAll(context.Background()).Err()
}

// RedisKeyTTLSeconds reports the remaining lifetime of key in the shared server.
func RedisKeyTTLSeconds(key string) float64 {
	if redisServer == nil {
		return 0
	}
	return redisServer.TTL(key).Seconds()
}
