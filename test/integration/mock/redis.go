package mock

import (
	"context"
	"sync"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

var (
	redisOnce   sync.Once
	redisClient *redis.Client
)

// NewRedis returns a client connected to a process-wide miniredis server.
func NewRedis() *redis.Client {
	redisOnce.Do(func() {
		srv, err := miniredis.Run()
		if err != nil {
			panic("failed to start miniredis: " + err.Error())
		}
		redisClient = redis.NewClient(&redis.Options{Addr: srv.Addr()})
	})
	return redisClient
}

// ClearRedis drops every key held by client.
func ClearRedis(client *redis.Client) error {
	return client.FlushAll(context.Background()).Err()
}
