// Package mock provides in-process stand-ins for external infrastructure
// used by the integration suite.
package mock

import (
	"context"
	"sync"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

var redisOnce sync.Once
var redisConn *redis.Client

// NewRedis returns a client backed by an in-process miniredis instance.
// The category registry cache uses it exactly like a real Redis server.
func NewRedis() *redis.Client {
	redisOnce.Do(
		func() {
			redisConn = openRedisConn()
		},
	)

	return redisConn
}

func openRedisConn() *redis.Client {
	server, err := miniredis.Run()
	if err != nil {
		panic(err)
	}

	return redis.NewClient(
		&redis.Options{
			Addr: server.Addr(),
		},
	)
}

// ClearRedis flushes every key so cached registry entries from a previous
// scenario cannot leak into the next one.
func ClearRedis(client *redis.Client) error {
	return client.FlushAll(context.TODO()).Err()
}
