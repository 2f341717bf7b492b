package redisprovider

import (
	"context"
	"fmt"
	"time"

	"inventaris/providers"

	"github.com/redis/go-redis/v9"
)

type RedisCacheProvider struct {
	client *redis.Client
}

func NewRedisProvider(addr string) providers.CacheProvider {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   0,
	})

	return &RedisCacheProvider{
		client: rdb,
	}
}

func (r *RedisCacheProvider) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return r.client.Set(ctx, key, value, expiration).Err()
}

func (r *RedisCacheProvider) Get(ctx context.Context, key string) (string, error) {
	return r.client.Get(ctx, key).Result()
}

func (r *RedisCacheProvider) Del(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}

func (r *RedisCacheProvider) Ping(ctx context.Context) error {
	pong, err := r.client.Ping(ctx).Result()
	if err != nil {
		return err
	}
	fmt.Println("Redis Ping:", pong)
	return nil
}

func (r *RedisCacheProvider) Close() error {
	return r.client.Close()
}
