package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

type Redis struct{ C *redis.Client }

func NewRedis(addr string) *Redis {
	return &Redis{C: redis.NewClient(&redis.Options{Addr: addr})}
}

func (r *Redis) Ping(ctx context.Context) error { return r.C.Ping(ctx).Err() }
func (r *Redis) Close() error                   { return r.C.Close() }

// RateLimiter is a fixed-window counter in Redis, one key per caller per
// window. Shared across instances, unlike an in-process bucket map.
type RateLimiter struct {
	rdb    *redis.Client
	limit  int
	window time.Duration
}

func NewRateLimiter(r *Redis, limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{rdb: r.C, limit: limit, window: window}
}

func (rl *RateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	bucket := fmt.Sprintf("rl:%s:%d", key, time.Now().Unix()/int64(rl.window.Seconds()))
	n, err := rl.rdb.Incr(ctx, bucket).Result()
	if err != nil {
		return false, err
	}
	if n == 1 {
		rl.rdb.Expire(ctx, bucket, rl.window)
	}
	return n <= int64(rl.limit), nil
}
