package sortedstorage

import (
	"context"
	"time"

	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

// RedisLocker hands out Redlock mutexes backed by a single Redis client.
type RedisLocker struct {
	locker *redsync.Redsync
	expiry time.Duration
}

// NewRedisLocker creates a RedisLocker whose locks expire after expiry unless released.
func NewRedisLocker(client *redis.Client, expiry time.Duration) *RedisLocker {
	pool := goredis.NewPool(client)
	return &RedisLocker{
		locker: redsync.New(pool),
		expiry: expiry,
	}
}

// Lock acquires the named mutex and returns its release function.
func (l *RedisLocker) Lock(ctx context.Context, name string) (func() error, error) {
	mutex := l.locker.NewMutex(name, redsync.WithExpiry(l.expiry))
	if err := mutex.LockContext(ctx); err != nil {
		return nil, err
	}

	return func() error {
		_, err := mutex.Unlock()
		return err
	}, nil
}
