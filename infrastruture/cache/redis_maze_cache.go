package cache

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/beka-birhanu/eller-maze/service/i"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

const lockSuffix = ":generate_lock"

// RedisMazeCache keeps rendered mazes in Redis with a TTL.
type RedisMazeCache struct {
	client *redis.Client
	locker *redsync.Redsync
	ttl    time.Duration
}

// NewRedisMazeCache initializes a RedisMazeCache with the provided Redis client and TTL.
func NewRedisMazeCache(client *redis.Client, ttlSeconds int) (i.MazeCache, error) {
	if client == nil {
		return nil, errors.New("redis client is required")
	}

	cache := &RedisMazeCache{
		client: client,
		ttl:    time.Duration(ttlSeconds) * time.Second,
	}
	pool := goredis.NewPool(client)
	cache.locker = redsync.New(pool)
	return cache, nil
}

// Fetch returns the lines stored under key.
func (rmc *RedisMazeCache) Fetch(ctx context.Context, key string) ([]string, bool, error) {
	picture, err := rmc.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	return decode(picture), true, nil
}

// Store saves lines under key, expiring after the configured TTL.
func (rmc *RedisMazeCache) Store(ctx context.Context, key string, lines []string) error {
	return rmc.client.Set(ctx, key, encode(lines), rmc.ttl).Err()
}

// Lock takes a distributed lock so a maze is generated once across replicas.
func (rmc *RedisMazeCache) Lock(ctx context.Context, key string) (func(), error) {
	mutex := rmc.locker.NewMutex(key+lockSuffix, redsync.WithExpiry(5*time.Second))
	if err := mutex.LockContext(ctx); err != nil {
		return nil, err
	}

	return func() {
		_, _ = mutex.UnlockContext(context.Background())
	}, nil
}

func encode(lines []string) string {
	return strings.Join(lines, "\n")
}

func decode(picture string) []string {
	if picture == "" {
		return nil
	}
	return strings.Split(picture, "\n")
}
