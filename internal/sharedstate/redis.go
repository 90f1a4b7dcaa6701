package sharedstate

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v8"
)

// Redis is a cross-process Store backed by a Redis server, generalizing the
// Python original's module-level redis.Redis client
// (original_source/redis_utils.py: rget_json/rset_json/rlock) so more than
// one server process can drive the same puzzle session — the original's
// "await_empty_counter" pattern is what Lock's TTL-bounded mutex replaces.
type Redis struct {
	client *redis.Client
	rs     *redsync.Redsync
}

// NewRedis dials addr/db and wires a redsync pool against the same client.
func NewRedis(addr string, db int) *Redis {
	client := redis.NewClient(&redis.Options{Addr: addr, DB: db})
	pool := goredis.NewPool(client)
	return &Redis{client: client, rs: redsync.New(pool)}
}

func (r *Redis) Get(ctx context.Context, key string) (Session, error) {
	raw, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return Session{}, ErrNotFound
	}
	if err != nil {
		return Session{}, fmt.Errorf("sharedstate: redis get %s: %w", key, err)
	}
	var s Session
	if err := json.Unmarshal(raw, &s); err != nil {
		return Session{}, fmt.Errorf("sharedstate: decode %s: %w", key, err)
	}
	return s, nil
}

func (r *Redis) Set(ctx context.Context, key string, s Session) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("sharedstate: encode %s: %w", key, err)
	}
	if err := r.client.Set(ctx, key, raw, 0).Err(); err != nil {
		return fmt.Errorf("sharedstate: redis set %s: %w", key, err)
	}
	return nil
}

func (r *Redis) Swap(ctx context.Context, key string, fn func(Session) Session) (Session, error) {
	unlock, err := r.Lock(ctx, "lock:"+key, 10*time.Second)
	if err != nil {
		return Session{}, err
	}
	defer unlock(ctx)

	current, err := r.Get(ctx, key)
	if err != nil && err != ErrNotFound {
		return Session{}, err
	}
	updated := fn(current)
	if err := r.Set(ctx, key, updated); err != nil {
		return Session{}, err
	}
	return updated, nil
}

// Lock mirrors original_source/redis_utils.py:rlock, guarding a critical
// section with a redsync distributed mutex instead of the Python redis_lock
// library.
func (r *Redis) Lock(ctx context.Context, key string, ttl time.Duration) (func(context.Context) error, error) {
	mutex := r.rs.NewMutex(key, redsync.WithExpiry(ttl))
	if err := mutex.LockContext(ctx); err != nil {
		return nil, fmt.Errorf("sharedstate: acquire lock %s: %w", key, err)
	}
	return func(ctx context.Context) error {
		if _, err := mutex.UnlockContext(ctx); err != nil {
			return fmt.Errorf("sharedstate: release lock %s: %w", key, err)
		}
		return nil
	}, nil
}
