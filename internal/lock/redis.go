// Package lock provides a Redis-backed mutual exclusion lock for unlock cycles.
package lock

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/zlog"
)

// ErrNotHeld is returned by Unlock when this instance does not hold the lock.
var ErrNotHeld = errors.New("lock not held")

// releaseScript deletes the key only if it still holds the caller's token.
const releaseScript = `
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`

// extendScript resets the TTL only if the key still holds the caller's token.
const extendScript = `
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("PEXPIRE", KEYS[1], ARGV[2])
end
return 0
`

type client interface {
	Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
}

// RedisLock is a single-key lease. While held it is renewed every ttl/3, so a cycle
// may outlast the TTL. A holder that dies keeps the lock until the TTL expires.
type RedisLock struct {
	client client
	key    string
	ttl    time.Duration

	mu    sync.Mutex
	token string // empty while not held
	stop  chan struct{}
	done  chan struct{}
}

func NewRedisLock(c client, key string, ttl time.Duration) *RedisLock {
	return &RedisLock{client: c, key: key, ttl: ttl}
}

// TryLock acquires the lock without waiting. It returns false when another holder
// owns it.
func (l *RedisLock) TryLock(ctx context.Context) (bool, error) {
	token := uuid.NewString()

	ok, err := l.client.SetNX(ctx, l.key, token, l.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("set lock %s: %w", l.key, err)
	}
	if !ok {
		return false, nil
	}

	stop, done := make(chan struct{}), make(chan struct{})

	l.mu.Lock()
	l.token = token
	l.stop, l.done = stop, done
	l.mu.Unlock()

	go l.keepAlive(context.WithoutCancel(ctx), token, stop, done)

	return true, nil
}

// keepAlive extends the lease until stop is closed. It gives up when the token is
// gone or Redis fails; the lease then expires on its own.
func (l *RedisLock) keepAlive(ctx context.Context, token string, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	every := l.ttl / 3
	if every <= 0 {
		return
	}

	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			extended, err := l.client.Eval(ctx, extendScript, []string{l.key}, token, l.ttl.Milliseconds()).Int()
			if err != nil {
				zlog.Logger.Warn().Err(err).Str("key", l.key).Msg("failed to extend cycle lock")
				return
			}
			if extended == 0 {
				zlog.Logger.Warn().Str("key", l.key).Msg("cycle lock lost before release")
				return
			}
		}
	}
}

// Unlock releases the lock if it is still held with this instance's token.
func (l *RedisLock) Unlock(ctx context.Context) error {
	l.mu.Lock()
	token, stop, done := l.token, l.stop, l.done
	l.token, l.stop, l.done = "", nil, nil
	l.mu.Unlock()

	if token == "" {
		return ErrNotHeld
	}

	close(stop)
	<-done

	deleted, err := l.client.Eval(ctx, releaseScript, []string{l.key}, token).Int()
	if err != nil {
		return fmt.Errorf("release lock %s: %w", l.key, err)
	}
	if deleted == 0 {
		return ErrNotHeld
	}

	return nil
}
