package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Token bucket state lives in a hash so every engine instance drains the same
// bucket. Times are in milliseconds.
var tokenBucketScript = redis.NewScript(`
local key = KEYS[1]
local rate = tonumber(ARGV[1]) / tonumber(ARGV[3])
local burst = tonumber(ARGV[2])
local window = tonumber(ARGV[3])
local now = tonumber(ARGV[4])

local state = redis.call('HMGET', key, 'tokens', 'refilled_at')
local tokens = tonumber(state[1]) or burst
local refilledAt = tonumber(state[2]) or now

tokens = math.min(burst, tokens + math.max(0, now - refilledAt) * rate)

local allowed = 0
local wait = 0
if tokens >= 1 then
	tokens = tokens - 1
	allowed = 1
else
	wait = (1 - tokens) / rate
end

redis.call('HSET', key, 'tokens', tokens, 'refilled_at', now)
redis.call('PEXPIRE', key, window * 2)

return {allowed, math.floor(tokens), math.ceil(wait)}
`)

var fixedWindowScript = redis.NewScript(`
local key = KEYS[1]
local limit = tonumber(ARGV[1])
local window = tonumber(ARGV[2])

local count = redis.call('INCR', key)
if count == 1 then
	redis.call('PEXPIRE', key, window)
end

local ttl = redis.call('PTTL', key)
if count <= limit then
	return {1, limit - count, ttl}
end
return {0, 0, ttl}
`)

type RedisStore struct {
	client redis.UniversalClient
	prefix string
}

type RedisStoreOption func(*RedisStore)

func WithRedisPrefix(prefix string) RedisStoreOption {
	return func(s *RedisStore) {
		s.prefix = prefix
	}
}

func NewRedisStore(client redis.UniversalClient, opts ...RedisStoreOption) *RedisStore {
	s := &RedisStore{client: client, prefix: "settlement:ratelimit"}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *RedisStore) Allow(ctx context.Context, key string, config Config) (Result, error) {
	if s == nil || s.client == nil {
		return Result{}, errors.New("ratelimit: redis store is not initialized")
	}

	windowMs := config.Window.Milliseconds()
	if windowMs <= 0 {
		return Result{}, errors.New("ratelimit: window must be at least one millisecond")
	}

	var (
		script *redis.Script
		args   []any
	)
	switch config.Algorithm {
	case AlgorithmFixedWindow:
		script = fixedWindowScript
		args = []any{config.Limit, windowMs}
	default:
		script = tokenBucketScript
		args = []any{config.Limit, config.Burst, windowMs, time.Now().UnixMilli()}
	}

	values, err := script.Run(ctx, s.client, []string{s.prefix + ":" + key}, args...).Int64Slice()
	if err != nil {
		return Result{}, fmt.Errorf("ratelimit: redis script failed: %w", err)
	}
	if len(values) != 3 {
		return Result{}, fmt.Errorf("ratelimit: unexpected script reply %v", values)
	}

	return decode(config, values[0] == 1, values[1], values[2]), nil
}

// decode maps a script reply onto a Result. For the token bucket the third
// value is the wait for the next token, for the fixed window the window TTL.
func decode(config Config, allowed bool, remaining, waitMs int64) Result {
	wait := time.Duration(waitMs) * time.Millisecond
	result := Result{
		Allowed:   allowed,
		Limit:     config.Limit,
		Remaining: remaining,
		ResetAt:   time.Now().Add(wait),
	}

	if config.Algorithm != AlgorithmFixedWindow {
		result.ResetAt = time.Now().Add(config.Window)
	}
	if !allowed {
		result.RetryAfter = wait
	}
	return result
}

func (s *RedisStore) Reset(ctx context.Context, key string) error {
	if s == nil || s.client == nil {
		return errors.New("ratelimit: redis store is not initialized")
	}
	return s.client.Del(ctx, s.prefix+":"+key).Err()
}

func (s *RedisStore) Close() error {
	if s == nil || s.client == nil {
		return nil
	}
	return s.client.Close()
}
