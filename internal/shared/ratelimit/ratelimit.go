// Package ratelimit shares request quotas across engine instances. The
// settlement engine uses it to keep chain RPC traffic under a provider's
// quota and to protect the operator API.
package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

type Algorithm string

const (
	// AlgorithmTokenBucket refills steadily and allows bursts up to Burst.
	AlgorithmTokenBucket Algorithm = "token_bucket"

	// AlgorithmFixedWindow counts requests per window.
	AlgorithmFixedWindow Algorithm = "fixed_window"
)

func ParseAlgorithm(value string) (Algorithm, error) {
	switch Algorithm(strings.ToLower(strings.TrimSpace(value))) {
	case "", AlgorithmTokenBucket:
		return AlgorithmTokenBucket, nil
	case AlgorithmFixedWindow:
		return AlgorithmFixedWindow, nil
	default:
		return "", fmt.Errorf("ratelimit: unknown algorithm %q", value)
	}
}

// Result is the limiter decision for a single request.
type Result struct {
	Allowed    bool
	Limit      int64
	Remaining  int64
	ResetAt    time.Time
	RetryAfter time.Duration
}

type Config struct {
	Algorithm Algorithm
	Limit     int64
	Window    time.Duration

	// Burst is the token bucket capacity. Defaults to Limit.
	Burst int64

	// OnLimited observes rejected requests, e.g. for logging.
	OnLimited func(ctx context.Context, key string, result Result)
}

// Store keeps quota state. Implementations must be safe for concurrent use.
type Store interface {
	Allow(ctx context.Context, key string, config Config) (Result, error)
	Reset(ctx context.Context, key string) error
	Close() error
}

type Limiter interface {
	AllowKey(ctx context.Context, key string) (Result, error)
	ResetKey(ctx context.Context, key string) error
	Close() error
}

type limiter struct {
	store  Store
	config Config
}

func New(store Store, config Config) (Limiter, error) {
	if store == nil {
		return nil, errors.New("ratelimit: store is required")
	}
	if config.Limit <= 0 {
		return nil, errors.New("ratelimit: limit must be positive")
	}
	if config.Window <= 0 {
		return nil, errors.New("ratelimit: window must be positive")
	}

	if config.Algorithm == "" {
		config.Algorithm = AlgorithmTokenBucket
	}
	if config.Burst <= 0 {
		config.Burst = config.Limit
	}

	return &limiter{store: store, config: config}, nil
}

func (l *limiter) AllowKey(ctx context.Context, key string) (Result, error) {
	if strings.TrimSpace(key) == "" {
		return Result{}, errors.New("ratelimit: key is required")
	}

	result, err := l.store.Allow(ctx, key, l.config)
	if err != nil {
		return Result{}, fmt.Errorf("ratelimit: store error: %w", err)
	}

	if !result.Allowed && l.config.OnLimited != nil {
		l.config.OnLimited(ctx, key, result)
	}
	return result, nil
}

func (l *limiter) ResetKey(ctx context.Context, key string) error {
	return l.store.Reset(ctx, key)
}

func (l *limiter) Close() error {
	return l.store.Close()
}

// Key joins non-empty parts with ":".
func Key(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			kept = append(kept, part)
		}
	}
	return strings.Join(kept, ":")
}
