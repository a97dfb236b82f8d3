package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/joshuarp/settlement-engine/internal/shared/config"
	sharedratelimit "github.com/joshuarp/settlement-engine/internal/shared/ratelimit"
)

func provideRedisClient(lifecycle fx.Lifecycle, cfg config.ConfigProvider) *redis.Client {
	host := strings.TrimSpace(cfg.GetString("redis.host"))
	if host == "" {
		host = "localhost"
	}

	port := cfg.GetInt("redis.port")
	if port == 0 {
		port = 6379
	}

	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", host, port),
		Password: cfg.GetSecret("redis.password"),
		DB:       cfg.GetInt("redis.db"),
	})
	lifecycle.Append(fx.StopHook(client.Close))
	return client
}

type rateLimitDefaults struct {
	limit  int
	window time.Duration
}

// provideRPCRateLimiter is shared by every engine instance, keyed per chain,
// so the fleet together stays under each provider's quota.
func provideRPCRateLimiter(cfg config.ConfigProvider, redisClient *redis.Client, logger *slog.Logger) (sharedratelimit.Limiter, error) {
	return newScopedRateLimiter(cfg, redisClient, logger, "rpc", rateLimitDefaults{limit: 25, window: time.Second})
}

func provideOpsRateLimiter(cfg config.ConfigProvider, redisClient *redis.Client, logger *slog.Logger) (sharedratelimit.Limiter, error) {
	return newScopedRateLimiter(cfg, redisClient, logger, "ops", rateLimitDefaults{limit: 60, window: time.Minute})
}

func newScopedRateLimiter(cfg config.ConfigProvider, redisClient *redis.Client, logger *slog.Logger, scope string, defaults rateLimitDefaults) (sharedratelimit.Limiter, error) {
	if redisClient == nil {
		return nil, fmt.Errorf("app: redis client is required for %s rate limiter", scope)
	}

	limit := cfg.GetInt(fmt.Sprintf("rate_limit.%s.limit", scope))
	if limit <= 0 {
		limit = defaults.limit
	}

	window := cfg.GetDuration(fmt.Sprintf("rate_limit.%s.window", scope))
	if window <= 0 {
		window = defaults.window
	}

	burst := cfg.GetInt(fmt.Sprintf("rate_limit.%s.burst", scope))
	if burst <= 0 {
		burst = limit
	}

	algorithm := parseRateLimitAlgorithm(cfg.GetString(fmt.Sprintf("rate_limit.%s.algorithm", scope)))
	store := sharedratelimit.NewRedisStore(redisClient, sharedratelimit.WithRedisPrefix("settlement-engine:"+scope))

	return sharedratelimit.New(store, sharedratelimit.Config{
		Algorithm: algorithm,
		Limit:     int64(limit),
		Window:    window,
		Burst:     int64(burst),
		OnLimited: func(_ context.Context, key string, result sharedratelimit.Result) {
			if logger != nil {
				logger.Debug("rate limit exceeded", "scope", scope, "key", key, "limit", result.Limit, "retry_after_ms", result.RetryAfter.Milliseconds())
			}
		},
	})
}

func parseRateLimitAlgorithm(value string) sharedratelimit.Algorithm {
	algorithm, err := sharedratelimit.ParseAlgorithm(value)
	if err != nil {
		return sharedratelimit.AlgorithmTokenBucket
	}
	return algorithm
}
