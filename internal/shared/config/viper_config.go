package config

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

var _ ConfigProvider = (*viperConfig)(nil)

type viperConfig struct {
	v         *viper.Viper
	source    string
	callbacks []func()
	mu        sync.RWMutex
	stopped   atomic.Bool
}

// Init loads a YAML file, or the .env file when the YAML file is absent.
// Environment variables always win over file values: DATABASE_HOST overrides
// database.host.
func Init(opts Options) (ConfigProvider, error) {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	cfg := &viperConfig{v: v}

	switch {
	case fileExists(opts.YAMLPath):
		v.SetConfigFile(opts.YAMLPath)
		v.SetConfigType("yaml")
		cfg.source = "yaml"
	case fileExists(opts.EnvPath):
		v.SetConfigFile(opts.EnvPath)
		v.SetConfigType("env")
		cfg.source = "env"
	default:
		return nil, fmt.Errorf("config: no config file found (tried %q and %q)", opts.YAMLPath, opts.EnvPath)
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: failed to read %s file: %w", cfg.source, err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("server.port", 8080)

	v.SetDefault("settlement.pool_size", 5)
	v.SetDefault("settlement.batch_size", 20)
	v.SetDefault("settlement.max_retries", 5)
	v.SetDefault("settlement.retry_backoff", 30*time.Second)
	v.SetDefault("settlement.max_retry_backoff", 10*time.Minute)
	v.SetDefault("settlement.claim_ttl", 5*time.Minute)
	v.SetDefault("settlement.broadcast_stuck_after", 10*time.Minute)
	v.SetDefault("settlement.rpc_timeout", 15*time.Second)
	v.SetDefault("settlement.tick_timeout", 2*time.Minute)
	v.SetDefault("settlement.timeout_safety_factor", 3)
	v.SetDefault("settlement.min_poll_interval", time.Second)
	v.SetDefault("settlement.max_poll_interval", 30*time.Second)
	v.SetDefault("settlement.schedule.process", "@every 5s")
	v.SetDefault("settlement.schedule.resume", "@every 1m")
	v.SetDefault("settlement.schedule.recover", "@every 1m")
	v.SetDefault("settlement.schedule.outbox", "@every 10s")
}

func fileExists(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func (c *viperConfig) GetString(key string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.v.GetString(key)
}

func (c *viperConfig) GetInt(key string) int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.v.GetInt(key)
}

func (c *viperConfig) GetInt64(key string) int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.v.GetInt64(key)
}

func (c *viperConfig) GetBool(key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.v.GetBool(key)
}

func (c *viperConfig) GetDuration(key string) time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.v.GetDuration(key)
}

func (c *viperConfig) GetStringMap(key string) map[string]interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.v.GetStringMap(key)
}

func (c *viperConfig) IsSet(key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.v.IsSet(key)
}

func (c *viperConfig) GetSecret(key string) string {
	return strings.TrimSpace(os.ExpandEnv(c.GetString(key)))
}

func (c *viperConfig) Source() string { return c.source }

func (c *viperConfig) OnChange(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.callbacks = append(c.callbacks, fn)
}

func (c *viperConfig) WatchChanges() {
	if c.source != "yaml" {
		return
	}

	c.v.OnConfigChange(func(fsnotify.Event) {
		if c.stopped.Load() {
			return
		}

		c.mu.Lock()
		err := c.v.ReadInConfig()
		cbs := make([]func(), len(c.callbacks))
		copy(cbs, c.callbacks)
		c.mu.Unlock()

		// A half-written file keeps the previous values.
		if err != nil {
			return
		}
		for _, fn := range cbs {
			fn()
		}
	})
	c.v.WatchConfig()
}

func (c *viperConfig) StopWatching() {
	c.stopped.Store(true)
}
