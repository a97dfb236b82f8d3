package config

import "time"

// Options selects the files the loader reads.
type Options struct {
	// YAMLPath is the primary config file.
	YAMLPath string

	// EnvPath is read only when YAMLPath does not exist.
	EnvPath string
}

// ConfigProvider is what the engine reads settings through. Safe for
// concurrent use; values may change after a reload.
type ConfigProvider interface {
	GetString(key string) string
	GetInt(key string) int
	GetInt64(key string) int64
	GetBool(key string) bool
	GetDuration(key string) time.Duration
	GetStringMap(key string) map[string]interface{}
	IsSet(key string) bool

	// GetSecret returns the value with ${VAR} references expanded from the
	// process environment. Hot-wallet keys and API keys are read this way.
	GetSecret(key string) string

	// WatchChanges reloads the YAML file when it changes. Non-blocking.
	WatchChanges()

	// OnChange registers a callback run after every successful reload, in
	// registration order.
	OnChange(fn func())

	StopWatching()

	// Source is "yaml" or "env".
	Source() string
}
