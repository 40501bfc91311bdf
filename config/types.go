package config

import "time"

// Config mirrors the on-disk TOML config file. Both fields are optional;
// zero values mean "not set".
type Config struct {
	APIKey  string `mapstructure:"api_key" toml:"api_key,omitempty"`
	Timeout int    `mapstructure:"timeout" toml:"timeout,omitempty"`
}

// Resolved is the effective configuration for one command invocation, built
// once at startup and treated as immutable from then on.
type Resolved struct {
	APIKey     string
	APIVersion string
	Timeout    time.Duration
}
