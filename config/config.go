// Package config resolves the API key, version header, and request timeout
// for one CLI invocation. The precedence order is fixed: --api-key flag,
// then NOTION_API_KEY, then the config file, then a .env file kept for
// backward compatibility. Exactly one source wins; nothing is merged.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	appDirName = "notion-cli"
	fileName   = "config.toml"

	envAPIKey     = "NOTION_API_KEY"
	envAPIVersion = "NOTION_API_VERSION"

	defaultAPIVersion = "2025-09-03"

	// DefaultTimeoutSeconds is the request timeout when neither the flag nor
	// the config file sets one.
	DefaultTimeoutSeconds = 30
)

// MissingKeyError indicates no API key was found through any source. Its
// message walks the operator through every way to supply one.
type MissingKeyError struct {
	ConfigPath string
}

// Error implements the error interface
func (e *MissingKeyError) Error() string {
	return fmt.Sprintf(`Notion API key not found.

Set it using one of these methods:
1. Run: notion init
2. Set env: export %s=secret_xxx
3. Add to %s: api_key = "secret_xxx"
4. Use --api-key option`, envAPIKey, e.ConfigPath)
}

// Path returns the per-user config file location,
// e.g. ~/.config/notion-cli/config.toml on Linux.
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("could not determine config directory: %w", err)
	}
	return filepath.Join(dir, appDirName, fileName), nil
}

// Load reads the TOML config file at path. A missing or unparseable file
// yields the zero Config: the file is one optional source among several,
// and a broken one must not block the command from finding a key elsewhere.
func Load(path string) Config {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")

	var cfg Config
	if err := v.ReadInConfig(); err != nil {
		return Config{}
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}
	}
	return cfg
}

// Save writes cfg to path, creating the directory if needed. The file is
// written 0600 since it holds a credential.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// APIVersion returns the Notion-Version header value, overridable via the
// NOTION_API_VERSION environment variable.
func APIVersion() string {
	if v := os.Getenv(envAPIVersion); v != "" {
		return v
	}
	return defaultAPIVersion
}

// Resolve builds the effective configuration for this invocation.
// flagKey is the --api-key value ("" when not given); flagTimeout and
// timeoutSet carry the --timeout flag and whether the operator set it
// explicitly, which decides whether it beats the config file.
func Resolve(flagKey string, flagTimeout int, timeoutSet bool, path string) (Resolved, error) {
	cfg := Load(path)

	key, err := resolveKey(flagKey, cfg, path)
	if err != nil {
		return Resolved{}, err
	}

	timeout := DefaultTimeoutSeconds
	switch {
	case timeoutSet:
		timeout = flagTimeout
	case cfg.Timeout > 0:
		timeout = cfg.Timeout
	}

	return Resolved{
		APIKey:     key,
		APIVersion: APIVersion(),
		Timeout:    time.Duration(timeout) * time.Second,
	}, nil
}

func resolveKey(flagKey string, cfg Config, path string) (string, error) {
	if flagKey != "" {
		return flagKey, nil
	}

	if key := os.Getenv(envAPIKey); key != "" {
		return key, nil
	}

	if cfg.APIKey != "" {
		return cfg.APIKey, nil
	}

	// .env fallback kept for installations predating the config file.
	if err := godotenv.Load(); err == nil {
		if key := os.Getenv(envAPIKey); key != "" {
			return key, nil
		}
	}

	return "", &MissingKeyError{ConfigPath: path}
}
