// Package config provides configuration management for alecviz.
//
// Values are resolved in order: built-in defaults, the config file,
// ALECVIZ_* environment variables, then command-line flags (applied by the
// caller).
//
// Config file locations (priority order):
//  1. $ALECVIZ_CONFIG
//  2. ./alecviz.yaml
//  3. $XDG_CONFIG_HOME/alecviz/config.yaml
//  4. ~/.config/alecviz/config.yaml
//  5. /etc/alecviz/config.yaml
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultAddr      = ":8080"
	defaultDatasetID = "0"
	defaultCacheSize = 128
	defaultShutdown  = 10 * time.Second
	defaultService   = "alecviz"
)

// Load finds and loads the config file, or returns defaults if none found
func Load() (*Config, string, error) {
	path := FindConfigPath()

	if path == "" {
		cfg := DefaultConfig()
		cfg.ApplyEnv()
		return cfg, "", nil
	}

	return LoadFromPath(path)
}

// LoadFromPath loads config from a specific path
func LoadFromPath(path string) (*Config, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("read config: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, path, err
	}
	cfg.ApplyEnv()

	return cfg, path, nil
}

// Parse decodes a YAML document and fills in defaults
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.applyDefaults()
	return cfg, nil
}

// Save writes config to the specified path
func (c *Config) Save(path string) error {
	if err := EnsureConfigDir(path); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0644)
}

// DefaultConfig returns sensible defaults for a new installation
func DefaultConfig() *Config {
	cfg := &Config{
		Data: DataConfig{SampleFallback: true},
	}
	cfg.applyDefaults()
	return cfg
}

// applyDefaults fills in missing values with defaults
func (c *Config) applyDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = defaultAddr
	}
	if c.Server.ShutdownTimeout <= 0 {
		c.Server.ShutdownTimeout = Duration(defaultShutdown)
	}
	if len(c.Server.AllowedOrigins) == 0 {
		c.Server.AllowedOrigins = []string{"*"}
	}
	if c.Data.ID == "" {
		c.Data.ID = defaultDatasetID
	}
	if c.Cache.Size <= 0 {
		c.Cache.Size = defaultCacheSize
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "json"
	}
	if c.Telemetry.ServiceName == "" {
		c.Telemetry.ServiceName = defaultService
	}
	if c.Telemetry.SamplingRatio == 0 {
		c.Telemetry.SamplingRatio = 1
	}
}

// ApplyEnv overrides values from ALECVIZ_* environment variables
func (c *Config) ApplyEnv() {
	setString(&c.Server.Addr, "ALECVIZ_ADDR")
	setString(&c.Data.Dir, "ALECVIZ_DATA_DIR")
	setString(&c.Data.Dataset, "ALECVIZ_DATASET")
	setString(&c.Data.ID, "ALECVIZ_DATASET_ID")
	setBool(&c.Data.Watch, "ALECVIZ_WATCH")
	setString(&c.Database.Path, "ALECVIZ_DB")
	setInt(&c.Cache.Size, "ALECVIZ_CACHE_SIZE")
	setString(&c.Log.Level, "ALECVIZ_LOG_LEVEL")
	setString(&c.Log.Format, "ALECVIZ_LOG_FORMAT")
	setString(&c.Telemetry.Endpoint, "ALECVIZ_OTLP_ENDPOINT")
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setBool(dst *bool, key string) {
	if v, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil && v > 0 {
		*dst = v
	}
}
