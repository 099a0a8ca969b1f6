package config

import (
	"time"

	"alecviz/internal/telemetry"
)

// Config is the root of the configuration file
type Config struct {
	Server    ServerConfig     `yaml:"server"`
	Data      DataConfig       `yaml:"data"`
	Database  DatabaseConfig   `yaml:"database"`
	Cache     CacheConfig      `yaml:"cache"`
	Log       LogConfig        `yaml:"log"`
	Telemetry telemetry.Config `yaml:"telemetry"`
}

// ServerConfig configures the HTTP listener
type ServerConfig struct {
	Addr            string   `yaml:"addr"`
	ShutdownTimeout Duration `yaml:"shutdown_timeout,omitempty"`
	// AllowedOrigins feeds the CORS policy; "*" allows any origin
	AllowedOrigins []string `yaml:"allowed_origins,omitempty"`
}

// DataConfig selects the dataset to serve
type DataConfig struct {
	// Dir is a dataset directory; it takes precedence over Dataset
	Dir string `yaml:"dir,omitempty"`
	// Dataset names a dataset stored in the database
	Dataset string `yaml:"dataset,omitempty"`
	// ID is the identifier the dataset is served under
	ID string `yaml:"id"`
	// Watch reloads Dir when its files change
	Watch bool `yaml:"watch"`
	// SampleFallback serves the embedded sample when loading fails
	SampleFallback bool `yaml:"sample_fallback"`
}

// DatabaseConfig locates the SQLite dataset store
type DatabaseConfig struct {
	Path string `yaml:"path,omitempty"`
}

// CacheConfig sizes the generated graph cache
type CacheConfig struct {
	Size int `yaml:"size"`
}

// LogConfig configures logging
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Duration wraps time.Duration for YAML unmarshaling
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler
func (d *Duration) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// Duration returns the underlying time.Duration
func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}
