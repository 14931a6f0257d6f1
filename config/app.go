package config

import (
	"github.com/kbukum/golinq/errors"
	"github.com/kbukum/golinq/logger"
	"github.com/kbukum/golinq/validation"
)

// AppConfig is the configuration of the linqctl command.
type AppConfig struct {
	Name        string        `yaml:"name" mapstructure:"name" validate:"required"`
	Environment string        `yaml:"environment" mapstructure:"environment" validate:"oneof=development staging production"`
	Debug       bool          `yaml:"debug" mapstructure:"debug"`
	Logging     logger.Config `yaml:"logging" mapstructure:"logging"`
	Tracing     TracingConfig `yaml:"tracing" mapstructure:"tracing"`
}

// TracingConfig controls OpenTelemetry export of traversal spans and metrics.
type TracingConfig struct {
	Enabled    bool    `yaml:"enabled" mapstructure:"enabled"`
	Endpoint   string  `yaml:"endpoint" mapstructure:"endpoint" validate:"required_if=Enabled true,omitempty,hostname_port"`
	Insecure   bool    `yaml:"insecure" mapstructure:"insecure"`
	SampleRate float64 `yaml:"sample_rate" mapstructure:"sample_rate" validate:"gte=0,lte=1"`
	Metrics    bool    `yaml:"metrics" mapstructure:"metrics"`
}

// ApplyDefaults fills unset fields. Development runs log at debug level
// unless a level is configured.
func (c *AppConfig) ApplyDefaults() {
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.Environment == "development" {
		c.Debug = true
	}
	if c.Logging.ServiceName == "" && c.Name != "" {
		c.Logging.ServiceName = c.Name
	}
	if c.Debug && c.Logging.Level == "" {
		c.Logging.Level = "debug"
	}
	c.Logging.ApplyDefaults()
	c.Tracing.ApplyDefaults()
}

// ApplyDefaults fills the collector address and sampling rate.
func (c *TracingConfig) ApplyDefaults() {
	if !c.Enabled {
		return
	}
	if c.Endpoint == "" {
		c.Endpoint = "localhost:4318"
	}
	if c.SampleRate == 0 {
		c.SampleRate = 1
	}
}

// Validate checks the struct tags and the logging section.
func (c *AppConfig) Validate() error {
	if err := validation.Validate(c); err != nil {
		return errors.InvalidConfig("invalid configuration").WithCause(err)
	}
	if err := c.Logging.Validate(); err != nil {
		return errors.InvalidConfig("invalid logging configuration").WithCause(err)
	}
	return nil
}

// Load reads, defaults and validates the configuration of appName.
func Load(appName string, opts ...LoaderOption) (*AppConfig, error) {
	var cfg AppConfig
	if err := LoadConfig(appName, &cfg, opts...); err != nil {
		return nil, err
	}
	if cfg.Name == "" {
		cfg.Name = appName
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
