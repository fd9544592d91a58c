// Package config provides configuration management for TubeDigest
package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/tubedigest/tubedigest/pkg/errors"
)

// UpstreamConfig configures the client for the summary pipeline
type UpstreamConfig struct {
	BaseURL               string `mapstructure:"base_url" yaml:"base_url" validate:"omitempty,url"`
	APIKey                string `mapstructure:"api_key" yaml:"api_key"`
	UserID                string `mapstructure:"user_id" yaml:"user_id"`
	FlowID                string `mapstructure:"flow_id" yaml:"flow_id"`
	TimeoutSeconds        int    `mapstructure:"timeout_seconds" yaml:"timeout_seconds" validate:"min=1"`
	RetryAttempts         int    `mapstructure:"retry_attempts" yaml:"retry_attempts" validate:"min=1,max=10"`
	PollIntervalSeconds   int    `mapstructure:"poll_interval_seconds" yaml:"poll_interval_seconds" validate:"min=1"`
	PollMaxElapsedSeconds int    `mapstructure:"poll_max_elapsed_seconds" yaml:"poll_max_elapsed_seconds" validate:"min=1"`
}

// ExtractorConfig configures the extraction engine.
// Aliases maps canonical section key to heading variants; entries here merge
// over the built-in alias table. Mojibake maps corrupt byte sequences to
// their intended characters, merged over the built-in correction table.
type ExtractorConfig struct {
	Aliases  map[string][]string `mapstructure:"aliases" yaml:"aliases,omitempty"`
	Mojibake map[string]string   `mapstructure:"mojibake" yaml:"mojibake,omitempty"`
}

// Config is the top-level TubeDigest configuration
type Config struct {
	LogLevel          string          `mapstructure:"log_level" yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`
	APIPort           int             `mapstructure:"api_port" yaml:"api_port" validate:"min=1,max=65535"`
	DatabasePath      string          `mapstructure:"database_path" yaml:"database_path" validate:"required"`
	RedisURL          string          `mapstructure:"redis_url" yaml:"redis_url"`
	ProgressTTLHours  int             `mapstructure:"progress_ttl_hours" yaml:"progress_ttl_hours" validate:"min=1"`
	Upstream          UpstreamConfig  `mapstructure:"upstream" yaml:"upstream"`
	Extractor         ExtractorConfig `mapstructure:"extractor" yaml:"extractor"`

	validate *validator.Validate
}

// Default returns a configuration with sensible defaults
func Default() *Config {
	return &Config{
		LogLevel:         "info",
		APIPort:          8080,
		DatabasePath:     "tubedigest.db",
		ProgressTTLHours: 4,
		Upstream: UpstreamConfig{
			TimeoutSeconds:        90,
			RetryAttempts:         2,
			PollIntervalSeconds:   2,
			PollMaxElapsedSeconds: 300,
		},
		validate: validator.New(),
	}
}

// ConfigManager loads and watches configuration files
type ConfigManager struct {
	viper  *viper.Viper
	config *Config
}

// NewConfigManager creates a config manager with defaults applied
func NewConfigManager() *ConfigManager {
	v := viper.New()
	v.SetEnvPrefix("TUBEDIGEST")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("log_level", "info")
	v.SetDefault("api_port", 8080)
	v.SetDefault("database_path", "tubedigest.db")
	v.SetDefault("progress_ttl_hours", 4)
	v.SetDefault("upstream.timeout_seconds", 90)
	v.SetDefault("upstream.retry_attempts", 2)
	v.SetDefault("upstream.poll_interval_seconds", 2)
	v.SetDefault("upstream.poll_max_elapsed_seconds", 300)

	return &ConfigManager{viper: v}
}

// Load reads configuration from a file and validates it. An empty path loads
// defaults plus environment overrides.
func (cm *ConfigManager) Load(path string) (*Config, error) {
	if path != "" {
		cm.viper.SetConfigFile(path)
		if err := cm.viper.ReadInConfig(); err != nil {
			return nil, errors.NewConfigNotFoundError(path)
		}
	}

	cfg := Default()
	if err := cm.viper.Unmarshal(cfg); err != nil {
		return nil, errors.NewConfigInvalidError(fmt.Sprintf("failed to unmarshal config: %v", err))
	}
	cfg.validate = validator.New()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cm.config = cfg
	return cfg, nil
}

// Watch reloads configuration on file changes. The callback receives the
// freshly validated config; invalid updates are dropped and the previous
// config stays active.
func (cm *ConfigManager) Watch(ctx context.Context, callback func(cfg *Config)) {
	cm.viper.WatchConfig()
	cm.viper.OnConfigChange(func(e fsnotify.Event) {
		cfg := Default()
		if err := cm.viper.Unmarshal(cfg); err != nil {
			return
		}
		cfg.validate = validator.New()
		if err := cfg.Validate(); err != nil {
			return
		}
		cm.config = cfg

		select {
		case <-ctx.Done():
		default:
			callback(cfg)
		}
	})
}

// Validate validates the configuration, including the alias table invariant:
// no alias may appear under two different canonical keys.
func (c *Config) Validate() error {
	if c.validate == nil {
		c.validate = validator.New()
	}
	if err := c.validate.Struct(c); err != nil {
		return errors.NewConfigInvalidError(err.Error())
	}

	return ValidateAliases(c.Extractor.Aliases)
}

// ValidateAliases rejects alias tables where one alias maps to two canonical
// keys. This is a configuration bug and must fail at startup, not parse time.
func ValidateAliases(aliases map[string][]string) error {
	seen := make(map[string]string)
	for canonical, list := range aliases {
		for _, alias := range list {
			key := strings.ToLower(strings.TrimSpace(alias))
			if key == "" {
				continue
			}
			if prev, ok := seen[key]; ok && prev != canonical {
				return errors.NewConfigInvalidError(
					fmt.Sprintf("alias %q is mapped under both %q and %q", alias, prev, canonical))
			}
			seen[key] = canonical
		}
	}
	return nil
}

// ToYAML serializes the configuration to YAML
func (c *Config) ToYAML() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, errors.NewInternalErrorWithCause("failed to marshal config", err)
	}
	return data, nil
}
