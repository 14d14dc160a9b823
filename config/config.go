package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig
	Logger      LoggerConfig

	// Routing pipeline
	Pipeline  PipelineConfig
	Session   SessionConfig
	RateGuard RateGuardConfig
}

type EnvironmentConfig struct {
	Name string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// PipelineConfig tunes classification and routing.
type PipelineConfig struct {
	MaxContextTokens int
	StabilizerLevel  string // off | light | medium
}

// SessionConfig bounds the conversation-context store.
type SessionConfig struct {
	MaxEntries int
	TTL        time.Duration
	MaxTurns   int
}

// RateGuardConfig tunes the per-session flood guard.
type RateGuardConfig struct {
	Enabled     bool
	PerMin      int
	Burst       int
	MaxSessions int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	cfg.Pipeline.MaxContextTokens = viper.GetInt("pipeline.max_context_tokens")
	cfg.Pipeline.StabilizerLevel = viper.GetString("pipeline.stabilizer_level")
	switch cfg.Pipeline.StabilizerLevel {
	case "off", "light", "medium":
	default:
		return nil, fmt.Errorf("invalid pipeline.stabilizer_level %q (want off|light|medium)", cfg.Pipeline.StabilizerLevel)
	}

	cfg.Session.MaxEntries = viper.GetInt("session.max_entries")
	cfg.Session.MaxTurns = viper.GetInt("session.max_turns")
	ttl, err := time.ParseDuration(viper.GetString("session.ttl"))
	if err != nil {
		return nil, fmt.Errorf("invalid session.ttl: %w", err)
	}
	cfg.Session.TTL = ttl

	cfg.RateGuard.Enabled = viper.GetBool("rate_guard.enabled")
	cfg.RateGuard.PerMin = viper.GetInt("rate_guard.per_min")
	cfg.RateGuard.Burst = viper.GetInt("rate_guard.burst")
	cfg.RateGuard.MaxSessions = viper.GetInt("rate_guard.max_sessions")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")

	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.mode", "development")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("pipeline.max_context_tokens", 4096)
	viper.SetDefault("pipeline.stabilizer_level", "light")

	viper.SetDefault("session.max_entries", 10000)
	viper.SetDefault("session.ttl", "24h")
	viper.SetDefault("session.max_turns", 50)

	viper.SetDefault("rate_guard.enabled", true)
	viper.SetDefault("rate_guard.per_min", 30)
	viper.SetDefault("rate_guard.burst", 10)
	viper.SetDefault("rate_guard.max_sessions", 10000)
}
