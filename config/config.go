package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type SchedulerConfig struct {
	Port                  int
	MaxTimeUnit           int
	RoundRobinTimeQuantum int
	LogLevel              string
	LogFormat             string
}

// Load reads configuration from path, or from ./config.yaml when path is
// empty. A missing ./config.yaml falls back to defaults; an explicit path
// must exist. Environment variables prefixed CPUSCHED_ override file values,
// e.g. CPUSCHED_SCHEDULER_MAX_TIME_UNIT.
func Load(path string) (*SchedulerConfig, error) {
	v := viper.New()
	v.SetDefault("port", 9095)
	v.SetDefault("scheduler.max_time_unit", 500)
	v.SetDefault("scheduler.round_robin.time_quantum", 2)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetEnvPrefix("CPUSCHED")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	config := &SchedulerConfig{
		Port:                  v.GetInt("port"),
		MaxTimeUnit:           v.GetInt("scheduler.max_time_unit"),
		RoundRobinTimeQuantum: v.GetInt("scheduler.round_robin.time_quantum"),
		LogLevel:              v.GetString("log.level"),
		LogFormat:             v.GetString("log.format"),
	}
	if err := config.validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *SchedulerConfig) validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("config: port %d out of range", c.Port)
	}
	if c.MaxTimeUnit < 1 {
		return fmt.Errorf("config: scheduler.max_time_unit must be at least 1, got %d", c.MaxTimeUnit)
	}
	if c.RoundRobinTimeQuantum < 1 {
		return fmt.Errorf("config: scheduler.round_robin.time_quantum must be at least 1, got %d", c.RoundRobinTimeQuantum)
	}
	return nil
}
