package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Log       LogConfig       `mapstructure:"log"`
	Tracing   TracingConfig   `mapstructure:"tracing"`
	CORS      CORSConfig      `mapstructure:"cors"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Seed      SeedConfig      `mapstructure:"seed"`
}

type ServerConfig struct {
	Port string
	Mode string
}

// DatabaseConfig SQLite单文件存储，Path是唯一的存储配置项
type DatabaseConfig struct {
	Path string
}

type LogConfig struct {
	Dir string `mapstructure:"dir"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type RateLimitConfig struct {
	MaxRequests   int `mapstructure:"max_requests"`
	WindowMinutes int `mapstructure:"window_minutes"`
}

type TracingConfig struct {
	Enabled           bool   `mapstructure:"enabled"`
	CollectorEndpoint string `mapstructure:"collector_endpoint"`
}

// SeedConfig 空库首次加载时生成的模拟数据量
type SeedConfig struct {
	Enabled bool `mapstructure:"enabled"`
	Count   int  `mapstructure:"count"`
}

func LoadConfig(path string) (*Config, error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("CURSO_FEEDBACK")
	viper.AutomaticEnv()

	// Database
	viper.BindEnv("database.path", "DATABASE_PATH")

	// Server
	viper.BindEnv("server.port", "SERVER_PORT")
	viper.BindEnv("server.mode", "SERVER_MODE")

	// Log
	viper.BindEnv("log.dir", "LOG_DIR")

	// Tracing
	viper.BindEnv("tracing.enabled", "TRACING_ENABLED")
	viper.BindEnv("tracing.collector_endpoint", "TRACING_COLLECTOR_ENDPOINT")

	// 缺省值：没有配置文件时也能以默认参数启动
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.mode", "debug")
	viper.SetDefault("database.path", "feedback.db")
	viper.SetDefault("log.dir", "logs")
	viper.SetDefault("rate_limit.max_requests", 1000)
	viper.SetDefault("rate_limit.window_minutes", 1)
	viper.SetDefault("seed.enabled", true)
	viper.SetDefault("seed.count", 50)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if cfg.Database.Path == "" {
		return nil, fmt.Errorf("database.path must not be empty")
	}
	if cfg.Seed.Count < 0 {
		return nil, fmt.Errorf("seed.count must not be negative, got %d", cfg.Seed.Count)
	}

	return &cfg, nil
}
