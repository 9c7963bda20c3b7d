package config

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"
)

type Config struct {
	Content   ContentConfig   `mapstructure:"content"`
	Review    ReviewConfig    `mapstructure:"review"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Analytics AnalyticsConfig `mapstructure:"analytics"`
	Profile   ProfileConfig   `mapstructure:"profile"`
	Reports   ReportsConfig   `mapstructure:"reports"`
}

type ContentConfig struct {
	CacheDirectory      string `mapstructure:"cache_directory"`
	CacheExpirationDays int    `mapstructure:"cache_expiration_days" validate:"gte=1"`
	ManifestURL         string `mapstructure:"manifest_url" validate:"omitempty,url"`
}

type ReviewConfig struct {
	UpcomingWindowDays int `mapstructure:"upcoming_window_days" validate:"gte=1"`
}

type DatabaseConfig struct {
	Host            string            `mapstructure:"host"`
	Port            int               `mapstructure:"port"`
	Username        string            `mapstructure:"username"`
	Password        string            `mapstructure:"password"`
	Database        string            `mapstructure:"database"`
	TLS             bool              `mapstructure:"tls"`
	Params          map[string]string `mapstructure:"params"`
	MaxOpenConns    int               `mapstructure:"max_open_conns"`
	MaxIdleConns    int               `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int               `mapstructure:"conn_max_lifetime"`
}

type AnalyticsConfig struct {
	Endpoint string `mapstructure:"endpoint" validate:"omitempty,url"`
}

type ProfileConfig struct {
	Path string `mapstructure:"path"`
}

type ReportsConfig struct {
	OutputDirectory string `mapstructure:"output_directory"`
}

func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetConfigType("yaml")

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/kioku")
	}

	v.SetDefault("content.cache_directory", filepath.Join("cache", "content"))
	v.SetDefault("content.cache_expiration_days", 30)
	v.SetDefault("review.upcoming_window_days", 7)
	v.SetDefault("database.host", "127.0.0.1")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.username", "kioku")
	v.SetDefault("database.database", "kioku")
	v.SetDefault("profile.path", filepath.Join("profile", "profile.yml"))
	v.SetDefault("reports.output_directory", "reports")

	// Bind origin and secret config to environment variables only (not from config file)
	if err := v.BindEnv("content.manifest_url", "KIOKU_MANIFEST_URL"); err != nil {
		return nil, fmt.Errorf("failed to bind KIOKU_MANIFEST_URL environment variable: %w", err)
	}
	if err := v.BindEnv("analytics.endpoint", "KIOKU_ANALYTICS_ENDPOINT"); err != nil {
		return nil, fmt.Errorf("failed to bind KIOKU_ANALYTICS_ENDPOINT environment variable: %w", err)
	}
	if err := v.BindEnv("database.password", "KIOKU_DB_PASSWORD"); err != nil {
		return nil, fmt.Errorf("failed to bind KIOKU_DB_PASSWORD environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
