// Package util provides common utilities for wispmon.
package util

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	DataDir  string `mapstructure:"data_dir"`
	LogLevel string `mapstructure:"log_level"`
	LogFile  string `mapstructure:"log_file"`

	// Ingestion API server
	ListenAddr string `mapstructure:"listen_addr"`
	APIToken   string `mapstructure:"api_token"`
	BackupFile string `mapstructure:"backup_file"`

	// Dashboard / client side
	APIBaseURL     string        `mapstructure:"api_base_url"`
	PageSize       int           `mapstructure:"page_size"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

// DefaultConfig returns configuration with sensible defaults.
func DefaultConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	dataDir := filepath.Join(homeDir, ".wispmon")

	return &Config{
		DataDir:  dataDir,
		LogLevel: "info",
		LogFile:  filepath.Join(dataDir, "wispmon.log"),

		ListenAddr: ":8080",
		APIToken:   "",
		BackupFile: filepath.Join(dataDir, "router-data.jsonl"),

		APIBaseURL:     "http://localhost:8080",
		PageSize:       10,
		RequestTimeout: 10 * time.Second,
	}
}

// LoadConfig loads configuration from file and environment.
func LoadConfig() (*Config, error) {
	cfg := DefaultConfig()

	// Ensure config directory exists
	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(cfg.DataDir)
	viper.AddConfigPath(".")

	viper.SetDefault("data_dir", cfg.DataDir)
	viper.SetDefault("log_level", cfg.LogLevel)
	viper.SetDefault("log_file", cfg.LogFile)
	viper.SetDefault("listen_addr", cfg.ListenAddr)
	viper.SetDefault("api_token", cfg.APIToken)
	viper.SetDefault("backup_file", cfg.BackupFile)
	viper.SetDefault("api_base_url", cfg.APIBaseURL)
	viper.SetDefault("page_size", cfg.PageSize)
	viper.SetDefault("request_timeout", cfg.RequestTimeout)

	viper.SetEnvPrefix("wispmon")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.PageSize < 1 {
		cfg.PageSize = 10
	}

	return cfg, nil
}

// EnsureDir ensures a directory exists.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}

// FileExists checks if a file exists.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false
	}
	return !info.IsDir()
}
