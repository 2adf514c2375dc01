// Package config provides types for handling configuration parameters.
package config

import (
	"flag"
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config handles server-related constants and parameters.
type Config struct {
	ServerAddress   string `env:"SERVER_ADDRESS" json:"server_address" yaml:"server_address"`
	BaseURL         string `env:"HOST_URI" json:"base_url" yaml:"base_url"`
	FileStoragePath string `env:"FILE_STORAGE_PATH" json:"file_storage_path" yaml:"file_storage_path"`
	DatabaseDSN     string `env:"DATABASE_DSN" json:"database_dsn" yaml:"database_dsn"`
	RedisAddr       string `env:"REDIS_ADDR" json:"redis_addr" yaml:"redis_addr"`
	AdminUser       string `env:"ADMIN_USER" json:"admin_user" yaml:"admin_user"`
	AdminPass       string `env:"ADMIN_PASS" json:"admin_pass" yaml:"admin_pass"`
	TrustedSubnet   string `env:"TRUSTED_SUBNET" json:"trusted_subnet" yaml:"trusted_subnet"`
	LogLevel        string `env:"LOG_LEVEL" json:"log_level" yaml:"log_level"`
	ConfigPath      string `env:"CONFIG" json:"-" yaml:"-"`
}

// NewDefaultConfiguration returns a configuration holding default values only.
func NewDefaultConfiguration() *Config {
	return &Config{
		ServerAddress: ":8080",
		LogLevel:      "info",
	}
}

// Parse fills the configuration; precedence is flags, then environment, then config file, then defaults.
func (c *Config) Parse(args []string) error {
	fs := flag.NewFlagSet("shortener", flag.ContinueOnError)
	var flagCfg Config
	fs.StringVar(&flagCfg.ServerAddress, "a", "", "Server address")
	fs.StringVar(&flagCfg.BaseURL, "b", "", "Base URL of the resulting short URLs")
	fs.StringVar(&flagCfg.FileStoragePath, "f", "", "File storage path")
	fs.StringVar(&flagCfg.DatabaseDSN, "d", "", "PostgreSQL DSN")
	fs.StringVar(&flagCfg.RedisAddr, "r", "", "Redis address for the lookup cache")
	fs.StringVar(&flagCfg.TrustedSubnet, "t", "", "Trusted subnet for admin endpoints (CIDR)")
	fs.StringVar(&flagCfg.LogLevel, "l", "", "Log level")
	fs.StringVar(&flagCfg.ConfigPath, "c", "", "Configuration file (json or yaml)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := cleanenv.ReadEnv(c); err != nil {
		return fmt.Errorf("reading environment: %w", err)
	}
	if flagCfg.ConfigPath != "" {
		c.ConfigPath = flagCfg.ConfigPath
	}
	if c.ConfigPath != "" {
		// ReadConfig applies the environment on top of the file contents
		if err := cleanenv.ReadConfig(c.ConfigPath, c); err != nil {
			return fmt.Errorf("reading config file %s: %w", c.ConfigPath, err)
		}
	}
	c.override(&flagCfg)
	return nil
}

// override replaces values with the non-empty flag values.
func (c *Config) override(f *Config) {
	assign := func(dst *string, src string) {
		if src != "" {
			*dst = src
		}
	}
	assign(&c.ServerAddress, f.ServerAddress)
	assign(&c.BaseURL, f.BaseURL)
	assign(&c.FileStoragePath, f.FileStoragePath)
	assign(&c.DatabaseDSN, f.DatabaseDSN)
	assign(&c.RedisAddr, f.RedisAddr)
	assign(&c.TrustedSubnet, f.TrustedSubnet)
	assign(&c.LogLevel, f.LogLevel)
}
