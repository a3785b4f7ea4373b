package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"housing/internal/config"
)

const (
	defaultServerAddress = "localhost:8000"
	defaultEnv           = config.EnvLocal
	defaultAPIPrefix     = "/api"
	defaultConfigDir     = ".housing"
	sessionFile          = "session.db"
)

type Config struct {
	Env            string        `mapstructure:"app_env" validate:"required,oneof=local dev prod"`
	ServerAddress  string        `mapstructure:"server_address" validate:"required"`
	EnableTLS      bool          `mapstructure:"enable_tls"`
	APIPrefix      string        `mapstructure:"api_prefix" validate:"required,startswith=/"`
	ConfigDir      string        `mapstructure:"config_dir" validate:"required"`
	SessionPath    string        `mapstructure:"session_path" validate:"required"`
	RequestTimeout time.Duration `mapstructure:"request_timeout_seconds" validate:"gte=0"`
}

// MustLoad загружает конфигурацию клиента из .env, переменных окружения
// и уже прочитанного viper конфиг-файла
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("Ошибка конфигурации: %v", err))
	}
	return cfg
}

func Load() (*Config, error) {
	if _, err := config.LoadEnvFile(".env", "../.env"); err != nil {
		fmt.Printf("Ошибка загрузки .env файла: %v\n", err)
	}

	viper.AutomaticEnv()

	viper.SetDefault("APP_ENV", defaultEnv)
	viper.SetDefault("SERVER_ADDRESS", defaultServerAddress)
	viper.SetDefault("ENABLE_TLS", false)
	viper.SetDefault("API_PREFIX", defaultAPIPrefix)
	viper.SetDefault("CONFIG_DIR", defaultConfigDir)
	viper.SetDefault("REQUEST_TIMEOUT_SECONDS", 0)

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}

	configDir := viper.GetString("CONFIG_DIR")
	if configDir == defaultConfigDir {
		configDir = filepath.Join(homeDir, configDir)
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, fmt.Errorf("create config dir: %w", err)
	}

	cfg := &Config{
		Env:            viper.GetString("APP_ENV"),
		ServerAddress:  viper.GetString("SERVER_ADDRESS"),
		EnableTLS:      viper.GetBool("ENABLE_TLS"),
		APIPrefix:      strings.TrimSuffix(viper.GetString("API_PREFIX"), "/"),
		ConfigDir:      configDir,
		SessionPath:    filepath.Join(configDir, sessionFile),
		RequestTimeout: time.Duration(viper.GetInt("REQUEST_TIMEOUT_SECONDS")) * time.Second,
	}

	if err := config.Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// BaseURL собирает адрес сервера с протоколом
func (c *Config) BaseURL() string {
	if strings.HasPrefix(c.ServerAddress, "http://") || strings.HasPrefix(c.ServerAddress, "https://") {
		return strings.TrimSuffix(c.ServerAddress, "/")
	}

	scheme := "http://"
	if c.EnableTLS {
		scheme = "https://"
	}
	return scheme + strings.TrimSuffix(c.ServerAddress, "/")
}

// IsProd проверяет, prod ли окружение
func (c *Config) IsProd() bool {
	return c.Env == config.EnvProd
}

// IsLocal проверяет, local ли окружение
func (c *Config) IsLocal() bool {
	return c.Env == config.EnvLocal || c.Env == ""
}
