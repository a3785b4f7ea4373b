package config

import (
	"fmt"
	"log"

	"github.com/spf13/viper"

	"housing/internal/config"
)

const (
	defaultListenAddress = ":5173"
	defaultTarget        = "http://localhost:8000"
)

type Config struct {
	Env    string `validate:"required,oneof=local dev prod"`
	Server server
	Proxy  proxy
}

type server struct {
	ListenAddress string `validate:"required"`
}

type proxy struct {
	Target             string `validate:"required,url"`
	ChangeOrigin       bool
	InsecureSkipVerify bool
}

// MustLoad читает конфигурацию прокси из .env и окружения
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("Ошибка конфигурации: %v", err))
	}
	return cfg
}

func Load() (*Config, error) {
	if loaded, err := config.LoadEnvFile(".env", "../../.env"); err != nil {
		log.Println("Ошибка загрузки .env файла:", err)
	} else if loaded == "" {
		log.Println("No .env file found, relying on environment variables")
	}

	viper.AutomaticEnv()
	viper.SetDefault("APP_ENV", config.EnvLocal)
	viper.SetDefault("PROXY_LISTEN_ADDRESS", defaultListenAddress)
	viper.SetDefault("PROXY_TARGET", defaultTarget)
	viper.SetDefault("PROXY_CHANGE_ORIGIN", true)
	viper.SetDefault("PROXY_INSECURE_SKIP_VERIFY", true)

	cfg := &Config{
		Env:    viper.GetString("app_env"),
		Server: server{ListenAddress: viper.GetString("proxy_listen_address")},
		Proxy: proxy{
			Target:             viper.GetString("proxy_target"),
			ChangeOrigin:       viper.GetBool("proxy_change_origin"),
			InsecureSkipVerify: viper.GetBool("proxy_insecure_skip_verify"),
		},
	}

	if err := config.Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
