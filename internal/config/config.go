// Package config загружает конфигурацию сервиса из окружения.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envFile = ".env"

// Load читает .env (если есть), переменные окружения и значения по умолчанию.
// Переменные окружения имеют приоритет над .env.
func Load() (*Config, error) {
	if envMap, err := godotenv.Read(envFile); err == nil {
		for k, val := range envMap {
			if _, exists := os.LookupEnv(k); !exists {
				_ = os.Setenv(k, val)
			}
		}
	}

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)
	bindEnvs(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.shutdown_timeout", 5*time.Second)

	v.SetDefault("http.request_timeout", 5*time.Second)
	v.SetDefault("http.cors_origins", []string{"*"})

	v.SetDefault("postgres.max_conns", 10)
	v.SetDefault("postgres.min_conns", 2)
	v.SetDefault("postgres.migrate_timeout", 30*time.Second)

	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.member_ttl", 30*time.Second)

	v.SetDefault("auth.token_ttl", 24*time.Hour)

	v.SetDefault("view.fetch_wait", 150*time.Millisecond)
}

func bindEnvs(v *viper.Viper) {
	keys := []string{
		"logging.level",
		"server.host",
		"server.port",
		"server.shutdown_timeout",
		"http.request_timeout",
		"http.cors_origins",
		"postgres.dsn",
		"postgres.max_conns",
		"postgres.min_conns",
		"postgres.migrate_timeout",
		"redis.addr",
		"redis.password",
		"redis.db",
		"redis.member_ttl",
		"auth.jwt_secret",
		"auth.token_ttl",
		"view.fetch_wait",
	}

	for _, k := range keys {
		_ = v.BindEnv(k)
	}
}
