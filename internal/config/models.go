package config

import (
	"errors"
	"fmt"
	"time"
)

// Config хранит конфигурацию сервиса.
type Config struct {
	Logging  LoggingConfig  `mapstructure:"logging"`
	Server   ServerConfig   `mapstructure:"server"`
	HTTP     HTTPConfig     `mapstructure:"http"`
	Postgres PostgresConfig `mapstructure:"postgres"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Auth     AuthConfig     `mapstructure:"auth"`
	View     ViewConfig     `mapstructure:"view"`
}

// Validate проверяет обязательные поля.
func (c Config) Validate() error {
	if c.Server.Port == 0 {
		return errors.New("server.port is required")
	}
	if c.Postgres.DSN == "" {
		return errors.New("postgres.dsn is required")
	}
	if c.Auth.JWTSecret == "" {
		return errors.New("auth.jwt_secret is required")
	}
	return nil
}

// ServerAddr возвращает host:port для HTTP-сервера.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type HTTPConfig struct {
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	CORSOrigins    []string      `mapstructure:"cors_origins"`
}

type PostgresConfig struct {
	DSN            string        `mapstructure:"dsn"`
	MaxConns       int32         `mapstructure:"max_conns"`
	MinConns       int32         `mapstructure:"min_conns"`
	MigrateTimeout time.Duration `mapstructure:"migrate_timeout"`
}

// RedisConfig: пустой Addr отключает кэш членства.
type RedisConfig struct {
	Addr      string        `mapstructure:"addr"`
	Password  string        `mapstructure:"password"`
	DB        int           `mapstructure:"db"`
	MemberTTL time.Duration `mapstructure:"member_ttl"`
}

type AuthConfig struct {
	JWTSecret string        `mapstructure:"jwt_secret"`
	TokenTTL  time.Duration `mapstructure:"token_ttl"`
}

// ViewConfig: FetchWait ограничивает ожидание данных при серверной отрисовке страницы.
type ViewConfig struct {
	FetchWait time.Duration `mapstructure:"fetch_wait"`
}
