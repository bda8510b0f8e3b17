package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Config contém todas as configurações da aplicação
type Config struct {
	Env      string `env:"ENV" envDefault:"development"`
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Logging  LoggingConfig
	CORS     CORSConfig
}

type ServerConfig struct {
	Host string `env:"HOST" envDefault:"0.0.0.0"`
	Port string `env:"PORT" envDefault:"8080"`
	// URL base da API para construir URIs RFC 7807
	BaseURL string `env:"API_BASE_URL" envDefault:"http://localhost:8080"`
}

type DatabaseConfig struct {
	Host        string `env:"DB_HOST" envDefault:"localhost"`
	Port        int    `env:"DB_PORT" envDefault:"5432"`
	User        string `env:"DB_USER" envDefault:"postgres"`
	Password    string `env:"DB_PASS"`
	DBName      string `env:"DB_NAME" envDefault:"propfinder"`
	SSLMode     string `env:"DB_SSL_MODE" envDefault:"disable"`
	MaxConns    int    `env:"DB_MAX_CONNS" envDefault:"10"`
	MinConns    int    `env:"DB_MIN_CONNS" envDefault:"2"`
	MaxIdleTime int    `env:"DB_MAX_IDLE_TIME" envDefault:"300"`
}

type JWTConfig struct {
	Secret       string        `env:"JWT_SECRET"`
	AccessExpiry time.Duration `env:"JWT_ACCESS_EXPIRY" envDefault:"24h"`
}

type LoggingConfig struct {
	Level string `env:"LOG_LEVEL" envDefault:"info"`
}

type CORSConfig struct {
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
}

// Load carrega as configurações do ambiente (.env quando presente)
func Load() (*Config, error) {
	// .env é opcional; em produção as variáveis vêm do ambiente
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config from environment: %w", err)
	}

	if cfg.JWT.Secret == "" && cfg.Env == "production" {
		return nil, fmt.Errorf("JWT_SECRET is required in production")
	}

	return cfg, nil
}

// DSN retorna a connection string do PostgreSQL
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}
