// Package config loads process configuration from the environment once
// at startup. The resulting Config is immutable and passed by reference.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

// DSN builds the go-sql-driver connection string. parseTime is required
// so DATETIME columns scan into time.Time.
func (d DBConfig) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true", d.User, d.Password, d.Host, d.Port, d.Name)
}

type Config struct {
	HTTPAddr       string
	DB             DBConfig
	JWTSecret      []byte
	TokenTTL       time.Duration
	RequestTimeout time.Duration
	SecureCookies  bool
}

// Load reads configuration from the environment. The JWT secret has no
// default: refusing to start beats shipping a hardcoded signing key.
func Load() (*Config, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET must be set")
	}

	ttlMinutes, err := envInt("TOKEN_TTL_MINUTES", 60)
	if err != nil {
		return nil, err
	}
	timeoutSeconds, err := envInt("REQUEST_TIMEOUT_SECONDS", 5)
	if err != nil {
		return nil, err
	}

	return &Config{
		HTTPAddr: envOr("HTTP_ADDR", ":8080"),
		DB: DBConfig{
			Host:     envOr("DB_HOST", "127.0.0.1"),
			Port:     envOr("DB_PORT", "3306"),
			User:     envOr("DB_USER", "root"),
			Password: os.Getenv("DB_PASS"),
			Name:     envOr("DB_NAME", "qa"),
		},
		JWTSecret:      []byte(secret),
		TokenTTL:       time.Duration(ttlMinutes) * time.Minute,
		RequestTimeout: time.Duration(timeoutSeconds) * time.Second,
		SecureCookies:  os.Getenv("SECURE_COOKIES") == "true",
	}, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %v", key, err)
	}
	return n, nil
}
