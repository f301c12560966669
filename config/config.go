package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the server needs at startup.
type Config struct {
	Port        string
	Environment string
	DB          DBConfig
	JWT         JWTConfig
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type JWTConfig struct {
	Secret    []byte
	ExpiresIn time.Duration
}

// DSN builds the postgres connection string.
func (c DBConfig) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.Host, c.User, c.Password, c.Name, c.Port, c.SSLMode,
	)
}

// Load reads .env (if present) and the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading it")
	}

	expires, err := parseExpiresDay(getEnv("JWT_EXPIRES_DAY", "30d"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENV", "development"),
		DB: DBConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     os.Getenv("DB_NAME"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		JWT: JWTConfig{
			Secret:    []byte(os.Getenv("JWT_SECRET")),
			ExpiresIn: expires,
		},
	}

	if len(cfg.JWT.Secret) == 0 {
		return nil, fmt.Errorf("JWT_SECRET is required but not set")
	}
	if cfg.DB.User == "" || cfg.DB.Name == "" {
		return nil, fmt.Errorf("DB_USER and DB_NAME are required but not set")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// parseExpiresDay accepts "30d" or "30" and returns the duration in days.
func parseExpiresDay(raw string) (time.Duration, error) {
	days, err := strconv.Atoi(strings.TrimSuffix(strings.TrimSpace(raw), "d"))
	if err != nil || days <= 0 {
		return 0, fmt.Errorf("invalid JWT_EXPIRES_DAY %q", raw)
	}
	return time.Duration(days) * 24 * time.Hour, nil
}
