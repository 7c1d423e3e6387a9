// Package config loads server configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Cache    CacheConfig
	Auth     AuthConfig
	Log      LogConfig
	Engine   EngineConfig
}

type ServerConfig struct {
	Port        string
	CORSOrigins []string
}

// DatabaseConfig holds PostgreSQL settings. An empty Host keeps quizzes in
// memory.
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// CacheConfig holds Redis settings. An empty URL disables the quiz cache.
type CacheConfig struct {
	URL string
	TTL time.Duration
}

// AuthConfig holds bearer token settings. An empty secret leaves the API open.
type AuthConfig struct {
	JWTSecret string
}

type LogConfig struct {
	Mode string // "dev" or "prod"
}

type EngineConfig struct {
	TuningFile   string
	MaxTextBytes int
}

func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:        envStr("PORT", "8080"),
			CORSOrigins: envList("CORS_ORIGINS", []string{"*"}),
		},
		Database: DatabaseConfig{
			Host:     envStr("DB_HOST", ""),
			Port:     envStr("DB_PORT", "5432"),
			User:     envStr("DB_USER", "quiz_user"),
			Password: envStr("DB_PASSWORD", "quiz_password"),
			Name:     envStr("DB_NAME", "quizforge"),
			SSLMode:  envStr("DB_SSLMODE", "disable"),
		},
		Cache: CacheConfig{
			URL: envStr("REDIS_URL", ""),
			TTL: time.Duration(envInt("CACHE_TTL_MINUTES", 60)) * time.Minute,
		},
		Auth: AuthConfig{
			JWTSecret: envStr("JWT_SECRET", ""),
		},
		Log: LogConfig{
			Mode: envStr("LOG_MODE", "prod"),
		},
		Engine: EngineConfig{
			TuningFile:   envStr("TUNING_FILE", ""),
			MaxTextBytes: envInt("MAX_TEXT_BYTES", 512*1024),
		},
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if _, err := strconv.Atoi(c.Server.Port); err != nil {
		return fmt.Errorf("PORT must be numeric, got %q", c.Server.Port)
	}
	if c.Log.Mode != "dev" && c.Log.Mode != "prod" {
		return fmt.Errorf("LOG_MODE must be 'dev' or 'prod', got %q", c.Log.Mode)
	}
	if c.Engine.MaxTextBytes < 1024 {
		return fmt.Errorf("MAX_TEXT_BYTES must be at least 1024, got %d", c.Engine.MaxTextBytes)
	}
	if c.Cache.URL != "" && c.Cache.TTL <= 0 {
		return fmt.Errorf("CACHE_TTL_MINUTES must be positive when REDIS_URL is set")
	}
	if c.Auth.JWTSecret != "" && len(c.Auth.JWTSecret) < 16 {
		return fmt.Errorf("JWT_SECRET must be at least 16 characters")
	}
	return nil
}

// DSN is the lib/pq connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode,
	)
}

func (d DatabaseConfig) Enabled() bool {
	return d.Host != ""
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func envList(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
