package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	DB     DBConfig
	Server ServerConfig
	Log    LogConfig
	Cache  CacheConfig
	I18n   I18nConfig
	Auth   AuthConfig
	Seeder SeederConfig
}

// DBType represents database type
type DBType string

const (
	DBTypePostgreSQL DBType = "postgres"
	DBTypeMemory     DBType = "memory"
)

// DBConfig holds database configuration
type DBConfig struct {
	Type         DBType
	Host         string
	Port         string
	User         string
	Password     string
	Name         string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
}

// DSN returns the database connection string
func (c DBConfig) DSN() string {
	if c.Type == DBTypeMemory {
		// SQLite in-memory database
		if c.Name != "" && c.Name != "cityportal" {
			return fmt.Sprintf("file:%s?mode=memory&cache=shared", c.Name)
		}
		return "file::memory:?cache=shared"
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode,
	)
}

// IsMemory returns true if using in-memory database
func (c DBConfig) IsMemory() bool {
	return c.Type == DBTypeMemory
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port string
}

// LogConfig holds logger settings
type LogConfig struct {
	Level string
}

// CacheType selects the cache backend
type CacheType string

const (
	CacheTypeRedis  CacheType = "redis"
	CacheTypeMemory CacheType = "memory"
	CacheTypeNone   CacheType = "none"
)

// CacheConfig holds cache backend settings
type CacheConfig struct {
	Type           CacheType
	RedisURL       string
	Prefix         string
	BreakerTimeout time.Duration
}

// MissingTranslationPolicy decides how list and search paths treat rows
// without a translation in the requested language.
type MissingTranslationPolicy string

const (
	// MissingInclude returns such rows with empty translated fields.
	MissingInclude MissingTranslationPolicy = "include"
	// MissingHide drops such rows from lists and search results.
	MissingHide MissingTranslationPolicy = "hide"
)

// I18nConfig holds language settings
type I18nConfig struct {
	DefaultLanguage     string
	SupportedLanguages  []string
	MissingTranslations MissingTranslationPolicy
}

// IsSupported reports whether lang is one of the configured languages
func (c I18nConfig) IsSupported(lang string) bool {
	for _, l := range c.SupportedLanguages {
		if l == lang {
			return true
		}
	}
	return false
}

// AuthConfig holds bearer token settings
type AuthConfig struct {
	JWTSecret string
}

// SeederConfig holds settings for fixture import
type SeederConfig struct {
	FixturesPath string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	_ = godotenv.Load()

	dbType := DBType(getEnv("DB_TYPE", "memory"))
	if dbType != DBTypePostgreSQL && dbType != DBTypeMemory {
		dbType = DBTypeMemory
	}

	cacheType := CacheType(getEnv("CACHE_TYPE", "memory"))
	switch cacheType {
	case CacheTypeRedis, CacheTypeMemory, CacheTypeNone:
	default:
		cacheType = CacheTypeMemory
	}

	policy := MissingTranslationPolicy(getEnv("MISSING_TRANSLATIONS", string(MissingInclude)))
	if policy != MissingInclude && policy != MissingHide {
		policy = MissingInclude
	}

	supported := getEnvAsSlice("SUPPORTED_LANGUAGES")
	if len(supported) == 0 {
		supported = []string{"de", "en", "fr", "it", "es", "ru", "ar", "zh-hans"}
	}

	config := &Config{
		DB: DBConfig{
			Type:         dbType,
			Host:         getEnv("DB_HOST", "localhost"),
			Port:         getEnv("DB_PORT", "5432"),
			User:         getEnv("DB_USER", "cityportal"),
			Password:     getEnv("DB_PASSWORD", "cityportal_password"),
			Name:         getEnv("DB_NAME", "cityportal"),
			SSLMode:      getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns: getEnvAsInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns: getEnvAsInt("DB_MAX_IDLE_CONNS", 5),
		},
		Server: ServerConfig{
			Port: getEnv("APP_PORT", "8080"),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Cache: CacheConfig{
			Type:           cacheType,
			RedisURL:       getEnv("REDIS_URL", ""),
			Prefix:         getEnv("CACHE_PREFIX", "cityportal:"),
			BreakerTimeout: getEnvAsDuration("CACHE_BREAKER_TIMEOUT", 30*time.Second),
		},
		I18n: I18nConfig{
			DefaultLanguage:     getEnv("DEFAULT_LANGUAGE", "de"),
			SupportedLanguages:  supported,
			MissingTranslations: policy,
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("JWT_SECRET", "change-this-secret-in-production"),
		},
		Seeder: SeederConfig{
			FixturesPath: getEnv("SEED_FIXTURES", ""),
		},
	}

	if len(config.I18n.SupportedLanguages) > 8 {
		return nil, fmt.Errorf("at most 8 supported languages allowed, got %d", len(config.I18n.SupportedLanguages))
	}
	if !config.I18n.IsSupported(config.I18n.DefaultLanguage) {
		return nil, fmt.Errorf("default language %q is not in SUPPORTED_LANGUAGES", config.I18n.DefaultLanguage)
	}
	if config.Cache.Type == CacheTypeRedis && config.Cache.RedisURL == "" {
		return nil, fmt.Errorf("REDIS_URL is required when CACHE_TYPE=redis")
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getEnvAsSlice(key string) []string {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	var result []string
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
