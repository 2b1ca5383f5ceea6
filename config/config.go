// Package config provides application configuration management.
// It loads configuration from environment variables with sensible defaults.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Advisor   AdvisorConfig
	Scheduler SchedulerConfig
	RateLimit RateLimitConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Environment  string
}

// DatabaseConfig holds database configuration.
type DatabaseConfig struct {
	Driver          string // postgres or sqlite
	URL             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// RedisConfig holds Redis configuration. An empty URL disables Redis.
type RedisConfig struct {
	URL      string
	Password string
	DB       int
}

// AdvisorConfig holds the language-model provider configuration.
type AdvisorConfig struct {
	Provider    string // huggingface or gemini
	HFToken     string
	HFEndpoint  string
	HFModel     string
	GeminiKey   string
	GeminiModel string
	Timeout     time.Duration
	MaxTokens   int
	Temperature float64
}

// SchedulerConfig holds background job configuration.
type SchedulerConfig struct {
	Enabled    bool
	Timezone   string
	ReportPath string
	LockTTL    time.Duration
}

// RateLimitConfig holds limits for the advisor endpoints.
type RateLimitConfig struct {
	Requests int
	Window   time.Duration
}

// Load loads configuration from environment variables.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Host:         getEnv("SERVER_HOST", "0.0.0.0"),
			Port:         getEnvAsInt("SERVER_PORT", 5000),
			ReadTimeout:  getEnvAsDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getEnvAsDuration("SERVER_WRITE_TIMEOUT", 90*time.Second),
			Environment:  getEnv("ENV", "development"),
		},
		Database: DatabaseConfig{
			Driver:          getEnv("DB_DRIVER", "sqlite"),
			URL:             getEnv("DATABASE_URL", "finai.db"),
			MaxOpenConns:    getEnvAsInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getEnvAsInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getEnvAsDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Advisor: AdvisorConfig{
			Provider:    getEnv("ADVISOR_PROVIDER", "huggingface"),
			HFToken:     getEnv("HUGGINGFACEHUB_API_TOKEN", ""),
			HFEndpoint:  getEnv("HUGGINGFACE_ENDPOINT", "https://api-inference.huggingface.co"),
			HFModel:     getEnv("HUGGINGFACE_MODEL", "mistralai/Mistral-7B-Instruct-v0.2"),
			GeminiKey:   getEnv("GEMINI_API_KEY", ""),
			GeminiModel: getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
			Timeout:     getEnvAsDuration("ADVISOR_TIMEOUT", 60*time.Second),
			MaxTokens:   getEnvAsInt("ADVISOR_MAX_TOKENS", 500),
			Temperature: getEnvAsFloat("ADVISOR_TEMPERATURE", 0.7),
		},
		Scheduler: SchedulerConfig{
			Enabled:    getEnvAsBool("SCHEDULER_ENABLED", true),
			Timezone:   getEnv("SCHEDULER_TIMEZONE", "Local"),
			ReportPath: getEnv("REPORT_PATH", "data/agent_logs.jsonl"),
			LockTTL:    getEnvAsDuration("SCHEDULER_LOCK_TTL", 30*time.Minute),
		},
		RateLimit: RateLimitConfig{
			Requests: getEnvAsInt("ADVISOR_RATE_LIMIT", 20),
			Window:   getEnvAsDuration("ADVISOR_RATE_WINDOW", time.Minute),
		},
	}
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
