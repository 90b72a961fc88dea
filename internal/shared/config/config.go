package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Knowledge base sources
const (
	KBSourceBuiltin  = "builtin"
	KBSourceFile     = "file"
	KBSourceDatabase = "database"
)

const (
	defaultPort              = "8080"
	defaultPlansAPIURL       = "http://localhost:5000/api"
	defaultPlansFetchTimeout = 4 * time.Second
	defaultPlansCacheTTL     = 60 * time.Second
)

type Config struct {
	Port     string
	Env      string
	LogLevel string

	// Knowledge base
	KBSource    string
	KBPath      string
	DatabaseURL string

	// Remote plan source
	PlansAPIURL          string
	PlansFetchTimeout    time.Duration
	PlansCacheTTL        time.Duration
	PlansRefreshSchedule string

	// Shared plan cache (optional)
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	MetricsNamespace string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("⚠️ .env file not found, using system environment variables")
	}

	cfg := &Config{
		Port:                 getenvDefault("PORT", defaultPort),
		Env:                  getenvDefault("ENV", "development"),
		LogLevel:             getenvDefault("LOG_LEVEL", "info"),
		KBSource:             strings.ToLower(getenvDefault("KB_SOURCE", KBSourceBuiltin)),
		KBPath:               getenvDefault("KB_PATH", "config/knowledge_base.yaml"),
		DatabaseURL:          trimmedEnv("DATABASE_URL"),
		PlansAPIURL:          strings.TrimRight(getenvDefault("PLANS_API_URL", defaultPlansAPIURL), "/"),
		PlansFetchTimeout:    durationEnv("PLANS_FETCH_TIMEOUT", defaultPlansFetchTimeout),
		PlansCacheTTL:        durationEnv("PLANS_CACHE_TTL", defaultPlansCacheTTL),
		PlansRefreshSchedule: trimmedEnv("PLANS_REFRESH_SCHEDULE"),
		RedisAddr:            trimmedEnv("REDIS_ADDR"),
		RedisPassword:        trimmedEnv("REDIS_PASSWORD"),
		RedisDB:              intEnv("REDIS_DB", 0),
		MetricsNamespace:     getenvDefault("METRICS_NAMESPACE", "assistant"),
	}

	switch cfg.KBSource {
	case KBSourceBuiltin, KBSourceFile, KBSourceDatabase:
	default:
		log.Warn().Str("kb_source", cfg.KBSource).Msg("⚠️ Unknown KB_SOURCE, using builtin knowledge base")
		cfg.KBSource = KBSourceBuiltin
	}

	return cfg
}

// IsProduction reports whether ENV is set to production
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

func getenvDefault(key, fallback string) string {
	if val := trimmedEnv(key); val != "" {
		return val
	}
	return fallback
}

func trimmedEnv(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func durationEnv(key string, fallback time.Duration) time.Duration {
	raw := trimmedEnv(key)
	if raw == "" {
		return fallback
	}
	dur, err := time.ParseDuration(raw)
	if err != nil || dur <= 0 {
		log.Warn().Str("key", key).Str("value", raw).Dur("default", fallback).Msg("⚠️ Invalid duration, using default")
		return fallback
	}
	return dur
}

func intEnv(key string, fallback int) int {
	raw := trimmedEnv(key)
	if raw == "" {
		return fallback
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		log.Warn().Str("key", key).Str("value", raw).Int("default", fallback).Msg("⚠️ Invalid integer, using default")
		return fallback
	}
	return val
}
