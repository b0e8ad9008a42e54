package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration loaded from environment variables
// Defaults reproduce the demo setup so the server runs with no environment at all.
type Config struct {
	AppName string
	Env     string // development, staging, production
	Port    string
	GinMode string

	// Sessions
	SessionSecret     string
	SessionTTL        time.Duration
	SessionCookieName string
	SessionStore      string        // memory or redis
	SessionSweep      time.Duration // memory store janitor interval

	// Cookies
	CookieDomain string
	CookieSecure bool // false by default; set true behind HTTPS

	// Redis (only used when SessionStore is "redis")
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// CORS
	CORSAllowedOrigins string // comma-separated

	// Monthly budget shown next to the expense ledger
	ExpenseBudget int

	// Debug metrics (/api/debug/vars)
	DebugMetricsEnabled bool

	// HTTP access log toggle
	HTTPLogEnabled bool

	// Overrides the env default level when set (debug, info, warn, ...)
	LogLevel string
}

const (
	SessionStoreMemory = "memory"
	SessionStoreRedis  = "redis"
)

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getbool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			log.Printf("invalid boolean for %s: %v, using default %v", key, err, def)
			return def
		}
		return b
	}
	return def
}

func getint(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			log.Printf("invalid int for %s: %v, using default %d", key, err, def)
			return def
		}
		return i
	}
	return def
}

func getdur(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			log.Printf("invalid duration for %s: %v, using default %v", key, err, def)
			return def
		}
		if d <= 0 {
			log.Printf("non-positive duration for %s, using default %v", key, def)
			return def
		}
		return d
	}
	return def
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		AppName: getenv("APP_NAME", "gryffintwin"),
		Env:     getenv("APP_ENV", "development"),
		Port:    getenv("PORT", "5000"),
		GinMode: getenv("GIN_MODE", "release"),

		SessionSecret:     getenv("SESSION_SECRET", "your-secret-key-change-in-production"),
		SessionTTL:        getdur("SESSION_TTL", 24*time.Hour),
		SessionCookieName: getenv("SESSION_COOKIE_NAME", "gryffintwin.sid"),
		SessionStore:      strings.ToLower(getenv("SESSION_STORE", SessionStoreMemory)),
		SessionSweep:      getdur("SESSION_SWEEP_INTERVAL", time.Minute),

		CookieDomain: getenv("COOKIE_DOMAIN", ""),
		CookieSecure: getbool("COOKIE_SECURE", false),

		RedisAddr:     getenv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getenv("REDIS_PASSWORD", ""),
		RedisDB:       getint("REDIS_DB", 0),

		CORSAllowedOrigins: getenv("CORS_ALLOWED_ORIGINS", ""),

		ExpenseBudget: getint("EXPENSE_BUDGET", 4200),

		DebugMetricsEnabled: getbool("DEBUG_METRICS_ENABLED", false),
		HTTPLogEnabled:      getbool("HTTP_LOG_ENABLED", false),
		LogLevel:            getenv("LOG_LEVEL", ""),
	}
}

// CORSOrigins returns the allowed origins as slice
func (c *Config) CORSOrigins() []string {
	parts := strings.Split(c.CORSAllowedOrigins, ",")
	res := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			res = append(res, p)
		}
	}
	return res
}
