package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all service configuration loaded from environment variables.
type Config struct {
	Port           string
	AllowedOrigins []string

	SessionTTL     time.Duration
	SessionBackend string // "memory" or "redis"
	RedisAddr      string
	RedisPassword  string
	CookieSecure   bool

	BcryptCost    int
	AdminUsername string
	AdminEmail    string
	AdminPassword string
	SeedData      bool
}

// Load reads an optional .env file, then the environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("config: .env: %v", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from the process environment alone.
func FromEnv() *Config {
	return &Config{
		Port:           getenv("PORT", "8080"),
		AllowedOrigins: splitList(getenv("ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:3000")),
		SessionTTL:     getDuration("SESSION_TTL", 24*time.Hour),
		SessionBackend: strings.ToLower(getenv("SESSION_BACKEND", "memory")),
		RedisAddr:      getenv("REDIS_ADDR", "redis:6379"),
		RedisPassword:  getenv("REDIS_PASSWORD", ""),
		CookieSecure:   getBool("COOKIE_SECURE", false),
		BcryptCost:     getInt("BCRYPT_COST", 10),
		AdminUsername:  getenv("ADMIN_USERNAME", "admin"),
		AdminEmail:     getenv("ADMIN_EMAIL", "admin@cyberhub.com"),
		AdminPassword:  getenv("ADMIN_PASSWORD", "admin123"),
		SeedData:       getBool("SEED_DATA", true),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(getenv(key, strconv.FormatBool(fallback)))
	if err != nil {
		log.Printf("config: %s: %v; using %t", key, err, fallback)
		return fallback
	}
	return v
}

func getInt(key string, fallback int) int {
	v, err := strconv.Atoi(getenv(key, strconv.Itoa(fallback)))
	if err != nil {
		log.Printf("config: %s: %v; using %d", key, err, fallback)
		return fallback
	}
	return v
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(getenv(key, fallback.String()))
	if err != nil || v <= 0 {
		log.Printf("config: %s: invalid duration; using %s", key, fallback)
		return fallback
	}
	return v
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
