package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port             string
	DatabaseURL      string
	RedisAddr        string
	RedisPassword    string
	RedisDB          int
	SessionNamespace string
	SessionTTL       time.Duration
	AllowOrigins     []string
	LogstashTCPAddr  string
}

func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	redisDB := 0
	if v, err := strconv.Atoi(getenv("REDIS_DB", "0")); err == nil && v >= 0 {
		redisDB = v
	}

	sessionTTL := 30 * time.Minute
	if v, err := time.ParseDuration(getenv("SESSION_TTL", "30m")); err == nil && v > 0 {
		sessionTTL = v
	} else if err != nil {
		log.Printf("Warning: invalid SESSION_TTL, using %s: %v", sessionTTL, err)
	}

	return Config{
		Port:             getenv("PORT", "8080"),
		DatabaseURL:      must("DATABASE_URL"),
		RedisAddr:        must("REDIS_ADDR"),
		RedisPassword:    getenv("REDIS_PASSWORD", ""),
		RedisDB:          redisDB,
		SessionNamespace: getenv("SESSION_NAMESPACE", "sso:session"),
		SessionTTL:       sessionTTL,
		AllowOrigins:     splitAndTrim(getenv("ALLOW_ORIGINS", "*")),
		LogstashTCPAddr:  getenv("LOGSTASH_TCP_ADDR", ""),
	}
}

func splitAndTrim(input string) []string {
	parts := strings.Split(input, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func must(k string) string {
	v := os.Getenv(k)
	if v == "" {
		panic("missing env: " + k)
	}
	return v
}
