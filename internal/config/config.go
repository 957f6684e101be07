package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort        string
	DbHost         string
	DbPort         string
	DbUser         string
	DbPassword     string
	DbName         string
	DbParams       string
	MigrationsPath string
	JWTSecret      string
	TokenTTL       time.Duration
	TrustedProxies []string
}

func LoadConfig() *Config {
	_ = godotenv.Load(".env")

	return &Config{
		AppPort:        getEnv("APP_PORT", "8080"),
		DbHost:         getEnv("MYSQL_HOST", "db"),
		DbPort:         getEnv("MYSQL_PORT", "3306"),
		DbUser:         getEnv("MYSQL_USER", "easytasks"),
		DbPassword:     getEnv("MYSQL_PASSWORD", "easytasks"),
		DbName:         getEnv("MYSQL_DATABASE", "easytasks"),
		DbParams:       getEnv("MYSQL_PARAMS", "parseTime=true&multiStatements=true"),
		MigrationsPath: getEnv("MIGRATIONS_PATH", "db/migrations"),
		JWTSecret:      getEnv("JWT_SECRET", "dev-secret-change-me"),
		TokenTTL:       parseTokenTTL(os.Getenv("TOKEN_TTL")),
		TrustedProxies: parseTrustedProxies(os.Getenv("TRUSTED_PROXIES")),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// Tokens live 7 days unless TOKEN_TTL overrides it.
func parseTokenTTL(value string) time.Duration {
	if value == "" {
		return 7 * 24 * time.Hour
	}

	ttl, err := time.ParseDuration(value)
	if err != nil || ttl <= 0 {
		return 7 * 24 * time.Hour
	}
	return ttl
}

func parseTrustedProxies(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	proxies := make([]string, 0, len(parts))
	for _, part := range parts {
		proxy := strings.TrimSpace(part)
		if proxy == "" {
			continue
		}
		proxies = append(proxies, proxy)
	}

	if len(proxies) == 0 {
		return nil
	}

	return proxies
}
