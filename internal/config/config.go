package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// Database
	DBDriver   string // postgres or sqlite
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	SQLitePath string

	// Owner guard (tokens are issued by the external auth collaborator)
	OwnerJWTSecret string

	// Writing content references
	ContentAllowedHosts []string
	ContentFetchTimeout time.Duration

	// Site defaults (fallback profile), optional YAML override
	SiteConfigPath string

	// Logging
	LogRetentionDays int

	// Server
	Env                string
	Port               string
	CORSOrigins        string
	RateLimitPerMinute int
	BodyLimitBytes     int
}

func Load() *Config {
	return &Config{
		DBDriver:   strings.ToLower(getEnv("DB_DRIVER", "postgres")),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "portfolio_db"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),
		SQLitePath: getEnv("SQLITE_PATH", "portfolio.db"),

		OwnerJWTSecret: getEnv("OWNER_JWT_SECRET", ""),

		ContentAllowedHosts: parseCSV(getEnv("CONTENT_ALLOWED_HOSTS", "ucarecdn.com")),
		ContentFetchTimeout: parseDuration(getEnv("CONTENT_FETCH_TIMEOUT", "30s"), 30*time.Second),

		SiteConfigPath: getEnv("SITE_CONFIG_PATH", ""),

		LogRetentionDays: parseInt(getEnv("LOG_RETENTION_DAYS", "30"), 30),

		Env:                getEnv("APP_ENV", "development"),
		Port:               getEnv("PORT", "8080"),
		CORSOrigins:        getEnv("CORS_ORIGINS", "*"),
		RateLimitPerMinute: parseInt(getEnv("RATE_LIMIT_PER_MINUTE", "60"), 60),
		BodyLimitBytes:     parseInt(getEnv("BODY_LIMIT_BYTES", "2097152"), 2*1024*1024),
	}
}

func (c *Config) DSN() string {
	if c.DBDriver == "sqlite" {
		if strings.Contains(c.SQLitePath, "?") {
			return c.SQLitePath
		}
		// foreign keys are off by default in sqlite
		return c.SQLitePath + "?_fk=1"
	}
	return "host=" + c.DBHost +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" port=" + c.DBPort +
		" sslmode=" + c.DBSSLMode +
		" TimeZone=UTC"
}

// IsProduction reports whether diagnostic details must be withheld from responses.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}

func parseInt(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return n
}

func parseCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
