package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const defaultDatabaseURL = "sqlite:///./rems_dev.db"

// Config holds application configuration loaded from environment.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Log      LogConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port               string
	ReadTimeout        int
	WriteTimeout       int
	CORSAllowedOrigins string // comma-separated, or "*" for all
	StaticDir          string // served under /static
}

// DatabaseConfig holds the store connection target.
type DatabaseConfig struct {
	URL      string // e.g. sqlite:///./rems_dev.db or postgres://localhost:5432/rems?sslmode=disable
	LogLevel string // gorm log level: silent, error, warn, info
}

// RedisConfig holds Redis connection settings. An empty Addr disables roster events.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// LogConfig selects the zap preset.
type LogConfig struct {
	Mode string // production or development
}

// Driver returns the gorm dialect for the configured URL: "postgres" or "sqlite".
func (c DatabaseConfig) Driver() string {
	u := strings.ToLower(c.url())
	if strings.HasPrefix(u, "postgres://") || strings.HasPrefix(u, "postgresql://") {
		return "postgres"
	}
	return "sqlite"
}

// DSN returns the driver-level connection string.
// PostgreSQL URLs are passed through. SQLite URLs follow the sqlite:///relative and
// sqlite:////absolute convention; bare paths and :memory: are accepted as-is.
// Foreign keys are always switched on for SQLite.
func (c DatabaseConfig) DSN() string {
	u := c.url()
	if c.Driver() == "postgres" {
		return u
	}
	path := u
	if strings.HasPrefix(path, "sqlite://") {
		path = strings.TrimPrefix(path, "sqlite://")
		// sqlite:///./x.db -> ./x.db, sqlite:////tmp/x.db -> /tmp/x.db
		path = strings.TrimPrefix(path, "/")
	}
	if path == "" {
		path = ":memory:"
	}
	if strings.Contains(path, "_foreign_keys=") {
		return path
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_foreign_keys=on"
}

func (c DatabaseConfig) url() string {
	if strings.TrimSpace(c.URL) == "" {
		return defaultDatabaseURL
	}
	return strings.TrimSpace(c.URL)
}

// Load reads configuration from environment, with optional .env file.
func Load() (*Config, error) {
	_ = godotenv.Load()      // .env
	_ = godotenv.Load("env") // env (no leading dot)

	cfg := &Config{
		Server: ServerConfig{
			Port:               getEnv("PORT", "8000"),
			ReadTimeout:        getEnvInt("READ_TIMEOUT_SEC", 30),
			WriteTimeout:       getEnvInt("WRITE_TIMEOUT_SEC", 30),
			CORSAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
			StaticDir:          getEnv("STATIC_DIR", "./static"),
		},
		Database: DatabaseConfig{
			URL:      getEnv("DATABASE_URL", defaultDatabaseURL),
			LogLevel: getEnv("DB_LOG_LEVEL", "warn"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Log: LogConfig{
			Mode: getEnv("LOG_MODE", "production"),
		},
	}
	return cfg, nil
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
