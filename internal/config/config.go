package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Upstream  UpstreamConfig
	Polling   PollingConfig
	Dashboard DashboardConfig
	Database  DatabaseConfig
	Cache     CacheConfig
	Security  SecurityConfig
	MockAPI   MockAPIConfig
}

type ServerConfig struct {
	Port             string
	Host             string
	Environment      string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	ShutdownTimeout  time.Duration
	CORSAllowOrigins []string
}

// UpstreamConfig describes the merchant REST API the dashboard polls
type UpstreamConfig struct {
	BaseURL            string
	Timeout            time.Duration
	SuccessCodes       []string
	RateLimitPerSecond int
	RateLimitBurst     int
	BreakerMaxFailures int
	BreakerReset       time.Duration
}

type PollingConfig struct {
	Interval       time.Duration
	RequestTimeout time.Duration
}

type DashboardConfig struct {
	DefaultMerchantID string
	Locale            string
	DefaultCurrency   string
	MerchantPageSize  int
	TransactionSize   int
}

type DatabaseConfig struct {
	Driver          string
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	SQLitePath      string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	MigrationsPath  string
}

// CacheConfig locates the last-good snapshot store
type CacheConfig struct {
	Enabled bool
	Path    string
}

type SecurityConfig struct {
	RateLimitPerSecond int
}

// MockAPIConfig drives the upstream simulator used in development
type MockAPIConfig struct {
	Port         string
	Merchants    int
	Transactions int
	Seed         int64
	FailureRate  float64
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first when present; real environment variables win.
func Load() *Config {
	if err := godotenv.Load(); err == nil {
		slog.Info("loaded configuration from .env")
	}

	config := &Config{
		Server: ServerConfig{
			Port:            getEnv("SERVER_PORT", "8081"),
			Host:            getEnv("SERVER_HOST", "localhost"),
			Environment:     getEnv("APP_ENV", "development"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Upstream: UpstreamConfig{
			BaseURL:            strings.TrimRight(getEnv("UPSTREAM_BASE_URL", "http://localhost:8080/api/v1"), "/"),
			Timeout:            getDurationEnv("UPSTREAM_TIMEOUT", 10*time.Second),
			SuccessCodes:       getListEnv("UPSTREAM_SUCCESS_CODES", []string{"200"}),
			RateLimitPerSecond: getIntEnv("UPSTREAM_RATE_LIMIT_PER_SECOND", 20),
			RateLimitBurst:     getIntEnv("UPSTREAM_RATE_LIMIT_BURST", 5),
			BreakerMaxFailures: getIntEnv("UPSTREAM_BREAKER_MAX_FAILURES", 5),
			BreakerReset:       getDurationEnv("UPSTREAM_BREAKER_RESET", 30*time.Second),
		},
		Polling: PollingConfig{
			Interval:       getDurationEnv("POLL_INTERVAL", 5*time.Second),
			RequestTimeout: getDurationEnv("POLL_REQUEST_TIMEOUT", 8*time.Second),
		},
		Dashboard: DashboardConfig{
			DefaultMerchantID: getEnv("DEFAULT_MERCHANT_ID", "MCH-00009"),
			Locale:            getEnv("DASHBOARD_LOCALE", "en-US"),
			DefaultCurrency:   strings.ToUpper(getEnv("DASHBOARD_DEFAULT_CURRENCY", "USD")),
			MerchantPageSize:  getIntEnv("MERCHANT_PAGE_SIZE", 100),
			TransactionSize:   getIntEnv("TRANSACTION_PAGE_SIZE", 10),
		},
		Database: DatabaseConfig{
			Driver:          getEnv("DB_DRIVER", "sqlite"),
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "dashboard_user"),
			Password:        getEnv("DB_PASSWORD", "dashboard_password"),
			Name:            getEnv("DB_NAME", "dashboard_db"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			SQLitePath:      getEnv("DB_SQLITE_PATH", "dashboard.db"),
			MaxConnections:  getIntEnv("DB_MAX_CONNECTIONS", 10),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
			MigrationsPath:  getEnv("DB_MIGRATIONS_PATH", "db/migrations"),
		},
		Cache: CacheConfig{
			Enabled: getBoolEnv("SNAPSHOT_CACHE_ENABLED", true),
			Path:    getEnv("SNAPSHOT_CACHE_PATH", "snapshots.bolt"),
		},
		Security: SecurityConfig{
			RateLimitPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 20),
		},
		MockAPI: MockAPIConfig{
			Port:         getEnv("MOCKAPI_PORT", "8080"),
			Merchants:    getIntEnv("MOCKAPI_MERCHANTS", 250),
			Transactions: getIntEnv("MOCKAPI_TRANSACTIONS", 60),
			Seed:         int64(getIntEnv("MOCKAPI_SEED", 42)),
			FailureRate:  getFloatEnv("MOCKAPI_FAILURE_RATE", 0),
		},
	}

	config.Server.CORSAllowOrigins = getListEnv("CORS_ALLOW_ORIGINS", []string{"*"})

	return config
}

func (c *DatabaseConfig) DSN() string {
	if c.IsSQLite() {
		return c.SQLitePath
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// URL is the postgres connection URL used by the migrator
func (c *DatabaseConfig) URL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode)
}

func (c *DatabaseConfig) IsSQLite() bool {
	return c.Driver == "sqlite"
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func (c *Config) IsTesting() bool {
	return c.Server.Environment == "testing"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// getListEnv splits a comma separated value, dropping empty entries
func getListEnv(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return defaultValue
	}
	return items
}
