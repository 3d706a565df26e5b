package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// maxFilePathVars is the number of FILE_PATH_n variables consulted for input files.
const maxFilePathVars = 9

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Analysis AnalysisConfig
	Security SecurityConfig
	Log      LogConfig
}

type ServerConfig struct {
	Port             string        `validate:"required,numeric"`
	Host             string        `validate:"required"`
	Environment      string        `validate:"oneof=development testing production"`
	ReadTimeout      time.Duration `validate:"gt=0"`
	WriteTimeout     time.Duration `validate:"gt=0"`
	ShutdownTimeout  time.Duration `validate:"gt=0"`
	CORSAllowOrigins []string
}

type DatabaseConfig struct {
	Driver           string `validate:"oneof=sqlite postgres none"`
	Path             string `validate:"required_if=Driver sqlite"`
	Host             string
	Port             string
	User             string
	Password         string
	Name             string
	SSLMode          string
	MaxConnections   int `validate:"gte=1"`
	MaxIdleConns     int `validate:"gte=0"`
	ConnMaxLifetime  time.Duration
	HistoryRetention time.Duration `validate:"gte=0"`
}

type AnalysisConfig struct {
	InputFiles        []string
	MappingsFile      string
	ZScoreThreshold   float64 `validate:"gt=0,lte=10"`
	StdMultiplier     float64 `validate:"gt=0"`
	SignificanceFloor float64 `validate:"gte=0,lte=1"`
	TopTransactions   int     `validate:"gte=1,lte=100"`
}

type SecurityConfig struct {
	RateLimitPerSecond int `validate:"gte=1"`
	RateLimitBurst     int `validate:"gte=1"`
	JWTSecret          string
	JWTIssuer          string
}

type LogConfig struct {
	Level  string `validate:"oneof=debug info warn error"`
	Format string `validate:"oneof=json text"`
}

func Load() *Config {
	config := &Config{
		Server: ServerConfig{
			Port:            getEnv("SERVER_PORT", "8080"),
			Host:            getEnv("SERVER_HOST", "localhost"),
			Environment:     getEnv("APP_ENV", "development"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 60*time.Second),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Database: DatabaseConfig{
			Driver:           strings.ToLower(getEnv("DB_DRIVER", "sqlite")),
			Path:             getEnv("DB_PATH", "spend-insights.db"),
			Host:             getEnv("DB_HOST", "localhost"),
			Port:             getEnv("DB_PORT", "5432"),
			User:             getEnv("DB_USER", "insights"),
			Password:         getEnv("DB_PASSWORD", "insights"),
			Name:             getEnv("DB_NAME", "spend_insights"),
			SSLMode:          getEnv("DB_SSL_MODE", "disable"),
			MaxConnections:   getIntEnv("DB_MAX_CONNECTIONS", 10),
			MaxIdleConns:     getIntEnv("DB_MAX_IDLE_CONNS", 2),
			ConnMaxLifetime:  getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
			HistoryRetention: getDurationEnv("HISTORY_RETENTION", 90*24*time.Hour),
		},
		Analysis: AnalysisConfig{
			MappingsFile:      getEnv("MAPPINGS_FILE", ""),
			ZScoreThreshold:   getFloatEnv("Z_SCORE_THRESHOLD", 3.0),
			StdMultiplier:     getFloatEnv("OUTLIER_STD_MULTIPLIER", 1.5),
			SignificanceFloor: getFloatEnv("OUTLIER_SIGNIFICANCE_FLOOR", 0.15),
			TopTransactions:   getIntEnv("TOP_TRANSACTIONS", 10),
		},
		Security: SecurityConfig{
			RateLimitPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 5),
			RateLimitBurst:     getIntEnv("RATE_LIMIT_BURST", 10),
			JWTSecret:          getEnv("JWT_SECRET", ""),
			JWTIssuer:          getEnv("JWT_ISSUER", "spend-insights"),
		},
		Log: LogConfig{
			Level:  strings.ToLower(getEnv("LOG_LEVEL", "info")),
			Format: strings.ToLower(getEnv("LOG_FORMAT", "text")),
		},
	}

	config.Server.CORSAllowOrigins = config.loadCORSAllowOrigins()
	config.Analysis.InputFiles = loadInputFiles()

	return config
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// URL is the postgres connection string in the form golang-migrate expects.
func (c *DatabaseConfig) URL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode)
}

// Enabled reports whether run history is persisted.
func (c *DatabaseConfig) Enabled() bool {
	return c.Driver != "none"
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

// SlogLevel maps the configured level name onto a slog level.
func (c *LogConfig) SlogLevel() slog.Level {
	switch c.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
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

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// loadInputFiles collects FILE_PATH_1..FILE_PATH_9 followed by the comma
// separated INPUT_FILES list, dropping blanks and duplicates.
func loadInputFiles() []string {
	seen := make(map[string]bool)
	files := []string{}
	add := func(path string) {
		path = strings.TrimSpace(path)
		if path == "" {
			return
		}
		path = filepath.Clean(path)
		if seen[path] {
			return
		}
		seen[path] = true
		files = append(files, path)
	}

	for i := 1; i <= maxFilePathVars; i++ {
		add(os.Getenv(fmt.Sprintf("FILE_PATH_%d", i)))
	}
	for _, path := range strings.Split(os.Getenv("INPUT_FILES"), ",") {
		add(path)
	}
	return files
}

// loadCORSAllowOrigins retrieves CORS allowed origins from environment or returns default
func (c *Config) loadCORSAllowOrigins() []string {
	corsOrigins := os.Getenv("CORS_ALLOW_ORIGINS")

	if corsOrigins == "" {
		if c.IsProduction() {
			slog.Warn("CORS_ALLOW_ORIGINS not set in production, defaulting to all origins")
		}
		return []string{"*"}
	}

	origins := strings.Split(corsOrigins, ",")
	for i, origin := range origins {
		origins[i] = strings.TrimSpace(origin)
	}
	return origins
}
