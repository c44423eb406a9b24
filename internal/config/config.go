package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App     AppConfig
	ESS     ESSConfig
	Report  ReportConfig
	Session SessionConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Port           int
	Env            string
	LogLevel       string
	AllowedOrigins []string
}

// ESSConfig holds the upstream employee-self-service API configuration
type ESSConfig struct {
	BaseURL string
	Timeout time.Duration
}

// ReportConfig holds reporting engine configuration
type ReportConfig struct {
	// WorkingWeekendDay is the one weekday on which WEEKEND-tagged
	// attendance still counts toward worked totals.
	WorkingWeekendDay time.Weekday
}

// SessionConfig holds report session lifecycle configuration
type SessionConfig struct {
	TTL           time.Duration
	SweepInterval time.Duration
}

func Load() (*Config, error) {
	// A .env file is optional; real deployments set the environment.
	_ = godotenv.Load()

	config := &Config{}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:           appPort,
		Env:            getEnv("APP_ENV", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		AllowedOrigins: getEnvSlice("CORS_ALLOWED_ORIGINS", "http://localhost:3000"),
	}

	essTimeout, err := time.ParseDuration(getEnv("ESS_HTTP_TIMEOUT", "15s"))
	if err != nil {
		return nil, fmt.Errorf("invalid ESS_HTTP_TIMEOUT: %w", err)
	}

	config.ESS = ESSConfig{
		BaseURL: getEnv("ESS_API_BASE_URL", "https://api.diu.edu.bd/api/ess/portal"),
		Timeout: essTimeout,
	}

	weekendDay, err := parseWeekday(getEnv("REPORT_WORKING_WEEKEND_DAY", "Thursday"))
	if err != nil {
		return nil, fmt.Errorf("invalid REPORT_WORKING_WEEKEND_DAY: %w", err)
	}

	config.Report = ReportConfig{
		WorkingWeekendDay: weekendDay,
	}

	sessionTTL, err := time.ParseDuration(getEnv("SESSION_TTL", "4h"))
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_TTL: %w", err)
	}

	sweepInterval, err := time.ParseDuration(getEnv("SESSION_SWEEP_INTERVAL", "10m"))
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_SWEEP_INTERVAL: %w", err)
	}

	config.Session = SessionConfig{
		TTL:           sessionTTL,
		SweepInterval: sweepInterval,
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.ESS.BaseURL == "" {
		return fmt.Errorf("ESS_API_BASE_URL is required")
	}
	if c.Session.TTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive")
	}
	if c.Session.SweepInterval <= 0 {
		return fmt.Errorf("SESSION_SWEEP_INTERVAL must be positive")
	}
	return nil
}

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

func parseWeekday(name string) (time.Weekday, error) {
	day, ok := weekdays[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("unknown weekday %q", name)
	}
	return day, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(env, fallback string) []string {
	value := getEnv(env, fallback)
	if value == "" {
		return []string{}
	}
	return strings.Split(value, ",")
}
