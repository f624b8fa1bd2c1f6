package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	SMTP     SMTPConfig
	Payroll  PayrollConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port           int
	Env            string
	LogLevel       string
	FrontendOrigin string
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
}

// PayrollConfig holds the business knobs of the payroll computation.
type PayrollConfig struct {
	// MaxHoursPerDay caps the hours credited for a single attendance day, so
	// a forgotten checkout cannot inflate pay.
	MaxHoursPerDay decimal.Decimal
	// DefaultHourlyRate applies when a staff record has no hourly rate set.
	DefaultHourlyRate decimal.Decimal
	// SessionValue is the per-completed-session basis for trainer commission.
	SessionValue decimal.Decimal
}

func Load() (*Config, error) {
	// A missing .env file is fine in containerized deployments; the
	// environment itself carries the settings there.
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "fitcore-gym"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:           appPort,
		Env:            getEnv("APP_ENV", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		FrontendOrigin: getEnv("FRONTEND_ORIGIN", "http://localhost:3000"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	// SMTP configuration
	smtpPort, err := strconv.Atoi(getEnv("SMTP_PORT", "587"))
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP_PORT: %w", err)
	}

	config.SMTP = SMTPConfig{
		Host:     getEnv("SMTP_HOST", ""),
		Port:     smtpPort,
		Username: getEnv("SMTP_USERNAME", ""),
		Password: getEnv("SMTP_PASSWORD", ""),
		From:     getEnv("SMTP_FROM", "noreply@fitcore.local"),
		FromName: getEnv("SMTP_FROM_NAME", "FitCore Gym"),
	}

	// Payroll configuration
	maxHours, err := decimal.NewFromString(getEnv("PAYROLL_MAX_HOURS_PER_DAY", "8"))
	if err != nil {
		return nil, fmt.Errorf("invalid PAYROLL_MAX_HOURS_PER_DAY: %w", err)
	}
	defaultRate, err := decimal.NewFromString(getEnv("PAYROLL_DEFAULT_HOURLY_RATE", "500"))
	if err != nil {
		return nil, fmt.Errorf("invalid PAYROLL_DEFAULT_HOURLY_RATE: %w", err)
	}
	sessionValue, err := decimal.NewFromString(getEnv("PAYROLL_SESSION_VALUE", "500"))
	if err != nil {
		return nil, fmt.Errorf("invalid PAYROLL_SESSION_VALUE: %w", err)
	}

	config.Payroll = PayrollConfig{
		MaxHoursPerDay:    maxHours,
		DefaultHourlyRate: defaultRate,
		SessionValue:      sessionValue,
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if !c.Payroll.MaxHoursPerDay.IsPositive() {
		return fmt.Errorf("PAYROLL_MAX_HOURS_PER_DAY must be positive")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
