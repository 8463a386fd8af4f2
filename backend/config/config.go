package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	StreakPolicyConsecutive = "consecutive"
	StreakPolicyPlaceholder = "placeholder"
)

type Config struct {
	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPath     string

	JWTSecret   string
	JWTTTLHours int
	ServerPort  string
	RedisAddr   string

	UploadDir   string
	MaxUploadMB int

	StreakPolicy   string
	StreakTimezone string

	SendGridAPIKey   string
	FromName         string
	FromAddress      string
	ReminderInterval time.Duration

	LogFormat string
}

func LoadConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	cfg := &Config{
		DBDriver:   getEnv("DB_DRIVER", "postgres"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBName:     getEnv("DB_NAME", "studyhub"),
		DBPath:     getEnv("DB_PATH", "./data/studyhub.db"),

		JWTSecret:   getEnv("JWT_SECRET", "secret"),
		JWTTTLHours: getEnvInt("JWT_TTL_HOURS", 72),
		ServerPort:  getEnv("SERVER_PORT", "8080"),
		RedisAddr:   getEnv("REDIS_ADDR", ""),

		UploadDir:   getEnv("UPLOAD_DIR", "./uploads"),
		MaxUploadMB: getEnvInt("MAX_UPLOAD_MB", 10),

		StreakPolicy:   getEnv("STREAK_POLICY", StreakPolicyConsecutive),
		StreakTimezone: getEnv("STREAK_TIMEZONE", "UTC"),

		SendGridAPIKey:   getEnv("SENDGRID_API_KEY", ""),
		FromName:         getEnv("FROM_NAME", "StudyHub"),
		FromAddress:      getEnv("FROM_ADDRESS", "no-reply@studyhub.local"),
		ReminderInterval: time.Duration(getEnvInt("REMINDER_INTERVAL_SECONDS", 60)) * time.Second,

		LogFormat: getEnv("LOG_FORMAT", "text"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the values that cannot be defaulted silently.
func (c *Config) Validate() error {
	switch c.DBDriver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}

	switch c.StreakPolicy {
	case StreakPolicyConsecutive, StreakPolicyPlaceholder:
	default:
		return fmt.Errorf("unsupported STREAK_POLICY %q", c.StreakPolicy)
	}

	if _, err := c.Location(); err != nil {
		return err
	}

	if c.JWTTTLHours <= 0 {
		return fmt.Errorf("JWT_TTL_HOURS must be positive, got %d", c.JWTTTLHours)
	}
	if c.MaxUploadMB <= 0 {
		return fmt.Errorf("MAX_UPLOAD_MB must be positive, got %d", c.MaxUploadMB)
	}
	return nil
}

// Location resolves StreakTimezone.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.StreakTimezone)
	if err != nil {
		return nil, fmt.Errorf("invalid STREAK_TIMEZONE %q: %w", c.StreakTimezone, err)
	}
	return loc, nil
}

func (c *Config) JWTTTL() time.Duration {
	return time.Duration(c.JWTTTLHours) * time.Hour
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}
