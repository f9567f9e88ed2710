package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/url"
	"os"
	"slices"
	"strings"

	"github.com/joho/godotenv"
)

// SweepDisabled turns the legacy state sweep off when used as its schedule.
const SweepDisabled = "off"

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	JWTSecret string
	LogLevel  slog.Level

	LegacyStateSweepSchedule string
	NotifierSender           string
}

// LoadConfig reads envFile, if it exists, and then the process environment.
// Variables already set in the environment win over the file.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	config := Config{
		HTTPPort:                 getenv("HTTP_PORT", "8080"),
		DBHost:                   getenv("DB_HOST", "localhost"),
		DBPort:                   getenv("DB_PORT", "5432"),
		DBUser:                   os.Getenv("DB_USER"),
		DBPassword:               os.Getenv("DB_PASSWORD"),
		DBName:                   os.Getenv("DB_NAME"),
		DBSslMode:                getenv("DB_SSLMODE", "disable"),
		JWTSecret:                os.Getenv("JWT_SECRET"),
		LegacyStateSweepSchedule: os.Getenv("LEGACY_STATE_SWEEP_SCHEDULE"),
		NotifierSender:           getenv("NOTIFIER_SENDER", "no-reply@localhost"),
	}

	if raw := os.Getenv("LOG_LEVEL"); raw != "" {
		if err := config.LogLevel.UnmarshalText([]byte(raw)); err != nil {
			return Config{}, fmt.Errorf("LOG_LEVEL: %w", err)
		}
	}

	return config, nil
}

// Validate reports missing settings required to serve requests.
func (c Config) Validate() error {
	var missing []string
	for name, value := range map[string]string{
		"DB_USER":    c.DBUser,
		"DB_NAME":    c.DBName,
		"JWT_SECRET": c.JWTSecret,
	} {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		slices.Sort(missing)
		return fmt.Errorf("missing required settings: %s", strings.Join(missing, ", "))
	}
	return nil
}

// DSN builds the Postgres connection string.
func (c Config) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.DBUser, c.DBPassword),
		Host:   c.DBHost + ":" + c.DBPort,
		Path:   c.DBName,
	}
	q := u.Query()
	q.Set("sslmode", c.DBSslMode)
	u.RawQuery = q.Encode()
	return u.String()
}

// SweepEnabled reports whether the legacy state sweep should be scheduled.
func (c Config) SweepEnabled() bool {
	return !strings.EqualFold(strings.TrimSpace(c.LegacyStateSweepSchedule), SweepDisabled)
}

func getenv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
