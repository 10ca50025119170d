// Package config reads runtime settings from the environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"
)

// Workbook backends
const (
	BackendSQLite = "sqlite"
	BackendXLSX   = "xlsx"
	BackendGoogle = "google"
)

// Config holds runtime configuration for the dashboard.
type Config struct {
	Port               string
	UseHTTPS           bool
	SessionLifetimeSec int

	WorkbookBackend       string
	SQLitePath            string
	XLSXPath              string
	GoogleSpreadsheetID   string
	GoogleCredentialsFile string
	GoogleCredentialsJSON string

	VotersSheet string
	UsersSheet  string
	LogSheet    string

	PageSize          int
	CohortCount       int
	WinConversionRate float64
	Timezone          string

	OIDCDomain       string
	OIDCClientID     string
	OIDCClientSecret string
	OIDCCallbackURL  string

	MetricsEnabled bool
	LogLevel       string
}

// FromEnv loads configuration from environment variables with defaults.
func FromEnv() Config {
	return Config{
		Port:               getEnv("PORT", "8080"),
		UseHTTPS:           getEnvBool("USE_HTTPS", false),
		SessionLifetimeSec: getEnvInt("SESSION_LIFETIME_SEC", 3600),

		WorkbookBackend:       strings.ToLower(getEnv("WORKBOOK_BACKEND", BackendSQLite)),
		SQLitePath:            getEnv("SQLITE_PATH", "canvass.db"),
		XLSXPath:              getEnv("XLSX_PATH", "canvass.xlsx"),
		GoogleSpreadsheetID:   getEnv("GOOGLE_SPREADSHEET_ID", ""),
		GoogleCredentialsFile: getEnv("GOOGLE_CREDENTIALS_FILE", ""),
		GoogleCredentialsJSON: getEnv("GOOGLE_CREDENTIALS_JSON", ""),

		VotersSheet: getEnv("VOTERS_SHEET", "secmenler"),
		UsersSheet:  getEnv("USERS_SHEET", "kullanicilar"),
		LogSheet:    getEnv("LOG_SHEET", "degisiklik_log"),

		PageSize:          getEnvInt("PAGE_SIZE", 50),
		CohortCount:       getEnvInt("COHORT_COUNT", 5),
		WinConversionRate: getEnvFloat("WIN_CONVERSION_RATE", 0.5),
		Timezone:          getEnv("TIMEZONE", "Europe/Istanbul"),

		OIDCDomain:       getEnv("OIDC_DOMAIN", ""),
		OIDCClientID:     getEnv("OIDC_CLIENT_ID", ""),
		OIDCClientSecret: getEnv("OIDC_CLIENT_SECRET", ""),
		OIDCCallbackURL:  getEnv("OIDC_CALLBACK_URL", ""),

		MetricsEnabled: getEnvBool("METRICS_ENABLED", true),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
	}
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs []error

	switch c.WorkbookBackend {
	case BackendSQLite:
		if c.SQLitePath == "" {
			errs = append(errs, errors.New("SQLITE_PATH is required for the sqlite backend"))
		}
	case BackendXLSX:
		if c.XLSXPath == "" {
			errs = append(errs, errors.New("XLSX_PATH is required for the xlsx backend"))
		}
	case BackendGoogle:
		if c.GoogleSpreadsheetID == "" {
			errs = append(errs, errors.New("GOOGLE_SPREADSHEET_ID is required for the google backend"))
		}
		if c.GoogleCredentialsFile == "" && c.GoogleCredentialsJSON == "" {
			errs = append(errs, errors.New("GOOGLE_CREDENTIALS_FILE or GOOGLE_CREDENTIALS_JSON is required for the google backend"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown WORKBOOK_BACKEND %q", c.WorkbookBackend))
	}

	if c.VotersSheet == "" || c.UsersSheet == "" || c.LogSheet == "" {
		errs = append(errs, errors.New("worksheet names must not be empty"))
	}
	if c.PageSize < 1 {
		errs = append(errs, fmt.Errorf("PAGE_SIZE must be positive, got %d", c.PageSize))
	}
	if c.CohortCount < 1 {
		errs = append(errs, fmt.Errorf("COHORT_COUNT must be positive, got %d", c.CohortCount))
	}
	if c.WinConversionRate < 0 || c.WinConversionRate > 1 {
		errs = append(errs, fmt.Errorf("WIN_CONVERSION_RATE must be between 0 and 1, got %g", c.WinConversionRate))
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		errs = append(errs, fmt.Errorf("invalid TIMEZONE %q: %w", c.Timezone, err))
	}
	if c.SSOEnabled() && (c.OIDCClientID == "" || c.OIDCClientSecret == "" || c.OIDCCallbackURL == "") {
		errs = append(errs, errors.New("OIDC_CLIENT_ID, OIDC_CLIENT_SECRET and OIDC_CALLBACK_URL are required when OIDC_DOMAIN is set"))
	}

	return errors.Join(errs...)
}

// SSOEnabled reports whether OpenID Connect login is configured.
func (c Config) SSOEnabled() bool {
	return c.OIDCDomain != ""
}

// Location returns the configured time zone, falling back to UTC.
func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// SlogLevel maps LOG_LEVEL onto a slog level.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, def string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return def
}

func getEnvInt(key string, def int) int {
	val := os.Getenv(key)
	if val == "" {
		return def
	}
	parsed, err := strconv.Atoi(strings.TrimSpace(val))
	if err != nil {
		return def
	}
	return parsed
}

func getEnvFloat(key string, def float64) float64 {
	val := os.Getenv(key)
	if val == "" {
		return def
	}
	parsed, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
	if err != nil {
		return def
	}
	return parsed
}

func getEnvBool(key string, def bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return def
	}
	parsed, err := strconv.ParseBool(strings.TrimSpace(val))
	if err != nil {
		return def
	}
	return parsed
}
