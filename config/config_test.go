package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "WORKBOOK_BACKEND", "PAGE_SIZE", "COHORT_COUNT", "WIN_CONVERSION_RATE", "TIMEZONE", "METRICS_ENABLED", "OIDC_DOMAIN"} {
		t.Setenv(key, "")
	}

	cfg := FromEnv()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, BackendSQLite, cfg.WorkbookBackend)
	assert.Equal(t, 50, cfg.PageSize)
	assert.Equal(t, 5, cfg.CohortCount)
	assert.Equal(t, 0.5, cfg.WinConversionRate)
	assert.Equal(t, "Europe/Istanbul", cfg.Timezone)
	assert.True(t, cfg.MetricsEnabled)
	assert.False(t, cfg.SSOEnabled())
	require.NoError(t, cfg.Validate())
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("WORKBOOK_BACKEND", "XLSX")
	t.Setenv("XLSX_PATH", "/tmp/secim.xlsx")
	t.Setenv("PAGE_SIZE", " 25 ")
	t.Setenv("WIN_CONVERSION_RATE", "0.3")
	t.Setenv("METRICS_ENABLED", "false")
	t.Setenv("COHORT_COUNT", "not-a-number")

	cfg := FromEnv()

	assert.Equal(t, BackendXLSX, cfg.WorkbookBackend)
	assert.Equal(t, "/tmp/secim.xlsx", cfg.XLSXPath)
	assert.Equal(t, 25, cfg.PageSize)
	assert.Equal(t, 0.3, cfg.WinConversionRate)
	assert.False(t, cfg.MetricsEnabled)
	assert.Equal(t, 5, cfg.CohortCount, "unparseable values fall back to the default")
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			WorkbookBackend:   BackendSQLite,
			SQLitePath:        "canvass.db",
			VotersSheet:       "secmenler",
			UsersSheet:        "kullanicilar",
			LogSheet:          "degisiklik_log",
			PageSize:          50,
			CohortCount:       5,
			WinConversionRate: 0.5,
			Timezone:          "UTC",
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"unknown backend", func(c *Config) { c.WorkbookBackend = "csv" }, "unknown WORKBOOK_BACKEND"},
		{"google without id", func(c *Config) {
			c.WorkbookBackend = BackendGoogle
			c.GoogleCredentialsFile = "sa.json"
		}, "GOOGLE_SPREADSHEET_ID"},
		{"google without credentials", func(c *Config) {
			c.WorkbookBackend = BackendGoogle
			c.GoogleSpreadsheetID = "abc"
		}, "GOOGLE_CREDENTIALS_FILE"},
		{"rate above one", func(c *Config) { c.WinConversionRate = 1.5 }, "WIN_CONVERSION_RATE"},
		{"zero cohorts", func(c *Config) { c.CohortCount = 0 }, "COHORT_COUNT"},
		{"bad timezone", func(c *Config) { c.Timezone = "Mars/Olympus" }, "TIMEZONE"},
		{"partial sso", func(c *Config) { c.OIDCDomain = "login.example.org" }, "OIDC_CLIENT_ID"},
		{"empty sheet name", func(c *Config) { c.LogSheet = "" }, "worksheet names"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)

			err := cfg.Validate()

			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestLocationAndLevel(t *testing.T) {
	cfg := Config{Timezone: "Europe/Istanbul", LogLevel: "DEBUG"}
	assert.Equal(t, "Europe/Istanbul", cfg.Location().String())
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())

	cfg = Config{Timezone: "nowhere", LogLevel: ""}
	assert.Equal(t, "UTC", cfg.Location().String())
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
}
