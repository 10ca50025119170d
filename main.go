package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/blogem/canvass-dashboard/authenticator"
	"github.com/blogem/canvass-dashboard/config"
	"github.com/blogem/canvass-dashboard/controllers"
	"github.com/blogem/canvass-dashboard/database"
	"github.com/blogem/canvass-dashboard/metrics"
	"github.com/blogem/canvass-dashboard/repositories"
	"github.com/blogem/canvass-dashboard/router"
	"github.com/blogem/canvass-dashboard/services"
	"github.com/blogem/canvass-dashboard/workbook"
	"github.com/blogem/canvass-dashboard/workbook/gsheets"
	"github.com/blogem/canvass-dashboard/workbook/xlsxfile"
)

func main() {
	// Load environment variables from .env file when there is one
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("Failed to load the env vars: %v", err)
	}

	cfg := config.FromEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration:\n%v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	ctx := context.Background()

	// Open the campaign workbook
	wb, closeWorkbook, err := openWorkbook(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to open workbook: %v", err)
	}
	defer closeWorkbook()

	var m *metrics.Metrics
	if cfg.MetricsEnabled {
		m = metrics.New()
		wb = m.InstrumentWorkbook(wb)
	}

	// Initialize repositories
	repos := repositories.NewRepositories(wb, repositories.SheetNames{
		Voters:  cfg.VotersSheet,
		Users:   cfg.UsersSheet,
		EditLog: cfg.LogSheet,
	}, cfg.Location())

	// Initialize services
	srvs := services.NewServices(repos, services.AnalysisOptions{
		CohortCount:    cfg.CohortCount,
		ConversionRate: cfg.WinConversionRate,
	})

	// Single sign-on is optional
	var provider authenticator.Provider
	if cfg.SSOEnabled() {
		provider, err = authenticator.NewOpenIDProvider(ctx, authenticator.OpenIDConfig{
			Domain:       cfg.OIDCDomain,
			ClientID:     cfg.OIDCClientID,
			ClientSecret: cfg.OIDCClientSecret,
			CallbackURL:  cfg.OIDCCallbackURL,
		})
		if err != nil {
			log.Fatalf("Failed to initialize OpenID provider: %v", err)
		}
	}

	// Initialize controllers
	ctrl := controllers.NewControllers(srvs, provider, controllers.Options{
		PageSize: cfg.PageSize,
		Location: cfg.Location(),
	})

	// Set up router
	r, err := router.New(ctrl, provider, router.Options{
		UseHTTPS:           cfg.UseHTTPS,
		SessionLifetimeSec: cfg.SessionLifetimeSec,
		Metrics:            m,
		Logger:             logger,
		RequestLogging:     true,
	})
	if err != nil {
		log.Fatalf("Failed to setup router: %v", err)
	}

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	slog.Info("canvass dashboard starting",
		"port", cfg.Port,
		"backend", cfg.WorkbookBackend,
		"sso", cfg.SSOEnabled(),
		"metrics", cfg.MetricsEnabled,
	)
	fmt.Printf("📂 Visit: http://localhost:%s\n", cfg.Port)

	log.Fatal(server.ListenAndServe())
}

// openWorkbook opens the configured backend and returns a function that
// releases it.
func openWorkbook(ctx context.Context, cfg config.Config) (workbook.Workbook, func(), error) {
	switch cfg.WorkbookBackend {
	case config.BackendSQLite:
		db, err := database.InitializeDatabase(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return database.NewCellStore(db), func() { db.Close() }, nil

	case config.BackendXLSX:
		wb, err := xlsxfile.Open(cfg.XLSXPath)
		if err != nil {
			return nil, nil, err
		}
		return wb, func() { wb.Close() }, nil

	case config.BackendGoogle:
		wb, err := gsheets.New(ctx, gsheets.Config{
			SpreadsheetID:   cfg.GoogleSpreadsheetID,
			CredentialsFile: cfg.GoogleCredentialsFile,
			CredentialsJSON: cfg.GoogleCredentialsJSON,
		})
		if err != nil {
			return nil, nil, err
		}
		return wb, func() {}, nil
	}
	return nil, nil, fmt.Errorf("unknown workbook backend %q", cfg.WorkbookBackend)
}
