// Package router wires controllers and middleware into the HTTP handler.
package router

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"gitea.com/go-chi/session"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/blogem/canvass-dashboard/authenticator"
	"github.com/blogem/canvass-dashboard/controllers"
	"github.com/blogem/canvass-dashboard/metrics"
	authmiddleware "github.com/blogem/canvass-dashboard/middleware"
)

// SessionCookieName is the cookie that carries the session id.
const SessionCookieName = "canvass_session"

// Options configures the router
type Options struct {
	UseHTTPS           bool
	SessionLifetimeSec int
	// Metrics is optional; /metrics is only mounted when set.
	Metrics *metrics.Metrics
	Logger  *slog.Logger
	// RequestLogging turns on the chi request logger.
	RequestLogging bool
}

// New configures all routes. provider may be nil when single sign-on is off.
func New(ctrl *controllers.Controllers, provider authenticator.Provider, opts Options) (*chi.Mux, error) {
	if opts.SessionLifetimeSec < 1 {
		opts.SessionLifetimeSec = 3600
	}

	r := chi.NewRouter()

	// Middleware
	if opts.RequestLogging {
		r.Use(middleware.Logger)
	}
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second)) // OAuth callbacks and sheet reads can be slow
	r.Use(middleware.Compress(5))
	if opts.Metrics != nil {
		r.Use(opts.Metrics.Middleware)
	}

	sessionHandler, err := session.Sessioner(session.Options{
		Provider:       "memory",
		ProviderConfig: "",
		CookieName:     SessionCookieName,
		Secure:         opts.UseHTTPS,
		SameSite:       http.SameSiteLaxMode,
		Gclifetime:     int64(opts.SessionLifetimeSec),
		Maxlifetime:    int64(opts.SessionLifetimeSec),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize session: %w", err)
	}
	r.Use(sessionHandler)
	r.Use(authmiddleware.AuditLogger(opts.Logger))

	// PUBLIC ROUTES (no authentication required)
	r.Get("/login", ctrl.Auth.ShowLogin)
	r.Post("/login", ctrl.Auth.Login)
	if provider != nil {
		r.Get("/login/sso", ctrl.Auth.SSOLogin)
		r.Get("/callback", ctrl.Auth.Callback)
	}
	r.Get("/logout", ctrl.Auth.Logout)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `{"status": "healthy", "service": "canvass-dashboard"}`)
	})
	if opts.Metrics != nil {
		r.Handle("/metrics", opts.Metrics.Handler())
	}

	// PROTECTED ROUTES (authentication required)
	r.Group(func(r chi.Router) {
		r.Use(authmiddleware.RequireAuth)

		r.Get("/", ctrl.Dashboard.Index)

		r.Route("/voters", func(r chi.Router) {
			r.Get("/", ctrl.Voter.Index)
			r.Get("/edit", ctrl.Voter.Edit)
			r.Post("/edit", ctrl.Voter.Update)
			r.Get("/export.pdf", ctrl.Voter.ExportPDF)
			r.Get("/export.xlsx", ctrl.Voter.ExportXLSX)
		})

		r.Route("/analysis", func(r chi.Router) {
			r.Get("/", ctrl.Analysis.Index)
			r.Get("/charts/{name}", ctrl.Analysis.Chart)
		})

		r.Get("/log", ctrl.Log.Index)
	})

	return r, nil
}
