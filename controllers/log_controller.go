package controllers

import (
	"log/slog"
	"net/http"

	"github.com/blogem/canvass-dashboard/models"
	"github.com/blogem/canvass-dashboard/services"
)

// LogController shows the most recent saved edits
type LogController struct {
	services *services.Services
	opts     Options
}

// NewLogController creates a new log controller
func NewLogController(services *services.Services, opts Options) *LogController {
	return &LogController{
		services: services,
		opts:     opts,
	}
}

// Index handles GET /log
func (c *LogController) Index(w http.ResponseWriter, r *http.Request) {
	entries, err := c.services.Voter.RecentEdits(r.Context(), c.opts.LogLimit)
	if err != nil {
		slog.Error("failed to load edit log", "error", err)
		renderError(w, r, http.StatusServiceUnavailable, "Bağlantı Hatası", connectionErrorMessage)
		return
	}

	data := newPageData(r, "Değişiklik Kaydı", "log", struct {
		Entries []models.EditLogEntry
	}{
		Entries: entries,
	})
	renderTemplate(w, "log", "log.html", data)
}
