package controllers

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/blogem/canvass-dashboard/charts"
	"github.com/blogem/canvass-dashboard/models"
	"github.com/blogem/canvass-dashboard/services"
)

// AnalysisController handles the analysis page and its charts
type AnalysisController struct {
	services *services.Services
	opts     Options
}

// NewAnalysisController creates a new analysis controller
func NewAnalysisController(services *services.Services, opts Options) *AnalysisController {
	return &AnalysisController{
		services: services,
		opts:     opts,
	}
}

type analysisTab struct {
	Key   string
	Label string
}

var analysisTabs = []analysisTab{
	{"genel", "🏆 Genel Durum"},
	{"kurum", "🏢 Kurumsal Analiz"},
	{"gecmis", "🔄 Seçim Geçmişi"},
	{"kidem", "🎓 Kıdem Analizi"},
	{"saha", "🚗 Saha & Lojistik"},
}

type analysisView struct {
	Tabs   []analysisTab
	Tab    string
	Report *models.AnalysisReport
}

func validTab(key string) bool {
	for _, t := range analysisTabs {
		if t.Key == key {
			return true
		}
	}
	return false
}

// Index handles GET /analysis
func (c *AnalysisController) Index(w http.ResponseWriter, r *http.Request) {
	tab := r.URL.Query().Get("tab")
	if !validTab(tab) {
		tab = analysisTabs[0].Key
	}

	report, err := c.services.Analysis.GetReport(r.Context())
	if err != nil {
		slog.Error("failed to build analysis report", "error", err)
		renderError(w, r, http.StatusServiceUnavailable, "Bağlantı Hatası", connectionErrorMessage)
		return
	}

	data := newPageData(r, "Analiz", "analysis", analysisView{
		Tabs:   analysisTabs,
		Tab:    tab,
		Report: report,
	})
	renderTemplate(w, "analysis", "analysis.html", data)
}

// Chart handles GET /analysis/charts/{name}
func (c *AnalysisController) Chart(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if !isChartName(name) {
		http.NotFound(w, r)
		return
	}

	report, err := c.services.Analysis.GetReport(r.Context())
	if err != nil {
		slog.Error("failed to build analysis report", "chart", name, "error", err)
		http.Error(w, connectionErrorMessage, http.StatusServiceUnavailable)
		return
	}

	var buf bytes.Buffer
	err = charts.Render(&buf, name, report)
	switch {
	case errors.Is(err, charts.ErrNoData):
		w.WriteHeader(http.StatusNoContent)
		return
	case err != nil:
		slog.Error("failed to render chart", "chart", name, "error", err)
		http.Error(w, "Failed to render chart", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	buf.WriteTo(w)
}

func isChartName(name string) bool {
	for _, n := range charts.Names {
		if n == name {
			return true
		}
	}
	return false
}
