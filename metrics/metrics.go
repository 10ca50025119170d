// Package metrics exposes Prometheus counters and histograms for HTTP
// requests and workbook operations.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/blogem/canvass-dashboard/workbook"
)

const namespace = "canvass"

// Metrics owns a registry and the collectors registered on it
type Metrics struct {
	registry *prometheus.Registry

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
	workbookOps  *prometheus.CounterVec
	workbookTime *prometheus.HistogramVec
}

// New creates a registry with the application collectors plus the Go
// runtime and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by route pattern, method and status code.",
		}, []string{"route", "method", "code"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by route pattern.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
		workbookOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "workbook",
			Name:      "operations_total",
			Help:      "Workbook operations by worksheet, operation and result.",
		}, []string{"worksheet", "operation", "result"}),
		workbookTime: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "workbook",
			Name:      "operation_duration_seconds",
			Help:      "Workbook operation latency.",
			Buckets:   []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10},
		}, []string{"operation"}),
	}

	m.registry.MustRegister(
		m.httpRequests,
		m.httpDuration,
		m.workbookOps,
		m.workbookTime,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Middleware records every request under its chi route pattern, so
// /voters/edit?id=1 and ?id=2 share one series.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if p := rctx.RoutePattern(); p != "" {
				route = p
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		m.httpRequests.WithLabelValues(route, r.Method, strconv.Itoa(status)).Inc()
		m.httpDuration.WithLabelValues(route, r.Method).Observe(time.Since(start).Seconds())
	})
}

func (m *Metrics) observe(sheet, op string, start time.Time, err error) {
	result := "ok"
	switch {
	case errors.Is(err, workbook.ErrWorksheetNotFound):
		result = "not_found"
	case err != nil:
		result = "error"
	}
	m.workbookOps.WithLabelValues(sheet, op, result).Inc()
	m.workbookTime.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

// InstrumentWorkbook wraps wb so that every call is counted and timed.
func (m *Metrics) InstrumentWorkbook(wb workbook.Workbook) workbook.Workbook {
	return &instrumentedWorkbook{wb: wb, m: m}
}

type instrumentedWorkbook struct {
	wb workbook.Workbook
	m  *Metrics
}

func (w *instrumentedWorkbook) Worksheet(ctx context.Context, name string) (workbook.Worksheet, error) {
	start := time.Now()
	ws, err := w.wb.Worksheet(ctx, name)
	w.m.observe(name, "open", start, err)
	if err != nil {
		return nil, err
	}
	return &instrumentedWorksheet{ws: ws, m: w.m}, nil
}

func (w *instrumentedWorkbook) AddWorksheet(ctx context.Context, name string, header []string) (workbook.Worksheet, error) {
	start := time.Now()
	ws, err := w.wb.AddWorksheet(ctx, name, header)
	w.m.observe(name, "add", start, err)
	if err != nil {
		return nil, err
	}
	return &instrumentedWorksheet{ws: ws, m: w.m}, nil
}

type instrumentedWorksheet struct {
	ws workbook.Worksheet
	m  *Metrics
}

func (w *instrumentedWorksheet) Name() string { return w.ws.Name() }

func (w *instrumentedWorksheet) Values(ctx context.Context) ([][]string, error) {
	start := time.Now()
	values, err := w.ws.Values(ctx)
	w.m.observe(w.ws.Name(), "read", start, err)
	return values, err
}

func (w *instrumentedWorksheet) UpdateCells(ctx context.Context, updates []workbook.CellUpdate) error {
	start := time.Now()
	err := w.ws.UpdateCells(ctx, updates)
	w.m.observe(w.ws.Name(), "update", start, err)
	return err
}

func (w *instrumentedWorksheet) AppendRow(ctx context.Context, row []string) error {
	start := time.Now()
	err := w.ws.AppendRow(ctx, row)
	w.m.observe(w.ws.Name(), "append", start, err)
	return err
}
