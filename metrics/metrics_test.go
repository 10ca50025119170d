package metrics

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blogem/canvass-dashboard/database"
	"github.com/blogem/canvass-dashboard/workbook"
)

func TestMiddleware_UsesRoutePattern(t *testing.T) {
	m := New()
	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/voters/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	r.Get("/ok", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	for _, path := range []string{"/voters/1", "/voters/2", "/ok", "/missing"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("/voters/{id}", "GET", "418")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("/ok", "GET", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("unmatched", "GET", "404")))
}

func TestInstrumentWorkbook(t *testing.T) {
	ctx := context.Background()
	db, err := database.InitializeDatabase(filepath.Join(t.TempDir(), "metrics.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	m := New()
	wb := m.InstrumentWorkbook(database.NewCellStore(db))

	_, err = wb.Worksheet(ctx, "secmenler")
	assert.ErrorIs(t, err, workbook.ErrWorksheetNotFound)

	ws, err := wb.AddWorksheet(ctx, "secmenler", []string{"Sicil_No"})
	require.NoError(t, err)
	require.NoError(t, ws.AppendRow(ctx, []string{"1001"}))
	_, err = ws.Values(ctx)
	require.NoError(t, err)
	require.Error(t, ws.UpdateCells(ctx, []workbook.CellUpdate{{Row: 0, Col: 1, Value: "x"}}))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.workbookOps.WithLabelValues("secmenler", "open", "not_found")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.workbookOps.WithLabelValues("secmenler", "add", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.workbookOps.WithLabelValues("secmenler", "append", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.workbookOps.WithLabelValues("secmenler", "read", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.workbookOps.WithLabelValues("secmenler", "update", "error")))
}

func TestHandler(t *testing.T) {
	m := New()
	m.httpRequests.WithLabelValues("/", "GET", "200").Inc()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(body), "canvass_http_requests_total")
	assert.Contains(t, string(body), "go_goroutines")
}
