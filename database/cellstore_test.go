package database

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blogem/canvass-dashboard/workbook"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := InitializeDatabase(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to initialize test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return db
}

func TestRunMigrations_Idempotent(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, RunMigrations(db))

	applied, err := getAppliedMigrations(db)
	require.NoError(t, err)
	assert.Equal(t, []string{"001_cell_store", "002_cells_modified_at"}, applied)
}

func TestCellStore(t *testing.T) {
	ctx := context.Background()
	store := NewCellStore(setupTestDB(t))

	_, err := store.Worksheet(ctx, "secmenler")
	assert.ErrorIs(t, err, workbook.ErrWorksheetNotFound)

	ws, err := store.AddWorksheet(ctx, "secmenler", []string{"Sicil_No", "Ad_Soyad", "Egilim"})
	require.NoError(t, err)

	require.NoError(t, ws.AppendRow(ctx, []string{"1001", "Ali Veli"}))
	require.NoError(t, ws.AppendRow(ctx, []string{"1002", "Ayşe Kaya", "Kararsızım"}))

	values, err := ws.Values(ctx)
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"Sicil_No", "Ad_Soyad", "Egilim"},
		{"1001", "Ali Veli"},
		{"1002", "Ayşe Kaya", "Kararsızım"},
	}, values)

	// Updating a cell that was never written creates it.
	require.NoError(t, ws.UpdateCells(ctx, []workbook.CellUpdate{
		{Row: 2, Col: 3, Value: "Tüm Listemizi Yazar"},
		{Row: 3, Col: 3, Value: "Kısmen Yazar"},
	}))

	reopened, err := store.Worksheet(ctx, "secmenler")
	require.NoError(t, err)
	table, err := workbook.ReadTable(ctx, reopened)
	require.NoError(t, err)
	require.Len(t, table.Records, 2)
	assert.Equal(t, "Tüm Listemizi Yazar", table.Records[0].Get("Egilim"))
	assert.Equal(t, "Kısmen Yazar", table.Records[1].Get("Egilim"))
}

func TestCellStore_InvalidCell(t *testing.T) {
	ctx := context.Background()
	store := NewCellStore(setupTestDB(t))

	ws, err := store.AddWorksheet(ctx, "log", nil)
	require.NoError(t, err)

	err = ws.UpdateCells(ctx, []workbook.CellUpdate{{Row: 0, Col: 1, Value: "x"}})
	assert.Error(t, err)

	values, err := ws.Values(ctx)
	require.NoError(t, err)
	assert.Empty(t, values)
}

func TestCellStore_DuplicateWorksheet(t *testing.T) {
	ctx := context.Background()
	store := NewCellStore(setupTestDB(t))

	_, err := store.AddWorksheet(ctx, "kullanicilar", nil)
	require.NoError(t, err)
	_, err = store.AddWorksheet(ctx, "kullanicilar", nil)
	assert.Error(t, err)
}
