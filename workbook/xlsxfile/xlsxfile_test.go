package xlsxfile

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blogem/canvass-dashboard/workbook"
)

func TestWorkbook_RoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "canvass.xlsx")

	wb, err := Open(path)
	require.NoError(t, err)

	_, err = wb.Worksheet(ctx, "secmenler")
	assert.ErrorIs(t, err, workbook.ErrWorksheetNotFound)

	ws, err := wb.AddWorksheet(ctx, "secmenler", []string{"Sicil_No", "Ad_Soyad", "Egilim"})
	require.NoError(t, err)
	require.NoError(t, ws.AppendRow(ctx, []string{"1001", "Ali Veli", ""}))
	require.NoError(t, ws.AppendRow(ctx, []string{"1002", "Ayşe Kaya", "Kararsızım"}))

	require.NoError(t, ws.UpdateCells(ctx, []workbook.CellUpdate{{Row: 2, Col: 3, Value: "Kısmen Yazar"}}))
	require.NoError(t, wb.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	ws, err = reopened.Worksheet(ctx, "secmenler")
	require.NoError(t, err)
	table, err := workbook.ReadTable(ctx, ws)
	require.NoError(t, err)

	require.Len(t, table.Records, 2)
	assert.Equal(t, "Kısmen Yazar", table.Records[0].Get("Egilim"))
	assert.Equal(t, "Kararsızım", table.Records[1].Get("Egilim"))
	assert.Equal(t, 3, table.Records[1].Row)
}

func TestWorkbook_AddExistingWorksheetFails(t *testing.T) {
	ctx := context.Background()
	wb, err := Open(filepath.Join(t.TempDir(), "book.xlsx"))
	require.NoError(t, err)
	defer wb.Close()

	_, err = wb.AddWorksheet(ctx, "kullanicilar", []string{"Kullanici_Adi", "Sifre"})
	require.NoError(t, err)
	_, err = wb.AddWorksheet(ctx, "kullanicilar", nil)
	assert.Error(t, err)
}
