// Package workbook abstracts the spreadsheet that holds voters, users and
// the edit log. Backends live in subpackages (gsheets, xlsxfile) and in the
// database package (SQLite cell store).
package workbook

import (
	"context"
	"errors"
)

// ErrWorksheetNotFound is returned when a named worksheet does not exist.
var ErrWorksheetNotFound = errors.New("worksheet not found")

// CellUpdate addresses a single cell. Row and Col are 1-based, the header
// being row 1.
type CellUpdate struct {
	Row   int
	Col   int
	Value string
}

// Workbook opens worksheets by name.
type Workbook interface {
	Worksheet(ctx context.Context, name string) (Worksheet, error)
	AddWorksheet(ctx context.Context, name string, header []string) (Worksheet, error)
}

// Worksheet is a grid of string cells.
type Worksheet interface {
	Name() string
	// Values returns every row including the header row.
	Values(ctx context.Context) ([][]string, error)
	UpdateCells(ctx context.Context, updates []CellUpdate) error
	AppendRow(ctx context.Context, values []string) error
}

// OpenOrCreate returns the named worksheet, creating it with header when it
// does not exist yet.
func OpenOrCreate(ctx context.Context, wb Workbook, name string, header []string) (Worksheet, error) {
	ws, err := wb.Worksheet(ctx, name)
	if err == nil {
		return ws, nil
	}
	if !errors.Is(err, ErrWorksheetNotFound) {
		return nil, err
	}
	return wb.AddWorksheet(ctx, name, header)
}
