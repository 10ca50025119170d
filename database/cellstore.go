package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/blogem/canvass-dashboard/workbook"
)

// CellStore is a workbook kept in SQLite as a sparse grid of cells.
type CellStore struct {
	db *sql.DB
}

// NewCellStore returns a workbook backed by db. Migrations must have run.
func NewCellStore(db *sql.DB) *CellStore {
	return &CellStore{db: db}
}

// Worksheet implements workbook.Workbook.
func (s *CellStore) Worksheet(ctx context.Context, name string) (workbook.Worksheet, error) {
	var found string
	err := s.db.QueryRowContext(ctx, `SELECT name FROM worksheets WHERE name = ?`, name).Scan(&found)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", workbook.ErrWorksheetNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up worksheet %s: %w", name, err)
	}
	return &cellSheet{db: s.db, name: name}, nil
}

// AddWorksheet implements workbook.Workbook.
func (s *CellStore) AddWorksheet(ctx context.Context, name string, header []string) (workbook.Worksheet, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errors.New("worksheet name is required")
	}
	if _, err := s.db.ExecContext(ctx, `INSERT INTO worksheets (name) VALUES (?)`, name); err != nil {
		return nil, fmt.Errorf("failed to add worksheet %s: %w", name, err)
	}

	ws := &cellSheet{db: s.db, name: name}
	if len(header) > 0 {
		if err := ws.AppendRow(ctx, header); err != nil {
			return nil, err
		}
	}
	return ws, nil
}

type cellSheet struct {
	db   *sql.DB
	name string
}

func (c *cellSheet) Name() string { return c.name }

func (c *cellSheet) Values(ctx context.Context) ([][]string, error) {
	rows, err := c.db.QueryContext(ctx, `
		SELECT row_num, col_num, value
		FROM cells
		WHERE sheet = ?
		ORDER BY row_num, col_num
	`, c.name)
	if err != nil {
		return nil, fmt.Errorf("failed to query cells of %s: %w", c.name, err)
	}
	defer rows.Close()

	var grid [][]string
	for rows.Next() {
		var r, col int
		var value string
		if err := rows.Scan(&r, &col, &value); err != nil {
			return nil, fmt.Errorf("failed to scan cell: %w", err)
		}
		for len(grid) < r {
			grid = append(grid, nil)
		}
		row := grid[r-1]
		for len(row) < col {
			row = append(row, "")
		}
		row[col-1] = value
		grid[r-1] = row
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating cells: %w", err)
	}

	return grid, nil
}

func (c *cellSheet) UpdateCells(ctx context.Context, updates []workbook.CellUpdate) error {
	if len(updates) == 0 {
		return nil
	}

	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now()
	for _, u := range updates {
		if u.Row < 1 || u.Col < 1 {
			return fmt.Errorf("invalid cell (%d,%d)", u.Row, u.Col)
		}
		_, err := tx.ExecContext(ctx, `
			INSERT INTO cells (sheet, row_num, col_num, value, modified_at)
			VALUES (?, ?, ?, ?, ?)
			ON CONFLICT (sheet, row_num, col_num)
			DO UPDATE SET value = excluded.value, modified_at = excluded.modified_at
		`, c.name, u.Row, u.Col, u.Value, now)
		if err != nil {
			return fmt.Errorf("failed to update cell (%d,%d) of %s: %w", u.Row, u.Col, c.name, err)
		}
	}

	return tx.Commit()
}

func (c *cellSheet) AppendRow(ctx context.Context, values []string) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var last int
	err = tx.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(row_num), 0) FROM cells WHERE sheet = ?`, c.name,
	).Scan(&last)
	if err != nil {
		return fmt.Errorf("failed to find last row of %s: %w", c.name, err)
	}

	now := time.Now()
	for i, v := range values {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO cells (sheet, row_num, col_num, value, modified_at)
			VALUES (?, ?, ?, ?, ?)
		`, c.name, last+1, i+1, v, now)
		if err != nil {
			return fmt.Errorf("failed to append to %s: %w", c.name, err)
		}
	}

	return tx.Commit()
}
