// Package xlsxfile implements workbook.Workbook on a local .xlsx file.
package xlsxfile

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/xuri/excelize/v2"

	"github.com/blogem/canvass-dashboard/workbook"
)

// Workbook is an .xlsx file held open in memory and saved after every write.
type Workbook struct {
	mu   sync.Mutex
	path string
	file *excelize.File
}

// Open opens path, creating an empty workbook file if it does not exist.
func Open(path string) (*Workbook, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		f := excelize.NewFile()
		if err := f.SaveAs(path); err != nil {
			return nil, fmt.Errorf("failed to create workbook %s: %w", path, err)
		}
		return &Workbook{path: path, file: f}, nil
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", path, err)
	}
	return &Workbook{path: path, file: f}, nil
}

// Close releases the underlying file.
func (w *Workbook) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.file.Close()
}

// Worksheet implements workbook.Workbook.
func (w *Workbook) Worksheet(_ context.Context, name string) (workbook.Worksheet, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.hasSheet(name) {
		return nil, fmt.Errorf("%w: %s", workbook.ErrWorksheetNotFound, name)
	}
	return &worksheet{book: w, name: name}, nil
}

// AddWorksheet implements workbook.Workbook.
func (w *Workbook) AddWorksheet(_ context.Context, name string, header []string) (workbook.Worksheet, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.hasSheet(name) {
		return nil, fmt.Errorf("worksheet %s already exists", name)
	}
	if _, err := w.file.NewSheet(name); err != nil {
		return nil, fmt.Errorf("failed to add worksheet %s: %w", name, err)
	}
	if len(header) > 0 {
		if err := w.file.SetSheetRow(name, "A1", toRow(header)); err != nil {
			return nil, fmt.Errorf("failed to write header of %s: %w", name, err)
		}
	}
	if err := w.file.Save(); err != nil {
		return nil, fmt.Errorf("failed to save workbook: %w", err)
	}
	return &worksheet{book: w, name: name}, nil
}

func (w *Workbook) hasSheet(name string) bool {
	idx, err := w.file.GetSheetIndex(name)
	return err == nil && idx >= 0
}

type worksheet struct {
	book *Workbook
	name string
}

func (s *worksheet) Name() string { return s.name }

func (s *worksheet) Values(_ context.Context) ([][]string, error) {
	s.book.mu.Lock()
	defer s.book.mu.Unlock()

	rows, err := s.book.file.GetRows(s.name)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows of %s: %w", s.name, err)
	}
	return rows, nil
}

func (s *worksheet) UpdateCells(_ context.Context, updates []workbook.CellUpdate) error {
	if len(updates) == 0 {
		return nil
	}

	s.book.mu.Lock()
	defer s.book.mu.Unlock()

	for _, u := range updates {
		cell, err := excelize.CoordinatesToCellName(u.Col, u.Row)
		if err != nil {
			return fmt.Errorf("invalid cell (%d,%d): %w", u.Row, u.Col, err)
		}
		if err := s.book.file.SetCellStr(s.name, cell, u.Value); err != nil {
			return fmt.Errorf("failed to set %s!%s: %w", s.name, cell, err)
		}
	}
	return s.book.file.Save()
}

func (s *worksheet) AppendRow(_ context.Context, values []string) error {
	s.book.mu.Lock()
	defer s.book.mu.Unlock()

	rows, err := s.book.file.GetRows(s.name)
	if err != nil {
		return fmt.Errorf("failed to read rows of %s: %w", s.name, err)
	}
	cell, err := excelize.CoordinatesToCellName(1, len(rows)+1)
	if err != nil {
		return err
	}
	if err := s.book.file.SetSheetRow(s.name, cell, toRow(values)); err != nil {
		return fmt.Errorf("failed to append to %s: %w", s.name, err)
	}
	return s.book.file.Save()
}

func toRow(values []string) *[]interface{} {
	row := make([]interface{}, len(values))
	for i, v := range values {
		row[i] = v
	}
	return &row
}
