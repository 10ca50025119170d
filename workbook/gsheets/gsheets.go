// Package gsheets implements workbook.Workbook on a Google Sheets spreadsheet
// accessed with a service account.
package gsheets

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/blogem/canvass-dashboard/workbook"
)

// Config holds the spreadsheet location and service account credentials.
// CredentialsJSON takes precedence over CredentialsFile.
type Config struct {
	SpreadsheetID   string
	CredentialsFile string
	CredentialsJSON string
}

// Workbook is a remote spreadsheet.
type Workbook struct {
	svc           *sheets.Service
	spreadsheetID string
}

// New authenticates with the service account and returns the spreadsheet.
func New(ctx context.Context, cfg Config) (*Workbook, error) {
	if cfg.SpreadsheetID == "" {
		return nil, errors.New("spreadsheet ID is required")
	}

	creds := []byte(cfg.CredentialsJSON)
	if len(creds) == 0 {
		if cfg.CredentialsFile == "" {
			return nil, errors.New("service account credentials are required")
		}
		b, err := os.ReadFile(cfg.CredentialsFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read credentials file: %w", err)
		}
		creds = b
	}

	googleCreds, err := google.CredentialsFromJSON(ctx, creds, sheets.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("failed to parse service account credentials: %w", err)
	}

	return newWorkbook(ctx, cfg.SpreadsheetID, option.WithTokenSource(googleCreds.TokenSource))
}

func newWorkbook(ctx context.Context, spreadsheetID string, opts ...option.ClientOption) (*Workbook, error) {
	svc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets client: %w", err)
	}

	return &Workbook{svc: svc, spreadsheetID: spreadsheetID}, nil
}

// Worksheet implements workbook.Workbook.
func (w *Workbook) Worksheet(ctx context.Context, name string) (workbook.Worksheet, error) {
	titles, err := w.sheetTitles(ctx)
	if err != nil {
		return nil, err
	}
	for _, t := range titles {
		if t == name {
			return &worksheet{book: w, name: name}, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", workbook.ErrWorksheetNotFound, name)
}

// AddWorksheet implements workbook.Workbook.
func (w *Workbook) AddWorksheet(ctx context.Context, name string, header []string) (workbook.Worksheet, error) {
	req := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			AddSheet: &sheets.AddSheetRequest{
				Properties: &sheets.SheetProperties{Title: name},
			},
		}},
	}
	if _, err := w.svc.Spreadsheets.BatchUpdate(w.spreadsheetID, req).Context(ctx).Do(); err != nil {
		return nil, fmt.Errorf("failed to add worksheet %s: %w", name, err)
	}

	ws := &worksheet{book: w, name: name}
	if len(header) > 0 {
		if err := ws.AppendRow(ctx, header); err != nil {
			return nil, err
		}
	}
	return ws, nil
}

func (w *Workbook) sheetTitles(ctx context.Context) ([]string, error) {
	resp, err := w.svc.Spreadsheets.Get(w.spreadsheetID).
		Fields("sheets.properties.title").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to load spreadsheet metadata: %w", err)
	}

	titles := make([]string, 0, len(resp.Sheets))
	for _, s := range resp.Sheets {
		if s.Properties != nil {
			titles = append(titles, s.Properties.Title)
		}
	}
	return titles, nil
}

type worksheet struct {
	book *Workbook
	name string
}

func (s *worksheet) Name() string { return s.name }

func (s *worksheet) Values(ctx context.Context) ([][]string, error) {
	resp, err := s.book.svc.Spreadsheets.Values.Get(s.book.spreadsheetID, quoteSheet(s.name)).
		ValueRenderOption("FORMATTED_VALUE").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.name, err)
	}

	out := make([][]string, len(resp.Values))
	for i, row := range resp.Values {
		out[i] = make([]string, len(row))
		for j, cell := range row {
			out[i][j] = fmt.Sprint(cell)
		}
	}
	return out, nil
}

func (s *worksheet) UpdateCells(ctx context.Context, updates []workbook.CellUpdate) error {
	if len(updates) == 0 {
		return nil
	}

	data := make([]*sheets.ValueRange, 0, len(updates))
	for _, u := range updates {
		cell, err := excelize.CoordinatesToCellName(u.Col, u.Row)
		if err != nil {
			return fmt.Errorf("invalid cell (%d,%d): %w", u.Row, u.Col, err)
		}
		data = append(data, &sheets.ValueRange{
			Range:  quoteSheet(s.name) + "!" + cell,
			Values: [][]interface{}{{u.Value}},
		})
	}

	req := &sheets.BatchUpdateValuesRequest{
		ValueInputOption: "RAW",
		Data:             data,
	}
	if _, err := s.book.svc.Spreadsheets.Values.BatchUpdate(s.book.spreadsheetID, req).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to update %s: %w", s.name, err)
	}
	return nil
}

func (s *worksheet) AppendRow(ctx context.Context, values []string) error {
	row := make([]interface{}, len(values))
	for i, v := range values {
		row[i] = v
	}

	_, err := s.book.svc.Spreadsheets.Values.Append(
		s.book.spreadsheetID,
		quoteSheet(s.name)+"!A1",
		&sheets.ValueRange{Values: [][]interface{}{row}},
	).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to append to %s: %w", s.name, err)
	}
	return nil
}

// quoteSheet quotes a sheet title for A1 notation.
func quoteSheet(name string) string {
	return "'" + strings.ReplaceAll(name, "'", "''") + "'"
}
