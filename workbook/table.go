package workbook

import (
	"context"
	"fmt"
	"strings"
)

// Record is one data row keyed by header name.
type Record struct {
	Row    int
	Values map[string]string
}

// Get returns the value for column, or "" when the column is absent.
func (r Record) Get(column string) string {
	return r.Values[column]
}

// Table is a worksheet parsed into a header and records.
type Table struct {
	Header  []string
	Records []Record
}

// ParseTable turns raw worksheet values into a Table. Header names are
// trimmed, short rows are padded and blank rows are skipped without
// disturbing row numbers.
func ParseTable(values [][]string) *Table {
	t := &Table{}
	if len(values) == 0 {
		return t
	}

	t.Header = make([]string, len(values[0]))
	for i, h := range values[0] {
		t.Header[i] = strings.TrimSpace(h)
	}

	for i, raw := range values[1:] {
		if isBlank(raw) {
			continue
		}
		rec := Record{
			Row:    i + 2,
			Values: make(map[string]string, len(t.Header)),
		}
		for c, name := range t.Header {
			if name == "" {
				continue
			}
			// Duplicate header names keep the leftmost column.
			if _, seen := rec.Values[name]; seen {
				continue
			}
			if c < len(raw) {
				rec.Values[name] = raw[c]
			} else {
				rec.Values[name] = ""
			}
		}
		t.Records = append(t.Records, rec)
	}

	return t
}

// ReadTable reads and parses a worksheet.
func ReadTable(ctx context.Context, ws Worksheet) (*Table, error) {
	values, err := ws.Values(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read worksheet %s: %w", ws.Name(), err)
	}
	return ParseTable(values), nil
}

// ColumnIndex returns the 1-based column of name, or 0 when it is absent.
func (t *Table) ColumnIndex(name string) int {
	for i, h := range t.Header {
		if h == name {
			return i + 1
		}
	}
	return 0
}

// HasColumn reports whether the header contains name.
func (t *Table) HasColumn(name string) bool {
	return t.ColumnIndex(name) > 0
}

// AvailableColumns filters desired down to the columns present in the header,
// keeping the order of desired.
func (t *Table) AvailableColumns(desired []string) []string {
	var out []string
	for _, c := range desired {
		if t.HasColumn(c) {
			out = append(out, c)
		}
	}
	return out
}

func isBlank(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
