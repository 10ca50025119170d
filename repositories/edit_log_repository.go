package repositories

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/blogem/canvass-dashboard/models"
	"github.com/blogem/canvass-dashboard/workbook"
)

// EditLogRepository handles edit log persistence
type EditLogRepository interface {
	Append(ctx context.Context, entry *models.EditLogEntry) error
	GetByVoterID(ctx context.Context, voterID string) ([]models.EditLogEntry, error)
	Recent(ctx context.Context, limit int) ([]models.EditLogEntry, error)
}

type editLogRepository struct {
	wb    workbook.Workbook
	sheet string
	loc   *time.Location
}

// NewEditLogRepository creates a new edit log repository
func NewEditLogRepository(wb workbook.Workbook, sheet string, loc *time.Location) EditLogRepository {
	if loc == nil {
		loc = time.UTC
	}
	return &editLogRepository{wb: wb, sheet: sheet, loc: loc}
}

// Append adds one row, creating the worksheet on first use
func (r *editLogRepository) Append(ctx context.Context, entry *models.EditLogEntry) error {
	ws, err := workbook.OpenOrCreate(ctx, r.wb, r.sheet, models.EditLogHeader)
	if err != nil {
		return fmt.Errorf("failed to open edit log: %w", err)
	}

	table, err := workbook.ReadTable(ctx, ws)
	if err != nil {
		return err
	}
	header := table.Header
	if len(header) == 0 {
		header = models.EditLogHeader
	}

	if err := ws.AppendRow(ctx, entry.Values(header, r.loc)); err != nil {
		return fmt.Errorf("failed to append edit log entry: %w", err)
	}
	return nil
}

// GetByVoterID returns the entries of one voter, newest first
func (r *editLogRepository) GetByVoterID(ctx context.Context, voterID string) ([]models.EditLogEntry, error) {
	voterID = strings.TrimSpace(voterID)
	all, err := r.all(ctx)
	if err != nil {
		return nil, err
	}

	var out []models.EditLogEntry
	for _, e := range all {
		if e.VoterID == voterID {
			out = append(out, e)
		}
	}
	return out, nil
}

// Recent returns up to limit entries, newest first. A limit of zero or less
// returns everything.
func (r *editLogRepository) Recent(ctx context.Context, limit int) ([]models.EditLogEntry, error) {
	all, err := r.all(ctx)
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

// all reads the log newest first. A missing worksheet is an empty log.
func (r *editLogRepository) all(ctx context.Context) ([]models.EditLogEntry, error) {
	ws, err := r.wb.Worksheet(ctx, r.sheet)
	if errors.Is(err, workbook.ErrWorksheetNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open edit log: %w", err)
	}

	table, err := workbook.ReadTable(ctx, ws)
	if err != nil {
		return nil, err
	}

	entries := make([]models.EditLogEntry, 0, len(table.Records))
	for _, rec := range table.Records {
		entries = append(entries, models.EditLogEntryFromRecord(rec, r.loc))
	}

	// Sheet order is append order; reverse it, then let timestamps win.
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Timestamp.After(entries[j].Timestamp)
	})
	return entries, nil
}
