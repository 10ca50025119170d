package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/blogem/canvass-dashboard/models"
	"github.com/blogem/canvass-dashboard/workbook"
)

// ErrVoterNotFound is returned when no row carries the requested id.
var ErrVoterNotFound = errors.New("voter not found")

// VoterRepository interface defines voter worksheet operations
type VoterRepository interface {
	GetAll(ctx context.Context) ([]models.Voter, []string, error)
	GetByID(ctx context.Context, id string) (*models.Voter, error)
	Update(ctx context.Context, voter *models.Voter, updates []models.ColumnUpdate) ([]string, error)
}

type voterRepository struct {
	wb    workbook.Workbook
	sheet string
}

// NewVoterRepository creates a new voter repository
func NewVoterRepository(wb workbook.Workbook, sheet string) VoterRepository {
	return &voterRepository{wb: wb, sheet: sheet}
}

func (r *voterRepository) table(ctx context.Context) (workbook.Worksheet, *workbook.Table, error) {
	ws, err := r.wb.Worksheet(ctx, r.sheet)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open voters worksheet: %w", err)
	}
	table, err := workbook.ReadTable(ctx, ws)
	if err != nil {
		return nil, nil, err
	}
	return ws, table, nil
}

// GetAll returns every voter row and the trimmed header
func (r *voterRepository) GetAll(ctx context.Context) ([]models.Voter, []string, error) {
	_, table, err := r.table(ctx)
	if err != nil {
		return nil, nil, err
	}

	voters := make([]models.Voter, 0, len(table.Records))
	for _, rec := range table.Records {
		voters = append(voters, models.VoterFromRecord(rec))
	}
	return voters, table.Header, nil
}

// GetByID returns the first row whose id matches
func (r *voterRepository) GetByID(ctx context.Context, id string) (*models.Voter, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrVoterNotFound
	}

	_, table, err := r.table(ctx)
	if err != nil {
		return nil, err
	}

	for _, rec := range table.Records {
		v := models.VoterFromRecord(rec)
		if v.ID == id {
			return &v, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrVoterNotFound, id)
}

// Update writes the updates whose column exists in the header to the
// voter's row and returns the columns written
func (r *voterRepository) Update(ctx context.Context, voter *models.Voter, updates []models.ColumnUpdate) ([]string, error) {
	if voter.Row < 2 {
		return nil, fmt.Errorf("invalid row %d for voter %s", voter.Row, voter.ID)
	}

	ws, table, err := r.table(ctx)
	if err != nil {
		return nil, err
	}

	var cells []workbook.CellUpdate
	var written []string
	for _, u := range updates {
		col := table.ColumnIndex(u.Column)
		if col == 0 {
			continue
		}
		cells = append(cells, workbook.CellUpdate{Row: voter.Row, Col: col, Value: u.Value})
		written = append(written, u.Column)
	}

	if err := ws.UpdateCells(ctx, cells); err != nil {
		return nil, fmt.Errorf("failed to update voter %s: %w", voter.ID, err)
	}
	return written, nil
}
