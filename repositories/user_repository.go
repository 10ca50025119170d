package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/blogem/canvass-dashboard/models"
	"github.com/blogem/canvass-dashboard/workbook"
)

// ErrUserNotFound is returned when no users row carries the username.
var ErrUserNotFound = errors.New("user not found")

// UserRepository interface defines users worksheet operations
type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

type userRepository struct {
	wb    workbook.Workbook
	sheet string
}

// NewUserRepository creates a new user repository
func NewUserRepository(wb workbook.Workbook, sheet string) UserRepository {
	return &userRepository{wb: wb, sheet: sheet}
}

// GetByUsername returns the first user row with the given username
func (r *userRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ErrUserNotFound
	}

	ws, err := r.wb.Worksheet(ctx, r.sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to open users worksheet: %w", err)
	}
	table, err := workbook.ReadTable(ctx, ws)
	if err != nil {
		return nil, err
	}

	for _, rec := range table.Records {
		u := models.UserFromRecord(rec)
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, ErrUserNotFound
}
