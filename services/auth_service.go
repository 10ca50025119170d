package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/blogem/canvass-dashboard/models"
	"github.com/blogem/canvass-dashboard/repositories"
)

// ErrInvalidCredentials covers both unknown users and wrong passwords.
var ErrInvalidCredentials = errors.New("invalid username or password")

var bcryptPrefixes = []string{"$2a$", "$2b$", "$2y$"}

// AuthService interface defines credential checks against the users worksheet
type AuthService interface {
	Authenticate(ctx context.Context, username, password string) (*models.User, error)
	LookupUser(ctx context.Context, username string) (*models.User, error)
}

type authService struct {
	userRepo repositories.UserRepository
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repositories.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

// Authenticate returns the user when password matches the stored credential
func (s *authService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.userRepo.GetByUsername(ctx, username)
	if errors.Is(err, repositories.ErrUserNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !passwordMatches(user.Password, password) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// LookupUser resolves an externally authenticated identity to a known user
func (s *authService) LookupUser(ctx context.Context, username string) (*models.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, strings.TrimSpace(username))
	if errors.Is(err, repositories.ErrUserNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	return user, nil
}

func passwordMatches(stored, given string) bool {
	stored = strings.TrimSpace(stored)
	if stored == "" {
		return false
	}
	for _, p := range bcryptPrefixes {
		if strings.HasPrefix(stored, p) {
			return bcrypt.CompareHashAndPassword([]byte(stored), []byte(given)) == nil
		}
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(given)) == 1
}
