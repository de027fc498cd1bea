package repository

import (
	"context"

	"github.com/google/uuid"

	"docgen-server/internal/models"
)

// UserRepository defines storage operations for users.
type UserRepository interface {
	// CreateUser inserts a new user and fills in the generated ID.
	// Returns models.ErrEmailAlreadyExists on a duplicate email.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByEmail retrieves a user by email.
	// Returns models.ErrUserNotFound when no user exists.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByID retrieves a user by ID.
	// Returns models.ErrUserNotFound when no user exists.
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}
