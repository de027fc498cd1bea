package service

import (
	"context"

	"github.com/google/uuid"

	"docgen-server/internal/models"
)

// AuthService defines the interface for authentication and authorization logic.
type AuthService interface {
	Register(ctx context.Context, email, password, name string) (*models.User, error)
	Login(ctx context.Context, email, password string) (string, *models.User, error)
	Logout(ctx context.Context, claims *models.Claims) error
	VerifyAccessToken(ctx context.Context, tokenString string) (*models.Claims, error)
	GetUser(ctx context.Context, userID uuid.UUID) (*models.User, error)
}
