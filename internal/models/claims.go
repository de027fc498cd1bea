package models

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims holds the custom and registered JWT fields carried by access tokens.
// RegisteredClaims contributes ExpiresAt, IssuedAt and ID (jti).
type Claims struct {
	UserID uuid.UUID `json:"user_id"`
	jwt.RegisteredClaims
}
