package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims for the JWT tokens.
type Claims struct {
	UserID uuid.UUID `json:"uid"`
	Roles  []string  `json:"roles,omitempty"`
	Type   string    `json:"type"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
// Tokens are issued by the identity provider; the service only needs to verify them.
type TokenService interface {
	// GenerateAccessToken creates a signed access token for a user.
	GenerateAccessToken(userID uuid.UUID, roles []string) (string, error)

	// ValidateToken checks the validity of an access token and returns its claims.
	ValidateToken(tokenString string) (*Claims, error)
}
