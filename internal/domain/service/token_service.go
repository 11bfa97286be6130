package service

import (
	"time"

	"github.com/google/uuid"
)

// Claims is the verified identity carried by an access token.
type Claims struct {
	UserID    uuid.UUID
	Roles     []string
	ExpiresAt time.Time
}

// TokenService defines the interface for issuing and validating access tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateAccessToken creates a signed access token for a user.
	GenerateAccessToken(userID uuid.UUID, roles []string) (token string, expiresAt time.Time, err error)

	// ValidateToken verifies a token. Failures are TOKEN_EXPIRED or TOKEN_INVALID application errors.
	ValidateToken(tokenString string) (*Claims, error)
}
