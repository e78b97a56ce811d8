package auth

import (
	"context"
	"time"
)

// TokenService defines operations for issuing and verifying the signed
// credential carried in the client's cookie.
type TokenService interface {
	// GenerateToken creates a signed credential for the given identity
	// email. Returns the token string or an error if signing fails.
	GenerateToken(ctx context.Context, email string) (string, error)

	// ValidateToken verifies the provided token string and extracts the
	// claims. Returns the claims containing the identity email if the
	// token is valid, or an error if validation fails (expired, invalid
	// signature, etc.).
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)

	// Lifetime reports how long issued credentials are valid, which also
	// drives the cookie's Max-Age.
	Lifetime() time.Duration
}

// Claims represents the decoded content of a verified credential.
type Claims struct {
	// Email is the identity the credential was issued for. It is the
	// authorization key for every owner-scoped route.
	Email string `json:"email,omitempty"`

	// Standard registered JWT claims
	Subject   string    `json:"sub,omitempty"`
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
	ID        string    `json:"jti,omitempty"`
}
