package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Identity is the authenticated caller extracted from a verified token.
type Identity struct {
	ID    uuid.UUID
	Email string
}

// Claims defines the custom claims carried by issued tokens.
// The user id travels in the registered "sub" claim.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying identity tokens.
// Tokens are stateless: once issued they stay valid until expiry, with no
// revocation store to consult.
type TokenService interface {
	// Issue creates a signed, time-limited token for the given identity.
	Issue(identity Identity) (string, error)

	// Verify checks signature and expiry and returns the embedded identity.
	// Malformed, tampered and expired tokens all return an error.
	Verify(token string) (*Identity, error)
}
