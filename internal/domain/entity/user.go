// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents a single account in the system. An account is identified by
// its email, which is unique across all users, and carries only the credential
// hash rather than any plaintext secret.
type User struct {
	ID           uuid.UUID // The unique identifier for the user, assigned by the database.
	Email        string    // The login identifier. Exactly one User exists per email.
	PasswordHash string    // The bcrypt hash of the user's password. Never the plaintext.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}
