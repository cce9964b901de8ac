package storage

import (
	"context"
	"time"
)

//go:generate moq -out auth_mock.go . AuthStorage

// AuthStorage stores the bearer credential the sync engine presents to the
// server. The credential itself is issued elsewhere (the app's auth flow);
// this layer only persists it between runs.
type AuthStorage interface {
	// SaveCredentials stores the credential, replacing any previous one.
	SaveCredentials(ctx context.Context, creds *Credentials) error

	// GetCredentials retrieves the stored credential.
	// Returns ErrCredentialsNotFound if none exists.
	GetCredentials(ctx context.Context) (*Credentials, error)

	// DeleteCredentials removes the stored credential (logout).
	DeleteCredentials(ctx context.Context) error
}

// Credentials is the persisted bearer credential.
type Credentials struct {
	SavedAt time.Time `json:"saved_at"`
	Token   string    `json:"token"`
}
