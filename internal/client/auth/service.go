// Package auth manages the bearer credential the sync engine presents to
// the server. Tokens are issued by the app's sign-in flow; this package only
// persists them and answers "what token do I send right now".
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/splittab/splittab/internal/client/storage"
)

// ErrNotAuthenticated indicates that no usable credential is available:
// nothing stored, or the stored token has expired.
var ErrNotAuthenticated = errors.New("not authenticated")

// Service wraps the credential storage and adds expiry awareness: when the
// stored token is a JWT, its exp claim is read (without signature
// verification, the server remains the authority) so a clearly dead token
// fails locally instead of burning a round trip on a guaranteed 401.
type Service struct {
	storage storage.AuthStorage
	logger  *slog.Logger
	now     func() time.Time
}

// NewService creates the auth session service.
func NewService(authStorage storage.AuthStorage, logger *slog.Logger) *Service {
	return &Service{
		storage: authStorage,
		logger:  logger,
		now:     time.Now,
	}
}

// SaveToken stores a freshly issued credential.
func (s *Service) SaveToken(ctx context.Context, token string) error {
	if token == "" {
		return fmt.Errorf("token cannot be empty")
	}

	creds := &storage.Credentials{
		Token:   token,
		SavedAt: s.now().UTC(),
	}
	if err := s.storage.SaveCredentials(ctx, creds); err != nil {
		return fmt.Errorf("failed to save credentials: %w", err)
	}
	return nil
}

// AccessToken returns the credential to present on the next request.
// Returns ErrNotAuthenticated when nothing is stored or the token expired.
func (s *Service) AccessToken(ctx context.Context) (string, error) {
	creds, err := s.storage.GetCredentials(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrCredentialsNotFound) {
			return "", ErrNotAuthenticated
		}
		return "", fmt.Errorf("failed to load credentials: %w", err)
	}

	if expiresAt, ok := tokenExpiry(creds.Token); ok && s.now().After(expiresAt) {
		s.logger.Debug("stored token expired", "expired_at", expiresAt)
		return "", fmt.Errorf("token expired at %s: %w", expiresAt.Format(time.RFC3339), ErrNotAuthenticated)
	}

	return creds.Token, nil
}

// IsAuthenticated reports whether a usable credential is stored.
func (s *Service) IsAuthenticated(ctx context.Context) (bool, error) {
	_, err := s.AccessToken(ctx)
	if err != nil {
		if errors.Is(err, ErrNotAuthenticated) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Logout removes the stored credential.
func (s *Service) Logout(ctx context.Context) error {
	if err := s.storage.DeleteCredentials(ctx); err != nil {
		return fmt.Errorf("failed to delete credentials: %w", err)
	}
	return nil
}

// tokenExpiry extracts the exp claim from a JWT without verifying it.
// Opaque (non-JWT) tokens report no expiry and are sent as-is.
func tokenExpiry(token string) (time.Time, bool) {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
