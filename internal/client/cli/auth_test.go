package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/splittab/splittab/internal/client/auth"
	"github.com/splittab/splittab/internal/client/storage"
)

func newAuthService(authStore storage.AuthStorage) *auth.Service {
	return auth.NewService(authStore, testLogger())
}

func TestRunLogin_FromEnvVar(t *testing.T) {
	t.Setenv(TokenEnvVar, "env-token-123")

	var saved *storage.Credentials
	authStore := &storage.AuthStorageMock{
		SaveCredentialsFunc: func(ctx context.Context, creds *storage.Credentials) error {
			saved = creds
			return nil
		},
	}

	c, buf := newTestCli(nil, nil)
	c.auth = newAuthService(authStore)

	require.NoError(t, c.RunLogin(context.Background()))

	require.NotNil(t, saved)
	assert.Equal(t, "env-token-123", saved.Token)
	assert.Contains(t, buf.String(), "Token stored")
}

func TestRunLogout(t *testing.T) {
	authStore := &storage.AuthStorageMock{
		DeleteCredentialsFunc: func(ctx context.Context) error {
			return nil
		},
	}

	c, buf := newTestCli(nil, nil)
	c.auth = newAuthService(authStore)

	require.NoError(t, c.RunLogout(context.Background()))

	assert.Len(t, authStore.DeleteCredentialsCalls(), 1)
	assert.Contains(t, buf.String(), "Token removed")
}
