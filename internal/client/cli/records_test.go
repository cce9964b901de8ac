package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpapi "github.com/splittab/splittab/internal/client/api"
	"github.com/splittab/splittab/internal/client/storage"
	syncengine "github.com/splittab/splittab/internal/client/sync"
	"github.com/splittab/splittab/internal/models"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestCli(records storage.RecordStore, meta storage.MetadataStore) (*Cli, *bytes.Buffer) {
	var buf bytes.Buffer
	c := &Cli{
		records: records,
		meta:    meta,
		out:     &buf,
	}
	return c, &buf
}

func TestRunAdd_FromFile(t *testing.T) {
	payload := `{"merchant_name":"Cafe Luna","total":12.5}`
	path := filepath.Join(t.TempDir(), "receipt.json")
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o600))

	var saved *models.Record
	records := &storage.RecordStoreMock{
		SaveFunc: func(ctx context.Context, rec *models.Record) (*models.Record, error) {
			saved = rec
			out := rec.Clone()
			out.ID = "rec-1"
			out.SyncStatus = models.StatusPending
			return out, nil
		},
	}

	c, buf := newTestCli(records, nil)

	require.NoError(t, c.RunAdd(context.Background(), []string{path}))

	require.NotNil(t, saved)
	assert.JSONEq(t, payload, string(saved.Data))
	assert.Contains(t, buf.String(), "Added receipt rec-1")
	assert.Contains(t, buf.String(), "pending")
}

func TestRunAdd_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	records := &storage.RecordStoreMock{}
	c, _ := newTestCli(records, nil)

	err := c.RunAdd(context.Background(), []string{path})

	assert.ErrorContains(t, err, "not valid JSON")
	assert.Empty(t, records.SaveCalls())
}

func TestRunAdd_MissingFile(t *testing.T) {
	c, _ := newTestCli(&storage.RecordStoreMock{}, nil)

	err := c.RunAdd(context.Background(), []string{filepath.Join(t.TempDir(), "nope.json")})
	assert.ErrorContains(t, err, "failed to read payload")
}

func TestRunAdd_Usage(t *testing.T) {
	c, _ := newTestCli(&storage.RecordStoreMock{}, nil)

	assert.Error(t, c.RunAdd(context.Background(), nil))
	assert.Error(t, c.RunAdd(context.Background(), []string{"a", "b"}))
}

func TestRunList_Empty(t *testing.T) {
	records := &storage.RecordStoreMock{
		GetAllFunc: func(ctx context.Context) ([]*models.Record, error) {
			return nil, nil
		},
	}

	c, buf := newTestCli(records, nil)

	require.NoError(t, c.RunList(context.Background()))
	assert.Contains(t, buf.String(), "No receipts.")
}

func TestRunList_ShowsSyncState(t *testing.T) {
	updatedAt := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)
	records := &storage.RecordStoreMock{
		GetAllFunc: func(ctx context.Context) ([]*models.Record, error) {
			return []*models.Record{
				{ID: "rec-1", SyncStatus: models.StatusSynced, UpdatedAt: updatedAt},
				{ID: "rec-2", SyncStatus: models.StatusError, SyncError: "push failed after 3 attempts", UpdatedAt: updatedAt},
			}, nil
		},
	}

	c, buf := newTestCli(records, nil)

	require.NoError(t, c.RunList(context.Background()))

	out := buf.String()
	assert.Contains(t, out, "rec-1")
	assert.Contains(t, out, "synced")
	assert.Contains(t, out, "rec-2")
	assert.Contains(t, out, "push failed after 3 attempts")
	assert.Contains(t, out, "2 receipt(s)")
}

func TestRunDelete(t *testing.T) {
	records := &storage.RecordStoreMock{
		DeleteFunc: func(ctx context.Context, id string) error {
			return nil
		},
	}

	c, buf := newTestCli(records, nil)

	require.NoError(t, c.RunDelete(context.Background(), []string{"rec-1"}))

	calls := records.DeleteCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "rec-1", calls[0].ID)
	assert.Contains(t, buf.String(), "Deleted rec-1")
}

func TestRunRetry(t *testing.T) {
	var patched storage.Patch
	records := &storage.RecordStoreMock{
		UpdateFunc: func(ctx context.Context, id string, patch storage.Patch) (*models.Record, error) {
			patched = patch
			return &models.Record{ID: id, SyncStatus: models.StatusPending}, nil
		},
		GetPendingFunc: func(ctx context.Context) ([]*models.Record, error) {
			return nil, nil
		},
	}
	meta := &storage.MetadataStoreMock{
		GetLastSyncAtFunc: func(ctx context.Context) (*time.Time, error) {
			return nil, nil
		},
	}
	tokens := &syncengine.TokenProviderMock{
		AccessTokenFunc: func(ctx context.Context) (string, error) {
			return "token", nil
		},
	}
	engine := syncengine.NewEngine(&httpapi.ClientAPIMock{}, records, meta, tokens, testLogger())

	c, buf := newTestCli(records, meta)
	c.engine = engine

	require.NoError(t, c.RunRetry(context.Background(), []string{"rec-1"}))

	require.NotNil(t, patched.SyncStatus)
	assert.Equal(t, models.StatusPending, *patched.SyncStatus)
	assert.Contains(t, buf.String(), "queued for the next push")
}

func TestRunStatus(t *testing.T) {
	lastSync := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)
	records := &storage.RecordStoreMock{
		GetPendingFunc: func(ctx context.Context) ([]*models.Record, error) {
			return []*models.Record{{ID: "rec-1"}}, nil
		},
	}
	meta := &storage.MetadataStoreMock{
		GetLastSyncAtFunc: func(ctx context.Context) (*time.Time, error) {
			return &lastSync, nil
		},
	}
	authStore := &storage.AuthStorageMock{
		GetCredentialsFunc: func(ctx context.Context) (*storage.Credentials, error) {
			return &storage.Credentials{Token: "opaque"}, nil
		},
	}

	c, buf := newTestCli(records, meta)
	c.auth = newAuthService(authStore)

	require.NoError(t, c.RunStatus(context.Background()))

	out := buf.String()
	assert.Contains(t, out, "Authenticated: true")
	assert.Contains(t, out, "Pending:       1 receipt(s)")
	assert.NotContains(t, out, "never")
}

func TestRunStatus_NeverSynced(t *testing.T) {
	records := &storage.RecordStoreMock{
		GetPendingFunc: func(ctx context.Context) ([]*models.Record, error) {
			return nil, nil
		},
	}
	meta := &storage.MetadataStoreMock{
		GetLastSyncAtFunc: func(ctx context.Context) (*time.Time, error) {
			return nil, nil
		},
	}
	authStore := &storage.AuthStorageMock{
		GetCredentialsFunc: func(ctx context.Context) (*storage.Credentials, error) {
			return nil, storage.ErrCredentialsNotFound
		},
	}

	c, buf := newTestCli(records, meta)
	c.auth = newAuthService(authStore)

	require.NoError(t, c.RunStatus(context.Background()))

	out := buf.String()
	assert.Contains(t, out, "Authenticated: false")
	assert.Contains(t, out, "Last sync:     never")
}

// guard against payload round-trip surprises: what add saves is exactly what
// list-era consumers will unmarshal.
func TestRunAdd_PreservesRawPayload(t *testing.T) {
	payload := `{"items":[{"name":"espresso","price":3.2}],"currency":"EUR"}`
	path := filepath.Join(t.TempDir(), "receipt.json")
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o600))

	records := &storage.RecordStoreMock{
		SaveFunc: func(ctx context.Context, rec *models.Record) (*models.Record, error) {
			assert.Equal(t, json.RawMessage(payload), rec.Data)
			return rec, nil
		},
	}

	c, _ := newTestCli(records, nil)
	require.NoError(t, c.RunAdd(context.Background(), []string{path}))
}
