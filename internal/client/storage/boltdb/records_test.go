package boltdb

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/splittab/splittab/internal/client/storage"
	"github.com/splittab/splittab/internal/models"
)

var testPayload = json.RawMessage(`{"merchant_name":"Corner Cafe","total":12.80}`)

func TestSave_InsertAssignsDefaults(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	saved, err := s.Save(ctx, &models.Record{Data: testPayload})
	require.NoError(t, err)

	assert.NotEmpty(t, saved.ID)
	assert.Equal(t, models.StatusPending, saved.SyncStatus)
	assert.WithinDuration(t, time.Now(), saved.CreatedAt, time.Second)
	assert.WithinDuration(t, time.Now(), saved.UpdatedAt, time.Second)
	assert.Nil(t, saved.LastSyncedAt)

	got, err := s.Get(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, saved, got)
}

func TestSave_InsertKeepsSuppliedID(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	saved, err := s.Save(ctx, &models.Record{ID: "rec-1", Data: testPayload})
	require.NoError(t, err)
	assert.Equal(t, "rec-1", saved.ID)
}

func TestSave_MergePreservesSyncMetadata(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	syncedAt := time.Now().UTC().Add(-time.Hour)
	status := models.StatusSynced
	first, err := s.Save(ctx, &models.Record{ID: "rec-1", Data: testPayload})
	require.NoError(t, err)

	_, err = s.Update(ctx, first.ID, storage.Patch{
		SyncStatus:   &status,
		ServerID:     strPtr("srv-1"),
		LastSyncedAt: &syncedAt,
	})
	require.NoError(t, err)

	// Re-save with a new payload and no sync fields: payload merges, the
	// record is dirty again, but server identity survives.
	edited := json.RawMessage(`{"merchant_name":"Corner Cafe","total":15.00}`)
	merged, err := s.Save(ctx, &models.Record{ID: "rec-1", Data: edited})
	require.NoError(t, err)

	assert.Equal(t, edited, merged.Data)
	assert.Equal(t, models.StatusPending, merged.SyncStatus)
	assert.Equal(t, "srv-1", merged.ServerID)
	require.NotNil(t, merged.LastSyncedAt)
	assert.True(t, merged.LastSyncedAt.Equal(syncedAt))
	assert.True(t, merged.UpdatedAt.After(first.UpdatedAt) || merged.UpdatedAt.Equal(first.UpdatedAt))
}

func TestSave_MergeExplicitSyncFieldsWin(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	_, err := s.Save(ctx, &models.Record{ID: "rec-1", Data: testPayload})
	require.NoError(t, err)

	merged, err := s.Save(ctx, &models.Record{
		ID:         "rec-1",
		SyncStatus: models.StatusSynced,
		ServerID:   "srv-2",
	})
	require.NoError(t, err)

	assert.Equal(t, models.StatusSynced, merged.SyncStatus)
	assert.Equal(t, "srv-2", merged.ServerID)
	// Payload untouched when the incoming record carries none
	assert.Equal(t, testPayload, merged.Data)
}

func TestUpdate_DataEditRefreshesUpdatedAtAndDirties(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	status := models.StatusSynced
	saved, err := s.Save(ctx, &models.Record{ID: "rec-1", Data: testPayload, SyncStatus: status})
	require.NoError(t, err)

	edited := json.RawMessage(`{"merchant_name":"Corner Cafe","total":9.99}`)
	updated, err := s.Update(ctx, saved.ID, storage.Patch{Data: &edited})
	require.NoError(t, err)

	assert.Equal(t, edited, updated.Data)
	assert.Equal(t, models.StatusPending, updated.SyncStatus)
	assert.False(t, updated.UpdatedAt.Before(saved.UpdatedAt))
}

func TestUpdate_BookkeepingDoesNotBumpUpdatedAt(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	saved, err := s.Save(ctx, &models.Record{ID: "rec-1", Data: testPayload})
	require.NoError(t, err)

	status := models.StatusSynced
	syncedAt := time.Now().UTC()
	updated, err := s.Update(ctx, saved.ID, storage.Patch{
		SyncStatus:   &status,
		ServerID:     strPtr("srv-1"),
		SyncError:    strPtr(""),
		LastSyncedAt: &syncedAt,
	})
	require.NoError(t, err)

	// The engine's own bookkeeping must never look like a user edit
	assert.True(t, updated.UpdatedAt.Equal(saved.UpdatedAt))
	assert.Equal(t, models.StatusSynced, updated.SyncStatus)
	assert.Equal(t, "srv-1", updated.ServerID)
}

func TestUpdate_ExplicitUpdatedAtAdopted(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	saved, err := s.Save(ctx, &models.Record{ID: "rec-1", Data: testPayload})
	require.NoError(t, err)

	remoteTime := time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC)
	status := models.StatusSynced
	edited := json.RawMessage(`{"merchant_name":"Remote Edit"}`)
	updated, err := s.Update(ctx, saved.ID, storage.Patch{
		Data:       &edited,
		UpdatedAt:  &remoteTime,
		SyncStatus: &status,
	})
	require.NoError(t, err)

	assert.True(t, updated.UpdatedAt.Equal(remoteTime))
	assert.Equal(t, models.StatusSynced, updated.SyncStatus)
}

func TestUpdate_UnknownRecord(t *testing.T) {
	s := newTestStorage(t)

	_, err := s.Update(context.Background(), "missing", storage.Patch{})
	assert.ErrorIs(t, err, storage.ErrRecordNotFound)
}

func TestDelete_RemovesRecord(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	saved, err := s.Save(ctx, &models.Record{Data: testPayload})
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, saved.ID))

	_, err = s.Get(ctx, saved.ID)
	assert.ErrorIs(t, err, storage.ErrRecordNotFound)
}

func TestDelete_UnknownIsNoOp(t *testing.T) {
	s := newTestStorage(t)

	assert.NoError(t, s.Delete(context.Background(), "missing"))
}

func TestGetPending_FiltersStatuses(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	_, err := s.Save(ctx, &models.Record{ID: "a", Data: testPayload, SyncStatus: models.StatusPending})
	require.NoError(t, err)
	_, err = s.Save(ctx, &models.Record{ID: "b", Data: testPayload, SyncStatus: models.StatusSynced})
	require.NoError(t, err)
	_, err = s.Save(ctx, &models.Record{ID: "c", Data: testPayload, SyncStatus: models.StatusError})
	require.NoError(t, err)

	pending, err := s.GetPending(ctx)
	require.NoError(t, err)

	require.Len(t, pending, 2)
	assert.Equal(t, "a", pending[0].ID)
	assert.Equal(t, "c", pending[1].ID)
}

func TestGetAll_StableOrder(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	for _, id := range []string{"c", "a", "b"} {
		_, err := s.Save(ctx, &models.Record{ID: id, Data: testPayload})
		require.NoError(t, err)
	}

	records, err := s.GetAll(ctx)
	require.NoError(t, err)

	require.Len(t, records, 3)
	// bbolt iterates keys in byte order
	assert.Equal(t, "a", records[0].ID)
	assert.Equal(t, "b", records[1].ID)
	assert.Equal(t, "c", records[2].ID)
}

func TestStorageClosed(t *testing.T) {
	s := &Storage{}

	_, err := s.GetAll(context.Background())
	assert.ErrorIs(t, err, storage.ErrStorageClosed)

	_, err = s.Save(context.Background(), &models.Record{})
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
}

func strPtr(s string) *string {
	return &s
}
