package codec

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/splittab/splittab/internal/models"
	"github.com/splittab/splittab/pkg/api"
)

var payload = json.RawMessage(`{"merchant_name":"Corner Cafe","currency":"USD","items":[{"name":"Espresso","total_price":3.5}]}`)

func TestToWire_StripsSyncMetadata(t *testing.T) {
	created := time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC)
	updated := created.Add(time.Hour)
	syncedAt := created.Add(2 * time.Hour)

	rec := &models.Record{
		ID:           "rec-1",
		ServerID:     "srv-9",
		Data:         payload,
		CreatedAt:    created,
		UpdatedAt:    updated,
		SyncStatus:   models.StatusPending,
		SyncError:    "push rejected by server (attempt 1/3)",
		LastSyncedAt: &syncedAt,
	}

	dto := ToWire(rec)

	assert.Equal(t, "rec-1", dto.ID)
	assert.Equal(t, payload, dto.Data)
	assert.Equal(t, created, dto.CreatedAt)
	assert.Equal(t, updated, dto.UpdatedAt)
	// Sync bookkeeping never crosses the boundary
	assert.Empty(t, dto.ServerID)
	assert.Nil(t, dto.SyncedAt)

	raw, err := json.Marshal(dto)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "sync_status")
	assert.NotContains(t, string(raw), "sync_error")
}

func TestToWireBatch_PreservesOrder(t *testing.T) {
	recs := []*models.Record{
		{ID: "a", Data: payload},
		{ID: "b", Data: payload},
		{ID: "c", Data: payload},
	}

	dtos := ToWireBatch(recs)

	require.Len(t, dtos, 3)
	assert.Equal(t, "a", dtos[0].ID)
	assert.Equal(t, "b", dtos[1].ID)
	assert.Equal(t, "c", dtos[2].ID)
}

func TestFromWire_RemoteOriginatedRecord(t *testing.T) {
	created := time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC)
	updated := created.Add(time.Hour)
	syncedAt := created.Add(2 * time.Hour)

	dto := api.Receipt{
		ID:        "rec-1",
		ServerID:  "srv-9",
		Data:      payload,
		CreatedAt: created,
		UpdatedAt: updated,
		SyncedAt:  &syncedAt,
	}

	rec := FromWire(dto)

	assert.Equal(t, "rec-1", rec.ID)
	assert.Equal(t, "srv-9", rec.ServerID)
	assert.Equal(t, payload, rec.Data)
	assert.Equal(t, created, rec.CreatedAt)
	assert.Equal(t, updated, rec.UpdatedAt)
	assert.Equal(t, models.StatusSynced, rec.SyncStatus)
	require.NotNil(t, rec.LastSyncedAt)
	assert.Equal(t, syncedAt, *rec.LastSyncedAt)
	assert.Empty(t, rec.SyncError)
}

func TestRoundTrip_KeepsPayloadOpaque(t *testing.T) {
	rec := &models.Record{
		ID:        "rec-1",
		Data:      payload,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}

	back := FromWire(ToWire(rec))

	assert.JSONEq(t, string(payload), string(back.Data))
}
