package storage

import (
	"context"
	"encoding/json"
	"time"

	"github.com/splittab/splittab/internal/models"
)

//go:generate moq -out records_mock.go . RecordStore

// Patch is a partial update applied to an existing record. Nil fields are
// left untouched. A patch that only carries sync bookkeeping (status, error,
// server id, last-synced timestamp) must not refresh UpdatedAt; a patch that
// carries Data must. Otherwise the engine would mistake its own bookkeeping
// for a fresh local edit and re-push forever.
type Patch struct {
	Data         *json.RawMessage
	SyncStatus   *models.SyncStatus
	ServerID     *string
	SyncError    *string
	LastSyncedAt *time.Time
	UpdatedAt    *time.Time
}

// TouchesData reports whether applying the patch counts as a domain edit.
func (p Patch) TouchesData() bool {
	return p.Data != nil
}

// RecordStore is the durable keyed collection of records. Every mutation is
// atomic: a crash mid-write never leaves the collection partially written.
type RecordStore interface {
	// GetAll returns every record. Order is stable for a given snapshot
	// (sorted by id) but callers must not rely on any particular order.
	GetAll(ctx context.Context) ([]*models.Record, error)

	// Get returns a single record by id.
	// Returns ErrRecordNotFound if no record exists.
	Get(ctx context.Context, id string) (*models.Record, error)

	// Save inserts a new record, assigning an id and pending status when
	// missing. If a record with the same id already exists, incoming fields
	// are merged over it, preserving existing sync metadata unless the
	// incoming record explicitly supplies it.
	Save(ctx context.Context, rec *models.Record) (*models.Record, error)

	// Update merges the patch into an existing record.
	// Returns ErrRecordNotFound if no record exists.
	Update(ctx context.Context, id string, patch Patch) (*models.Record, error)

	// Delete removes the record. Deleting an unknown id is a no-op.
	Delete(ctx context.Context, id string) error

	// GetPending returns records with pending or error status, in stable
	// (id-sorted) order.
	GetPending(ctx context.Context) ([]*models.Record, error)
}
