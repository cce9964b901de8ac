package models

import (
	"encoding/json"
	"time"
)

// SyncStatus describes where a record sits in the sync lifecycle.
type SyncStatus string

const (
	// StatusPending marks a record with local edits the server has not seen.
	StatusPending SyncStatus = "pending"
	// StatusSynced marks a record the server has acknowledged.
	StatusSynced SyncStatus = "synced"
	// StatusError marks a record that exhausted its push retry budget.
	// It stays visible and untouched until the user retries it explicitly.
	StatusError SyncStatus = "error"
)

// Valid reports whether s is one of the three known statuses.
func (s SyncStatus) Valid() bool {
	switch s {
	case StatusPending, StatusSynced, StatusError:
		return true
	}
	return false
}

// Record is one synchronizable unit (a scanned receipt plus the user's edits)
// together with its sync metadata. Data is an opaque domain payload owned by
// the scanning and splitting collaborators; the engine only ever reads ID and
// the two timestamps.
type Record struct {
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
	LastSyncedAt *time.Time      `json:"last_synced_at,omitempty"`
	ID           string          `json:"id"`
	ServerID     string          `json:"server_id,omitempty"`
	SyncError    string          `json:"sync_error,omitempty"`
	Data         json.RawMessage `json:"data"`
	SyncStatus   SyncStatus      `json:"sync_status"`
}

// Clone returns a deep copy of the record.
func (r *Record) Clone() *Record {
	data := make(json.RawMessage, len(r.Data))
	copy(data, r.Data)

	clone := &Record{
		ID:         r.ID,
		ServerID:   r.ServerID,
		Data:       data,
		SyncStatus: r.SyncStatus,
		SyncError:  r.SyncError,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
	if r.LastSyncedAt != nil {
		t := *r.LastSyncedAt
		clone.LastSyncedAt = &t
	}
	return clone
}

// IsDirty reports whether the record has local edits the server has not
// acknowledged. Dirty records are never overwritten by pull.
func (r *Record) IsDirty() bool {
	return r.SyncStatus == StatusPending
}

// NeedsPush reports whether the record belongs in the next push batch.
func (r *Record) NeedsPush() bool {
	return r.SyncStatus == StatusPending || r.SyncStatus == StatusError
}
