package api

import (
	"encoding/json"
	"time"
)

// Receipt is the wire representation of one synchronizable record.
// Sync bookkeeping (status, retry counters, local sync timestamps) never
// crosses this boundary; the codec strips it on push and attaches it on pull.
type Receipt struct {
	ID        string          `json:"id"`
	ServerID  string          `json:"serverId,omitempty"`
	Data      json.RawMessage `json:"data"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
	SyncedAt  *time.Time      `json:"syncedAt,omitempty"`
}

// PushRequest is the body of POST /sync/push.
type PushRequest struct {
	Receipts []Receipt `json:"receipts"`
}

// PushResponse reports how many receipts the server accepted.
//
// Synced counts acknowledged receipts in submission order. SyncedIDs, when
// present, names them explicitly and takes precedence over the positional
// count; servers that omit it leave the client to assume order correspondence.
type PushResponse struct {
	Success   bool     `json:"success"`
	Synced    int      `json:"synced"`
	Errors    int      `json:"errors"`
	SyncedIDs []string `json:"syncedIds,omitempty"`
}

// PullResponse is the body of GET /sync/pull.
type PullResponse struct {
	Success    bool       `json:"success"`
	Receipts   []Receipt  `json:"receipts"`
	LastSyncAt *time.Time `json:"lastSyncAt,omitempty"`
}

// SyncGateResponse is the body of GET /sync/status. Background sync must be
// skipped entirely when Allowed is false.
type SyncGateResponse struct {
	Allowed bool   `json:"allowed"`
	Reason  string `json:"reason,omitempty"`
}

// ErrorResponse is the error body returned by the server on non-2xx statuses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
