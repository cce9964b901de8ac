package storage

import (
	"context"
	"time"
)

//go:generate moq -out metadata_mock.go . MetadataStore

// MetadataStore persists the sync cursor: a single watermark timestamp
// marking how far the client has successfully pulled. The watermark only
// ever advances after a pull has fully processed its batch.
type MetadataStore interface {
	// SaveLastSyncAt persists the watermark.
	SaveLastSyncAt(ctx context.Context, t time.Time) error

	// GetLastSyncAt retrieves the watermark.
	// Returns nil if no pull has completed yet.
	GetLastSyncAt(ctx context.Context) (*time.Time, error)
}
