package boltdb

import (
	"context"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/splittab/splittab/internal/client/storage"
)

const keyLastSyncAt = "last_sync_at"

// Compile-time check that Storage implements MetadataStore
var _ storage.MetadataStore = (*Storage)(nil)

// SaveLastSyncAt persists the pull watermark.
func (s *Storage) SaveLastSyncAt(ctx context.Context, t time.Time) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		value := t.UTC().Format(time.RFC3339Nano)
		if err := bucket.Put([]byte(keyLastSyncAt), []byte(value)); err != nil {
			return fmt.Errorf("failed to save last sync watermark: %w", err)
		}
		return nil
	})
}

// GetLastSyncAt retrieves the pull watermark.
// Returns nil if no pull has completed yet (first sync).
func (s *Storage) GetLastSyncAt(ctx context.Context) (*time.Time, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var watermark *time.Time

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		value := bucket.Get([]byte(keyLastSyncAt))
		if value == nil {
			return nil
		}

		t, err := time.Parse(time.RFC3339Nano, string(value))
		if err != nil {
			return fmt.Errorf("failed to parse last sync watermark: %w", err)
		}
		watermark = &t
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get last sync watermark: %w", err)
	}

	return watermark, nil
}
