package boltdb

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.etcd.io/bbolt"
)

var (
	// BoltDB bucket names
	bucketReceipts = []byte("receipts")
	bucketMetadata = []byte("metadata")
	bucketAuth     = []byte("auth")
)

// Storage is the BoltDB-backed persistence layer for the client. Every
// mutation runs inside a single bbolt write transaction, so the collection
// is never observable in a partially written state and concurrent callers
// are serialized by the database rather than by the callers themselves.
type Storage struct {
	db     *bbolt.DB
	logger *slog.Logger
	now    func() time.Time
}

// New opens (or creates) the database file at dbPath and prepares buckets.
func New(ctx context.Context, dbPath string, logger *slog.Logger) (*Storage, error) {
	db, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	storage := &Storage{db: db, logger: logger, now: time.Now}

	if err := storage.initBuckets(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize buckets: %w", err)
	}

	return storage, nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// initBuckets creates the required buckets if they do not exist yet
func (s *Storage) initBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{bucketReceipts, bucketMetadata, bucketAuth} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("failed to create %s bucket: %w", name, err)
			}
		}
		return nil
	})
}
