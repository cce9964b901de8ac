package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"go.etcd.io/bbolt"

	"github.com/splittab/splittab/internal/client/storage"
	"github.com/splittab/splittab/internal/models"
)

// Compile-time check that Storage implements RecordStore
var _ storage.RecordStore = (*Storage)(nil)

// GetAll returns every record, keyed order (bbolt iterates keys sorted).
func (s *Storage) GetAll(ctx context.Context) ([]*models.Record, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var records []*models.Record

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketReceipts)
		if bucket == nil {
			return nil
		}

		return bucket.ForEach(func(k, v []byte) error {
			var rec models.Record
			if err := json.Unmarshal(v, &rec); err != nil {
				return fmt.Errorf("failed to unmarshal record: %w", err)
			}
			records = append(records, &rec)
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get all records: %w", err)
	}

	return records, nil
}

// Get retrieves a record by id
func (s *Storage) Get(ctx context.Context, id string) (*models.Record, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var rec *models.Record

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketReceipts)
		if bucket == nil {
			return storage.ErrRecordNotFound
		}

		data := bucket.Get([]byte(id))
		if data == nil {
			return storage.ErrRecordNotFound
		}

		rec = &models.Record{}
		if err := json.Unmarshal(data, rec); err != nil {
			return fmt.Errorf("failed to unmarshal record: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return rec, nil
}

// Save inserts a new record or merges over an existing one. Inserts get a
// generated id when missing, pending status, and fresh timestamps. Merges
// preserve existing sync metadata unless the incoming record supplies it;
// merging in a new payload counts as a local edit and flips the record back
// to pending.
func (s *Storage) Save(ctx context.Context, rec *models.Record) (*models.Record, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	saved := rec.Clone()

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(bucketReceipts)
		if err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}

		var existing *models.Record
		if saved.ID != "" {
			if data := bucket.Get([]byte(saved.ID)); data != nil {
				existing = &models.Record{}
				if err := json.Unmarshal(data, existing); err != nil {
					return fmt.Errorf("failed to unmarshal existing record: %w", err)
				}
			}
		}

		now := s.now().UTC()

		if existing == nil {
			if saved.ID == "" {
				saved.ID = uuid.NewString()
			}
			if saved.SyncStatus == "" {
				saved.SyncStatus = models.StatusPending
			}
			if saved.CreatedAt.IsZero() {
				saved.CreatedAt = now
			}
			if saved.UpdatedAt.IsZero() {
				saved.UpdatedAt = now
			}
		} else {
			merged := existing.Clone()
			if len(saved.Data) > 0 {
				merged.Data = saved.Data
				merged.UpdatedAt = now
				if saved.SyncStatus == "" {
					merged.SyncStatus = models.StatusPending
				}
			}
			if saved.SyncStatus != "" {
				merged.SyncStatus = saved.SyncStatus
			}
			if saved.ServerID != "" {
				merged.ServerID = saved.ServerID
			}
			if saved.SyncError != "" {
				merged.SyncError = saved.SyncError
			}
			if saved.LastSyncedAt != nil {
				merged.LastSyncedAt = saved.LastSyncedAt
			}
			if !saved.UpdatedAt.IsZero() {
				merged.UpdatedAt = saved.UpdatedAt
			}
			saved = merged
		}

		data, err := json.Marshal(saved)
		if err != nil {
			return fmt.Errorf("failed to marshal record: %w", err)
		}

		if err := bucket.Put([]byte(saved.ID), data); err != nil {
			return fmt.Errorf("failed to save record: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("save transaction failed: %w", err)
	}

	return saved, nil
}

// Update merges the patch into an existing record. A patch carrying a new
// payload refreshes UpdatedAt and, unless the patch pins a status, flips the
// record back to pending. Sync-bookkeeping-only patches leave UpdatedAt
// alone so the engine never mistakes its own writes for user edits.
func (s *Storage) Update(ctx context.Context, id string, patch storage.Patch) (*models.Record, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var updated *models.Record

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketReceipts)
		if bucket == nil {
			return storage.ErrRecordNotFound
		}

		data := bucket.Get([]byte(id))
		if data == nil {
			return storage.ErrRecordNotFound
		}

		rec := &models.Record{}
		if err := json.Unmarshal(data, rec); err != nil {
			return fmt.Errorf("failed to unmarshal record: %w", err)
		}

		if patch.TouchesData() {
			rec.Data = *patch.Data
			rec.UpdatedAt = s.now().UTC()
			if patch.SyncStatus == nil {
				rec.SyncStatus = models.StatusPending
			}
		}
		if patch.SyncStatus != nil {
			rec.SyncStatus = *patch.SyncStatus
		}
		if patch.ServerID != nil {
			rec.ServerID = *patch.ServerID
		}
		if patch.SyncError != nil {
			rec.SyncError = *patch.SyncError
		}
		if patch.LastSyncedAt != nil {
			rec.LastSyncedAt = patch.LastSyncedAt
		}
		if patch.UpdatedAt != nil {
			rec.UpdatedAt = *patch.UpdatedAt
		}

		out, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("failed to marshal record: %w", err)
		}
		if err := bucket.Put([]byte(id), out); err != nil {
			return fmt.Errorf("failed to save record: %w", err)
		}

		updated = rec
		return nil
	})
	if err != nil {
		if err == storage.ErrRecordNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("update transaction failed: %w", err)
	}

	return updated, nil
}

// Delete removes a record. Deleting an unknown id is a logged no-op.
func (s *Storage) Delete(ctx context.Context, id string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketReceipts)
		if bucket == nil {
			return nil
		}

		if bucket.Get([]byte(id)) == nil {
			s.logger.Debug("delete of unknown record ignored", "record_id", id)
			return nil
		}

		if err := bucket.Delete([]byte(id)); err != nil {
			return fmt.Errorf("failed to delete record: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("delete transaction failed: %w", err)
	}

	return nil
}

// GetPending returns records with pending or error status.
func (s *Storage) GetPending(ctx context.Context) ([]*models.Record, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var records []*models.Record

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketReceipts)
		if bucket == nil {
			return nil
		}

		return bucket.ForEach(func(k, v []byte) error {
			var rec models.Record
			if err := json.Unmarshal(v, &rec); err != nil {
				return fmt.Errorf("failed to unmarshal record: %w", err)
			}
			if rec.NeedsPush() {
				records = append(records, &rec)
			}
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get pending records: %w", err)
	}

	return records, nil
}
