package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/splittab/splittab/internal/client/storage"
)

const keyCredentials = "credentials"

// Compile-time check that Storage implements AuthStorage
var _ storage.AuthStorage = (*Storage)(nil)

// SaveCredentials stores the bearer credential, replacing any previous one.
func (s *Storage) SaveCredentials(ctx context.Context, creds *storage.Credentials) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	data, err := json.Marshal(creds)
	if err != nil {
		return fmt.Errorf("failed to marshal credentials: %w", err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketAuth)
		if bucket == nil {
			return fmt.Errorf("auth bucket not found")
		}
		if err := bucket.Put([]byte(keyCredentials), data); err != nil {
			return fmt.Errorf("failed to save credentials: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("save credentials transaction failed: %w", err)
	}

	return nil
}

// GetCredentials retrieves the stored credential.
func (s *Storage) GetCredentials(ctx context.Context) (*storage.Credentials, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var creds *storage.Credentials

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketAuth)
		if bucket == nil {
			return storage.ErrCredentialsNotFound
		}

		data := bucket.Get([]byte(keyCredentials))
		if data == nil {
			return storage.ErrCredentialsNotFound
		}

		creds = &storage.Credentials{}
		if err := json.Unmarshal(data, creds); err != nil {
			return fmt.Errorf("failed to unmarshal credentials: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return creds, nil
}

// DeleteCredentials removes the stored credential (logout).
func (s *Storage) DeleteCredentials(ctx context.Context) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketAuth)
		if bucket == nil {
			return nil
		}
		if err := bucket.Delete([]byte(keyCredentials)); err != nil {
			return fmt.Errorf("failed to delete credentials: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("delete credentials transaction failed: %w", err)
	}

	return nil
}
