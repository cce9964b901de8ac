package storage

import "errors"

// Common client storage errors
var (
	// ErrRecordNotFound indicates that no record exists for the given id
	ErrRecordNotFound = errors.New("record not found")

	// ErrCredentialsNotFound indicates that no stored credentials exist
	ErrCredentialsNotFound = errors.New("credentials not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
