package services

import (
	"errors"
	"fmt"
)

// Common service-level errors
var (
	// Book errors
	ErrBookNotFound = errors.New("book not found")

	// Author errors
	ErrAuthorNotFound = errors.New("author not found")
	ErrAuthorInUse    = errors.New("author is still referenced by books")
)

// StorageError wraps an underlying database failure. The operation is
// aborted but the process continues.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage failure during %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
