package repo

import (
	"errors"
	"fmt"
)

var (
	// ErrProductNotFound is returned when no product matches the requested name.
	ErrProductNotFound = errors.New("product not found")
	// ErrCapacityExceeded is returned by Add when the inventory is full.
	ErrCapacityExceeded = errors.New("inventory is full")
	// ErrIndexOutOfRange is returned by the position based operations.
	ErrIndexOutOfRange = errors.New("product index out of range")
	// ErrMalformedRecord is returned by Load when a line of the backing file cannot be decoded.
	ErrMalformedRecord = errors.New("malformed inventory record")
	// ErrPersistence matches every *PersistenceError.
	ErrPersistence = errors.New("inventory persistence failure")
)

// PersistenceError wraps an I/O failure on the backing file.
type PersistenceError struct {
	Op   string
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

func (e *PersistenceError) Is(target error) bool { return target == ErrPersistence }
