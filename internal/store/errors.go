package store

import (
	"errors"
	"fmt"
)

var (
	// ErrCacheConflict is returned when a write was prepared against a state
	// that is no longer current. Re-derive the state and retry the operation.
	ErrCacheConflict = errors.New("cache conflict")

	// ErrCacheWrite is returned when a write is structurally inconsistent with
	// the cache, for example an update of an unknown id. The local state is
	// considered corrupt.
	ErrCacheWrite = errors.New("cache write failed")

	// ErrUnknownProperty is returned for a patch naming a property the entity
	// type cannot be patched on.
	ErrUnknownProperty = fmt.Errorf("%w: unknown property", ErrCacheWrite)

	// ErrQueryWindowNotFound is returned for operations on a fingerprint that
	// has no window yet.
	ErrQueryWindowNotFound = errors.New("query window not found")
)
