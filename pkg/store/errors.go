package store

import (
	"errors"
	"fmt"
	"strings"
)

// ErrBadCredentials is returned by Login when the placeholder credentials
// do not match.
var ErrBadCredentials = errors.New("store: invalid email or password")

// ValidationError reports required fields missing from a draft. "Not found"
// is never a ValidationError; it is signaled by a sentinel return instead.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("store: missing required fields: %s", strings.Join(e.Missing, ", "))
}

// StorageError wraps a failure to serialize or persist. Mutating operations
// propagate it; read operations degrade to an empty collection instead.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("store: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
