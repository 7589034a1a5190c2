package core

import (
	"errors"
	"fmt"
)

// ErrMalformedBody marks an unparseable JSON request body. It is handled
// like a validation failure, never a crash.
var ErrMalformedBody = errors.New("request body is not valid JSON")

// ValidationError carries every violation found in a payload, not just the
// first one.
type ValidationError struct {
	Details []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid parameters: %d violation(s)", len(e.Details))
}

// NotFoundError reports that no row matched the requested key.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found for %s", e.Resource, e.Key)
}

// ConflictError reports a duplicate category name, detected via the store's
// uniqueness constraint rather than a pre-check query.
type ConflictError struct {
	Name string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("category %q already exists", e.Name)
}

// StorageError wraps an underlying store fault. Callers decide user-facing
// messaging; the original driver error stays server-side.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
