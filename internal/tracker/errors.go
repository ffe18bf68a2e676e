package tracker

import "fmt"

// StorageError wraps a failed read or write against the completions
// storage. The operation either fully committed or not at all, there
// are no partial writes within a single key.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %s", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// ParseError means the persisted history ledger contains a field that
// cannot be interpreted. The read fails as a whole, a corrupted
// ledger is never partially recovered.
type ParseError struct {
	Field string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse history field %q: %s", e.Field, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
