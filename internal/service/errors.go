package service

import "fmt"

// ValidationError reports malformed or incomplete user input. The triggering
// action is aborted: no state mutates and nothing is persisted.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NotFoundError reports an edit or delete that referenced a session ID absent
// from the ledger, e.g. a stale reference held by another view.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("session not found: %s", e.ID)
}

// PersistenceError reports a rejected read or write of the backing store.
// Mutations only swap into memory after a successful write, so the prior
// in-memory snapshot remains valid for a retry.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failed during %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
