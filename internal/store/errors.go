package store

import "fmt"

// NotFoundError indicates no saved resume exists under the given id
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no saved resume with id %q", e.ID)
}

// DecryptError indicates a saved resume could not be opened, usually because
// the passphrase is wrong or the file is corrupt.
type DecryptError struct {
	ID string
}

func (e *DecryptError) Error() string {
	return fmt.Sprintf("failed to decrypt resume %q: wrong passphrase or corrupt file", e.ID)
}

// StoreError wraps filesystem and encoding failures inside the store
type StoreError struct {
	Message string
	Cause   error
}

func (e *StoreError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *StoreError) Unwrap() error {
	return e.Cause
}
