package domain

import (
	"fmt"
	"strings"
)

// ValidationError reports every failed check for a record in one pass. It is
// always raised before any mutation touches the backing table.
type ValidationError struct {
	Reasons []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Reasons, "; ")
}

// NotFoundError is returned when an update targets an ID absent from its
// table. Deletes of absent IDs are silent no-ops; updates must fail so the
// caller knows the edit went nowhere.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Entity, e.ID)
}

// StorageReadError means the backing table exists but could not be parsed.
// An absent file legitimately means "empty table" and never produces this.
type StorageReadError struct {
	Path string
	Err  error
}

func (e *StorageReadError) Error() string {
	return fmt.Sprintf("unreadable data file %s: %v", e.Path, e.Err)
}

func (e *StorageReadError) Unwrap() error { return e.Err }

// ImportReport summarizes a bulk import: rows that failed validation or
// parsing are skipped, not fatal.
type ImportReport struct {
	Imported int      `json:"imported"`
	Failed   int      `json:"failed"`
	Errors   []string `json:"errors,omitempty"`
}
