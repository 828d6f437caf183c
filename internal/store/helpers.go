package store

import (
	"database/sql"
	"errors"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// The orNull helpers implement create-time null-coalescing: an absent or
// zero-valued optional field is bound as SQL NULL.

func stringOrNull(p *string) any {
	if p == nil || *p == "" {
		return nil
	}
	return *p
}

func intOrNull(p *int64) any {
	if p == nil || *p == 0 {
		return nil
	}
	return *p
}

func floatOrNull(p *float64) any {
	if p == nil || *p == 0 {
		return nil
	}
	return *p
}

// valueOrNull dereferences p, binding a nil pointer as NULL. Updates and
// required fields go through it unchanged.
func valueOrNull[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}

func stringOr(p *string, fallback string) string {
	if p == nil || *p == "" {
		return fallback
	}
	return *p
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
