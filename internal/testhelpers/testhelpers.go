package testhelpers

import (
	"context"
	"database/sql"
	"testing"

	"github.com/johnwards/crm/internal/database"
	"github.com/johnwards/crm/internal/store"
)

// NewTestDB returns an in-memory SQLite database configured the same way as
// production. The database is automatically closed when the test completes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := database.Open(database.DriverModernc, ":memory:")
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	t.Cleanup(func() {
		_ = db.Close()
	})

	return db
}

// NewMigratedDB returns an in-memory database with the full schema applied.
func NewMigratedDB(t *testing.T) *sql.DB {
	t.Helper()

	db := NewTestDB(t)
	if err := database.Migrate(context.Background(), db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// NewTestStore returns a Store over a fresh migrated in-memory database.
func NewTestStore(t *testing.T) *store.Store {
	t.Helper()
	return store.New(NewMigratedDB(t))
}
