package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/johnwards/crm/internal/domain"
)

// DashboardStore defines the interface for dashboard aggregates.
type DashboardStore interface {
	Stats(ctx context.Context) (*domain.DashboardStats, error)
}

// SQLiteDashboardStore implements DashboardStore backed by SQLite.
type SQLiteDashboardStore struct {
	db *sql.DB
}

// NewSQLiteDashboardStore creates a new SQLiteDashboardStore.
func NewSQLiteDashboardStore(db *sql.DB) *SQLiteDashboardStore {
	return &SQLiteDashboardStore{db: db}
}

// Stats runs four independent aggregate reads. They are not wrapped in a
// transaction, so concurrent writes may land between them. A NULL aggregate
// is reported as zero.
func (s *SQLiteDashboardStore) Stats(ctx context.Context) (*domain.DashboardStats, error) {
	var stats domain.DashboardStats

	counts := []struct {
		table string
		dest  *int64
	}{
		{"contacts", &stats.Contacts},
		{"companies", &stats.Companies},
		{"deals", &stats.Deals},
	}
	for _, c := range counts {
		var n sql.NullInt64
		if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM `+c.table).Scan(&n); err != nil { //nolint:gosec // table names are hardcoded constants
			return nil, fmt.Errorf("count %s: %w", c.table, err)
		}
		*c.dest = n.Int64
	}

	// NULL stages are excluded by the comparison, same as closed-lost.
	var total sql.NullFloat64
	if err := s.db.QueryRowContext(ctx,
		`SELECT SUM(value) FROM deals WHERE stage != ?`, domain.StageClosedLost,
	).Scan(&total); err != nil {
		return nil, fmt.Errorf("sum pipeline value: %w", err)
	}
	stats.PipelineValue = total.Float64

	return &stats, nil
}
