package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/johnwards/crm/internal/domain"
)

// DealStore defines the interface for deal persistence.
type DealStore interface {
	List(ctx context.Context) ([]domain.Deal, error)
	Create(ctx context.Context, in domain.DealCreateInput) (int64, error)
	Update(ctx context.Context, id string, in domain.DealUpdateInput) error
}

// SQLiteDealStore implements DealStore backed by SQLite.
type SQLiteDealStore struct {
	db *sql.DB
}

// NewSQLiteDealStore creates a new SQLiteDealStore.
func NewSQLiteDealStore(db *sql.DB) *SQLiteDealStore {
	return &SQLiteDealStore{db: db}
}

// List returns all deals with their company name, newest first.
func (s *SQLiteDealStore) List(ctx context.Context) ([]domain.Deal, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT deals.id, deals.company_id, deals.title, deals.value, deals.stage,
			deals.close_date, deals.created_at, companies.name AS company_name
		 FROM deals
		 LEFT JOIN companies ON deals.company_id = companies.id
		 ORDER BY deals.created_at DESC, deals.id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list deals: %w", err)
	}
	defer func() { _ = rows.Close() }()

	deals := []domain.Deal{}
	for rows.Next() {
		var d domain.Deal
		if err := rows.Scan(&d.ID, &d.CompanyID, &d.Title, &d.Value, &d.Stage,
			&d.CloseDate, &d.CreatedAt, &d.CompanyName); err != nil {
			return nil, fmt.Errorf("scan deal: %w", err)
		}
		deals = append(deals, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}
	return deals, nil
}

// Create inserts a deal and returns its assigned ID. A missing stage becomes
// "lead". company_id is bound as given, without coalescing.
func (s *SQLiteDealStore) Create(ctx context.Context, in domain.DealCreateInput) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO deals (company_id, title, value, stage, close_date) VALUES (?, ?, ?, ?, ?)`,
		valueOrNull(in.CompanyID),
		valueOrNull(in.Title),
		floatOrNull(in.Value),
		stringOr(in.Stage, domain.DefaultDealStage),
		stringOrNull(in.CloseDate),
	)
	if err != nil {
		return 0, fmt.Errorf("insert deal: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}
	return id, nil
}

// Update overwrites title, value, stage and close date with the input as
// given. The deal's company is not changed.
func (s *SQLiteDealStore) Update(ctx context.Context, id string, in domain.DealUpdateInput) error {
	if _, err := s.db.ExecContext(ctx,
		`UPDATE deals SET title = ?, value = ?, stage = ?, close_date = ? WHERE id = ?`,
		valueOrNull(in.Title),
		valueOrNull(in.Value),
		valueOrNull(in.Stage),
		valueOrNull(in.CloseDate),
		id,
	); err != nil {
		return fmt.Errorf("update deal %s: %w", id, err)
	}
	return nil
}
