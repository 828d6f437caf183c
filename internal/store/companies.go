package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/johnwards/crm/internal/domain"
)

// CompanyStore defines the interface for company persistence.
type CompanyStore interface {
	List(ctx context.Context) ([]domain.Company, error)
	Get(ctx context.Context, id string) (*domain.Company, error)
	Create(ctx context.Context, in domain.CompanyCreateInput) (int64, error)
	Update(ctx context.Context, id string, in domain.CompanyUpdateInput) error
	Delete(ctx context.Context, id string) error
}

// SQLiteCompanyStore implements CompanyStore backed by SQLite.
type SQLiteCompanyStore struct {
	db *sql.DB
}

// NewSQLiteCompanyStore creates a new SQLiteCompanyStore.
func NewSQLiteCompanyStore(db *sql.DB) *SQLiteCompanyStore {
	return &SQLiteCompanyStore{db: db}
}

const companyColumns = `id, name, website, industry, created_at`

func scanCompany(sc rowScanner) (domain.Company, error) {
	var c domain.Company
	err := sc.Scan(&c.ID, &c.Name, &c.Website, &c.Industry, &c.CreatedAt)
	return c, err
}

// List returns all companies, newest first.
func (s *SQLiteCompanyStore) List(ctx context.Context) ([]domain.Company, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+companyColumns+` FROM companies ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer func() { _ = rows.Close() }()

	companies := []domain.Company{}
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		companies = append(companies, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}
	return companies, nil
}

// Get retrieves a single company by ID.
func (s *SQLiteCompanyStore) Get(ctx context.Context, id string) (*domain.Company, error) {
	c, err := scanCompany(s.db.QueryRowContext(ctx,
		`SELECT `+companyColumns+` FROM companies WHERE id = ?`, id))
	if err != nil {
		return nil, fmt.Errorf("get company %s: %w", id, notFound(err))
	}
	return &c, nil
}

// Create inserts a company and returns its assigned ID. Empty optional
// fields are stored as NULL.
func (s *SQLiteCompanyStore) Create(ctx context.Context, in domain.CompanyCreateInput) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO companies (name, website, industry) VALUES (?, ?, ?)`,
		valueOrNull(in.Name), stringOrNull(in.Website), stringOrNull(in.Industry),
	)
	if err != nil {
		return 0, fmt.Errorf("insert company: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}
	return id, nil
}

// Update overwrites every editable column with the input as given.
func (s *SQLiteCompanyStore) Update(ctx context.Context, id string, in domain.CompanyUpdateInput) error {
	if _, err := s.db.ExecContext(ctx,
		`UPDATE companies SET name = ?, website = ?, industry = ? WHERE id = ?`,
		valueOrNull(in.Name), valueOrNull(in.Website), valueOrNull(in.Industry), id,
	); err != nil {
		return fmt.Errorf("update company %s: %w", id, err)
	}
	return nil
}

// Delete removes the company row. Contacts and deals referencing it are left
// untouched.
func (s *SQLiteCompanyStore) Delete(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM companies WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete company %s: %w", id, err)
	}
	return nil
}
