package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/johnwards/crm/internal/domain"
)

// ContactStore defines the interface for contact persistence.
type ContactStore interface {
	List(ctx context.Context) ([]domain.Contact, error)
	Get(ctx context.Context, id string) (*domain.Contact, error)
	Create(ctx context.Context, in domain.ContactCreateInput) (int64, error)
	Update(ctx context.Context, id string, in domain.ContactUpdateInput) error
	Delete(ctx context.Context, id string) error
}

// SQLiteContactStore implements ContactStore backed by SQLite.
type SQLiteContactStore struct {
	db *sql.DB
}

// NewSQLiteContactStore creates a new SQLiteContactStore.
func NewSQLiteContactStore(db *sql.DB) *SQLiteContactStore {
	return &SQLiteContactStore{db: db}
}

const contactSelect = `SELECT contacts.id, contacts.first_name, contacts.last_name,
		contacts.email, contacts.phone, contacts.company_id, contacts.created_at,
		companies.name AS company_name
	FROM contacts
	LEFT JOIN companies ON contacts.company_id = companies.id`

func scanContact(sc rowScanner) (domain.Contact, error) {
	var c domain.Contact
	err := sc.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Phone,
		&c.CompanyID, &c.CreatedAt, &c.CompanyName)
	return c, err
}

// List returns all contacts with their company name, newest first.
func (s *SQLiteContactStore) List(ctx context.Context) ([]domain.Contact, error) {
	rows, err := s.db.QueryContext(ctx,
		contactSelect+` ORDER BY contacts.created_at DESC, contacts.id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	contacts := []domain.Contact{}
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}
	return contacts, nil
}

// Get retrieves a single contact with its company name.
func (s *SQLiteContactStore) Get(ctx context.Context, id string) (*domain.Contact, error) {
	c, err := scanContact(s.db.QueryRowContext(ctx,
		contactSelect+` WHERE contacts.id = ?`, id))
	if err != nil {
		return nil, fmt.Errorf("get contact %s: %w", id, notFound(err))
	}
	return &c, nil
}

// Create inserts a contact and returns its assigned ID.
func (s *SQLiteContactStore) Create(ctx context.Context, in domain.ContactCreateInput) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO contacts (first_name, last_name, email, phone, company_id) VALUES (?, ?, ?, ?, ?)`,
		valueOrNull(in.FirstName),
		valueOrNull(in.LastName),
		stringOrNull(in.Email),
		stringOrNull(in.Phone),
		intOrNull(in.CompanyID),
	)
	if err != nil {
		return 0, fmt.Errorf("insert contact: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}
	return id, nil
}

// Update overwrites every editable column with the input as given.
func (s *SQLiteContactStore) Update(ctx context.Context, id string, in domain.ContactUpdateInput) error {
	if _, err := s.db.ExecContext(ctx,
		`UPDATE contacts SET first_name = ?, last_name = ?, email = ?, phone = ?, company_id = ? WHERE id = ?`,
		valueOrNull(in.FirstName),
		valueOrNull(in.LastName),
		valueOrNull(in.Email),
		valueOrNull(in.Phone),
		valueOrNull(in.CompanyID),
		id,
	); err != nil {
		return fmt.Errorf("update contact %s: %w", id, err)
	}
	return nil
}

// Delete removes the contact row. Its activities are left in place.
func (s *SQLiteContactStore) Delete(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM contacts WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete contact %s: %w", id, err)
	}
	return nil
}
