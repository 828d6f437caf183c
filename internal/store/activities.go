package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/johnwards/crm/internal/domain"
)

// ActivityStore defines the interface for activity persistence.
type ActivityStore interface {
	ListByContact(ctx context.Context, contactID string) ([]domain.Activity, error)
	Create(ctx context.Context, in domain.ActivityCreateInput) (int64, error)
}

// SQLiteActivityStore implements ActivityStore backed by SQLite.
type SQLiteActivityStore struct {
	db *sql.DB
}

// NewSQLiteActivityStore creates a new SQLiteActivityStore.
func NewSQLiteActivityStore(db *sql.DB) *SQLiteActivityStore {
	return &SQLiteActivityStore{db: db}
}

// ListByContact returns the activities recorded against a contact, newest
// first. An unknown contact yields an empty list.
func (s *SQLiteActivityStore) ListByContact(ctx context.Context, contactID string) ([]domain.Activity, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, contact_id, type, subject, notes, created_at
		 FROM activities WHERE contact_id = ?
		 ORDER BY created_at DESC, id DESC`,
		contactID,
	)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	defer func() { _ = rows.Close() }()

	activities := []domain.Activity{}
	for rows.Next() {
		var a domain.Activity
		if err := rows.Scan(&a.ID, &a.ContactID, &a.Type, &a.Subject, &a.Notes, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		activities = append(activities, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}
	return activities, nil
}

// Create inserts an activity and returns its assigned ID. The contact is not
// checked for existence.
func (s *SQLiteActivityStore) Create(ctx context.Context, in domain.ActivityCreateInput) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO activities (contact_id, type, subject, notes) VALUES (?, ?, ?, ?)`,
		valueOrNull(in.ContactID),
		valueOrNull(in.Type),
		stringOrNull(in.Subject),
		stringOrNull(in.Notes),
	)
	if err != nil {
		return 0, fmt.Errorf("insert activity: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}
	return id, nil
}
