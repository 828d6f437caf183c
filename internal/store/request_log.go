package store

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	"github.com/johnwards/crm/internal/domain"
)

// RequestLogStore defines the interface for the operational request log.
type RequestLogStore interface {
	Append(ctx context.Context, e domain.RequestLogEntry) error
	List(ctx context.Context, limit int, after string) (*domain.RequestLogPage, error)
}

// SQLiteRequestLogStore implements RequestLogStore backed by SQLite.
type SQLiteRequestLogStore struct {
	db *sql.DB
}

// NewSQLiteRequestLogStore creates a new SQLiteRequestLogStore.
func NewSQLiteRequestLogStore(db *sql.DB) *SQLiteRequestLogStore {
	return &SQLiteRequestLogStore{db: db}
}

// Append records one request.
func (s *SQLiteRequestLogStore) Append(ctx context.Context, e domain.RequestLogEntry) error {
	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO request_log (method, path, status_code, duration_ms, correlation_id)
		 VALUES (?, ?, ?, ?, ?)`,
		e.Method, e.Path, e.StatusCode, e.DurationMs, e.CorrelationID,
	); err != nil {
		return fmt.Errorf("insert request log: %w", err)
	}
	return nil
}

// List returns entries newest first. after is the id cursor returned by a
// previous page.
func (s *SQLiteRequestLogStore) List(ctx context.Context, limit int, after string) (*domain.RequestLogPage, error) {
	if limit <= 0 {
		limit = 100
	}

	query := `SELECT id, method, path, status_code, COALESCE(duration_ms, 0),
			  COALESCE(correlation_id, ''), created_at
			  FROM request_log`
	args := []any{}

	if after != "" {
		afterID, err := strconv.ParseInt(after, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse cursor %q: %w", after, err)
		}
		query += ` WHERE id < ?`
		args = append(args, afterID)
	}
	query += ` ORDER BY id DESC LIMIT ?`
	args = append(args, limit+1)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list request log: %w", err)
	}
	defer func() { _ = rows.Close() }()

	entries := make([]domain.RequestLogEntry, 0, limit)
	for rows.Next() {
		var e domain.RequestLogEntry
		if err := rows.Scan(&e.ID, &e.Method, &e.Path, &e.StatusCode,
			&e.DurationMs, &e.CorrelationID, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan request log: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}

	page := &domain.RequestLogPage{Results: entries}
	if len(entries) > limit {
		page.Results = entries[:limit]
		page.HasMore = true
		page.After = strconv.FormatInt(page.Results[limit-1].ID, 10)
	}
	return page, nil
}
