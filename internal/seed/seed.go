package seed

import (
	"context"
	"database/sql"
	"fmt"
)

// Seed inserts the demo dataset if the companies table is empty. It is
// idempotent: once any company exists nothing is written. All rows go in one
// transaction so a failed seed leaves no partial data.
func Seed(ctx context.Context, db *sql.DB) error {
	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM companies`).Scan(&count); err != nil {
		return fmt.Errorf("count companies: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	companyIDs, err := insertCompanies(ctx, tx)
	if err != nil {
		return err
	}
	contactIDs, err := insertContacts(ctx, tx, companyIDs)
	if err != nil {
		return err
	}
	if err := insertActivities(ctx, tx, contactIDs); err != nil {
		return err
	}
	if err := insertDeals(ctx, tx, companyIDs); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed: %w", err)
	}
	return nil
}

func insertCompanies(ctx context.Context, tx *sql.Tx) (map[string]int64, error) {
	ids := make(map[string]int64, len(demoCompanies))
	for _, c := range demoCompanies {
		res, err := tx.ExecContext(ctx,
			`INSERT INTO companies (name, website, industry) VALUES (?, ?, ?)`,
			c.name, c.website, c.industry,
		)
		if err != nil {
			return nil, fmt.Errorf("insert company %s: %w", c.name, err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return nil, fmt.Errorf("company %s id: %w", c.name, err)
		}
		ids[c.name] = id
	}
	return ids, nil
}

func insertContacts(ctx context.Context, tx *sql.Tx, companyIDs map[string]int64) (map[string]int64, error) {
	ids := make(map[string]int64, len(demoContacts))
	for _, c := range demoContacts {
		res, err := tx.ExecContext(ctx,
			`INSERT INTO contacts (first_name, last_name, email, phone, company_id) VALUES (?, ?, ?, ?, ?)`,
			c.firstName, c.lastName, c.email, c.phone, companyIDs[c.company],
		)
		if err != nil {
			return nil, fmt.Errorf("insert contact %s: %w", c.email, err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return nil, fmt.Errorf("contact %s id: %w", c.email, err)
		}
		ids[c.email] = id
	}
	return ids, nil
}

func insertActivities(ctx context.Context, tx *sql.Tx, contactIDs map[string]int64) error {
	for _, a := range demoActivities {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO activities (contact_id, type, subject, notes) VALUES (?, ?, ?, ?)`,
			contactIDs[a.contact], a.kind, a.subject, a.notes,
		); err != nil {
			return fmt.Errorf("insert activity %q: %w", a.subject, err)
		}
	}
	return nil
}

func insertDeals(ctx context.Context, tx *sql.Tx, companyIDs map[string]int64) error {
	for _, d := range demoDeals {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO deals (company_id, title, value, stage, close_date) VALUES (?, ?, ?, ?, ?)`,
			companyIDs[d.company], d.title, d.value, d.stage, d.closeDate,
		); err != nil {
			return fmt.Errorf("insert deal %s: %w", d.title, err)
		}
	}
	return nil
}
