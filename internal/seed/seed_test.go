package seed_test

import (
	"context"
	"testing"

	"github.com/johnwards/crm/internal/seed"
	"github.com/johnwards/crm/internal/store"
	"github.com/johnwards/crm/internal/testhelpers"
)

func TestSeedPopulatesEmptyDatabase(t *testing.T) {
	db := testhelpers.NewMigratedDB(t)
	ctx := context.Background()

	if err := seed.Seed(ctx, db); err != nil {
		t.Fatalf("seed: %v", err)
	}

	stats, err := store.New(db).Dashboard.Stats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.Companies != 3 {
		t.Errorf("companies = %d, want 3", stats.Companies)
	}
	if stats.Contacts != 4 {
		t.Errorf("contacts = %d, want 4", stats.Contacts)
	}
	if stats.Deals != 4 {
		t.Errorf("deals = %d, want 4", stats.Deals)
	}
	// The closed-lost stapler deal is excluded.
	if stats.PipelineValue != 182500 {
		t.Errorf("pipeline_value = %v, want 182500", stats.PipelineValue)
	}
}

func TestSeedLinksContactsToCompanies(t *testing.T) {
	db := testhelpers.NewMigratedDB(t)
	ctx := context.Background()

	if err := seed.Seed(ctx, db); err != nil {
		t.Fatalf("seed: %v", err)
	}

	contacts, err := store.New(db).Contacts.List(ctx)
	if err != nil {
		t.Fatalf("list contacts: %v", err)
	}
	for _, c := range contacts {
		if c.CompanyName == nil {
			t.Errorf("contact %s %s has no company", c.FirstName, c.LastName)
		}
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	db := testhelpers.NewMigratedDB(t)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if err := seed.Seed(ctx, db); err != nil {
			t.Fatalf("seed run %d: %v", i+1, err)
		}
	}

	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM companies`).Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 3 {
		t.Errorf("companies = %d, want 3", count)
	}
}

func TestSeedSkipsWhenCompaniesExist(t *testing.T) {
	db := testhelpers.NewMigratedDB(t)
	ctx := context.Background()

	if _, err := db.ExecContext(ctx, `INSERT INTO companies (name) VALUES ('Existing')`); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if err := seed.Seed(ctx, db); err != nil {
		t.Fatalf("seed: %v", err)
	}

	var deals int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM deals`).Scan(&deals); err != nil {
		t.Fatalf("count: %v", err)
	}
	if deals != 0 {
		t.Errorf("deals = %d, want 0", deals)
	}
}
