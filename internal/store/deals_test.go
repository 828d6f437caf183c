package store_test

import (
	"context"
	"testing"

	"github.com/johnwards/crm/internal/domain"
	"github.com/johnwards/crm/internal/store"
	"github.com/johnwards/crm/internal/testhelpers"
)

var _ store.DealStore = (*store.SQLiteDealStore)(nil)

func TestDealCreateDefaultsStage(t *testing.T) {
	st := testhelpers.NewTestStore(t)
	ctx := context.Background()

	if _, err := st.Deals.Create(ctx, domain.DealCreateInput{Title: strPtr("Renewal")}); err != nil {
		t.Fatalf("create: %v", err)
	}

	deals, err := st.Deals.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(deals) != 1 {
		t.Fatalf("expected 1 deal, got %d", len(deals))
	}
	d := deals[0]
	if d.Stage == nil || *d.Stage != "lead" {
		t.Errorf("expected stage=lead, got %v", d.Stage)
	}
	if d.Value != nil {
		t.Errorf("expected value=nil, got %v", *d.Value)
	}
	if d.CloseDate != nil {
		t.Errorf("expected close_date=nil, got %q", *d.CloseDate)
	}
	if d.CompanyID != nil {
		t.Errorf("expected company_id=nil, got %d", *d.CompanyID)
	}
}

func TestDealListJoinsCompanyNewestFirst(t *testing.T) {
	st := testhelpers.NewTestStore(t)
	ctx := context.Background()

	companyID, err := st.Companies.Create(ctx, domain.CompanyCreateInput{Name: strPtr("Globex")})
	if err != nil {
		t.Fatalf("create company: %v", err)
	}

	first, err := st.Deals.Create(ctx, domain.DealCreateInput{
		CompanyID: intPtr(companyID),
		Title:     strPtr("Expansion"),
		Value:     floatPtr(12500.5),
		Stage:     strPtr("proposal"),
		CloseDate: strPtr("2026-12-31"),
	})
	if err != nil {
		t.Fatalf("create first: %v", err)
	}
	second, err := st.Deals.Create(ctx, domain.DealCreateInput{Title: strPtr("Pilot")})
	if err != nil {
		t.Fatalf("create second: %v", err)
	}

	deals, err := st.Deals.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(deals) != 2 {
		t.Fatalf("expected 2 deals, got %d", len(deals))
	}
	if deals[0].ID != second || deals[1].ID != first {
		t.Errorf("expected order [%d %d], got [%d %d]", second, first, deals[0].ID, deals[1].ID)
	}

	d := deals[1]
	if d.CompanyName == nil || *d.CompanyName != "Globex" {
		t.Errorf("expected company_name=Globex, got %v", d.CompanyName)
	}
	if d.Value == nil || *d.Value != 12500.5 {
		t.Errorf("expected value=12500.5, got %v", d.Value)
	}
	if d.Stage == nil || *d.Stage != "proposal" {
		t.Errorf("expected stage=proposal, got %v", d.Stage)
	}
	if d.CloseDate == nil || *d.CloseDate != "2026-12-31" {
		t.Errorf("expected close_date=2026-12-31, got %v", d.CloseDate)
	}
}

func TestDealUpdate(t *testing.T) {
	st := testhelpers.NewTestStore(t)
	ctx := context.Background()

	id, err := st.Deals.Create(ctx, domain.DealCreateInput{
		CompanyID: intPtr(3),
		Title:     strPtr("Expansion"),
		Value:     floatPtr(1000),
		CloseDate: strPtr("2026-06-30"),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := st.Deals.Update(ctx, idStr(id), domain.DealUpdateInput{
		Title: strPtr("Expansion v2"),
		Value: floatPtr(2000),
		Stage: strPtr("closed-won"),
	}); err != nil {
		t.Fatalf("update: %v", err)
	}

	deals, err := st.Deals.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	d := deals[0]
	if d.Title != "Expansion v2" {
		t.Errorf("expected title=Expansion v2, got %s", d.Title)
	}
	if d.Stage == nil || *d.Stage != "closed-won" {
		t.Errorf("expected stage=closed-won, got %v", d.Stage)
	}
	if d.CloseDate != nil {
		t.Errorf("expected close_date cleared, got %q", *d.CloseDate)
	}
	// Update never touches the owning company.
	if d.CompanyID == nil || *d.CompanyID != 3 {
		t.Errorf("expected company_id=3, got %v", d.CompanyID)
	}
}

func TestDealUpdateOmittedStageIsNull(t *testing.T) {
	st := testhelpers.NewTestStore(t)
	ctx := context.Background()

	id, err := st.Deals.Create(ctx, domain.DealCreateInput{Title: strPtr("T")})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := st.Deals.Update(ctx, idStr(id), domain.DealUpdateInput{Title: strPtr("T")}); err != nil {
		t.Fatalf("update: %v", err)
	}

	deals, err := st.Deals.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if deals[0].Stage != nil {
		t.Errorf("expected stage=nil, got %q", *deals[0].Stage)
	}
}

func TestDealCreateMissingTitle(t *testing.T) {
	st := testhelpers.NewTestStore(t)

	if _, err := st.Deals.Create(context.Background(), domain.DealCreateInput{}); err == nil {
		t.Error("expected NOT NULL constraint error")
	}
}
