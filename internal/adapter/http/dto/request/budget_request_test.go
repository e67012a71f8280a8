package request

import (
	"testing"

	"orcafacil/internal/domain/entities"
	"orcafacil/internal/money"
)

func TestBudgetRequest_ToDraft(t *testing.T) {
	r := BudgetRequest{
		Client: ClientRequest{Name: "Acme", Email: "a@b.com", City: "SP"},
		Products: []LineItemRequest{
			{ID: "1", Name: "Item", Description: "desc", Quantity: 2, Price: 10.00},
			{Name: "Other", Quantity: 1, Price: 0.1},
		},
		Template:  "modern",
		Notes:     "n",
		CreatedAt: "2026-08-01T00:00:00Z",
		PDFFileID: "f-1",
	}

	d := r.ToDraft()
	if d.Client.Name != "Acme" || d.Client.City != "SP" {
		t.Fatalf("unexpected client: %+v", d.Client)
	}
	if len(d.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(d.Items))
	}
	if d.Items[0].UnitPrice != money.Cents(1000) {
		t.Fatalf("expected 1000 cents, got %d", d.Items[0].UnitPrice)
	}
	if d.Items[1].UnitPrice != money.Cents(10) {
		t.Fatalf("expected 10 cents, got %d", d.Items[1].UnitPrice)
	}
	if d.Template != entities.TemplateModern {
		t.Fatalf("unexpected template %q", d.Template)
	}
	if d.CreatedAt != "2026-08-01T00:00:00Z" || d.PDFFileID != "f-1" {
		t.Fatalf("unexpected draft: %+v", d)
	}
}

func TestBudgetRequest_ToDraft_Empty(t *testing.T) {
	d := BudgetRequest{Template: "minimal"}.ToDraft()
	if len(d.Items) != 0 {
		t.Fatalf("expected no items, got %d", len(d.Items))
	}
	if entities.ComputeTotal(d.Items) != 0 {
		t.Fatalf("expected zero total")
	}
}
