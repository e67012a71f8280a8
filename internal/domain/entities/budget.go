package entities

import (
	"orcafacil/internal/money"
)

// BudgetTemplate selects the presentation style used when a budget is
// rendered to its visual/PDF form.
type BudgetTemplate string

const (
	TemplateModern  BudgetTemplate = "modern"
	TemplateClassic BudgetTemplate = "classic"
	TemplateMinimal BudgetTemplate = "minimal"
)

// IsValid reports whether the template tag belongs to the fixed set.
func (t BudgetTemplate) IsValid() bool {
	switch t {
	case TemplateModern, TemplateClassic, TemplateMinimal:
		return true
	}
	return false
}

// Client is the customer record embedded in a budget. All fields are
// free-text; no format validation is enforced.
type Client struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	City    string `json:"city"`
	ZipCode string `json:"zipCode"`
}

// LineItem is one product/service entry within a budget.
type LineItem struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Quantity    int         `json:"quantity"`
	UnitPrice   money.Cents `json:"unitPrice"`
}

// Total returns the extended price quantity × unit price.
func (i LineItem) Total() money.Cents {
	return i.UnitPrice.MulQuantity(i.Quantity)
}

// Budget is the quote document persisted in DynamoDB.
//
// Storage model:
//   - PK: id
//
// Monetary representation:
//   - All amounts are integer cents. Total is recomputed from the line items
//     at every write; the stored value is a denormalization for reads only.
type Budget struct {
	ID        string         `json:"id"`
	Client    Client         `json:"client"`
	Items     []LineItem     `json:"items"`
	Template  BudgetTemplate `json:"template"`
	Notes     string         `json:"notes"`
	CreatedAt string         `json:"created_at"`
	UpdatedAt string         `json:"updated_at,omitempty"`
	Total     money.Cents    `json:"total"`
	PDFFileID string         `json:"pdf_file_id,omitempty"`
}

// ComputeTotal sums the extended prices of all line items.
func ComputeTotal(items []LineItem) money.Cents {
	var total money.Cents
	for _, it := range items {
		total += it.Total()
	}
	return total
}
