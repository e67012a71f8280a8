package render

import (
	"orcafacil/internal/domain/entities"
	"orcafacil/internal/money"
)

// PreviewInput is the deterministic input used for budget preview rendering.
// It is derived from a Budget so the template never touches persistence
// types directly.
type PreviewInput struct {
	Template entities.BudgetTemplate
	Client   entities.Client
	Items    []LineItemView
	Notes    string
	Date     string
	Total    money.Cents
}

type LineItemView struct {
	Name        string
	Description string
	Quantity    int
	UnitPrice   money.Cents
	Total       money.Cents
}

// FromBudget builds the preview view-model for a budget.
func FromBudget(b entities.Budget) PreviewInput {
	items := make([]LineItemView, 0, len(b.Items))
	for _, it := range b.Items {
		items = append(items, LineItemView{
			Name:        it.Name,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Total:       it.Total(),
		})
	}
	return PreviewInput{
		Template: b.Template,
		Client:   b.Client,
		Items:    items,
		Notes:    b.Notes,
		Date:     b.CreatedAt,
		Total:    entities.ComputeTotal(b.Items),
	}
}

// Renderer produces the A4-proportioned HTML preview surface that callers
// rasterize before PDF assembly.
type Renderer interface {
	RenderHTML(input PreviewInput) (string, error)
}
