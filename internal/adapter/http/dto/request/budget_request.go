package request

import (
	"orcafacil/internal/domain/entities"
	"orcafacil/internal/money"
	"orcafacil/internal/usecase"
)

type ClientRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	City    string `json:"city"`
	ZipCode string `json:"zipCode"`
}

type LineItemRequest struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

// BudgetRequest is the editor payload accepted for both creation and update.
// One strict schema at every write boundary; any client-supplied total is
// ignored and recomputed server-side.
type BudgetRequest struct {
	Client    ClientRequest     `json:"client"`
	Products  []LineItemRequest `json:"products"`
	Template  string            `json:"template" binding:"required"`
	Notes     string            `json:"notes"`
	CreatedAt string            `json:"createdAt"`
	PDFFileID string            `json:"pdfFileId"`
}

// ToDraft translates the payload into the domain command, converting prices
// from decimal currency units into integer cents.
func (r BudgetRequest) ToDraft() usecase.BudgetDraft {
	items := make([]entities.LineItem, 0, len(r.Products))
	for _, p := range r.Products {
		items = append(items, entities.LineItem{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Quantity:    p.Quantity,
			UnitPrice:   money.FromFloat(p.Price),
		})
	}
	return usecase.BudgetDraft{
		Client: entities.Client{
			Name:    r.Client.Name,
			Email:   r.Client.Email,
			Phone:   r.Client.Phone,
			Address: r.Client.Address,
			City:    r.Client.City,
			ZipCode: r.Client.ZipCode,
		},
		Items:     items,
		Template:  entities.BudgetTemplate(r.Template),
		Notes:     r.Notes,
		CreatedAt: r.CreatedAt,
		PDFFileID: r.PDFFileID,
	}
}
