package response

import (
	"orcafacil/internal/domain/entities"
)

type ClientResponse struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	City    string `json:"city"`
	ZipCode string `json:"zipCode"`
}

type LineItemResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	Total       float64 `json:"total"`
}

type BudgetResponse struct {
	ID        string             `json:"id"`
	Client    ClientResponse     `json:"client"`
	Products  []LineItemResponse `json:"products"`
	Template  string             `json:"template"`
	Notes     string             `json:"notes"`
	CreatedAt string             `json:"createdAt"`
	UpdatedAt string             `json:"updatedAt,omitempty"`
	Total     float64            `json:"total"`
	PDFFileID string             `json:"pdfFileId,omitempty"`
}

func FromBudget(b entities.Budget) BudgetResponse {
	products := make([]LineItemResponse, 0, len(b.Items))
	for _, it := range b.Items {
		products = append(products, LineItemResponse{
			ID:          it.ID,
			Name:        it.Name,
			Description: it.Description,
			Quantity:    it.Quantity,
			Price:       it.UnitPrice.Float64(),
			Total:       it.Total().Float64(),
		})
	}
	return BudgetResponse{
		ID:        b.ID,
		Client:    ClientResponse(b.Client),
		Products:  products,
		Template:  string(b.Template),
		Notes:     b.Notes,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
		Total:     b.Total.Float64(),
		PDFFileID: b.PDFFileID,
	}
}

func FromBudgets(budgets []entities.Budget) []BudgetResponse {
	out := make([]BudgetResponse, 0, len(budgets))
	for _, b := range budgets {
		out = append(out, FromBudget(b))
	}
	return out
}
