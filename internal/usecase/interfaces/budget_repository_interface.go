package interfaces

import (
	"context"

	"orcafacil/internal/domain/entities"
)

// IBudgetRepository abstracts DynamoDB persistence for Budget.
//
// Conventions carried by all implementations:
//   - a zero-value entity (empty ID) means "not found"; callers translate
//     that into their own typed error
//   - Update is a full-record replace; the last writer wins
type IBudgetRepository interface {
	List(ctx context.Context) ([]entities.Budget, error)
	Create(ctx context.Context, b entities.Budget) (entities.Budget, error)
	GetByID(ctx context.Context, id string) (entities.Budget, error)
	Update(ctx context.Context, b entities.Budget) (entities.Budget, error)
	Delete(ctx context.Context, id string) error
}
