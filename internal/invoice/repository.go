package invoice

import (
	"context"

	"github.com/ridehub/inventory-service/internal/model"
)

type Repository interface {
	FindAll(ctx context.Context) ([]model.Invoice, error)
	FindByID(ctx context.Context, id string) (*model.Invoice, error)
	// Append adds a newly committed invoice to the collection.
	Append(ctx context.Context, inv *model.Invoice) error
	// Save overwrites the whole record in place (status changes).
	Save(ctx context.Context, inv *model.Invoice) error
}
