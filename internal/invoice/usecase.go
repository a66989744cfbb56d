package invoice

import (
	"context"
	"errors"

	"github.com/ridehub/inventory-service/internal/invoice/dto"
	"github.com/ridehub/inventory-service/internal/model"
)

var (
	ErrNoItems          = errors.New("invoice requires at least one item")
	ErrSupplierNotFound = errors.New("supplier not found")
)

type UseCase interface {
	CreateInvoice(ctx context.Context, input *dto.CreateInvoiceInput) (*model.Invoice, error)
	ListInvoices(ctx context.Context) ([]model.Invoice, error)
	GetInvoice(ctx context.Context, id string) (*model.Invoice, error)
	UpdateStatus(ctx context.Context, id string, status model.InvoiceStatus) (*model.Invoice, error)
}

// SupplierResolver is the slice of the catalog the invoice flow needs: a
// supplier lookup that yields (nil, nil) on a miss.
type SupplierResolver interface {
	FindSupplierByID(ctx context.Context, id string) (*model.Supplier, error)
}
