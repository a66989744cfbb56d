package catalog

import (
	"context"

	"github.com/ridehub/inventory-service/internal/catalog/dto"
	"github.com/ridehub/inventory-service/internal/model"
)

type Repository interface {
	// Products
	FindAllProducts(ctx context.Context) ([]model.Product, error)
	FindProductByID(ctx context.Context, id string) (*model.Product, error)
	FindProductByBarcode(ctx context.Context, barcode string) (*model.Product, error)
	SaveProduct(ctx context.Context, p *model.Product) error
	DeleteProduct(ctx context.Context, id string) error

	// Suppliers
	FindAllSuppliers(ctx context.Context) ([]model.Supplier, error)
	FindSupplierByID(ctx context.Context, id string) (*model.Supplier, error)
	SaveSupplier(ctx context.Context, s *model.Supplier) error
	DeleteSupplier(ctx context.Context, id string) error

	// Movements / Audit
	ListMovements(ctx context.Context, filters *dto.MovementFilters) ([]model.StockMovement, error)

	// Writes the updated product and appends its movement in one pass.
	SaveProductWithMovement(ctx context.Context, p *model.Product, movement *model.StockMovement) error
}
