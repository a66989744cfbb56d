package catalog

import (
	"context"

	"github.com/ridehub/inventory-service/internal/catalog/dto"
	"github.com/ridehub/inventory-service/internal/model"
)

type UseCase interface {
	// Products
	CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error)
	UpdateProduct(ctx context.Context, input *dto.UpdateProductInput) (*model.Product, error)
	DeleteProduct(ctx context.Context, id string) error
	ListProducts(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, error)
	FindByBarcode(ctx context.Context, barcode string) (*model.Product, error)

	// Stock
	AdjustStock(ctx context.Context, input *dto.AdjustStockInput) (*model.Product, *model.StockMovement, error)
	LowStock(ctx context.Context) ([]model.Product, error)
	ListMovements(ctx context.Context, filters *dto.MovementFilters) ([]model.StockMovement, error)

	// Suppliers
	CreateSupplier(ctx context.Context, input *dto.CreateSupplierInput) (*model.Supplier, error)
	UpdateSupplier(ctx context.Context, input *dto.UpdateSupplierInput) (*model.Supplier, error)
	DeleteSupplier(ctx context.Context, id string) error
	ListSuppliers(ctx context.Context) ([]model.Supplier, error)
	GetSupplier(ctx context.Context, id string) (*model.Supplier, error)
}
