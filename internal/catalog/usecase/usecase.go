package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ridehub/inventory-service/internal/catalog"
	"github.com/ridehub/inventory-service/internal/catalog/dto"
	"github.com/ridehub/inventory-service/internal/model"
	"github.com/ridehub/inventory-service/internal/notify"
)

type catalogUseCase struct {
	repo     catalog.Repository
	notifier notify.Notifier
	logger   *zap.Logger
}

func NewCatalogUseCase(repo catalog.Repository, notifier notify.Notifier, log *zap.Logger) catalog.UseCase {
	return &catalogUseCase{
		repo:     repo,
		notifier: notifier,
		logger:   log,
	}
}

func (uc *catalogUseCase) CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error) {
	if err := input.Validate(); err != nil {
		uc.notifier.Error(err.Error())
		return nil, err
	}

	// Duplicate SKU/barcode entry is a caller error, not a rejected
	// operation; no uniqueness check here.
	p := &model.Product{
		ID:            uuid.New().String(),
		Name:          input.Name,
		Barcode:       input.Barcode,
		SKU:           input.SKU,
		Category:      input.Category,
		Description:   input.Description,
		Quantity:      input.Quantity,
		MinStockLevel: input.MinStockLevel,
		UnitPrice:     input.UnitPrice,
		SupplierID:    input.SupplierID,
		LastRestocked: time.Now(),
	}

	if err := uc.repo.SaveProduct(ctx, p); err != nil {
		return nil, err
	}

	uc.notifier.Success("Product added successfully")
	return p, nil
}

func (uc *catalogUseCase) UpdateProduct(ctx context.Context, input *dto.UpdateProductInput) (*model.Product, error) {
	if err := input.Validate(); err != nil {
		uc.notifier.Error(err.Error())
		return nil, err
	}

	p, err := uc.repo.FindProductByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		uc.notifier.Error("Product not found")
		return nil, nil
	}

	p.Name = input.Name
	p.Barcode = input.Barcode
	p.SKU = input.SKU
	p.Category = input.Category
	p.Description = input.Description
	p.Quantity = input.Quantity
	p.MinStockLevel = input.MinStockLevel
	p.UnitPrice = input.UnitPrice
	p.SupplierID = input.SupplierID

	if err := uc.repo.SaveProduct(ctx, p); err != nil {
		return nil, err
	}

	uc.notifier.Success("Product updated successfully")
	return p, nil
}

func (uc *catalogUseCase) DeleteProduct(ctx context.Context, id string) error {
	if err := uc.repo.DeleteProduct(ctx, id); err != nil {
		return err
	}
	uc.notifier.Success("Product deleted")
	return nil
}

func (uc *catalogUseCase) ListProducts(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, error) {
	products, err := uc.repo.FindAllProducts(ctx)
	if err != nil {
		return nil, err
	}
	if filters == nil || (filters.SearchQuery == "" && (filters.Category == "" || filters.Category == "all")) {
		return products, nil
	}
	filtered := make([]model.Product, 0, len(products))
	for _, p := range products {
		if matchesFilters(&p, filters) {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

// matchesFilters applies the search semantics of the inventory screen:
// query against name/SKU case-insensitively or barcode as a raw
// substring, category as an exact match ("all" matches everything).
func matchesFilters(p *model.Product, f *dto.ProductFilters) bool {
	if f.Category != "" && f.Category != "all" && p.Category != f.Category {
		return false
	}
	if f.SearchQuery == "" {
		return true
	}
	q := strings.ToLower(f.SearchQuery)
	return strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.SKU), q) ||
		strings.Contains(p.Barcode, f.SearchQuery)
}

// FindByBarcode is total: an unknown barcode yields (nil, nil) after an
// error notification, never a failure the caller has to branch on.
func (uc *catalogUseCase) FindByBarcode(ctx context.Context, barcode string) (*model.Product, error) {
	p, err := uc.repo.FindProductByBarcode(ctx, barcode)
	if err != nil {
		return nil, err
	}
	if p == nil {
		uc.notifier.Error("Product not found")
		return nil, nil
	}
	return p, nil
}

func (uc *catalogUseCase) AdjustStock(ctx context.Context, input *dto.AdjustStockInput) (*model.Product, *model.StockMovement, error) {
	if err := input.Validate(); err != nil {
		uc.notifier.Error(err.Error())
		return nil, nil, err
	}

	p, err := uc.repo.FindProductByID(ctx, input.ProductID)
	if err != nil {
		return nil, nil, err
	}
	if p == nil {
		// Matches the original behavior: adjusting an unknown product is
		// a silent no-op.
		uc.logger.Debug("stock adjustment for unknown product", zap.String("product_id", input.ProductID))
		return nil, nil, nil
	}

	now := time.Now()
	previous := p.Quantity
	newQuantity := previous + input.Delta // no floor; negative results are the caller's problem

	movement := &model.StockMovement{
		ID:               uuid.New().String(),
		ProductID:        p.ID,
		ProductName:      p.Name,
		Type:             model.MovementTypeForDelta(input.Delta),
		Quantity:         abs(input.Delta),
		PreviousQuantity: previous,
		NewQuantity:      newQuantity,
		Reason:           input.Reason,
		Reference:        input.Reference,
		Date:             now,
	}

	updated := *p
	updated.Quantity = newQuantity
	updated.LastRestocked = now

	if err := uc.repo.SaveProductWithMovement(ctx, &updated, movement); err != nil {
		return nil, nil, err
	}

	direction := "decreased"
	if input.Delta > 0 {
		direction = "increased"
	}
	uc.notifier.Success(fmt.Sprintf("Stock %s by %d", direction, movement.Quantity))

	return &updated, movement, nil
}

// LowStock filters products at or below their reorder threshold,
// preserving input order. Used for alerting only.
func (uc *catalogUseCase) LowStock(ctx context.Context) ([]model.Product, error) {
	products, err := uc.repo.FindAllProducts(ctx)
	if err != nil {
		return nil, err
	}
	low := make([]model.Product, 0)
	for _, p := range products {
		if p.LowStock() {
			low = append(low, p)
		}
	}
	return low, nil
}

func (uc *catalogUseCase) ListMovements(ctx context.Context, filters *dto.MovementFilters) ([]model.StockMovement, error) {
	return uc.repo.ListMovements(ctx, filters)
}

func (uc *catalogUseCase) CreateSupplier(ctx context.Context, input *dto.CreateSupplierInput) (*model.Supplier, error) {
	if err := input.Validate(); err != nil {
		uc.notifier.Error(err.Error())
		return nil, err
	}

	s := &model.Supplier{
		ID:            uuid.New().String(),
		Name:          input.Name,
		ContactPerson: input.ContactPerson,
		Email:         input.Email,
		Phone:         input.Phone,
		Address:       input.Address,
		Website:       input.Website,
		Notes:         input.Notes,
	}

	if err := uc.repo.SaveSupplier(ctx, s); err != nil {
		return nil, err
	}

	uc.notifier.Success("Supplier added successfully")
	return s, nil
}

func (uc *catalogUseCase) UpdateSupplier(ctx context.Context, input *dto.UpdateSupplierInput) (*model.Supplier, error) {
	if err := input.Validate(); err != nil {
		uc.notifier.Error(err.Error())
		return nil, err
	}

	s, err := uc.repo.FindSupplierByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if s == nil {
		uc.notifier.Error("Supplier not found")
		return nil, nil
	}

	s.Name = input.Name
	s.ContactPerson = input.ContactPerson
	s.Email = input.Email
	s.Phone = input.Phone
	s.Address = input.Address
	s.Website = input.Website
	s.Notes = input.Notes

	if err := uc.repo.SaveSupplier(ctx, s); err != nil {
		return nil, err
	}

	uc.notifier.Success("Supplier updated successfully")
	return s, nil
}

// DeleteSupplier does not cascade: products and invoices keep their
// supplier references even when they dangle.
func (uc *catalogUseCase) DeleteSupplier(ctx context.Context, id string) error {
	if err := uc.repo.DeleteSupplier(ctx, id); err != nil {
		return err
	}
	uc.notifier.Success("Supplier deleted")
	return nil
}

func (uc *catalogUseCase) ListSuppliers(ctx context.Context) ([]model.Supplier, error) {
	return uc.repo.FindAllSuppliers(ctx)
}

func (uc *catalogUseCase) GetSupplier(ctx context.Context, id string) (*model.Supplier, error) {
	return uc.repo.FindSupplierByID(ctx, id)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
