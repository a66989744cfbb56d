package repository

import (
	"context"

	"github.com/ridehub/inventory-service/internal/catalog/dto"
	"github.com/ridehub/inventory-service/internal/model"
	"github.com/ridehub/inventory-service/internal/seed"
	"github.com/ridehub/inventory-service/internal/store"
)

// SnapshotRepository backs the catalog with whole-collection snapshots.
// Every write replaces the full collection; with a single actor the last
// write always wins, so no finer granularity is needed.
type SnapshotRepository struct {
	store store.Store
}

func NewSnapshotRepository(st store.Store) *SnapshotRepository {
	return &SnapshotRepository{store: st}
}

// readProducts loads the product snapshot, seeding the default dataset
// when no snapshot has ever been written. A decoded-but-empty list stays
// empty; only a missing or malformed snapshot (nil slice) triggers the
// seed.
func (r *SnapshotRepository) readProducts(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	if err := r.store.Read(store.CollectionProducts, &products); err != nil {
		return nil, err
	}
	if products == nil {
		products = seed.Products()
		if err := r.store.Write(store.CollectionProducts, products); err != nil {
			return nil, err
		}
	}
	return products, nil
}

func (r *SnapshotRepository) readSuppliers(ctx context.Context) ([]model.Supplier, error) {
	var suppliers []model.Supplier
	if err := r.store.Read(store.CollectionSuppliers, &suppliers); err != nil {
		return nil, err
	}
	if suppliers == nil {
		suppliers = seed.Suppliers()
		if err := r.store.Write(store.CollectionSuppliers, suppliers); err != nil {
			return nil, err
		}
	}
	return suppliers, nil
}

func (r *SnapshotRepository) FindAllProducts(ctx context.Context) ([]model.Product, error) {
	return r.readProducts(ctx)
}

func (r *SnapshotRepository) FindProductByID(ctx context.Context, id string) (*model.Product, error) {
	products, err := r.readProducts(ctx)
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID == id {
			p := products[i]
			return &p, nil
		}
	}
	return nil, nil
}

// FindProductByBarcode is an exact-match linear scan. No case or
// whitespace normalization is applied.
func (r *SnapshotRepository) FindProductByBarcode(ctx context.Context, barcode string) (*model.Product, error) {
	products, err := r.readProducts(ctx)
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].Barcode == barcode {
			p := products[i]
			return &p, nil
		}
	}
	return nil, nil
}

// SaveProduct replaces the product with the same ID, or appends when the
// ID is new.
func (r *SnapshotRepository) SaveProduct(ctx context.Context, p *model.Product) error {
	products, err := r.readProducts(ctx)
	if err != nil {
		return err
	}
	products = upsertProduct(products, *p)
	return r.store.Write(store.CollectionProducts, products)
}

func (r *SnapshotRepository) DeleteProduct(ctx context.Context, id string) error {
	products, err := r.readProducts(ctx)
	if err != nil {
		return err
	}
	kept := products[:0]
	for _, p := range products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	return r.store.Write(store.CollectionProducts, kept)
}

func (r *SnapshotRepository) FindAllSuppliers(ctx context.Context) ([]model.Supplier, error) {
	return r.readSuppliers(ctx)
}

func (r *SnapshotRepository) FindSupplierByID(ctx context.Context, id string) (*model.Supplier, error) {
	suppliers, err := r.readSuppliers(ctx)
	if err != nil {
		return nil, err
	}
	for i := range suppliers {
		if suppliers[i].ID == id {
			s := suppliers[i]
			return &s, nil
		}
	}
	return nil, nil
}

func (r *SnapshotRepository) SaveSupplier(ctx context.Context, s *model.Supplier) error {
	suppliers, err := r.readSuppliers(ctx)
	if err != nil {
		return err
	}
	replaced := false
	for i := range suppliers {
		if suppliers[i].ID == s.ID {
			suppliers[i] = *s
			replaced = true
			break
		}
	}
	if !replaced {
		suppliers = append(suppliers, *s)
	}
	return r.store.Write(store.CollectionSuppliers, suppliers)
}

// DeleteSupplier removes the supplier only. Products and invoices keep
// their supplierId; orphaned references are accepted.
func (r *SnapshotRepository) DeleteSupplier(ctx context.Context, id string) error {
	suppliers, err := r.readSuppliers(ctx)
	if err != nil {
		return err
	}
	kept := suppliers[:0]
	for _, s := range suppliers {
		if s.ID != id {
			kept = append(kept, s)
		}
	}
	return r.store.Write(store.CollectionSuppliers, kept)
}

func (r *SnapshotRepository) ListMovements(ctx context.Context, filters *dto.MovementFilters) ([]model.StockMovement, error) {
	var movements []model.StockMovement
	if err := r.store.Read(store.CollectionMovements, &movements); err != nil {
		return nil, err
	}
	if filters == nil || (filters.ProductID == "" && filters.Type == "") {
		return movements, nil
	}
	filtered := make([]model.StockMovement, 0, len(movements))
	for _, m := range movements {
		if filters.ProductID != "" && m.ProductID != filters.ProductID {
			continue
		}
		if filters.Type != "" && m.Type != filters.Type {
			continue
		}
		filtered = append(filtered, m)
	}
	return filtered, nil
}

// SaveProductWithMovement persists the adjusted product and appends the
// movement record. Movements are append-only; existing entries are never
// rewritten.
func (r *SnapshotRepository) SaveProductWithMovement(ctx context.Context, p *model.Product, movement *model.StockMovement) error {
	products, err := r.readProducts(ctx)
	if err != nil {
		return err
	}
	products = upsertProduct(products, *p)
	if err := r.store.Write(store.CollectionProducts, products); err != nil {
		return err
	}

	var movements []model.StockMovement
	if err := r.store.Read(store.CollectionMovements, &movements); err != nil {
		return err
	}
	movements = append(movements, *movement)
	return r.store.Write(store.CollectionMovements, movements)
}

func upsertProduct(products []model.Product, p model.Product) []model.Product {
	for i := range products {
		if products[i].ID == p.ID {
			products[i] = p
			return products
		}
	}
	return append(products, p)
}
