package repository

import (
	"context"

	"github.com/ridehub/inventory-service/internal/model"
	"github.com/ridehub/inventory-service/internal/store"
)

// SnapshotRepository persists invoices as one whole-collection snapshot.
// Invoices never seed; a missing snapshot is simply an empty ledger.
type SnapshotRepository struct {
	store store.Store
}

func NewSnapshotRepository(st store.Store) *SnapshotRepository {
	return &SnapshotRepository{store: st}
}

func (r *SnapshotRepository) FindAll(ctx context.Context) ([]model.Invoice, error) {
	var invoices []model.Invoice
	if err := r.store.Read(store.CollectionInvoices, &invoices); err != nil {
		return nil, err
	}
	return invoices, nil
}

func (r *SnapshotRepository) FindByID(ctx context.Context, id string) (*model.Invoice, error) {
	invoices, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range invoices {
		if invoices[i].ID == id {
			inv := invoices[i]
			return &inv, nil
		}
	}
	return nil, nil
}

func (r *SnapshotRepository) Append(ctx context.Context, inv *model.Invoice) error {
	invoices, err := r.FindAll(ctx)
	if err != nil {
		return err
	}
	invoices = append(invoices, *inv)
	return r.store.Write(store.CollectionInvoices, invoices)
}

func (r *SnapshotRepository) Save(ctx context.Context, inv *model.Invoice) error {
	invoices, err := r.FindAll(ctx)
	if err != nil {
		return err
	}
	for i := range invoices {
		if invoices[i].ID == inv.ID {
			invoices[i] = *inv
			return r.store.Write(store.CollectionInvoices, invoices)
		}
	}
	invoices = append(invoices, *inv)
	return r.store.Write(store.CollectionInvoices, invoices)
}
