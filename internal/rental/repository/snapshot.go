package repository

import (
	"context"

	"github.com/ridehub/inventory-service/internal/model"
	"github.com/ridehub/inventory-service/internal/seed"
	"github.com/ridehub/inventory-service/internal/store"
)

type SnapshotRepository struct {
	store store.Store
}

func NewSnapshotRepository(st store.Store) *SnapshotRepository {
	return &SnapshotRepository{store: st}
}

// readVehicles seeds the fleet the first time, like the catalog does for
// products. Bookings never seed.
func (r *SnapshotRepository) readVehicles(ctx context.Context) ([]model.Vehicle, error) {
	var vehicles []model.Vehicle
	if err := r.store.Read(store.CollectionVehicles, &vehicles); err != nil {
		return nil, err
	}
	if vehicles == nil {
		vehicles = seed.Vehicles()
		if err := r.store.Write(store.CollectionVehicles, vehicles); err != nil {
			return nil, err
		}
	}
	return vehicles, nil
}

func (r *SnapshotRepository) FindAllVehicles(ctx context.Context) ([]model.Vehicle, error) {
	return r.readVehicles(ctx)
}

func (r *SnapshotRepository) FindVehicleByID(ctx context.Context, id string) (*model.Vehicle, error) {
	vehicles, err := r.readVehicles(ctx)
	if err != nil {
		return nil, err
	}
	for i := range vehicles {
		if vehicles[i].ID == id {
			v := vehicles[i]
			return &v, nil
		}
	}
	return nil, nil
}

func (r *SnapshotRepository) FindAllBookings(ctx context.Context) ([]model.Booking, error) {
	var bookings []model.Booking
	if err := r.store.Read(store.CollectionBookings, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *SnapshotRepository) AppendBooking(ctx context.Context, b *model.Booking) error {
	bookings, err := r.FindAllBookings(ctx)
	if err != nil {
		return err
	}
	bookings = append(bookings, *b)
	return r.store.Write(store.CollectionBookings, bookings)
}
