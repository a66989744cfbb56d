package rental

import (
	"context"

	"github.com/ridehub/inventory-service/internal/model"
)

type Repository interface {
	FindAllVehicles(ctx context.Context) ([]model.Vehicle, error)
	FindVehicleByID(ctx context.Context, id string) (*model.Vehicle, error)

	FindAllBookings(ctx context.Context) ([]model.Booking, error)
	AppendBooking(ctx context.Context, b *model.Booking) error
}
