package rental

import (
	"context"
	"errors"

	"github.com/ridehub/inventory-service/internal/model"
	"github.com/ridehub/inventory-service/internal/rental/dto"
)

var (
	ErrVehicleNotFound = errors.New("vehicle not found")
	ErrInvalidDates    = errors.New("end date must be after start date")
)

type UseCase interface {
	ListVehicles(ctx context.Context) ([]model.Vehicle, error)
	GetVehicle(ctx context.Context, id string) (*model.Vehicle, error)
	CreateBooking(ctx context.Context, input *dto.CreateBookingInput) (*model.Booking, error)
	ListBookings(ctx context.Context) ([]model.Booking, error)
}
