package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ridehub/inventory-service/internal/model"
	"github.com/ridehub/inventory-service/internal/notify"
	"github.com/ridehub/inventory-service/internal/rental"
	"github.com/ridehub/inventory-service/internal/rental/dto"
)

type rentalUseCase struct {
	repo     rental.Repository
	notifier notify.Notifier
	logger   *zap.Logger
}

func NewRentalUseCase(repo rental.Repository, notifier notify.Notifier, log *zap.Logger) rental.UseCase {
	return &rentalUseCase{
		repo:     repo,
		notifier: notifier,
		logger:   log,
	}
}

func (uc *rentalUseCase) ListVehicles(ctx context.Context) ([]model.Vehicle, error) {
	return uc.repo.FindAllVehicles(ctx)
}

func (uc *rentalUseCase) GetVehicle(ctx context.Context, id string) (*model.Vehicle, error) {
	return uc.repo.FindVehicleByID(ctx, id)
}

func (uc *rentalUseCase) CreateBooking(ctx context.Context, input *dto.CreateBookingInput) (*model.Booking, error) {
	if err := input.Validate(); err != nil {
		uc.notifier.Error(err.Error())
		return nil, err
	}

	vehicle, err := uc.repo.FindVehicleByID(ctx, input.VehicleID)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		uc.notifier.Error("Vehicle not found")
		return nil, rental.ErrVehicleNotFound
	}

	days := rentalDays(input.StartDate, input.EndDate)
	if days < 1 {
		uc.notifier.Error("End date must be after start date")
		return nil, rental.ErrInvalidDates
	}

	b := &model.Booking{
		ID:          uuid.New().String(),
		VehicleID:   vehicle.ID,
		VehicleName: vehicle.Name,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		TotalDays:   days,
		PricePerDay: vehicle.PricePerDay,
		TotalPrice:  float64(days) * vehicle.PricePerDay,
		Status:      model.BookingConfirmed,
		BookingDate: time.Now(),
	}

	if err := uc.repo.AppendBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.logger.Info("booking created",
		zap.String("vehicle", b.VehicleName),
		zap.Int("days", b.TotalDays),
		zap.Float64("total", b.TotalPrice),
	)
	uc.notifier.Success("Booking confirmed!")
	return b, nil
}

// rentalDays counts whole days between the dates, inclusive of both ends:
// picking up and returning on the same date is one rental day.
func rentalDays(start, end time.Time) int {
	diff := int(end.Sub(start).Hours() / 24)
	return diff + 1
}

func (uc *rentalUseCase) ListBookings(ctx context.Context) ([]model.Booking, error) {
	return uc.repo.FindAllBookings(ctx)
}
