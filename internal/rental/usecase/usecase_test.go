package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ridehub/inventory-service/internal/model"
	"github.com/ridehub/inventory-service/internal/rental"
	"github.com/ridehub/inventory-service/internal/rental/dto"
	rentRepoPkg "github.com/ridehub/inventory-service/internal/rental/repository"
	"github.com/ridehub/inventory-service/internal/store"
)

type fakeNotifier struct {
	successes []string
	errors    []string
}

func (n *fakeNotifier) Success(msg string) { n.successes = append(n.successes, msg) }
func (n *fakeNotifier) Error(msg string)   { n.errors = append(n.errors, msg) }

func newTestRental(t *testing.T, vehicles []model.Vehicle) (rental.UseCase, *store.MemoryStore, *fakeNotifier) {
	t.Helper()
	st := store.NewMemoryStore()
	if vehicles == nil {
		vehicles = []model.Vehicle{}
	}
	require.NoError(t, st.Write(store.CollectionVehicles, vehicles))

	notifier := &fakeNotifier{}
	uc := NewRentalUseCase(rentRepoPkg.NewSnapshotRepository(st), notifier, zap.NewNop())
	return uc, st, notifier
}

func testVehicle() model.Vehicle {
	return model.Vehicle{
		ID:          "veh-1",
		Name:        "City Hatch 1.2",
		Type:        model.VehicleCar,
		PricePerDay: 40,
	}
}

func day(d int) time.Time {
	return time.Date(2024, 6, d, 0, 0, 0, 0, time.UTC)
}

func TestCreateBooking(t *testing.T) {
	uc, st, notifier := newTestRental(t, []model.Vehicle{testVehicle()})

	b, err := uc.CreateBooking(context.Background(), &dto.CreateBookingInput{
		VehicleID: "veh-1",
		StartDate: day(10),
		EndDate:   day(12),
	})
	require.NoError(t, err)
	require.NotNil(t, b)

	// Both pickup and return days count.
	assert.Equal(t, 3, b.TotalDays)
	assert.InDelta(t, 120.0, b.TotalPrice, 1e-9)
	assert.Equal(t, model.BookingConfirmed, b.Status)
	assert.Equal(t, "City Hatch 1.2", b.VehicleName)

	var bookings []model.Booking
	require.NoError(t, st.Read(store.CollectionBookings, &bookings))
	require.Len(t, bookings, 1)
	assert.Contains(t, notifier.successes, "Booking confirmed!")
}

func TestCreateBookingSingleDay(t *testing.T) {
	uc, _, _ := newTestRental(t, []model.Vehicle{testVehicle()})

	b, err := uc.CreateBooking(context.Background(), &dto.CreateBookingInput{
		VehicleID: "veh-1",
		StartDate: day(10),
		EndDate:   day(10),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, b.TotalDays)
	assert.InDelta(t, 40.0, b.TotalPrice, 1e-9)
}

func TestCreateBookingInvertedRange(t *testing.T) {
	uc, st, notifier := newTestRental(t, []model.Vehicle{testVehicle()})

	b, err := uc.CreateBooking(context.Background(), &dto.CreateBookingInput{
		VehicleID: "veh-1",
		StartDate: day(12),
		EndDate:   day(10),
	})
	require.ErrorIs(t, err, rental.ErrInvalidDates)
	assert.Nil(t, b)
	assert.False(t, st.Has(store.CollectionBookings))
	assert.Len(t, notifier.errors, 1)
}

func TestCreateBookingMissingDates(t *testing.T) {
	uc, _, notifier := newTestRental(t, []model.Vehicle{testVehicle()})

	_, err := uc.CreateBooking(context.Background(), &dto.CreateBookingInput{VehicleID: "veh-1"})
	require.Error(t, err)
	assert.Len(t, notifier.errors, 1)
}

func TestCreateBookingUnknownVehicle(t *testing.T) {
	uc, _, notifier := newTestRental(t, []model.Vehicle{testVehicle()})

	_, err := uc.CreateBooking(context.Background(), &dto.CreateBookingInput{
		VehicleID: "missing",
		StartDate: day(10),
		EndDate:   day(11),
	})
	require.ErrorIs(t, err, rental.ErrVehicleNotFound)
	assert.Len(t, notifier.errors, 1)
}

func TestVehiclesSeedOnFirstRead(t *testing.T) {
	st := store.NewMemoryStore()
	uc := NewRentalUseCase(rentRepoPkg.NewSnapshotRepository(st), &fakeNotifier{}, zap.NewNop())

	vehicles, err := uc.ListVehicles(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, vehicles)
	assert.True(t, st.Has(store.CollectionVehicles))
}
