package dto

import (
	"errors"
	"time"
)

type CreateBookingInput struct {
	VehicleID string
	StartDate time.Time
	EndDate   time.Time
}

func (i *CreateBookingInput) Validate() error {
	if i.VehicleID == "" {
		return errors.New("vehicle id is required")
	}
	if i.StartDate.IsZero() || i.EndDate.IsZero() {
		return errors.New("please select both start and end dates")
	}
	return nil
}
