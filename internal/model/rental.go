package model

import "time"

type VehicleType string

const (
	VehicleCar  VehicleType = "car"
	VehicleBike VehicleType = "bike"
)

type Vehicle struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Type         VehicleType `json:"type"`
	Category     string      `json:"category"`
	PricePerDay  float64     `json:"pricePerDay"`
	Rating       float64     `json:"rating"`
	ReviewCount  int         `json:"reviewCount"`
	Features     []string    `json:"features"`
	Description  string      `json:"description"`
	Capacity     int         `json:"capacity"`
	Transmission string      `json:"transmission"`
	FuelType     string      `json:"fuelType,omitempty"`
	EngineSize   string      `json:"engineSize,omitempty"`
}

type BookingStatus string

const (
	BookingConfirmed BookingStatus = "confirmed"
	BookingPending   BookingStatus = "pending"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

type Booking struct {
	ID          string        `json:"id"`
	VehicleID   string        `json:"vehicleId"`
	VehicleName string        `json:"vehicleName"`
	StartDate   time.Time     `json:"startDate"`
	EndDate     time.Time     `json:"endDate"`
	TotalDays   int           `json:"totalDays"`
	PricePerDay float64       `json:"pricePerDay"`
	TotalPrice  float64       `json:"totalPrice"`
	Status      BookingStatus `json:"status"`
	BookingDate time.Time     `json:"bookingDate"`
}
