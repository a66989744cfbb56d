// Package seed holds the built-in default dataset used to populate empty
// product, supplier and vehicle snapshots on first read. Movements,
// invoices and bookings always start empty.
package seed

import (
	"time"

	"github.com/ridehub/inventory-service/internal/model"
)

func Products() []model.Product {
	now := time.Now()
	return []model.Product{
		{
			ID:            "prod-1",
			Name:          "Engine Oil 5W-30 (1L)",
			Barcode:       "8901234567890",
			SKU:           "OIL-5W30-1L",
			Category:      "Fluids",
			Description:   "Fully synthetic engine oil for fleet cars",
			Quantity:      48,
			MinStockLevel: 12,
			UnitPrice:     9.5,
			SupplierID:    "sup-1",
			LastRestocked: now,
		},
		{
			ID:            "prod-2",
			Name:          "Brake Pad Set (Front)",
			Barcode:       "8901234567906",
			SKU:           "BRK-PAD-F",
			Category:      "Brakes",
			Description:   "Front axle brake pad set, compact class",
			Quantity:      16,
			MinStockLevel: 6,
			UnitPrice:     34.9,
			SupplierID:    "sup-1",
			LastRestocked: now,
		},
		{
			ID:            "prod-3",
			Name:          "All-Season Tire 195/65 R15",
			Barcode:       "8901234567913",
			SKU:           "TIRE-19565R15",
			Category:      "Tires",
			Description:   "All-season tire for the sedan fleet",
			Quantity:      24,
			MinStockLevel: 8,
			UnitPrice:     62.0,
			SupplierID:    "sup-2",
			LastRestocked: now,
		},
		{
			ID:            "prod-4",
			Name:          "Motorcycle Chain Lube",
			Barcode:       "8901234567920",
			SKU:           "MC-CHAIN-LUBE",
			Category:      "Fluids",
			Description:   "Chain lubricant spray for the bike fleet",
			Quantity:      5,
			MinStockLevel: 10,
			UnitPrice:     7.25,
			SupplierID:    "sup-2",
			LastRestocked: now,
		},
		{
			ID:            "prod-5",
			Name:          "Cabin Air Filter",
			Barcode:       "8901234567937",
			SKU:           "FLT-CABIN",
			Category:      "Filters",
			Description:   "Pollen cabin filter, standard size",
			Quantity:      30,
			MinStockLevel: 10,
			UnitPrice:     11.8,
			SupplierID:    "sup-1",
			LastRestocked: now,
		},
	}
}

func Suppliers() []model.Supplier {
	return []model.Supplier{
		{
			ID:            "sup-1",
			Name:          "AutoParts Direct",
			ContactPerson: "Maya Tan",
			Email:         "sales@autopartsdirect.example",
			Phone:         "+1-555-0141",
			Address:       "12 Industrial Ave, Springfield",
			Website:       "https://autopartsdirect.example",
		},
		{
			ID:            "sup-2",
			Name:          "TwoWheel Supply Co",
			ContactPerson: "Jonas Berg",
			Email:         "orders@twowheel.example",
			Phone:         "+1-555-0178",
			Address:       "88 Harbor Rd, Springfield",
			Notes:         "Motorcycle parts and tires, 30-day terms",
		},
	}
}

func Vehicles() []model.Vehicle {
	return []model.Vehicle{
		{
			ID:           "veh-1",
			Name:         "City Hatch 1.2",
			Type:         model.VehicleCar,
			Category:     "Economy",
			PricePerDay:  39.0,
			Rating:       4.6,
			ReviewCount:  128,
			Features:     []string{"Air conditioning", "Bluetooth", "5 doors"},
			Description:  "Compact city car, easy to park and cheap to run",
			Capacity:     5,
			Transmission: "Manual",
			FuelType:     "Petrol",
		},
		{
			ID:           "veh-2",
			Name:         "Grand Tourer SUV",
			Type:         model.VehicleCar,
			Category:     "SUV",
			PricePerDay:  89.0,
			Rating:       4.8,
			ReviewCount:  74,
			Features:     []string{"All-wheel drive", "Navigation", "Roof rack"},
			Description:  "Spacious SUV for longer trips and rough roads",
			Capacity:     7,
			Transmission: "Automatic",
			FuelType:     "Diesel",
		},
		{
			ID:           "veh-3",
			Name:         "Street 650 Twin",
			Type:         model.VehicleBike,
			Category:     "Standard",
			PricePerDay:  55.0,
			Rating:       4.7,
			ReviewCount:  52,
			Features:     []string{"ABS", "Luggage rack"},
			Description:  "Mid-size twin for commuting and weekend rides",
			Capacity:     2,
			Transmission: "Manual",
			EngineSize:   "648cc",
		},
	}
}
