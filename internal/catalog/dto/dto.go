package dto

import "github.com/ridehub/inventory-service/internal/model"

type ProductFilters struct {
	SearchQuery string // matches name/SKU (case-insensitive) or barcode substring
	Category    string // exact match; empty or "all" matches everything
}

type MovementFilters struct {
	ProductID string
	Type      model.MovementType
}
