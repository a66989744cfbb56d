package model

import "time"

type Product struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Barcode       string    `json:"barcode"`
	SKU           string    `json:"sku"`
	Category      string    `json:"category"`
	Description   string    `json:"description"`
	Quantity      int       `json:"quantity"`
	MinStockLevel int       `json:"minStockLevel"`
	UnitPrice     float64   `json:"unitPrice"`
	SupplierID    string    `json:"supplierId"`
	LastRestocked time.Time `json:"lastRestocked"`
}

// LowStock reports whether the on-hand count has fallen to or below the
// reorder threshold.
func (p *Product) LowStock() bool {
	return p.Quantity <= p.MinStockLevel
}
