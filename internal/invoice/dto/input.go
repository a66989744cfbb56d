package dto

import (
	"time"

	"github.com/ridehub/inventory-service/internal/model"
)

type CreateInvoiceInput struct {
	SupplierID string
	Date       time.Time
	DueDate    time.Time
	Items      []model.InvoiceItem
	Notes      string
}
