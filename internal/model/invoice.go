package model

import "time"

type InvoiceStatus string

const (
	InvoiceDraft   InvoiceStatus = "draft"
	InvoiceSent    InvoiceStatus = "sent"
	InvoicePaid    InvoiceStatus = "paid"
	InvoiceOverdue InvoiceStatus = "overdue"
)

type Invoice struct {
	ID            string        `json:"id"`
	InvoiceNumber string        `json:"invoiceNumber"`
	SupplierID    string        `json:"supplierId"`
	SupplierName  string        `json:"supplierName"`
	Date          time.Time     `json:"date"`
	DueDate       time.Time     `json:"dueDate"`
	Items         []InvoiceItem `json:"items"`
	Subtotal      float64       `json:"subtotal"`
	Tax           float64       `json:"tax"`
	Total         float64       `json:"total"`
	Status        InvoiceStatus `json:"status"`
	Notes         string        `json:"notes,omitempty"`
}

// InvoiceItem is one line entry. UnitPrice and ProductName are snapshots
// taken when the item was added; later product edits do not affect them.
type InvoiceItem struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	Total       float64 `json:"total"`
}
