package invoice

import "github.com/ridehub/inventory-service/internal/model"

// TaxRate is the flat rate applied to every invoice. It is not read from
// any jurisdiction table.
const TaxRate = 0.10

// Builder accumulates line items for an in-progress invoice. It is pure
// in-memory state; nothing is persisted until the builder's items are
// committed through the use case.
type Builder struct {
	items []model.InvoiceItem
}

func NewBuilder() *Builder {
	return &Builder{}
}

// AddItem snapshots the product's name and unit price at call time; later
// price edits do not reach items already added. Adding the same product
// twice yields two separate line entries, they are deliberately not
// merged.
func (b *Builder) AddItem(p *model.Product, quantity int) model.InvoiceItem {
	item := model.InvoiceItem{
		ProductID:   p.ID,
		ProductName: p.Name,
		Quantity:    quantity,
		UnitPrice:   p.UnitPrice,
		Total:       p.UnitPrice * float64(quantity),
	}
	b.items = append(b.items, item)
	return item
}

// RemoveItem drops the entry at index and is a no-op when the index is
// out of range.
func (b *Builder) RemoveItem(index int) {
	if index < 0 || index >= len(b.items) {
		return
	}
	b.items = append(b.items[:index], b.items[index+1:]...)
}

// Items returns a copy of the pending line items.
func (b *Builder) Items() []model.InvoiceItem {
	out := make([]model.InvoiceItem, len(b.items))
	copy(out, b.items)
	return out
}

func (b *Builder) Reset() {
	b.items = nil
}

// Totals sums the line items and applies the flat tax. Values stay in
// float64 with no rounding step; two-decimal formatting is a presentation
// concern.
func Totals(items []model.InvoiceItem) (subtotal, tax, total float64) {
	for _, item := range items {
		subtotal += item.Total
	}
	tax = subtotal * TaxRate
	total = subtotal + tax
	return subtotal, tax, total
}
