package invoice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridehub/inventory-service/internal/model"
)

func TestBuilderAddItemSnapshotsPrice(t *testing.T) {
	p := &model.Product{ID: "prod-1", Name: "Engine Oil", UnitPrice: 10}
	b := NewBuilder()

	item := b.AddItem(p, 2)
	assert.Equal(t, 20.0, item.Total)

	// A later price change must not reach the already-added item.
	p.UnitPrice = 99
	items := b.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 10.0, items[0].UnitPrice)
	assert.Equal(t, 20.0, items[0].Total)
}

func TestBuilderDuplicateItemsAreNotMerged(t *testing.T) {
	p := &model.Product{ID: "prod-1", Name: "Engine Oil", UnitPrice: 10}
	b := NewBuilder()

	b.AddItem(p, 1)
	b.AddItem(p, 2)

	items := b.Items()
	require.Len(t, items, 2)
	assert.Equal(t, 1, items[0].Quantity)
	assert.Equal(t, 2, items[1].Quantity)
}

func TestBuilderRemoveItem(t *testing.T) {
	b := NewBuilder()
	b.AddItem(&model.Product{ID: "a", UnitPrice: 1}, 1)
	b.AddItem(&model.Product{ID: "b", UnitPrice: 2}, 1)

	b.RemoveItem(0)
	items := b.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "b", items[0].ProductID)

	// Out-of-range removals are a no-op.
	b.RemoveItem(5)
	b.RemoveItem(-1)
	assert.Len(t, b.Items(), 1)
}

func TestTotalsScenario(t *testing.T) {
	items := []model.InvoiceItem{
		{UnitPrice: 10, Quantity: 2, Total: 20},
		{UnitPrice: 5, Quantity: 1, Total: 5},
	}

	subtotal, tax, total := Totals(items)
	assert.InDelta(t, 25.0, subtotal, 1e-9)
	assert.InDelta(t, 2.5, tax, 1e-9)
	assert.InDelta(t, 27.5, total, 1e-9)
}

func TestTotalsLinearity(t *testing.T) {
	p1 := &model.Product{ID: "a", UnitPrice: 12.34}
	p2 := &model.Product{ID: "b", UnitPrice: 0.99}

	single := NewBuilder()
	single.AddItem(p1, 3)
	single.AddItem(p2, 7)

	doubled := NewBuilder()
	doubled.AddItem(p1, 6)
	doubled.AddItem(p2, 14)

	s1, t1, tot1 := Totals(single.Items())
	s2, t2, tot2 := Totals(doubled.Items())

	assert.InDelta(t, 2*s1, s2, 1e-9)
	assert.InDelta(t, 2*t1, t2, 1e-9)
	assert.InDelta(t, 2*tot1, tot2, 1e-9)
}

func TestTotalsEmpty(t *testing.T) {
	subtotal, tax, total := Totals(nil)
	assert.Zero(t, subtotal)
	assert.Zero(t, tax)
	assert.Zero(t, total)
}
