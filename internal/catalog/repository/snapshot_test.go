package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridehub/inventory-service/internal/model"
	"github.com/ridehub/inventory-service/internal/store"
)

func TestProductsSeedOnMissingSnapshot(t *testing.T) {
	st := store.NewMemoryStore()
	repo := NewSnapshotRepository(st)

	products, err := repo.FindAllProducts(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, products)

	// The seed is persisted so subsequent reads see the same dataset.
	assert.True(t, st.Has(store.CollectionProducts))

	suppliers, err := repo.FindAllSuppliers(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, suppliers)
}

func TestTypeMismatchedSnapshotReseeds(t *testing.T) {
	st := store.NewMemoryStore()
	// Syntactically valid JSON with a wrong field type reads as empty,
	// so the catalog falls back to the seed dataset.
	require.NoError(t, st.Write(store.CollectionProducts, []map[string]any{
		{"id": "p1", "quantity": "ten"},
	}))
	repo := NewSnapshotRepository(st)

	products, err := repo.FindAllProducts(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, products)
	for _, p := range products {
		assert.NotEqual(t, "p1", p.ID)
	}
}

func TestEmptySnapshotDoesNotReseed(t *testing.T) {
	st := store.NewMemoryStore()
	require.NoError(t, st.Write(store.CollectionProducts, []model.Product{}))
	repo := NewSnapshotRepository(st)

	// The user deleted everything; that is an empty catalog, not a
	// missing one.
	products, err := repo.FindAllProducts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestSaveProductUpsert(t *testing.T) {
	st := store.NewMemoryStore()
	require.NoError(t, st.Write(store.CollectionProducts, []model.Product{{ID: "p1", Name: "before"}}))
	repo := NewSnapshotRepository(st)
	ctx := context.Background()

	require.NoError(t, repo.SaveProduct(ctx, &model.Product{ID: "p1", Name: "after"}))
	require.NoError(t, repo.SaveProduct(ctx, &model.Product{ID: "p2", Name: "new"}))

	products, err := repo.FindAllProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "after", products[0].Name)
	assert.Equal(t, "p2", products[1].ID)
}

func TestSaveProductWithMovementAppends(t *testing.T) {
	st := store.NewMemoryStore()
	require.NoError(t, st.Write(store.CollectionProducts, []model.Product{{ID: "p1", Quantity: 5}}))
	repo := NewSnapshotRepository(st)
	ctx := context.Background()

	first := model.StockMovement{ID: "m1", ProductID: "p1", Type: model.MovementIn, Quantity: 2}
	second := model.StockMovement{ID: "m2", ProductID: "p1", Type: model.MovementOut, Quantity: 1}

	require.NoError(t, repo.SaveProductWithMovement(ctx, &model.Product{ID: "p1", Quantity: 7}, &first))
	require.NoError(t, repo.SaveProductWithMovement(ctx, &model.Product{ID: "p1", Quantity: 6}, &second))

	movements, err := repo.ListMovements(ctx, nil)
	require.NoError(t, err)
	require.Len(t, movements, 2)
	// Existing records are untouched; new ones land at the end.
	assert.Equal(t, "m1", movements[0].ID)
	assert.Equal(t, "m2", movements[1].ID)

	p, err := repo.FindProductByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 6, p.Quantity)
}

func TestFindProductByBarcodeFirstMatchWins(t *testing.T) {
	st := store.NewMemoryStore()
	require.NoError(t, st.Write(store.CollectionProducts, []model.Product{
		{ID: "p1", Barcode: "111"},
		{ID: "p2", Barcode: "111"}, // duplicate barcodes are possible
	}))
	repo := NewSnapshotRepository(st)

	p, err := repo.FindProductByBarcode(context.Background(), "111")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "p1", p.ID)
}

func TestDeleteProduct(t *testing.T) {
	st := store.NewMemoryStore()
	require.NoError(t, st.Write(store.CollectionProducts, []model.Product{{ID: "p1"}, {ID: "p2"}}))
	repo := NewSnapshotRepository(st)
	ctx := context.Background()

	require.NoError(t, repo.DeleteProduct(ctx, "p1"))

	products, err := repo.FindAllProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "p2", products[0].ID)
}
