package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buynary/backend/internal/domain"
)

func fixtureStores() []domain.Store {
	return []domain.Store{
		{ID: "s1", Name: "First", DeliveryFee: 5},
		{ID: "s2", Name: "Second", DeliveryFee: 7},
	}
}

func fixtureProducts() []domain.Product {
	return []domain.Product{
		{ID: "p1", StoreID: "s1", Name: "Milk", Price: 6, Unit: "1L", InStock: true},
		{ID: "p2", StoreID: "s2", Name: "Bread", Price: 4, Unit: "600g", InStock: true},
		{ID: "p3", StoreID: "s1", Name: "Eggs", Price: 12, Unit: "12 pack", InStock: false},
	}
}

func TestMemoryStores(t *testing.T) {
	m := NewMemory(fixtureStores(), fixtureProducts())

	stores, err := m.Stores(context.Background())
	require.NoError(t, err)
	require.Len(t, stores, 2)
	assert.Equal(t, "s1", stores[0].ID, "load order must be preserved")
	assert.Equal(t, "s2", stores[1].ID)
}

func TestMemoryProducts(t *testing.T) {
	m := NewMemory(fixtureStores(), fixtureProducts())

	products, err := m.Products(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 3)
	assert.Equal(t, []string{"p1", "p2", "p3"}, []string{products[0].ID, products[1].ID, products[2].ID},
		"load order must be preserved")
}

func TestMemoryStoreProducts(t *testing.T) {
	m := NewMemory(fixtureStores(), fixtureProducts())
	ctx := context.Background()

	t.Run("filters by store id in load order", func(t *testing.T) {
		products, err := m.StoreProducts(ctx, "s1")
		require.NoError(t, err)
		require.Len(t, products, 2)
		assert.Equal(t, "p1", products[0].ID)
		assert.Equal(t, "p3", products[1].ID)
	})

	t.Run("includes out of stock products", func(t *testing.T) {
		// Stock filtering is the comparison engine's job, not the catalog's
		products, err := m.StoreProducts(ctx, "s1")
		require.NoError(t, err)
		assert.False(t, products[1].InStock)
	})

	t.Run("unknown store yields empty slice not error", func(t *testing.T) {
		products, err := m.StoreProducts(ctx, "nope")
		require.NoError(t, err)
		assert.Empty(t, products)
	})
}

func TestMemorySnapshotIsolation(t *testing.T) {
	m := NewMemory(fixtureStores(), fixtureProducts())
	ctx := context.Background()

	first, err := m.Stores(ctx)
	require.NoError(t, err)
	first[0].Name = "Mutated"

	second, err := m.Stores(ctx)
	require.NoError(t, err)
	assert.Equal(t, "First", second[0].Name, "callers must not be able to mutate the catalog")
}

func TestMemorySize(t *testing.T) {
	m := NewMemory(fixtureStores(), fixtureProducts())
	assert.Equal(t, 3, m.Size())
}

func TestSeed(t *testing.T) {
	m := Seed()
	ctx := context.Background()

	stores, err := m.Stores(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, stores)

	products, err := m.Products(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, products)

	storeIDs := make(map[string]bool, len(stores))
	for _, store := range stores {
		assert.NotEmpty(t, store.ID)
		assert.NotEmpty(t, store.Name)
		assert.Greater(t, store.AverageDeliveryTime, 0)
		storeIDs[store.ID] = true
	}

	for _, product := range products {
		assert.True(t, storeIDs[product.StoreID], "product %s references unknown store %s", product.ID, product.StoreID)
		assert.Greater(t, product.Price, 0.0, "product %s has no price", product.ID)
		assert.NotEmpty(t, product.Unit, "product %s has no unit descriptor", product.ID)
	}

	// Every store should have at least one in-stock product to compare against
	inStock := make(map[string]int)
	for _, product := range products {
		if product.InStock {
			inStock[product.StoreID]++
		}
	}
	for id := range storeIDs {
		assert.Greater(t, inStock[id], 0, "store %s has no in-stock products", id)
	}
}
