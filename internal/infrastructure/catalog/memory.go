package catalog

import (
	"context"
	"sync"

	"github.com/buynary/backend/internal/domain"
)

// Memory is a thread-safe, read-only in-memory catalog. It is loaded once
// and then only read; accessors hand out copies so callers always work on
// their own immutable snapshot, in the load order the catalog came with.
type Memory struct {
	mutex    sync.RWMutex
	stores   []domain.Store
	products []domain.Product
	byStore  map[string][]domain.Product
}

// NewMemory creates an in-memory catalog over the given stores and products
func NewMemory(stores []domain.Store, products []domain.Product) *Memory {
	byStore := make(map[string][]domain.Product)
	for _, product := range products {
		byStore[product.StoreID] = append(byStore[product.StoreID], product)
	}

	return &Memory{
		stores:   stores,
		products: products,
		byStore:  byStore,
	}
}

// Stores returns all stores in load order
func (m *Memory) Stores(ctx context.Context) ([]domain.Store, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	stores := make([]domain.Store, len(m.stores))
	copy(stores, m.stores)
	return stores, nil
}

// Products returns the full flat product catalog in load order
func (m *Memory) Products(ctx context.Context) ([]domain.Product, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	products := make([]domain.Product, len(m.products))
	copy(products, m.products)
	return products, nil
}

// StoreProducts returns the products belonging to one store, in load order.
// An unknown store id yields an empty slice, not an error.
func (m *Memory) StoreProducts(ctx context.Context, storeID string) ([]domain.Product, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	products := make([]domain.Product, len(m.byStore[storeID]))
	copy(products, m.byStore[storeID])
	return products, nil
}

// Size returns the number of catalog products (for startup logging)
func (m *Memory) Size() int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return len(m.products)
}
