package domain

import "context"

// CatalogRepository provides read access to the pre-loaded store catalog.
// Implementations return snapshots in a stable iteration order: matching is
// order-sensitive, so the product order the catalog was loaded with is part
// of the contract.
type CatalogRepository interface {
	Stores(ctx context.Context) ([]Store, error)
	Products(ctx context.Context) ([]Product, error)
	StoreProducts(ctx context.Context, storeID string) ([]Product, error)
}
