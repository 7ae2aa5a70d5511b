package domain

// Store represents one competing grocery store in the catalog
type Store struct {
	ID                  string  `json:"id" yaml:"id"`
	Name                string  `json:"name" yaml:"name"`
	Logo                string  `json:"logo,omitempty" yaml:"logo"`
	AverageDeliveryTime int     `json:"averageDeliveryTime" yaml:"averageDeliveryTime"` // minutes
	DeliveryFee         float64 `json:"deliveryFee" yaml:"deliveryFee"`
	MinimumOrder        float64 `json:"minimumOrder" yaml:"minimumOrder"` // carried for display, not enforced
}

// Product represents a single catalog entry belonging to exactly one store.
// Unit is a free-text descriptor as supplied by the store ("500g", "1kg",
// "1L", "pack of 6").
type Product struct {
	ID       string  `json:"id" yaml:"id"`
	StoreID  string  `json:"storeId" yaml:"storeId"`
	Name     string  `json:"name" yaml:"name"`
	Category string  `json:"category,omitempty" yaml:"category"`
	Brand    string  `json:"brand,omitempty" yaml:"brand"`
	Price    float64 `json:"price" yaml:"price"`
	Unit     string  `json:"unit" yaml:"unit"`
	InStock  bool    `json:"inStock" yaml:"inStock"`
}
