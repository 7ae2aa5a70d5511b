package catalog

import "github.com/buynary/backend/internal/domain"

// Seed returns the built-in demo catalog, used when no catalog file is
// configured. Prices are in AED. Product order within a store matters to
// matching tie-breaks, so entries are kept in a deliberate order.
func Seed() *Memory {
	stores := []domain.Store{
		{ID: "carrefour", Name: "Carrefour", Logo: "🛒", AverageDeliveryTime: 45, DeliveryFee: 5.00, MinimumOrder: 50.00},
		{ID: "lulu", Name: "Lulu Hypermarket", Logo: "🏬", AverageDeliveryTime: 60, DeliveryFee: 7.00, MinimumOrder: 75.00},
		{ID: "spinneys", Name: "Spinneys", Logo: "🛍️", AverageDeliveryTime: 35, DeliveryFee: 10.00, MinimumOrder: 100.00},
		{ID: "noon", Name: "Noon Minutes", Logo: "⚡", AverageDeliveryTime: 20, DeliveryFee: 12.00, MinimumOrder: 30.00},
	}

	products := []domain.Product{
		// Carrefour
		{ID: "cf-milk", StoreID: "carrefour", Name: "Milk", Category: "Dairy", Brand: "Al Rawabi", Price: 6.50, Unit: "1L", InStock: true},
		{ID: "cf-bread", StoreID: "carrefour", Name: "White Bread", Category: "Bakery", Price: 4.25, Unit: "600g", InStock: true},
		{ID: "cf-eggs", StoreID: "carrefour", Name: "Eggs", Category: "Dairy", Brand: "Al Jazira", Price: 12.00, Unit: "12 pack", InStock: true},
		{ID: "cf-chicken", StoreID: "carrefour", Name: "Fresh Chicken", Category: "Meat", Price: 18.50, Unit: "1kg", InStock: true},
		{ID: "cf-rice", StoreID: "carrefour", Name: "Basmati Rice", Category: "Grains", Brand: "Tilda", Price: 42.00, Unit: "5kg", InStock: true},
		{ID: "cf-tomatoes", StoreID: "carrefour", Name: "Tomatoes", Category: "Produce", Price: 5.75, Unit: "1kg", InStock: true},
		{ID: "cf-water", StoreID: "carrefour", Name: "Water Bottles", Category: "Beverages", Brand: "Masafi", Price: 9.00, Unit: "6 pack", InStock: true},
		{ID: "cf-yogurt", StoreID: "carrefour", Name: "Greek Yogurt", Category: "Dairy", Price: 8.75, Unit: "500g", InStock: true},
		{ID: "cf-bananas", StoreID: "carrefour", Name: "Bananas", Category: "Produce", Price: 6.00, Unit: "1kg", InStock: false},
		{ID: "cf-sugar", StoreID: "carrefour", Name: "White Sugar", Category: "Pantry", Price: 7.25, Unit: "2kg", InStock: true},

		// Lulu Hypermarket
		{ID: "ll-milk", StoreID: "lulu", Name: "Fresh Milk", Category: "Dairy", Brand: "Almarai", Price: 6.00, Unit: "1L", InStock: true},
		{ID: "ll-bread", StoreID: "lulu", Name: "Bread", Category: "Bakery", Price: 3.75, Unit: "600g", InStock: true},
		{ID: "ll-eggs", StoreID: "lulu", Name: "White Eggs", Category: "Dairy", Price: 11.00, Unit: "12 pack", InStock: true},
		{ID: "ll-chicken", StoreID: "lulu", Name: "Chicken Breast", Category: "Meat", Price: 21.00, Unit: "500g", InStock: true},
		{ID: "ll-rice", StoreID: "lulu", Name: "Basmati Rice", Category: "Grains", Brand: "Daawat", Price: 38.50, Unit: "5kg", InStock: true},
		{ID: "ll-tomatoes", StoreID: "lulu", Name: "Fresh Tomatoes", Category: "Produce", Price: 4.95, Unit: "500g", InStock: true},
		{ID: "ll-water", StoreID: "lulu", Name: "Water", Category: "Beverages", Brand: "Al Ain", Price: 8.00, Unit: "6 pack", InStock: true},
		{ID: "ll-yogurt", StoreID: "lulu", Name: "Yogurt", Category: "Dairy", Price: 7.50, Unit: "400g", InStock: true},
		{ID: "ll-bananas", StoreID: "lulu", Name: "Bananas", Category: "Produce", Price: 5.50, Unit: "1kg", InStock: true},
		{ID: "ll-flour", StoreID: "lulu", Name: "All Purpose Flour", Category: "Pantry", Price: 9.75, Unit: "2kg", InStock: true},

		// Spinneys
		{ID: "sp-milk", StoreID: "spinneys", Name: "Organic Milk", Category: "Dairy", Brand: "Koita", Price: 11.50, Unit: "1L", InStock: true},
		{ID: "sp-bread", StoreID: "spinneys", Name: "Sourdough Bread", Category: "Bakery", Price: 14.00, Unit: "500g", InStock: true},
		{ID: "sp-eggs", StoreID: "spinneys", Name: "Free Range Eggs", Category: "Dairy", Price: 19.50, Unit: "12 pack", InStock: true},
		{ID: "sp-chicken", StoreID: "spinneys", Name: "Organic Chicken", Category: "Meat", Price: 32.00, Unit: "1kg", InStock: true},
		{ID: "sp-salmon", StoreID: "spinneys", Name: "Salmon Fillet", Category: "Seafood", Price: 45.00, Unit: "500g", InStock: true},
		{ID: "sp-tomatoes", StoreID: "spinneys", Name: "Cherry Tomatoes", Category: "Produce", Price: 9.25, Unit: "250g", InStock: true},
		{ID: "sp-water", StoreID: "spinneys", Name: "Sparkling Water", Category: "Beverages", Price: 15.00, Unit: "6 pack", InStock: false},
		{ID: "sp-yogurt", StoreID: "spinneys", Name: "Organic Yogurt", Category: "Dairy", Price: 13.50, Unit: "450g", InStock: true},
		{ID: "sp-apples", StoreID: "spinneys", Name: "Apples", Category: "Produce", Price: 12.00, Unit: "1kg", InStock: true},

		// Noon Minutes
		{ID: "nn-milk", StoreID: "noon", Name: "Milk", Category: "Dairy", Brand: "Almarai", Price: 7.00, Unit: "1L", InStock: true},
		{ID: "nn-bread", StoreID: "noon", Name: "Bread", Category: "Bakery", Price: 4.50, Unit: "600g", InStock: true},
		{ID: "nn-eggs", StoreID: "noon", Name: "Eggs", Category: "Dairy", Price: 13.50, Unit: "12 pack", InStock: true},
		{ID: "nn-chicken", StoreID: "noon", Name: "Chicken", Category: "Meat", Price: 20.00, Unit: "1kg", InStock: false},
		{ID: "nn-rice", StoreID: "noon", Name: "Rice", Category: "Grains", Price: 44.00, Unit: "5kg", InStock: true},
		{ID: "nn-water", StoreID: "noon", Name: "Water Bottles", Category: "Beverages", Price: 10.00, Unit: "6 pack", InStock: true},
		{ID: "nn-yogurt", StoreID: "noon", Name: "Yogurt", Category: "Dairy", Price: 9.00, Unit: "500g", InStock: true},
		{ID: "nn-bananas", StoreID: "noon", Name: "Bananas", Category: "Produce", Price: 6.75, Unit: "1kg", InStock: true},
		{ID: "nn-onions", StoreID: "noon", Name: "Onions", Category: "Produce", Price: 3.95, Unit: "1kg", InStock: true},
	}

	return NewMemory(stores, products)
}
