package domain

// MatchedLine pairs one requested grocery item with the store product it
// resolved to and the purchase quantity actually billed.
type MatchedLine struct {
	RequestedItem string  `json:"requestedItem"`
	Product       Product `json:"product"`
	Quantity      int     `json:"quantity"` // effective quantity after unit conversion
}

// ComparisonResult is the outcome of one comparison run for a single store.
// Results are never mutated after creation; re-sorting produces a new
// ordering over the same values.
type ComparisonResult struct {
	Store           Store         `json:"store"`
	Subtotal        float64       `json:"subtotal"`
	DeliveryFee     float64       `json:"deliveryFee"`
	TotalPrice      float64       `json:"totalPrice"`
	DeliveryTime    int           `json:"deliveryTime"`
	ItemsFound      int           `json:"itemsFound"`
	ItemsMissing    int           `json:"itemsMissing"`
	MatchedProducts []MatchedLine `json:"matchedProducts"`
	MissingItems    []string      `json:"missingItems"`
}

// SortMode selects the ranking criterion for comparison results
type SortMode string

const (
	SortModePrice        SortMode = "price"
	SortModeDelivery     SortMode = "delivery"
	SortModeAvailability SortMode = "availability"
)
