package domain

// RequestKind discriminates the two grocery request variants
type RequestKind string

const (
	// RequestPieces is a discrete piece-count request ("3 apples")
	RequestPieces RequestKind = "pieces"
	// RequestWeight is a weight request with an explicit unit ("2 kg chicken")
	RequestWeight RequestKind = "weight"
)

// WeightUnit is the unit a weight request is denominated in
type WeightUnit string

const (
	WeightKilograms WeightUnit = "kg"
	WeightGrams     WeightUnit = "g"
)

// GroceryItem is one entry of a shopper's grocery list, not yet matched to
// any product. Kind tells which variant is active: a discrete piece count,
// or a weight amount with its unit. Count stays at 1 for weight requests.
type GroceryItem struct {
	Name       string      `json:"name"`
	Kind       RequestKind `json:"kind"`
	Count      int         `json:"count,omitempty"`
	Weight     float64     `json:"weight,omitempty"`
	WeightUnit WeightUnit  `json:"weightUnit,omitempty"`
}

// NewPieceItem creates a piece-count request. Counts below 1 default to 1.
func NewPieceItem(name string, count int) GroceryItem {
	if count < 1 {
		count = 1
	}
	return GroceryItem{
		Name:  name,
		Kind:  RequestPieces,
		Count: count,
	}
}

// NewWeightItem creates a weight request in the given unit. A non-positive
// weight or an unknown unit cannot form a valid weight request and degrades
// to a single-piece request instead.
func NewWeightItem(name string, weight float64, unit WeightUnit) GroceryItem {
	if weight <= 0 || (unit != WeightKilograms && unit != WeightGrams) {
		return NewPieceItem(name, 1)
	}
	return GroceryItem{
		Name:       name,
		Kind:       RequestWeight,
		Count:      1,
		Weight:     weight,
		WeightUnit: unit,
	}
}

// IsWeight reports whether the weight variant is active
func (g GroceryItem) IsWeight() bool {
	return g.Kind == RequestWeight
}

// Normalized returns a copy with the variant invariant restored for items
// built from raw client JSON: an unset kind becomes a piece request, piece
// counts below 1 default to 1, and a weight request with a non-positive
// weight or unknown unit degrades to a single-piece request.
func (g GroceryItem) Normalized() GroceryItem {
	if g.Kind == RequestWeight {
		return NewWeightItem(g.Name, g.Weight, g.WeightUnit)
	}
	return NewPieceItem(g.Name, g.Count)
}
