package usecase

import (
	"context"
	"log"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/buynary/backend/internal/domain"
)

// unitMagnitudePattern extracts the numeric magnitude from a product's
// free-text unit descriptor ("500g", "1.5kg", "6 pack")
var unitMagnitudePattern = regexp.MustCompile(`\d+(?:\.\d+)?`)

// ComparisonConfig holds configuration for the comparison service
type ComparisonConfig struct {
	EnableDebugLogging bool
}

// ComparisonService computes per-store totals for a grocery list against an
// immutable snapshot of stores and products. One comparison run is a pure
// pass over its inputs; ranking is a separate step (see sort.go).
type ComparisonService struct {
	enableDebugLogging bool
}

// NewComparisonService creates a comparison service with the given configuration
func NewComparisonService(config ComparisonConfig) *ComparisonService {
	return &ComparisonService{
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// Compare produces one ComparisonResult per store, in store input order.
// Stores with no matches are still included: absence of a match is data
// (the missing-items list), never an error. An empty grocery list yields a
// zeroed result per store.
func (s *ComparisonService) Compare(
	ctx context.Context,
	groceryList []domain.GroceryItem,
	stores []domain.Store,
	products []domain.Product,
) ([]domain.ComparisonResult, error) {
	results := make([]domain.ComparisonResult, 0, len(stores))

	for _, store := range stores {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		result := s.compareStore(store, groceryList, products)
		if s.enableDebugLogging {
			log.Printf("[COMPARE] %s: subtotal=%.2f total=%.2f found=%d missing=%d",
				store.Name, result.Subtotal, result.TotalPrice, result.ItemsFound, result.ItemsMissing)
		}
		results = append(results, result)
	}

	return results, nil
}

// compareStore aggregates the grocery list against a single store's in-stock
// products. Products referencing other stores are filtered out here, which
// is also what keeps products of absent stores from ever surfacing.
func (s *ComparisonService) compareStore(
	store domain.Store,
	groceryList []domain.GroceryItem,
	allProducts []domain.Product,
) domain.ComparisonResult {
	storeProducts := make([]domain.Product, 0, len(allProducts))
	for _, product := range allProducts {
		if product.StoreID == store.ID && product.InStock {
			storeProducts = append(storeProducts, product)
		}
	}

	var subtotal float64
	matched := make([]domain.MatchedLine, 0, len(groceryList))
	missing := make([]string, 0)

	for _, item := range groceryList {
		product := findBestMatch(item.Name, storeProducts)
		if product == nil {
			missing = append(missing, item.Name)
			continue
		}

		quantity := effectiveQuantity(item, *product)
		subtotal += product.Price * float64(quantity)
		matched = append(matched, domain.MatchedLine{
			RequestedItem: item.Name,
			Product:       *product,
			Quantity:      quantity,
		})
	}

	return domain.ComparisonResult{
		Store:           store,
		Subtotal:        subtotal,
		DeliveryFee:     store.DeliveryFee,
		TotalPrice:      subtotal + store.DeliveryFee,
		DeliveryTime:    store.AverageDeliveryTime,
		ItemsFound:      len(matched),
		ItemsMissing:    len(missing),
		MatchedProducts: matched,
		MissingItems:    missing,
	}
}

// findBestMatch resolves a requested item name against a store's products.
// An exact normalized-name match wins immediately; otherwise the first
// product in catalog order whose name contains the item name, or whose name
// the item name contains. Catalog iteration order is part of the contract:
// ties resolve to the first product seen.
func findBestMatch(itemName string, products []domain.Product) *domain.Product {
	normalized := strings.ToLower(strings.TrimSpace(itemName))

	for i := range products {
		if strings.ToLower(strings.TrimSpace(products[i].Name)) == normalized {
			return &products[i]
		}
	}

	for i := range products {
		name := strings.ToLower(strings.TrimSpace(products[i].Name))
		if strings.Contains(name, normalized) || strings.Contains(normalized, name) {
			return &products[i]
		}
	}

	return nil
}

// effectiveQuantity resolves the purchase count actually billed for a
// matched product. Piece requests bill their count unchanged. Weight
// requests are converted into the product's own denomination and rounded
// up: a fractional unit can never be purchased. A descriptor denominated in
// neither kg nor g falls back to the raw requested count with no conversion.
func effectiveQuantity(item domain.GroceryItem, product domain.Product) int {
	if !item.IsWeight() {
		return item.Count
	}

	unit := strings.ToLower(product.Unit)
	switch {
	case strings.Contains(unit, "kg"):
		magnitude := unitMagnitude(unit)
		if item.WeightUnit == domain.WeightKilograms {
			return int(math.Ceil(item.Weight / magnitude))
		}
		return int(math.Ceil(item.Weight / (magnitude * 1000)))

	case strings.Contains(unit, "g"):
		magnitude := unitMagnitude(unit)
		if item.WeightUnit == domain.WeightGrams {
			return int(math.Ceil(item.Weight / magnitude))
		}
		return int(math.Ceil(item.Weight * 1000 / magnitude))

	default:
		return item.Count
	}
}

// unitMagnitude parses the leading numeric magnitude of a unit descriptor.
// Descriptors without one ("pack", "bunch") and unparseable or zero
// magnitudes default to 1.
func unitMagnitude(unit string) float64 {
	m := unitMagnitudePattern.FindString(unit)
	if m == "" {
		return 1
	}
	magnitude, err := strconv.ParseFloat(m, 64)
	if err != nil || magnitude == 0 {
		return 1
	}
	return magnitude
}
