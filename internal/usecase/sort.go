package usecase

import (
	"sort"

	"github.com/buynary/backend/internal/domain"
)

// The sort functions rank an already-computed result set. Each returns a new
// ordering over the same result values and leaves the input untouched, so a
// sort-mode change in the UI is a cheap re-sort, never a re-comparison.

// SortResults applies the given sort mode to a result set
func SortResults(results []domain.ComparisonResult, mode domain.SortMode) ([]domain.ComparisonResult, error) {
	switch mode {
	case domain.SortModePrice:
		return SortByPrice(results), nil
	case domain.SortModeDelivery:
		return SortByDeliveryTime(results), nil
	case domain.SortModeAvailability:
		return SortByAvailability(results), nil
	default:
		return nil, domain.ErrUnknownSortMode
	}
}

// SortByPrice orders results by ascending total price
func SortByPrice(results []domain.ComparisonResult) []domain.ComparisonResult {
	sorted := copyResults(results)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].TotalPrice < sorted[j].TotalPrice
	})
	return sorted
}

// SortByDeliveryTime orders results by ascending delivery time
func SortByDeliveryTime(results []domain.ComparisonResult) []domain.ComparisonResult {
	sorted := copyResults(results)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].DeliveryTime < sorted[j].DeliveryTime
	})
	return sorted
}

// SortByAvailability orders results by descending items found, breaking
// ties by ascending total price.
func SortByAvailability(results []domain.ComparisonResult) []domain.ComparisonResult {
	sorted := copyResults(results)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].ItemsFound != sorted[j].ItemsFound {
			return sorted[i].ItemsFound > sorted[j].ItemsFound
		}
		return sorted[i].TotalPrice < sorted[j].TotalPrice
	})
	return sorted
}

func copyResults(results []domain.ComparisonResult) []domain.ComparisonResult {
	sorted := make([]domain.ComparisonResult, len(results))
	copy(sorted, results)
	return sorted
}
