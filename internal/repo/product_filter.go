package repo

import (
	"strings"

	"github.com/rogerio-castellano/inventory-cli/internal/models"
)

// ProductFilter narrows a listing. Nil bounds are ignored.
type ProductFilter struct {
	Name     string
	MinPrice *float64
	MaxPrice *float64
	MinQty   *int
	MaxQty   *int
	Offset   *int
	Limit    *int
}

func matchesFilter(p models.Product, pf ProductFilter) bool {
	if pf.Name != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(pf.Name)) {
		return false
	}
	if pf.MinPrice != nil && p.Price < *pf.MinPrice {
		return false
	}
	if pf.MaxPrice != nil && p.Price > *pf.MaxPrice {
		return false
	}
	if pf.MinQty != nil && p.Quantity < *pf.MinQty {
		return false
	}
	if pf.MaxQty != nil && p.Quantity > *pf.MaxQty {
		return false
	}
	return true
}

// Filter returns the page of products matching pf together with the total
// number of matches. Indexes are kept from the unfiltered listing.
func Filter(products []models.ListedProduct, pf ProductFilter) ([]models.ListedProduct, int) {
	filtered := []models.ListedProduct{}
	for _, p := range products {
		if matchesFilter(p.Product, pf) {
			filtered = append(filtered, p)
		}
	}

	start := 0
	if pf.Offset != nil {
		start = clamp(*pf.Offset, 0, len(filtered))
	}

	end := len(filtered)
	if pf.Limit != nil && *pf.Limit > 0 {
		end = start + min(*pf.Limit, len(filtered)-start)
	}

	return filtered[start:end], len(filtered)
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
