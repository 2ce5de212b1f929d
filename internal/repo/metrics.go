package repo

import (
	"github.com/rogerio-castellano/inventory-cli/internal/models"
	"github.com/shopspring/decimal"
)

// Summary aggregates the inventory for the dashboard.
type Summary struct {
	TotalProducts   int    `json:"total_products"`
	TotalUnits      int    `json:"total_units"`
	InventoryValue  string `json:"inventory_value"`
	OutOfStockCount int    `json:"out_of_stock_count"`
	Capacity        int    `json:"capacity"`
}

// Summarize computes a Summary over products. The inventory value is the sum
// of quantity times price, rendered with two decimals.
func Summarize(products []models.Product, capacity int) Summary {
	s := Summary{TotalProducts: len(products), Capacity: capacity}
	value := decimal.Zero
	for _, p := range products {
		s.TotalUnits += p.Quantity
		if p.Quantity == 0 {
			s.OutOfStockCount++
		}
		value = value.Add(decimal.NewFromFloat(p.Price).Mul(decimal.NewFromInt(int64(p.Quantity))))
	}
	s.InventoryValue = value.StringFixed(2)
	return s
}

// Summary implements ProductRepository.
func (r *FileProductRepository) Summary() Summary {
	r.mu.Lock()
	defer r.mu.Unlock()

	return Summarize(r.products, r.capacity)
}
