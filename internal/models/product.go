package models

// Product represents a product entity in the inventory.
type Product struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// ListedProduct is a product annotated with its current position in the inventory.
// Positions are derived on every listing and shift after a delete.
type ListedProduct struct {
	Index int `json:"index"`
	Product
}
