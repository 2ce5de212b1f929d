package repo

import "github.com/rogerio-castellano/inventory-cli/internal/models"

// ProductRepository defines the inventory operations available to the CLI and HTTP callers.
// Every mutating call either persists before returning or leaves the inventory unchanged.
type ProductRepository interface {
	Load() error
	Save() error
	Add(name string, quantity int, price float64) (models.ListedProduct, error)
	FindByName(name string) (models.ListedProduct, error)
	EditByName(name string, updated models.Product) (models.ListedProduct, error)
	DeleteByName(name string) error
	EditAt(index int, updated models.Product) (models.ListedProduct, error)
	DeleteAt(index int) error
	List() []models.ListedProduct
	Summary() Summary
	Capacity() int
}
