package repo

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/rogerio-castellano/inventory-cli/internal/models"
)

const (
	// DefaultCapacity is the number of products an inventory holds unless configured otherwise.
	DefaultCapacity = 100
	// DefaultMaxNameLength is the longest name, in characters, accepted from the backing file.
	DefaultMaxNameLength = 49
)

// FileProductRepository keeps the inventory in memory and mirrors it to a
// flat text file after every mutation.
type FileProductRepository struct {
	mu            sync.Mutex
	path          string
	capacity      int
	maxNameLength int
	products      []models.Product
	logger        *slog.Logger
}

// Option configures a FileProductRepository.
type Option func(*FileProductRepository)

// WithCapacity sets the maximum number of products.
func WithCapacity(n int) Option {
	return func(r *FileProductRepository) {
		if n > 0 {
			r.capacity = n
		}
	}
}

// WithMaxNameLength sets the longest product name Load accepts.
func WithMaxNameLength(n int) Option {
	return func(r *FileProductRepository) {
		if n > 0 {
			r.maxNameLength = n
		}
	}
}

// WithLogger sets the logger used for store events.
func WithLogger(l *slog.Logger) Option {
	return func(r *FileProductRepository) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewFileProductRepository creates an empty repository backed by path.
// Call Load to read the existing file.
func NewFileProductRepository(path string, opts ...Option) *FileProductRepository {
	r := &FileProductRepository{
		path:          path,
		capacity:      DefaultCapacity,
		maxNameLength: DefaultMaxNameLength,
		products:      []models.Product{},
		logger:        slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Path returns the backing file path.
func (r *FileProductRepository) Path() string {
	return r.path
}

// Capacity returns the maximum number of products.
func (r *FileProductRepository) Capacity() int {
	return r.capacity
}

// Load replaces the in-memory inventory with the content of the backing file.
// A missing file yields an empty inventory. On any error memory is left as it was.
func (r *FileProductRepository) Load() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	f, err := os.Open(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			r.products = []models.Product{}
			r.logger.Info("inventory file not found, starting empty", "path", r.path)
			return nil
		}
		return &PersistenceError{Op: "open", Path: r.path, Err: err}
	}
	defer f.Close()

	products, err := decodeProducts(f, r.maxNameLength)
	if err != nil {
		if errors.Is(err, ErrMalformedRecord) {
			return fmt.Errorf("load %s: %w", r.path, err)
		}
		return &PersistenceError{Op: "read", Path: r.path, Err: err}
	}
	if len(products) > r.capacity {
		return fmt.Errorf("load %s: %w: %d records, capacity %d", r.path, ErrCapacityExceeded, len(products), r.capacity)
	}

	r.products = products
	r.logger.Info("inventory loaded", "path", r.path, "products", len(products))
	return nil
}

// Save rewrites the backing file from the in-memory inventory.
func (r *FileProductRepository) Save() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.write(r.products)
}

// Add appends a product. Values are expected to be validated by the caller.
func (r *FileProductRepository) Add(name string, quantity int, price float64) (models.ListedProduct, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.products) >= r.capacity {
		return models.ListedProduct{}, ErrCapacityExceeded
	}

	p := models.Product{Name: name, Quantity: quantity, Price: roundPrice(price)}
	next := make([]models.Product, 0, len(r.products)+1)
	next = append(next, r.products...)
	next = append(next, p)

	if err := r.commit(next); err != nil {
		return models.ListedProduct{}, err
	}
	r.logger.Debug("product added", "name", name)
	return models.ListedProduct{Index: len(next) - 1, Product: p}, nil
}

// FindByName returns the first product whose name matches exactly.
func (r *FileProductRepository) FindByName(name string) (models.ListedProduct, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(name)
	if i < 0 {
		return models.ListedProduct{}, ErrProductNotFound
	}
	return models.ListedProduct{Index: i, Product: r.products[i]}, nil
}

// EditByName replaces every field of the first product named name.
func (r *FileProductRepository) EditByName(name string, updated models.Product) (models.ListedProduct, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(name)
	if i < 0 {
		return models.ListedProduct{}, ErrProductNotFound
	}
	return r.replace(i, updated)
}

// DeleteByName removes the first product named name, keeping the order of the rest.
func (r *FileProductRepository) DeleteByName(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(name)
	if i < 0 {
		return ErrProductNotFound
	}
	return r.remove(i)
}

// EditAt replaces every field of the product at index.
func (r *FileProductRepository) EditAt(index int, updated models.Product) (models.ListedProduct, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if index < 0 || index >= len(r.products) {
		return models.ListedProduct{}, ErrIndexOutOfRange
	}
	return r.replace(index, updated)
}

// DeleteAt removes the product at index, keeping the order of the rest.
func (r *FileProductRepository) DeleteAt(index int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if index < 0 || index >= len(r.products) {
		return ErrIndexOutOfRange
	}
	return r.remove(index)
}

// List returns the inventory in its current order with each product's position.
func (r *FileProductRepository) List() []models.ListedProduct {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := make([]models.ListedProduct, len(r.products))
	for i, p := range r.products {
		list[i] = models.ListedProduct{Index: i, Product: p}
	}
	return list
}

func (r *FileProductRepository) indexOf(name string) int {
	for i, p := range r.products {
		if p.Name == name {
			return i
		}
	}
	return -1
}

func (r *FileProductRepository) replace(i int, updated models.Product) (models.ListedProduct, error) {
	updated.Price = roundPrice(updated.Price)
	next := make([]models.Product, len(r.products))
	copy(next, r.products)
	next[i] = updated

	if err := r.commit(next); err != nil {
		return models.ListedProduct{}, err
	}
	r.logger.Debug("product edited", "index", i, "name", updated.Name)
	return models.ListedProduct{Index: i, Product: updated}, nil
}

func (r *FileProductRepository) remove(i int) error {
	removed := r.products[i].Name
	next := make([]models.Product, 0, len(r.products)-1)
	next = append(next, r.products[:i]...)
	next = append(next, r.products[i+1:]...)

	if err := r.commit(next); err != nil {
		return err
	}
	r.logger.Debug("product deleted", "index", i, "name", removed)
	return nil
}

// commit persists next and only then makes it the in-memory inventory.
func (r *FileProductRepository) commit(next []models.Product) error {
	if err := r.write(next); err != nil {
		return err
	}
	r.products = next
	return nil
}

// write replaces the backing file with products. The data goes to a temporary
// file in the same directory which is renamed over the target once synced.
func (r *FileProductRepository) write(products []models.Product) (err error) {
	unlock, err := lockFile(r.path + ".lock")
	if err != nil {
		return r.persistenceFailure("lock", err)
	}
	defer unlock()

	tmp, err := os.CreateTemp(filepath.Dir(r.path), filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return r.persistenceFailure("create", err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err = encodeProducts(tmp, products); err != nil {
		return r.persistenceFailure("write", err)
	}
	if err = tmp.Chmod(0o644); err != nil {
		return r.persistenceFailure("chmod", err)
	}
	if err = tmp.Sync(); err != nil {
		return r.persistenceFailure("sync", err)
	}
	if err = tmp.Close(); err != nil {
		return r.persistenceFailure("close", err)
	}
	if err = os.Rename(tmp.Name(), r.path); err != nil {
		return r.persistenceFailure("rename", err)
	}
	return nil
}

func (r *FileProductRepository) persistenceFailure(op string, err error) error {
	r.logger.Error("inventory save failed", "op", op, "path", r.path, "error", err)
	return &PersistenceError{Op: op, Path: r.path, Err: err}
}

var _ ProductRepository = (*FileProductRepository)(nil)
