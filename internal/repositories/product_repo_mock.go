package repositories

import (
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/ThidgesB/SportsApparel-API/internal/models"
)

// MockProductRepository is an in-memory implementation of ProductRepository.
type MockProductRepository struct {
	products map[string]models.Product
	mu       sync.RWMutex
}

// NewMockProductRepository creates a new instance of MockProductRepository.
func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{
		products: make(map[string]models.Product),
	}
}

func matches(filter models.ProductFilter, p models.Product) bool {
	match := func(want string, have *string) bool {
		return want == "" || (have != nil && *have == want)
	}
	if !match(filter.Name, p.Name) ||
		!match(filter.Demographic, p.Demographic) ||
		!match(filter.Category, p.Category) ||
		!match(filter.Type, p.Type) ||
		!match(filter.Brand, p.Brand) ||
		!match(filter.Material, p.Material) ||
		!match(filter.StyleNumber, p.StyleNumber) {
		return false
	}
	if filter.Active != nil && (p.Active == nil || *p.Active != *filter.Active) {
		return false
	}
	return true
}

// Find returns all products matching the filter.
func (r *MockProductRepository) Find(filter models.ProductFilter) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	productList := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		if matches(filter, p) {
			productList = append(productList, p)
		}
	}
	sort.Slice(productList, func(i, j int) bool { return productList[i].ID < productList[j].ID })
	return productList, nil
}

// GetByID returns a product by its ID, or (nil, nil) if it does not exist.
func (r *MockProductRepository) GetByID(id string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	return &product, nil
}

// Create adds a new product.
func (r *MockProductRepository) Create(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	r.products[product.ID] = *product
	return nil
}

// DistinctCategories returns the sorted set of category values in use.
func (r *MockProductRepository) DistinctCategories() ([]string, error) {
	return r.distinct(func(p models.Product) *string { return p.Category })
}

// DistinctTypes returns the sorted set of type values in use.
func (r *MockProductRepository) DistinctTypes() ([]string, error) {
	return r.distinct(func(p models.Product) *string { return p.Type })
}

func (r *MockProductRepository) distinct(column func(models.Product) *string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]struct{})
	values := make([]string, 0)
	for _, p := range r.products {
		v := column(p)
		if v == nil {
			continue
		}
		if _, ok := seen[*v]; ok {
			continue
		}
		seen[*v] = struct{}{}
		values = append(values, *v)
	}
	sort.Strings(values)
	return values, nil
}
