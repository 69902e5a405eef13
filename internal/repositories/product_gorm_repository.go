package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ThidgesB/SportsApparel-API/internal/models"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// conditions translates the filter into a column/value map, skipping fields
// left at their zero value so they act as wildcards.
func conditions(filter models.ProductFilter) map[string]interface{} {
	where := map[string]interface{}{}
	if filter.Name != "" {
		where["name"] = filter.Name
	}
	if filter.Demographic != "" {
		where["demographic"] = filter.Demographic
	}
	if filter.Category != "" {
		where["category"] = filter.Category
	}
	if filter.Type != "" {
		where["type"] = filter.Type
	}
	if filter.Brand != "" {
		where["brand"] = filter.Brand
	}
	if filter.Material != "" {
		where["material"] = filter.Material
	}
	if filter.StyleNumber != "" {
		where["style_number"] = filter.StyleNumber
	}
	if filter.Active != nil {
		where["active"] = *filter.Active
	}
	return where
}

// Find retrieves all products matching the filter from the database.
func (r *GORMProductRepository) Find(filter models.ProductFilter) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Where(conditions(filter)).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	return products, nil
}

// GetByID retrieves a single product by its ID from the database.
func (r *GORMProductRepository) GetByID(id string) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get product by ID %s: %w", id, err)
	}
	return &product, nil
}

// Create creates a new product in the database.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if err := r.db.Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// DistinctCategories returns every category value currently in use.
func (r *GORMProductRepository) DistinctCategories() ([]string, error) {
	var categories []string
	if err := r.db.Model(&models.Product{}).Distinct().Order("category").Pluck("category", &categories).Error; err != nil {
		return nil, fmt.Errorf("failed to query distinct categories: %w", err)
	}
	return categories, nil
}

// DistinctTypes returns every type value currently in use.
func (r *GORMProductRepository) DistinctTypes() ([]string, error) {
	var types []string
	if err := r.db.Model(&models.Product{}).Distinct().Order("type").Pluck("type", &types).Error; err != nil {
		return nil, fmt.Errorf("failed to query distinct types: %w", err)
	}
	return types, nil
}
