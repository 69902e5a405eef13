package repositories

import (
	"github.com/ThidgesB/SportsApparel-API/internal/models"
)

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	// Find returns all products matching the filter; zero-valued filter
	// fields are wildcards.
	Find(filter models.ProductFilter) ([]models.Product, error)
	// GetByID returns (nil, nil) when no product with the id exists.
	GetByID(id string) (*models.Product, error)
	Create(product *models.Product) error
	DistinctCategories() ([]string, error)
	DistinctTypes() ([]string, error)
}
