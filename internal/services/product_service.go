package services

import (
	"log"
	"strings"

	"github.com/ThidgesB/SportsApparel-API/internal/apperrors"
	"github.com/ThidgesB/SportsApparel-API/internal/models"
	"github.com/ThidgesB/SportsApparel-API/internal/repositories"
)

// ProductService handles business logic related to the product catalog.
type ProductService struct {
	repo repositories.ProductRepository
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// GetProducts retrieves all products matching the filter. Zero-valued filter
// fields act as wildcards, so an empty filter returns the whole catalog.
func (s *ProductService) GetProducts(filter models.ProductFilter) ([]models.Product, error) {
	products, err := s.repo.Find(filter)
	if err != nil {
		log.Printf("Error querying products: %v", err)
		return nil, apperrors.Persistence(err)
	}
	return products, nil
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id string) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		log.Printf("Error getting product by ID %s: %v", id, err)
		return nil, apperrors.Persistence(err)
	}
	if product == nil {
		log.Printf("Get by id failed, it does not exist in the database: %s", id)
		return nil, apperrors.NotFound("Get by id failed, it does not exist in the database: " + id)
	}
	return product, nil
}

// GetUniqueCategories returns the distinct category values across all stored
// products.
func (s *ProductService) GetUniqueCategories() ([]string, error) {
	categories, err := s.repo.DistinctCategories()
	if err != nil {
		log.Printf("Error querying distinct categories: %v", err)
		return nil, apperrors.Persistence(err)
	}
	return categories, nil
}

// GetUniqueTypes returns the distinct type values across all stored products.
func (s *ProductService) GetUniqueTypes() ([]string, error) {
	types, err := s.repo.DistinctTypes()
	if err != nil {
		log.Printf("Error querying distinct types: %v", err)
		return nil, apperrors.Persistence(err)
	}
	return types, nil
}

// CreateProduct validates the product and persists it.
func (s *ProductService) CreateProduct(product *models.Product) (*models.Product, error) {
	validationErrors := ValidateProduct(product)
	if len(validationErrors) > 0 {
		return nil, apperrors.Validation(strings.Join(validationErrors, ", "))
	}

	if err := s.repo.Create(product); err != nil {
		log.Printf("Error creating product: %v", err)
		return nil, apperrors.Persistence(err)
	}
	return product, nil
}
