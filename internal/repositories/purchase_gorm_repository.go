package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ThidgesB/SportsApparel-API/internal/models"
)

// GORMPurchaseRepository is a GORM implementation of PurchaseRepository.
type GORMPurchaseRepository struct {
	db *gorm.DB
}

// NewGORMPurchaseRepository creates a new instance of GORMPurchaseRepository.
func NewGORMPurchaseRepository(db *gorm.DB) *GORMPurchaseRepository {
	return &GORMPurchaseRepository{
		db: db,
	}
}

// GetByBillingEmail retrieves all purchases made with the billing email,
// including their line items and the products they reference.
func (r *GORMPurchaseRepository) GetByBillingEmail(email string) ([]models.Purchase, error) {
	var purchases []models.Purchase
	err := r.db.Preload("Products.Product").
		Where("billing_email = ?", email).
		Find(&purchases).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query purchases by billing email: %w", err)
	}
	return purchases, nil
}

// Create persists the purchase and then each of its line items, all inside a
// single transaction so a failed line item rolls back the whole aggregate.
// Referenced products are not touched, only their ids are recorded.
func (r *GORMPurchaseRepository) Create(purchase *models.Purchase) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if purchase.ID == "" {
			purchase.ID = uuid.New().String()
		}
		if err := tx.Omit("Products").Create(purchase).Error; err != nil {
			return fmt.Errorf("failed to create purchase: %w", err)
		}

		for i := range purchase.Products {
			item := &purchase.Products[i]
			if item.ID == "" {
				item.ID = uuid.New().String()
			}
			item.PurchaseID = purchase.ID
			if item.Product != nil {
				item.ProductID = item.Product.ID
			}
			if err := tx.Omit("Product").Create(item).Error; err != nil {
				return fmt.Errorf("failed to create line item: %w", err)
			}
		}
		return nil
	})
}
