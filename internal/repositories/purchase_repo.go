package repositories

import (
	"github.com/ThidgesB/SportsApparel-API/internal/models"
)

// PurchaseRepository defines the interface for purchase data access.
type PurchaseRepository interface {
	GetByBillingEmail(email string) ([]models.Purchase, error)
	// Create persists the purchase and all of its line items atomically.
	Create(purchase *models.Purchase) error
}
