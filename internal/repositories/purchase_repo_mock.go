package repositories

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ThidgesB/SportsApparel-API/internal/models"
)

// MockPurchaseRepository is an in-memory implementation of PurchaseRepository.
type MockPurchaseRepository struct {
	purchases map[string]models.Purchase
	mu        sync.RWMutex
}

// NewMockPurchaseRepository creates a new instance of MockPurchaseRepository.
func NewMockPurchaseRepository() *MockPurchaseRepository {
	return &MockPurchaseRepository{
		purchases: make(map[string]models.Purchase),
	}
}

// GetByBillingEmail returns all purchases made with the billing email.
func (r *MockPurchaseRepository) GetByBillingEmail(email string) ([]models.Purchase, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	purchaseList := make([]models.Purchase, 0)
	for _, p := range r.purchases {
		if p.BillingAddress.Email == email {
			purchaseList = append(purchaseList, p)
		}
	}
	return purchaseList, nil
}

// Create stores the purchase with its line items.
func (r *MockPurchaseRepository) Create(purchase *models.Purchase) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if purchase.ID == "" {
		purchase.ID = uuid.New().String()
	}
	purchase.CreatedAt = time.Now()
	purchase.UpdatedAt = time.Now()
	for i := range purchase.Products {
		item := &purchase.Products[i]
		if item.ID == "" {
			item.ID = uuid.New().String()
		}
		item.PurchaseID = purchase.ID
		if item.Product != nil {
			item.ProductID = item.Product.ID
		}
	}
	r.purchases[purchase.ID] = *purchase
	return nil
}
