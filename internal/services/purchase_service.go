package services

import (
	"encoding/json"
	"log"
	"strings"
	"time"

	"github.com/ThidgesB/SportsApparel-API/internal/apperrors"
	"github.com/ThidgesB/SportsApparel-API/internal/models"
	"github.com/ThidgesB/SportsApparel-API/internal/repositories"
	"github.com/ThidgesB/SportsApparel-API/pkg/rabbitmq"
)

const expirationLayout = "01/06" // MM/yy

// PurchaseService orchestrates the checkout workflow: credit card checks,
// product availability checks, and persistence of the purchase aggregate.
type PurchaseService struct {
	purchaseRepo   repositories.PurchaseRepository
	productService *ProductService
	mqClient       *rabbitmq.Client
}

// NewPurchaseService creates a new PurchaseService.
func NewPurchaseService(purchaseRepo repositories.PurchaseRepository, productService *ProductService, mqClient *rabbitmq.Client) *PurchaseService {
	return &PurchaseService{
		purchaseRepo:   purchaseRepo,
		productService: productService,
		mqClient:       mqClient,
	}
}

// FindPurchasesByEmail retrieves all purchases made with the billing email.
func (s *PurchaseService) FindPurchasesByEmail(email string) ([]models.Purchase, error) {
	purchases, err := s.purchaseRepo.GetByBillingEmail(email)
	if err != nil {
		log.Printf("Error querying purchases by email: %v", err)
		return nil, apperrors.Persistence(err)
	}
	return purchases, nil
}

// SavePurchase validates and persists a purchase aggregate.
//
// Each line item's product is resolved from the catalog and attached to the
// item, replacing whatever partial product the caller supplied. Inactive
// products reject the purchase with structured detail and take priority over
// credit card errors; both checks run before anything is persisted. The
// purchase and its line items are then saved atomically.
func (s *PurchaseService) SavePurchase(purchase *models.Purchase) (*models.Purchase, error) {
	cardErrors := ValidateCreditCard(purchase.CreditCard)

	inactiveProducts := make([]map[string]interface{}, 0)
	for i := range purchase.Products {
		item := &purchase.Products[i]
		if item.Product == nil || item.Product.ID == "" {
			return nil, apperrors.Validation("Each line item must reference a product id.")
		}

		product, err := s.productService.GetProductByID(item.Product.ID)
		if err != nil {
			return nil, err
		}
		if product.Active == nil || !*product.Active {
			inactiveProducts = append(inactiveProducts, map[string]interface{}{
				"id":   product.ID,
				"name": product.Name,
			})
		}
		item.Product = product
	}

	if len(inactiveProducts) > 0 {
		return nil, apperrors.Unprocessable(
			"Some products are inactive and cannot be purchased.",
			map[string]interface{}{"inactiveProducts": inactiveProducts},
		)
	}

	if len(cardErrors) > 0 {
		return nil, apperrors.Validation(strings.Join(cardErrors, " "))
	}

	if err := s.purchaseRepo.Create(purchase); err != nil {
		log.Printf("Error creating purchase: %v", err)
		return nil, apperrors.Persistence(err)
	}

	s.publishPurchaseCreated(purchase)

	return purchase, nil
}

// publishPurchaseCreated emits a purchase.created event. Publishing is best
// effort: a broker failure is logged but never fails the purchase.
func (s *PurchaseService) publishPurchaseCreated(purchase *models.Purchase) {
	if s.mqClient == nil {
		return
	}

	event := map[string]interface{}{
		"purchaseID": purchase.ID,
		"email":      purchase.BillingAddress.Email,
		"items":      len(purchase.Products),
	}
	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("Failed to marshal purchase event: %v", err)
		return
	}
	if err := s.mqClient.Publish("purchase", "purchase.created", body); err != nil {
		log.Printf("Warning: Failed to publish purchase created event for purchase %s: %v", purchase.ID, err)
	}
}

// ValidateCreditCard checks the credit card supplied with a purchase and
// returns all violated-rule messages. A missing card yields a single message
// and no further field checks.
func ValidateCreditCard(card *models.CreditCard) []string {
	var validationErrors []string

	if card == nil {
		return []string{"Credit card information is missing."}
	}

	if card.CardNumber == nil || len(*card.CardNumber) != 16 {
		validationErrors = append(validationErrors, "Credit card number must have 16 digits.")
	}
	if card.CVV == nil || len(*card.CVV) != 3 {
		validationErrors = append(validationErrors, "CVV must have 3 digits.")
	}
	if card.Expiration == nil {
		validationErrors = append(validationErrors, "Expiration date is missing.")
	} else if expiration, err := time.Parse(expirationLayout, *card.Expiration); err != nil {
		validationErrors = append(validationErrors, "Expiration date must be in MM/yy format.")
	} else {
		year := expiration.Year()
		// Two-digit years always land in 2000-2099; time.Parse puts 69-99
		// in the previous century.
		if year < 2000 {
			year += 100
		}
		lastDayOfMonth := time.Date(year, expiration.Month()+1, 0, 0, 0, 0, 0, time.UTC)
		now := time.Now()
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		if lastDayOfMonth.Before(today) {
			validationErrors = append(validationErrors, "Credit card is expired.")
		}
	}
	if card.Cardholder == nil || *card.Cardholder == "" {
		validationErrors = append(validationErrors, "Cardholder name is missing.")
	}

	return validationErrors
}
