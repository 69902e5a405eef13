package handlers

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/ThidgesB/SportsApparel-API/internal/models"
	"github.com/ThidgesB/SportsApparel-API/internal/services"
)

// PurchaseHandler handles HTTP requests for purchases.
type PurchaseHandler struct {
	service  *services.PurchaseService
	validate *validator.Validate
}

// NewPurchaseHandler creates a new PurchaseHandler.
func NewPurchaseHandler(service *services.PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the purchase routes with the Fiber app.
func (h *PurchaseHandler) RegisterRoutes(router fiber.Router) {
	purchaseRoutes := router.Group("/purchases")
	purchaseRoutes.Post("/", h.HandleCreatePurchase)
	purchaseRoutes.Get("/", h.HandleMissingEmail)
	purchaseRoutes.Get("/:email", h.HandleGetPurchasesByEmail)
}

// HandleCreatePurchase validates and creates a new purchase.
func (h *PurchaseHandler) HandleCreatePurchase(c *fiber.Ctx) error {
	var purchase models.Purchase
	if err := c.BodyParser(&purchase); err != nil {
		log.Printf("Error parsing request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	// Purchases are retrieved by billing email, so a purchase without a
	// valid one would be unreachable afterwards.
	if err := h.validate.Struct(purchase.BillingAddress); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "A valid billing email is required.",
		})
	}

	savedPurchase, err := h.service.SavePurchase(&purchase)
	if err != nil {
		log.Printf("Error saving purchase: %v", err)
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(savedPurchase)
}

// HandleGetPurchasesByEmail retrieves all purchases made with the billing
// email.
func (h *PurchaseHandler) HandleGetPurchasesByEmail(c *fiber.Ctx) error {
	email := c.Params("email")
	if email == "" {
		return h.HandleMissingEmail(c)
	}

	purchases, err := h.service.FindPurchasesByEmail(email)
	if err != nil {
		log.Printf("Error getting purchases by email %s: %v", email, err)
		return respondError(c, err)
	}
	return c.JSON(purchases)
}

// HandleMissingEmail rejects purchase lookups without an email.
func (h *PurchaseHandler) HandleMissingEmail(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"message": "Email not specified.",
	})
}
