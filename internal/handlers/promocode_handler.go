package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/ThidgesB/SportsApparel-API/internal/models"
	"github.com/ThidgesB/SportsApparel-API/internal/services"
)

// PromocodeHandler handles HTTP requests for promotion codes.
type PromocodeHandler struct {
	service *services.PromocodeService
}

// NewPromocodeHandler creates a new PromocodeHandler.
func NewPromocodeHandler(service *services.PromocodeService) *PromocodeHandler {
	return &PromocodeHandler{
		service: service,
	}
}

// RegisterRoutes registers the promocode routes with the Fiber app.
func (h *PromocodeHandler) RegisterRoutes(router fiber.Router) {
	promocodeRoutes := router.Group("/promocodes")
	promocodeRoutes.Post("/", h.HandleCreatePromocode)
}

// HandleCreatePromocode validates and creates a new promocode.
func (h *PromocodeHandler) HandleCreatePromocode(c *fiber.Ctx) error {
	var promocode models.Promocode
	if err := c.BodyParser(&promocode); err != nil {
		log.Printf("Error parsing request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	savedPromocode, err := h.service.SavePromoCode(&promocode)
	if err != nil {
		log.Printf("Error saving promocode: %v", err)
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(savedPromocode)
}
