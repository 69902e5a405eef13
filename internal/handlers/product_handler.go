package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/ThidgesB/SportsApparel-API/internal/models"
	"github.com/ThidgesB/SportsApparel-API/internal/services"
)

// ProductHandler handles HTTP requests for the product catalog.
type ProductHandler struct {
	service *services.ProductService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service: service,
	}
}

// RegisterRoutes registers the product routes with the Fiber app.
// The fixed paths are registered before the :id parameter so that
// /products/categories is not captured as an id.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleGetProducts)
	productRoutes.Get("/categories", h.HandleGetUniqueCategories)
	productRoutes.Get("/types", h.HandleGetUniqueTypes)
	productRoutes.Get("/:id", h.HandleGetProductByID)
	productRoutes.Post("/", h.HandleCreateProduct)
}

// HandleGetProducts retrieves products matching the query parameters;
// without parameters it returns the whole catalog.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	var filter models.ProductFilter
	if err := c.QueryParser(&filter); err != nil {
		log.Printf("Error parsing product filter: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid query parameters",
		})
	}

	products, err := h.service.GetProducts(filter)
	if err != nil {
		log.Printf("Error getting products: %v", err)
		return respondError(c, err)
	}
	return c.JSON(products)
}

// HandleGetProductByID retrieves a single product by its ID.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	productID := c.Params("id")
	product, err := h.service.GetProductByID(productID)
	if err != nil {
		log.Printf("Error getting product by ID %s: %v", productID, err)
		return respondError(c, err)
	}
	return c.JSON(product)
}

// HandleCreateProduct validates and creates a new product.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		log.Printf("Error parsing request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	createdProduct, err := h.service.CreateProduct(&product)
	if err != nil {
		log.Printf("Error creating product: %v", err)
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(createdProduct)
}

// HandleGetUniqueCategories returns the distinct category values in use.
func (h *ProductHandler) HandleGetUniqueCategories(c *fiber.Ctx) error {
	categories, err := h.service.GetUniqueCategories()
	if err != nil {
		log.Printf("Error getting unique categories: %v", err)
		return respondError(c, err)
	}
	return c.JSON(categories)
}

// HandleGetUniqueTypes returns the distinct type values in use.
func (h *ProductHandler) HandleGetUniqueTypes(c *fiber.Ctx) error {
	types, err := h.service.GetUniqueTypes()
	if err != nil {
		log.Printf("Error getting unique types: %v", err)
		return respondError(c, err)
	}
	return c.JSON(types)
}
