package handlers

import (
	"log"
	"net/url"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"restaurant/internal/apperrors"
	"restaurant/internal/models"
	"restaurant/internal/services"
)

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service  *services.ProductService
	validate *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the product routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Post("/", h.HandleCreateProduct)
	productRoutes.Get("/", h.HandleGetProducts)
	productRoutes.Get("/:name", h.HandleGetProductByName)
}

// HandleCreateProduct creates a new product and echoes it back, carrying the
// store-assigned ID.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		log.Printf("Error parsing product request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(product); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		log.Printf("Product validation failed: %v", validationErrors)
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"message": "Validation failed",
			"error":   validationErrors.Error(),
		})
	}

	if err := h.service.CreateProduct(&product); err != nil {
		log.Printf("Error creating product %s: %v", product.Name, err)
		switch apperrors.KindOf(err) {
		case apperrors.AlreadyExists, apperrors.ImageUnreachable:
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"message": err.Error(),
			})
		case apperrors.ImageFetchError:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": err.Error(),
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Could not create product",
				"error":   err.Error(),
			})
		}
	}

	return c.JSON(product)
}

// HandleGetProducts retrieves all products. An empty store yields 404 with
// the empty list as body.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	products, err := h.service.GetAllProducts()
	if err != nil {
		log.Printf("Error getting all products: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve products",
			"error":   err.Error(),
		})
	}
	if len(products) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(products)
	}
	return c.JSON(products)
}

// HandleGetProductByName retrieves a single product by its exact name.
func (h *ProductHandler) HandleGetProductByName(c *fiber.Ctx) error {
	name := c.Params("name")
	if unescaped, err := url.PathUnescape(name); err == nil {
		name = unescaped
	}

	product, err := h.service.GetProductByName(name)
	if err != nil {
		log.Printf("Error getting product by name %s: %v", name, err)
		if apperrors.KindOf(err) == apperrors.ProductNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve product",
			"error":   err.Error(),
		})
	}
	return c.JSON(product)
}
