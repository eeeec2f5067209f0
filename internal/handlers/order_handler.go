package handlers

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"restaurant/internal/apperrors"
	"restaurant/internal/models"
	"restaurant/internal/services"
)

// OrderHandler handles HTTP requests for orders.
type OrderHandler struct {
	service  *services.OrderService
	validate *validator.Validate
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the order routes with the Fiber app.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	orderRoutes := router.Group("/orders")
	orderRoutes.Post("/", h.HandleCreateOrder)
	orderRoutes.Get("/", h.HandleGetOrders)
	router.Get("/orders-from-last-day", h.HandleGetOrdersFromLastDay)
}

// HandleCreateOrder creates a new order and echoes it back, carrying the
// server-computed price and date. Only client-supplied fields are validated
// here; price and date are overwritten by the service.
func (h *OrderHandler) HandleCreateOrder(c *fiber.Ctx) error {
	var order models.Order
	if err := c.BodyParser(&order); err != nil {
		log.Printf("Error parsing order request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(order); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		log.Printf("Order validation failed: %v", validationErrors)
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"message": "Validation failed",
			"error":   validationErrors.Error(),
		})
	}

	if err := h.service.CreateOrder(&order); err != nil {
		log.Printf("Error creating order: %v", err)
		switch apperrors.KindOf(err) {
		case apperrors.EmptyOrder, apperrors.BelowMinimum, apperrors.ProductNotFound:
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"message": err.Error(),
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Could not create order",
				"error":   err.Error(),
			})
		}
	}

	return c.JSON(order)
}

// HandleGetOrders retrieves all orders. An empty store yields 404 with the
// empty list as body.
func (h *OrderHandler) HandleGetOrders(c *fiber.Ctx) error {
	orders, err := h.service.GetAllOrders()
	if err != nil {
		log.Printf("Error getting all orders: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve orders",
			"error":   err.Error(),
		})
	}
	if len(orders) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(orders)
	}
	return c.JSON(orders)
}

// HandleGetOrdersFromLastDay retrieves the orders created within the trailing
// 24-hour window.
func (h *OrderHandler) HandleGetOrdersFromLastDay(c *fiber.Ctx) error {
	orders, err := h.service.GetAllOrdersFromLastDay()
	if err != nil {
		log.Printf("Error getting orders from the last day: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve orders",
			"error":   err.Error(),
		})
	}
	if len(orders) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(orders)
	}
	return c.JSON(orders)
}
