package repositories

import (
	"restaurant/internal/models"
)

// OrderRepository defines the interface for order data access.
// Orders are never updated or deleted once created.
type OrderRepository interface {
	GetAll() ([]models.Order, error)
	GetByID(id string) (*models.Order, error)
	Create(order *models.Order) error
}
