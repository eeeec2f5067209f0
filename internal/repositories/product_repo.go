package repositories

import (
	"errors"

	"restaurant/internal/models"
)

// ErrNotFound is returned by lookups that match no record.
var ErrNotFound = errors.New("record not found")

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	GetByName(name string) (*models.Product, error)
	Create(product *models.Product) error
}
