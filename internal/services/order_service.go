package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"restaurant/internal/apperrors"
	"restaurant/internal/models"
	"restaurant/internal/repositories"
)

const (
	// minimumOrderAmount is the threshold below which an order is rejected.
	minimumOrderAmount = 60

	// lastDay is the trailing window used by GetAllOrdersFromLastDay.
	lastDay = 24 * time.Hour
)

// OrderEventPublisher publishes order creation events. The order service
// tolerates a nil publisher and a failing publish equally: the order is
// already persisted by the time the event goes out.
type OrderEventPublisher interface {
	PublishOrderCreated(body []byte) error
}

// OrderService handles business logic related to orders.
type OrderService struct {
	orderRepo   repositories.OrderRepository
	productRepo repositories.ProductRepository
	publisher   OrderEventPublisher
}

// NewOrderService creates a new OrderService. publisher may be nil when no
// message broker is configured.
func NewOrderService(orderRepo repositories.OrderRepository, productRepo repositories.ProductRepository, publisher OrderEventPublisher) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		publisher:   publisher,
	}
}

// CreateOrder validates and persists a new order. The order's price is
// computed from current product prices and its date is set to the server
// time; any client-supplied values for those fields are overwritten. On
// failure nothing is written.
func (s *OrderService) CreateOrder(order *models.Order) error {
	if len(order.ProductsOrdered) == 0 {
		log.Println("Rejecting order: no products ordered")
		return apperrors.NewEmptyOrder()
	}

	price, err := s.OrderPrice(order)
	if err != nil {
		return err
	}
	order.Price = price

	if order.Price < minimumOrderAmount {
		log.Printf("Rejecting order: price %d is under the minimum order amount %d", order.Price, minimumOrderAmount)
		return apperrors.NewBelowMinimum(minimumOrderAmount)
	}

	order.Date = time.Now()
	if err := s.orderRepo.Create(order); err != nil {
		return fmt.Errorf("failed to create order in repository: %w", err)
	}

	s.publishOrderCreated(order)
	return nil
}

// GetAllOrders retrieves all orders. An empty store yields an empty slice,
// not an error.
func (s *OrderService) GetAllOrders() ([]models.Order, error) {
	orders, err := s.orderRepo.GetAll()
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []models.Order{}
	}
	return orders, nil
}

// GetAllOrdersFromLastDay retrieves the orders created within the trailing
// 24-hour window. This is a full scan plus filter, not a store-level query.
func (s *OrderService) GetAllOrdersFromLastDay() ([]models.Order, error) {
	orders, err := s.GetAllOrders()
	if err != nil {
		return nil, err
	}

	recent := make([]models.Order, 0, len(orders))
	for _, order := range orders {
		if s.FromLastDay(order.Date) {
			recent = append(recent, order)
		}
	}
	return recent, nil
}

// OrderPrice computes the total price of an order as the sum of
// quantity × current product price over all ordered products. It fails with
// a ProductNotFound error naming the first product with no matching record.
func (s *OrderService) OrderPrice(order *models.Order) (int, error) {
	sum := 0
	for name, quantity := range order.ProductsOrdered {
		product, err := s.productRepo.GetByName(name)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				log.Printf("Order references product %s which does not exist", name)
				return 0, apperrors.NewProductNotFound(name)
			}
			return 0, fmt.Errorf("failed to look up product %s: %w", name, err)
		}
		sum += product.Price * quantity
	}
	return sum, nil
}

// FromLastDay reports whether date falls strictly inside the trailing
// 24-hour window. A date of exactly now − 24h is outside the window.
func (s *OrderService) FromLastDay(date time.Time) bool {
	return date.After(time.Now().Add(-lastDay))
}

// publishOrderCreated sends an order.created event when a publisher is
// configured. Failures are logged and swallowed.
func (s *OrderService) publishOrderCreated(order *models.Order) {
	if s.publisher == nil {
		return
	}

	body, err := json.Marshal(order)
	if err != nil {
		log.Printf("Failed to marshal order %s for event publishing: %v", order.ID, err)
		return
	}
	if err := s.publisher.PublishOrderCreated(body); err != nil {
		log.Printf("Warning: failed to publish order created event for order %s: %v", order.ID, err)
	}
}
