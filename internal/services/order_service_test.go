package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"restaurant/internal/apperrors"
	"restaurant/internal/models"
	"restaurant/internal/repositories"
	"restaurant/internal/services"
)

// menuRepo returns a product repository mock preloaded with the test menu.
func menuRepo() *MockProductRepository {
	mockRepo := new(MockProductRepository)
	mockRepo.On("GetByName", "Margherita Pizza").Return(&models.Product{ID: "1", Name: "Margherita Pizza", Price: 59}, nil).Maybe()
	mockRepo.On("GetByName", "Polenta").Return(&models.Product{ID: "2", Name: "Polenta", Price: 48}, nil).Maybe()
	mockRepo.On("GetByName", "Roasted Salmon").Return(&models.Product{ID: "3", Name: "Roasted Salmon", Price: 108}, nil).Maybe()
	return mockRepo
}

func TestOrderService_CreateOrder(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	service := services.NewOrderService(orderRepo, menuRepo(), nil)

	order := &models.Order{ProductsOrdered: map[string]int{"Margherita Pizza": 2, "Polenta": 1}}
	orderRepo.On("Create", order).Return(nil).Once()

	before := time.Now()
	err := service.CreateOrder(order)
	after := time.Now()

	require.NoError(t, err)
	assert.Equal(t, 166, order.Price)
	assert.False(t, order.Date.Before(before))
	assert.False(t, order.Date.After(after))
	orderRepo.AssertExpectations(t)
}

func TestOrderService_CreateOrder_Empty(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	service := services.NewOrderService(orderRepo, menuRepo(), nil)

	err := service.CreateOrder(&models.Order{ProductsOrdered: map[string]int{}})

	assert.Error(t, err)
	assert.Equal(t, apperrors.EmptyOrder, apperrors.KindOf(err))
	orderRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestOrderService_CreateOrder_BelowMinimum(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	service := services.NewOrderService(orderRepo, menuRepo(), nil)

	// A single Margherita Pizza sums to 59, one short of the minimum.
	err := service.CreateOrder(&models.Order{ProductsOrdered: map[string]int{"Margherita Pizza": 1}})

	assert.Error(t, err)
	assert.Equal(t, apperrors.BelowMinimum, apperrors.KindOf(err))
	assert.Contains(t, err.Error(), "60")
	orderRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestOrderService_CreateOrder_ProductNotFound(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	productRepo.On("GetByName", "Tiramisu").Return(nil, repositories.ErrNotFound).Once()
	service := services.NewOrderService(orderRepo, productRepo, nil)

	err := service.CreateOrder(&models.Order{ProductsOrdered: map[string]int{"Tiramisu": 1}})

	assert.Error(t, err)
	assert.Equal(t, apperrors.ProductNotFound, apperrors.KindOf(err))
	assert.Equal(t, "Tiramisu Product not found!", err.Error())
	orderRepo.AssertNotCalled(t, "Create", mock.Anything)
	productRepo.AssertExpectations(t)
}

func TestOrderService_CreateOrder_PublishesEvent(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	publisher := new(MockOrderEventPublisher)
	service := services.NewOrderService(orderRepo, menuRepo(), publisher)

	order := &models.Order{ProductsOrdered: map[string]int{"Roasted Salmon": 1}}
	orderRepo.On("Create", order).Return(nil).Once()
	publisher.On("PublishOrderCreated", mock.Anything).Return(nil).Once()

	require.NoError(t, service.CreateOrder(order))
	orderRepo.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestOrderService_CreateOrder_PublishFailureIsSwallowed(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	publisher := new(MockOrderEventPublisher)
	service := services.NewOrderService(orderRepo, menuRepo(), publisher)

	order := &models.Order{ProductsOrdered: map[string]int{"Roasted Salmon": 1}}
	orderRepo.On("Create", order).Return(nil).Once()
	publisher.On("PublishOrderCreated", mock.Anything).Return(assert.AnError).Once()

	// The order is already persisted; a failed publish must not fail the call.
	require.NoError(t, service.CreateOrder(order))
	orderRepo.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestOrderService_OrderPrice(t *testing.T) {
	service := services.NewOrderService(new(MockOrderRepository), menuRepo(), nil)

	price, err := service.OrderPrice(&models.Order{ProductsOrdered: map[string]int{"Margherita Pizza": 2, "Polenta": 1}})
	require.NoError(t, err)
	assert.Equal(t, 166, price)

	price, err = service.OrderPrice(&models.Order{ProductsOrdered: map[string]int{"Roasted Salmon": 3}})
	require.NoError(t, err)
	assert.Equal(t, 324, price)
}

func TestOrderService_FromLastDay(t *testing.T) {
	service := services.NewOrderService(new(MockOrderRepository), new(MockProductRepository), nil)

	assert.True(t, service.FromLastDay(time.Now()))
	assert.True(t, service.FromLastDay(time.Now().Add(-23*time.Hour)))
	assert.False(t, service.FromLastDay(time.Now().Add(-25*time.Hour)))
	// The boundary itself is outside the window: the comparison is strict.
	assert.False(t, service.FromLastDay(time.Now().Add(-24*time.Hour)))
}

func TestOrderService_GetAllOrdersFromLastDay(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	service := services.NewOrderService(orderRepo, new(MockProductRepository), nil)

	recent := models.Order{ID: "recent", ProductsOrdered: map[string]int{"Polenta": 2}, Date: time.Now().Add(-time.Hour), Price: 96}
	stale := models.Order{ID: "stale", ProductsOrdered: map[string]int{"Polenta": 2}, Date: time.Now().Add(-30 * time.Hour), Price: 96}
	orderRepo.On("GetAll").Return([]models.Order{recent, stale}, nil).Once()

	orders, err := service.GetAllOrdersFromLastDay()
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "recent", orders[0].ID)
	orderRepo.AssertExpectations(t)
}

func TestOrderService_GetAllOrders_Empty(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	service := services.NewOrderService(orderRepo, new(MockProductRepository), nil)

	orderRepo.On("GetAll").Return(nil, nil).Once()

	orders, err := service.GetAllOrders()
	assert.NoError(t, err)
	assert.NotNil(t, orders)
	assert.Empty(t, orders)
	orderRepo.AssertExpectations(t)
}
