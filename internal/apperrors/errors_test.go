package apperrors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"restaurant/internal/apperrors"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, apperrors.EmptyOrder, apperrors.KindOf(apperrors.NewEmptyOrder()))
	assert.Equal(t, apperrors.BelowMinimum, apperrors.KindOf(apperrors.NewBelowMinimum(60)))
	assert.Equal(t, apperrors.ProductNotFound, apperrors.KindOf(apperrors.NewProductNotFound("Polenta")))
	assert.Equal(t, apperrors.AlreadyExists, apperrors.KindOf(apperrors.NewAlreadyExists("Polenta")))
	assert.Equal(t, apperrors.ImageFetchError, apperrors.KindOf(apperrors.NewImageFetchError()))
	assert.Equal(t, apperrors.ImageUnreachable, apperrors.KindOf(apperrors.NewImageUnreachable()))
}

func TestKindOf_WrappedError(t *testing.T) {
	wrapped := fmt.Errorf("creating order: %w", apperrors.NewBelowMinimum(60))
	assert.Equal(t, apperrors.BelowMinimum, apperrors.KindOf(wrapped))
}

func TestKindOf_ForeignError(t *testing.T) {
	assert.Equal(t, apperrors.Unknown, apperrors.KindOf(errors.New("database error")))
	assert.Equal(t, apperrors.Unknown, apperrors.KindOf(nil))
}

func TestMessages(t *testing.T) {
	assert.Equal(t, "The order is empty! please add a few products.", apperrors.NewEmptyOrder().Error())
	assert.Equal(t, "The minimum order amount is 60! please add a few more items to your order.", apperrors.NewBelowMinimum(60).Error())
	assert.Equal(t, "Polenta Product not found!", apperrors.NewProductNotFound("Polenta").Error())
	assert.Equal(t, "Product Polenta already exists", apperrors.NewAlreadyExists("Polenta").Error())
}
