// Package apperrors defines the failure kinds raised by the product and order
// services. Handlers switch on the kind to pick a response status; the message
// is what the client sees.
package apperrors

import (
	"errors"
	"fmt"
)

// Kind discriminates business-rule failures.
type Kind int

const (
	Unknown Kind = iota
	ValidationFailure
	EmptyOrder
	BelowMinimum
	ProductNotFound
	AlreadyExists
	ImageFetchError
	ImageUnreachable
)

// Error is a business-rule failure with a discriminated kind.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// KindOf returns the failure kind carried by err, or Unknown if err is not
// (and does not wrap) an *Error.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return Unknown
}

// NewEmptyOrder reports an order with no products in it.
func NewEmptyOrder() *Error {
	return &Error{
		Kind:    EmptyOrder,
		Message: "The order is empty! please add a few products.",
	}
}

// NewBelowMinimum reports an order priced under the minimum order amount.
func NewBelowMinimum(minimumOrderAmount int) *Error {
	return &Error{
		Kind:    BelowMinimum,
		Message: fmt.Sprintf("The minimum order amount is %d! please add a few more items to your order.", minimumOrderAmount),
	}
}

// NewProductNotFound reports a product name with no matching record.
func NewProductNotFound(name string) *Error {
	return &Error{
		Kind:    ProductNotFound,
		Message: fmt.Sprintf("%s Product not found!", name),
	}
}

// NewAlreadyExists reports a duplicate product name on creation.
func NewAlreadyExists(name string) *Error {
	return &Error{
		Kind:    AlreadyExists,
		Message: fmt.Sprintf("Product %s already exists", name),
	}
}

// NewImageFetchError reports a product image URL that is malformed or could
// not be fetched at all.
func NewImageFetchError() *Error {
	return &Error{
		Kind:    ImageFetchError,
		Message: "Problem with reading the product image URL",
	}
}

// NewImageUnreachable reports a product image URL that was fetched but whose
// body did not decode as an image.
func NewImageUnreachable() *Error {
	return &Error{
		Kind:    ImageUnreachable,
		Message: "The product image URL could not be read as an image",
	}
}
