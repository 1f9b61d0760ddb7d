package entities

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyBasket       = errors.New("basket is empty")
	ErrInvalidQuantity   = errors.New("quantity must be positive")
	ErrProductNotFound   = errors.New("product not found")
	ErrInsufficientStock = errors.New("insufficient stock")
	// ErrStockConflict means a conditional decrement lost a race with a
	// concurrent placement. The whole call is safe to retry.
	ErrStockConflict = errors.New("stock reservation conflict")

	ErrOrderNotFound     = errors.New("order not found")
	ErrInvalidProduct    = errors.New("price and stock must be non-negative")
	ErrInvalidStatus     = errors.New("invalid status transition")
	ErrProductReferenced = errors.New("product is referenced by existing orders")

	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("username or email already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSessionNotFound    = errors.New("session not found")
)

// ProductNotFoundError identifies which basket line referenced a missing
// product. errors.Is(err, ErrProductNotFound) matches it.
type ProductNotFoundError struct {
	ProductID string
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product %s not found", e.ProductID)
}

func (e *ProductNotFoundError) Is(target error) bool {
	return target == ErrProductNotFound
}

// InsufficientStockError carries the available and requested quantities of
// the offending product. errors.Is(err, ErrInsufficientStock) matches it.
type InsufficientStockError struct {
	ProductID string
	Available decimal.Decimal
	Requested decimal.Decimal
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %s: available %s, requested %s",
		e.ProductID, e.Available, e.Requested)
}

func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}
