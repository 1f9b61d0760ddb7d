package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal
	// Stock is decimal because weight and volume sold goods
	// can be decremented by fractional quantities.
	Stock     decimal.Decimal
	Unit      string
	CreatedAt time.Time
}

// BasketLine is one requested position of a placement call.
// It lives only for the duration of the call.
type BasketLine struct {
	ProductID string
	Quantity  decimal.Decimal
}
