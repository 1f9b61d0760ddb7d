package entities

import (
	"bytes"
	"encoding/gob"
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	StatusPending   OrderStatus = "Pending"
	StatusCompleted OrderStatus = "Completed"
	StatusCancelled OrderStatus = "Cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo restricts status changes: Pending may become Completed or
// Cancelled, both of which are terminal.
func (s OrderStatus) CanTransitionTo(to OrderStatus) bool {
	return s == StatusPending && (to == StatusCompleted || to == StatusCancelled)
}

type Order struct {
	ID           string
	UserID       string
	TotalAmount  decimal.Decimal
	Status       OrderStatus
	OrderDate    time.Time
	DeliveryDate time.Time

	Items []OrderItem
}

// OrderItem snapshots the product price at order time. Items are owned by
// their order and are never mutated after creation.
type OrderItem struct {
	ID        string
	OrderID   string
	ProductID string
	Quantity  decimal.Decimal
	Price     decimal.Decimal
	Subtotal  decimal.Decimal
}

func (o *Order) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(o); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (o *Order) Unmarshal(data []byte) error {
	buf := bytes.NewBuffer(data)
	dec := gob.NewDecoder(buf)
	return dec.Decode(o)
}

func init() {
	gob.Register(Order{})
	gob.Register(OrderItem{})
}
