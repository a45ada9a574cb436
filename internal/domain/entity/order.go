package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus is the fulfilment stage of an order.
type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderCompleted  OrderStatus = "completed"
	// OrderCancelled is reserved: no operation produces it.
	OrderCancelled OrderStatus = "cancelled"
)

// IsValid checks if the OrderStatus is a declared value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderPending, OrderProcessing, OrderCompleted, OrderCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is possible.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderCompleted || s == OrderCancelled
}

// CanTransitionTo reports whether moving from s to next is a forward step.
// Only pending -> processing -> completed is allowed.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	switch s {
	case OrderPending:
		return next == OrderProcessing
	case OrderProcessing:
		return next == OrderCompleted
	default:
		return false
	}
}

// Order is a customer's request for a number of glasses at one shop.
type Order struct {
	ID         uuid.UUID   `json:"id"`
	CustomerID uuid.UUID   `json:"customer_id"`
	ShopID     uuid.UUID   `json:"shop_id"`
	GlassCount int         `json:"glass_count"`
	Status     OrderStatus `json:"status"`
	CreatedAt  time.Time   `json:"created_at"` // Set once on creation.
	UpdatedAt  time.Time   `json:"updated_at"`
}

// ShortID is the reference shown to shopkeepers: the last five characters of the id.
func (o *Order) ShortID() string {
	id := o.ID.String()

	return id[len(id)-5:]
}
