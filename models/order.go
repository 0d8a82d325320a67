package models

import (
	"errors"
	"strings"
	"time"
)

type OrderStatus string

const (
	// Happy path, strictly linear.
	OrderStatusPending    OrderStatus = "pending"    // Order placed, awaiting operator
	OrderStatusProcessing OrderStatus = "processing" // Being assembled/packed
	OrderStatusShipped    OrderStatus = "shipped"    // Out for delivery
	OrderStatusDelivered  OrderStatus = "delivered"  // Customer received the kit

	// Terminal side-states, reachable from any non-terminal status.
	OrderStatusCancelled OrderStatus = "cancelled"
	OrderStatusReturned  OrderStatus = "returned"
)

func ParseOrderStatus(s string) (OrderStatus, error) {
	switch OrderStatus(strings.ToLower(s)) {
	case OrderStatusPending:
		return OrderStatusPending, nil
	case OrderStatusProcessing:
		return OrderStatusProcessing, nil
	case OrderStatusShipped:
		return OrderStatusShipped, nil
	case OrderStatusDelivered:
		return OrderStatusDelivered, nil
	case OrderStatusCancelled:
		return OrderStatusCancelled, nil
	case OrderStatusReturned:
		return OrderStatusReturned, nil
	default:
		return "", errors.New("invalid order status")
	}
}

// Terminal statuses have no outgoing transitions.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled || s == OrderStatusReturned
}

// next returns the single forward step of the happy path.
func (s OrderStatus) next() (OrderStatus, bool) {
	switch s {
	case OrderStatusPending:
		return OrderStatusProcessing, true
	case OrderStatusProcessing:
		return OrderStatusShipped, true
	case OrderStatusShipped:
		return OrderStatusDelivered, true
	}
	return "", false
}

// CanTransition reports whether an operator may move an order from s to to.
// Forward moves follow the linear path one step at a time; cancelled and
// returned are reachable from any non-terminal status.
func (s OrderStatus) CanTransition(to OrderStatus) bool {
	if s.Terminal() {
		return false
	}
	if to == OrderStatusCancelled || to == OrderStatusReturned {
		return true
	}
	n, ok := s.next()
	return ok && n == to
}

// Order is the durable record created at checkout. Items and total are
// immutable from pending onward; only the status may change.
type Order struct {
	ID      string      `json:"id"`
	UserID  string      `json:"userId"`
	Items   []CartItem  `json:"items"`
	Total   int         `json:"total"`
	Status  OrderStatus `json:"status"`
	Date    time.Time   `json:"date"`
	Address string      `json:"address"`
}
