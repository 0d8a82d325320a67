package store

import (
	"errors"

	"github.com/Equatrans/MicroGreen-Labs-App/models"
)

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrInvalidTransition = errors.New("order status transition not allowed")
)

// Orders returns every stored order. The documented default for a missing
// or unreadable record is the empty list; nothing is seeded.
func (s *Store) Orders() []models.Order {
	var orders []models.Order
	if err := s.load(keyOrders, &orders); err != nil {
		return []models.Order{}
	}
	return orders
}

// OrdersForUser filters the stored orders by owner.
func (s *Store) OrdersForUser(userID string) []models.Order {
	var out []models.Order
	for _, o := range s.Orders() {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out
}

// CreateOrder appends the checkout snapshot. Orders carry no inline image
// payloads, so there is no degrade step: a failed save is final.
func (s *Store) CreateOrder(o models.Order) error {
	orders := append(s.Orders(), o)
	if !s.Save(keyOrders, orders) {
		return ErrStorageFull
	}
	return nil
}

// UpdateOrderStatus is the operator transition: a full read-modify-write of
// the order record in which only the status changes. Illegal transitions
// (including any move out of a terminal status) are rejected with the
// record untouched.
func (s *Store) UpdateOrderStatus(orderID string, next models.OrderStatus) (models.Order, error) {
	orders := s.Orders()
	for i := range orders {
		if orders[i].ID != orderID {
			continue
		}
		if !orders[i].Status.CanTransition(next) {
			return models.Order{}, ErrInvalidTransition
		}
		orders[i].Status = next
		if !s.Save(keyOrders, orders) {
			return models.Order{}, ErrStorageFull
		}
		return orders[i], nil
	}
	return models.Order{}, ErrOrderNotFound
}
