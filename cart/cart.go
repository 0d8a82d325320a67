// Package cart holds the per-session shopping cart. Carts live in memory
// only: the persisted record keys cover catalog, orders, reviews and the
// session identity, never an open cart.
package cart

import "github.com/Equatrans/MicroGreen-Labs-App/models"

// Cart is an ordered collection of line items for one session.
// Not safe for concurrent use; the Registry serializes access per session.
type Cart struct {
	items []models.CartItem
}

// Add merges the incoming item into an existing line of the same identity
// (quantity summed, every other field of the existing line untouched) or
// appends it, preserving insertion order.
func (c *Cart) Add(item models.CartItem) {
	for i := range c.items {
		if c.items[i].SameIdentity(item) {
			c.items[i].Quantity += item.Quantity
			return
		}
	}
	c.items = append(c.items, item)
}

// Remove deletes the line with the given id. Missing ids are a no-op.
func (c *Cart) Remove(id string) {
	for i := range c.items {
		if c.items[i].ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// UpdateQuantity adjusts a line's quantity by delta, clamped at 1. Removal
// is a separate explicit action. Missing ids are a no-op.
func (c *Cart) UpdateQuantity(id string, delta int) {
	for i := range c.items {
		if c.items[i].ID == id {
			q := c.items[i].Quantity + delta
			if q < 1 {
				q = 1
			}
			c.items[i].Quantity = q
			return
		}
	}
}

func (c *Cart) Clear() {
	c.items = nil
}

// Items returns a snapshot copy of the lines.
func (c *Cart) Items() []models.CartItem {
	out := make([]models.CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// Total is recomputed on every read, never cached.
func (c *Cart) Total() int {
	total := 0
	for _, item := range c.items {
		total += item.Price * item.Quantity
	}
	return total
}

func (c *Cart) Len() int { return len(c.items) }
