package store

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"storefront-gateway/models"
)

var (
	// ErrInvalidQuantity rejects quantity updates below one; the cart never
	// carries zero or negative lines.
	ErrInvalidQuantity = errors.New("cart: quantity must be at least 1")
	ErrLineNotFound    = errors.New("cart: line not found")
)

// Cart holds the session's line items in insertion order. Every add creates
// a distinct line (two adds of the same product may carry different modifier
// selections), so lines are keyed by a generated line id, not the product.
// The cart is volatile: it is never persisted and is lost on restart.
type Cart struct {
	mu    sync.Mutex
	items []models.CartItem
}

func NewCart() *Cart {
	return &Cart{}
}

// Add appends the item as a new line and returns the stored copy with its
// generated line id. A quantity below one is treated as one.
func (c *Cart) Add(item models.CartItem) models.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	item.LineID = uuid.NewString()
	if item.Quantity < 1 {
		item.Quantity = 1
	}
	c.items = append(c.items, item)
	return item
}

// UpdateQuantity replaces the quantity of a line. Quantities below one are
// rejected rather than clamped so the caller hears about the bad input.
func (c *Cart) UpdateQuantity(lineID string, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].LineID == lineID {
			c.items[i].Quantity = quantity
			return nil
		}
	}
	return ErrLineNotFound
}

// Remove drops the line; removing an unknown line is a no-op.
func (c *Cart) Remove(lineID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].LineID == lineID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// Clear empties the cart. Called only after a confirmed order submission.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
}

// Items returns a copy of the lines in insertion order.
func (c *Cart) Items() []models.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// Subtotal is Σ(unit price × quantity) over all lines.
func (c *Cart) Subtotal() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	var total int64
	for _, item := range c.items {
		total += item.LineTotal()
	}
	return total
}

// ItemCount is the total unit count across lines.
func (c *Cart) ItemCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	count := 0
	for _, item := range c.items {
		count += item.Quantity
	}
	return count
}

// Len is the number of distinct lines.
func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}
