// Package cart holds the in-memory shopping cart. The cart is not persisted
// anywhere: restarting the process loses it, which matches the storefront's
// intended behavior.
package cart

import (
	"sync"

	"github.com/Karthiknalam/mern-store-frontend/internal/domain"
)

// Cart is an ordered collection of lines, one per product id, in the order
// products were first added. All methods are safe for concurrent use.
type Cart struct {
	mu    sync.RWMutex
	lines []domain.CartLine
}

func New() *Cart {
	return &Cart{}
}

// Add puts one unit of p into the cart. If a line for p already exists its
// quantity is incremented, otherwise a new line with quantity 1 is appended.
func (c *Cart) Add(p domain.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].ID == p.ID {
			c.lines[i].Qty++
			return
		}
	}
	c.lines = append(c.lines, domain.CartLine{Product: p, Qty: 1})
}

// Increment adds one unit to the line for the given product id. Unknown ids
// are a no-op.
func (c *Cart) Increment(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].ID == id {
			c.lines[i].Qty++
			return
		}
	}
}

// Decrement removes one unit from the line for the given product id. A line
// that would reach quantity 0 is removed entirely. Unknown ids are a no-op.
func (c *Cart) Decrement(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].ID != id {
			continue
		}
		if c.lines[i].Qty <= 1 {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
		} else {
			c.lines[i].Qty--
		}
		return
	}
}

// Remove deletes the line for the given product id regardless of quantity.
func (c *Cart) Remove(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].ID == id {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
}

// Lines returns a copy of the current lines in insertion order.
func (c *Cart) Lines() []domain.CartLine {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]domain.CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// Len returns the number of lines (not units) in the cart.
func (c *Cart) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.lines)
}

// Qty returns the quantity for the given product id, 0 when absent.
func (c *Cart) Qty(id string) int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for i := range c.lines {
		if c.lines[i].ID == id {
			return c.lines[i].Qty
		}
	}
	return 0
}

// Subtotal recomputes the sum of quantity times price over the current
// lines. It is always derived from the lines so it cannot go stale relative
// to them.
func (c *Cart) Subtotal() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var sum float64
	for i := range c.lines {
		sum += c.lines[i].LineTotal()
	}
	return sum
}
