package storefront

import (
	"sync"

	"github.com/shopspring/decimal"
)

// Cart holds the session's line items. It is owned by one shopper session
// and never persisted; a mutex keeps it safe for the request callbacks that
// feed it. Mutations are synchronous and immediately observable.
type Cart struct {
	mu    sync.Mutex
	items []LineItem
}

// NewCart returns an empty cart.
func NewCart() *Cart {
	return &Cart{}
}

// Add merges quantity into an existing line item with the same product id,
// or appends a new one. Stock limits are the add-to-cart widget's concern,
// not the cart's.
func (c *Cart) Add(item LineItem, quantity int) {
	if quantity < 1 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].ProductID == item.ProductID {
			c.items[i].Quantity += quantity
			return
		}
	}
	item.Quantity = quantity
	c.items = append(c.items, item)
}

// Remove deletes the line item for the given product id; no-op when absent.
func (c *Cart) Remove(productID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// SetQuantity sets the line item's quantity verbatim when the item exists.
// It does not remove on quantity < 1; callers that want decrement-to-removal
// use DecrementOrRemove.
func (c *Cart) SetQuantity(productID string, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items[i].Quantity = quantity
			return
		}
	}
}

// DecrementOrRemove lowers the line item's quantity by one, removing the
// item when it would drop below one. This is the cart-dropdown behavior.
func (c *Cart) DecrementOrRemove(productID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].ProductID == productID {
			if c.items[i].Quantity <= 1 {
				c.items = append(c.items[:i], c.items[i+1:]...)
			} else {
				c.items[i].Quantity--
			}
			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
}

// Items returns a copy of the current line items.
func (c *Cart) Items() []LineItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	items := make([]LineItem, len(c.items))
	copy(items, c.items)
	return items
}

// TotalItems is the sum of quantities across all line items.
func (c *Cart) TotalItems() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := 0
	for _, item := range c.items {
		total += item.Quantity
	}
	return total
}

// TotalPrice is the sum of unit price times quantity across all line items.
func (c *Cart) TotalPrice() float64 {
	f, _ := c.TotalPriceDecimal().Float64()
	return f
}

// TotalPriceDecimal is TotalPrice as an exact decimal, used where the total
// is rendered to a fixed precision.
func (c *Cart) TotalPriceDecimal() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := decimal.Zero
	for _, item := range c.items {
		line := decimal.NewFromFloat(item.Price).Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(line)
	}
	return total
}
