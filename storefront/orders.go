package storefront

import (
	"context"
	"strings"
	"sync"

	"github.com/shopspring/decimal"
)

// OrderLister fetches the full remote order list. Client implements it.
type OrderLister interface {
	ListOrders(ctx context.Context) ([]Order, error)
}

// OrderSummary is one row of the order-history list.
type OrderSummary struct {
	ID     string
	Number string // uppercased last-8 id suffix, what the customer sees
	Total  string
	Date   string
	Status string
}

// OrderDetail pairs an order with the subtotal recomputed from its item
// snapshots. The stored total is shown alongside; a mismatch (a price edited
// after submission, say) is displayed as-is, not reconciled.
type OrderDetail struct {
	Order    Order
	Subtotal string
}

// History is the order-history view: the full order list fetched once and
// filtered in memory to the signed-in customer's email. There is no
// pagination.
type History struct {
	mu       sync.Mutex
	lister   OrderLister
	identity IdentityProvider
	orders   []Order
}

// NewHistory returns an empty history view.
func NewHistory(lister OrderLister, identity IdentityProvider) *History {
	return &History{lister: lister, identity: identity}
}

// Fetch loads the remote order list and keeps only the signed-in customer's
// orders. It fails with ErrNotSignedIn when no user is signed in.
func (h *History) Fetch(ctx context.Context) error {
	user, ok := h.identity.CurrentUser()
	if !ok {
		return ErrNotSignedIn
	}

	all, err := h.lister.ListOrders(ctx)
	if err != nil {
		return err
	}

	mine := []Order{}
	for _, order := range all {
		if order.CustomerEmail == user.Email {
			mine = append(mine, order)
		}
	}

	h.mu.Lock()
	h.orders = mine
	h.mu.Unlock()
	return nil
}

// Orders returns a copy of the fetched, filtered orders.
func (h *History) Orders() []Order {
	h.mu.Lock()
	defer h.mu.Unlock()
	orders := make([]Order, len(h.orders))
	copy(orders, h.orders)
	return orders
}

// Summaries returns the list rows for the fetched orders.
func (h *History) Summaries() []OrderSummary {
	orders := h.Orders()
	summaries := make([]OrderSummary, 0, len(orders))
	for _, order := range orders {
		summaries = append(summaries, OrderSummary{
			ID:     order.ID,
			Number: OrderNumber(order.ID),
			Total:  order.Total,
			Date:   order.Date,
			Status: order.Status,
		})
	}
	return summaries
}

// Detail returns the selected order with its recomputed items subtotal, or
// ErrNotFound when the id is not among the fetched orders.
func (h *History) Detail(id string) (OrderDetail, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, order := range h.orders {
		if order.ID == id {
			subtotal := decimal.Zero
			for _, item := range order.Items {
				line := decimal.NewFromFloat(item.Price).Mul(decimal.NewFromInt(int64(item.Quantity)))
				subtotal = subtotal.Add(line)
			}
			return OrderDetail{Order: order, Subtotal: subtotal.StringFixed(2)}, nil
		}
	}
	return OrderDetail{}, ErrNotFound
}

// OrderNumber renders an order id the way the customer sees it: the last
// eight characters, uppercased.
func OrderNumber(id string) string {
	if len(id) > 8 {
		id = id[len(id)-8:]
	}
	return strings.ToUpper(id)
}
