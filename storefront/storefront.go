// Package storefront implements the shopper-facing core: the session cart,
// the paged product catalog, checkout, and the order-history view. All
// remote state lives behind the Client; identity comes from an
// IdentityProvider so the package never talks to the auth service directly.
package storefront

import "time"

// Catalog sort keys. The vocabulary matches the server's so local and remote
// ordering agree.
const (
	SortNewest    = "newest"
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
	SortNameAsc   = "name-asc"
	SortNameDesc  = "name-desc"
)

// Product is a catalog entry as served by the products endpoint.
type Product struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Quantity  int       `json:"quantity"`
	Details   string    `json:"details"`
	Images    []string  `json:"images"`
	Color     string    `json:"color,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// LineItem is one product entry in the cart. Its identity within a cart is
// the product id; name, price and image are snapshots taken when the item
// was added.
type LineItem struct {
	ProductID string
	Name      string
	Price     float64
	Image     string
	Quantity  int
}

// OrderItem is a line-item snapshot inside a submitted order.
type OrderItem struct {
	ProductID string  `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Image     string  `json:"image"`
}

// Order is an order as submitted to and read back from the orders endpoint.
// Total is the two-decimal string captured at submission; it is never
// recomputed server-side.
type Order struct {
	ID               string      `json:"_id,omitempty"`
	CustomerName     string      `json:"customerName"`
	CustomerEmail    string      `json:"customerEmail"`
	Phone            string      `json:"phone"`
	Date             string      `json:"date"`
	Status           string      `json:"status"`
	ShippingAddress  string      `json:"shippingAddress"`
	PaymentReference string      `json:"paymentReference"`
	Items            []OrderItem `json:"items"`
	Total            string      `json:"total"`
}

// ListOptions selects one page of the remote catalog.
type ListOptions struct {
	Page   int
	Limit  int
	Search string
	Sort   string
}
