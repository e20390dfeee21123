package models

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order statuses. The set is closed; transitions happen administratively,
// never from the storefront after creation.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusShipped   = "shipped"
)

// ValidStatus reports whether s belongs to the order status vocabulary.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusShipped:
		return true
	}
	return false
}

// OrderItem is a snapshot of a cart line item captured at checkout.
// It does not track later changes to the product.
type OrderItem struct {
	ProductID string  `bson:"product_id" json:"id"`
	Name      string  `bson:"name" json:"name"`
	Price     float64 `bson:"price" json:"price"`
	Quantity  int     `bson:"quantity" json:"quantity"`
	Image     string  `bson:"image" json:"image"`
}

// Order represents a submitted order
type Order struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	CustomerName     string             `bson:"customer_name" json:"customerName"`
	CustomerEmail    string             `bson:"customer_email" json:"customerEmail"`
	Phone            string             `bson:"phone" json:"phone"`
	Date             string             `bson:"date" json:"date"` // ISO-8601, as submitted
	Status           string             `bson:"status" json:"status"`
	ShippingAddress  string             `bson:"shipping_address" json:"shippingAddress"`
	PaymentReference string             `bson:"payment_reference" json:"paymentReference"`
	Items            []OrderItem        `bson:"items" json:"items"`
	Total            string             `bson:"total" json:"total"` // two-decimal string captured at submission
	CreatedAt        time.Time          `bson:"createdAt" json:"createdAt"`
}

// Validate checks a submitted order before it is persisted.
func (o *Order) Validate() error {
	if o.CustomerName == "" || o.CustomerEmail == "" || o.Phone == "" {
		return errors.New("customer name, email and phone are required")
	}
	if len(o.Items) == 0 {
		return errors.New("order has no items")
	}
	for _, item := range o.Items {
		if item.Quantity < 1 {
			return errors.New("order item quantity must be positive")
		}
	}
	if o.Status != "" && !ValidStatus(o.Status) {
		return errors.New("unknown order status")
	}
	return nil
}
