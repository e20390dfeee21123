package storefront

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go-storefront/models"
)

// OrderSubmitter performs the single network write of a checkout. Client
// implements it.
type OrderSubmitter interface {
	CreateOrder(ctx context.Context, order Order) (Order, error)
}

// CheckoutForm carries the shipping and contact fields. Every field except
// SecondaryPhone is required.
type CheckoutForm struct {
	FirstName      string
	LastName       string
	Email          string
	Phone          string
	SecondaryPhone string
	County         string
	Town           string
	PaymentRef     string // mobile-money transaction code, pasted by the customer
}

func (f CheckoutForm) missingFields() []string {
	missing := []string{}
	required := []struct {
		name, value string
	}{
		{"first name", f.FirstName},
		{"last name", f.LastName},
		{"email", f.Email},
		{"phone", f.Phone},
		{"county", f.County},
		{"town", f.Town},
		{"payment reference", f.PaymentRef},
	}
	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			missing = append(missing, field.name)
		}
	}
	return missing
}

// Checkout converts the cart into a persisted order. It validates locally,
// submits once, and clears the cart only after the remote store accepted the
// order.
type Checkout struct {
	cart      *Cart
	submitter OrderSubmitter
	identity  IdentityProvider

	// Form is mutated directly by the UI as the shopper types.
	Form CheckoutForm

	now func() time.Time
}

// NewCheckout wires a checkout over the given cart, prefilling name and
// email from the signed-in user.
func NewCheckout(cart *Cart, submitter OrderSubmitter, identity IdentityProvider) *Checkout {
	c := &Checkout{
		cart:      cart,
		submitter: submitter,
		identity:  identity,
		now:       time.Now,
	}
	c.Prefill()
	return c
}

// Prefill copies the signed-in user's name and email into the form. Fields
// the shopper already edited are left alone.
func (c *Checkout) Prefill() {
	user, ok := c.identity.CurrentUser()
	if !ok {
		return
	}
	if c.Form.FirstName == "" {
		c.Form.FirstName = user.FirstName
	}
	if c.Form.LastName == "" {
		c.Form.LastName = user.LastName
	}
	if c.Form.Email == "" {
		c.Form.Email = user.Email
	}
}

// Submit validates the cart and form, posts the order, and on success clears
// the cart and resets the form. Validation failures happen before any
// network call. A failed submission leaves cart and form untouched so the
// shopper can retry by hand; nothing retries automatically.
func (c *Checkout) Submit(ctx context.Context) (Order, error) {
	if c.cart.TotalItems() == 0 {
		return Order{}, ErrEmptyCart
	}
	if missing := c.Form.missingFields(); len(missing) > 0 {
		return Order{}, fmt.Errorf("%w: %s", ErrMissingFields, strings.Join(missing, ", "))
	}

	created, err := c.submitter.CreateOrder(ctx, c.buildOrder())
	if err != nil {
		return Order{}, err
	}

	c.cart.Clear()
	c.Form = CheckoutForm{}
	return created, nil
}

func (c *Checkout) buildOrder() Order {
	lineItems := c.cart.Items()
	items := make([]OrderItem, 0, len(lineItems))
	for _, li := range lineItems {
		items = append(items, OrderItem{
			ProductID: li.ProductID,
			Name:      li.Name,
			Price:     li.Price,
			Quantity:  li.Quantity,
			Image:     li.Image,
		})
	}

	return Order{
		CustomerName:     strings.TrimSpace(c.Form.FirstName + " " + c.Form.LastName),
		CustomerEmail:    c.Form.Email,
		Phone:            c.Form.Phone,
		Date:             c.now().UTC().Format(time.RFC3339),
		Status:           models.StatusPending,
		ShippingAddress:  c.Form.Town + ", " + c.Form.County,
		PaymentReference: c.Form.PaymentRef,
		Items:            items,
		Total:            c.cart.TotalPriceDecimal().StringFixed(2),
	}
}
