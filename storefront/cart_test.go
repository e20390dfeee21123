package storefront_test

import (
	"testing"

	"go-storefront/storefront"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartAddMergesByProductID(t *testing.T) {
	cart := storefront.NewCart()
	cart.Add(storefront.LineItem{ProductID: "p1", Name: "Tote", Price: 1000}, 2)
	cart.Add(storefront.LineItem{ProductID: "p1", Name: "Tote", Price: 1000}, 3)

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
	assert.Equal(t, 5, cart.TotalItems())
}

func TestCartTotalsScenario(t *testing.T) {
	cart := storefront.NewCart()
	cart.Add(storefront.LineItem{ProductID: "p1", Price: 1000}, 2)

	assert.Equal(t, 2, cart.TotalItems())
	assert.Equal(t, 2000.0, cart.TotalPrice())

	cart.SetQuantity("p1", 3)
	assert.Equal(t, 3, cart.TotalItems())
	assert.Equal(t, 3000.0, cart.TotalPrice())

	cart.Remove("p1")
	assert.Equal(t, 0, cart.TotalItems())
	assert.Equal(t, 0.0, cart.TotalPrice())
}

func TestCartTotalPriceSumsAcrossItems(t *testing.T) {
	cart := storefront.NewCart()
	cart.Add(storefront.LineItem{ProductID: "p1", Price: 1250.50}, 2)
	cart.Add(storefront.LineItem{ProductID: "p2", Price: 499.99}, 3)

	assert.Equal(t, 5, cart.TotalItems())
	assert.Equal(t, 4001.97, cart.TotalPrice())
	assert.Equal(t, "4001.97", cart.TotalPriceDecimal().StringFixed(2))
}

func TestCartSetQuantityDoesNotRemove(t *testing.T) {
	// The primary cart view keeps a zero-quantity line around; only the
	// dropdown decrements to removal.
	cart := storefront.NewCart()
	cart.Add(storefront.LineItem{ProductID: "p1", Price: 100}, 2)

	cart.SetQuantity("p1", 0)
	require.Len(t, cart.Items(), 1)
	assert.Equal(t, 0, cart.TotalItems())
	assert.Equal(t, 0.0, cart.TotalPrice())

	cart.SetQuantity("missing", 4)
	assert.Len(t, cart.Items(), 1)
}

func TestCartDecrementOrRemove(t *testing.T) {
	cart := storefront.NewCart()
	cart.Add(storefront.LineItem{ProductID: "p1", Price: 100}, 2)

	cart.DecrementOrRemove("p1")
	require.Len(t, cart.Items(), 1)
	assert.Equal(t, 1, cart.TotalItems())

	cart.DecrementOrRemove("p1")
	assert.Empty(t, cart.Items())
}

func TestCartRemoveAbsentIsNoop(t *testing.T) {
	cart := storefront.NewCart()
	cart.Add(storefront.LineItem{ProductID: "p1", Price: 100}, 1)
	cart.Remove("p2")
	assert.Len(t, cart.Items(), 1)
}

func TestCartClear(t *testing.T) {
	cart := storefront.NewCart()
	cart.Add(storefront.LineItem{ProductID: "p1", Price: 100}, 2)
	cart.Add(storefront.LineItem{ProductID: "p2", Price: 200}, 1)

	cart.Clear()
	assert.Equal(t, 0, cart.TotalItems())
	assert.Equal(t, 0.0, cart.TotalPrice())
	assert.Empty(t, cart.Items())
}

func TestCartAddNonPositiveQuantityIgnored(t *testing.T) {
	cart := storefront.NewCart()
	cart.Add(storefront.LineItem{ProductID: "p1", Price: 100}, 0)
	cart.Add(storefront.LineItem{ProductID: "p1", Price: 100}, -2)
	assert.Empty(t, cart.Items())
}
