package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ruxxapp/ruxx/internal/domain"
)

func TestPlaceOrder_Requiresauthentication(t *testing.T) {
	a, _ := newTestApp(t)
	a.AddToCart(a.FoodItems()[0], 1)

	_, err := a.PlaceOrder(domain.DeliveryHome, "somewhere")

	assert.ErrorIs(t, err, ErrNotAuthenticated)
	assert.Empty(t, a.Orders(), "failed placement must not touch orders")
	assert.Len(t, a.Cart(), 1, "failed placement must not clear the cart")
}

func TestPlaceOrder_DiscountedTotals(t *testing.T) {
	a, _ := newTestApp(t, WithIDGenerator(NewFixedGenerator("ORD-1")))
	login(t, a)

	// Gourmet Burger: 1599 at 20% off -> effective 1279.2, qty 2.
	a.AddToCart(a.FoodItems()[0], 2)

	order, err := a.PlaceOrder(domain.DeliveryHome, "123 Flavor St, Foodie City, 12345")
	require.NoError(t, err)

	assert.Equal(t, "ORD-1", order.ID)
	assert.InDelta(t, 2808.4, order.Total, 1e-9) // 2558.4 subtotal + 250 fee
	assert.Equal(t, "2024-07-21", order.Date)
	assert.Equal(t, domain.OrderPending, order.Status)
	assert.Equal(t, "123 Flavor St, Foodie City, 12345", order.DeliveryAddress)

	// Lines snapshot the list price, not the effective price.
	require.Len(t, order.Items, 1)
	assert.Equal(t, domain.OrderLine{Name: "Gourmet Burger", Quantity: 2, Price: 1599}, order.Items[0])
}

func TestPlaceOrder_EmptyCartHasNoFee(t *testing.T) {
	a, _ := newTestApp(t, WithIDGenerator(NewFixedGenerator("ORD-1")))
	login(t, a)

	order, err := a.PlaceOrder(domain.DeliveryPickup, "")
	require.NoError(t, err)

	assert.Zero(t, order.Total)
	assert.Empty(t, order.Items)
}

func TestPlaceOrder_ClearsCartAndPrepends(t *testing.T) {
	a, _ := newTestApp(t, WithIDGenerator(NewFixedGenerator("ORD-1", "ORD-2")))
	login(t, a)

	a.AddToCart(a.FoodItems()[2], 1)
	first, err := a.PlaceOrder(domain.DeliveryPickup, "")
	require.NoError(t, err)
	assert.Empty(t, a.Cart())

	a.AddToCart(a.FoodItems()[1], 1)
	second, err := a.PlaceOrder(domain.DeliveryPickup, "")
	require.NoError(t, err)

	// Most recent first.
	require.Len(t, a.Orders(), 2)
	assert.Equal(t, second.ID, a.Orders()[0].ID)
	assert.Equal(t, first.ID, a.Orders()[1].ID)
}

func TestPlaceOrder_AddressOnlyForDelivery(t *testing.T) {
	a, _ := newTestApp(t, WithIDGenerator(NewFixedGenerator("ORD-1")))
	login(t, a)
	a.AddToCart(a.FoodItems()[2], 1)

	order, err := a.PlaceOrder(domain.DeliveryPickup, "should be ignored")
	require.NoError(t, err)
	assert.Empty(t, order.DeliveryAddress)
}

func TestPlaceOrder_SnapshotSurvivesMenuEdits(t *testing.T) {
	a, _ := newTestApp(t, WithIDGenerator(NewFixedGenerator("ORD-1")))
	login(t, a)
	a.AddToCart(a.FoodItems()[2], 1)

	order, err := a.PlaceOrder(domain.DeliveryPickup, "")
	require.NoError(t, err)

	salad, ok := a.FoodItem("3")
	require.True(t, ok)
	salad.Name = "Kale Caesar"
	salad.Price = 9999
	a.SaveFoodItem(salad)

	got, ok := a.Order(order.ID)
	require.True(t, ok)
	assert.Equal(t, "Caesar Salad", got.Items[0].Name)
	assert.Equal(t, 1200, got.Items[0].Price)
}

func TestMarkOrderCompleted_NoTransitionGuard(t *testing.T) {
	a, _ := newTestApp(t, WithIDGenerator(NewFixedGenerator("ORD-1")))
	login(t, a)
	a.AddToCart(a.FoodItems()[0], 1)
	order, err := a.PlaceOrder(domain.DeliveryPickup, "")
	require.NoError(t, err)

	// A cancelled order can still be marked completed.
	require.True(t, a.SetOrderStatus(order.ID, domain.OrderCancelled))
	require.True(t, a.MarkOrderCompleted(order.ID))

	got, ok := a.Order(order.ID)
	require.True(t, ok)
	assert.Equal(t, domain.OrderCompleted, got.Status)
}

func TestMarkOrderCompleted_UnknownID(t *testing.T) {
	a, _ := newTestApp(t)
	assert.False(t, a.MarkOrderCompleted("ORD-missing"))
}

func TestSetOrderStatus_UnconditionalOverwrite(t *testing.T) {
	a, _ := newTestApp(t, WithIDGenerator(NewFixedGenerator("ORD-1")))
	login(t, a)
	a.AddToCart(a.FoodItems()[0], 1)
	order, err := a.PlaceOrder(domain.DeliveryPickup, "")
	require.NoError(t, err)

	require.True(t, a.SetOrderStatus(order.ID, domain.OrderCompleted))
	require.True(t, a.SetOrderStatus(order.ID, domain.OrderPending), "any status to any status")

	got, _ := a.Order(order.ID)
	assert.Equal(t, domain.OrderPending, got.Status)
}
