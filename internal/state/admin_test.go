package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ruxxapp/ruxx/internal/domain"
)

func TestSaveFoodItem_CreateAssignsID(t *testing.T) {
	a, _ := newTestApp(t, WithIDGenerator(NewFixedGenerator("food_7")))
	before := len(a.FoodItems())

	created := a.SaveFoodItem(domain.FoodItem{Name: "Ramen", Category: "Noodles", Price: 1400})

	assert.Equal(t, "food_7", created.ID)
	assert.Len(t, a.FoodItems(), before+1)
}

func TestSaveFoodItem_UpdateReplacesByID(t *testing.T) {
	a, _ := newTestApp(t)

	item, ok := a.FoodItem("1")
	require.True(t, ok)
	item.Price = 1700
	a.SaveFoodItem(item)

	got, ok := a.FoodItem("1")
	require.True(t, ok)
	assert.Equal(t, 1700, got.Price)
}

func TestDeleteFoodItem(t *testing.T) {
	a, _ := newTestApp(t)
	before := len(a.FoodItems())

	require.True(t, a.DeleteFoodItem("1"))
	assert.Len(t, a.FoodItems(), before-1)
	_, ok := a.FoodItem("1")
	assert.False(t, ok)

	assert.False(t, a.DeleteFoodItem("1"), "second delete finds nothing")
}

func TestSaveAndDeletePage(t *testing.T) {
	a, _ := newTestApp(t, WithIDGenerator(NewFixedGenerator("page_1")))

	created := a.SavePage(domain.CustomPage{Title: "About Us", Icon: "home", Content: "We cook."})
	assert.Equal(t, "page_1", created.ID)

	created.Content = "We cook well."
	a.SavePage(created)
	got, ok := a.CustomPage("page_1")
	require.True(t, ok)
	assert.Equal(t, "We cook well.", got.Content)

	require.True(t, a.DeletePage("page_1"))
	assert.Empty(t, a.CustomPages())
}

func TestUpdateSettings(t *testing.T) {
	a, _ := newTestApp(t)

	a.UpdateSettings(domain.AppSettings{AppName: "Ruxx 2", PromoTitle: "New!"})

	assert.Equal(t, "Ruxx 2", a.Settings().AppName)
	assert.Equal(t, "New!", a.Settings().PromoTitle)
}

func TestDashboardStats(t *testing.T) {
	a, _ := newTestApp(t, WithIDGenerator(NewFixedGenerator("ORD-1", "ORD-2", "ORD-3")))
	login(t, a)

	a.AddToCart(a.FoodItems()[2], 1) // 1200, no discount
	completed, err := a.PlaceOrder(domain.DeliveryPickup, "")
	require.NoError(t, err)
	require.True(t, a.MarkOrderCompleted(completed.ID))

	a.AddToCart(a.FoodItems()[2], 1)
	_, err = a.PlaceOrder(domain.DeliveryPickup, "")
	require.NoError(t, err)

	a.AddToCart(a.FoodItems()[2], 1)
	cancelled, err := a.PlaceOrder(domain.DeliveryPickup, "")
	require.NoError(t, err)
	require.True(t, a.SetOrderStatus(cancelled.ID, domain.OrderCancelled))

	stats := a.DashboardStats()
	assert.InDelta(t, 1450, stats.TotalRevenue, 1e-9) // 1200 + 250 fee, completed only
	assert.Equal(t, 1, stats.PendingOrders)
	assert.Equal(t, 1, stats.TotalUsers)
	assert.Equal(t, 3, stats.MenuItems)
}
