package state

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ruxxapp/ruxx/internal/domain"
	"github.com/ruxxapp/ruxx/internal/seed"
	"github.com/ruxxapp/ruxx/internal/store"
	"github.com/ruxxapp/ruxx/internal/testutil"
)

var testStart = time.Date(2024, 7, 21, 12, 0, 0, 0, time.UTC)

func testDefaults() seed.Data {
	return seed.Data{
		Settings: domain.AppSettings{AppName: "Ruxx Restaurants"},
		Users: []domain.UserProfile{{
			Name:      "Alex Doe",
			Email:     "alex.doe@example.com",
			Phone:     "+1 (555) 123-4567",
			Addresses: []string{"123 Flavor St, Foodie City, 12345"},
			Password:  "password123",
			Role:      domain.RoleSuperAdmin,
		}},
		FoodItems: []domain.FoodItem{
			{ID: "1", Name: "Gourmet Burger", Category: "Burgers", Price: 1599, DiscountPercent: 20},
			{ID: "2", Name: "Margherita Pizza", Category: "Pizza", Price: 1850, DiscountPercent: 15},
			{ID: "3", Name: "Caesar Salad", Category: "Salads", Price: 1200},
		},
		Reels: []domain.Reel{
			{ID: "reel1", VideoURL: "v", Title: "The perfect pizza slice!", LikedBy: []string{"alex.doe@example.com"}, Comments: []domain.Comment{}},
			{ID: "reel2", ImageURL: "i", Title: "Our Famous Gourmet Burger!", LikedBy: []string{}, Comments: []domain.Comment{}},
		},
	}
}

func newTestApp(t *testing.T, opts ...Option) (*App, *store.Store) {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "ruxx.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	clock := testutil.NewClock(testStart, time.Second)
	base := []Option{WithClock(clock.Now)}
	return New(st, testDefaults(), append(base, opts...)...), st
}

func login(t *testing.T, a *App) {
	t.Helper()
	require.True(t, a.Login("alex.doe@example.com", "password123"))
}

func TestNew_SeedsDefaultsWhenStoreEmpty(t *testing.T) {
	a, _ := newTestApp(t)

	assert.Equal(t, "Ruxx Restaurants", a.Settings().AppName)
	assert.Len(t, a.FoodItems(), 3)
	assert.Len(t, a.Reels(), 2)
	assert.Empty(t, a.Orders())
	assert.Empty(t, a.Cart())
	assert.Nil(t, a.CurrentUser())
}

func TestNew_PrefersStoredCollections(t *testing.T) {
	a, st := newTestApp(t)
	login(t, a)
	a.AddToCart(a.FoodItems()[0], 2)

	// A second container over the same store sees the persisted state.
	reopened := New(st, testDefaults())
	require.Len(t, reopened.Cart(), 1)
	assert.Equal(t, 2, reopened.Cart()[0].Quantity)
	require.NotNil(t, reopened.CurrentUser())
	assert.Equal(t, "alex.doe@example.com", reopened.CurrentUser().Email)
}

func TestCurrentUser_ReturnsCopy(t *testing.T) {
	a, _ := newTestApp(t)
	login(t, a)

	u := a.CurrentUser()
	u.Name = "Mallory"
	assert.Equal(t, "Alex Doe", a.CurrentUser().Name)
}
