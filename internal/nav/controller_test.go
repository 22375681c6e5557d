package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ruxxapp/ruxx/internal/domain"
)

// testController builds a controller with switchable auth state and a
// resolver backed by a set of live ids.
func testController(authed *bool, live map[string]bool) *Controller {
	return NewController(
		NewHistory(Main{}),
		func() bool { return *authed },
		func(v View) bool {
			switch view := v.(type) {
			case Product:
				return live[view.ID]
			case Track:
				return live[view.ID]
			case CustomPage:
				return live[view.ID]
			}
			return true
		},
	)
}

func TestController_InitialState(t *testing.T) {
	authed := false
	c := testController(&authed, nil)

	assert.True(t, Equal(Main{}, c.View()))
	assert.Equal(t, domain.TabHome, c.Tab())
}

func TestNavigate_DuplicateViewIsNoOp(t *testing.T) {
	authed := true
	c := testController(&authed, map[string]bool{"1": true})

	c.Navigate(Product{ID: "1"}, false)
	require.Equal(t, 2, c.History().Len())

	c.Navigate(Product{ID: "1"}, false)
	assert.Equal(t, 2, c.History().Len(), "structurally equal view must not push")

	c.Navigate(Product{ID: "2"}, false)
	assert.Equal(t, 3, c.History().Len())
}

func TestNavigate_Replace(t *testing.T) {
	authed := true
	c := testController(&authed, nil)

	c.Navigate(Deals{}, false)
	c.Navigate(Confirmation{}, true)

	assert.Equal(t, 2, c.History().Len())
	assert.True(t, Equal(Confirmation{}, c.View()))
}

func TestNavigateToTab_ProtectedRedirectsToAuth(t *testing.T) {
	authed := false
	c := testController(&authed, nil)

	c.NavigateToTab(domain.TabOrders)

	assert.True(t, Equal(Auth{From: Main{}}, c.View()))
	assert.Equal(t, domain.TabHome, c.Tab(), "tab unchanged until auth succeeds")
}

func TestNavigateToTab_OpenTabsNeedNoAuth(t *testing.T) {
	authed := false
	c := testController(&authed, nil)

	c.NavigateToTab(domain.TabCart)

	assert.True(t, Equal(Main{}, c.View()))
	assert.Equal(t, domain.TabCart, c.Tab())
}

func TestNavigateToTab_Authenticated(t *testing.T) {
	authed := true
	c := testController(&authed, nil)

	c.NavigateToTab(domain.TabAccount)

	assert.True(t, Equal(Main{}, c.View()))
	assert.Equal(t, domain.TabAccount, c.Tab())
}

func TestNavigateToView_ProtectedCarriesFrom(t *testing.T) {
	authed := false
	c := testController(&authed, nil)

	c.NavigateToView(Checkout{})

	auth, ok := c.View().(Auth)
	require.True(t, ok)
	assert.True(t, Equal(Checkout{}, auth.From))
}

func TestNavigateToView_OpenViewGoesDirect(t *testing.T) {
	authed := false
	c := testController(&authed, map[string]bool{"1": true})

	c.NavigateToView(Product{ID: "1"})
	assert.True(t, Equal(Product{ID: "1"}, c.View()))
}

func TestOnAuthenticated_ReplaysPendingView(t *testing.T) {
	authed := false
	c := testController(&authed, nil)

	c.NavigateToView(Checkout{})
	authed = true
	c.OnAuthenticated()

	assert.True(t, Equal(Checkout{}, c.View()))
	// Replacing means backing out of checkout skips the auth screen.
	c.GoBack()
	assert.True(t, Equal(Main{}, c.View()))
}

func TestOnAuthenticated_MainResetsTabToHome(t *testing.T) {
	authed := false
	c := testController(&authed, nil)
	c.NavigateToTab(domain.TabCart) // open tab, sets Cart
	c.NavigateToTab(domain.TabAccount)

	authed = true
	c.OnAuthenticated()

	assert.True(t, Equal(Main{}, c.View()))
	assert.Equal(t, domain.TabHome, c.Tab())
}

func TestGoBack_PopReconstructsWithoutPushing(t *testing.T) {
	authed := true
	c := testController(&authed, map[string]bool{"1": true})

	c.NavigateToView(Deals{})
	c.NavigateToView(Product{ID: "1"})
	require.Equal(t, 3, c.History().Len())

	c.GoBack()
	assert.True(t, Equal(Deals{}, c.View()))
	assert.Equal(t, 3, c.History().Len(), "back must not grow the history")
}

func TestGoBack_SkipsDanglingTargets(t *testing.T) {
	authed := true
	live := map[string]bool{"1": true, "2": true}
	c := testController(&authed, live)

	c.NavigateToView(Product{ID: "1"})
	c.NavigateToView(Product{ID: "2"})
	c.NavigateToView(Deals{})

	// The first product disappears (menu edit) while we're on deals.
	delete(live, "1")
	c.GoBack() // lands on product 2, still valid
	assert.True(t, Equal(Product{ID: "2"}, c.View()))

	c.GoBack() // product 1 is gone; keep stepping to main
	assert.True(t, Equal(Main{}, c.View()))
}

func TestGoBack_ExhaustedHistoryFallsBackToMain(t *testing.T) {
	authed := true
	live := map[string]bool{"1": true}
	c := testController(&authed, live)

	c.NavigateToView(Product{ID: "1"})
	delete(live, "1")

	// Current view is invalid and the only earlier entry is main.
	c.GoBack()
	assert.True(t, Equal(Main{}, c.View()))

	// Back at the root, another back must not underflow.
	c.GoBack()
	assert.True(t, Equal(Main{}, c.View()))
}

func TestGoForward(t *testing.T) {
	authed := true
	c := testController(&authed, map[string]bool{"1": true})

	c.NavigateToView(Product{ID: "1"})
	c.GoBack()
	require.True(t, Equal(Main{}, c.View()))

	require.True(t, c.GoForward())
	assert.True(t, Equal(Product{ID: "1"}, c.View()))

	assert.False(t, c.GoForward(), "no forward entries left")
}

func TestOnLogout(t *testing.T) {
	authed := true
	c := testController(&authed, nil)
	c.NavigateToTab(domain.TabAccount)

	authed = false
	c.OnLogout()

	assert.True(t, Equal(Main{}, c.View()))
	assert.Equal(t, domain.TabHome, c.Tab())
}

func TestHistory_PushDropsForwardEntries(t *testing.T) {
	h := NewHistory(Main{})
	h.Push(Deals{})
	h.Push(Payments{})
	require.True(t, h.Back())
	require.True(t, h.Back())

	h.Push(Addresses{})

	assert.Equal(t, 2, h.Len())
	assert.True(t, Equal(Addresses{}, h.Current()))
	assert.False(t, h.Forward())
}

func TestHistory_Restore(t *testing.T) {
	h := Restore([]View{Main{}, Deals{}}, 1)
	assert.True(t, Equal(Deals{}, h.Current()))

	// Out-of-range cursor clamps to the newest entry.
	h = Restore([]View{Main{}, Deals{}}, 7)
	assert.True(t, Equal(Deals{}, h.Current()))

	// Nothing persisted: fresh main history.
	h = Restore(nil, 0)
	assert.True(t, Equal(Main{}, h.Current()))
}
