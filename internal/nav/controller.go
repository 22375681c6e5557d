package nav

import "github.com/ruxxapp/ruxx/internal/domain"

// protectedTabs and protectedKinds are the destinations requiring an
// authenticated current user.
var protectedTabs = map[domain.Tab]bool{
	domain.TabAccount: true,
	domain.TabOrders:  true,
}

var protectedKinds = map[Kind]bool{
	KindAdmin:       true,
	KindCheckout:    true,
	KindEditProfile: true,
	KindAddresses:   true,
	KindPayments:    true,
}

// Controller owns the current view and active tab and keeps both in
// sync with the history. Authentication state and target resolution are
// supplied as callbacks so the controller stays free of domain storage.
type Controller struct {
	history *History
	view    View
	tab     domain.Tab

	authed func() bool
	// resolve reports whether the view's target still exists (a product
	// id that was deleted makes its view invalid). Nil means everything
	// resolves.
	resolve func(View) bool
}

// NewController wires a controller over a history. The current view is
// taken from the history cursor; the active tab starts at Home.
func NewController(history *History, authed func() bool, resolve func(View) bool) *Controller {
	c := &Controller{
		history: history,
		view:    history.Current(),
		tab:     domain.TabHome,
		authed:  authed,
		resolve: resolve,
	}
	// Back/forward reconstructs the view from the history entry without
	// pushing a new one (the popstate path).
	history.OnPop(func(v View) { c.view = v })
	return c
}

// View returns the current view.
func (c *Controller) View() View { return c.view }

// Tab returns the active bottom-navigation tab.
func (c *Controller) Tab() domain.Tab { return c.tab }

// SetTab sets the active tab without navigating. Used when restoring a
// persisted session.
func (c *Controller) SetTab(tab domain.Tab) {
	if domain.ValidTab(tab) {
		c.tab = tab
	}
}

// History exposes the underlying history for persistence.
func (c *Controller) History() *History { return c.history }

// Navigate moves to view, pushing (or replacing) a history entry. A
// view structurally equal to the current one is a no-op so duplicate
// history entries never pile up.
func (c *Controller) Navigate(view View, replace bool) {
	if Equal(view, c.view) {
		return
	}
	if replace {
		c.history.Replace(view)
	} else {
		c.history.Push(view)
	}
	c.view = view
}

// NavigateToTab switches the main view to tab. Protected tabs redirect
// unauthenticated users to auth, remembering main as the place to
// return to.
func (c *Controller) NavigateToTab(tab domain.Tab) {
	if protectedTabs[tab] && !c.authed() {
		c.Navigate(Auth{From: Main{}}, false)
		return
	}
	c.Navigate(Main{}, false)
	c.tab = tab
}

// NavigateToView navigates to view, routing through auth first when the
// view kind is protected and nobody is logged in.
func (c *Controller) NavigateToView(view View) {
	if protectedKinds[view.Kind()] && !c.authed() {
		c.Navigate(Auth{From: view}, false)
		return
	}
	c.Navigate(view, false)
}

// GoBack delegates to platform history back. When the resulting entry
// points at a target that no longer exists it keeps stepping back
// instead of rendering an empty state, bounded by the history length;
// an exhausted history falls back to the main view.
func (c *Controller) GoBack() {
	for steps := c.history.Len(); steps > 0; steps-- {
		if !c.history.Back() {
			break
		}
		if c.resolves(c.view) {
			return
		}
	}
	c.history.Replace(Main{})
	c.view = Main{}
}

// GoForward is the forward half of the popstate path. Invalid targets
// fall back to the main view rather than rendering empty.
func (c *Controller) GoForward() bool {
	if !c.history.Forward() {
		return false
	}
	if !c.resolves(c.view) {
		c.history.Replace(Main{})
		c.view = Main{}
	}
	return true
}

// OnAuthenticated replays the pending redirect after a successful login
// or signup: replace-navigate to the view auth was entered from (main
// when there was none). Landing on main resets the active tab to Home,
// since no explicit tab was requested.
func (c *Controller) OnAuthenticated() {
	var from View = Main{}
	if auth, ok := c.view.(Auth); ok && auth.From != nil {
		from = auth.From
	}
	c.Navigate(from, true)
	if from.Kind() == KindMain {
		c.tab = domain.TabHome
	}
}

// OnLogout resets navigation after the container clears the current
// user: replace to main, tab back to Home.
func (c *Controller) OnLogout() {
	c.Navigate(Main{}, true)
	c.tab = domain.TabHome
}

func (c *Controller) resolves(v View) bool {
	if c.resolve == nil {
		return true
	}
	return c.resolve(v)
}
