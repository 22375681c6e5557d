// Package state holds the application's single in-memory snapshot and
// every mutation over it.
//
// The App container exclusively owns all entity collections. Screens
// and CLI commands read through accessors and mutate through the
// exported operations; each operation applies atomically to the
// in-memory snapshot and mirrors the touched collections to the
// key-value store. There is exactly one writer at a time by
// construction (UI-event-loop model), so no locking is needed.
//
// No operation here faults: everything either completes or is a
// rejected no-op reported through a bool or error result.
package state

import (
	"time"

	"github.com/ruxxapp/ruxx/internal/domain"
	"github.com/ruxxapp/ruxx/internal/seed"
	"github.com/ruxxapp/ruxx/internal/store"
)

// DeliveryFee is the flat fee added to any order with a non-zero
// subtotal, in the same integer currency unit as list prices.
const DeliveryFee = 250

// App is the domain state container.
type App struct {
	store  *store.Store
	now    func() time.Time
	ids    IDGenerator
	notify func(string)

	settings       domain.AppSettings
	customPages    []domain.CustomPage
	foodItems      []domain.FoodItem
	orders         []domain.Order
	cart           []domain.CartItem
	reels          []domain.Reel
	users          []domain.UserProfile
	currentUser    *domain.UserProfile
	paymentMethods []domain.PaymentMethod
}

// Option configures an App.
type Option func(*App)

// WithClock overrides the wall clock. Tests use a deterministic clock
// so lastLogin and order dates are stable.
func WithClock(now func() time.Time) Option {
	return func(a *App) { a.now = now }
}

// WithIDGenerator overrides the id generator (fixed ids in tests).
func WithIDGenerator(gen IDGenerator) Option {
	return func(a *App) { a.ids = gen }
}

// WithNotifier sets the transient-notification hook (the toast surface).
// A nil notifier is fine; notifications are then dropped.
func WithNotifier(fn func(message string)) Option {
	return func(a *App) { a.notify = fn }
}

// New builds the container from the store, falling back to the seed
// defaults for any collection the store has no value for.
func New(st *store.Store, defaults seed.Data, opts ...Option) *App {
	a := &App{
		store: st,
		now:   time.Now,
		ids:   UUIDv7Generator{},

		settings:       store.Load(st, store.KeySettings, defaults.Settings),
		customPages:    store.Load(st, store.KeyCustomPages, []domain.CustomPage{}),
		foodItems:      store.Load(st, store.KeyFoodItems, defaults.FoodItems),
		orders:         store.Load(st, store.KeyOrders, []domain.Order{}),
		cart:           store.Load(st, store.KeyCart, []domain.CartItem{}),
		reels:          store.Load(st, store.KeyReels, defaults.Reels),
		users:          store.Load(st, store.KeyUsers, defaults.Users),
		currentUser:    store.Load(st, store.KeyCurrentUser, (*domain.UserProfile)(nil)),
		paymentMethods: defaults.PaymentMethods,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Settings returns the branding record.
func (a *App) Settings() domain.AppSettings { return a.settings }

// CustomPages returns the superadmin-managed static pages.
func (a *App) CustomPages() []domain.CustomPage { return a.customPages }

// FoodItems returns the menu.
func (a *App) FoodItems() []domain.FoodItem { return a.foodItems }

// Orders returns all orders, most recent first.
func (a *App) Orders() []domain.Order { return a.orders }

// Cart returns the cart lines in insertion order.
func (a *App) Cart() []domain.CartItem { return a.cart }

// Reels returns all reels.
func (a *App) Reels() []domain.Reel { return a.reels }

// Users returns every account.
func (a *App) Users() []domain.UserProfile { return a.users }

// PaymentMethods returns the demo wallet shown on the payments screen.
func (a *App) PaymentMethods() []domain.PaymentMethod { return a.paymentMethods }

// CurrentUser returns the authenticated user, or nil.
func (a *App) CurrentUser() *domain.UserProfile {
	if a.currentUser == nil {
		return nil
	}
	u := *a.currentUser
	return &u
}

// Authenticated reports whether a user is logged in.
func (a *App) Authenticated() bool { return a.currentUser != nil }

// FoodItem looks up a menu item by id.
func (a *App) FoodItem(id string) (domain.FoodItem, bool) {
	for _, f := range a.foodItems {
		if f.ID == id {
			return f, true
		}
	}
	return domain.FoodItem{}, false
}

// Order looks up an order by id.
func (a *App) Order(id string) (domain.Order, bool) {
	for _, o := range a.orders {
		if o.ID == id {
			return o, true
		}
	}
	return domain.Order{}, false
}

// Reel looks up a reel by id.
func (a *App) Reel(id string) (domain.Reel, bool) {
	for _, r := range a.reels {
		if r.ID == id {
			return r, true
		}
	}
	return domain.Reel{}, false
}

// CustomPage looks up a static page by id.
func (a *App) CustomPage(id string) (domain.CustomPage, bool) {
	for _, p := range a.customPages {
		if p.ID == id {
			return p, true
		}
	}
	return domain.CustomPage{}, false
}

func (a *App) toast(message string) {
	if a.notify != nil {
		a.notify(message)
	}
}

func (a *App) saveCart()        { store.Save(a.store, store.KeyCart, a.cart) }
func (a *App) saveOrders()      { store.Save(a.store, store.KeyOrders, a.orders) }
func (a *App) saveUsers()       { store.Save(a.store, store.KeyUsers, a.users) }
func (a *App) saveCurrentUser() { store.Save(a.store, store.KeyCurrentUser, a.currentUser) }
func (a *App) saveReels()       { store.Save(a.store, store.KeyReels, a.reels) }
func (a *App) saveFoodItems()   { store.Save(a.store, store.KeyFoodItems, a.foodItems) }
func (a *App) saveSettings()    { store.Save(a.store, store.KeySettings, a.settings) }
func (a *App) saveCustomPages() { store.Save(a.store, store.KeyCustomPages, a.customPages) }
