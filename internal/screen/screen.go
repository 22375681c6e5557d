// Package screen renders each view as terminal text. Screens are pure
// readers: they render domain state and never mutate it; mutations go
// through the state container from the command layer.
package screen

import (
	"fmt"
	"io"

	"github.com/ruxxapp/ruxx/internal/domain"
	"github.com/ruxxapp/ruxx/internal/nav"
	"github.com/ruxxapp/ruxx/internal/state"
)

// ErrTargetMissing reports a view whose target id no longer resolves
// (deleted product, unknown order). The caller reacts by navigating
// back, never by rendering an empty screen.
type ErrTargetMissing struct {
	Kind nav.Kind
	ID   string
}

func (e *ErrTargetMissing) Error() string {
	return fmt.Sprintf("%s %q no longer exists", e.Kind, e.ID)
}

// Render draws the screen for the current view and tab.
func Render(w io.Writer, app *state.App, view nav.View, tab domain.Tab) error {
	switch v := view.(type) {
	case nav.Main:
		return renderTab(w, app, tab)
	case nav.Product:
		return Product(w, app, v.ID)
	case nav.Admin:
		return AdminDashboard(w, app)
	case nav.Checkout:
		return Checkout(w, app)
	case nav.Confirmation:
		return Confirmation(w, app)
	case nav.Track:
		return Track(w, app, v.ID)
	case nav.Deals:
		return Deals(w, app)
	case nav.Auth:
		return Auth(w, app)
	case nav.EditProfile:
		return EditProfile(w, app)
	case nav.Addresses:
		return Addresses(w, app)
	case nav.Payments:
		return Payments(w, app)
	case nav.CustomPage:
		return Page(w, app, v.ID)
	default:
		return fmt.Errorf("no screen for view %q", view.Kind())
	}
}

func renderTab(w io.Writer, app *state.App, tab domain.Tab) error {
	switch tab {
	case domain.TabReels:
		return Reels(w, app)
	case domain.TabOrders:
		return Orders(w, app)
	case domain.TabCart:
		return Cart(w, app)
	case domain.TabAccount:
		return Account(w, app)
	default:
		return Home(w, app)
	}
}

// header prints the screen title bar shared by every screen.
func header(w io.Writer, app *state.App, title string) {
	fmt.Fprintf(w, "=== %s | %s ===\n", app.Settings().AppName, title)
}

func priceTag(item domain.FoodItem) string {
	if item.DiscountPercent > 0 {
		return fmt.Sprintf("%s  %d%% off -> %s",
			domain.FormatPrice(item.Price),
			item.DiscountPercent,
			domain.FormatAmount(item.EffectivePrice()))
	}
	return domain.FormatPrice(item.Price)
}
