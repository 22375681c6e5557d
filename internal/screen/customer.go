package screen

import (
	"fmt"
	"io"
	"strings"

	"github.com/ruxxapp/ruxx/internal/domain"
	"github.com/ruxxapp/ruxx/internal/nav"
	"github.com/ruxxapp/ruxx/internal/state"
)

// Home renders the menu grid grouped by category, discounted items first
// in their listed order.
func Home(w io.Writer, app *state.App) error {
	header(w, app, "Home")
	settings := app.Settings()
	fmt.Fprintf(w, "%s\n%s\n", settings.PromoTitle, settings.PromoSubtitle)
	items := app.FoodItems()
	if len(items) == 0 {
		fmt.Fprintln(w, "\nThe menu is empty. Check back soon!")
		return nil
	}
	var category string
	for _, item := range items {
		if item.Category != category {
			category = item.Category
			fmt.Fprintf(w, "\n[%s]\n", category)
		}
		fmt.Fprintf(w, "  %s  %s\n", item.Name, priceTag(item))
	}
	fmt.Fprintf(w, "\nCart: %d item(s)\n", app.CartCount())
	return nil
}

// Product renders the detail screen for one menu item.
func Product(w io.Writer, app *state.App, id string) error {
	item, ok := app.FoodItem(id)
	if !ok {
		return &ErrTargetMissing{Kind: nav.KindProduct, ID: id}
	}
	header(w, app, item.Name)
	fmt.Fprintf(w, "Category: %s\n", item.Category)
	fmt.Fprintf(w, "Price:    %s\n", priceTag(item))
	fmt.Fprintf(w, "\n%s\n", item.Description)

	// Up to three other items from the same category.
	shown := 0
	for _, other := range app.FoodItems() {
		if other.ID == item.ID || other.Category != item.Category {
			continue
		}
		if shown == 0 {
			fmt.Fprintln(w, "\nYou may also like:")
		}
		fmt.Fprintf(w, "  %s  %s\n", other.Name, priceTag(other))
		if shown++; shown == 3 {
			break
		}
	}
	return nil
}

// Deals renders every discounted menu item.
func Deals(w io.Writer, app *state.App) error {
	header(w, app, "Special Offers")
	found := false
	for _, item := range app.FoodItems() {
		if item.DiscountPercent == 0 {
			continue
		}
		found = true
		fmt.Fprintf(w, "  %s  %s\n", item.Name, priceTag(item))
	}
	if !found {
		fmt.Fprintln(w, "No deals right now. Check back soon!")
	}
	return nil
}

// Cart renders the cart lines with effective prices and the order summary.
func Cart(w io.Writer, app *state.App) error {
	header(w, app, "My Cart")
	cart := app.Cart()
	if len(cart) == 0 {
		fmt.Fprintln(w, "Your cart is empty.")
		return nil
	}
	for _, line := range cart {
		fmt.Fprintf(w, "  %dx %s  %s\n",
			line.Quantity, line.FoodItem.Name,
			domain.FormatAmount(line.FoodItem.EffectivePrice()*float64(line.Quantity)))
	}
	subtotal := app.CartSubtotal()
	fmt.Fprintf(w, "\nSubtotal:     %s\n", domain.FormatAmount(subtotal))
	fmt.Fprintf(w, "Delivery Fee: %s\n", domain.FormatPrice(state.DeliveryFee))
	fmt.Fprintf(w, "Total:        %s\n", domain.FormatAmount(subtotal+state.DeliveryFee))
	return nil
}

// Checkout renders the delivery options and saved addresses for the
// signed-in user. The checkout view sits behind the auth gate, so a
// missing user only happens on a stale session; render the prompt.
func Checkout(w io.Writer, app *state.App) error {
	header(w, app, "Checkout")
	user := app.CurrentUser()
	if user == nil {
		fmt.Fprintln(w, "Sign in to check out.")
		return nil
	}
	fmt.Fprintf(w, "Delivery options: %s, %s\n", domain.DeliveryHome, domain.DeliveryPickup)
	if len(user.Addresses) == 0 {
		fmt.Fprintln(w, "No saved addresses. Add one before choosing home delivery.")
	} else {
		fmt.Fprintln(w, "Saved addresses:")
		for i, addr := range user.Addresses {
			fmt.Fprintf(w, "  [%d] %s\n", i, addr)
		}
	}
	subtotal := app.CartSubtotal()
	fmt.Fprintf(w, "\nSubtotal:     %s\n", domain.FormatAmount(subtotal))
	fmt.Fprintf(w, "Delivery Fee: %s\n", domain.FormatPrice(state.DeliveryFee))
	fmt.Fprintf(w, "Total:        %s\n", domain.FormatAmount(subtotal+state.DeliveryFee))
	return nil
}

// Confirmation renders the post-checkout screen for the most recent order.
func Confirmation(w io.Writer, app *state.App) error {
	header(w, app, "Order Confirmed")
	orders := app.Orders()
	if len(orders) == 0 {
		fmt.Fprintln(w, "No recent order.")
		return nil
	}
	latest := orders[0]
	fmt.Fprintf(w, "Thank you! Your order %s has been placed.\n", latest.ID)
	fmt.Fprintf(w, "Total: %s\n", domain.FormatAmount(latest.Total))
	if latest.DeliveryType == domain.DeliveryPickup {
		fmt.Fprintln(w, "Show your pickup code at the counter.")
	} else {
		fmt.Fprintf(w, "Delivering to: %s\n", latest.DeliveryAddress)
	}
	return nil
}

// Orders renders the signed-in user's order history, newest first.
func Orders(w io.Writer, app *state.App) error {
	header(w, app, "My Orders")
	orders := app.Orders()
	if len(orders) == 0 {
		fmt.Fprintln(w, "You have no orders yet.")
		return nil
	}
	for _, o := range orders {
		fmt.Fprintf(w, "  %s  %s  %s  %s\n",
			o.ID, o.Date, o.Status, domain.FormatAmount(o.Total))
	}
	return nil
}

// Track renders the live status of one order.
func Track(w io.Writer, app *state.App, id string) error {
	order, ok := app.Order(id)
	if !ok {
		return &ErrTargetMissing{Kind: nav.KindTrack, ID: id}
	}
	header(w, app, "Track Order")
	fmt.Fprintf(w, "Order %s placed on %s\n", order.ID, order.Date)
	fmt.Fprintf(w, "Status: %s\n", order.Status)
	switch order.Status {
	case domain.OrderCompleted:
		fmt.Fprintln(w, "Progress: [x] placed  [x] completed")
	case domain.OrderCancelled:
		fmt.Fprintln(w, "Progress: [x] placed  [-] cancelled")
	default:
		fmt.Fprintln(w, "Progress: [x] placed  [ ] completed")
	}
	fmt.Fprintf(w, "Fulfilment: %s\n", order.DeliveryType)
	if order.DeliveryAddress != "" {
		fmt.Fprintf(w, "Address: %s\n", order.DeliveryAddress)
	}
	fmt.Fprintln(w, "\nItems:")
	for _, line := range order.Items {
		fmt.Fprintf(w, "  %dx %s  %s\n", line.Quantity, line.Name, domain.FormatPrice(line.Price))
	}
	fmt.Fprintf(w, "\nTotal: %s\n", domain.FormatAmount(order.Total))
	return nil
}

// Reels renders the promotional feed with like and comment counts.
// Comments show newest first.
func Reels(w io.Writer, app *state.App) error {
	header(w, app, "Reels")
	reels := app.Reels()
	if len(reels) == 0 {
		fmt.Fprintln(w, "No reels yet.")
		return nil
	}
	var email string
	if user := app.CurrentUser(); user != nil {
		email = user.Email
	}
	for _, reel := range reels {
		liked := " "
		if email != "" && reel.Liked(email) {
			liked = "*"
		}
		fmt.Fprintf(w, "\n[%s] %s (by %s)\n", liked, reel.Title, reel.User.Name)
		fmt.Fprintf(w, "    %d like(s), %d comment(s)\n", len(reel.LikedBy), len(reel.Comments))
		for _, c := range state.CommentsNewestFirst(reel) {
			fmt.Fprintf(w, "    %s: %s\n", c.User.Name, c.Text)
		}
	}
	return nil
}

// Auth renders the combined sign-in and sign-up prompt.
func Auth(w io.Writer, app *state.App) error {
	header(w, app, "Sign In")
	fmt.Fprintln(w, "Sign in with your email and password, or sign up for an account.")
	return nil
}

// Account renders the profile summary and the account menu, including
// any custom pages and, for staff, the admin panel entry.
func Account(w io.Writer, app *state.App) error {
	header(w, app, "My Account")
	user := app.CurrentUser()
	if user == nil {
		fmt.Fprintln(w, "Sign in to see your account.")
		return nil
	}
	fmt.Fprintf(w, "%s\n%s | %s\n", user.Name, user.Email, user.Phone)
	fmt.Fprintln(w, "\nMenu:")
	fmt.Fprintln(w, "  Edit Profile")
	fmt.Fprintln(w, "  Delivery Addresses")
	fmt.Fprintln(w, "  Payment Methods")
	fmt.Fprintln(w, "  Special Offers")
	for _, page := range app.CustomPages() {
		fmt.Fprintf(w, "  %s\n", page.Title)
	}
	if user.Role.AtLeast(domain.RoleAdmin) {
		fmt.Fprintln(w, "  Admin Panel")
	}
	fmt.Fprintln(w, "  Log Out")
	return nil
}

// EditProfile renders the editable profile fields with current values.
func EditProfile(w io.Writer, app *state.App) error {
	header(w, app, "Edit Profile")
	user := app.CurrentUser()
	if user == nil {
		fmt.Fprintln(w, "Sign in to edit your profile.")
		return nil
	}
	fmt.Fprintf(w, "Name:  %s\n", user.Name)
	fmt.Fprintf(w, "Email: %s\n", user.Email)
	fmt.Fprintf(w, "Phone: %s\n", user.Phone)
	return nil
}

// Addresses renders the saved delivery addresses with their indices.
func Addresses(w io.Writer, app *state.App) error {
	header(w, app, "Delivery Addresses")
	user := app.CurrentUser()
	if user == nil {
		fmt.Fprintln(w, "Sign in to manage addresses.")
		return nil
	}
	if len(user.Addresses) == 0 {
		fmt.Fprintln(w, "No saved addresses.")
		return nil
	}
	for i, addr := range user.Addresses {
		fmt.Fprintf(w, "  [%d] %s\n", i, addr)
	}
	return nil
}

// Payments renders the stored payment methods, masked to their last four
// digits.
func Payments(w io.Writer, app *state.App) error {
	header(w, app, "Payment Methods")
	methods := app.PaymentMethods()
	if len(methods) == 0 {
		fmt.Fprintln(w, "No payment methods on file.")
		return nil
	}
	for _, m := range methods {
		fmt.Fprintf(w, "  %s ending in %s, expires %s\n", m.Type, m.Last4, m.Expiry)
	}
	return nil
}

// Page renders a superadmin-authored custom page.
func Page(w io.Writer, app *state.App, id string) error {
	page, ok := app.CustomPage(id)
	if !ok {
		return &ErrTargetMissing{Kind: nav.KindCustomPage, ID: id}
	}
	header(w, app, page.Title)
	fmt.Fprintln(w, strings.TrimRight(page.Content, "\n"))
	return nil
}
