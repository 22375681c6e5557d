package screen

import (
	"fmt"
	"io"

	"github.com/ruxxapp/ruxx/internal/domain"
	"github.com/ruxxapp/ruxx/internal/state"
)

// AdminDashboard renders the back-office summary cards and the most
// recent orders.
func AdminDashboard(w io.Writer, app *state.App) error {
	header(w, app, "Admin Dashboard")
	stats := app.DashboardStats()
	fmt.Fprintf(w, "Total Revenue:  %s\n", domain.FormatAmount(stats.TotalRevenue))
	fmt.Fprintf(w, "Pending Orders: %d\n", stats.PendingOrders)
	fmt.Fprintf(w, "Total Users:    %d\n", stats.TotalUsers)
	fmt.Fprintf(w, "Menu Items:     %d\n", stats.MenuItems)

	orders := app.Orders()
	if len(orders) == 0 {
		return nil
	}
	fmt.Fprintln(w, "\nRecent orders:")
	for i, o := range orders {
		if i == 5 {
			break
		}
		fmt.Fprintf(w, "  %s  %s  %s  %s\n", o.ID, o.Date, o.Status, domain.FormatAmount(o.Total))
	}
	return nil
}

// AdminMenu renders the menu management list with ids for editing.
func AdminMenu(w io.Writer, app *state.App) error {
	header(w, app, "Manage Menu")
	items := app.FoodItems()
	if len(items) == 0 {
		fmt.Fprintln(w, "No menu items.")
		return nil
	}
	for _, item := range items {
		fmt.Fprintf(w, "  %s  %s (%s)  %s\n", item.ID, item.Name, item.Category, priceTag(item))
	}
	return nil
}

// AdminOrders renders every order for status management.
func AdminOrders(w io.Writer, app *state.App) error {
	header(w, app, "Manage Orders")
	orders := app.Orders()
	if len(orders) == 0 {
		fmt.Fprintln(w, "No orders.")
		return nil
	}
	for _, o := range orders {
		fmt.Fprintf(w, "  %s  %s  %s  %s  %s\n",
			o.ID, o.Date, o.Status, o.DeliveryType, domain.FormatAmount(o.Total))
	}
	return nil
}

// AdminReels renders the reel list with engagement counts.
func AdminReels(w io.Writer, app *state.App) error {
	header(w, app, "Manage Reels")
	reels := app.Reels()
	if len(reels) == 0 {
		fmt.Fprintln(w, "No reels.")
		return nil
	}
	for _, r := range reels {
		fmt.Fprintf(w, "  %s  %s  %d like(s), %d comment(s)\n",
			r.ID, r.Title, len(r.LikedBy), len(r.Comments))
	}
	return nil
}

// AdminUsers renders every account with its role.
func AdminUsers(w io.Writer, app *state.App) error {
	header(w, app, "Manage Users")
	for _, u := range app.Users() {
		fmt.Fprintf(w, "  %s  %s  %s\n", u.Email, u.Name, u.Role)
	}
	return nil
}

// AdminBranding renders the current app settings.
func AdminBranding(w io.Writer, app *state.App) error {
	header(w, app, "App Branding")
	settings := app.Settings()
	fmt.Fprintf(w, "App Name:       %s\n", settings.AppName)
	fmt.Fprintf(w, "Promo Title:    %s\n", settings.PromoTitle)
	fmt.Fprintf(w, "Promo Subtitle: %s\n", settings.PromoSubtitle)
	if settings.AppLogoURL != "" {
		fmt.Fprintf(w, "Logo: data URL, %d bytes\n", len(settings.AppLogoURL))
	}
	return nil
}

// AdminPages renders the custom page list.
func AdminPages(w io.Writer, app *state.App) error {
	header(w, app, "Manage Pages")
	pages := app.CustomPages()
	if len(pages) == 0 {
		fmt.Fprintln(w, "No custom pages.")
		return nil
	}
	for _, p := range pages {
		fmt.Fprintf(w, "  %s  %s (icon: %s)\n", p.ID, p.Title, p.Icon)
	}
	return nil
}
