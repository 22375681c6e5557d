package state

import "github.com/ruxxapp/ruxx/internal/domain"

// Back-office mutations. Role gating lives at the command/screen layer,
// matching where the original back office enforced it; the container
// itself applies whatever it is asked to.

// SaveFoodItem creates or updates a menu item. An empty id means
// create: a fresh time-derived id is assigned and the item appended.
// Otherwise the matching entry is replaced. Returns the stored item.
func (a *App) SaveFoodItem(item domain.FoodItem) domain.FoodItem {
	if item.ID == "" {
		item.ID = a.ids.NewID("food_")
		a.foodItems = append(a.foodItems, item)
		a.saveFoodItems()
		return item
	}
	for i := range a.foodItems {
		if a.foodItems[i].ID == item.ID {
			a.foodItems[i] = item
			a.saveFoodItems()
			return item
		}
	}
	a.foodItems = append(a.foodItems, item)
	a.saveFoodItems()
	return item
}

// DeleteFoodItem removes a menu item by id. Confirmation is the
// caller's concern. Returns false when the id is unknown.
func (a *App) DeleteFoodItem(id string) bool {
	for i := range a.foodItems {
		if a.foodItems[i].ID == id {
			a.foodItems = append(a.foodItems[:i], a.foodItems[i+1:]...)
			a.saveFoodItems()
			return true
		}
	}
	return false
}

// SaveReel creates or updates a reel. Creation fills the liker set and
// comment list so readers never see nil collections.
func (a *App) SaveReel(reel domain.Reel) domain.Reel {
	if reel.ID == "" {
		reel.ID = a.ids.NewID("reel_")
		if reel.LikedBy == nil {
			reel.LikedBy = []string{}
		}
		if reel.Comments == nil {
			reel.Comments = []domain.Comment{}
		}
		a.reels = append(a.reels, reel)
		a.saveReels()
		return reel
	}
	for i := range a.reels {
		if a.reels[i].ID == reel.ID {
			a.reels[i] = reel
			a.saveReels()
			return reel
		}
	}
	a.reels = append(a.reels, reel)
	a.saveReels()
	return reel
}

// DeleteReel removes a reel by id. Returns false when the id is
// unknown.
func (a *App) DeleteReel(id string) bool {
	for i := range a.reels {
		if a.reels[i].ID == id {
			a.reels = append(a.reels[:i], a.reels[i+1:]...)
			a.saveReels()
			return true
		}
	}
	return false
}

// UpdateSettings replaces the branding record.
func (a *App) UpdateSettings(settings domain.AppSettings) {
	a.settings = settings
	a.saveSettings()
}

// SavePage creates or updates a custom page.
func (a *App) SavePage(page domain.CustomPage) domain.CustomPage {
	if page.ID == "" {
		page.ID = a.ids.NewID("page_")
		a.customPages = append(a.customPages, page)
		a.saveCustomPages()
		return page
	}
	for i := range a.customPages {
		if a.customPages[i].ID == page.ID {
			a.customPages[i] = page
			a.saveCustomPages()
			return page
		}
	}
	a.customPages = append(a.customPages, page)
	a.saveCustomPages()
	return page
}

// DeletePage removes a custom page by id. Returns false when the id is
// unknown.
func (a *App) DeletePage(id string) bool {
	for i := range a.customPages {
		if a.customPages[i].ID == id {
			a.customPages = append(a.customPages[:i], a.customPages[i+1:]...)
			a.saveCustomPages()
			return true
		}
	}
	return false
}

// Stats is the back-office dashboard summary.
type Stats struct {
	TotalRevenue  float64 `json:"totalRevenue"`
	PendingOrders int     `json:"pendingOrders"`
	TotalUsers    int     `json:"totalUsers"`
	MenuItems     int     `json:"menuItems"`
}

// DashboardStats computes the dashboard cards: revenue over completed
// orders, pending order count, user count, menu size.
func (a *App) DashboardStats() Stats {
	s := Stats{
		TotalUsers: len(a.users),
		MenuItems:  len(a.foodItems),
	}
	for _, o := range a.orders {
		switch o.Status {
		case domain.OrderCompleted:
			s.TotalRevenue += o.Total
		case domain.OrderPending:
			s.PendingOrders++
		}
	}
	return s
}
