// Package domain defines the entities of the Ruxx ordering application:
// menu items, cart lines, orders, user profiles, reels, and app branding.
//
// All types are plain data. Collections are owned by the state container
// (internal/state); nothing here touches storage. The JSON tags match the
// shape persisted to the key-value store, so values written by earlier
// builds keep loading.
package domain

// Tab is one of the five bottom-navigation destinations reachable from
// the main view.
type Tab string

const (
	TabHome    Tab = "Home"
	TabReels   Tab = "Reels"
	TabOrders  Tab = "Orders"
	TabCart    Tab = "Cart"
	TabAccount Tab = "Account"
)

// ValidTab reports whether t names a known tab.
func ValidTab(t Tab) bool {
	switch t {
	case TabHome, TabReels, TabOrders, TabCart, TabAccount:
		return true
	}
	return false
}

// Role is an ordered privilege level attached to a user profile.
type Role string

const (
	RoleUser       Role = "user"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "superadmin"
)

var roleRank = map[Role]int{
	RoleUser:       0,
	RoleAdmin:      1,
	RoleSuperAdmin: 2,
}

// AtLeast reports whether r carries at least the privilege of min.
// Unknown roles rank below user.
func (r Role) AtLeast(min Role) bool {
	rr, ok := roleRank[r]
	if !ok {
		rr = -1
	}
	return rr >= roleRank[min]
}

// FoodItem is a menu entry. Price is in integer currency units;
// DiscountPercent, when non-zero, is a percentage in (0, 100].
type FoodItem struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Category        string `json:"category"`
	Price           int    `json:"price"`
	ImageURL        string `json:"imageUrl"`
	Description     string `json:"description"`
	DiscountPercent int    `json:"discountPercent,omitempty"`
}

// EffectivePrice returns the unit price after applying the discount
// percentage, if any. The result can be fractional even though list
// prices are integers.
func (f FoodItem) EffectivePrice() float64 {
	if f.DiscountPercent > 0 {
		return float64(f.Price) * (1 - float64(f.DiscountPercent)/100)
	}
	return float64(f.Price)
}

// CartItem is one cart line: a live menu item reference plus a positive
// quantity. The cart holds at most one line per FoodItem id.
type CartItem struct {
	FoodItem FoodItem `json:"foodItem"`
	Quantity int      `json:"quantity"`
}

// OrderStatus progresses one way, Pending to Completed or Cancelled.
// The container does not enforce the progression (see state package).
type OrderStatus string

const (
	OrderPending   OrderStatus = "Pending"
	OrderCompleted OrderStatus = "Completed"
	OrderCancelled OrderStatus = "Cancelled"
)

// ValidOrderStatus reports whether s names a known status.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderPending, OrderCompleted, OrderCancelled:
		return true
	}
	return false
}

// DeliveryType selects how an order is fulfilled.
type DeliveryType string

const (
	DeliveryHome   DeliveryType = "Home Delivery"
	DeliveryPickup DeliveryType = "In-Store Pickup"
)

// OrderLine is an immutable snapshot of a cart line at order time.
// It records name, quantity and list price only, decoupled from the
// live FoodItem, so historical orders never change under menu edits.
type OrderLine struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Price    int    `json:"price"`
}

// Order is a placed order. Total includes discounts and the delivery
// fee; Date is the creation day in YYYY-MM-DD form.
type Order struct {
	ID              string       `json:"id"`
	Items           []OrderLine  `json:"items"`
	Total           float64      `json:"total"`
	Date            string       `json:"date"`
	Status          OrderStatus  `json:"status"`
	DeliveryType    DeliveryType `json:"deliveryType"`
	DeliveryAddress string       `json:"deliveryAddress,omitempty"`
}

// UserProfile is an account. Email is the identity key; the password is
// stored in plain text (local demo store only, never acceptable with a
// real backend). LastLogin is an RFC 3339 timestamp.
type UserProfile struct {
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	Phone     string   `json:"phone"`
	Addresses []string `json:"addresses"`
	AvatarURL string   `json:"avatarUrl"`
	Password  string   `json:"password,omitempty"`
	LastLogin string   `json:"lastLogin,omitempty"`
	Role      Role     `json:"role"`
}

// CommentAuthor is the author snapshot embedded in a comment.
type CommentAuthor struct {
	Email  string `json:"email"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// Comment is one reel comment. Comments are append-only per reel and
// stored in append order; newest-first is a read-time concern.
type Comment struct {
	User      CommentAuthor `json:"user"`
	Text      string        `json:"text"`
	Timestamp string        `json:"timestamp"`
}

// ReelAuthor is the display info for who posted a reel.
type ReelAuthor struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// Reel is a short promotional clip or still. At least one of VideoURL
// and ImageURL is set. LikedBy holds liker emails; membership means
// "liked" and toggling removes it.
type Reel struct {
	ID       string     `json:"id"`
	VideoURL string     `json:"videoUrl,omitempty"`
	ImageURL string     `json:"imageUrl,omitempty"`
	Title    string     `json:"title"`
	LikedBy  []string   `json:"likedBy"`
	Comments []Comment  `json:"comments"`
	User     ReelAuthor `json:"user"`
}

// Liked reports whether email is in the reel's liker set.
func (r Reel) Liked(email string) bool {
	for _, e := range r.LikedBy {
		if e == email {
			return true
		}
	}
	return false
}

// PaymentMethod is a stored card. Demo data only; no processing exists.
type PaymentMethod struct {
	ID     string `json:"id"`
	Type   string `json:"type"`
	Last4  string `json:"last4"`
	Expiry string `json:"expiry"`
}

// AppSettings is the singleton branding record, superadmin-writable.
type AppSettings struct {
	AppName       string `json:"appName"`
	AppLogoURL    string `json:"appLogoUrl"`
	PromoTitle    string `json:"promoTitle"`
	PromoSubtitle string `json:"promoSubtitle"`
}

// CustomPage is superadmin-managed static content injected into the
// account menu. Icon is a tag from the app icon set.
type CustomPage struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Icon    string `json:"icon"`
	Content string `json:"content"`
}
