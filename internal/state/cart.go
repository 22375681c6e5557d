package state

import (
	"fmt"

	"github.com/ruxxapp/ruxx/internal/domain"
)

// AddToCart merges quantity into the existing line for the item, or
// appends a new line. Always succeeds and triggers a transient
// notification. A non-positive quantity is treated as 1.
func (a *App) AddToCart(item domain.FoodItem, quantity int) {
	if quantity <= 0 {
		quantity = 1
	}

	merged := false
	for i, line := range a.cart {
		if line.FoodItem.ID == item.ID {
			a.cart[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		a.cart = append(a.cart, domain.CartItem{FoodItem: item, Quantity: quantity})
	}

	a.saveCart()
	a.toast(fmt.Sprintf("%s added to cart!", item.Name))
}

// SetCartQuantity sets the quantity of the line for the given item id.
// A quantity below 1 removes the line. Returns false when no line for
// the id exists (and the quantity was positive).
func (a *App) SetCartQuantity(itemID string, quantity int) bool {
	if quantity < 1 {
		for i, line := range a.cart {
			if line.FoodItem.ID == itemID {
				a.cart = append(a.cart[:i], a.cart[i+1:]...)
				a.saveCart()
				return true
			}
		}
		return false
	}

	for i, line := range a.cart {
		if line.FoodItem.ID == itemID {
			a.cart[i].Quantity = quantity
			a.saveCart()
			return true
		}
	}
	return false
}

// CartCount returns the total quantity across all cart lines (the
// bottom-nav badge).
func (a *App) CartCount() int {
	count := 0
	for _, line := range a.cart {
		count += line.Quantity
	}
	return count
}

// CartSubtotal returns the sum of effective price times quantity over
// all cart lines.
func (a *App) CartSubtotal() float64 {
	subtotal := 0.0
	for _, line := range a.cart {
		subtotal += line.FoodItem.EffectivePrice() * float64(line.Quantity)
	}
	return subtotal
}
