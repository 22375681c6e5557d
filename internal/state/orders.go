package state

import (
	"fmt"

	"github.com/ruxxapp/ruxx/internal/domain"
)

// PlaceOrder turns the cart into a new Pending order.
//
// The order snapshots name/quantity/list-price per line, decoupled from
// the live menu. The total is the discounted subtotal plus the flat
// delivery fee; the fee is waived only for an empty cart. The delivery
// address is attached only for home delivery - validating that one was
// actually chosen is the checkout screen's job, not ours.
//
// On success the cart is cleared unconditionally. When nobody is logged
// in the order collection is untouched and ErrNotAuthenticated is
// returned.
func (a *App) PlaceOrder(deliveryType domain.DeliveryType, deliveryAddress string) (domain.Order, error) {
	if a.currentUser == nil {
		return domain.Order{}, ErrNotAuthenticated
	}

	subtotal := a.CartSubtotal()
	fee := 0.0
	if subtotal > 0 {
		fee = DeliveryFee
	}

	order := domain.Order{
		ID:           a.ids.NewID("ORD-"),
		Items:        make([]domain.OrderLine, 0, len(a.cart)),
		Total:        subtotal + fee,
		Date:         a.now().Format("2006-01-02"),
		Status:       domain.OrderPending,
		DeliveryType: deliveryType,
	}
	for _, line := range a.cart {
		order.Items = append(order.Items, domain.OrderLine{
			Name:     line.FoodItem.Name,
			Quantity: line.Quantity,
			Price:    line.FoodItem.Price,
		})
	}
	if deliveryType == domain.DeliveryHome {
		order.DeliveryAddress = deliveryAddress
	}

	// Most recent first.
	a.orders = append([]domain.Order{order}, a.orders...)
	a.cart = nil
	a.saveOrders()
	a.saveCart()

	return order, nil
}

// MarkOrderCompleted sets the order's status to Completed regardless of
// its current status. There is deliberately no transition guard: this
// doubles as the operator action and the self-service "mark as
// delivered" path in order tracking. Returns false when the id is
// unknown.
func (a *App) MarkOrderCompleted(orderID string) bool {
	for i := range a.orders {
		if a.orders[i].ID == orderID {
			a.orders[i].Status = domain.OrderCompleted
			a.saveOrders()
			a.toast(fmt.Sprintf("Order #%s marked as completed!", orderID))
			return true
		}
	}
	return false
}

// SetOrderStatus overwrites the order's status unconditionally; any
// status to any status is permitted. Operator action. Returns false
// when the id is unknown.
func (a *App) SetOrderStatus(orderID string, status domain.OrderStatus) bool {
	for i := range a.orders {
		if a.orders[i].ID == orderID {
			a.orders[i].Status = status
			a.saveOrders()
			return true
		}
	}
	return false
}
