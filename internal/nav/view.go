// Package nav implements the view/navigation model: a tagged view
// variant, a platform-history analog, and the controller that gates
// protected destinations behind authentication.
package nav

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Kind names a view variant.
type Kind string

const (
	KindMain         Kind = "main"
	KindProduct      Kind = "product"
	KindAdmin        Kind = "admin"
	KindCheckout     Kind = "checkout"
	KindConfirmation Kind = "confirmation"
	KindTrack        Kind = "track"
	KindDeals        Kind = "deals"
	KindAuth         Kind = "auth"
	KindEditProfile  Kind = "editProfile"
	KindAddresses    Kind = "addresses"
	KindPayments     Kind = "payments"
	KindCustomPage   Kind = "customPage"
)

// View is one logical screen the controller can be in. Each variant
// carries only the identifier it needs; Main carries none, Product a
// menu item id, Auth the view to return to after login.
type View interface {
	Kind() Kind
}

type Main struct{}

// Product shows one menu item.
type Product struct{ ID string }

type Admin struct{}
type Checkout struct{}
type Confirmation struct{}

// Track shows one order's tracking timeline.
type Track struct{ ID string }

type Deals struct{}

// Auth carries the view the user was heading to; login success
// replace-navigates there. A nil From means the main view.
type Auth struct{ From View }

type EditProfile struct{}
type Addresses struct{}
type Payments struct{}

// CustomPage shows one superadmin-managed static page.
type CustomPage struct{ ID string }

func (Main) Kind() Kind         { return KindMain }
func (Product) Kind() Kind      { return KindProduct }
func (Admin) Kind() Kind        { return KindAdmin }
func (Checkout) Kind() Kind     { return KindCheckout }
func (Confirmation) Kind() Kind { return KindConfirmation }
func (Track) Kind() Kind        { return KindTrack }
func (Deals) Kind() Kind        { return KindDeals }
func (Auth) Kind() Kind         { return KindAuth }
func (EditProfile) Kind() Kind  { return KindEditProfile }
func (Addresses) Kind() Kind    { return KindAddresses }
func (Payments) Kind() Kind     { return KindPayments }
func (CustomPage) Kind() Kind   { return KindCustomPage }

// envelope is the serialized form of a view, the shape pushed onto the
// platform history and persisted with the session.
type envelope struct {
	Name Kind      `json:"name"`
	ID   string    `json:"id,omitempty"`
	From *envelope `json:"from,omitempty"`
}

func toEnvelope(v View) *envelope {
	if v == nil {
		return nil
	}
	e := &envelope{Name: v.Kind()}
	switch view := v.(type) {
	case Product:
		e.ID = view.ID
	case Track:
		e.ID = view.ID
	case CustomPage:
		e.ID = view.ID
	case Auth:
		e.From = toEnvelope(view.From)
	}
	return e
}

func fromEnvelope(e *envelope) (View, error) {
	if e == nil {
		return nil, fmt.Errorf("empty view envelope")
	}
	switch e.Name {
	case KindMain:
		return Main{}, nil
	case KindProduct:
		return Product{ID: e.ID}, nil
	case KindAdmin:
		return Admin{}, nil
	case KindCheckout:
		return Checkout{}, nil
	case KindConfirmation:
		return Confirmation{}, nil
	case KindTrack:
		return Track{ID: e.ID}, nil
	case KindDeals:
		return Deals{}, nil
	case KindAuth:
		v := Auth{}
		if e.From != nil {
			from, err := fromEnvelope(e.From)
			if err != nil {
				return nil, err
			}
			v.From = from
		}
		return v, nil
	case KindEditProfile:
		return EditProfile{}, nil
	case KindAddresses:
		return Addresses{}, nil
	case KindPayments:
		return Payments{}, nil
	case KindCustomPage:
		return CustomPage{ID: e.ID}, nil
	default:
		return nil, fmt.Errorf("unknown view kind %q", e.Name)
	}
}

// MarshalView serializes a view for history/session storage.
func MarshalView(v View) ([]byte, error) {
	if v == nil {
		return nil, fmt.Errorf("cannot marshal nil view")
	}
	return json.Marshal(toEnvelope(v))
}

// UnmarshalView reconstructs a view from its serialized form.
func UnmarshalView(data []byte) (View, error) {
	var e envelope
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, fmt.Errorf("parse view: %w", err)
	}
	return fromEnvelope(&e)
}

// Equal reports structural equality of two views, including nested
// Auth.From payloads. Used to suppress duplicate history entries.
func Equal(a, b View) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ab, err := MarshalView(a)
	if err != nil {
		return false
	}
	bb, err := MarshalView(b)
	if err != nil {
		return false
	}
	return bytes.Equal(ab, bb)
}
