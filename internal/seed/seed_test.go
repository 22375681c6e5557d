package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ruxxapp/ruxx/internal/domain"
)

func TestBuiltin(t *testing.T) {
	data := Builtin()

	assert.Equal(t, "Ruxx Restaurants", data.Settings.AppName)
	assert.Len(t, data.FoodItems, 6)
	assert.Len(t, data.Reels, 5)
	assert.Len(t, data.PaymentMethods, 2)

	require.Len(t, data.Users, 1)
	admin := data.Users[0]
	assert.Equal(t, "alex.doe@example.com", admin.Email)
	assert.Equal(t, domain.RoleSuperAdmin, admin.Role)

	burger := data.FoodItems[0]
	assert.Equal(t, "Gourmet Burger", burger.Name)
	assert.Equal(t, 1599, burger.Price)
	assert.Equal(t, 20, burger.DiscountPercent)
}

func TestLoad_RejectsMalformedYAML(t *testing.T) {
	_, err := Load([]byte("settings: [not: a: mapping"))
	assert.Error(t, err)
}

func TestLoad_RejectsSchemaViolations(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{
			"negative price",
			`
settings: {app_name: X, app_logo_url: y, promo_title: "", promo_subtitle: ""}
users: []
food_items:
  - {id: "1", name: Thing, category: Misc, price: -5}
reels: []
`,
		},
		{
			"discount over 100",
			`
settings: {app_name: X, app_logo_url: y, promo_title: "", promo_subtitle: ""}
users: []
food_items:
  - {id: "1", name: Thing, category: Misc, price: 100, discount_percent: 150}
reels: []
`,
		},
		{
			"unknown role",
			`
settings: {app_name: X, app_logo_url: y, promo_title: "", promo_subtitle: ""}
users:
  - {name: A, email: a@x.com, password: p, role: owner}
food_items: []
reels: []
`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load([]byte(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestLoad_RejectsReelWithoutMedia(t *testing.T) {
	doc := `
settings: {app_name: X, app_logo_url: y, promo_title: "", promo_subtitle: ""}
users: []
food_items: []
reels:
  - id: r1
    title: No media here
    author: {name: Nobody}
`
	_, err := Load([]byte(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "video or image")
}
