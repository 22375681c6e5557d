package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewRoundTrip(t *testing.T) {
	views := []View{
		Main{},
		Product{ID: "1"},
		Admin{},
		Checkout{},
		Confirmation{},
		Track{ID: "ORD-1"},
		Deals{},
		Auth{},
		Auth{From: Main{}},
		Auth{From: Checkout{}},
		EditProfile{},
		Addresses{},
		Payments{},
		CustomPage{ID: "page_1"},
	}
	for _, v := range views {
		data, err := MarshalView(v)
		require.NoError(t, err)

		got, err := UnmarshalView(data)
		require.NoError(t, err, "view %s", v.Kind())
		assert.True(t, Equal(v, got), "round trip of %s", string(data))
	}
}

func TestMarshalView_Envelope(t *testing.T) {
	data, err := MarshalView(Auth{From: Product{ID: "2"}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"auth","from":{"name":"product","id":"2"}}`, string(data))
}

func TestUnmarshalView_UnknownKind(t *testing.T) {
	_, err := UnmarshalView([]byte(`{"name":"settings"}`))
	assert.Error(t, err)
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal(Main{}, Main{}))
	assert.True(t, Equal(Product{ID: "1"}, Product{ID: "1"}))
	assert.False(t, Equal(Product{ID: "1"}, Product{ID: "2"}))
	assert.False(t, Equal(Main{}, Deals{}))
	assert.False(t, Equal(Auth{From: Main{}}, Auth{From: Checkout{}}))
	assert.True(t, Equal(nil, nil))
	assert.False(t, Equal(Main{}, nil))
}
