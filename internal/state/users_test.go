package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ruxxapp/ruxx/internal/domain"
)

func TestUpdateUser_NoOpWhenLoggedOut(t *testing.T) {
	a, _ := newTestApp(t)
	name := "Nobody"
	assert.False(t, a.UpdateUser(UserPatch{Name: &name}))
}

func TestUpdateUser_ShallowMergeAndWriteThrough(t *testing.T) {
	a, _ := newTestApp(t)
	login(t, a)

	name := "Alexandra Doe"
	phone := "+1 (555) 999-0000"
	require.True(t, a.UpdateUser(UserPatch{Name: &name, Phone: &phone}))

	u := a.CurrentUser()
	assert.Equal(t, "Alexandra Doe", u.Name)
	assert.Equal(t, "+1 (555) 999-0000", u.Phone)
	assert.Equal(t, "password123", u.Password, "untouched fields survive the merge")

	for _, stored := range a.Users() {
		if stored.Email == "alex.doe@example.com" {
			assert.Equal(t, "Alexandra Doe", stored.Name)
		}
	}
}

func TestUpdateUser_EmailRekeyMatchesByOriginalEmail(t *testing.T) {
	a, _ := newTestApp(t)
	login(t, a)
	before := len(a.Users())

	email := "alex.new@example.com"
	require.True(t, a.UpdateUser(UserPatch{Email: &email}))

	// The entry formerly keyed by the old email now carries the new one;
	// no second entry appears and no entry is orphaned.
	assert.Len(t, a.Users(), before)
	var oldFound, newFound bool
	for _, u := range a.Users() {
		if u.Email == "alex.doe@example.com" {
			oldFound = true
		}
		if u.Email == "alex.new@example.com" {
			newFound = true
		}
	}
	assert.False(t, oldFound)
	assert.True(t, newFound)
}

func TestAddAndRemoveAddress(t *testing.T) {
	a, _ := newTestApp(t)
	login(t, a)
	require.Len(t, a.CurrentUser().Addresses, 1)

	require.True(t, a.AddAddress("789 Spice Rd, Chili Town, 11111"))
	require.Len(t, a.CurrentUser().Addresses, 2)

	require.True(t, a.RemoveAddress(0))
	require.Len(t, a.CurrentUser().Addresses, 1)
	assert.Equal(t, "789 Spice Rd, Chili Town, 11111", a.CurrentUser().Addresses[0])

	assert.False(t, a.RemoveAddress(5), "out-of-range index")
}

func TestSaveUser_KeyedByOriginalEmail(t *testing.T) {
	a, _ := newTestApp(t)
	require.NoError(t, a.Signup("New User", "new@x.com", "", "pw"))

	updated := domain.UserProfile{
		Name:  "Promoted User",
		Email: "new@x.com",
		Role:  domain.RoleAdmin,
	}
	require.True(t, a.SaveUser("new@x.com", updated))

	var got domain.UserProfile
	for _, u := range a.Users() {
		if u.Email == "new@x.com" {
			got = u
		}
	}
	assert.Equal(t, domain.RoleAdmin, got.Role)
	assert.Equal(t, "Promoted User", got.Name)

	assert.False(t, a.SaveUser("missing@x.com", updated))
}
