package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin_RequiresExactMatch(t *testing.T) {
	a, _ := newTestApp(t)

	assert.False(t, a.Login("alex.doe@example.com", "wrong"))
	assert.False(t, a.Login("nobody@example.com", "password123"))
	assert.Nil(t, a.CurrentUser())

	assert.True(t, a.Login("alex.doe@example.com", "password123"))
	require.NotNil(t, a.CurrentUser())
	assert.Equal(t, "alex.doe@example.com", a.CurrentUser().Email)
}

func TestLogin_WritesLastLoginThrough(t *testing.T) {
	a, _ := newTestApp(t)
	login(t, a)
	first := a.CurrentUser().LastLogin

	a.Logout()
	login(t, a)
	second := a.CurrentUser().LastLogin

	assert.Greater(t, second, first, "lastLogin must strictly increase")

	// The users-collection view of the same entity reflects the update.
	var stored string
	for _, u := range a.Users() {
		if u.Email == "alex.doe@example.com" {
			stored = u.LastLogin
		}
	}
	assert.Equal(t, second, stored)
}

func TestSignup_RejectsDuplicateEmail(t *testing.T) {
	a, _ := newTestApp(t)
	before := len(a.Users())

	err := a.Signup("Imposter", "alex.doe@example.com", "", "hunter2")

	assert.ErrorIs(t, err, ErrDuplicateEmail)
	assert.Len(t, a.Users(), before, "users collection unchanged on rejection")
	assert.Nil(t, a.CurrentUser())
}

func TestSignup_EmailComparisonIsCaseSensitive(t *testing.T) {
	a, _ := newTestApp(t)

	// A different casing is a different stored identity.
	assert.NoError(t, a.Signup("Alex Two", "Alex.Doe@example.com", "", "pw"))
}

func TestSignup_CreatesAndLogsIn(t *testing.T) {
	a, _ := newTestApp(t)
	before := len(a.Users())

	require.NoError(t, a.Signup("New User", "new@x.com", "555", "secret"))

	assert.Len(t, a.Users(), before+1)
	u := a.CurrentUser()
	require.NotNil(t, u)
	assert.Equal(t, "new@x.com", u.Email)
	assert.Equal(t, "user", string(u.Role))
	assert.Empty(t, u.Addresses)
	assert.NotEmpty(t, u.LastLogin)
	assert.Contains(t, u.AvatarURL, "new@x.com")
}

func TestSignupThenLogin(t *testing.T) {
	a, _ := newTestApp(t)
	require.NoError(t, a.Signup("New User", "new@x.com", "", "correctpass"))
	a.Logout()

	assert.False(t, a.Login("new@x.com", "wrongpass"))
	assert.Nil(t, a.CurrentUser())

	assert.True(t, a.Login("new@x.com", "correctpass"))
	require.NotNil(t, a.CurrentUser())
	assert.Equal(t, "new@x.com", a.CurrentUser().Email)
}

func TestLogout_LeavesUsersAlone(t *testing.T) {
	a, _ := newTestApp(t)
	login(t, a)
	before := len(a.Users())

	a.Logout()

	assert.Nil(t, a.CurrentUser())
	assert.Len(t, a.Users(), before)
}
