package state

import (
	"fmt"
	"time"

	"github.com/ruxxapp/ruxx/internal/domain"
)

// Login succeeds iff a stored user matches both email and password
// exactly (passwords are plain text in this demo store). On success the
// user's lastLogin is updated and written through to the users
// collection before it becomes the current user, so the two views of
// the entity never diverge. Returns false otherwise; no detail beyond
// pass/fail leaks about which field was wrong.
func (a *App) Login(email, password string) bool {
	for i := range a.users {
		u := a.users[i]
		if u.Email == email && u.Password == password {
			u.LastLogin = a.now().Format(time.RFC3339)
			a.users[i] = u
			a.currentUser = &u
			a.saveUsers()
			a.saveCurrentUser()
			return true
		}
	}
	return false
}

// Signup creates an account. Email equality is case-sensitive, matching
// how emails are stored. The new profile gets empty addresses, a
// derived avatar, role user, and lastLogin now, and becomes the current
// user. Returns ErrDuplicateEmail when the email is taken; the users
// collection and current user are then unchanged.
func (a *App) Signup(name, email, phone, password string) error {
	for _, u := range a.users {
		if u.Email == email {
			return ErrDuplicateEmail
		}
	}

	user := domain.UserProfile{
		Name:      name,
		Email:     email,
		Phone:     phone,
		Password:  password,
		Addresses: []string{},
		AvatarURL: fmt.Sprintf("https://i.pravatar.cc/150?u=%s", email),
		LastLogin: a.now().Format(time.RFC3339),
		Role:      domain.RoleUser,
	}

	a.users = append(a.users, user)
	a.currentUser = &user
	a.saveUsers()
	a.saveCurrentUser()
	return nil
}

// Logout clears the current user. The users collection is untouched;
// resetting the active tab to Home is the navigation layer's side of
// this operation.
func (a *App) Logout() {
	a.currentUser = nil
	a.saveCurrentUser()
}
