package state

import "github.com/ruxxapp/ruxx/internal/domain"

// UserPatch is a shallow partial update of the current user. Nil fields
// are left alone.
type UserPatch struct {
	Name      *string
	Email     *string
	Phone     *string
	Password  *string
	AvatarURL *string
	Addresses *[]string
}

// UpdateUser merges the patch into the current user and writes the
// result through to both the current-user record and the matching entry
// in the users collection. Returns false (no-op) when nobody is logged
// in.
//
// The users-collection match is keyed by the pre-edit email. Patching
// the email field itself therefore rewrites the identity key of the
// matched entry; any other stored reference to the old email (reel
// likes, comment author snapshots) keeps pointing at the old address.
// Kept as-is deliberately - see DESIGN.md.
func (a *App) UpdateUser(patch UserPatch) bool {
	if a.currentUser == nil {
		return false
	}

	originalEmail := a.currentUser.Email
	updated := *a.currentUser

	if patch.Name != nil {
		updated.Name = *patch.Name
	}
	if patch.Email != nil {
		updated.Email = *patch.Email
	}
	if patch.Phone != nil {
		updated.Phone = *patch.Phone
	}
	if patch.Password != nil {
		updated.Password = *patch.Password
	}
	if patch.AvatarURL != nil {
		updated.AvatarURL = *patch.AvatarURL
	}
	if patch.Addresses != nil {
		addresses := make([]string, len(*patch.Addresses))
		copy(addresses, *patch.Addresses)
		updated.Addresses = addresses
	}

	a.currentUser = &updated
	for i := range a.users {
		if a.users[i].Email == originalEmail {
			a.users[i] = updated
			break
		}
	}

	a.saveUsers()
	a.saveCurrentUser()
	a.toast("Profile updated successfully!")
	return true
}

// AddAddress appends a delivery address to the current user's address
// book. Returns false when nobody is logged in.
func (a *App) AddAddress(address string) bool {
	if a.currentUser == nil {
		return false
	}
	addresses := append(append([]string{}, a.currentUser.Addresses...), address)
	return a.UpdateUser(UserPatch{Addresses: &addresses})
}

// RemoveAddress removes the address at index from the current user's
// address book. Returns false when nobody is logged in or the index is
// out of range.
func (a *App) RemoveAddress(index int) bool {
	if a.currentUser == nil || index < 0 || index >= len(a.currentUser.Addresses) {
		return false
	}
	addresses := append([]string{}, a.currentUser.Addresses...)
	addresses = append(addresses[:index], addresses[index+1:]...)
	return a.UpdateUser(UserPatch{Addresses: &addresses})
}

// SaveUser replaces the users-collection entry matching originalEmail
// (operator action from the users manager). The current user record is
// not touched, mirroring the back-office behavior. Returns false when
// no entry matches.
func (a *App) SaveUser(originalEmail string, updated domain.UserProfile) bool {
	for i := range a.users {
		if a.users[i].Email == originalEmail {
			a.users[i] = updated
			a.saveUsers()
			return true
		}
	}
	return false
}
