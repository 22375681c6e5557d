// Package session persists the navigation session (view history,
// cursor, active tab) so consecutive CLI invocations behave like one
// app session. Corrupt or missing session data silently rebuilds the
// initial state, never faults.
package session

import (
	"encoding/json"
	"log/slog"

	"github.com/ruxxapp/ruxx/internal/domain"
	"github.com/ruxxapp/ruxx/internal/nav"
	"github.com/ruxxapp/ruxx/internal/store"
)

// record is the persisted shape under the session key.
type record struct {
	Tab     domain.Tab        `json:"tab"`
	Entries []json.RawMessage `json:"entries"`
	Index   int               `json:"index"`
}

// Restore builds a controller from the persisted session, falling back
// to main/Home when nothing usable is stored. Entries that fail to
// parse are dropped; if none survive, the history starts fresh.
func Restore(st *store.Store, authed func() bool, resolve func(nav.View) bool) *nav.Controller {
	rec := store.Load(st, store.KeySession, record{Tab: domain.TabHome})

	var entries []nav.View
	for _, raw := range rec.Entries {
		v, err := nav.UnmarshalView(raw)
		if err != nil {
			slog.Warn("dropping unreadable history entry", "error", err)
			continue
		}
		entries = append(entries, v)
	}

	c := nav.NewController(nav.Restore(entries, rec.Index), authed, resolve)
	c.SetTab(rec.Tab)
	return c
}

// Save writes the controller's session back to the store.
func Save(st *store.Store, c *nav.Controller) {
	entries, index := c.History().Entries()
	rec := record{Tab: c.Tab(), Index: index}
	for _, v := range entries {
		raw, err := nav.MarshalView(v)
		if err != nil {
			slog.Warn("skipping unserializable history entry", "error", err)
			continue
		}
		rec.Entries = append(rec.Entries, raw)
	}
	store.Save(st, store.KeySession, rec)
}

// Reset clears the persisted session.
func Reset(st *store.Store) {
	if err := st.Delete(store.KeySession); err != nil {
		slog.Warn("session reset failed", "error", err)
	}
}
