package store

import (
	"encoding/json"
	"log/slog"
)

// Keys used by the application, one per top-level collection.
const (
	KeySettings    = "ruxx_app_settings"
	KeyCustomPages = "ruxx_custom_pages"
	KeyFoodItems   = "ruxx_food_items"
	KeyOrders      = "ruxx_orders"
	KeyCart        = "ruxx_cart"
	KeyReels       = "ruxx_reels"
	KeyUsers       = "ruxx_users"
	KeyCurrentUser = "ruxx_current_user"
	KeySession     = "ruxx_session"
)

// Load returns the value stored under key, parsed as T. Absence, read
// failure, and parse failure all yield def; failures are logged, never
// returned. Callers can therefore treat persistence as best-effort.
func Load[T any](s *Store, key string, def T) T {
	raw, ok, err := s.GetRaw(key)
	if err != nil {
		slog.Warn("kv read failed, using default", "key", key, "error", err)
		return def
	}
	if !ok {
		return def
	}

	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		slog.Warn("kv value corrupt, using default", "key", key, "error", err)
		return def
	}
	return v
}

// Save serializes v and writes it under key. Failures are logged rather
// than raised; the in-memory state stays authoritative either way.
func Save[T any](s *Store, key string, v T) {
	data, err := json.Marshal(v)
	if err != nil {
		slog.Error("kv marshal failed, value not persisted", "key", key, "error", err)
		return
	}
	if err := s.SetRaw(key, string(data)); err != nil {
		slog.Error("kv write failed, value not persisted", "key", key, "error", err)
	}
}
