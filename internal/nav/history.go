package nav

// History is the platform history analog: an entry list plus a cursor.
// Push truncates any forward entries (as a browser does), Replace swaps
// the current entry, and Back/Forward move the cursor and deliver the
// newly-current entry to the pop subscriber without re-pushing.
//
// Single-threaded by construction, like everything downstream of the
// event loop; no locking.
type History struct {
	entries []View
	index   int
	onPop   func(View)
}

// NewHistory creates a history whose first entry is initial (the
// replace-initial-state step of startup).
func NewHistory(initial View) *History {
	return &History{entries: []View{initial}}
}

// Restore rebuilds a history from persisted entries. An empty slice or
// out-of-range index falls back to a fresh main-view history.
func Restore(entries []View, index int) *History {
	if len(entries) == 0 {
		return NewHistory(Main{})
	}
	if index < 0 || index >= len(entries) {
		index = len(entries) - 1
	}
	return &History{entries: entries, index: index}
}

// OnPop registers the subscriber notified when Back or Forward changes
// the current entry.
func (h *History) OnPop(fn func(View)) { h.onPop = fn }

// Current returns the entry under the cursor.
func (h *History) Current() View { return h.entries[h.index] }

// Len returns the number of entries.
func (h *History) Len() int { return len(h.entries) }

// Entries returns the entry list and cursor for persistence.
func (h *History) Entries() ([]View, int) {
	out := make([]View, len(h.entries))
	copy(out, h.entries)
	return out, h.index
}

// Push appends an entry after the cursor, dropping any forward history.
func (h *History) Push(v View) {
	h.entries = append(h.entries[:h.index+1], v)
	h.index++
}

// Replace swaps the entry under the cursor.
func (h *History) Replace(v View) {
	h.entries[h.index] = v
}

// Back moves the cursor one entry back and notifies the pop
// subscriber. Returns false when the history is exhausted.
func (h *History) Back() bool {
	if h.index == 0 {
		return false
	}
	h.index--
	if h.onPop != nil {
		h.onPop(h.entries[h.index])
	}
	return true
}

// Forward moves the cursor one entry forward and notifies the pop
// subscriber. Returns false at the newest entry.
func (h *History) Forward() bool {
	if h.index >= len(h.entries)-1 {
		return false
	}
	h.index++
	if h.onPop != nil {
		h.onPop(h.entries[h.index])
	}
	return true
}
