// Package overlay hosts the cosmetic timers of the interactive shell:
// toast auto-dismiss, splash sequencing, and the randomized promo
// popup. None of these touch domain invariants; every timer is
// cancelable on teardown.
package overlay

import (
	"sync"
	"time"
)

// DefaultToastLifetime is how long a toast stays visible.
const DefaultToastLifetime = 3 * time.Second

// Toast is one transient notification.
type Toast struct {
	Key     int64
	Message string
}

// Toasts manages the single visible toast. Showing a new toast while
// one is pending cancels the earlier dismiss timer, so the newest
// message always gets its full lifetime.
type Toasts struct {
	mu       sync.Mutex
	lifetime time.Duration
	now      func() time.Time
	onChange func(*Toast)

	current *Toast
	timer   *time.Timer
	closed  bool
}

// NewToasts creates a toast manager. onChange is invoked with the new
// toast on show and with nil on dismiss; it must be quick, it runs on
// the timer goroutine for dismissals.
func NewToasts(lifetime time.Duration, onChange func(*Toast)) *Toasts {
	if lifetime <= 0 {
		lifetime = DefaultToastLifetime
	}
	return &Toasts{
		lifetime: lifetime,
		now:      time.Now,
		onChange: onChange,
	}
}

// Show displays a toast, replacing any pending one.
func (t *Toasts) Show(message string) {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return
	}
	if t.timer != nil {
		t.timer.Stop()
	}
	toast := &Toast{Key: t.now().UnixNano(), Message: message}
	t.current = toast
	t.timer = time.AfterFunc(t.lifetime, func() { t.dismiss(toast.Key) })
	t.mu.Unlock()

	if t.onChange != nil {
		t.onChange(toast)
	}
}

// Current returns the visible toast, or nil.
func (t *Toasts) Current() *Toast {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.current
}

// Close cancels any pending dismiss timer. Further Show calls are
// dropped.
func (t *Toasts) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.closed = true
	t.current = nil
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
}

// dismiss clears the toast if it is still the one the timer was armed
// for; a toast shown after the timer fired must not be clobbered.
func (t *Toasts) dismiss(key int64) {
	t.mu.Lock()
	if t.closed || t.current == nil || t.current.Key != key {
		t.mu.Unlock()
		return
	}
	t.current = nil
	t.mu.Unlock()

	if t.onChange != nil {
		t.onChange(nil)
	}
}
