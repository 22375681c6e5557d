package overlay

import (
	"math/rand"
	"sync"
	"time"
)

// Splash timing: the shell is "ready" after the splash animation runs
// its stages.
const SplashDuration = 3500 * time.Millisecond

// Promo popup delay bounds. The popup appears once per session at a
// randomized delay after the splash finishes.
const (
	PromoDelayMin    = 10 * time.Second
	PromoDelayJitter = 20 * time.Second
)

// Promo schedules the one-shot promotional popup.
type Promo struct {
	mu     sync.Mutex
	timer  *time.Timer
	shown  bool
	closed bool
}

// NewPromo creates an unscheduled promo.
func NewPromo() *Promo { return &Promo{} }

// Schedule arms the popup at a randomized delay. Scheduling after the
// popup was shown or dismissed is a no-op.
func (p *Promo) Schedule(onShow func()) {
	delay := PromoDelayMin + time.Duration(rand.Int63n(int64(PromoDelayJitter)))
	p.ScheduleAfter(delay, onShow)
}

// ScheduleAfter arms the popup at a fixed delay. Split out so tests can
// use short delays.
func (p *Promo) ScheduleAfter(delay time.Duration, onShow func()) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.shown || p.closed || p.timer != nil {
		return
	}
	p.timer = time.AfterFunc(delay, func() {
		p.mu.Lock()
		if p.shown || p.closed {
			p.mu.Unlock()
			return
		}
		p.shown = true
		p.mu.Unlock()
		onShow()
	})
}

// Dismiss marks the popup as handled so it never reappears this
// session.
func (p *Promo) Dismiss() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.shown = true
	if p.timer != nil {
		p.timer.Stop()
		p.timer = nil
	}
}

// Close cancels the pending timer on shell teardown.
func (p *Promo) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	if p.timer != nil {
		p.timer.Stop()
		p.timer = nil
	}
}
