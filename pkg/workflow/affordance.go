package workflow

import (
	"fmt"
	"sync"
	"time"
)

// DefaultHideDelay is how long the sample affordance stays visible after the
// pointer leaves.
const DefaultHideDelay = 300 * time.Millisecond

// AffordanceState is the state of a SampleAffordance.
type AffordanceState int

const (
	Idle AffordanceState = iota
	Shown
	PendingHide
)

func (s AffordanceState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Shown:
		return "shown"
	case PendingHide:
		return "pending-hide"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Timer is a cancellable pending call.
type Timer interface {
	Stop() bool
}

// Scheduler runs fn once after d.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

type realScheduler struct{}

func (realScheduler) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}

// AffordanceOption customises a SampleAffordance.
type AffordanceOption func(*SampleAffordance)

// WithHideDelay overrides DefaultHideDelay.
func WithHideDelay(d time.Duration) AffordanceOption {
	return func(a *SampleAffordance) {
		if d > 0 {
			a.delay = d
		}
	}
}

// WithScheduler replaces the wall-clock scheduler.
func WithScheduler(s Scheduler) AffordanceOption {
	return func(a *SampleAffordance) {
		if s != nil {
			a.scheduler = s
		}
	}
}

// WithVisibilityHook registers fn to observe visibility flips. It runs with
// the affordance lock released.
func WithVisibilityHook(fn func(visible bool)) AffordanceOption {
	return func(a *SampleAffordance) {
		a.onChange = fn
	}
}

// SampleAffordance drives the hover-revealed "Create Sample Resume" option:
//
//	Idle --Enter--> Shown --Leave--> PendingHide --timer--> Idle
//	PendingHide --Enter--> Shown (timer cancelled)
//	PendingHide --Leave--> PendingHide (timer restarted)
//
// At most one hide timer is outstanding. Methods are safe to call from the
// timer goroutine and the caller concurrently.
type SampleAffordance struct {
	mu         sync.Mutex
	state      AffordanceState
	timer      Timer
	generation uint64
	delay      time.Duration
	scheduler  Scheduler
	onChange   func(visible bool)
}

// NewSampleAffordance returns an idle affordance.
func NewSampleAffordance(opts ...AffordanceOption) *SampleAffordance {
	a := &SampleAffordance{delay: DefaultHideDelay, scheduler: realScheduler{}}
	for _, opt := range opts {
		if opt != nil {
			opt(a)
		}
	}
	return a
}

// State reports the current state.
func (a *SampleAffordance) State() AffordanceState {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

// Visible reports whether the sample option is on screen.
func (a *SampleAffordance) Visible() bool {
	return a.State() != Idle
}

// Enter cancels any pending hide and shows the option.
func (a *SampleAffordance) Enter() {
	a.mu.Lock()
	a.cancelLocked()
	changed := a.state == Idle
	a.state = Shown
	a.mu.Unlock()
	a.notify(changed, true)
}

// Leave schedules a hide after the configured delay, replacing any pending
// one. Leaving while idle does nothing.
func (a *SampleAffordance) Leave() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.state == Idle {
		return
	}
	a.cancelLocked()
	generation := a.generation
	a.state = PendingHide
	a.timer = a.scheduler.AfterFunc(a.delay, func() { a.expire(generation) })
}

// Reset hides the option immediately and drops any pending timer.
func (a *SampleAffordance) Reset() {
	a.mu.Lock()
	a.cancelLocked()
	changed := a.state != Idle
	a.state = Idle
	a.mu.Unlock()
	a.notify(changed, false)
}

func (a *SampleAffordance) expire(generation uint64) {
	a.mu.Lock()
	if generation != a.generation || a.state != PendingHide {
		a.mu.Unlock()
		return
	}
	a.state = Idle
	a.timer = nil
	a.mu.Unlock()
	a.notify(true, false)
}

// cancelLocked stops the pending timer and invalidates its callback in case it
// already fired and is waiting on the lock.
func (a *SampleAffordance) cancelLocked() {
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
	a.generation++
}

func (a *SampleAffordance) notify(changed, visible bool) {
	if changed && a.onChange != nil {
		a.onChange(visible)
	}
}
