package turntimer

import "time"

// DefaultSeconds is how long a seat has to act
const DefaultSeconds = 30

// Timer is the countdown for the seat that is on the clock
// A table owns one Timer, so at most one countdown is ever active
type Timer struct {
	scheduler Scheduler
	seconds   int
	interval  time.Duration
	active    *countdown
}

type countdown struct {
	playerID  int64
	remaining int
	stopper   Stopper
	cancelled bool
	onTick    func(remaining int)
	onExpire  func()
}

// New returns a timer that counts down from seconds, one step per interval
func New(scheduler Scheduler, seconds int, interval time.Duration) *Timer {
	if seconds <= 0 {
		seconds = DefaultSeconds
	}

	if interval <= 0 {
		interval = time.Second
	}

	return &Timer{
		scheduler: scheduler,
		seconds:   seconds,
		interval:  interval,
	}
}

// Start begins a countdown for playerID, replacing any active countdown
// onTick is called immediately and then once per interval with the time remaining,
// onExpire is called right after the tick that reports zero
func (t *Timer) Start(playerID int64, onTick func(remaining int), onExpire func()) {
	t.Cancel()

	c := &countdown{
		playerID:  playerID,
		remaining: t.seconds,
		onTick:    onTick,
		onExpire:  onExpire,
	}

	t.active = c
	t.tick(c)
}

func (t *Timer) tick(c *countdown) {
	// a callback can still arrive after Stop() lost the race with the scheduler
	if c.cancelled || t.active != c {
		return
	}

	c.onTick(c.remaining)
	if c.remaining > 0 {
		c.remaining--
		c.stopper = t.scheduler.AfterFunc(t.interval, func() {
			t.tick(c)
		})

		return
	}

	t.active = nil
	c.onExpire()
}

// Cancel stops the active countdown and reports zero time remaining
// Returns false if nothing was running
func (t *Timer) Cancel() bool {
	c := t.active
	if c == nil {
		return false
	}

	t.active = nil
	c.cancelled = true
	if c.stopper != nil {
		c.stopper.Stop()
	}

	c.onTick(0)
	return true
}

// CancelFor stops the active countdown only if it belongs to playerID
func (t *Timer) CancelFor(playerID int64) bool {
	if t.active == nil || t.active.playerID != playerID {
		return false
	}

	return t.Cancel()
}

// Active returns who is on the clock and how much time they have left
func (t *Timer) Active() (playerID int64, remaining int, ok bool) {
	if t.active == nil {
		return 0, 0, false
	}

	return t.active.playerID, t.active.remaining, true
}

// Seconds returns the length of a full countdown
func (t *Timer) Seconds() int {
	return t.seconds
}
