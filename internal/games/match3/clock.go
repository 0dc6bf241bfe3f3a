package match3

// DefaultDurationSeconds is the length of a session.
const DefaultDurationSeconds = 180

// Phase is the session lifecycle state.
type Phase int

const (
	PhaseActive Phase = iota
	PhaseEnded
)

func (p Phase) String() string {
	switch p {
	case PhaseActive:
		return "active"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Clock counts a session down in whole seconds. It is driven from outside
// through Tick; it holds no timer of its own.
type Clock struct {
	initial   int
	remaining int
	phase     Phase
}

// NewClock returns an active clock with the given duration.
// A non-positive duration yields a clock that has already ended.
func NewClock(seconds int) *Clock {
	c := &Clock{initial: seconds, remaining: seconds}
	if seconds <= 0 {
		c.initial, c.remaining = 0, 0
		c.phase = PhaseEnded
	}
	return c
}

// Tick advances the clock by delta seconds. Remaining time never drops
// below zero. Returns true only on the tick that ends the session; once
// ended the clock stays ended and further ticks do nothing.
func (c *Clock) Tick(delta int) bool {
	if c.phase == PhaseEnded || delta <= 0 {
		return false
	}
	c.remaining -= delta
	if c.remaining > 0 {
		return false
	}
	c.remaining = 0
	c.phase = PhaseEnded
	return true
}

// Remaining returns the seconds left.
func (c *Clock) Remaining() int {
	return c.remaining
}

// Initial returns the configured duration.
func (c *Clock) Initial() int {
	return c.initial
}

// Phase returns the lifecycle state.
func (c *Clock) Phase() Phase {
	return c.phase
}

// Ended reports whether time has run out.
func (c *Clock) Ended() bool {
	return c.phase == PhaseEnded
}
