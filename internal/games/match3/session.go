package match3

import (
	"fmt"
	"sync"
)

// ScorePerTile is the default score for each cleared tile.
const ScorePerTile = 10

// Rules holds the session parameters that come from config.
type Rules struct {
	Width               int
	Kinds               int
	DurationSeconds     int
	ScorePerTile        int
	SwapPolicy          SwapPolicy
	GuardInitialMatches bool
	MaxSettlePasses     int
}

// DefaultRules returns the classic 8×8, nine kind, three minute game.
func DefaultRules() Rules {
	return Rules{
		Width:           8,
		Kinds:           9,
		DurationSeconds: DefaultDurationSeconds,
		ScorePerTile:    ScorePerTile,
		SwapPolicy:      SwapKeep,
		MaxSettlePasses: DefaultMaxSettlePasses,
	}
}

// Validate reports the first rule that cannot produce a playable session.
func (r Rules) Validate() error {
	switch {
	case r.Width < MinWidth:
		return fmt.Errorf("match3: width %d below minimum %d", r.Width, MinWidth)
	case r.Kinds < 3:
		return fmt.Errorf("match3: %d tile kinds, need at least 3", r.Kinds)
	case r.Kinds > 255:
		return fmt.Errorf("match3: %d tile kinds, at most 255 supported", r.Kinds)
	case r.DurationSeconds <= 0:
		return fmt.Errorf("match3: duration must be positive, got %d", r.DurationSeconds)
	case r.ScorePerTile <= 0:
		return fmt.Errorf("match3: score per tile must be positive, got %d", r.ScorePerTile)
	}
	if _, err := ParseSwapPolicy(string(r.SwapPolicy)); err != nil {
		return err
	}
	return nil
}

// EventKind identifies a recorded session event.
type EventKind string

const (
	EventStart EventKind = "start"
	EventSwap  EventKind = "swap"
	EventWave  EventKind = "wave"
	EventEnd   EventKind = "end"
)

// Event is one entry for a Recorder.
type Event struct {
	Kind    EventKind
	From    int // Swap source cell, -1 otherwise
	To      int // Swap target cell, -1 otherwise
	Applied bool
	Cleared int // Tiles cleared by this swap or wave
	Wave    int // 1-based cascade wave number within its settle
	Score   int // Session score after the event
	Seconds int // Remaining seconds when the event happened
}

// Recorder receives session events. Implementations must not call back
// into the session.
type Recorder interface {
	Record(Event) error
}

// Session owns one game: the board, its tile generator, the clock, the score
// and the current selection. All methods are safe for concurrent use; each
// runs to completion before the next starts, so callers never observe a
// board mid-cascade.
type Session struct {
	mu sync.Mutex

	rules     Rules
	board     Board
	gen       *Generator
	clock     *Clock
	score     int
	selection int

	moves       int
	cleared     int
	lastCascade int
	bestCascade int

	recorder    Recorder
	recordErr   error
	subscribers []func(Snapshot)
}

// NewSession fills a fresh board from rng and settles it. Runs present
// after the initial fill are cleared and scored unless the rules guard
// against them.
func NewSession(rules Rules, rng IntnSource, rec Recorder) (*Session, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	if rules.SwapPolicy == "" {
		rules.SwapPolicy = SwapKeep
	}

	s := &Session{
		rules:     rules,
		board:     NewBoard(rules.Width),
		gen:       NewGenerator(rng, rules.Kinds),
		clock:     NewClock(rules.DurationSeconds),
		selection: NoSelection,
		recorder:  rec,
	}
	s.gen.Fill(s.board, rules.GuardInitialMatches)
	s.record(Event{Kind: EventStart, From: -1, To: -1, Seconds: s.clock.Remaining()})
	s.settleLocked()
	return s, nil
}

// Rules returns the rules the session was created with.
func (s *Session) Rules() Rules {
	return s.rules
}

// Subscribe registers fn to receive a snapshot after every state change.
// fn runs with the session locked and must not call back into it.
func (s *Session) Subscribe(fn func(Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// Snapshot returns the current state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// RecordErr returns the first error a Recorder reported, if any.
// Recording failures never interrupt play.
func (s *Session) RecordErr() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.recordErr
}

// RequestSwap asks to exchange the tiles at a and b.
//
// The selection is cleared whatever the outcome. Nothing else changes if the
// session has ended or the cells are not distinct, in range and adjacent.
// Otherwise the swap is resolved under the session's swap policy, cleared
// tiles are scored, and the board is settled before returning.
func (s *Session) RequestSwap(a, b int) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	hadSelection := s.selection != NoSelection
	s.selection = NoSelection
	if s.clock.Ended() {
		if hadSelection {
			s.publishLocked()
		}
		return s.snapshotLocked()
	}

	s.swapLocked(a, b)
	s.publishLocked()
	return s.snapshotLocked()
}

// Select applies a pick on cell i, the way a click on the board works:
// with nothing selected, i becomes the selection; picking the selected cell
// again drops it; picking a neighbour of the selection swaps the two; any
// other cell becomes the new selection. Empty or out-of-range cells and
// ended sessions are ignored.
func (s *Session) Select(i int) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.clock.Ended() || !s.board.InBounds(i) || s.board.At(i).IsEmpty() {
		return s.snapshotLocked()
	}

	switch {
	case s.selection == NoSelection:
		s.selection = i
	case s.selection == i:
		s.selection = NoSelection
	case s.board.AreAdjacent(s.selection, i):
		from := s.selection
		s.selection = NoSelection
		s.swapLocked(from, i)
	default:
		s.selection = i
	}

	s.publishLocked()
	return s.snapshotLocked()
}

// Tick advances the clock by delta seconds. The tick that ends the session
// also drops any selection.
func (s *Session) Tick(delta int) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.clock.Ended() || delta <= 0 {
		return s.snapshotLocked()
	}

	if s.clock.Tick(delta) {
		s.selection = NoSelection
		s.record(Event{Kind: EventEnd, From: -1, To: -1, Score: s.score})
	}
	s.publishLocked()
	return s.snapshotLocked()
}

// Settle runs gravity, refill and cascade clearing until the board is full
// and free of runs. RequestSwap and Select already settle; this is for
// callers that change the board's surroundings, such as a scheduler that
// settles on its own cadence.
func (s *Session) Settle() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.clock.Ended() {
		return s.snapshotLocked()
	}
	if waves := s.settleLocked(); waves > 0 {
		s.noteCascade(waves)
		s.publishLocked()
	}
	return s.snapshotLocked()
}

// swapLocked resolves one swap and settles. The caller holds s.mu.
func (s *Session) swapLocked(a, b int) {
	next, res := Swap(s.board, a, b, s.rules.SwapPolicy)
	if !res.Valid() {
		return
	}

	s.board = next
	s.addScore(res.Cleared)
	if res.Applied {
		s.moves++
	}
	s.record(Event{
		Kind:    EventSwap,
		From:    a,
		To:      b,
		Applied: res.Applied,
		Cleared: res.Cleared,
		Score:   s.score,
		Seconds: s.clock.Remaining(),
	})

	waves := 0
	if res.Cleared > 0 {
		waves = 1
	}
	waves += s.settleLocked()
	s.noteCascade(waves)
}

func (s *Session) noteCascade(waves int) {
	s.lastCascade = waves
	if waves > s.bestCascade {
		s.bestCascade = waves
	}
}

// settleLocked settles the board, scores every wave and returns the number
// of waves. The caller holds s.mu.
func (s *Session) settleLocked() int {
	rep := Settle(s.board, s.gen, s.rules.MaxSettlePasses)
	for n, cleared := range rep.Waves {
		s.addScore(cleared)
		s.record(Event{
			Kind:    EventWave,
			From:    -1,
			To:      -1,
			Cleared: cleared,
			Wave:    n + 1,
			Score:   s.score,
			Seconds: s.clock.Remaining(),
		})
	}
	return len(rep.Waves)
}

func (s *Session) addScore(cleared int) {
	s.score += s.rules.ScorePerTile * cleared
	s.cleared += cleared
}

func (s *Session) record(ev Event) {
	if s.recorder == nil {
		return
	}
	if err := s.recorder.Record(ev); err != nil && s.recordErr == nil {
		s.recordErr = err
	}
}

func (s *Session) publishLocked() {
	if len(s.subscribers) == 0 {
		return
	}
	snap := s.snapshotLocked()
	for _, fn := range s.subscribers {
		fn(snap)
	}
}
