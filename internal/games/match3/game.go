// Package match3 implements a tile-matching puzzle: a square board of typed
// tiles where swapping two neighbours to line up three or more of a kind
// clears them, the tiles above fall into the gaps and new tiles drop in from
// the top, all against a countdown clock.
//
// The engine (Board, FindMatches, Swap, Settle, Clock, Session) has no
// dependency on the terminal. Game adapts a Session to the fixed-tick game loop.
package match3

import (
	"math/rand"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Game IDs.
const (
	GameID       = "match3"
	StrictGameID = "match3_strict"
)

// Game runs a Session inside the fixed-tick game loop.
type Game struct {
	strict bool

	cfg      config.Match3Config
	rules    Rules
	session  *Session
	snap     Snapshot
	recorder Recorder

	tickRate int
	frames   int // Frames since the clock last advanced
	cursor   int
	paused   bool

	screenW  int
	screenH  int
	tooSmall bool
	board    core.Rect // Screen area of the tile grid, excluding the border
}

// New creates a game that keeps unmatched swaps.
func New() *Game {
	return &Game{}
}

// NewStrict creates a game that reverts swaps forming no run.
func NewStrict() *Game {
	return &Game{strict: true}
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
	registry.Register(StrictGameID, func() registry.Game {
		return NewStrict()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.strict {
		return StrictGameID
	}
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.strict {
		return "Match 3 (Strict)"
	}
	return "Match 3"
}

// SetRecorder attaches a recorder to sessions started by later Resets.
func (g *Game) SetRecorder(rec Recorder) {
	g.recorder = rec
}

// RulesFromConfig converts loaded configuration into session rules.
func RulesFromConfig(cfg config.Match3Config) (Rules, error) {
	policy, err := ParseSwapPolicy(cfg.Rules.SwapPolicy)
	if err != nil {
		return Rules{}, err
	}
	r := Rules{
		Width:               cfg.Board.Width,
		Kinds:               len(cfg.Board.Palette),
		DurationSeconds:     cfg.Session.DurationSeconds,
		ScorePerTile:        cfg.Session.ScorePerTile,
		SwapPolicy:          policy,
		GuardInitialMatches: cfg.Rules.GuardInitialMatches,
		MaxSettlePasses:     cfg.Rules.MaxSettlePasses,
	}
	return r, r.Validate()
}

// Reset starts a new session.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	mcfg, err := config.LoadMatch3(configPath)
	if err != nil {
		mcfg = config.DefaultMatch3Config()
	}
	rules, err := RulesFromConfig(mcfg)
	if err != nil {
		mcfg = config.DefaultMatch3Config()
		rules, _ = RulesFromConfig(mcfg)
	}
	if g.strict {
		rules.SwapPolicy = SwapRevert
	}

	g.cfg = mcfg
	g.rules = rules
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}
	g.frames = 0
	g.paused = false

	// Rules were validated above, so this cannot fail.
	g.session, _ = NewSession(rules, rand.New(rand.NewSource(cfg.Seed)), g.recorder)
	g.snap = g.session.Snapshot()
	g.cursor = g.centerCell()

	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize adapts the layout to a new screen size without restarting.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.layout()
}

// Session returns the running session.
func (g *Game) Session() *Session {
	return g.session
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.session == nil || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if g.snap.Ended() {
		return core.StepResult{State: g.State()}
	}

	// Handle pause
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.moveCursor(in)

	if in.Has(core.ActionSelect) || in.Has(core.ActionConfirm) {
		g.snap = g.session.Select(g.cursor)
	}
	for _, p := range in.Clicks {
		g.Click(p.X, p.Y)
	}

	// Advance the clock once per second of frames
	g.frames++
	if g.frames >= g.tickRate {
		g.frames = 0
		g.snap = g.session.Tick(1)
	}

	return core.StepResult{State: g.State()}
}

// Click picks the tile under screen cell (x, y), if any.
func (g *Game) Click(x, y int) {
	if g.session == nil || g.paused || g.tooSmall {
		return
	}
	idx, ok := g.CellAt(x, y)
	if !ok {
		return
	}
	g.cursor = idx
	g.snap = g.session.Select(idx)
}

// CellAt maps a screen position to a board index.
func (g *Game) CellAt(x, y int) (int, bool) {
	col, row, ok := g.board.Slot(x, y, cellWidth, 1)
	if !ok {
		return 0, false
	}
	return row*g.rules.Width + col, true
}

func (g *Game) moveCursor(in core.InputFrame) {
	w := g.rules.Width
	row, col := g.cursor/w, g.cursor%w
	switch {
	case in.Has(core.ActionUp):
		row--
	case in.Has(core.ActionDown):
		row++
	case in.Has(core.ActionLeft):
		col--
	case in.Has(core.ActionRight):
		col++
	}
	row = core.Clamp(row, 0, w-1)
	col = core.Clamp(col, 0, w-1)
	g.cursor = row*w + col
}

func (g *Game) centerCell() int {
	w := g.rules.Width
	return (w/2)*w + w/2
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.snap.Score,
		GameOver: g.snap.Ended(),
		Paused:   g.paused || g.tooSmall,
	}
}
