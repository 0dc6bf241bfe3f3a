package main

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/games/match3"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

var (
	flagMoves    int
	flagStrict   bool
	flagUntilEnd bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Play random swaps without a terminal UI",
	Long: `Run a session headless: request random neighbouring swaps, then print
the final board, the score and the session journal summary.

Each swap costs one second of clock time, so a default 180 second session
ends after 180 swaps when --until-end is set.

Examples:
  match3 simulate
  match3 simulate --moves 500 --seed 7
  match3 simulate --strict --until-end --config ./my-match3.yaml`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagMoves, "moves", 50, "Number of swaps to request")
	simulateCmd.Flags().BoolVar(&flagStrict, "strict", false, "Revert swaps that form no run")
	simulateCmd.Flags().BoolVar(&flagUntilEnd, "until-end", false, "Keep swapping until the clock runs out")
}

func runSimulate(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger("match3-sim", false)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := config.LoadMatch3(flagConfig)
	if err != nil {
		return err
	}
	rules, err := match3.RulesFromConfig(cfg)
	if err != nil {
		return err
	}
	gameID := match3.GameID
	if flagStrict {
		rules.SwapPolicy = match3.SwapRevert
		gameID = match3.StrictGameID
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	journal, err := storage.OpenJournal(gameID)
	if err != nil {
		return err
	}
	defer journal.Close()

	session, err := match3.NewSession(rules, rng, journal)
	if err != nil {
		return err
	}
	snapshots := 0
	session.Subscribe(func(match3.Snapshot) { snapshots++ })

	logger.Debug("simulation started", "game", gameID, "seed", seed, "width", rules.Width, "kinds", rules.Kinds)

	requested := 0
	for {
		if session.Snapshot().Ended() {
			break
		}
		if !flagUntilEnd && requested >= flagMoves {
			break
		}
		a, b := randomNeighbours(rng, rules.Width)
		snap := session.RequestSwap(a, b)
		requested++
		logger.Debug("swap", "from", a, "to", b, "score", snap.Score, "cascade", snap.LastCascade)
		session.Tick(1)
	}

	if err := session.RecordErr(); err != nil {
		logger.Warn("journal write failed", "error", err)
	}

	snap := session.Snapshot()
	fmt.Println(renderBoard(snap, cfg.Board.Palette))
	fmt.Println()
	fmt.Printf("Seed:         %d\n", seed)
	fmt.Printf("State:        %s (%ds left)\n", snap.State, snap.RemainingSeconds)
	fmt.Printf("Score:        %d\n", snap.Score)
	fmt.Printf("Moves:        %d of %d requested\n", snap.Moves, requested)
	fmt.Printf("Tiles:        %d cleared\n", snap.Cleared)
	fmt.Printf("Best combo:   x%d\n", snap.BestCascade)
	fmt.Printf("Snapshots:    %d\n", snapshots)

	sum, err := journal.Summary()
	if err != nil {
		return fmt.Errorf("reading journal: %w", err)
	}
	fmt.Println()
	fmt.Printf("Journal %s\n", sum.SessionID)
	fmt.Printf("  swaps %d (%d applied), waves %d, cleared %d, longest chain %d, final score %d, ended %t\n",
		sum.Swaps, sum.AppliedSwaps, sum.Waves, sum.Cleared, sum.LongestChain, sum.FinalScore, sum.Ended)

	logger.Info("simulation finished", "game", gameID, "score", snap.Score, "moves", snap.Moves)
	return nil
}

// randomNeighbours picks a random cell and one of its in-bounds neighbours.
func randomNeighbours(rng *rand.Rand, width int) (int, int) {
	row, col := rng.Intn(width), rng.Intn(width)
	switch rng.Intn(4) {
	case 0:
		if row > 0 {
			return row*width + col, (row-1)*width + col
		}
		return row*width + col, (row+1)*width + col
	case 1:
		if row < width-1 {
			return row*width + col, (row+1)*width + col
		}
		return row*width + col, (row-1)*width + col
	case 2:
		if col > 0 {
			return row*width + col, row*width + col - 1
		}
		return row*width + col, row*width + col + 1
	default:
		if col < width-1 {
			return row*width + col, row*width + col + 1
		}
		return row*width + col, row*width + col - 1
	}
}

// renderBoard draws the snapshot with palette glyphs, one row per line.
func renderBoard(snap match3.Snapshot, palette []config.TileKind) string {
	var sb strings.Builder
	for row := 0; row < snap.Width; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := 0; col < snap.Width; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			t := snap.Tile(row, col)
			switch {
			case t == match3.Empty:
				sb.WriteByte('.')
			case int(t) <= len(palette):
				sb.WriteRune(palette[t-1].GlyphRune())
			default:
				sb.WriteString(fmt.Sprint(int(t)))
			}
		}
	}
	return sb.String()
}
