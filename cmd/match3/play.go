package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/games/match3"
	"github.com/vovakirdan/tui-match3/internal/platform/tui"
	"github.com/vovakirdan/tui-match3/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a game variant",
	Long: `Start playing. The variant defaults to "match3".

Variants:
  match3         - Swaps that form no line stay on the board
  match3_strict  - Swaps that form no line are undone

Controls:
  Arrows/WASD    - Move the cursor
  Space/Enter    - Pick the tile under the cursor
  Mouse click    - Pick a tile
  P              - Pause
  R              - Restart (after time is up)
  Esc            - Leave (when paused or finished)
  Q/Ctrl+C       - Quit

Picking a tile selects it; picking a neighbour swaps the two; picking the
selected tile again drops the selection.

Examples:
  match3 play
  match3 play match3_strict
  match3 play --seed 42 --config ./my-match3.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := match3.GameID
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q (run 'match3 list' to see variants)", gameID)
	}

	// Surface config problems before entering the alt screen
	if flagConfig != "" {
		if _, err := config.LoadMatch3(flagConfig); err != nil {
			return err
		}
	}

	logger, closeLog, err := newLogger("match3", true)
	if err != nil {
		return err
	}
	defer closeLog()

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	cfg := runtimeConfig()
	logger.Info("starting game", "game", gameID, "screen", fmt.Sprintf("%dx%d", cfg.ScreenW, cfg.ScreenH))
	if err := tui.Run(game, cfg, logger); err != nil {
		return fmt.Errorf("game error: %w", err)
	}
	return nil
}

// runtimeConfig builds the runtime config from flags and the terminal size.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}
