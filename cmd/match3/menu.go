package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a variant picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a variant.
Press Esc when paused or when time is up to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select variant
  Q            - Quit

Examples:
  match3 menu
  match3 menu --fps 30
  match3 menu --log-file ./match3.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
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

	if err := tui.RunMenu(runtimeConfig(), logger); err != nil {
		return fmt.Errorf("menu error: %w", err)
	}
	return nil
}
