// Package config provides YAML-based configuration loading for match3:
// board size, tile palette, session length and resolution rules.
package config

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/tui-match3/internal/core"
)

// Swap policy names.
const (
	SwapPolicyKeep   = "keep"
	SwapPolicyRevert = "revert"
)

// Match3Config contains all configuration for the match3 game.
type Match3Config struct {
	Board   BoardConfig   `yaml:"board"`
	Session SessionConfig `yaml:"session"`
	Rules   RulesConfig   `yaml:"rules"`
}

// BoardConfig defines the grid and the tile kinds dealt onto it.
type BoardConfig struct {
	Width   int        `yaml:"width"`
	Palette []TileKind `yaml:"palette"`
}

// TileKind is one palette entry. Kinds are numbered from 1 in list order.
type TileKind struct {
	Name  string `yaml:"name"`
	Glyph string `yaml:"glyph"`
	Color string `yaml:"color"`
}

// GlyphRune returns the glyph as a single rune.
func (k TileKind) GlyphRune() rune {
	r, _ := utf8.DecodeRuneInString(k.Glyph)
	return r
}

// ColorValue returns the parsed color, ColorDefault if unknown.
func (k TileKind) ColorValue() core.Color {
	c, _ := core.ParseColor(k.Color)
	return c
}

// SessionConfig defines timing and scoring.
type SessionConfig struct {
	DurationSeconds int `yaml:"duration_seconds"`
	ScorePerTile    int `yaml:"score_per_tile"`
}

// RulesConfig defines how swaps and cascades resolve.
type RulesConfig struct {
	SwapPolicy          string `yaml:"swap_policy"`
	GuardInitialMatches bool   `yaml:"guard_initial_matches"`
	MaxSettlePasses     int    `yaml:"max_settle_passes"`
}

// Validate returns the first problem that would make the config unplayable.
func (c Match3Config) Validate() error {
	if c.Board.Width < 3 {
		return fmt.Errorf("config: board.width must be at least 3, got %d", c.Board.Width)
	}
	if n := len(c.Board.Palette); n < 3 || n > 255 {
		return fmt.Errorf("config: board.palette needs 3 to 255 kinds, got %d", n)
	}

	seen := make(map[string]bool, len(c.Board.Palette))
	for i, k := range c.Board.Palette {
		name := strings.TrimSpace(k.Name)
		if name == "" {
			return fmt.Errorf("config: board.palette[%d]: name is empty", i)
		}
		if seen[name] {
			return fmt.Errorf("config: board.palette[%d]: duplicate name %q", i, name)
		}
		seen[name] = true

		if utf8.RuneCountInString(k.Glyph) != 1 {
			return fmt.Errorf("config: board.palette[%d] (%s): glyph must be one character, got %q", i, name, k.Glyph)
		}
		if _, ok := core.ParseColor(k.Color); !ok {
			return fmt.Errorf("config: board.palette[%d] (%s): unknown color %q", i, name, k.Color)
		}
	}

	if c.Session.DurationSeconds <= 0 {
		return fmt.Errorf("config: session.duration_seconds must be positive, got %d", c.Session.DurationSeconds)
	}
	if c.Session.ScorePerTile <= 0 {
		return fmt.Errorf("config: session.score_per_tile must be positive, got %d", c.Session.ScorePerTile)
	}

	switch c.Rules.SwapPolicy {
	case SwapPolicyKeep, SwapPolicyRevert, "":
	default:
		return fmt.Errorf("config: rules.swap_policy must be %q or %q, got %q",
			SwapPolicyKeep, SwapPolicyRevert, c.Rules.SwapPolicy)
	}
	if c.Rules.MaxSettlePasses < 0 {
		return fmt.Errorf("config: rules.max_settle_passes must not be negative, got %d", c.Rules.MaxSettlePasses)
	}
	return nil
}
