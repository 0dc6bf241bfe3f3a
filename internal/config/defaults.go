package config

import (
	_ "embed"
)

//go:embed defaults/match3.yaml
var defaultMatch3YAML []byte

// DefaultMatch3Config returns the built-in configuration: an 8×8 board of
// nine candy kinds and a three minute session.
func DefaultMatch3Config() Match3Config {
	return Match3Config{
		Board: BoardConfig{
			Width: 8,
			Palette: []TileKind{
				{Name: "chocolate_bar", Glyph: "■", Color: "orange"},
				{Name: "chocolate_chip", Glyph: "●", Color: "yellow"},
				{Name: "dark_chocolate", Glyph: "▲", Color: "red"},
				{Name: "lollipop", Glyph: "◆", Color: "bright_magenta"},
				{Name: "candy_cane", Glyph: "♥", Color: "bright_red"},
				{Name: "jawbreaker", Glyph: "◉", Color: "bright_blue"},
				{Name: "caramel", Glyph: "★", Color: "bright_yellow"},
				{Name: "sour_candy", Glyph: "♣", Color: "bright_green"},
				{Name: "gummi_bear", Glyph: "♠", Color: "cyan"},
			},
		},
		Session: SessionConfig{
			DurationSeconds: 180,
			ScorePerTile:    10,
		},
		Rules: RulesConfig{
			SwapPolicy:          SwapPolicyKeep,
			GuardInitialMatches: false,
			MaxSettlePasses:     256,
		},
	}
}
