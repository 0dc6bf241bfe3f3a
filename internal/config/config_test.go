package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestDefaultMatch3ConfigIsValid(t *testing.T) {
	if err := DefaultMatch3Config().Validate(); err != nil {
		t.Fatalf("DefaultMatch3Config().Validate() = %v, want nil", err)
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := parseMatch3(defaultMatch3YAML)
	if err != nil {
		t.Fatalf("parse embedded default: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultMatch3Config()) {
		t.Errorf("embedded default = %+v, want %+v", cfg, DefaultMatch3Config())
	}
}

func TestLoadMatch3CustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := `
board:
  width: 5
  palette:
    - { name: a, glyph: "A", color: red }
    - { name: b, glyph: "B", color: green }
    - { name: c, glyph: "C", color: blue }
session:
  duration_seconds: 30
rules:
  swap_policy: revert
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadMatch3(path)
	if err != nil {
		t.Fatalf("LoadMatch3() error = %v", err)
	}
	if cfg.Board.Width != 5 {
		t.Errorf("Board.Width = %d, want 5", cfg.Board.Width)
	}
	if len(cfg.Board.Palette) != 3 {
		t.Errorf("len(Board.Palette) = %d, want 3", len(cfg.Board.Palette))
	}
	if cfg.Session.DurationSeconds != 30 {
		t.Errorf("Session.DurationSeconds = %d, want 30", cfg.Session.DurationSeconds)
	}
	// Not in the file, so the default survives.
	if cfg.Session.ScorePerTile != 10 {
		t.Errorf("Session.ScorePerTile = %d, want 10", cfg.Session.ScorePerTile)
	}
	if cfg.Rules.SwapPolicy != SwapPolicyRevert {
		t.Errorf("Rules.SwapPolicy = %q, want %q", cfg.Rules.SwapPolicy, SwapPolicyRevert)
	}
	if cfg.Rules.MaxSettlePasses != 256 {
		t.Errorf("Rules.MaxSettlePasses = %d, want 256", cfg.Rules.MaxSettlePasses)
	}
}

func TestLoadMatch3CustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadMatch3(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadMatch3(missing) should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("board: [not, a, map"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadMatch3(bad); err == nil {
		t.Error("LoadMatch3(malformed) should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("board:\n  width: 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadMatch3(invalid)
	if err == nil || !strings.Contains(err.Error(), "board.width") {
		t.Errorf("LoadMatch3(invalid) error = %v, want board.width error", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Match3Config)
		want   string // substring of the error, empty for valid
	}{
		{"default", func(*Match3Config) {}, ""},
		{"width too small", func(c *Match3Config) { c.Board.Width = 2 }, "board.width"},
		{"too few kinds", func(c *Match3Config) { c.Board.Palette = c.Board.Palette[:2] }, "3 to 255"},
		{"empty name", func(c *Match3Config) { c.Board.Palette[0].Name = " " }, "name is empty"},
		{"duplicate name", func(c *Match3Config) { c.Board.Palette[1].Name = c.Board.Palette[0].Name }, "duplicate"},
		{"long glyph", func(c *Match3Config) { c.Board.Palette[0].Glyph = "ab" }, "glyph"},
		{"empty glyph", func(c *Match3Config) { c.Board.Palette[0].Glyph = "" }, "glyph"},
		{"unknown color", func(c *Match3Config) { c.Board.Palette[0].Color = "plaid" }, "unknown color"},
		{"grey alias", func(c *Match3Config) { c.Board.Palette[0].Color = "Grey" }, ""},
		{"zero duration", func(c *Match3Config) { c.Session.DurationSeconds = 0 }, "duration_seconds"},
		{"zero score", func(c *Match3Config) { c.Session.ScorePerTile = 0 }, "score_per_tile"},
		{"bad policy", func(c *Match3Config) { c.Rules.SwapPolicy = "undo" }, "swap_policy"},
		{"empty policy", func(c *Match3Config) { c.Rules.SwapPolicy = "" }, ""},
		{"negative passes", func(c *Match3Config) { c.Rules.MaxSettlePasses = -1 }, "max_settle_passes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultMatch3Config()
			tt.modify(&cfg)
			err := cfg.Validate()
			if tt.want == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Validate() = %v, want error containing %q", err, tt.want)
			}
		})
	}
}

func TestTileKindAccessors(t *testing.T) {
	k := TileKind{Name: "heart", Glyph: "♥", Color: "bright_red"}
	if k.GlyphRune() != '♥' {
		t.Errorf("GlyphRune() = %q, want '♥'", k.GlyphRune())
	}
	if k.ColorValue() == 0 {
		t.Error("ColorValue() should resolve bright_red")
	}
}
