package match3

import (
	"strings"
	"testing"
)

// seqSource returns a fixed sequence of values, cycling when exhausted.
type seqSource struct {
	vals []int
	pos  int
}

func (s *seqSource) Intn(n int) int {
	v := s.vals[s.pos%len(s.vals)]
	s.pos++
	return v % n
}

// mustBoard builds a board from rows of digits, '.' for an empty cell.
func mustBoard(t *testing.T, rows ...string) Board {
	t.Helper()
	w := len(rows)
	cells := make([]Tile, 0, w*w)
	for _, row := range rows {
		if len(row) != w {
			t.Fatalf("row %q has %d cells, want %d", row, len(row), w)
		}
		for _, ch := range row {
			if ch == '.' {
				cells = append(cells, Empty)
				continue
			}
			cells = append(cells, Tile(ch-'0'))
		}
	}
	b, err := NewBoardFromCells(w, cells)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func boardRows(rows ...string) string {
	return strings.Join(rows, "\n")
}

// newTestSession wraps a prepared board in an active session without
// the initial fill and settle.
func newTestSession(rules Rules, b Board, rng IntnSource) *Session {
	if rules.SwapPolicy == "" {
		rules.SwapPolicy = SwapKeep
	}
	return &Session{
		rules:     rules,
		board:     b,
		gen:       NewGenerator(rng, rules.Kinds),
		clock:     NewClock(rules.DurationSeconds),
		selection: NoSelection,
	}
}

func testRules(width int) Rules {
	r := DefaultRules()
	r.Width = width
	return r
}
