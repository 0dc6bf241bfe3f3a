package match3

import (
	"strings"
	"testing"
)

func TestNewBoard(t *testing.T) {
	b := NewBoard(8)
	if b.Width() != 8 {
		t.Errorf("Width() = %d, want 8", b.Width())
	}
	if b.Len() != 64 {
		t.Errorf("Len() = %d, want 64", b.Len())
	}
	if b.EmptyCount() != 64 {
		t.Errorf("EmptyCount() = %d, want 64", b.EmptyCount())
	}
}

func TestNewBoardPanicsBelowMinWidth(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewBoard(2) should panic")
		}
	}()
	NewBoard(2)
}

func TestNewBoardFromCells(t *testing.T) {
	if _, err := NewBoardFromCells(3, make([]Tile, 8)); err == nil {
		t.Error("expected error for 8 cells at width 3")
	}
	if _, err := NewBoardFromCells(2, make([]Tile, 4)); err == nil {
		t.Error("expected error for width 2")
	}

	cells := []Tile{1, 2, 3, 4, 5, 6, 7, 8, 9}
	b, err := NewBoardFromCells(3, cells)
	if err != nil {
		t.Fatal(err)
	}
	cells[0] = 9
	if b.At(0) != 1 {
		t.Error("board should not alias the input slice")
	}
}

func TestIndexRowCol(t *testing.T) {
	b := NewBoard(8)
	tests := []struct {
		i, row, col int
	}{
		{0, 0, 0},
		{7, 0, 7},
		{8, 1, 0},
		{63, 7, 7},
		{27, 3, 3},
	}
	for _, tt := range tests {
		row, col := b.RowCol(tt.i)
		if row != tt.row || col != tt.col {
			t.Errorf("RowCol(%d) = (%d, %d), want (%d, %d)", tt.i, row, col, tt.row, tt.col)
		}
		if got := b.Index(tt.row, tt.col); got != tt.i {
			t.Errorf("Index(%d, %d) = %d, want %d", tt.row, tt.col, got, tt.i)
		}
	}
}

func TestAreAdjacent(t *testing.T) {
	b := NewBoard(8)
	tests := []struct {
		name string
		i, j int
		want bool
	}{
		{"right neighbour", 0, 1, true},
		{"left neighbour", 1, 0, true},
		{"below", 0, 8, true},
		{"above", 8, 0, true},
		{"same cell", 5, 5, false},
		{"diagonal", 0, 9, false},
		{"two apart", 0, 2, false},
		{"row wrap", 7, 8, false},
		{"row wrap reversed", 8, 7, false},
		{"out of range", 63, 64, false},
		{"negative", -1, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.AreAdjacent(tt.i, tt.j); got != tt.want {
				t.Errorf("AreAdjacent(%d, %d) = %v, want %v", tt.i, tt.j, got, tt.want)
			}
		})
	}
}

func TestBoardCloneIsIndependent(t *testing.T) {
	b := mustBoard(t, "123", "456", "789")
	c := b.Clone()
	c.Set(0, 9)
	if b.At(0) != 1 {
		t.Error("modifying a clone changed the original")
	}
	if b.Equal(c) {
		t.Error("Equal() = true after divergence")
	}
	if !b.Equal(b.Clone()) {
		t.Error("Equal() = false for a fresh clone")
	}
}

func TestBoardString(t *testing.T) {
	b := mustBoard(t, "12.", "345", "..9")
	want := boardRows("12.", "345", "..9")
	if got := b.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	tests := []struct {
		kind Tile
		want string
	}{
		{10, "a2."},
		{35, "z2."},
		{36, "(36)2."},
		{255, "(255)2."},
	}
	for _, tt := range tests {
		b.Set(0, tt.kind)
		if got := strings.SplitN(b.String(), "\n", 2)[0]; got != tt.want {
			t.Errorf("kind %d: first row = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
