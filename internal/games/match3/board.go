package match3

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-match3/internal/core"
)

// MinWidth is the smallest board on which a run of three fits.
const MinWidth = 3

// Board is a square grid of tiles stored row-major.
// Index i maps to row i/width and column i%width.
// Copies of a Board value share cells; use Clone for an independent board.
type Board struct {
	width int
	cells []Tile
}

// NewBoard creates an empty width×width board.
func NewBoard(width int) Board {
	if width < MinWidth {
		panic(fmt.Sprintf("match3: board width %d below minimum %d", width, MinWidth))
	}
	return Board{
		width: width,
		cells: make([]Tile, width*width),
	}
}

// NewBoardFromCells creates a board from a row-major cell list.
// The list length must be a perfect square of at least MinWidth².
func NewBoardFromCells(width int, cells []Tile) (Board, error) {
	if width < MinWidth {
		return Board{}, fmt.Errorf("match3: board width %d below minimum %d", width, MinWidth)
	}
	if len(cells) != width*width {
		return Board{}, fmt.Errorf("match3: %d cells for width %d, want %d", len(cells), width, width*width)
	}
	b := NewBoard(width)
	copy(b.cells, cells)
	return b, nil
}

// Width returns the number of rows and columns.
func (b Board) Width() int {
	return b.width
}

// Len returns the number of cells (width²).
func (b Board) Len() int {
	return len(b.cells)
}

// At returns the tile at index i.
func (b Board) At(i int) Tile {
	return b.cells[i]
}

// Set stores t at index i.
func (b Board) Set(i int, t Tile) {
	b.cells[i] = t
}

// Index converts a row and column to a cell index.
func (b Board) Index(row, col int) int {
	return row*b.width + col
}

// RowCol converts a cell index to its row and column.
func (b Board) RowCol(i int) (row, col int) {
	return i / b.width, i % b.width
}

// InBounds reports whether i addresses a cell.
func (b Board) InBounds(i int) bool {
	return i >= 0 && i < len(b.cells)
}

// Clone returns a deep copy.
func (b Board) Clone() Board {
	c := Board{width: b.width, cells: make([]Tile, len(b.cells))}
	copy(c.cells, b.cells)
	return c
}

// Cells returns a copy of the cells in row-major order.
func (b Board) Cells() []Tile {
	out := make([]Tile, len(b.cells))
	copy(out, b.cells)
	return out
}

// Equal reports whether two boards have the same width and tiles.
func (b Board) Equal(other Board) bool {
	if b.width != other.width || len(b.cells) != len(other.cells) {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// EmptyCount returns the number of empty cells.
func (b Board) EmptyCount() int {
	n := 0
	for _, t := range b.cells {
		if t.IsEmpty() {
			n++
		}
	}
	return n
}

// IsFull reports whether every cell holds a tile.
func (b Board) IsFull() bool {
	return b.EmptyCount() == 0
}

// String renders the board as rows of kind numbers, '.' for empty cells.
// Kinds are written as one base-36 digit (10 is 'a', 35 is 'z'); larger
// kinds are written in decimal between parentheses.
func (b Board) String() string {
	var sb strings.Builder
	for i, t := range b.cells {
		if i > 0 && i%b.width == 0 {
			sb.WriteByte('\n')
		}
		switch {
		case t.IsEmpty():
			sb.WriteByte('.')
		case t < 36:
			sb.WriteString(strconv.FormatInt(int64(t), 36))
		default:
			sb.WriteByte('(')
			sb.WriteString(strconv.Itoa(int(t)))
			sb.WriteByte(')')
		}
	}
	return sb.String()
}

// AreAdjacent reports whether i and j are orthogonal neighbours:
// same row one column apart, or same column one row apart.
func (b Board) AreAdjacent(i, j int) bool {
	if !b.InBounds(i) || !b.InBounds(j) {
		return false
	}
	r1, c1 := b.RowCol(i)
	r2, c2 := b.RowCol(j)
	if r1 == r2 {
		return core.Abs(c1-c2) == 1
	}
	if c1 == c2 {
		return core.Abs(r1-r2) == 1
	}
	return false
}
