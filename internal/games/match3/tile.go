package match3

// Tile is a tile kind. Kinds are numbered 1..N in palette order; Empty marks
// a cell whose tile has been cleared and not yet replaced.
type Tile uint8

// Empty is the marker for a cell without a tile.
const Empty Tile = 0

// IsEmpty reports whether the cell holds no tile.
func (t Tile) IsEmpty() bool {
	return t == Empty
}

// IntnSource is the slice of *rand.Rand the generator needs.
type IntnSource interface {
	Intn(n int) int
}

// Generator draws tile kinds uniformly from a fixed palette.
type Generator struct {
	rng   IntnSource
	kinds int
}

// NewGenerator returns a generator over kinds 1..kinds.
// kinds must be positive.
func NewGenerator(rng IntnSource, kinds int) *Generator {
	if kinds < 1 {
		panic("match3: generator needs at least one tile kind")
	}
	return &Generator{rng: rng, kinds: kinds}
}

// Kinds returns the palette size.
func (g *Generator) Kinds() int {
	return g.kinds
}

// Next returns a random tile kind.
func (g *Generator) Next() Tile {
	return Tile(1 + g.rng.Intn(g.kinds))
}

// Fill populates every cell of b with a fresh tile.
//
// With guard set, a tile that would complete a horizontal run with the two
// cells to its left, or a vertical run with the two cells above it, is drawn
// again. Placement order is row-major, so this leaves a board with no runs.
// Without guard the board may start with runs already on it.
func (g *Generator) Fill(b Board, guard bool) {
	w := b.Width()
	for i := range b.cells {
		t := g.Next()
		if guard && g.kinds > 2 {
			for completesRun(b, i, w, t) {
				t = g.Next()
			}
		}
		b.cells[i] = t
	}
}

// completesRun reports whether placing t at i extends an existing pair
// to its left or above it into a run of three.
func completesRun(b Board, i, w int, t Tile) bool {
	row, col := i/w, i%w
	if col >= 2 && b.cells[i-1] == t && b.cells[i-2] == t {
		return true
	}
	if row >= 2 && b.cells[i-w] == t && b.cells[i-2*w] == t {
		return true
	}
	return false
}
