package match3

// DefaultMaxSettlePasses bounds one Settle call.
const DefaultMaxSettlePasses = 256

// Gravity makes one pass over every column, from the bottom row up to the
// second row: an empty cell with a tile directly above it takes that tile
// and the cell above becomes empty. Returns true if any tile moved.
//
// A tile drops at most one row per pass, so a column with a tall gap needs
// several passes to compact.
func Gravity(b Board) bool {
	w := b.Width()
	moved := false
	for row := w - 1; row > 0; row-- {
		for col := 0; col < w; col++ {
			idx := b.Index(row, col)
			above := idx - w
			if b.At(idx).IsEmpty() && !b.At(above).IsEmpty() {
				b.Set(idx, b.At(above))
				b.Set(above, Empty)
				moved = true
			}
		}
	}
	return moved
}

// Refill gives every empty top-row cell a new tile. Returns true if any
// cell was filled.
func Refill(b Board, gen *Generator) bool {
	filled := false
	for col := 0; col < b.Width(); col++ {
		if b.At(col).IsEmpty() {
			b.Set(col, gen.Next())
			filled = true
		}
	}
	return filled
}

// SettleReport summarizes one Settle call.
type SettleReport struct {
	Passes  int   // Gravity/refill passes run
	Cleared int   // Tiles cleared by cascades
	Waves   []int // Tiles cleared per cascade wave, in order
	Capped  bool  // The pass limit was reached before a fixed point
}

// Settle brings b to a fixed point with no empty cells and no runs.
//
// Each pass applies Gravity and Refill. After a pass that changed the board,
// and once on the first pass, runs are found and cleared; every non-empty
// clear is a cascade wave. Passes repeat until one changes nothing and
// clears nothing. A board that is already full and free of runs is left
// untouched.
//
// maxPasses bounds the loop; if it is reached, the remaining gaps are
// filled without clearing so the board is still full on return, and any
// runs left behind clear on the next call. maxPasses <= 0 means
// DefaultMaxSettlePasses.
func Settle(b Board, gen *Generator, maxPasses int) SettleReport {
	if maxPasses <= 0 {
		maxPasses = DefaultMaxSettlePasses
	}

	var rep SettleReport
	for rep.Passes < maxPasses {
		moved := Gravity(b)
		filled := Refill(b, gen)
		changed := moved || filled
		rep.Passes++

		if !changed && rep.Passes > 1 {
			return rep
		}

		cleared := clearCells(b, FindMatches(b))
		if cleared > 0 {
			rep.Cleared += cleared
			rep.Waves = append(rep.Waves, cleared)
			continue
		}
		if !changed {
			return rep
		}
	}

	rep.Capped = true
	for !b.IsFull() {
		Gravity(b)
		Refill(b, gen)
	}
	return rep
}
