package match3

// MinRun is the shortest straight line of equal tiles that clears.
const MinRun = 3

// FindMatches returns the indices of every cell that belongs to a horizontal
// or vertical run of at least MinRun identical tiles, in ascending order.
//
// Rows are scanned left to right and columns top to bottom. When a run is
// found it is extended as far as the kind continues and scanning resumes
// after its last cell. Row and column results are unioned, so a cell at the
// corner of an L or T shape is reported once. Empty cells never match.
// The board is not modified.
func FindMatches(b Board) []int {
	w := b.Width()
	marked := make([]bool, b.Len())

	// Rows
	for row := 0; row < w; row++ {
		for col := 0; col < w-(MinRun-1); col++ {
			idx := b.Index(row, col)
			t := b.At(idx)
			if t.IsEmpty() || b.At(idx+1) != t || b.At(idx+2) != t {
				continue
			}
			k := MinRun
			for col+k < w && b.At(idx+k) == t {
				k++
			}
			for n := 0; n < k; n++ {
				marked[idx+n] = true
			}
			col += k - 1
		}
	}

	// Columns
	for col := 0; col < w; col++ {
		for row := 0; row < w-(MinRun-1); row++ {
			idx := b.Index(row, col)
			t := b.At(idx)
			if t.IsEmpty() || b.At(idx+w) != t || b.At(idx+2*w) != t {
				continue
			}
			k := MinRun
			for row+k < w && b.At(idx+k*w) == t {
				k++
			}
			for n := 0; n < k; n++ {
				marked[idx+n*w] = true
			}
			row += k - 1
		}
	}

	var matches []int
	for i, m := range marked {
		if m {
			matches = append(matches, i)
		}
	}
	return matches
}

// HasMatches reports whether FindMatches would return anything.
func HasMatches(b Board) bool {
	return len(FindMatches(b)) > 0
}

// clearCells empties the given cells and returns how many held a tile.
func clearCells(b Board, cells []int) int {
	cleared := 0
	for _, i := range cells {
		if !b.InBounds(i) || b.At(i).IsEmpty() {
			continue
		}
		b.Set(i, Empty)
		cleared++
	}
	return cleared
}
