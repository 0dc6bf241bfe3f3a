package match3

import "fmt"

// SwapPolicy decides what happens to an adjacent swap that forms no run.
type SwapPolicy string

const (
	// SwapKeep leaves every adjacent swap on the board, matched or not.
	SwapKeep SwapPolicy = "keep"

	// SwapRevert puts the two tiles back when the swap forms no run.
	SwapRevert SwapPolicy = "revert"
)

// ParseSwapPolicy validates a policy name from config.
func ParseSwapPolicy(s string) (SwapPolicy, error) {
	switch p := SwapPolicy(s); p {
	case SwapKeep, SwapRevert:
		return p, nil
	case "":
		return SwapKeep, nil
	default:
		return "", fmt.Errorf("match3: unknown swap policy %q", s)
	}
}

// SwapResult describes the outcome of Swap.
type SwapResult struct {
	Applied  bool  // The two tiles were exchanged and the exchange stands
	Reverted bool  // The exchange formed no run and was undone (SwapRevert)
	Matched  []int // Cells that formed runs after the exchange
	Cleared  int   // Tiles removed from the board
}

// Valid reports whether the request met the swap preconditions.
func (r SwapResult) Valid() bool {
	return r.Applied || r.Reverted
}

// Swap exchanges the tiles at i and j, then clears any runs that result.
//
// The request is ignored (the input board is returned and the result is the
// zero value) unless i and j are distinct, on the board, adjacent and both
// hold a tile. The input board is never modified; an applied swap returns a
// new board with matched cells set to Empty.
func Swap(b Board, i, j int, policy SwapPolicy) (Board, SwapResult) {
	if i == j || !b.AreAdjacent(i, j) || b.At(i).IsEmpty() || b.At(j).IsEmpty() {
		return b, SwapResult{}
	}

	next := b.Clone()
	ti, tj := next.At(i), next.At(j)
	next.Set(i, tj)
	next.Set(j, ti)

	matches := FindMatches(next)
	if len(matches) == 0 {
		if policy == SwapRevert {
			return b, SwapResult{Reverted: true}
		}
		return next, SwapResult{Applied: true}
	}

	cleared := clearCells(next, matches)
	return next, SwapResult{
		Applied: true,
		Matched: matches,
		Cleared: cleared,
	}
}
