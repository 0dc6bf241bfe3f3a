package match3

// NoSelection marks a snapshot with nothing selected.
const NoSelection = -1

// Snapshot is an immutable copy of a session's observable state.
type Snapshot struct {
	Board            []Tile
	Width            int
	Score            int
	RemainingSeconds int
	State            Phase
	Selection        int // Selected cell index, NoSelection if none
	Moves            int // Swaps that stood on the board
	LastCascade      int // Clear waves of the most recent swap, or of a Settle that cleared tiles
	BestCascade      int
	Cleared          int // Tiles cleared over the whole session
}

// Ended reports whether the session is over.
func (s Snapshot) Ended() bool {
	return s.State == PhaseEnded
}

// Tile returns the tile at row, col.
func (s Snapshot) Tile(row, col int) Tile {
	return s.Board[row*s.Width+col]
}

// snapshotLocked builds a snapshot. The caller holds s.mu.
func (s *Session) snapshotLocked() Snapshot {
	return Snapshot{
		Board:            s.board.Cells(),
		Width:            s.board.Width(),
		Score:            s.score,
		RemainingSeconds: s.clock.Remaining(),
		State:            s.clock.Phase(),
		Selection:        s.selection,
		Moves:            s.moves,
		LastCascade:      s.lastCascade,
		BestCascade:      s.bestCascade,
		Cleared:          s.cleared,
	}
}
