package entity

// Snapshot is a read-only view of a game for rendering.
type Snapshot struct {
	Board       Board
	Turn        Mark
	Outcome     Outcome
	Winner      Mark
	WinningLine []int
	Status      string
}

func (that *Game) Snapshot() Snapshot {
	snapshot := Snapshot{
		Board:   that.Board,
		Turn:    that.Turn,
		Outcome: that.Outcome(),
		Status:  that.Status(),
	}

	if line, ok := that.Board.WinningLine(); ok {
		snapshot.Winner = that.Board[line[0]]
		snapshot.WinningLine = line[:]
	}

	return snapshot
}

// InWinningLine reports whether cell is part of the completed line.
func (that Snapshot) InWinningLine(cell int) bool {
	for _, c := range that.WinningLine {
		if c == cell {
			return true
		}
	}

	return false
}
