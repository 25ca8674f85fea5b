package connect4

// Enum for the game outcome
const (
	TerminationNone Termination = iota
	TerminationRedWon
	TerminationBlueWon
	TerminationDraw
)

func (t Termination) String() string {
	switch t {
	case TerminationRedWon:
		return "red won"
	case TerminationBlueWon:
		return "blue won"
	case TerminationDraw:
		return "draw"
	}
	return "none"
}

// Get the termination flag, set only inside Place and never cleared
func (b *Board) Termination() Termination {
	return b.termination
}

// Check if the game is over, either by a connection or a full board
func (b *Board) IsOver() bool {
	return b.termination != TerminationNone
}

// Check if a winning connection exists
func (b *Board) Connected() bool {
	return b.termination == TerminationRedWon || b.termination == TerminationBlueWon
}

// Check if the game ended with a full board and no connection
func (b *Board) Draw() bool {
	return b.termination == TerminationDraw
}

// Get the winning color, ok is false while the game is running or drawn
func (b *Board) Winner() (Pawn, bool) {
	switch b.termination {
	case TerminationRedWon:
		return PawnRed, true
	case TerminationBlueWon:
		return PawnBlue, true
	}
	return PawnNone, false
}
