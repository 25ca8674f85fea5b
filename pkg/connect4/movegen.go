package connect4

// Generate all legal drops in the current position, one per non-full
// column, each landing on that column's lowest empty row. Empty on a
// finished game.
func (b *Board) GenerateMoves() *MoveList {
	movelist := NewMoveList()
	if b.termination != TerminationNone {
		return movelist
	}

	for col := 0; col < Cols; col++ {
		if row, ok := b.LowestEmptyRow(col); ok {
			movelist.Append(b.turn, row, col)
		}
	}
	return movelist
}
