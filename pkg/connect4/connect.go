package connect4

// The four axis families a connection can lie on: horizontal, vertical
// and the two diagonals
var _axes = [4][2]int{{0, 1}, {1, 0}, {1, 1}, {1, -1}}

// Report whether the pawn just placed on (row, col) completed a line of
// ConnectLength. Runs once per placement, anchored at that cell.
func (b *Board) isConnected(row, col int) bool {
	pawn := b.grid[row][col]
	for _, axis := range _axes {
		if b.axisConnected(pawn, row, col, axis[0], axis[1]) {
			return true
		}
	}
	return false
}

// Extract the line of cells passing through (row, col) along (dr, dc),
// clipped at the grid edges, then slide a ConnectLength window over it.
// Clipping instead of neighbor arithmetic keeps the edge cases out: a
// window either fits entirely on the board or is never formed.
func (b *Board) axisConnected(pawn Pawn, row, col, dr, dc int) bool {
	line := make([]Pawn, 0, 2*ConnectLength-1)
	for i := -(ConnectLength - 1); i <= ConnectLength-1; i++ {
		r, c := row+i*dr, col+i*dc
		if !inBounds(r, c) {
			continue
		}
		line = append(line, b.grid[r][c])
	}

	for start := 0; start+ConnectLength <= len(line); start++ {
		window := true
		for i := 0; window && i < ConnectLength; i++ {
			window = line[start+i] == pawn
		}
		if window {
			return true
		}
	}
	return false
}

// Full-board connection scan, revisits every window on the grid. Used as
// the oracle when loading a position from notation, where no anchor cell
// exists, and by the tests to cross-check the incremental result.
func scanConnected(grid *[Rows][Cols]Pawn) (Pawn, bool) {
	for row := 0; row < Rows; row++ {
		for col := 0; col < Cols; col++ {
			pawn := grid[row][col]
			if pawn == PawnNone {
				continue
			}

			for _, axis := range _axes {
				endRow := row + (ConnectLength-1)*axis[0]
				endCol := col + (ConnectLength-1)*axis[1]
				if !inBounds(endRow, endCol) {
					continue
				}

				run := true
				for i := 1; run && i < ConnectLength; i++ {
					run = grid[row+i*axis[0]][col+i*axis[1]] == pawn
				}
				if run {
					return pawn, true
				}
			}
		}
	}
	return PawnNone, false
}
