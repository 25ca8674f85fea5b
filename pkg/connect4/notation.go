package connect4

import (
	"fmt"
	"strings"
)

// Starting position notation
const StartingPosition string = "7/7/7/7/7/7 r"

// String notation for the board, much like the FEN representation of a
// chessboard. Rows are written top to bottom, separated by '/', with
// 'r'/'b' for the pawns and digits counting runs of empty cells, then a
// space and the side to move.
//
// For example, red's opening drop into the middle column gives:
//
//	7/7/7/7/7/3r3 b
//
// The notation captures the grid and the turn only. It carries no move
// log, a loaded position derives its termination flag from a full scan.
func (b *Board) Notation() string {
	builder := strings.Builder{}

	for rowIndex, row := range b.grid {
		counter := 0
		for col := 0; col < Cols; col++ {
			switch pawn := row[col]; pawn {
			case PawnRed, PawnBlue:
				if counter > 0 {
					builder.WriteString(fmt.Sprintf("%d", counter))
					counter = 0
				}
				builder.WriteRune(pawn.Rune())
			default:
				counter += 1
			}
		}

		if counter > 0 {
			builder.WriteString(fmt.Sprintf("%d", counter))
		}

		if rowIndex != Rows-1 {
			builder.WriteString("/")
		}
	}

	builder.WriteByte(' ')
	builder.WriteRune(b.turn.Rune())
	return builder.String()
}

// Load the position from given notation string, replacing the current
// state. "startpos" is accepted as an alias for StartingPosition. A
// rejected notation leaves the board untouched.
func (b *Board) FromNotation(notation string) error {
	if notation == "startpos" {
		notation = StartingPosition
	}
	return _FromNotation(b, notation)
}

// Create a board from notation
func FromNotation(notation string) (*Board, error) {
	b := NewBoard()
	return b, b.FromNotation(notation)
}

// Assign given notation string to the board object. The grid and turn
// are parsed and validated locally first, the board is only written once
// the whole notation checks out.
func _FromNotation(b *Board, notation string) error {
	fields := strings.Fields(notation)
	if len(fields) != 2 {
		return fmt.Errorf("Invalid notation structure, expected '<board> <turn>', got %q", notation)
	}

	rows := strings.Split(fields[0], "/")
	if len(rows) != Rows {
		return fmt.Errorf("Invalid number of rows, expected %d, got %d", Rows, len(rows))
	}

	var grid [Rows][Cols]Pawn
	for rowIndex, rowStr := range rows {
		col := 0
		for _, v := range rowStr {
			switch {
			case v == 'r' || v == 'b':
				if col >= Cols {
					return fmt.Errorf("Row %d overflows %d columns", rowIndex, Cols)
				}
				grid[rowIndex][col] = PawnFromRune(v)
				col++
			case '0' <= v && v <= '9':
				col += int(v - '0')
				if col > Cols {
					return fmt.Errorf("Invalid number of skip cells in row %d", rowIndex)
				}
			default:
				return fmt.Errorf("Invalid notation character %q in row %d", v, rowIndex)
			}
		}

		if col != Cols {
			return fmt.Errorf("Row %d describes %d columns, expected %d", rowIndex, col, Cols)
		}
	}

	// Tokens fall, they cannot float above an empty cell
	for col := 0; col < Cols; col++ {
		for row := 1; row < Rows; row++ {
			if grid[row][col] == PawnNone && grid[row-1][col] != PawnNone {
				return fmt.Errorf("Floating pawn above (row=%d, col=%d)", row, col)
			}
		}
	}

	var turn Pawn
	switch fields[1] {
	case "r":
		turn = PawnRed
	case "b":
		turn = PawnBlue
	default:
		return fmt.Errorf("Invalid side %q, expected 'r' or 'b'", fields[1])
	}

	// Red always moves first, so strict alternation pins the counts:
	// equal counts mean red to move, one extra red means blue to move
	reds, blues := 0, 0
	for row := range grid {
		for col := range grid[row] {
			switch grid[row][col] {
			case PawnRed:
				reds++
			case PawnBlue:
				blues++
			}
		}
	}
	diff := reds - blues
	if diff < 0 || diff > 1 {
		return fmt.Errorf("Unreachable position, %d red vs %d blue pawns", reds, blues)
	}
	if (diff == 0) != (turn == PawnRed) {
		return fmt.Errorf("Side %q does not match the pawn counts (%d red, %d blue)", fields[1], reds, blues)
	}

	// Commit, then recompute the termination flag from scratch
	b.Reset()
	b.grid = grid
	b.turn = turn

	if winner, ok := scanConnected(&b.grid); ok {
		if winner == PawnRed {
			b.termination = TerminationRedWon
		} else {
			b.termination = TerminationBlueWon
		}
	} else if b.IsFull() {
		b.termination = TerminationDraw
	}
	return nil
}
