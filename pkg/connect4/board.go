package connect4

import (
	"errors"
	"fmt"
	"strings"
)

// Recoverable placement errors, resolved by the session loop with a
// re-prompt. None of them mutates the board.
var (
	ErrColumnOutOfRange = errors.New("column out of range")
	ErrColumnFull       = errors.New("column full")
	ErrGameOver         = errors.New("game over")
)

// Main board struct, owns the grid, the side to move, the append-only
// move log and the termination flag. Mutated solely through Place/Drop.
type Board struct {
	grid        [Rows][Cols]Pawn
	turn        Pawn
	moves       *MoveList
	termination Termination
}

// Create a heap-allocated, initialized board with red to move
func NewBoard() *Board {
	b := &Board{}
	b.Init()
	return b
}

// Initialize the board, for example after zero-value construction
func (b *Board) Init() {
	b.moves = NewMoveList()
	b.turn = FirstTurn
}

// Reset the board to the starting position
func (b *Board) Reset() {
	for row := range b.grid {
		for col := range b.grid[row] {
			b.grid[row][col] = PawnNone
		}
	}
	b.turn = FirstTurn
	b.termination = TerminationNone
	b.moves.Clear()
}

// Make a deep copy of the board (has no shared memory with this object)
func (b *Board) Clone() Board {
	board := Board{
		turn:        b.turn,
		termination: b.termination,
		moves:       NewMoveList(),
	}

	for row := range b.grid {
		copy(board.grid[row][:], b.grid[row][:])
	}
	*board.moves = *b.moves
	return board
}

// Getters

func (b *Board) Turn() Pawn {
	return b.turn
}

// Get the move log, callers must treat it as read-only
func (b *Board) Moves() *MoveList {
	return b.moves
}

// Get the cell value at (row, col), row 0 is the top of the board.
// Out-of-bounds coordinates are a programmer error.
func (b *Board) Cell(row, col int) Pawn {
	if !inBounds(row, col) {
		panic(fmt.Sprintf("connect4: cell out of bounds (row=%d, col=%d)", row, col))
	}
	return b.grid[row][col]
}

// Get a copy of the whole grid, rows top to bottom
func (b *Board) Grid() [Rows][Cols]Pawn {
	return b.grid
}

// Toggle the side to move. Kept separate from Place so a rejected drop
// never costs a player their turn.
func (b *Board) SwitchTurn() {
	b.turn = b.turn.Other()
}

// Find the row a token dropped into 'col' would settle on, scanning from
// the bottom up. ok is false when the column is full. Pure query, no
// mutation. The column must be within [0, Cols), anything else is a
// programmer error.
func (b *Board) LowestEmptyRow(col int) (int, bool) {
	if col < 0 || col >= Cols {
		panic(fmt.Sprintf("connect4: column %d out of range", col))
	}

	for row := Rows - 1; row >= 0; row-- {
		if b.grid[row][col] == PawnNone {
			return row, true
		}
	}
	return 0, false
}

// Put the current player's pawn on (row, col), append the move to the log
// and recompute the termination flag. Does not toggle the turn.
//
// The preconditions are the caller's contract: coordinates in bounds, an
// empty target cell and a game still in progress. Breaking any of them
// would corrupt the alternation invariant, so Place fails loudly instead
// of tolerating it.
func (b *Board) Place(row, col int) {
	if !inBounds(row, col) {
		panic(fmt.Sprintf("connect4: place out of bounds (row=%d, col=%d)", row, col))
	}
	if b.grid[row][col] != PawnNone {
		panic(fmt.Sprintf("connect4: cell (row=%d, col=%d) is already occupied", row, col))
	}
	if b.termination != TerminationNone {
		panic("connect4: place on a finished game")
	}

	b.grid[row][col] = b.turn
	b.moves.Append(b.turn, row, col)

	// A new connection can only pass through the cell just placed, the
	// position had none before this move.
	if b.isConnected(row, col) {
		if b.turn == PawnRed {
			b.termination = TerminationRedWon
		} else {
			b.termination = TerminationBlueWon
		}
	} else if b.IsFull() {
		b.termination = TerminationDraw
	}
}

// Drop the current player's token into 'col', letting it settle on the
// lowest empty row, and return that row. Validation failures come back as
// the sentinel errors above and leave the board untouched.
func (b *Board) Drop(col int) (int, error) {
	if b.IsOver() {
		return 0, ErrGameOver
	}
	if col < 0 || col >= Cols {
		return 0, fmt.Errorf("%w: %d not in [0, %d)", ErrColumnOutOfRange, col, Cols)
	}

	row, ok := b.LowestEmptyRow(col)
	if !ok {
		return 0, fmt.Errorf("%w: column %d", ErrColumnFull, col)
	}

	b.Place(row, col)
	return row, nil
}

// Replay a recorded game as a sequence of column drops, toggling the turn
// after every placement, exactly as the session loop would
func (b *Board) ApplyColumns(cols ...int) error {
	for i, col := range cols {
		if b.IsOver() {
			return fmt.Errorf("Move %d (column %d) comes after the game ended", i+1, col)
		}
		if _, err := b.Drop(col); err != nil {
			return fmt.Errorf("Move %d: %w", i+1, err)
		}
		b.SwitchTurn()
	}
	return nil
}

// True iff no empty cell remains
func (b *Board) IsFull() bool {
	for row := range b.grid {
		for col := range b.grid[row] {
			if b.grid[row][col] == PawnNone {
				return false
			}
		}
	}
	return true
}

func inBounds(row, col int) bool {
	return row >= 0 && row < Rows && col >= 0 && col < Cols
}

// Plain text rendering of the grid with the side to move, for debugging
// and test output. Display proper is the cli package's job.
func (b *Board) String() string {
	builder := strings.Builder{}
	for row := range b.grid {
		for col := range b.grid[row] {
			builder.WriteRune(b.grid[row][col].Rune())
		}
		builder.WriteByte('\n')
	}
	builder.WriteString(b.turn.String())
	builder.WriteString(" to move")
	return builder.String()
}
