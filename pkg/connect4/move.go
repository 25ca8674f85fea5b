package connect4

import "strings"

const (
	_moveColMask  = 0b000111
	_moveRowMask  = 0b111000
	_movePawnMask = 0b11000000
)

// A move packs (pawn, row, col) into a single integer:
// bits 0-2 column, bits 3-5 row, bits 6-7 pawn
type MoveType uint16

const MoveIllegal MoveType = 0xFFFF

// Create a move, based on the moving pawn and the landing cell
func MakeMove(pawn Pawn, row, col int) MoveType {
	return MoveType((col & _moveColMask) |
		((row << 3) & _moveRowMask) |
		((int(pawn) << 6) & _movePawnMask))
}

// Get the pawn that made this move
func (m MoveType) Pawn() Pawn {
	return Pawn((m & _movePawnMask) >> 6)
}

func (m MoveType) Row() int {
	return int((m & _moveRowMask) >> 3)
}

func (m MoveType) Col() int {
	return int(m & _moveColMask)
}

// Get string representation of the move: pawn character, column letter
// and 1-based row counted from the bottom, for example red landing on
// row index 5 of the leftmost column -> "ra1"
func (m MoveType) String() string {
	row, col := m.Row(), m.Col()
	if row >= Rows || col >= Cols || m.Pawn() == PawnNone {
		return "(none)"
	}

	builder := strings.Builder{}
	builder.WriteRune(m.Pawn().Rune())
	builder.WriteByte('a' + byte(col))
	builder.WriteByte('1' + byte(Rows-1-row))
	return builder.String()
}

// Convert given move notation (as produced by MoveType.String()) to MoveType
func MoveFromString(str string) MoveType {
	if len(str) != 3 {
		return MoveIllegal
	}

	pawn := PawnFromRune(rune(str[0]))
	if pawn == PawnNone ||
		str[1] < 'a' || str[1] >= 'a'+Cols ||
		str[2] < '1' || str[2] >= '1'+Rows {
		return MoveIllegal
	}

	return MakeMove(pawn, Rows-1-int(str[2]-'1'), int(str[1]-'a'))
}

// Append-only log of the moves played so far, in strict placement order.
// Entries are never removed, the last one identifies the winner once the
// board reports a connection.
type MoveList struct {
	moves [Rows * Cols]MoveType
	size  uint8
}

// Make a new move list struct
func NewMoveList() *MoveList {
	return &MoveList{}
}

// Appends a new move to the list of moves
func (ml *MoveList) Append(pawn Pawn, row, col int) {
	ml.moves[ml.size] = MakeMove(pawn, row, col)
	ml.size++
}

func (ml *MoveList) AppendMove(move MoveType) {
	ml.moves[ml.size] = move
	ml.size++
}

// Reset the movelist, simply sets the size to 0
func (ml *MoveList) Clear() {
	ml.size = 0
}

// Get the actual slice of recorded moves
func (ml *MoveList) Slice() []MoveType {
	return ml.moves[0:ml.size]
}

func (ml *MoveList) Size() int {
	return int(ml.size)
}

// Get the most recent move, ok is false on an empty list
func (ml *MoveList) Last() (MoveType, bool) {
	if ml.size == 0 {
		return MoveIllegal, false
	}
	return ml.moves[ml.size-1], true
}

// Convert movelist into a string, uses move notation with space seperation
func (ml *MoveList) String() string {
	if ml.size == 0 {
		return "empty"
	}

	strMoves := make([]string, ml.size)
	for i, m := range ml.Slice() {
		strMoves[i] = m.String()
	}
	return strings.Join(strMoves, " ")
}
