package connect4

// Type defines for the board
type Pawn int8
type Termination int8

// Board dimensions and the winning line length. Nothing below hard-codes
// the reference 6x7 sizing, the algorithms only require
// ConnectLength <= min(Rows, Cols).
const (
	Rows          = 6
	Cols          = 7
	ConnectLength = 4
)

// Enum for the cell values, PawnNone marks an empty cell
const (
	PawnNone Pawn = iota
	PawnRed
	PawnBlue
)

// Red moves first
const FirstTurn = PawnRed

// Switch the color, red to blue, blue to red
func (p Pawn) Other() Pawn {
	switch p {
	case PawnRed:
		return PawnBlue
	case PawnBlue:
		return PawnRed
	}
	return PawnNone
}

func (p Pawn) String() string {
	switch p {
	case PawnRed:
		return "red"
	case PawnBlue:
		return "blue"
	}
	return "none"
}

// Get the notation character of the pawn
func (p Pawn) Rune() rune {
	switch p {
	case PawnRed:
		return 'r'
	case PawnBlue:
		return 'b'
	}
	return '.'
}

// Create pawn from a notation rune
func PawnFromRune(square rune) Pawn {
	switch square {
	case 'r':
		return PawnRed
	case 'b':
		return PawnBlue
	default:
		return PawnNone
	}
}
