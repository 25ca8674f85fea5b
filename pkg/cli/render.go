package cli

import (
	"strings"

	"github.com/RyugaXhypeR/connect-four/pkg/connect4"
	"github.com/muesli/termenv"
)

// Pure mapping from cell value to a display token. The ANSI color is
// resolved through the output's profile, so dumb terminals fall back to
// plain glyphs automatically.
var _glyphs = [...]struct {
	char string
	ansi string
}{
	connect4.PawnNone: {"·", "8"},
	connect4.PawnRed:  {"●", "1"},
	connect4.PawnBlue: {"●", "4"},
}

// Renderer turns board state into terminal output. It owns no game
// state, everything is read through the board's query methods.
type Renderer struct {
	out *termenv.Output
}

func NewRenderer(out *termenv.Output) *Renderer {
	return &Renderer{out: out}
}

// Clear the terminal and move the cursor to the top left corner
func (r *Renderer) Clear() {
	r.out.ClearScreen()
}

func (r *Renderer) glyph(pawn connect4.Pawn) string {
	g := _glyphs[pawn]
	return r.out.String(g.char).Foreground(r.out.Color(g.ansi)).String()
}

func (r *Renderer) name(pawn connect4.Pawn) string {
	return r.out.String(pawn.String()).
		Foreground(r.out.Color(_glyphs[pawn].ansi)).
		Bold().
		String()
}

// Render the grid top to bottom with a column-number footer matching the
// 1-based input prompt
func (r *Renderer) Frame(b *connect4.Board) string {
	builder := strings.Builder{}

	for row := 0; row < connect4.Rows; row++ {
		builder.WriteByte(' ')
		for col := 0; col < connect4.Cols; col++ {
			builder.WriteString(r.glyph(b.Cell(row, col)))
			builder.WriteByte(' ')
		}
		builder.WriteByte('\n')
	}

	builder.WriteByte(' ')
	for col := 0; col < connect4.Cols; col++ {
		builder.WriteByte('1' + byte(col))
		builder.WriteByte(' ')
	}
	builder.WriteByte('\n')

	return builder.String()
}

// One-line prompt naming the side to move
func (r *Renderer) Prompt(b *connect4.Board) string {
	return r.name(b.Turn()) + " to move, drop in which column? "
}

// Final announcement, winner read from the move log (the last logged
// mover made the connection) or a draw notice
func (r *Renderer) Result(b *connect4.Board) string {
	if winner, ok := b.Winner(); ok {
		// Positions loaded from notation carry no log, fall back to the flag
		if last, logged := b.Moves().Last(); logged {
			winner = last.Pawn()
		}
		return r.name(winner) + " connects four!"
	}
	if b.Draw() {
		return "The board is full, it's a draw."
	}
	return "Game in progress."
}
