package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/RyugaXhypeR/connect-four/pkg/connect4"
	"github.com/muesli/termenv"
)

// Session runs one interactive game over a line-based input source and a
// termenv output. It owns the single board instance for the game, there
// is no ambient global state.
type Session struct {
	Board *connect4.Board

	// ClearScreen redraws on a wiped terminal between turns. Tests and
	// piped transcripts turn it off.
	ClearScreen bool

	in     *bufio.Scanner
	out    *termenv.Output
	render *Renderer
}

func NewSession(in io.Reader, out *termenv.Output) *Session {
	return &Session{
		Board:       connect4.NewBoard(),
		ClearScreen: true,
		in:          bufio.NewScanner(in),
		out:         out,
		render:      NewRenderer(out),
	}
}

// Run the game loop: render, read a column, validate, place, toggle the
// turn. Recoverable input errors re-prompt without consuming the turn.
// Returns an error only when the input source dries up mid-game.
func (s *Session) Run() error {
	for !s.Board.IsOver() {
		if s.ClearScreen {
			s.render.Clear()
		}
		fmt.Fprintln(s.out, s.render.Frame(s.Board))
		fmt.Fprint(s.out, s.render.Prompt(s.Board))

		if !s.in.Scan() {
			if err := s.in.Err(); err != nil {
				return fmt.Errorf("Reading column input: %w", err)
			}
			return errors.New("Input closed before the game ended")
		}

		col, ok := parseColumn(s.in.Text())
		if !ok {
			fmt.Fprintf(s.out, "Enter a column number between 1 and %d.\n", connect4.Cols)
			continue
		}

		if _, err := s.Board.Drop(col); err != nil {
			switch {
			case errors.Is(err, connect4.ErrColumnOutOfRange):
				fmt.Fprintf(s.out, "Enter a column number between 1 and %d.\n", connect4.Cols)
			case errors.Is(err, connect4.ErrColumnFull):
				fmt.Fprintf(s.out, "Column %d is full, pick another one.\n", col+1)
			default:
				return err
			}
			continue
		}

		s.Board.SwitchTurn()
	}

	if s.ClearScreen {
		s.render.Clear()
	}
	fmt.Fprintln(s.out, s.render.Frame(s.Board))
	fmt.Fprintln(s.out, s.render.Result(s.Board))
	return nil
}

// Parse a 1-based column number from one input line. Anything that is
// not an integer is the collaborator's problem, the board never sees it.
func parseColumn(line string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, false
	}
	return n - 1, true
}
