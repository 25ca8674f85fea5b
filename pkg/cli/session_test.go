package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/RyugaXhypeR/connect-four/pkg/connect4"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"
)

func newTestSession(input string) (*Session, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	out := termenv.NewOutput(buf, termenv.WithProfile(termenv.Ascii))
	s := NewSession(strings.NewReader(input), out)
	s.ClearScreen = false
	return s, buf
}

func TestSessionVerticalWin(t *testing.T) {
	// Red stacks column 1, blue answers in column 2
	s, buf := newTestSession("1\n2\n1\n2\n1\n2\n1\n")

	require.NoError(t, s.Run())
	require.True(t, s.Board.IsOver())
	require.Equal(t, connect4.TerminationRedWon, s.Board.Termination())
	require.Contains(t, buf.String(), "red connects four!")
	require.NotContains(t, buf.String(), "draw")
}

func TestSessionRepromptsOnBadInput(t *testing.T) {
	// Garbage, out-of-range and then a valid game
	s, buf := newTestSession("x\n\n0\n8\n1\n2\n1\n2\n1\n2\n1\n")

	require.NoError(t, s.Run())
	require.Equal(t, connect4.TerminationRedWon, s.Board.Termination())

	// Four rejected lines, none of which consumed red's turn
	require.Equal(t, 4, strings.Count(buf.String(), "Enter a column number between 1 and 7."))

	moves := s.Board.Moves().Slice()
	require.Equal(t, 7, len(moves))
	require.Equal(t, connect4.PawnRed, moves[0].Pawn())
}

func TestSessionRepromptsOnFullColumn(t *testing.T) {
	// Both players pile into column 1 until it fills with no connection
	// (r b r b r b from the bottom), then red retries and stacks column 2
	s, buf := newTestSession("1\n1\n1\n1\n1\n1\n1\n2\n3\n2\n3\n2\n3\n2\n")

	require.NoError(t, s.Run())
	require.Contains(t, buf.String(), "Column 1 is full, pick another one.")
	require.Equal(t, connect4.TerminationRedWon, s.Board.Termination())
	require.Contains(t, buf.String(), "red connects four!")
}

func TestSessionInputClosedMidGame(t *testing.T) {
	s, _ := newTestSession("1\n2\n")

	err := s.Run()
	require.Error(t, err)
	require.False(t, s.Board.IsOver())
	require.Equal(t, 2, s.Board.Moves().Size())
}

func TestSessionAnnouncesDraw(t *testing.T) {
	s, buf := newTestSession("")

	// Preload a drawn board, the loop exits immediately and announces once
	require.NoError(t, s.Board.ApplyColumns(
		0, 1, 1, 0, 0, 1, 1, 0, 0, 1, 1, 0,
		3, 2, 2, 3, 3, 2, 2, 3, 3, 2, 2, 3,
		4, 5, 5, 6, 6, 4, 4, 5, 5, 6, 6, 4, 4, 5, 5, 6, 6, 4,
	))

	require.NoError(t, s.Run())
	require.Contains(t, buf.String(), "it's a draw")
	require.Equal(t, 1, strings.Count(buf.String(), "it's a draw"))
}
