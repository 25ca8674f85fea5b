package connect4

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestNotationStartingPosition(t *testing.T) {
	b := NewBoard()
	require.Equal(t, StartingPosition, b.Notation())

	loaded, err := FromNotation("startpos")
	require.NoError(t, err)
	require.Empty(t, cmp.Diff(b.Grid(), loaded.Grid()))
	require.Equal(t, PawnRed, loaded.Turn())
}

func TestNotationRoundTrip(t *testing.T) {
	sequences := [][]int{
		{3},
		{3, 3, 2, 4},
		{0, 1, 1, 2, 2, 3, 2, 3, 3, 6},
		drawSequence,
	}

	for _, seq := range sequences {
		b := NewBoard()
		require.NoError(t, b.ApplyColumns(seq...))

		loaded, err := FromNotation(b.Notation())
		require.NoError(t, err, "notation: %s", b.Notation())

		require.Empty(t, cmp.Diff(b.Grid(), loaded.Grid()))
		require.Equal(t, b.Turn(), loaded.Turn())
		require.Equal(t, b.Termination(), loaded.Termination())
	}
}

func TestNotationOpeningDrop(t *testing.T) {
	b := NewBoard()
	_, err := b.Drop(3)
	require.NoError(t, err)
	b.SwitchTurn()

	require.Equal(t, "7/7/7/7/7/3r3 b", b.Notation())
}

func TestFromNotationTermination(t *testing.T) {
	cases := []struct {
		name     string
		notation string
		want     Termination
	}{
		{"in progress", "7/7/7/7/7/3r3 b", TerminationNone},
		{"red bottom row", "7/7/7/7/3b3/rrrrbb1 b", TerminationRedWon},
		{"blue stack", "7/7/1b5/1b5/rb5/rbrr3 r", TerminationBlueWon},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b, err := FromNotation(tc.notation)
			require.NoError(t, err)
			require.Equal(t, tc.want, b.Termination())
		})
	}
}

func TestFromNotationRejectsInvalid(t *testing.T) {
	invalid := []string{
		"",
		"7/7/7/7/7/7",     // missing side
		"7/7/7/7/7 r",     // too few rows
		"7/7/7/7/7/7/7 r", // too many rows
		"7/7/7/7/7/6 r",   // short row
		"7/7/7/7/7/8 r",   // long row
		"7/7/7/7/7/3x3 r", // unknown piece
		"7/7/7/7/7/7 q",   // unknown side
		"7/7/7/7/3r3/7 b", // floating pawn
		"7/7/7/7/7/rr5 b", // two reds, no blue
		"7/7/7/7/7/1b5 r", // blue ahead of red
		"7/7/7/7/7/3r3 r", // red to move with red already ahead
	}

	for _, notation := range invalid {
		_, err := FromNotation(notation)
		require.Error(t, err, "notation %q", notation)
	}
}

func TestFromNotationRejectionLeavesBoardUntouched(t *testing.T) {
	b := NewBoard()
	require.NoError(t, b.ApplyColumns(3, 3, 2))

	before := b.Grid()
	turn := b.Turn()
	notation := b.Notation()

	// Structurally fine up to the floating pawn, so parsing gets past
	// the row loop before failing
	require.Error(t, b.FromNotation("7/7/7/7/3r3/7 b"))
	require.Error(t, b.FromNotation("7/7/7/7/7/8 r"))

	require.Empty(t, cmp.Diff(before, b.Grid()))
	require.Equal(t, turn, b.Turn())
	require.Equal(t, notation, b.Notation())
	require.Equal(t, 3, b.Moves().Size())
	require.Equal(t, TerminationNone, b.Termination())
}
