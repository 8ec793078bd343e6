package othello //nolint:testpackage

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewGame(t *testing.T) {
	game := NewGame()

	require.Equal(t, NewBoardStart(), game.Board())
	require.Equal(t, Black, game.Turn())
	require.Empty(t, game.Moves())
	require.False(t, game.IsOver())

	_, ok := game.LastMove()
	require.False(t, ok)
}

func TestGame_Play(t *testing.T) {
	game := NewGame()

	require.NoError(t, game.Play(MustParseMove("d3")))
	require.Equal(t, White, game.Turn())
	require.Equal(t, 3, game.Board().Score())

	last, ok := game.LastMove()
	require.True(t, ok)
	require.True(t, last.Equal(NewMove(2, 3)))

	require.NoError(t, game.Play(MustParseMove("c3")))
	require.Equal(t, Black, game.Turn())
	require.Len(t, game.Moves(), 2)
}

func TestGame_Play_Invalid(t *testing.T) {
	tests := []struct {
		name string
		move Move
	}{
		{"occupied", NewMove(3, 3)},
		{"not capturing", NewMove(0, 0)},
		{"pass with moves available", PassMove()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			game := NewGame()
			err := game.Play(tt.move)

			require.ErrorIs(t, err, ErrInvalidMove)
			require.Equal(t, NewBoardStart(), game.Board())
			require.Equal(t, Black, game.Turn())
		})
	}
}

func TestGame_DoublePassEndsGame(t *testing.T) {
	// Neither side can move: white discs cannot be bracketed.
	start := NewBoardEmpty()
	start[0][0] = White
	start[7][7] = Black
	start[7][6] = Black

	game := NewGameWithStart(start, Black)

	require.NoError(t, game.Play(PassMove()))
	require.False(t, game.IsOver())
	require.NoError(t, game.Play(PassMove()))
	require.True(t, game.IsOver())

	require.ErrorIs(t, game.Play(PassMove()), ErrGameOver)

	outcome := game.Outcome()
	require.Equal(t, 1, outcome.Score)
	require.Equal(t, Black, outcome.Winner)
}

func TestGame_PassCountResets(t *testing.T) {
	// White must pass, Black can still play h1.
	start := MustNewBoardFromString(`
		XXXXXXO-
		XXXXXXXX
		XXXXXXXX
		XXXXXXXX
		XXXXXXXX
		XXXXXXXX
		XXXXXXXX
		XXXXXXXX`)

	game := NewGameWithStart(start, White)
	require.NoError(t, game.Play(PassMove()))
	require.NoError(t, game.Play(MustParseMove("h1")))
	require.False(t, game.IsOver())

	require.NoError(t, game.Play(PassMove()))
	require.NoError(t, game.Play(PassMove()))
	require.True(t, game.IsOver())
	require.Equal(t, Black, game.Outcome().Winner)
	require.Equal(t, 64, game.Outcome().Score)
}

func TestNewOutcome(t *testing.T) {
	tests := []struct {
		name       string
		board      string
		wantScore  int
		wantWinner Color
	}{
		{"black wins", "XXXO" + emptyRows(60), 2, Black},
		{"white wins", "XOOO" + emptyRows(60), -2, White},
		{"tie", "XXOO" + emptyRows(60), 0, Empty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome := NewOutcome(MustNewBoardFromString(tt.board))
			require.Equal(t, tt.wantScore, outcome.Score)
			require.Equal(t, tt.wantWinner, outcome.Winner)
		})
	}
}

func emptyRows(n int) string {
	s := make([]byte, n)
	for i := range s {
		s[i] = '-'
	}
	return string(s)
}
