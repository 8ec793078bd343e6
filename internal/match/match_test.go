package match

import (
	"context"
	"errors"
	"testing"

	"github.com/lk16/othello-agent/internal/othello"
	"github.com/lk16/othello-agent/internal/player"
	"github.com/lk16/othello-agent/internal/search"
	"github.com/stretchr/testify/require"
)

// stubPlayer always returns the same move.
type stubPlayer struct {
	move othello.Move
	err  error
}

func (s *stubPlayer) Name() string {
	return "stub"
}

func (s *stubPlayer) ChooseMove(context.Context, othello.Board, othello.Color) (othello.Move, error) {
	return s.move, s.err
}

func firstMove(int) int {
	return 0
}

func TestRun_AgentVsRandom(t *testing.T) {
	agent := player.NewAgent("agent", search.NewEngine(search.Config{DepthLimit: 2}))
	random := player.NewRandomWithSource("random", firstMove)

	turns := make([]Turn, 0)
	result, err := Run(context.Background(), agent, random, Options{
		Observer: func(turn Turn) {
			turns = append(turns, turn)
		},
	})
	require.NoError(t, err)

	// The game ends with two passes.
	require.GreaterOrEqual(t, len(result.Moves), 2)
	require.True(t, result.Moves[len(result.Moves)-1].IsPass())
	require.True(t, result.Moves[len(result.Moves)-2].IsPass())
	require.False(t, result.Board.HasMoves(othello.Black))
	require.False(t, result.Board.HasMoves(othello.White))

	require.Equal(t, result.Board.Score(), result.Score)
	require.Equal(t, othello.NewOutcome(result.Board), result.Outcome)

	require.Len(t, turns, len(result.Moves))
	require.Equal(t, othello.Black, turns[0].Mover)
	require.Equal(t, "agent", turns[0].Player)
	require.Equal(t, othello.White, turns[1].Mover)
	require.Equal(t, 1, turns[0].Number)
	require.Equal(t, result.Board, turns[len(turns)-1].Board)

	require.Contains(t, result.AverageMoveTime, othello.Black)
	require.Contains(t, result.AverageMoveTime, othello.White)
}

func TestRun_Deterministic(t *testing.T) {
	run := func() *Result {
		result, err := Run(
			context.Background(),
			player.NewRandomWithSource("a", firstMove),
			player.NewRandomWithSource("b", firstMove),
			Options{},
		)
		require.NoError(t, err)
		return result
	}

	require.Equal(t, run().Moves, run().Moves)
}

func TestRun_CustomStart(t *testing.T) {
	start := othello.NewBoardEmpty()
	start[0][0] = othello.White
	start[7][7] = othello.Black

	result, err := Run(context.Background(), &stubPlayer{}, &stubPlayer{}, Options{Start: &start})
	require.NoError(t, err)

	require.Len(t, result.Moves, 2)
	require.Equal(t, othello.Empty, result.Winner)
	require.Equal(t, 0, result.Score)
}

func TestRun_Errors(t *testing.T) {
	errBroken := errors.New("broken")

	tests := []struct {
		name    string
		black   player.Player
		wantErr error
	}{
		{
			name:    "illegal move",
			black:   &stubPlayer{move: othello.NewMove(0, 0)},
			wantErr: othello.ErrInvalidMove,
		},
		{
			name:    "illegal pass",
			black:   &stubPlayer{move: othello.PassMove()},
			wantErr: othello.ErrInvalidMove,
		},
		{
			name:    "player error",
			black:   &stubPlayer{err: errBroken},
			wantErr: errBroken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Run(context.Background(), tt.black, player.NewRandom("random"), Options{})
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}
