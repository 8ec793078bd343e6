package client_test

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/lk16/othello-agent/internal/client"
	"github.com/lk16/othello-agent/internal/match"
	"github.com/lk16/othello-agent/internal/othello"
	"github.com/lk16/othello-agent/internal/player"
	"github.com/lk16/othello-agent/internal/search"
	"github.com/lk16/othello-agent/internal/tests"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T) *client.APIClient {
	t.Helper()

	server := httptest.NewServer(adaptor.FiberApp(tests.NewApp(t)))
	t.Cleanup(server.Close)

	return client.NewAPIClient(server.URL + "/")
}

func TestAPIClient(t *testing.T) {
	ctx := context.Background()
	apiClient := newClient(t)
	start := othello.NewBoardStart()

	moves, err := apiClient.Moves(ctx, start, othello.Black)
	require.NoError(t, err)
	require.Len(t, moves, 4)

	child, err := apiClient.DoMove(ctx, start, othello.Black, othello.MustParseMove("d3"))
	require.NoError(t, err)
	require.Equal(t, start.DoMove(othello.MustParseMove("d3"), othello.Black), child)

	_, err = apiClient.DoMove(ctx, start, othello.Black, othello.MustParseMove("a1"))
	require.ErrorIs(t, err, client.ErrUnexpectedStatus)
	require.ErrorContains(t, err, "invalid move")

	response, err := apiClient.Search(ctx, start, othello.Black, time.Second, 1)
	require.NoError(t, err)
	require.Equal(t, "d3", response.Move)
	require.Equal(t, 3, response.Score)

	commit, err := apiClient.Version(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, commit)
}

func TestRemotePlayer(t *testing.T) {
	apiClient := newClient(t)
	cfg := search.Config{DepthLimit: 1, TimeLimit: time.Second}

	remote := player.NewRemote("remote", apiClient, cfg)
	local := player.NewAgent("local", search.NewEngine(cfg))

	result, err := match.Run(context.Background(), remote, local, match.Options{})
	require.NoError(t, err)

	// The server runs the same search, so the game equals a local self-play game.
	want, err := match.Run(context.Background(),
		player.NewAgent("black", search.NewEngine(cfg)),
		player.NewAgent("white", search.NewEngine(cfg)),
		match.Options{})
	require.NoError(t, err)

	require.Equal(t, want.Board, result.Board)
	require.Equal(t, want.Score, result.Score)
}
