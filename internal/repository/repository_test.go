package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lk16/othello-agent/internal/bench"
	"github.com/lk16/othello-agent/internal/models"
	"github.com/lk16/othello-agent/internal/othello"
	"github.com/lk16/othello-agent/internal/services"
	"github.com/stretchr/testify/require"
)

func TestSearchKey_String(t *testing.T) {
	key := SearchKey{
		Board:       othello.NewBoardStart().String(),
		Mover:       1,
		DepthLimit:  4,
		TimeLimitMs: 100,
	}

	want := "search:" + othello.NewBoardStart().String() + ":1:4:100"
	require.Equal(t, want, key.String())
}

func TestNewSearchCache_WithoutRedis(t *testing.T) {
	require.IsType(t, &MemorySearchCache{}, NewSearchCache(nil))
	require.IsType(t, &MemorySearchCache{}, NewSearchCache(&services.Services{}))
}

func TestMemorySearchCache(t *testing.T) {
	ctx := context.Background()
	cache := NewMemorySearchCache()

	key := SearchKey{Board: othello.NewBoardStart().String(), Mover: 1, DepthLimit: 1}
	otherKey := key
	otherKey.Mover = -1

	_, ok, err := cache.Get(ctx, key)
	require.NoError(t, err)
	require.False(t, ok)

	response := models.SearchResponse{Move: "d3", Score: 3, Nodes: 5}
	require.NoError(t, cache.Set(ctx, key, response))

	got, ok, err := cache.Get(ctx, key)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, response, got)

	_, ok, err = cache.Get(ctx, otherKey)
	require.NoError(t, err)
	require.False(t, ok)

	require.Equal(t, 1, cache.Len())
}

func TestMemorySearchCache_ClearsWhenFull(t *testing.T) {
	ctx := context.Background()
	cache := NewMemorySearchCache()

	for i := range maxMemoryEntries {
		require.NoError(t, cache.Set(ctx, SearchKey{DepthLimit: i}, models.SearchResponse{}))
	}
	require.Equal(t, maxMemoryEntries, cache.Len())

	require.NoError(t, cache.Set(ctx, SearchKey{DepthLimit: -1}, models.SearchResponse{}))
	require.Equal(t, 1, cache.Len())
}

func TestNewBenchmarkRun(t *testing.T) {
	start := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	summary := &bench.Summary{
		RunID:                uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8"),
		StartTime:            start,
		EndTime:              start.Add(time.Minute),
		Games:                2,
		AgentWins:            1,
		Ties:                 1,
		AverageAgentMoveTime: 1500 * time.Microsecond,
		DepthLimit:           4,
		TimeLimit:            100 * time.Millisecond,
	}

	records := []bench.GameRecord{
		{Game: 1, Winner: othello.Black, Score: 12},
		{Game: 2, Winner: othello.Empty, Score: 0},
	}

	run := NewBenchmarkRun(summary, records)

	require.Equal(t, summary.RunID, run.RunID)
	require.Equal(t, 2, run.Games)
	require.Equal(t, 1, run.AgentWins)
	require.Equal(t, 0, run.RandomWins)
	require.Equal(t, 1, run.Ties)
	require.Equal(t, int64(1500), run.AverageAgentMoveTimeUs)
	require.Equal(t, int64(100), run.TimeLimitMs)
	require.Equal(t, []int64{12, 0}, []int64(run.GameScores))
}
