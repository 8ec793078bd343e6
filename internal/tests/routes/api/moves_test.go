package api_test

import (
	"net/http"
	"testing"

	"github.com/lk16/othello-agent/internal/models"
	"github.com/lk16/othello-agent/internal/tests"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMoves(t *testing.T) {
	app := tests.NewApp(t)

	testCases := []struct {
		name           string
		payload        any
		wantStatusCode int
		wantMoves      []models.MoveInfo
	}{
		{
			name:           "start black",
			payload:        models.BoardPayload{Board: tests.StartBoard, Mover: 1},
			wantStatusCode: http.StatusOK,
			wantMoves: []models.MoveInfo{
				{Move: "d3", Score: 3},
				{Move: "c4", Score: 3},
				{Move: "f5", Score: 3},
				{Move: "e6", Score: 3},
			},
		},
		{
			name:           "start white",
			payload:        models.BoardPayload{Board: tests.StartBoard, Mover: -1},
			wantStatusCode: http.StatusOK,
			wantMoves: []models.MoveInfo{
				{Move: "e3", Score: -3},
				{Move: "f4", Score: -3},
				{Move: "c5", Score: -3},
				{Move: "d6", Score: -3},
			},
		},
		{
			name:           "no moves",
			payload:        models.BoardPayload{Board: tests.NoMovesBoard, Mover: 1},
			wantStatusCode: http.StatusOK,
			wantMoves:      []models.MoveInfo{},
		},
		{
			name:           "invalid board",
			payload:        models.BoardPayload{Board: "XO", Mover: 1},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "invalid mover",
			payload:        models.BoardPayload{Board: tests.StartBoard, Mover: 0},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "invalid payload",
			payload:        nil,
			wantStatusCode: http.StatusBadRequest,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			var response models.MovesResponse
			status := tests.Do(t, app, http.MethodPost, "/api/moves", tt.payload, &response)

			require.Equal(t, tt.wantStatusCode, status)
			if tt.wantStatusCode == http.StatusOK {
				require.ElementsMatch(t, tt.wantMoves, response.Moves)
			}
		})
	}
}

func TestDoMove(t *testing.T) {
	app := tests.NewApp(t)

	afterD3 := "" +
		"--------" +
		"--------" +
		"---X----" +
		"---XX---" +
		"---XO---" +
		"--------" +
		"--------" +
		"--------"

	t.Run("valid move", func(t *testing.T) {
		payload := models.DoMovePayload{
			BoardPayload: models.BoardPayload{Board: tests.StartBoard, Mover: 1},
			Move:         "d3",
		}

		var response models.DoMoveResponse
		status := tests.Do(t, app, http.MethodPost, "/api/move", payload, &response)

		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, afterD3, response.Board)
		assert.Equal(t, -1, response.Mover)
		assert.Equal(t, 3, response.Score)
		assert.False(t, response.GameOver)
	})

	t.Run("pass without moves", func(t *testing.T) {
		payload := models.DoMovePayload{
			BoardPayload: models.BoardPayload{Board: tests.NoMovesBoard, Mover: 1},
			Move:         "--",
		}

		var response models.DoMoveResponse
		status := tests.Do(t, app, http.MethodPost, "/api/move", payload, &response)

		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, tests.NoMovesBoard, response.Board)
		assert.Equal(t, 8, response.Score)
		assert.True(t, response.GameOver)
	})

	badMoves := []string{"a1", "--", "z9"}
	for _, move := range badMoves {
		t.Run("bad move "+move, func(t *testing.T) {
			payload := models.DoMovePayload{
				BoardPayload: models.BoardPayload{Board: tests.StartBoard, Mover: 1},
				Move:         move,
			}

			var response map[string]string
			status := tests.Do(t, app, http.MethodPost, "/api/move", payload, &response)

			require.Equal(t, http.StatusBadRequest, status)
			require.NotEmpty(t, response["error"])
		})
	}
}
