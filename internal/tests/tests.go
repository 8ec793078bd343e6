package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/lk16/othello-agent/internal"
	"github.com/lk16/othello-agent/internal/config"
	"github.com/lk16/othello-agent/internal/services"
	"github.com/stretchr/testify/require"
)

// StartBoard is the text of the starting position.
const StartBoard = "" +
	"--------" +
	"--------" +
	"--------" +
	"---OX---" +
	"---XO---" +
	"--------" +
	"--------" +
	"--------"

// NoMovesBoard has only black discs, neither side can move.
var NoMovesBoard = "XXXXXXXX" + strings.Repeat("-", 56)

// NewApp creates an app without external services.
func NewApp(t *testing.T) *fiber.App {
	t.Helper()

	cfg, err := config.Load()
	require.NoError(t, err)

	return internal.SetupApp(cfg, &services.Services{})
}

// Do sends a request to the app and decodes the JSON response into target, if it is not nil.
func Do(t *testing.T, app *fiber.App, method, path string, payload any, target any) int {
	t.Helper()

	var body bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(payload))
	}

	req, err := http.NewRequest(method, path, &body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	defer resp.Body.Close()

	if target != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(target))
	}

	return resp.StatusCode
}
