package routes_test

import (
	"net/http"
	"testing"

	"github.com/lk16/othello-agent/internal/tests"
	"github.com/stretchr/testify/require"
)

func TestUnknownEndpoint(t *testing.T) {
	app := tests.NewApp(t)

	var body map[string]string
	status := tests.Do(t, app, http.MethodGet, "/unknown", nil, &body)

	require.Equal(t, http.StatusNotFound, status)
	require.Contains(t, body, "error")
}
