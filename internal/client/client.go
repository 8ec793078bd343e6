package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/lk16/othello-agent/internal/models"
	"github.com/lk16/othello-agent/internal/othello"
	"github.com/rs/zerolog/log"
)

const (
	clientTimeout = 30 * time.Second
)

var ErrUnexpectedStatus = errors.New("server returned unexpected status")

// APIClient talks to the analysis server.
type APIClient struct {
	// serverURL is the base URL of the server, without trailing slash
	serverURL string

	httpClient *http.Client
}

func NewAPIClient(serverURL string) *APIClient {
	return &APIClient{
		serverURL: strings.TrimSuffix(serverURL, "/"),
		httpClient: &http.Client{
			Timeout: clientTimeout,
		},
	}
}

func logRequestAsCurl(request *http.Request) {
	// Do not build string if we're not logging it
	event := log.Debug()
	if !event.Enabled() {
		return
	}

	var builder strings.Builder
	builder.WriteString("curl -X ")
	builder.WriteString(request.Method)
	builder.WriteString(" '")
	builder.WriteString(request.URL.String())
	builder.WriteString("'")

	for key, values := range request.Header {
		for _, value := range values {
			builder.WriteString(" -H '")
			builder.WriteString(strings.ToLower(key))
			builder.WriteString(": ")
			builder.WriteString(value)
			builder.WriteString("'")
		}
	}

	if request.Body != nil && request.Body != http.NoBody {
		body, err := io.ReadAll(request.Body)
		if err != nil {
			log.Debug().Err(err).Msg("Failed to read request body")
		}

		if len(body) > 0 {
			builder.WriteString(" -d '")
			builder.WriteString(strings.ReplaceAll(strings.TrimSpace(string(body)), "'", "'\\''"))
			builder.WriteString("'")
		}

		// Restore the original body
		request.Body = io.NopCloser(bytes.NewBuffer(body))
	}

	event.Msg(builder.String())
}

// errorResponse is the body the server sends for failed requests.
type errorResponse struct {
	Error string `json:"error"`
}

func (c *APIClient) request(ctx context.Context, method string, path string, payload any, target any) error {
	var body io.Reader

	if payload == nil {
		body = http.NoBody
	} else {
		buf := &bytes.Buffer{}
		if err := json.NewEncoder(buf).Encode(payload); err != nil {
			return fmt.Errorf("failed to encode payload: %w", err)
		}
		body = buf
	}

	request, err := http.NewRequestWithContext(ctx, method, c.serverURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	logRequestAsCurl(request)

	response, err := c.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer response.Body.Close()

	log.Debug().Str("status", response.Status).Str("path", path).Msg("Received response")

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		var parsed errorResponse
		if json.NewDecoder(response.Body).Decode(&parsed) == nil && parsed.Error != "" {
			return fmt.Errorf("%w %v: %s", ErrUnexpectedStatus, response.Status, parsed.Error)
		}
		return fmt.Errorf("%w %v", ErrUnexpectedStatus, response.Status)
	}

	if err = json.NewDecoder(response.Body).Decode(target); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

func (c *APIClient) post(ctx context.Context, path string, payload any, target any) error {
	return c.request(ctx, http.MethodPost, path, payload, target)
}

func (c *APIClient) get(ctx context.Context, path string, target any) error {
	return c.request(ctx, http.MethodGet, path, nil, target)
}

func boardPayload(board othello.Board, mover othello.Color) models.BoardPayload {
	return models.BoardPayload{
		Board: board.String(),
		Mover: int(mover),
	}
}

// Moves returns the valid moves of the mover.
func (c *APIClient) Moves(ctx context.Context, board othello.Board, mover othello.Color) ([]models.MoveInfo, error) {
	var response models.MovesResponse
	if err := c.post(ctx, "/api/moves", boardPayload(board, mover), &response); err != nil {
		return nil, fmt.Errorf("failed to get moves: %w", err)
	}

	return response.Moves, nil
}

// DoMove plays a move on the server and returns the resulting board.
func (c *APIClient) DoMove(ctx context.Context, board othello.Board, mover othello.Color, move othello.Move) (othello.Board, error) {
	payload := models.DoMovePayload{
		BoardPayload: boardPayload(board, mover),
		Move:         move.String(),
	}

	var response models.DoMoveResponse
	if err := c.post(ctx, "/api/move", payload, &response); err != nil {
		return othello.Board{}, fmt.Errorf("failed to do move: %w", err)
	}

	child, err := othello.NewBoardFromString(response.Board)
	if err != nil {
		return othello.Board{}, fmt.Errorf("server returned invalid board: %w", err)
	}

	return child, nil
}

// Search asks the server for the best move. Zero limits use the server defaults.
func (c *APIClient) Search(
	ctx context.Context,
	board othello.Board,
	mover othello.Color,
	timeLimit time.Duration,
	depthLimit int,
) (models.SearchResponse, error) {
	payload := models.SearchPayload{
		BoardPayload: boardPayload(board, mover),
	}

	if timeLimit > 0 {
		ms := int(timeLimit.Milliseconds())
		payload.TimeLimitMs = &ms
	}

	if depthLimit > 0 {
		payload.DepthLimit = &depthLimit
	}

	var response models.SearchResponse
	if err := c.post(ctx, "/api/search", payload, &response); err != nil {
		return models.SearchResponse{}, fmt.Errorf("failed to search: %w", err)
	}

	return response, nil
}

// Version returns the git commit of the server.
func (c *APIClient) Version(ctx context.Context) (string, error) {
	var response models.VersionResponse
	if err := c.get(ctx, "/version", &response); err != nil {
		return "", fmt.Errorf("failed to get version: %w", err)
	}

	return response.Commit, nil
}
