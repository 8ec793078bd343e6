package player

import (
	"context"
	"fmt"
	"io"

	"github.com/lk16/othello-agent/internal/othello"
	"github.com/samber/lo"
)

const movePrompt = "Enter move: "

// LineReader reads lines of user input. It is implemented by *readline.Instance.
type LineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
}

// Human asks the user for moves until a valid one is entered.
type Human struct {
	name   string
	reader LineReader
	out    io.Writer
}

// NewHuman creates a human player reading from reader and writing hints to out.
func NewHuman(name string, reader LineReader, out io.Writer) *Human {
	return &Human{
		name:   name,
		reader: reader,
		out:    out,
	}
}

// Name returns the name of the player.
func (h *Human) Name() string {
	return h.name
}

// ChooseMove prompts for a move. A pass is returned without prompting when there are no valid moves.
func (h *Human) ChooseMove(ctx context.Context, board othello.Board, mover othello.Color) (othello.Move, error) {
	moves := board.Moves(mover)
	if len(moves) == 0 {
		fmt.Fprintln(h.out, "No possible moves for the player!")
		return othello.PassMove().WithScore(board.Score()), nil
	}

	fmt.Fprintf(h.out, "Suggested legal move: %s\n", moves[0])

	for {
		if err := ctx.Err(); err != nil {
			return othello.Move{}, err
		}

		h.reader.SetPrompt(movePrompt)
		line, err := h.reader.Readline()
		if err != nil {
			return othello.Move{}, fmt.Errorf("failed to read move: %w", err)
		}

		move, err := othello.ParseMove(line)
		if err != nil {
			fmt.Fprintln(h.out, "Invalid move, try again")
			continue
		}

		legal, ok := lo.Find(moves, func(m othello.Move) bool {
			return m.Equal(move)
		})
		if !ok {
			fmt.Fprintln(h.out, "Invalid move, try again")
			continue
		}

		return legal, nil
	}
}
