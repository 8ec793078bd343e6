package match

import (
	"context"
	"fmt"
	"time"

	"github.com/lk16/othello-agent/internal/othello"
	"github.com/lk16/othello-agent/internal/player"
)

// Turn describes a single move that was played.
type Turn struct {
	Number  int
	Mover   othello.Color
	Player  string
	Move    othello.Move
	Board   othello.Board
	Elapsed time.Duration
}

// Observer is called after every turn.
type Observer func(turn Turn)

// Result is the result of a finished match.
type Result struct {
	othello.Outcome

	// Moves contains all moves including passes.
	Moves []othello.Move

	// Board is the final board.
	Board othello.Board

	// AverageMoveTime is the average decision time per color.
	AverageMoveTime map[othello.Color]time.Duration
}

// Options configures a match.
type Options struct {
	// Start is the start board. The zero value means the standard start position.
	Start *othello.Board

	// Observer, if set, is called after every turn.
	Observer Observer
}

// Run plays a game between two players until both pass in a row. Black moves first.
func Run(ctx context.Context, black, white player.Player, opts Options) (*Result, error) {
	game := othello.NewGame()
	if opts.Start != nil {
		game = othello.NewGameWithStart(*opts.Start, othello.Black)
	}

	players := map[othello.Color]player.Player{
		othello.Black: black,
		othello.White: white,
	}

	totalTime := map[othello.Color]time.Duration{}
	moveCount := map[othello.Color]int{}

	for turnNumber := 1; !game.IsOver(); turnNumber++ {
		mover := game.Turn()
		current := players[mover]

		start := time.Now()
		move, err := current.ChooseMove(ctx, game.Board(), mover)
		if err != nil {
			return nil, fmt.Errorf("player %s failed to choose a move: %w", current.Name(), err)
		}
		elapsed := time.Since(start)

		if err = game.Play(move); err != nil {
			return nil, fmt.Errorf("player %s: %w", current.Name(), err)
		}

		totalTime[mover] += elapsed
		moveCount[mover]++

		if opts.Observer != nil {
			opts.Observer(Turn{
				Number:  turnNumber,
				Mover:   mover,
				Player:  current.Name(),
				Move:    move,
				Board:   game.Board(),
				Elapsed: elapsed,
			})
		}
	}

	averages := make(map[othello.Color]time.Duration, len(totalTime))
	for color, total := range totalTime {
		averages[color] = total / time.Duration(moveCount[color])
	}

	return &Result{
		Outcome:         game.Outcome(),
		Moves:           game.Moves(),
		Board:           game.Board(),
		AverageMoveTime: averages,
	}, nil
}
