package othello

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidMove is returned when a move is not legal for the side to move.
	ErrInvalidMove = errors.New("invalid move")

	// ErrGameOver is returned when a move is played after both sides passed.
	ErrGameOver = errors.New("game is over")
)

// Outcome is the final result of a game.
type Outcome struct {
	// Score is the disc differential, positive favors Black.
	Score int

	// Winner is Black, White or Empty for a tie.
	Winner Color
}

// NewOutcome classifies a final board.
func NewOutcome(board Board) Outcome {
	score := board.Score()

	winner := Empty
	switch {
	case score > 0:
		winner = Black
	case score < 0:
		winner = White
	}

	return Outcome{
		Score:  score,
		Winner: winner,
	}
}

// Game represents an Othello game, either complete or in progress.
type Game struct {
	board Board
	turn  Color

	// moves is the list of moves in the game, including passes.
	moves []Move

	// passes counts consecutive passes. Two consecutive passes end the game.
	passes int
}

// NewGame creates a new game from the starting position with Black to move.
func NewGame() *Game {
	return NewGameWithStart(NewBoardStart(), Black)
}

// NewGameWithStart creates a new game with a custom start board.
func NewGameWithStart(start Board, turn Color) *Game {
	return &Game{
		board: start,
		turn:  turn,
		moves: make([]Move, 0),
	}
}

// Board returns the current board.
func (g *Game) Board() Board {
	return g.board
}

// Turn returns the side to move.
func (g *Game) Turn() Color {
	return g.turn
}

// Moves returns a copy of the moves played so far.
func (g *Game) Moves() []Move {
	return append([]Move{}, g.moves...)
}

// LastMove returns the last move played and false if no move was played yet.
func (g *Game) LastMove() (Move, bool) {
	if len(g.moves) == 0 {
		return Move{}, false
	}
	return g.moves[len(g.moves)-1], true
}

// IsOver returns whether both sides passed in a row.
func (g *Game) IsOver() bool {
	return g.passes >= 2 //nolint:mnd
}

// Play validates and plays a move for the side to move.
func (g *Game) Play(move Move) error {
	if g.IsOver() {
		return ErrGameOver
	}

	if !g.board.IsValidMove(move, g.turn) {
		return fmt.Errorf("%w: %s for %s", ErrInvalidMove, move, g.turn)
	}

	g.board = g.board.DoMove(move, g.turn)
	g.moves = append(g.moves, move)
	g.turn = g.turn.Opponent()

	if move.IsPass() {
		g.passes++
	} else {
		g.passes = 0
	}

	return nil
}

// Outcome returns the outcome of the current board.
func (g *Game) Outcome() Outcome {
	return NewOutcome(g.board)
}
