package othello

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidField is returned when move text cannot be parsed.
var ErrInvalidField = errors.New("invalid field")

// Move is either a disc placement or a pass.
//
// The zero value is a pass. Score is scratch space used by move generation and search,
// it is not part of a move's identity.
type Move struct {
	row    int
	col    int
	placed bool

	Score int
}

// NewMove creates a placement on the given row and column.
func NewMove(row, col int) Move {
	return Move{
		row:    row,
		col:    col,
		placed: true,
	}
}

// PassMove returns the move used when the mover has no legal placement.
func PassMove() Move {
	return Move{}
}

// IsPass returns whether the move is a pass.
func (m Move) IsPass() bool {
	return !m.placed
}

// Row returns the row of a placement, or -1 for a pass.
func (m Move) Row() int {
	if !m.placed {
		return -1
	}
	return m.row
}

// Col returns the column of a placement, or -1 for a pass.
func (m Move) Col() int {
	if !m.placed {
		return -1
	}
	return m.col
}

// Equal checks if two moves target the same cell. Scores are ignored.
func (m Move) Equal(other Move) bool {
	if m.placed != other.placed {
		return false
	}
	return !m.placed || (m.row == other.row && m.col == other.col)
}

// WithScore returns a copy of the move with the score replaced.
func (m Move) WithScore(score int) Move {
	m.Score = score
	return m
}

// String returns the field notation of the move, e.g. "d3", or "--" for a pass.
func (m Move) String() string {
	if !m.placed {
		return "--"
	}
	return fmt.Sprintf("%c%d", 'a'+m.col, m.row+1)
}

// ParseMove converts a field notation (e.g. "a1", "h8") to a move.
// A pass is returned if the field is "--", "ps" or "pa".
func ParseMove(field string) (Move, error) {
	field = strings.ToLower(strings.TrimSpace(field))

	if len(field) != 2 { //nolint:mnd
		return Move{}, fmt.Errorf("%w: %q must be 2 characters long", ErrInvalidField, field)
	}

	if field == "--" || field == "ps" || field == "pa" {
		return PassMove(), nil
	}

	if !('a' <= field[0] && field[0] <= 'h' && '1' <= field[1] && field[1] <= '8') {
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidField, field)
	}

	col := int(field[0] - 'a')
	row := int(field[1] - '1')
	return NewMove(row, col), nil
}

// MustParseMove is like ParseMove but panics on invalid input.
func MustParseMove(field string) Move {
	move, err := ParseMove(field)
	if err != nil {
		panic(err)
	}
	return move
}
