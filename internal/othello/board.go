package othello

import (
	"errors"
	"fmt"
	"strings"
)

// Size is the number of rows and columns of the board.
const Size = 8

// Color is the state of a cell and also identifies the side to move.
type Color int

const (
	Empty Color = 0
	Black Color = 1
	White Color = -1
)

// ErrInvalidBoard is returned when a board string cannot be parsed.
var ErrInvalidBoard = errors.New("invalid board")

// Opponent returns the other side.
func (c Color) Opponent() Color {
	return -c
}

// String returns a human readable color name.
func (c Color) String() string {
	switch c {
	case Black:
		return "Black"
	case White:
		return "White"
	default:
		return "Empty"
	}
}

// directions lists the eight compass directions as row and column deltas.
var directions = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Board is an 8x8 grid of cells. It is a value type: every method that changes the
// board returns a new copy.
type Board [Size][Size]Color

// NewBoardStart creates a new board with the starting position.
func NewBoardStart() Board {
	var b Board
	b[3][3], b[4][4] = White, White
	b[3][4], b[4][3] = Black, Black
	return b
}

// NewBoardEmpty creates a board without any discs.
func NewBoardEmpty() Board {
	return Board{}
}

// NewBoardFromString parses 64 row-major characters: 'X' for Black, 'O' for White
// and '-' for an empty cell. Whitespace is ignored.
func NewBoardFromString(s string) (Board, error) {
	s = strings.Join(strings.Fields(s), "")

	if len(s) != Size*Size {
		return Board{}, fmt.Errorf("%w: board string must be %d characters long, got %d", ErrInvalidBoard, Size*Size, len(s))
	}

	var b Board
	for i, c := range s {
		switch c {
		case 'X', 'x':
			b[i/Size][i%Size] = Black
		case 'O', 'o':
			b[i/Size][i%Size] = White
		case '-', '.':
			b[i/Size][i%Size] = Empty
		default:
			return Board{}, fmt.Errorf("%w: unexpected character %q at index %d", ErrInvalidBoard, c, i)
		}
	}

	return b, nil
}

// MustNewBoardFromString is like NewBoardFromString but panics on invalid input.
func MustNewBoardFromString(s string) Board {
	b, err := NewBoardFromString(s)
	if err != nil {
		panic(err)
	}
	return b
}

// String returns the string representation accepted by NewBoardFromString.
func (b Board) String() string {
	var sb strings.Builder
	sb.Grow(Size * Size)

	for row := range Size {
		for col := range Size {
			switch b[row][col] {
			case Black:
				sb.WriteByte('X')
			case White:
				sb.WriteByte('O')
			default:
				sb.WriteByte('-')
			}
		}
	}

	return sb.String()
}

// At returns the cell at the given row and column.
func (b Board) At(row, col int) Color {
	return b[row][col]
}

func outOfBounds(row, col int) bool {
	return row < 0 || row >= Size || col < 0 || col >= Size
}

// IsValidMove checks if the mover can place a disc on the move's cell.
func (b Board) IsValidMove(move Move, mover Color) bool {
	if move.IsPass() {
		return !b.HasMoves(mover)
	}
	return b.captures(move.row, move.col, mover)
}

// captures checks if placing a mover disc on (row, col) brackets at least one opponent run.
func (b Board) captures(row, col int, mover Color) bool {
	if outOfBounds(row, col) || b[row][col] != Empty {
		return false
	}

	for _, dir := range directions {
		if b.runLength(row, col, dir[0], dir[1], mover) > 0 {
			return true
		}
	}

	return false
}

// runLength returns the number of opponent discs that a mover disc on (row, col) would flip
// in the given direction. It returns 0 when the run is empty or not terminated by a mover disc.
func (b Board) runLength(row, col, dRow, dCol int, mover Color) int {
	opponent := mover.Opponent()

	s := 1
	for {
		r, c := row+dRow*s, col+dCol*s
		if outOfBounds(r, c) {
			return 0
		}

		switch b[r][c] {
		case opponent:
			s++
		case mover:
			return s - 1
		default:
			return 0
		}
	}
}

// Moves returns all valid moves for the mover in row-major order. Each move's Score is set
// to the score of the board after the move is played. An empty slice means the mover must pass.
func (b Board) Moves(mover Color) []Move {
	moves := make([]Move, 0)

	for row := range Size {
		for col := range Size {
			if !b.captures(row, col, mover) {
				continue
			}

			move := NewMove(row, col)
			move.Score = b.DoMove(move, mover).Score()
			moves = append(moves, move)
		}
	}

	return moves
}

// HasMoves returns whether the mover has any valid move.
func (b Board) HasMoves(mover Color) bool {
	for row := range Size {
		for col := range Size {
			if b.captures(row, col, mover) {
				return true
			}
		}
	}
	return false
}

// DoMove returns a new board with the move played by the mover.
// A pass returns an unchanged copy. The move must be valid, this is not checked.
func (b Board) DoMove(move Move, mover Color) Board {
	if move.IsPass() {
		return b
	}

	b[move.row][move.col] = mover

	for _, dir := range directions {
		flips := b.runLength(move.row, move.col, dir[0], dir[1], mover)
		for s := 1; s <= flips; s++ {
			b[move.row+dir[0]*s][move.col+dir[1]*s] = mover
		}
	}

	return b
}

// Score returns the disc differential: positive favors Black, negative favors White.
func (b Board) Score() int {
	score := 0
	for row := range Size {
		for col := range Size {
			score += int(b[row][col])
		}
	}
	return score
}

// Count returns the number of cells holding the given color.
func (b Board) Count(color Color) int {
	count := 0
	for row := range Size {
		for col := range Size {
			if b[row][col] == color {
				count++
			}
		}
	}
	return count
}

// CountDiscs returns the number of discs on the board.
func (b Board) CountDiscs() int {
	return Size*Size - b.Count(Empty)
}

// Swapped returns the board with all Black and White discs exchanged.
func (b Board) Swapped() Board {
	for row := range Size {
		for col := range Size {
			b[row][col] = -b[row][col]
		}
	}
	return b
}

// ASCIIArtLines returns the ascii art lines for the board. Valid moves of the mover are dotted.
func (b Board) ASCIIArtLines(mover Color) []string {
	lines := make([]string, Size+2) //nolint:mnd

	lines[0] = "+-a-b-c-d-e-f-g-h-+"
	for row := range Size {
		line := fmt.Sprintf("%d ", row+1)

		for col := range Size {
			switch {
			case b[row][col] == White:
				line += "○ "
			case b[row][col] == Black:
				line += "● "
			case mover != Empty && b.captures(row, col, mover):
				line += "· "
			default:
				line += "  "
			}
		}

		lines[row+1] = line + "|"
	}

	lines[Size+1] = "+-----------------+"

	return lines
}
