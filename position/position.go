package position

import (
	"errors"
)

const (
	// MaxComponentScalar is the maximum component scalar the position system supports.
	MaxComponentScalar Pos = 8

	// TotalCells is the number of squares on the board.
	TotalCells = MaxComponentScalar * MaxComponentScalar

	// Invalid marks a square outside the board.
	Invalid Pos = -1
)

var (
	// ErrInvalidNotation represents an invalid notation error.
	ErrInvalidNotation = errors.New("invalid notation")
)

// Pos is a square index in row-major order. Row 0 is Black's back rank (rank 8)
// and row 7 is White's back rank (rank 1).
type Pos int8

// NewPos returns the square at the given row and column, or Invalid when either
// component falls outside the board.
func NewPos(row, col int) Pos {
	if row < 0 || row >= int(MaxComponentScalar) || col < 0 || col >= int(MaxComponentScalar) {
		return Invalid
	}
	return Pos(row)*MaxComponentScalar + Pos(col)
}

func NewPosFromNotation(n string) (Pos, error) {
	row, col, err := notationToRowCol(n)
	if err != nil {
		return Invalid, err
	}
	return MaxComponentScalar*row + col, nil
}

func (p Pos) String() string {
	return p.Notation()
}

func (p Pos) IsValid() bool {
	return p >= 0 && p < TotalCells
}

func (p Pos) Notation() string {
	if !p.IsValid() {
		return ""
	}
	return p.Col().NotationComponentCol() + p.Row().NotationComponentRow()
}

func (p Pos) Row() Pos {
	return p / MaxComponentScalar
}

func (p Pos) Col() Pos {
	return p % MaxComponentScalar
}

// Offset returns the square shifted by the given row and column deltas, or
// Invalid when it leaves the board.
func (p Pos) Offset(dRow, dCol int) Pos {
	if !p.IsValid() {
		return Invalid
	}
	return NewPos(int(p.Row())+dRow, int(p.Col())+dCol)
}

// Mirror returns the square reflected across the middle of the board by rank.
func (p Pos) Mirror() Pos {
	return (MaxComponentScalar-1-p.Row())*MaxComponentScalar + p.Col()
}

func notationToRowCol(n string) (Pos, Pos, error) {
	if len(n) != 2 {
		return 0, 0, ErrInvalidNotation
	}
	col, err := notationToCol(n[0])
	if err != nil {
		return 0, 0, err
	}
	row, err := notationToRow(n[1])
	if err != nil {
		return 0, 0, err
	}
	return row, col, nil
}

func notationToCol(x byte) (Pos, error) {
	if x < 'a' || x > 'h' {
		return 0, ErrInvalidNotation
	}
	return Pos(x - 'a'), nil
}

func notationToRow(y byte) (Pos, error) {
	if y < '1' || y > '8' {
		return 0, ErrInvalidNotation
	}
	return MaxComponentScalar - Pos(y-'0'), nil
}

func (p Pos) NotationComponentCol() string {
	if p < 0 || MaxComponentScalar <= p {
		return ""
	}
	return string(rune('a' + p))
}

func (p Pos) NotationComponentRow() string {
	if p < 0 || MaxComponentScalar <= p {
		return ""
	}
	return string(rune('0' + MaxComponentScalar - p))
}
