package board

import (
	"errors"
	"fmt"
	"strings"

	"github.com/daystram/gambit-lite/position"
)

var ErrInvalidSide = errors.New("invalid side")

type Side uint8

const (
	SideUnknown Side = iota
	SideWhite
	SideBlack
)

func (s Side) String() string {
	switch s {
	case SideWhite:
		return "White"
	case SideBlack:
		return "Black"
	default:
		return ""
	}
}

// ParseSide accepts "white", "black", "w" or "b" in any case.
func ParseSide(str string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(str)) {
	case "white", "w":
		return SideWhite, nil
	case "black", "b":
		return SideBlack, nil
	default:
		return SideUnknown, fmt.Errorf("%w: %q", ErrInvalidSide, str)
	}
}

func (s Side) Opposite() Side {
	switch s {
	case SideWhite:
		return SideBlack
	case SideBlack:
		return SideWhite
	default:
		return SideUnknown
	}
}

// Forward returns the row delta of a single pawn advance.
func (s Side) Forward() int {
	if s == SideWhite {
		return -1
	}
	return 1
}

// PawnRow returns the row pawns of this side start on.
func (s Side) PawnRow() position.Pos {
	if s == SideWhite {
		return 6
	}
	return 1
}
