package board

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/daystram/gambit-lite/position"
)

// UnmarshalFEN loads the piece placement and castling rights of fen into b and
// returns the side to move. En passant and clock fields are validated but not
// kept, the rule set has no use for them. The two clock fields may be omitted.
func UnmarshalFEN(fen string, b *Board) (Side, error) {
	if b == nil {
		return SideUnknown, fmt.Errorf("invalid board")
	}
	segments := strings.Fields(fen)
	if len(segments) != 4 && len(segments) != 6 {
		return SideUnknown, fmt.Errorf("%w: incorrect number of segments", ErrInvalidFEN)
	}

	var bb Board
	rows := strings.Split(segments[0], "/")
	if len(rows) != int(Height) {
		return SideUnknown, fmt.Errorf("%w: invalid board configuration", ErrInvalidFEN)
	}
	kings := map[Side]int{}
	for y, row := range rows {
		x := position.Pos(0)
		for _, sym := range row {
			if x >= Width {
				return SideUnknown, fmt.Errorf("%w: too many cells in row %d", ErrInvalidFEN, y+1)
			}
			if sym >= '1' && sym <= '8' {
				skip := position.Pos(sym - '0')
				if x+skip > Width {
					return SideUnknown, fmt.Errorf("%w: skip out of bounds", ErrInvalidFEN)
				}
				x += skip
				continue
			}
			c, ok := cellFromFEN(sym)
			if !ok {
				return SideUnknown, fmt.Errorf("%w: unknown symbol '%s'", ErrInvalidFEN, string(sym))
			}
			if c.Piece() == PieceKing {
				kings[c.Side()]++
			}
			bb.cells[position.Pos(y)*Width+x] = c
			x++
		}
		if x != Width {
			return SideUnknown, fmt.Errorf("%w: missing cells", ErrInvalidFEN)
		}
	}
	if kings[SideWhite] > 1 || kings[SideBlack] > 1 {
		return SideUnknown, fmt.Errorf("%w: more than one king per side", ErrInvalidFEN)
	}

	var turn Side
	switch segments[1] {
	case "w":
		turn = SideWhite
	case "b":
		turn = SideBlack
	default:
		return SideUnknown, fmt.Errorf("%w: invalid turn", ErrInvalidFEN)
	}

	if len(segments[2]) > 4 {
		return SideUnknown, fmt.Errorf("%w: invalid castling rights", ErrInvalidFEN)
	}
crLoop:
	for i, e := range segments[2] {
		switch e {
		case 'K':
			bb.castleRights.Set(CastleDirectionWhiteRight, true)
		case 'k':
			bb.castleRights.Set(CastleDirectionBlackRight, true)
		case 'Q':
			bb.castleRights.Set(CastleDirectionWhiteLeft, true)
		case 'q':
			bb.castleRights.Set(CastleDirectionBlackLeft, true)
		default:
			if i == 0 && e == '-' && len(segments[2]) == 1 {
				break crLoop
			}
			return SideUnknown, fmt.Errorf("%w: invalid castling rights", ErrInvalidFEN)
		}
	}

	if segments[3] != "-" {
		if _, err := position.NewPosFromNotation(segments[3]); err != nil {
			return SideUnknown, fmt.Errorf("%w: invalid enpassant position: %v", ErrInvalidFEN, err)
		}
	}

	if len(segments) == 6 {
		if _, err := strconv.ParseUint(segments[4], 10, 16); err != nil {
			return SideUnknown, fmt.Errorf("%w: invalid half move clock", ErrInvalidFEN)
		}
		if _, err := strconv.ParseUint(segments[5], 10, 16); err != nil {
			return SideUnknown, fmt.Errorf("%w: invalid full move clock", ErrInvalidFEN)
		}
	}

	*b = bb
	return turn, nil
}

// FullMoveClockFromFEN returns the full move number recorded in fen, or 1 when
// the field is missing or not a positive number.
func FullMoveClockFromFEN(fen string) int {
	segments := strings.Fields(fen)
	if len(segments) != 6 {
		return 1
	}
	n, err := strconv.ParseUint(segments[5], 10, 16)
	if err != nil || n == 0 {
		return 1
	}
	return int(n)
}

// MarshalFEN encodes b with the given side to move and full move number. The
// en passant and half move fields are always written empty.
func MarshalFEN(b Board, turn Side, fullMoveClock int) string {
	builder := strings.Builder{}
	for y := position.Pos(0); y < Height; y++ {
		var skip uint8
		for x := position.Pos(0); x < Width; x++ {
			c := b.cells[y*Width+x]
			if c.IsEmpty() {
				skip++
				continue
			}
			if skip != 0 {
				_, _ = builder.WriteRune(rune(skip + '0'))
				skip = 0
			}
			_, _ = builder.WriteString(c.String())
		}
		if skip != 0 {
			_, _ = builder.WriteRune(rune(skip + '0'))
		}
		if y < Height-1 {
			_, _ = builder.WriteRune('/')
		}
	}

	if turn == SideBlack {
		_, _ = builder.WriteString(" b ")
	} else {
		_, _ = builder.WriteString(" w ")
	}

	if b.castleRights == 0 {
		_, _ = builder.WriteRune('-')
	} else {
		if b.castleRights.IsAllowed(CastleDirectionWhiteRight) {
			_, _ = builder.WriteRune('K')
		}
		if b.castleRights.IsAllowed(CastleDirectionWhiteLeft) {
			_, _ = builder.WriteRune('Q')
		}
		if b.castleRights.IsAllowed(CastleDirectionBlackRight) {
			_, _ = builder.WriteRune('k')
		}
		if b.castleRights.IsAllowed(CastleDirectionBlackLeft) {
			_, _ = builder.WriteRune('q')
		}
	}

	if fullMoveClock < 1 {
		fullMoveClock = 1
	}
	_, _ = builder.WriteString(fmt.Sprintf(" - 0 %d", fullMoveClock))

	return builder.String()
}

// FEN encodes the board with the given side to move.
func (b Board) FEN(turn Side) string {
	return MarshalFEN(b, turn, 1)
}
