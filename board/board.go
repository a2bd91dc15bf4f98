package board

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/daystram/gambit-lite/position"
)

const (
	Width      = position.MaxComponentScalar
	Height     = position.MaxComponentScalar
	TotalCells = position.TotalCells

	DefaultStartingPositionFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
)

var (
	ErrInvalidFEN  = errors.New("invalid fen")
	ErrInvalidMove = errors.New("invalid move")
)

var (
	colorCellLight     = color.New(color.FgBlack, color.BgHiWhite)
	colorCellDark      = color.New(color.FgBlack, color.BgGreen)
	colorCellHighlight = color.New(color.FgBlack, color.BgYellow)
	colorLabel         = color.New(color.Bold)
)

// Board is a full position: the 8x8 grid plus castling rights. It is a plain
// value; every operation that changes it returns a new Board, so copies used
// for simulation never alias the caller's board. The side to move is tracked
// by the caller.
type Board struct {
	cells        [TotalCells]Cell
	castleRights CastleRights
}

type boardConfig struct {
	fen string
}

type BoardOption func(*boardConfig)

func WithFEN(fen string) BoardOption {
	return func(cfg *boardConfig) {
		cfg.fen = fen
	}
}

// NewBoard returns the board described by the options, defaulting to the
// standard starting position, together with the side to move.
func NewBoard(opts ...BoardOption) (Board, Side, error) {
	cfg := &boardConfig{
		fen: DefaultStartingPositionFEN,
	}
	for _, f := range opts {
		f(cfg)
	}
	var b Board
	turn, err := UnmarshalFEN(cfg.fen, &b)
	if err != nil {
		return Board{}, SideUnknown, err
	}
	return b, turn, nil
}

// NewStartingBoard returns the standard initial position with full castling rights.
func NewStartingBoard() Board {
	b, _, err := NewBoard()
	if err != nil {
		panic(err)
	}
	return b
}

func (b Board) Get(pos position.Pos) Cell {
	if !pos.IsValid() {
		return CellEmpty
	}
	return b.cells[pos]
}

// With returns a copy of the board with c placed on pos.
func (b Board) With(pos position.Pos, c Cell) Board {
	if pos.IsValid() {
		b.cells[pos] = c
	}
	return b
}

func (b Board) CastleRights() CastleRights {
	return b.castleRights
}

// WithCastleRights returns a copy of the board carrying the given rights.
func (b Board) WithCastleRights(c CastleRights) Board {
	b.castleRights = c
	return b
}

// FindKing returns the square of the King of s. A missing King is reported
// with ok=false.
func (b Board) FindKing(s Side) (position.Pos, bool) {
	king := NewCell(s, PieceKing)
	for pos := position.Pos(0); pos < TotalCells; pos++ {
		if b.cells[pos] == king {
			return pos, true
		}
	}
	return position.Invalid, false
}

// Apply returns the board after mv has been played. The piece on mv.From is
// moved regardless of legality; callers validate first. Castling relocates the
// rook and castling rights are revoked as kings and rooks leave, or are
// captured on, their home squares.
func (b Board) Apply(mv Move) Board {
	moving := b.cells[mv.From]
	if moving.IsEmpty() {
		return b
	}
	s, p := moving.Side(), moving.Piece()
	captured := b.cells[mv.To]

	b.cells[mv.To] = moving
	b.cells[mv.From] = CellEmpty

	switch p {
	case PieceKing:
		if d := castleDirectionOf(s, mv.From, mv.To); d != CastleDirectionUnknown {
			hops := posCastling[d]
			b.cells[hops.rookTo] = b.cells[hops.rook]
			b.cells[hops.rook] = CellEmpty
		}
		for _, d := range castleDirections(s) {
			b.castleRights.Set(d, false)
		}
	case PieceRook:
		if d := castleDirectionOfRook(s, mv.From); d != CastleDirectionUnknown {
			b.castleRights.Set(d, false)
		}
	}
	if captured.Piece() == PieceRook {
		if d := castleDirectionOfRook(captured.Side(), mv.To); d != CastleDirectionUnknown {
			b.castleRights.Set(d, false)
		}
	}
	return b
}

// Material returns the count of each piece kind owned by s.
func (b Board) Material(s Side) map[Piece]int {
	m := make(map[Piece]int, len(Pieces))
	for _, c := range b.cells {
		if !c.IsEmpty() && c.Side() == s {
			m[c.Piece()]++
		}
	}
	return m
}

func (b Board) Dump() string {
	builder := strings.Builder{}
	for y := position.Pos(0); y < Height; y++ {
		_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n")
		_, _ = builder.WriteString(fmt.Sprintf(" %s |", y.NotationComponentRow()))
		for x := position.Pos(0); x < Width; x++ {
			sym := b.cells[y*Width+x].String()
			if sym == "" {
				sym = " "
			}
			_, _ = builder.WriteString(fmt.Sprintf(" %s |", sym))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n   ")
	for x := position.Pos(0); x < Width; x++ {
		_, _ = builder.WriteString(fmt.Sprintf("  %s ", x.NotationComponentCol()))
	}
	return builder.String()
}

// Draw renders the board with unicode pieces on coloured squares. Highlighted
// squares are marked, e.g. the legal destinations of a selected piece.
func (b Board) Draw(highlights ...position.Pos) string {
	marked := make(map[position.Pos]bool, len(highlights))
	for _, pos := range highlights {
		marked[pos] = true
	}
	builder := strings.Builder{}
	for y := position.Pos(0); y < Height; y++ {
		_, _ = builder.WriteString(colorLabel.Sprintf(" %s ", y.NotationComponentRow()))
		for x := position.Pos(0); x < Width; x++ {
			pos := y*Width + x
			c := b.cells[pos]
			sym := c.Piece().SymbolUnicode(c.Side())
			if c.IsEmpty() {
				sym = " "
				if marked[pos] {
					sym = "·"
				}
			}
			paint := colorCellLight
			switch {
			case marked[pos]:
				paint = colorCellHighlight
			case x%2^y%2 == 1:
				paint = colorCellDark
			}
			_, _ = builder.WriteString(paint.Sprintf(" %s ", sym))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   ")
	for x := position.Pos(0); x < Width; x++ {
		_, _ = builder.WriteString(colorLabel.Sprintf(" %s ", x.NotationComponentCol()))
	}
	return builder.String()
}

func (b Board) DebugString(turn Side) string {
	return fmt.Sprintf("cast: %04b\nturn: %s\nstat: %s", b.castleRights, turn, b.State(turn))
}
