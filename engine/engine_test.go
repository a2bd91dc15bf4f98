package engine

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/daystram/gambit-lite/board"
	"github.com/daystram/gambit-lite/position"
)

func discard(...any) {}

func mustBoard(t *testing.T, fen string) (board.Board, board.Side) {
	t.Helper()
	b, turn, err := board.NewBoard(board.WithFEN(fen))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return b, turn
}

func TestEvaluate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		fen  string
		want int32
	}{
		{name: "start", fen: board.DefaultStartingPositionFEN, want: 0},
		{name: "extra queen", fen: "4k3/8/8/8/8/8/8/3QK3 w - - 0 1", want: 90},
		{name: "missing queen", fen: "3qk3/8/8/8/8/8/8/4K3 w - - 0 1", want: -90},
		{name: "central pawn", fen: "4k3/8/8/8/4P3/8/8/4K3 w - - 0 1", want: 12},
		{name: "mirrored pawns", fen: "4k3/8/8/4p3/4P3/8/8/4K3 w - - 0 1", want: 0},
		{name: "rim knight", fen: "4k3/8/8/8/8/8/8/N3K3 w - - 0 1", want: 25},
		{name: "missing king", fen: "8/8/8/8/8/8/8/4K3 w - - 0 1", want: 900},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b, _ := mustBoard(t, tt.fen)
			if got := Evaluate(b, board.SideWhite); got != tt.want {
				t.Errorf("unexpected score: got=%d want=%d", got, tt.want)
			}
			if got := Evaluate(b, board.SideBlack); got != -tt.want {
				t.Errorf("unexpected score for black: got=%d want=%d", got, -tt.want)
			}
		})
	}
}

func TestEvaluateIsDeterministic(t *testing.T) {
	t.Parallel()
	b, turn := mustBoard(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	for _, mv := range b.GenerateLegalMoves(turn) {
		bb := b.Apply(mv)
		first := Evaluate(bb, turn)
		for i := 0; i < 3; i++ {
			if got := Evaluate(b.Apply(mv), turn); got != first {
				t.Fatalf("%s: score changed: got=%d want=%d", mv.UCI(), got, first)
			}
		}
	}
}

func TestSearch(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		fen  string
		want string
	}{
		{name: "takes hanging queen", fen: "4k3/8/8/3q4/4P3/8/8/4K3 w - - 0 1", want: "e4d5"},
		{name: "takes defended pawn", fen: "4k3/8/2p5/3p4/8/8/8/3QK3 w - - 0 1", want: "d1d5"},
		{name: "black takes rook", fen: "4k3/8/8/8/8/8/r7/R3K3 b - - 0 1", want: "a2a1"},
		{name: "ties go to first move", fen: "k7/8/8/8/8/8/8/K7 w - - 0 1", want: "a1a2"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b, turn := mustBoard(t, tt.fen)
			e := NewEngine(&EngineConfig{Logger: discard})
			mv, err := e.Search(b, turn)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := mv.UCI(); got != tt.want {
				t.Errorf("unexpected move: got=%s want=%s", got, tt.want)
			}
		})
	}
}

func TestSearchDoesNotMutateBoard(t *testing.T) {
	t.Parallel()
	b, turn := mustBoard(t, board.DefaultStartingPositionFEN)
	before := b
	e := NewEngine(&EngineConfig{Logger: discard})
	if _, err := e.Search(b, turn); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b != before {
		t.Error("board mutated by search")
	}
}

func TestSearchNoMove(t *testing.T) {
	t.Parallel()
	for _, fen := range []string{
		"7k/6Q1/6K1/8/8/8/8/8 b - - 0 1",
		"k7/8/1Q6/8/8/8/8/7K b - - 0 1",
	} {
		b, turn := mustBoard(t, fen)
		e := NewEngine(&EngineConfig{Logger: discard})
		mv, err := e.Search(b, turn)
		if !errors.Is(err, ErrNoMove) {
			t.Errorf("%s: unexpected error: got=%v want=%v", fen, err, ErrNoMove)
		}
		if !mv.IsNull() {
			t.Errorf("%s: unexpected move: %s", fen, mv)
		}
	}
}

func TestSearchWeakness(t *testing.T) {
	t.Parallel()
	b, turn := mustBoard(t, "4k3/8/8/3q4/4P3/8/8/4K3 w - - 0 1")
	best := board.Move{From: position.E4, To: position.D5, Piece: board.PiecePawn, IsTurn: board.SideWhite}

	count := func(d Difficulty, seed uint64) (int, []string) {
		e := NewEngine(&EngineConfig{Difficulty: d, Seed: seed, Logger: discard})
		var others int
		var played []string
		for i := 0; i < 200; i++ {
			mv, err := e.Search(b, turn)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !mv.Equals(best) {
				others++
			}
			played = append(played, mv.UCI())
		}
		return others, played
	}

	if others, _ := count(DifficultyHard, 1); others != 0 {
		t.Errorf("hard engine played %d non-best moves", others)
	}
	if others, _ := count(DifficultyMedium, 1); others != 0 {
		t.Errorf("medium engine played %d non-best moves", others)
	}
	others, first := count(DifficultyEasy, 42)
	if others == 0 || others == 200 {
		t.Errorf("unexpected non-best move count for easy engine: %d", others)
	}
	_, second := count(DifficultyEasy, 42)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("same seed gave different games (-first +second):\n%s", diff)
	}
}

func TestParseDifficulty(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in      string
		want    Difficulty
		wantErr bool
	}{
		{in: "easy", want: DifficultyEasy},
		{in: "Medium", want: DifficultyMedium},
		{in: "hard", want: DifficultyHard},
		{in: "", want: DifficultyHard},
		{in: "grandmaster", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseDifficulty(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrUnknownDifficulty) {
				t.Errorf("%q: unexpected error: got=%v want=%v", tt.in, err, ErrUnknownDifficulty)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("%q: unexpected difficulty: got=%s want=%s", tt.in, got, tt.want)
		}
	}
	if DifficultyEasy.Weakness() != 0.5 || DifficultyHard.Weakness() != 0 {
		t.Error("unexpected weakness mapping")
	}
}

func TestPseudoRand(t *testing.T) {
	t.Parallel()
	r := NewPseudoRand(0)
	for i := 0; i < 1000; i++ {
		if f := r.Float64(); f < 0 || f >= 1 {
			t.Fatalf("float out of range: %f", f)
		}
		if n := r.Intn(7); n < 0 || n >= 7 {
			t.Fatalf("int out of range: %d", n)
		}
	}
}
