package board

import (
	"sort"
	"testing"

	"github.com/dylhunn/dragontoothmg"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// On positions without en passant targets, without pawns about to promote and
// without pawns next to a castling path the reduced rule set coincides with
// full chess, so an independent full-rules generator must agree move for move.
func TestLegalMovesMatchReferenceGenerator(t *testing.T) {
	t.Parallel()
	fens := []string{
		DefaultStartingPositionFEN,
		"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
		"r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R b KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 b - - 0 1",
		"r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10",
		"r3k2r/1bppqppp/p1n2n2/2b1p3/B3P3/2NP1N2/1PP2PPP/R1BQ1RK1 b kq - 2 10",
		"r3kr2/8/8/8/8/8/8/R3K2R w KQq - 0 1",
		"rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3",
		"k7/8/1Q6/8/8/8/8/7K b - - 0 1",
	}

	for _, fen := range fens {
		fen := fen
		t.Run(fen, func(t *testing.T) {
			t.Parallel()
			b, turn := mustBoard(t, fen)
			got := uciMoves(b.GenerateLegalMoves(turn))
			sort.Strings(got)

			ref := dragontoothmg.ParseFen(fen)
			var want []string
			for _, mv := range ref.GenerateLegalMoves() {
				want = append(want, mv.String())
			}
			sort.Strings(want)

			if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("moves differ from reference (-want +got):\n%s", diff)
			}
		})
	}
}
