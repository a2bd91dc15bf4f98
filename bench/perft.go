package bench

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/daystram/gambit-lite/board"
)

// Stats holds perft counters. Everything but Nodes is counted on the moves of
// the last ply only.
type Stats struct {
	Nodes      uint64
	Captures   uint64
	Castles    uint64
	Checks     uint64
	Checkmates uint64
}

func Perft(depth int, fen string, parallel, verbose bool, out chan string) (Stats, error) {
	var stats Stats
	b, turn, err := board.NewBoard(
		board.WithFEN(fen),
	)
	if err != nil {
		return stats, err
	}

	var run perftFunc
	if parallel {
		run = runPerftParallel
	} else {
		run = runPerft
	}

	start := time.Now()
	run(b, turn, depth, true, verbose, out, &stats)
	end := time.Now()

	if out != nil {
		out <- message.NewPrinter(language.English).
			Sprintf("d=%d nodes=%d rate=%dn/s cap=%d cas=%d chk=%d mat=%d (%.3fs elapsed)",
				depth, stats.Nodes, int(float64(stats.Nodes)/end.Sub(start).Seconds()),
				stats.Captures, stats.Castles, stats.Checks, stats.Checkmates, end.Sub(start).Seconds())
	}

	return stats, nil
}

type perftFunc func(b board.Board, turn board.Side, d int, root, verbose bool, out chan string, stats *Stats) uint64

func runPerft(b board.Board, turn board.Side, d int, root, verbose bool, out chan string, stats *Stats) uint64 {
	if d == 0 {
		stats.Nodes++
		return 1
	}

	var sum uint64
	for _, mv := range b.GenerateLegalMoves(turn) {
		var child uint64
		bb := b.Apply(mv)
		if d != 1 {
			child = runPerft(bb, turn.Opposite(), d-1, false, verbose, out, stats)
		} else {
			child = 1
			stats.Nodes++
			if mv.IsCapture {
				stats.Captures++
			}
			if mv.IsCastle != board.CastleDirectionUnknown {
				stats.Castles++
			}
			if mv.IsCheck {
				stats.Checks++
				if !bb.HasLegalMove(turn.Opposite()) {
					stats.Checkmates++
				}
			}
		}
		if verbose && root && out != nil {
			out <- fmt.Sprintf("%s: %d", mv.UCI(), child)
		}
		sum += child
	}
	return sum
}

func runPerftParallel(b board.Board, turn board.Side, d int, root, verbose bool, out chan string, stats *Stats) uint64 {
	if d == 0 {
		atomic.AddUint64(&stats.Nodes, 1)
		return 1
	}

	var sum uint64
	var wg sync.WaitGroup
	for _, mv := range b.GenerateLegalMoves(turn) {
		mv := mv
		wg.Add(1)
		go func() {
			defer wg.Done()
			var child uint64
			bb := b.Apply(mv)
			if d != 1 {
				// only the root fans out, deeper plies run serially into a local tally
				var local Stats
				child = runPerft(bb, turn.Opposite(), d-1, false, false, nil, &local)
				atomic.AddUint64(&stats.Nodes, local.Nodes)
				atomic.AddUint64(&stats.Captures, local.Captures)
				atomic.AddUint64(&stats.Castles, local.Castles)
				atomic.AddUint64(&stats.Checks, local.Checks)
				atomic.AddUint64(&stats.Checkmates, local.Checkmates)
			} else {
				child = 1
				atomic.AddUint64(&stats.Nodes, 1)
				if mv.IsCapture {
					atomic.AddUint64(&stats.Captures, 1)
				}
				if mv.IsCastle != board.CastleDirectionUnknown {
					atomic.AddUint64(&stats.Castles, 1)
				}
				if mv.IsCheck {
					atomic.AddUint64(&stats.Checks, 1)
					if !bb.HasLegalMove(turn.Opposite()) {
						atomic.AddUint64(&stats.Checkmates, 1)
					}
				}
			}
			if verbose && root && out != nil {
				out <- fmt.Sprintf("%s: %d", mv.UCI(), child)
			}
			atomic.AddUint64(&sum, child)
		}()
	}
	wg.Wait()
	return sum
}
