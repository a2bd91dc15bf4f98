package main

import (
	"errors"
	"fmt"
	"log"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/daystram/gambit-lite/board"
	"github.com/daystram/gambit-lite/engine"
	"github.com/daystram/gambit-lite/game"
)

func selfplay(fen string, steps int, d engine.Difficulty, seed uint64) error {
	e := engine.NewEngine(&engine.EngineConfig{
		Difficulty: d,
		Seed:       seed,
		Logger:     func(...any) {},
	})
	g, err := game.New(game.WithFEN(fen), game.WithEngine(e))
	if err != nil {
		return err
	}
	log.Printf("=============== selfplay %s (%s)\n", g.ID(), d)
	fmt.Println(g.Board().Draw())
	fmt.Println(g.FEN())
	fmt.Println(g.Board().DebugString(g.Turn()))

	var timesSearch []time.Duration
	for g.State().IsRunning() && len(g.History()) < 2*steps {
		t1 := time.Now()
		mv, st, err := g.PlayEngine()
		if err != nil {
			if errors.Is(err, engine.ErrNoMove) {
				break
			}
			return err
		}
		timesSearch = append(timesSearch, time.Since(t1))

		fmt.Printf("\n>>> [#%d] %s: %s\n", len(g.History())/2+len(g.History())%2, mv.IsTurn, mv)
		fmt.Println(g.FEN())
		fmt.Println(g.Board().Draw(mv.From, mv.To))
		if st.IsCheck() {
			fmt.Println(st.Describe())
		}
	}

	log.Println("=============== game ended:", g.State().Describe())
	fmt.Println(g.FEN())
	fmt.Println(g.PGN())
	printSummary(g, timesSearch)
	return nil
}

func printSummary(g *game.Game, times []time.Duration) {
	var total time.Duration
	for _, t := range times {
		total += t
	}
	var avg time.Duration
	if len(times) > 0 {
		avg = total / time.Duration(len(times))
	}
	material := func(s board.Side) int {
		var n int
		for p, c := range g.Board().Material(s) {
			if p != board.PieceKing {
				n += c
			}
		}
		return n
	}
	fmt.Println(message.NewPrinter(language.English).
		Sprintf("plies=%d search=%s (avg %s) pieces white=%d black=%d",
			len(g.History()), total, avg, material(board.SideWhite), material(board.SideBlack)))
}
