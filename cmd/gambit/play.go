package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/daystram/gambit-lite/board"
	"github.com/daystram/gambit-lite/engine"
	"github.com/daystram/gambit-lite/game"
	"github.com/daystram/gambit-lite/position"
)

const playHelp = `commands:
  e2e4   play a move
  e2     show the legal moves of the piece on e2
  moves  print the game so far
  reset  start over
  quit   leave the game`

func play(fen string, side board.Side, d engine.Difficulty, seed uint64) error {
	e := engine.NewEngine(&engine.EngineConfig{
		Difficulty: d,
		Seed:       seed,
		Logger:     func(...any) {},
	})
	g, err := game.New(game.WithFEN(fen), game.WithHumanSide(side), game.WithEngine(e))
	if err != nil {
		return err
	}
	log.Printf("game %s started: you play %s against a %s engine\n", g.ID(), side, d)
	fmt.Println(playHelp)
	return runPlay(g, os.Stdin, os.Stdout)
}

func runPlay(g *game.Game, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	for {
		for g.State().IsRunning() && g.Turn() != g.HumanSide() {
			mv, _, err := g.PlayEngine()
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "engine plays %s\n", mv)
		}

		fmt.Fprintln(out, g.Board().Draw())
		if !g.State().IsRunning() {
			log.Printf("game %s ended: %s\n", g.ID(), g.State().Describe())
			fmt.Fprintln(out, g.PGN())
			return nil
		}
		if g.State().IsCheck() {
			fmt.Fprintln(out, g.State().Describe())
		}
		fmt.Fprintf(out, "%s to move> ", g.Turn())

		if !scanner.Scan() {
			return scanner.Err()
		}
		switch cmd := strings.TrimSpace(scanner.Text()); {
		case cmd == "":
		case cmd == "quit":
			return nil
		case cmd == "reset":
			if err := g.Reset(); err != nil {
				return err
			}
		case cmd == "moves":
			fmt.Fprintln(out, g.PGN())
		case len(cmd) == 2:
			from, err := position.NewPosFromNotation(cmd)
			if err != nil {
				fmt.Fprintln(out, err)
				continue
			}
			var targets []position.Pos
			for _, mv := range g.LegalMovesFrom(from) {
				targets = append(targets, mv.To)
			}
			if len(targets) == 0 {
				fmt.Fprintf(out, "no legal moves from %s\n", from)
				continue
			}
			fmt.Fprintln(out, g.Board().Draw(targets...))
		default:
			mv, err := g.Board().ParseUCIMove(g.Turn(), cmd)
			if err != nil {
				fmt.Fprintln(out, err)
				continue
			}
			if _, _, err := g.Play(mv.From, mv.To); err != nil {
				if errors.Is(err, game.ErrGameOver) {
					return nil
				}
				fmt.Fprintln(out, err)
			}
		}
	}
}
