package main

import (
	"fmt"
	"log"
	"strconv"

	"github.com/daystram/gambit-lite/board"
)

func movegen(fen string, draw bool) error {
	log.Println("============ movegen")
	b, turn, err := board.NewBoard(board.WithFEN(fen))
	if err != nil {
		return err
	}
	fmt.Println("to move:", turn)
	fmt.Println(b.Dump())
	fmt.Println(b.Draw())
	fmt.Println(b.State(turn))
	dumpMoves(b, turn)

	if draw {
		for _, mv := range b.GenerateLegalMoves(turn) {
			bb := b.Apply(mv)
			fmt.Println(mv)
			fmt.Println(bb.Draw(mv.From, mv.To))
			fmt.Println(bb.FEN(turn.Opposite()))
		}
	}
	return nil
}

func dumpMoves(b board.Board, turn board.Side) {
	pseudo := b.GeneratePseudoLegalMoves(turn)
	mvs := b.GenerateLegalMoves(turn)
	for i, mv := range mvs {
		fmt.Printf("option %*d: [%s] [%s] %s %s %s => %s (cap=%v) (cas=%v) (chk=%v)\n",
			len(strconv.Itoa(len(mvs))), i+1, mv.UCI(), mv.Algebra(), mv.IsTurn, mv.Piece.Name(), mv.From, mv.To, mv.IsCapture, mv.IsCastle != board.CastleDirectionUnknown, mv.IsCheck)
	}
	fmt.Printf("%d legal of %d pseudo-legal moves\n", len(mvs), len(pseudo))
}
