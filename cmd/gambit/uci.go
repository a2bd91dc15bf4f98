package main

import (
	"os"

	"github.com/daystram/gambit-lite/uci"
)

func runUCI() error {
	return uci.NewInterface(os.Stdin, os.Stdout).Run()
}
