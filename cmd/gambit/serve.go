package main

import (
	"log"
	"os"

	"github.com/daystram/gambit-lite/httpapi"
)

func serve(addr, origins string) error {
	app := httpapi.NewApp(httpapi.Config{
		AllowOrigins: origins,
		AccessLog:    os.Stderr,
		Logger: func(a ...any) {
			log.Println(a...)
		},
	}, httpapi.NewGameManager())

	log.Printf("serving game API on %s\n", addr)
	return app.Listen(addr)
}
