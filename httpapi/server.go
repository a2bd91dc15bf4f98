package httpapi

import (
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

type Config struct {
	// AllowOrigins is passed to the CORS middleware, e.g. "http://localhost:5173".
	AllowOrigins string

	// AccessLog receives one line per request. Nil disables access logging.
	AccessLog io.Writer

	// Logger receives the engine's search lines.
	Logger func(...any)
}

// NewApp wires the game routes:
//
//	POST   /api/game
//	GET    /api/game/:gameId
//	GET    /api/game/:gameId/moves?from=e2
//	POST   /api/game/:gameId/move
//	POST   /api/game/:gameId/reset
//	DELETE /api/game/:gameId
func NewApp(cfg Config, gameManager *GameManager) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "gambit-lite",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	if cfg.AllowOrigins != "" {
		app.Use(cors.New(cors.Config{
			AllowOrigins: cfg.AllowOrigins,
			AllowHeaders: "Origin, Content-Type, Accept",
			AllowMethods: "GET, POST, DELETE, OPTIONS",
		}))
	}
	if cfg.AccessLog != nil {
		app.Use(logger.New(logger.Config{
			Output: cfg.AccessLog,
		}))
	}

	logFn := cfg.Logger
	if logFn == nil {
		logFn = func(...any) {}
	}
	gameController := NewGameController(gameManager, logFn)

	api := app.Group("/api")
	api.Post("/game", gameController.CreateGame)
	gameRoutes := api.Group("/game")
	gameRoutes.Get("/:gameId", gameController.GetGameState)
	gameRoutes.Get("/:gameId/moves", gameController.GetLegalMoves)
	gameRoutes.Post("/:gameId/move", gameController.MakeMove)
	gameRoutes.Post("/:gameId/reset", gameController.ResetGame)
	gameRoutes.Delete("/:gameId", gameController.DeleteGame)

	return app
}
