package httpapi

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/daystram/gambit-lite/board"
	"github.com/daystram/gambit-lite/engine"
	"github.com/daystram/gambit-lite/game"
	"github.com/daystram/gambit-lite/position"
)

var ErrBadRequest = errors.New("bad request")

type GameController struct {
	gameManager *GameManager
	logger      func(...any)
}

func NewGameController(gameManager *GameManager, logger func(...any)) *GameController {
	return &GameController{
		gameManager: gameManager,
		logger:      logger,
	}
}

func (gc *GameController) CreateGame(c *fiber.Ctx) error {
	var req createRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fmt.Errorf("%w: %w", ErrBadRequest, err))
		}
	}

	opts := CreateOptions{
		FEN:    req.FEN,
		Seed:   req.Seed,
		Logger: gc.logger,
	}
	if req.Side != "" {
		side, err := board.ParseSide(req.Side)
		if err != nil {
			return writeError(c, err)
		}
		opts.HumanSide = side
	}
	difficulty, err := engine.ParseDifficulty(req.Difficulty)
	if err != nil {
		return writeError(c, err)
	}
	opts.Difficulty = difficulty

	state, err := gc.gameManager.CreateGame(opts)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(state)
}

func (gc *GameController) GetGameState(c *fiber.Ctx) error {
	state, err := gc.gameManager.GetGameState(c.Params("gameId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(state)
}

func (gc *GameController) GetLegalMoves(c *fiber.Ctx) error {
	from, err := position.NewPosFromNotation(c.Query("from"))
	if err != nil {
		return writeError(c, err)
	}
	mvs, err := gc.gameManager.LegalMoves(c.Params("gameId"), from)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{
		"from":  from.Notation(),
		"moves": mvs,
	})
}

func (gc *GameController) MakeMove(c *fiber.Ctx) error {
	var req moveRequest
	if err := c.BodyParser(&req); err != nil {
		return writeError(c, fmt.Errorf("%w: %w", ErrBadRequest, err))
	}
	if req.Move != "" {
		if len(req.Move) != 4 {
			return writeError(c, fmt.Errorf("%w: %q", board.ErrInvalidMove, req.Move))
		}
		req.From, req.To = req.Move[:2], req.Move[2:]
	}
	from, err := position.NewPosFromNotation(req.From)
	if err != nil {
		return writeError(c, err)
	}
	to, err := position.NewPosFromNotation(req.To)
	if err != nil {
		return writeError(c, err)
	}

	res, err := gc.gameManager.MakeMove(c.Params("gameId"), from, to)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(res)
}

func (gc *GameController) ResetGame(c *fiber.Ctx) error {
	state, err := gc.gameManager.ResetGame(c.Params("gameId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(state)
}

func (gc *GameController) DeleteGame(c *fiber.Ctx) error {
	if err := gc.gameManager.DeleteGame(c.Params("gameId")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func writeError(c *fiber.Ctx, err error) error {
	return c.Status(statusOf(err)).JSON(fiber.Map{
		"error": err.Error(),
	})
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, ErrGameNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, game.ErrGameOver), errors.Is(err, game.ErrNotTurn):
		return fiber.StatusConflict
	case errors.Is(err, board.ErrInvalidMove), errors.Is(err, position.ErrInvalidNotation):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, ErrBadRequest), errors.Is(err, board.ErrInvalidFEN),
		errors.Is(err, board.ErrInvalidSide), errors.Is(err, engine.ErrUnknownDifficulty):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}
