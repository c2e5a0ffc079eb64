package controller

import (
	"errors"

	"github.com/benbeisheim/chessmaster-backend/internal/model"
	"github.com/benbeisheim/chessmaster-backend/internal/service"
	"github.com/gofiber/fiber/v2"
)

type GameController struct {
	gameService *service.GameService
}

func NewGameController(gameService *service.GameService) *GameController {
	return &GameController{gameService: gameService}
}

type createGameRequest struct {
	Pieces []model.PieceSpec `json:"pieces"`
}

// statusFor maps domain errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrGameNotFound), errors.Is(err, model.ErrNoSuchPiece):
		return fiber.StatusNotFound
	case errors.Is(err, model.ErrLabelTaken):
		return fiber.StatusConflict
	case errors.Is(err, model.ErrIllegalMove):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, model.ErrInvalidSquare), errors.Is(err, model.ErrUnknownPieceType),
		errors.Is(err, model.ErrUnknownColor):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

func errorResponse(c *fiber.Ctx, err error) error {
	return c.Status(statusFor(err)).JSON(fiber.Map{
		"error": err.Error(),
	})
}

func (gc *GameController) CreateGame(c *fiber.Ctx) error {
	var req createGameRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid request body",
			})
		}
	}

	gameID, err := gc.gameService.CreateGame(req.Pieces)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "Match created",
		"match_id": gameID,
	})
}

func (gc *GameController) GetGameState(c *fiber.Ctx) error {
	gameState, err := gc.gameService.GetGameState(c.Params("matchId"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(gameState)
}

func (gc *GameController) MakeMove(c *fiber.Ctx) error {
	var move model.MoveRequest
	if err := c.BodyParser(&move); err != nil || move.Piece == "" || move.Target == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "piece and target are required",
		})
	}

	rec, err := gc.gameService.HandleMove(c.Params("matchId"), move)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(rec)
}

func (gc *GameController) ResetGame(c *fiber.Ctx) error {
	gameState, err := gc.gameService.ResetGame(c.Params("matchId"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(gameState)
}

func (gc *GameController) GetLog(c *fiber.Ctx) error {
	moves, err := gc.gameService.GetLog(c.Params("matchId"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{
		"count": len(moves),
		"moves": moves,
	})
}

func (gc *GameController) IsLegalMove(c *fiber.Ctx) error {
	move := model.MoveRequest{
		Piece:  c.Query("piece"),
		Target: c.Query("target"),
	}
	if move.Piece == "" || move.Target == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "piece and target are required",
		})
	}

	legal, err := gc.gameService.IsLegalMove(c.Params("matchId"), move)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{
		"legal": legal,
	})
}

func (gc *GameController) LegalTargets(c *fiber.Ctx) error {
	targets, err := gc.gameService.LegalTargets(c.Params("matchId"), c.Params("piece"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{
		"piece":   c.Params("piece"),
		"targets": targets,
	})
}

// TranslateSquare exposes the algebraic to numeric conversion.
func (gc *GameController) TranslateSquare(c *fiber.Ctx) error {
	tile := c.Params("tile")
	sq, ok := model.ToNumeric(tile)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "not a square: " + tile,
		})
	}
	return c.JSON(sq)
}
