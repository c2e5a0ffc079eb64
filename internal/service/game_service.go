package service

import (
	"fmt"

	"github.com/benbeisheim/chessmaster-backend/internal/model"
)

type GameService struct {
	gameManager *GameManager
}

func NewGameService(gameManager *GameManager) *GameService {
	return &GameService{
		gameManager: gameManager,
	}
}

func (gs *GameService) CreateGame(pieces []model.PieceSpec) (string, error) {
	gameID, err := gs.gameManager.CreateGame(pieces)
	if err != nil {
		return "", fmt.Errorf("failed to create game: %w", err)
	}
	return gameID, nil
}

func (gs *GameService) GetGameState(gameID string) (model.GameState, error) {
	return gs.gameManager.GetGameState(gameID)
}

func (gs *GameService) HandleMove(gameID string, move model.MoveRequest) (model.MoveRecord, error) {
	return gs.gameManager.MakeMove(gameID, move)
}

func (gs *GameService) ResetGame(gameID string) (model.GameState, error) {
	return gs.gameManager.ResetGame(gameID)
}

func (gs *GameService) IsLegalMove(gameID string, move model.MoveRequest) (bool, error) {
	return gs.gameManager.IsLegalMove(gameID, move)
}

func (gs *GameService) LegalTargets(gameID, label string) ([]string, error) {
	return gs.gameManager.LegalTargets(gameID, label)
}

func (gs *GameService) GetLog(gameID string) ([]model.MoveRecord, error) {
	return gs.gameManager.GetLog(gameID)
}

func (gs *GameService) RegisterConnection(gameID string, clientID string, conn model.Conn) error {
	return gs.gameManager.RegisterConnection(gameID, clientID, conn)
}

func (gs *GameService) UnregisterConnection(gameID string, clientID string) {
	gs.gameManager.UnregisterConnection(gameID, clientID)
}
