// service/game_manager.go
package service

import (
	"errors"
	"fmt"
	"sync"

	"github.com/benbeisheim/chessmaster-backend/internal/model"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

var ErrGameNotFound = errors.New("game not found")

type GameManager struct {
	games map[string]*model.Game
	mu    sync.RWMutex
}

func NewGameManager() *GameManager {
	return &GameManager{
		games: make(map[string]*model.Game),
	}
}

// CreateGame registers a new game. With no pieces the standard layout is used.
func (gm *GameManager) CreateGame(pieces []model.PieceSpec) (string, error) {
	match, err := buildMatch(pieces)
	if err != nil {
		return "", err
	}

	gameID := uuid.New().String()
	gm.mu.Lock()
	defer gm.mu.Unlock()
	if _, exists := gm.games[gameID]; exists {
		return "", errors.New("game already exists")
	}
	gm.games[gameID] = model.NewGame(gameID, match)
	log.Infof("created game %s with %d pieces", gameID, len(match.Labels()))
	return gameID, nil
}

func buildMatch(specs []model.PieceSpec) (*model.Match, error) {
	if len(specs) == 0 {
		return model.NewStandardMatch(), nil
	}
	pieces := make([]*model.Piece, 0, len(specs))
	for _, spec := range specs {
		p, err := spec.Build()
		if err != nil {
			return nil, fmt.Errorf("invalid piece: %w", err)
		}
		pieces = append(pieces, p)
	}
	return model.NewMatch(pieces...)
}

func (gm *GameManager) GetGame(gameID string) (*model.Game, error) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	game, exists := gm.games[gameID]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrGameNotFound, gameID)
	}
	return game, nil
}

func (gm *GameManager) GetGameState(gameID string) (model.GameState, error) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return model.GameState{}, err
	}
	return game.GetState(), nil
}

// MakeMove holds only the manager's read lock; the game's match serializes moves.
func (gm *GameManager) MakeMove(gameID string, move model.MoveRequest) (model.MoveRecord, error) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return model.MoveRecord{}, err
	}
	return game.MakeMove(move)
}

func (gm *GameManager) ResetGame(gameID string) (model.GameState, error) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return model.GameState{}, err
	}
	return game.Reset(), nil
}

func (gm *GameManager) IsLegalMove(gameID string, move model.MoveRequest) (bool, error) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return false, err
	}
	return game.IsLegalMove(move)
}

func (gm *GameManager) LegalTargets(gameID, label string) ([]string, error) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return nil, err
	}
	return game.Match().LegalTargets(label)
}

func (gm *GameManager) GetLog(gameID string) ([]model.MoveRecord, error) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return nil, err
	}
	return game.Match().Log(), nil
}

func (gm *GameManager) RegisterConnection(gameID string, clientID string, conn model.Conn) error {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return err
	}
	return game.RegisterConnection(clientID, conn)
}

func (gm *GameManager) UnregisterConnection(gameID string, clientID string) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return
	}
	game.UnregisterConnection(clientID)
}
