package model

import (
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/benbeisheim/chessmaster-backend/internal/ws"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/websocket/v2"
)

// ErrAlreadyConnected is returned when a client opens a second connection to the same game.
var ErrAlreadyConnected = errors.New("connection already exists")

// Conn is the part of a websocket connection a game writes to.
type Conn interface {
	WriteJSON(v interface{}) error
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// The connections observing a specific game
type GameConnections struct {
	connections map[string]Conn // clientID -> connection
	mu          sync.RWMutex
}

// Game is one match plus the clients watching it.
type Game struct {
	ID          string
	CreatedAt   time.Time
	match       *Match
	connections *GameConnections
	// broadcastMu orders broadcasts; each reads state only once it holds the lock.
	broadcastMu sync.Mutex
}

type GameState struct {
	ID        string                `json:"id"`
	Pieces    map[string]PieceState `json:"pieces"`
	Log       []MoveRecord          `json:"log"`
	MoveCount int                   `json:"moveCount"`
	FEN       string                `json:"fen"`
	LastMove  *MoveRecord           `json:"lastMove"`
}

func NewGame(id string, match *Match) *Game {
	if match == nil {
		match = NewStandardMatch()
	}
	return &Game{
		ID:          id,
		CreatedAt:   time.Now(),
		match:       match,
		connections: NewGameConnections(),
	}
}

func NewGameConnections() *GameConnections {
	return &GameConnections{
		connections: make(map[string]Conn),
	}
}

func (g *Game) Match() *Match {
	return g.match
}

func (g *Game) GetState() GameState {
	pieces, movesLog, fen := g.match.Snapshot()
	state := GameState{
		ID:        g.ID,
		Pieces:    pieces,
		Log:       movesLog,
		MoveCount: len(movesLog),
		FEN:       fen,
	}
	if len(movesLog) > 0 {
		last := movesLog[len(movesLog)-1]
		state.LastMove = &last
	}
	return state
}

func (g *Game) MakeMove(move MoveRequest) (MoveRecord, error) {
	rec, err := g.match.Move(move.Piece, move.Target)
	if err != nil {
		log.Debugf("game %s: rejected move %s -> %s: %v", g.ID, move.Piece, move.Target, err)
		return MoveRecord{}, err
	}
	log.Infof("game %s: %s -> %s", g.ID, rec.From, rec.To)
	go g.broadcastState()
	return rec, nil
}

func (g *Game) Reset() GameState {
	g.match.Reset()
	log.Infof("game %s: reset to standard layout", g.ID)
	go g.broadcastState()
	return g.GetState()
}

func (g *Game) IsLegalMove(move MoveRequest) (bool, error) {
	return g.match.IsLegalMove(move.Piece, move.Target)
}

func (g *Game) RegisterConnection(clientID string, conn Conn) error {
	if clientID == "" {
		return errors.New("client ID is required")
	}

	g.connections.mu.Lock()
	if _, exists := g.connections.connections[clientID]; exists {
		// Keep the existing connection and reject the new one
		g.connections.mu.Unlock()
		conn.WriteMessage(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(
				websocket.CloseNormalClosure,
				"Connection already exists",
			),
		)
		conn.Close()
		return ErrAlreadyConnected
	}
	g.connections.connections[clientID] = conn
	g.connections.mu.Unlock()
	log.Infof("game %s: registered connection for client %s", g.ID, clientID)

	go g.broadcastState()
	return nil
}

func (g *Game) UnregisterConnection(clientID string) {
	g.connections.mu.Lock()
	defer g.connections.mu.Unlock()

	if _, exists := g.connections.connections[clientID]; exists {
		log.Infof("game %s: unregistering connection for client %s", g.ID, clientID)
		delete(g.connections.connections, clientID)
	}
}

func (g *Game) ConnectionCount() int {
	g.connections.mu.RLock()
	defer g.connections.mu.RUnlock()
	return len(g.connections.connections)
}

// broadcastState sends the current state to every observer. Connections
// that fail to accept the write are dropped. Broadcasts run one at a time
// and read the state after acquiring broadcastMu, so the last one to run
// always carries the newest state.
func (g *Game) broadcastState() {
	g.broadcastMu.Lock()
	defer g.broadcastMu.Unlock()

	g.connections.mu.RLock()
	activeConnections := make(map[string]Conn, len(g.connections.connections))
	for clientID, conn := range g.connections.connections {
		activeConnections[clientID] = conn
	}
	g.connections.mu.RUnlock()

	if len(activeConnections) == 0 {
		return
	}

	jsonGameState, err := json.Marshal(g.GetState())
	if err != nil {
		log.Errorf("game %s: failed to marshal state: %v", g.ID, err)
		return
	}

	var failed []string
	for clientID, conn := range activeConnections {
		if err := conn.WriteJSON(ws.Message{
			Type:    ws.MessageTypeGameState,
			Payload: json.RawMessage(jsonGameState),
		}); err != nil {
			log.Warnf("game %s: failed to send state to client %s: %v", g.ID, clientID, err)
			failed = append(failed, clientID)
		}
	}

	if len(failed) > 0 {
		g.connections.mu.Lock()
		for _, clientID := range failed {
			if g.connections.connections[clientID] == activeConnections[clientID] {
				delete(g.connections.connections, clientID)
			}
		}
		g.connections.mu.Unlock()
	}
}
