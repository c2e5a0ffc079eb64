package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/benbeisheim/chessmaster-backend/internal/model"
	"github.com/benbeisheim/chessmaster-backend/internal/service"
	"github.com/benbeisheim/chessmaster-backend/internal/ws"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/websocket/v2"
)

type WebSocketController struct {
	gameService *service.GameService
}

func NewWebSocketController(gameService *service.GameService) *WebSocketController {
	return &WebSocketController{
		gameService: gameService,
	}
}

// lockedConn serializes writes; broadcasts and error replies come from different goroutines.
type lockedConn struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (l *lockedConn) WriteJSON(v interface{}) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.conn.WriteJSON(v)
}

func (l *lockedConn) WriteMessage(messageType int, data []byte) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.conn.WriteMessage(messageType, data)
}

func (l *lockedConn) Close() error {
	return l.conn.Close()
}

// HandleConnection is called when a new WebSocket connection is established
func (wsc *WebSocketController) HandleConnection(c *websocket.Conn) {
	gameID := c.Params("matchId")
	clientID, _ := c.Locals("clientID").(string)
	conn := &lockedConn{conn: c}

	if err := wsc.gameService.RegisterConnection(gameID, clientID, conn); err != nil {
		if errors.Is(err, model.ErrAlreadyConnected) {
			// already closed; the existing connection stays registered
			return
		}
		log.Warnf("failed to register connection for match %s: %v", gameID, err)
		conn.WriteJSON(ws.NewErrorMessage(err.Error()))
		conn.Close()
		return
	}

	for {
		messageType, message, err := c.ReadMessage()
		if err != nil {
			log.Debugf("read error on match %s: %v", gameID, err)
			break
		}
		if messageType != websocket.TextMessage {
			continue
		}

		wsc.handleFrame(conn, gameID, message)
	}

	wsc.gameService.UnregisterConnection(gameID, clientID)
}

// handleFrame decodes and applies one text frame. Failures are reported
// back to the sender only.
func (wsc *WebSocketController) handleFrame(conn model.Conn, gameID string, frame []byte) {
	var msg ws.Message
	if err := json.Unmarshal(frame, &msg); err != nil {
		log.Debugf("parse error on match %s: %v", gameID, err)
		conn.WriteJSON(ws.NewErrorMessage("malformed message"))
		return
	}

	if err := wsc.handleMessage(gameID, msg); err != nil {
		log.Debugf("handle error on match %s: %v", gameID, err)
		conn.WriteJSON(ws.NewErrorMessage(err.Error()))
	}
}

// handleMessage applies one observer message. State changes reach every
// observer through the game's broadcast.
func (wsc *WebSocketController) handleMessage(gameID string, msg ws.Message) error {
	switch msg.Type {
	case ws.MessageTypeMove:
		var move model.MoveRequest
		if err := json.Unmarshal(msg.Payload, &move); err != nil {
			return err
		}
		_, err := wsc.gameService.HandleMove(gameID, move)
		return err

	case ws.MessageTypeReset:
		_, err := wsc.gameService.ResetGame(gameID)
		return err

	default:
		return fmt.Errorf("unknown message type: %s", msg.Type)
	}
}
