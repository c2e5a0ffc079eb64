package ws

import (
	"encoding/json"
)

// MessageType represents the different kinds of messages exchanged with match observers
type MessageType string

const (
	MessageTypeMove      MessageType = "move"
	MessageTypeReset     MessageType = "reset"
	MessageTypeGameState MessageType = "gameState"
	MessageTypeError     MessageType = "error"
)

// Message is the envelope for every websocket frame
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// ErrorPayload is sent with MessageTypeError.
type ErrorPayload struct {
	Error string `json:"error"`
}

// NewErrorMessage wraps an error string so the payload stays valid JSON.
func NewErrorMessage(errorMsg string) Message {
	payload, _ := json.Marshal(ErrorPayload{Error: errorMsg})
	return Message{Type: MessageTypeError, Payload: payload}
}
