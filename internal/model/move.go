package model

import "time"

// MoveRecord is one entry of a piece's or match's log. Labels carry the
// piece prefix, e.g. "Ra1" -> "Ra5".
type MoveRecord struct {
	From      string    `json:"from"`
	To        string    `json:"to"`
	Timestamp time.Time `json:"timestamp"`
}

// MoveRequest is a match-level move: the label of the piece and the square to move it to.
type MoveRequest struct {
	Piece  string `json:"piece"`
	Target string `json:"target"`
}

// PieceSpec describes a piece to place when a match is set up by the caller.
type PieceSpec struct {
	Type     PieceType `json:"type"`
	Color    Color     `json:"color"`
	Position string    `json:"position"`
}

func (s PieceSpec) Build() (*Piece, error) {
	return NewPiece(s.Type, s.Color, s.Position)
}
