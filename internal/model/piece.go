package model

import (
	"fmt"
	"time"
)

type PieceType string

const (
	Rook   PieceType = "rook"
	Bishop PieceType = "bishop"
	King   PieceType = "king"
)

// Prefix is the single-letter tag used in labels and the move log.
func (p PieceType) Prefix() string {
	switch p {
	case King:
		return "K"
	case Rook:
		return "R"
	case Bishop:
		return "B"
	}
	return ""
}

func (p PieceType) Valid() bool {
	return p.Prefix() != ""
}

type Color string

const (
	White Color = "white"
	Black Color = "black"
)

func (c Color) Valid() bool {
	return c == White || c == Black
}

// now is swapped out by tests that need fixed timestamps.
var now = time.Now

// Piece is a single rook, bishop or king. Position is always a valid square.
type Piece struct {
	Type     PieceType    `json:"type"`
	Color    Color        `json:"color"`
	Position string       `json:"position"`
	Moves    []MoveRecord `json:"moves"`
}

// NewPiece builds a piece on position. It fails if position is not a square on the board.
func NewPiece(t PieceType, c Color, position string) (*Piece, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPieceType, t)
	}
	if !IsValidSquare(position) {
		return nil, &SquareError{Err: ErrInvalidSquare, Square: position, Piece: t}
	}
	if c == "" {
		c = White
	}
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownColor, c)
	}
	return &Piece{
		Type:     t,
		Color:    c,
		Position: position,
		Moves:    make([]MoveRecord, 0),
	}, nil
}

func NewRook(position string) (*Piece, error) {
	return NewPiece(Rook, White, position)
}

func NewBishop(position string) (*Piece, error) {
	return NewPiece(Bishop, White, position)
}

func NewKing(position string) (*Piece, error) {
	return NewPiece(King, White, position)
}

// mustPiece is for fixed layouts only.
func mustPiece(t PieceType, c Color, position string) *Piece {
	p, err := NewPiece(t, c, position)
	if err != nil {
		panic(err)
	}
	return p
}

// Label is the prefixed square, e.g. "Ra1".
func (p *Piece) Label() string {
	return p.Type.Prefix() + p.Position
}

// IsLegalMove reports whether target is reachable by this piece's movement
// rule. Other pieces on the board are not considered.
func (p *Piece) IsLegalMove(target string) bool {
	cur, ok := ToNumeric(p.Position)
	if !ok {
		return false
	}
	next, ok := ToNumeric(target)
	if !ok {
		return false
	}
	return legalDisplacement(p.Type, cur, next)
}

// Move relocates the piece to target and logs it. On an illegal target
// nothing changes and ok is false.
func (p *Piece) Move(target string) (rec MoveRecord, ok bool) {
	if target == p.Position || !p.IsLegalMove(target) {
		return MoveRecord{}, false
	}
	rec = MoveRecord{
		From:      p.Label(),
		To:        p.Type.Prefix() + target,
		Timestamp: now(),
	}
	p.Moves = append(p.Moves, rec)
	p.Position = target
	return rec, true
}

// LegalTargets lists every square the piece may move to, a1 through h8.
func (p *Piece) LegalTargets() []string {
	cur, ok := ToNumeric(p.Position)
	if !ok {
		return nil
	}
	targets := []string{}
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			next := NumericSquare{File: file, Rank: rank}
			if legalDisplacement(p.Type, cur, next) {
				targets = append(targets, next.Square())
			}
		}
	}
	return targets
}

// PieceState is a read-only copy of a piece handed out of a Match.
type PieceState struct {
	Type     PieceType `json:"type"`
	Color    Color     `json:"color"`
	Position string    `json:"position"`
	Moves    int       `json:"moves"`
}

func (p *Piece) state() PieceState {
	return PieceState{
		Type:     p.Type,
		Color:    p.Color,
		Position: p.Position,
		Moves:    len(p.Moves),
	}
}
