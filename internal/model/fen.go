package model

import (
	"sort"

	"github.com/corentings/chess/v2"
)

var fenPieceTypes = map[PieceType]chess.PieceType{
	Rook:   chess.Rook,
	Bishop: chess.Bishop,
	King:   chess.King,
}

func (c Color) chessColor() chess.Color {
	if c == Black {
		return chess.Black
	}
	return chess.White
}

// FEN returns the piece placement field of a FEN string for the current
// board. Pieces of different types may share a square in a match; when they
// do, the label that sorts last is the one shown.
func (m *Match) FEN() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.fen()
}

func (m *Match) fen() string {
	labels := make([]string, 0, len(m.pieces))
	for label := range m.pieces {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	squares := make(map[chess.Square]chess.Piece, len(labels))
	for _, label := range labels {
		p := m.pieces[label]
		sq, ok := ToNumeric(p.Position)
		if !ok {
			continue
		}
		squares[chess.Square(sq.index())] = chess.NewPiece(fenPieceTypes[p.Type], p.Color.chessColor())
	}
	return chess.NewBoard(squares).String()
}
