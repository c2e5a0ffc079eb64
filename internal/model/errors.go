package model

import (
	"errors"
	"fmt"
)

// Sentinel errors. Check them with errors.Is.
var (
	// ErrInvalidSquare is returned when a piece is built on a square that is not on the board.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrIllegalMove indicates the target is not reachable by the piece's movement rule.
	ErrIllegalMove = errors.New("illegal move")

	// ErrNoSuchPiece indicates the match holds no piece under the given label.
	ErrNoSuchPiece = errors.New("no such piece")

	// ErrLabelTaken indicates another piece already holds the label a move or setup would produce.
	ErrLabelTaken = errors.New("label already taken")

	// ErrUnknownPieceType indicates a piece type outside rook, bishop and king.
	ErrUnknownPieceType = errors.New("unknown piece type")

	// ErrUnknownColor indicates a color other than white or black.
	ErrUnknownColor = errors.New("unknown color")
)

// SquareError carries the input that failed square validation.
type SquareError struct {
	Err    error
	Square string
	Piece  PieceType
}

func (e *SquareError) Error() string {
	if e.Piece != "" {
		return fmt.Sprintf("%s: `%s` is not a legal start position: %v", e.Piece, e.Square, e.Err)
	}
	return fmt.Sprintf("`%s` is not a legal start position: %v", e.Square, e.Err)
}

func (e *SquareError) Unwrap() error {
	return e.Err
}
