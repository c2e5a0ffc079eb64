package model

// standardLayout is the starting position: both back ranks without knights and queens.
func standardLayout() map[string]*Piece {
	pieces := []*Piece{
		mustPiece(Rook, White, "a1"),
		mustPiece(Rook, White, "h1"),
		mustPiece(Rook, Black, "a8"),
		mustPiece(Rook, Black, "h8"),
		mustPiece(Bishop, White, "c1"),
		mustPiece(Bishop, White, "f1"),
		mustPiece(Bishop, Black, "c8"),
		mustPiece(Bishop, Black, "f8"),
		mustPiece(King, White, "e1"),
		mustPiece(King, Black, "e8"),
	}
	board := make(map[string]*Piece, len(pieces))
	for _, p := range pieces {
		board[p.Label()] = p
	}
	return board
}
