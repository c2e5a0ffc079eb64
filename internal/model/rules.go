package model

// legalDisplacement maps a piece type to its movement shape. Only the
// displacement between the two squares matters.
func legalDisplacement(t PieceType, from, to NumericSquare) bool {
	df := abs(from.File - to.File)
	dr := abs(from.Rank - to.Rank)
	if df == 0 && dr == 0 {
		return false
	}
	switch t {
	case Rook:
		return rookMove(df, dr)
	case Bishop:
		return bishopMove(df, dr)
	case King:
		return kingMove(df, dr)
	default:
		return false
	}
}

// rookMove: exactly one axis changes.
func rookMove(df, dr int) bool {
	return (df == 0) != (dr == 0)
}

func bishopMove(df, dr int) bool {
	return df != 0 && df == dr
}

func kingMove(df, dr int) bool {
	return max(df, dr) == 1
}
