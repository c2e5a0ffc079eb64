package model

import "fmt"

const (
	files = "abcdefgh"
	ranks = "12345678"

	BoardSize = 8
)

// NumericSquare is a zero-based (file, rank) pair. a1 is {0, 0}, h8 is {7, 7}.
type NumericSquare struct {
	File int `json:"file"`
	Rank int `json:"rank"`
}

// ToNumeric converts an algebraic tile such as "e4" to its numeric form.
// ok is false for anything that is not a square on the board.
func ToNumeric(tile string) (sq NumericSquare, ok bool) {
	if len(tile) != 2 {
		return NumericSquare{}, false
	}
	f := tile[0]
	r := tile[1]
	if f < 'a' || f > 'h' || r < '1' || r > '8' {
		return NumericSquare{}, false
	}
	return NumericSquare{File: int(f - 'a'), Rank: int(r - '1')}, true
}

// IsValidSquare reports whether tile names a square on the board.
func IsValidSquare(tile string) bool {
	_, ok := ToNumeric(tile)
	return ok
}

func (s NumericSquare) Valid() bool {
	return s.File >= 0 && s.File < BoardSize && s.Rank >= 0 && s.Rank < BoardSize
}

// Square returns the algebraic label, or "" when s is off the board.
func (s NumericSquare) Square() string {
	if !s.Valid() {
		return ""
	}
	return fmt.Sprintf("%c%c", files[s.File], ranks[s.Rank])
}

// index orders squares a1, b1, ... h1, a2, ... h8.
func (s NumericSquare) index() int {
	return s.Rank*BoardSize + s.File
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
