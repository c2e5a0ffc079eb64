package model

import (
	"testing"

	"github.com/benbeisheim/chessmaster-backend/internal/testutil"
	"github.com/corentings/chess/v2"
)

func TestToNumeric(t *testing.T) {
	tests := []struct {
		tile string
		want NumericSquare
	}{
		{"a1", NumericSquare{0, 0}},
		{"h1", NumericSquare{7, 0}},
		{"a8", NumericSquare{0, 7}},
		{"h8", NumericSquare{7, 7}},
		{"e4", NumericSquare{4, 3}},
		{"c1", NumericSquare{2, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.tile, func(t *testing.T) {
			got, ok := ToNumeric(tt.tile)
			testutil.AssertTrue(t, ok, "ToNumeric(%q) ok", tt.tile)
			testutil.AssertEqual(t, got, tt.want)
		})
	}
}

func TestToNumericInvalid(t *testing.T) {
	for _, tile := range []string{
		"", "a", "a10", "e44", "z9", "i1", "A1", "a0", "a9", "1a", "aa", "e-", " e4", "é4",
	} {
		t.Run(tile, func(t *testing.T) {
			got, ok := ToNumeric(tile)
			testutil.AssertFalse(t, ok, "ToNumeric(%q) ok", tile)
			testutil.AssertEqual(t, got, NumericSquare{})
			testutil.AssertFalse(t, IsValidSquare(tile))
		})
	}
}

func TestSquareRoundTrip(t *testing.T) {
	seen := make(map[NumericSquare]bool)
	for idx := 0; idx < BoardSize*BoardSize; idx++ {
		label := chess.Square(idx).String()
		sq, ok := ToNumeric(label)
		if !ok {
			t.Fatalf("ToNumeric(%q) failed", label)
		}
		if sq.index() != idx {
			t.Errorf("ToNumeric(%q).index() = %d; want %d", label, sq.index(), idx)
		}
		if got := sq.Square(); got != label {
			t.Errorf("ToNumeric(%q).Square() = %q", label, got)
		}
		if seen[sq] {
			t.Errorf("duplicate numeric square %v for %q", sq, label)
		}
		seen[sq] = true
	}
}

func TestNumericSquareOffBoard(t *testing.T) {
	for _, sq := range []NumericSquare{{-1, 0}, {0, -1}, {8, 0}, {0, 8}} {
		testutil.AssertFalse(t, sq.Valid(), "%v.Valid()", sq)
		testutil.AssertEqual(t, sq.Square(), "")
	}
}
