package service

import (
	"testing"

	"github.com/benbeisheim/chessmaster-backend/internal/model"
	"github.com/benbeisheim/chessmaster-backend/internal/testutil"
)

func TestCreateGame(t *testing.T) {
	gm := NewGameManager()

	t.Run("standard layout", func(t *testing.T) {
		id, err := gm.CreateGame(nil)
		testutil.AssertNoError(t, err)
		state, err := gm.GetGameState(id)
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, len(state.Pieces), 10)
	})

	t.Run("custom pieces", func(t *testing.T) {
		id, err := gm.CreateGame([]model.PieceSpec{
			{Type: model.Rook, Color: model.White, Position: "d4"},
			{Type: model.King, Color: model.Black, Position: "h8"},
		})
		testutil.AssertNoError(t, err)
		state, err := gm.GetGameState(id)
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, state.FEN, "7k/8/8/8/3R4/8/8/8")
	})

	t.Run("invalid square", func(t *testing.T) {
		_, err := gm.CreateGame([]model.PieceSpec{{Type: model.Rook, Position: "z9"}})
		testutil.AssertErrorIs(t, err, model.ErrInvalidSquare)
	})

	t.Run("duplicate label", func(t *testing.T) {
		_, err := gm.CreateGame([]model.PieceSpec{
			{Type: model.Bishop, Position: "c1"},
			{Type: model.Bishop, Color: model.Black, Position: "c1"},
		})
		testutil.AssertErrorIs(t, err, model.ErrLabelTaken)
	})

	t.Run("unique ids", func(t *testing.T) {
		a, _ := gm.CreateGame(nil)
		b, _ := gm.CreateGame(nil)
		if a == b {
			t.Errorf("two games share id %s", a)
		}
	})
}

func TestGameManagerUnknownGame(t *testing.T) {
	gm := NewGameManager()

	_, err := gm.GetGame("missing")
	testutil.AssertErrorIs(t, err, ErrGameNotFound)
	_, err = gm.MakeMove("missing", model.MoveRequest{Piece: "Ra1", Target: "a4"})
	testutil.AssertErrorIs(t, err, ErrGameNotFound)
	_, err = gm.ResetGame("missing")
	testutil.AssertErrorIs(t, err, ErrGameNotFound)
	_, err = gm.GetLog("missing")
	testutil.AssertErrorIs(t, err, ErrGameNotFound)
	_, err = gm.IsLegalMove("missing", model.MoveRequest{Piece: "Ra1", Target: "a4"})
	testutil.AssertErrorIs(t, err, ErrGameNotFound)
	err = gm.RegisterConnection("missing", "alice", nil)
	testutil.AssertErrorIs(t, err, ErrGameNotFound)

	// no-op
	gm.UnregisterConnection("missing", "alice")
}

func TestGameServiceMoveFlow(t *testing.T) {
	gs := NewGameService(NewGameManager())
	id, err := gs.CreateGame(nil)
	testutil.AssertNoError(t, err)

	rec, err := gs.HandleMove(id, model.MoveRequest{Piece: "Ra1", Target: "a4"})
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, rec.From, "Ra1")
	testutil.AssertEqual(t, rec.To, "Ra4")

	_, err = gs.HandleMove(id, model.MoveRequest{Piece: "Ra1", Target: "a5"})
	testutil.AssertErrorIs(t, err, model.ErrNoSuchPiece)

	_, err = gs.HandleMove(id, model.MoveRequest{Piece: "Ke1", Target: "e3"})
	testutil.AssertErrorIs(t, err, model.ErrIllegalMove)

	moves, err := gs.GetLog(id)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(moves), 1)

	legal, err := gs.IsLegalMove(id, model.MoveRequest{Piece: "Ra4", Target: "h4"})
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, legal)

	targets, err := gs.LegalTargets(id, "Ke1")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, targets, []string{"d1", "f1", "d2", "e2", "f2"})

	state, err := gs.ResetGame(id)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, state.MoveCount, 0)
}
