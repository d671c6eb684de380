package eval_test

import (
	"testing"

	"github.com/sanj0/chessica/chess"
	"github.com/sanj0/chessica/eval"
)

func TestMaterialStartPosition(t *testing.T) {
	b := chess.StartingPosition()
	if got := eval.Material(b); got != 0 {
		t.Errorf("start position material = %d, want 0", got)
	}
}

func TestMaterialImbalance(t *testing.T) {
	// black queen missing
	b, err := chess.ParseFEN("rnb1kbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if got := eval.Material(b); got != 1 {
		t.Errorf("material = %d, want 1", got)
	}
}

func TestMaterialTracksCaptures(t *testing.T) {
	b, err := chess.ParseFEN("8/8/8/4p3/4R3/8/8/8 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if got := eval.Material(b); got != 0 {
		t.Fatalf("material before capture = %d, want 0", got)
	}
	from, _ := chess.SquareFromAlgebraic("e4")
	to, _ := chess.SquareFromAlgebraic("e5")
	b.Play(chess.PlainMove(from, to))
	if got := eval.Material(b); got != 1 {
		t.Errorf("material after capture = %d, want 1", got)
	}
}
