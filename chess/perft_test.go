package chess_test

import (
	"testing"

	"github.com/sanj0/chessica/chess"
)

// At depths one and two from the start position no pseudo-legal move
// leaves the mover in check, so the classical node counts hold.
func TestPerftStartPosition(t *testing.T) {
	b := chess.StartingPosition()
	if got := chess.Perft(b, 1); got != 20 {
		t.Errorf("perft(1) = %d, want 20", got)
	}
	if got := chess.Perft(b, 2); got != 400 {
		t.Errorf("perft(2) = %d, want 400", got)
	}
	if got := chess.Perft(b, 0); got != 1 {
		t.Errorf("perft(0) = %d, want 1", got)
	}
}

func TestPerftDivideSumsToPerft(t *testing.T) {
	b := chess.StartingPosition()
	div := chess.PerftDivide(b, 2)
	if len(div) != 20 {
		t.Fatalf("divide lists %d root moves, want 20", len(div))
	}
	var sum uint64
	for m, n := range div {
		if n != 20 {
			t.Errorf("divide[%v] = %d, want 20", m, n)
		}
		sum += n
	}
	if want := chess.Perft(b, 2); sum != want {
		t.Errorf("divide sums to %d, Perft says %d", sum, want)
	}
}

func TestPerftDoesNotMutateBoard(t *testing.T) {
	b := chess.StartingPosition()
	before := b.FEN()
	chess.Perft(b, 2)
	if got := b.FEN(); got != before {
		t.Errorf("board changed during perft: %q -> %q", before, got)
	}
}
