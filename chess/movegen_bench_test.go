package chess_test

import (
	"testing"

	"github.com/sanj0/chessica/chess"
)

func benchGenerate(b *testing.B, fen string) {
	board, err := chess.ParseFEN(fen)
	if err != nil {
		b.Fatalf("ParseFEN: %v", err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		chess.GeneratePseudoLegal(board, board.Turn())
	}
}

func BenchmarkGenerate_Initial(b *testing.B) {
	benchGenerate(b, chess.FENStartPos)
}

func BenchmarkGenerate_Kiwipete(b *testing.B) {
	benchGenerate(b, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
}

func BenchmarkGenerate_Endgame(b *testing.B) {
	benchGenerate(b, "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1")
}

func BenchmarkPlay_AllMoves_Initial(b *testing.B) {
	board := chess.StartingPosition()
	moves := chess.GeneratePseudoLegal(board, board.Turn())
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, m := range moves {
			child := board.Clone()
			child.Play(m)
		}
	}
}

func BenchmarkPerft2_Initial(b *testing.B) {
	board := chess.StartingPosition()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if n := chess.Perft(board, 2); n != 400 {
			b.Fatalf("perft(2) = %d", n)
		}
	}
}
