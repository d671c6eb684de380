// Package eval holds the material-count evaluator. It consumes only
// the public board contract and contains no search.
package eval

import "github.com/sanj0/chessica/chess"

// Material sums +1 for every white piece and -1 for every black piece,
// from white's perspective.
func Material(b *chess.Board) int {
	score := 0
	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		switch b.PieceAt(sq).Color() {
		case chess.White:
			score++
		case chess.Black:
			score--
		}
	}
	return score
}
