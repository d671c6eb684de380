package chess

import "fmt"

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// rightsTouched maps a square to the castling rights forfeited when a
// king or rook leaves it, or a rook is captured on it. Centralizing
// this here means Apply does not care which of the two happened.
func rightsTouched(sq Square) CastlingRights {
	switch sq {
	case 0: // a8
		return CastleBlackQueenside
	case 4: // e8
		return CastleBlackKingside | CastleBlackQueenside
	case 7: // h8
		return CastleBlackKingside
	case 56: // a1
		return CastleWhiteQueenside
	case 60: // e1
		return CastleWhiteKingside | CastleWhiteQueenside
	case 63: // h1
		return CastleWhiteKingside
	}
	return 0
}

// relocate copies the piece on from to to and clears from. The prior
// occupant of to is simply overwritten.
func (b *Board) relocate(from, to Square) {
	b.pieces[to] = b.pieces[from]
	b.pieces[from] = Empty
}

// Apply mutates the board in place according to the move. The move is
// trusted: rule validity was decided at generation time. Apply also
// keeps the derived state current: castling rights are forfeited when
// a king or rook moves off, or a rook is captured on, a home square,
// and the en passant target is set after a double push and cleared by
// every other move. Apply does not flip the side to move; see FlipTurn
// and Play.
func (b *Board) Apply(m Move) {
	nextEP := NoSquare
	switch m.Kind {
	case MovePlain:
		moved := b.pieces[m.From]
		if moved.Has(Pawn) && abs(RankOf(m.To)-RankOf(m.From)) == 2 {
			// the skipped square becomes the en passant target
			nextEP = (m.From + m.To) / 2
		}
		b.relocate(m.From, m.To)
	case MoveCastle:
		cs := castleSquares[m.Castle]
		b.relocate(cs.kingFrom, cs.kingTo)
		b.relocate(cs.rookFrom, cs.rookTo)
	case MoveEnPassant:
		b.relocate(m.From, m.To)
		b.pieces[m.Capture] = Empty
	case MovePromotion:
		b.pieces[m.From] = Empty
		b.pieces[m.To] = m.Promotion
	default:
		panic(fmt.Sprintf("chess: unknown move kind %d", m.Kind))
	}
	b.castling &^= rightsTouched(m.From) | rightsTouched(m.To)
	b.enPassant = nextEP
}

// Play applies the move and advances the side to move.
func (b *Board) Play(m Move) {
	b.Apply(m)
	b.FlipTurn()
}

// Captured reports the piece this move removes from the board, without
// mutating anything. The result has the None flag set when nothing is
// captured; castles never capture, and en passant unconditionally
// captures the pawn on the Capture square.
func (m Move) Captured(b *Board) Piece {
	switch m.Kind {
	case MoveCastle:
		return Empty
	case MoveEnPassant:
		return b.pieces[m.Capture]
	default:
		return b.pieces[m.To]
	}
}
