package chess

import "strings"

// MoveKind tags the closed set of move variants.
type MoveKind uint8

const (
	// MovePlain relocates one piece; a capture is implicit when the
	// destination is occupied.
	MovePlain MoveKind = iota
	// MoveCastle performs the two fixed relocations of a castle kind.
	MoveCastle
	// MoveEnPassant relocates the pawn and clears the capture square,
	// which is neither From nor To.
	MoveEnPassant
	// MovePromotion clears From and places the replacement piece on To.
	MovePromotion
)

// CastleKind names the four castles of the starting layout.
type CastleKind uint8

const (
	WhiteShortCastle CastleKind = iota
	WhiteLongCastle
	BlackShortCastle
	BlackLongCastle
)

// castleSquares holds the fixed king and rook square pairs per kind.
var castleSquares = [4]struct {
	kingFrom, kingTo, rookFrom, rookTo Square
}{
	WhiteShortCastle: {60, 62, 63, 61},
	WhiteLongCastle:  {60, 58, 56, 59},
	BlackShortCastle: {4, 6, 7, 5},
	BlackLongCastle:  {4, 2, 0, 3},
}

// Right returns the castling-rights bit this castle consumes.
func (ck CastleKind) Right() CastlingRights {
	switch ck {
	case WhiteShortCastle:
		return CastleWhiteKingside
	case WhiteLongCastle:
		return CastleWhiteQueenside
	case BlackShortCastle:
		return CastleBlackKingside
	default:
		return CastleBlackQueenside
	}
}

// Move is a self-contained, already-validated instruction. All policy
// decisions happen at generation time; Apply never re-derives chess
// rules from board state.
type Move struct {
	Kind MoveKind
	// From and To are the moving piece's squares. For a castle they
	// are the king's squares.
	From, To Square
	// Capture is the captured pawn's square for en passant moves and
	// NoSquare otherwise.
	Capture Square
	// Promotion is the replacement piece for promotion moves.
	Promotion Piece
	// Castle selects the square pairs for castle moves.
	Castle CastleKind
}

// PlainMove builds a plain relocation.
func PlainMove(from, to Square) Move {
	return Move{Kind: MovePlain, From: from, To: to, Capture: NoSquare}
}

// CastleMove builds a castle of the given kind.
func CastleMove(kind CastleKind) Move {
	cs := castleSquares[kind]
	return Move{Kind: MoveCastle, From: cs.kingFrom, To: cs.kingTo, Capture: NoSquare, Castle: kind}
}

// EnPassantMove builds an en passant capture; capture is the square of
// the captured pawn, one rank behind to from the mover's perspective.
func EnPassantMove(from, to, capture Square) Move {
	return Move{Kind: MoveEnPassant, From: from, To: to, Capture: capture}
}

// PromotionMove builds a promotion placing promo on to.
func PromotionMove(from, to Square, promo Piece) Move {
	return Move{Kind: MovePromotion, From: from, To: to, Capture: NoSquare, Promotion: promo}
}

// String renders the move in coordinate notation (e.g. "e2e4",
// "e7e8q"). Castles render as the king's relocation.
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.Kind == MovePromotion {
		s += strings.ToLower(string(fenChar(m.Promotion)))
	}
	return s
}
