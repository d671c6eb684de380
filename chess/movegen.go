package chess

import "fmt"

// delta is a single-step offset in (file, rank) terms. Rank deltas
// grow toward rank 1, i.e. downward on the printed board.
type delta struct{ df, dr int }

var (
	// rook directions: N, S, W, E in rank-index terms
	orthogonalDirs = []delta{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}
	// bishop directions
	diagonalDirs = []delta{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}}
	// queen and king directions
	allDirs = []delta{
		{0, -1}, {0, 1}, {-1, 0}, {1, 0},
		{-1, -1}, {1, -1}, {-1, 1}, {1, 1},
	}
	knightOffsets = []delta{
		{1, 2}, {2, 1}, {2, -1}, {1, -2},
		{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
	}
)

// knightMoves is the baked per-square destination table. It is built
// once at program start and read-only afterwards.
var knightMoves [NumSquares][]Square

func init() {
	for sq := Square(0); sq < NumSquares; sq++ {
		for _, d := range knightOffsets {
			if to, ok := step(sq, d); ok {
				knightMoves[sq] = append(knightMoves[sq], to)
			}
		}
	}
}

// step advances one square by the given file/rank delta and reports
// false when that leaves the board. Every leaping and sliding
// generator funnels its boundary checks through here, so a file can
// never wrap across the a/h edge.
func step(sq Square, d delta) (Square, bool) {
	file := FileOf(sq) + d.df
	rank := RankOf(sq) + d.dr
	if file < 0 || file >= NumFiles || rank < 0 || rank >= NumRanks {
		return NoSquare, false
	}
	return SquareAt(file, rank), true
}

// GeneratePseudoLegal enumerates every move the given color could play
// under individual-piece movement rules, ignoring whether the mover's
// king is left in check. Results come in board-scan order (rank-major,
// file-minor). A board entry whose kind bits do not decode to one of
// the six kinds denotes corruption upstream, so the generator panics
// rather than hiding the bug behind an error value.
func GeneratePseudoLegal(b *Board, color Piece) []Move {
	moves := make([]Move, 0, 35)
	for sq := Square(0); sq < NumSquares; sq++ {
		p := b.pieces[sq]
		if p.Color() != color {
			continue
		}
		switch p.Kind() {
		case Pawn:
			moves = genPawn(b, sq, color, moves)
		case Knight:
			moves = genKnight(b, sq, color, moves)
		case Bishop:
			moves = genSlides(b, sq, color, diagonalDirs, moves)
		case Rook:
			moves = genSlides(b, sq, color, orthogonalDirs, moves)
		case Queen:
			moves = genSlides(b, sq, color, allDirs, moves)
		case King:
			moves = genKing(b, sq, color, moves)
		default:
			panic(fmt.Sprintf("chess: cannot generate moves for unknown piece %#x on %v", uint16(p), sq))
		}
	}
	return moves
}

// promotionKinds lists the replacement kinds a promotion may pick.
var promotionKinds = []Piece{Queen, Rook, Bishop, Knight}

// appendPawnMove emits a plain pawn move, or the full promotion fan
// when the destination is the opposite back rank.
func appendPawnMove(from, to Square, promoRank int, color Piece, moves []Move) []Move {
	if RankOf(to) != promoRank {
		return append(moves, PlainMove(from, to))
	}
	for _, kind := range promotionKinds {
		moves = append(moves, PromotionMove(from, to, NewPiece(color, kind)))
	}
	return moves
}

func genPawn(b *Board, sq Square, color Piece, moves []Move) []Move {
	// white pushes toward rank 8, i.e. decreasing rank index
	dir := -1
	homeRank, promoRank := 6, 0
	if color == Black {
		dir = 1
		homeRank, promoRank = 1, 7
	}

	if to, ok := step(sq, delta{0, dir}); ok && b.pieces[to].Has(None) {
		moves = appendPawnMove(sq, to, promoRank, color, moves)
		// the double push exists only behind an unblocked single push
		if RankOf(sq) == homeRank {
			if two, ok := step(to, delta{0, dir}); ok && b.pieces[two].Has(None) {
				moves = append(moves, PlainMove(sq, two))
			}
		}
	}

	for _, df := range [2]int{-1, 1} {
		to, ok := step(sq, delta{df, dir})
		if !ok {
			continue
		}
		if to == b.enPassant {
			// the captured pawn sits beside the mover, behind the target
			moves = append(moves, EnPassantMove(sq, to, SquareAt(FileOf(to), RankOf(sq))))
			continue
		}
		if target := b.pieces[to]; !target.Has(None) && target.Color() != color {
			moves = appendPawnMove(sq, to, promoRank, color, moves)
		}
	}
	return moves
}

func genKnight(b *Board, sq Square, color Piece, moves []Move) []Move {
	for _, to := range knightMoves[sq] {
		if b.pieces[to].Color() != color {
			moves = append(moves, PlainMove(sq, to))
		}
	}
	return moves
}

// genSlides walks outward along each direction: empty squares extend
// the walk, the first occupied square ends it and is a destination
// only when it holds an enemy piece.
func genSlides(b *Board, sq Square, color Piece, dirs []delta, moves []Move) []Move {
	for _, d := range dirs {
		for cur, ok := step(sq, d); ok; cur, ok = step(cur, d) {
			target := b.pieces[cur]
			if target.Has(None) {
				moves = append(moves, PlainMove(sq, cur))
				continue
			}
			if target.Color() != color {
				moves = append(moves, PlainMove(sq, cur))
			}
			break
		}
	}
	return moves
}

func genKing(b *Board, sq Square, color Piece, moves []Move) []Move {
	for _, d := range allDirs {
		if to, ok := step(sq, d); ok && b.pieces[to].Color() != color {
			moves = append(moves, PlainMove(sq, to))
		}
	}

	// Castling needs the rights bit, an empty path and the rook on its
	// home square. Whether the king crosses an attacked square is the
	// legality filter's concern, not ours.
	for _, ck := range castleKindsFor(color) {
		cs := castleSquares[ck]
		if sq != cs.kingFrom || b.castling&ck.Right() == 0 {
			continue
		}
		if b.pieces[cs.rookFrom] != NewPiece(color, Rook) {
			continue
		}
		if !b.emptyBetween(cs.kingFrom, cs.rookFrom) {
			continue
		}
		moves = append(moves, CastleMove(ck))
	}
	return moves
}

func castleKindsFor(color Piece) [2]CastleKind {
	if color == White {
		return [2]CastleKind{WhiteShortCastle, WhiteLongCastle}
	}
	return [2]CastleKind{BlackShortCastle, BlackLongCastle}
}

// emptyBetween reports whether every square strictly between a and b,
// which must share a rank, is empty.
func (bd *Board) emptyBetween(a, b Square) bool {
	lo, hi := a, b
	if lo > hi {
		lo, hi = hi, lo
	}
	for sq := lo + 1; sq < hi; sq++ {
		if !bd.pieces[sq].Has(None) {
			return false
		}
	}
	return true
}
