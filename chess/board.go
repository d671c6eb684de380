package chess

import (
	"fmt"
	"strings"
)

// Board dimensions.
const (
	NumFiles   = 8
	NumRanks   = 8
	NumSquares = NumFiles * NumRanks
)

// Square indexes the board rank-major from the top: 0 is a8, 7 is h8,
// 63 is h1.
type Square int

// NoSquare marks the absence of a square (e.g. no en passant target).
const NoSquare Square = -1

// FileOf returns the file index of a square (0 = file a).
func FileOf(sq Square) int { return int(sq) % NumFiles }

// RankOf returns the rank index of a square (0 = rank 8, 7 = rank 1).
func RankOf(sq Square) int { return int(sq) / NumFiles }

// SquareAt builds a square from a file and rank index.
func SquareAt(file, rank int) Square { return Square(rank*NumFiles + file) }

// String renders the square in algebraic notation, or "-" when it is
// not a board square.
func (sq Square) String() string {
	if sq < 0 || sq >= NumSquares {
		return "-"
	}
	return string([]byte{'a' + byte(FileOf(sq)), '8' - byte(RankOf(sq))})
}

// SquareFromAlgebraic parses an algebraic coordinate such as "e4".
func SquareFromAlgebraic(alg string) (Square, error) {
	if len(alg) != 2 {
		return NoSquare, fmt.Errorf("invalid algebraic square %q", alg)
	}
	file, rank := alg[0], alg[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return NoSquare, fmt.Errorf("invalid algebraic square %q", alg)
	}
	return SquareAt(int(file-'a'), int('8'-rank)), nil
}

// CastlingRights is a bitmask of the four castling rights.
type CastlingRights uint8

const (
	// White king-side (short) castling
	CastleWhiteKingside CastlingRights = 1 << iota
	// White queen-side (long) castling
	CastleWhiteQueenside
	// Black king-side castling
	CastleBlackKingside
	// Black queen-side castling
	CastleBlackQueenside
)

// CastleAll grants all four rights; a FEN without a castling field
// defaults to it.
const CastleAll = CastleWhiteKingside | CastleWhiteQueenside |
	CastleBlackKingside | CastleBlackQueenside

// Board is the mutable position state: 64 squares, side to move,
// castling rights and an optional en passant target. It is mutated in
// place by move application and never copied implicitly; callers that
// need rollback snapshot it with Clone.
type Board struct {
	pieces    [NumSquares]Piece
	turn      Piece
	castling  CastlingRights
	enPassant Square
}

func newBoard() *Board {
	b := &Board{turn: White, enPassant: NoSquare}
	for i := range b.pieces {
		b.pieces[i] = Empty
	}
	return b
}

// StartingPosition returns a board set up for a new game.
func StartingPosition() *Board {
	b, err := ParseFEN(FENStartPos)
	if err != nil {
		panic(err)
	}
	return b
}

// PieceAt returns the piece on a square.
func (b *Board) PieceAt(sq Square) Piece { return b.pieces[sq] }

// SetPiece places a piece on a square, overwriting any occupant.
func (b *Board) SetPiece(sq Square, p Piece) { b.pieces[sq] = p }

// Turn reports which color is to play.
func (b *Board) Turn() Piece { return b.turn }

// CastlingRights returns the current rights bitmask.
func (b *Board) CastlingRights() CastlingRights { return b.castling }

// EnPassantTarget returns the en passant target square, or NoSquare.
// It is set only for the ply immediately after a double pawn push.
func (b *Board) EnPassantTarget() Square { return b.enPassant }

// Clone returns an independent snapshot of the board. This is the
// rollback mechanism: there is no built-in undo.
func (b *Board) Clone() *Board {
	c := *b
	return &c
}

// FlipTurn advances the side to move. A turn value that is neither
// color flag means the board was corrupted upstream; continuing would
// silently produce wrong positions, so it panics.
func (b *Board) FlipTurn() {
	switch b.turn {
	case White:
		b.turn = Black
	case Black:
		b.turn = White
	default:
		panic(fmt.Sprintf("chess: corrupt turn value %#x", uint16(b.turn)))
	}
}

func (b *Board) writeGrid(sb *strings.Builder, labels bool) {
	for rank := 0; rank < NumRanks; rank++ {
		if labels {
			sb.WriteByte('8' - byte(rank))
			sb.WriteByte(' ')
		}
		for file := 0; file < NumFiles; file++ {
			if file > 0 {
				sb.WriteByte(' ')
			}
			p := b.pieces[SquareAt(file, rank)]
			if p.Has(None) {
				sb.WriteByte('.')
			} else {
				sb.WriteByte(fenChar(p))
			}
		}
		sb.WriteByte('\n')
	}
	if labels {
		sb.WriteString("  a b c d e f g h")
	}
}

// String renders the position as an 8x8 grid, one rank per line from
// rank 8 down, "." for empty squares.
func (b *Board) String() string {
	var sb strings.Builder
	b.writeGrid(&sb, false)
	return sb.String()
}

// Pretty is the display grid annotated with rank and file labels.
func (b *Board) Pretty() string {
	var sb strings.Builder
	b.writeGrid(&sb, true)
	return sb.String()
}
