package chess

import "fmt"

// Piece packs presence, color and kind into independent bit flags so
// that membership tests are a single mask. A square is either Empty
// (the None flag alone) or carries exactly one color bit and exactly
// one kind bit; anything else is a corrupted board.
type Piece uint16

const (
	None Piece = 1 << iota
	White
	Black
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

const (
	colorMask = White | Black
	kindMask  = Pawn | Knight | Bishop | Rook | Queen | King
)

// Empty is the canonical value of an unoccupied square.
const Empty = None

// NewPiece combines one color flag with one kind flag. Any other
// combination denotes a programming error, not a recoverable
// condition, so it panics.
func NewPiece(color, kind Piece) Piece {
	if color != White && color != Black {
		panic(fmt.Sprintf("chess: invalid piece color flags %#x", uint16(color)))
	}
	switch kind {
	case Pawn, Knight, Bishop, Rook, Queen, King:
	default:
		panic(fmt.Sprintf("chess: invalid piece kind flags %#x", uint16(kind)))
	}
	return color | kind
}

// Has reports whether every flag in the given combination is set.
func (p Piece) Has(flag Piece) bool { return p&flag == flag }

// Color returns the color sub-field. Empty squares have no color, so
// the result compares unequal to both White and Black.
func (p Piece) Color() Piece { return p & colorMask }

// Kind returns the kind sub-field (zero for an empty square).
func (p Piece) Kind() Piece { return p & kindMask }

// String renders the piece as its FEN letter, or "." when empty.
func (p Piece) String() string {
	if p.Has(None) {
		return "."
	}
	return string(fenChar(p))
}
