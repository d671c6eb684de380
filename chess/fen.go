package chess

import (
	"errors"
	"fmt"
	"strings"
)

// FENStartPos is the FEN record of the standard initial position.
const FENStartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// pieceFromChar decodes a FEN piece letter, or Empty for anything else.
func pieceFromChar(ch rune) Piece {
	switch ch {
	case 'P':
		return White | Pawn
	case 'N':
		return White | Knight
	case 'B':
		return White | Bishop
	case 'R':
		return White | Rook
	case 'Q':
		return White | Queen
	case 'K':
		return White | King
	case 'p':
		return Black | Pawn
	case 'n':
		return Black | Knight
	case 'b':
		return Black | Bishop
	case 'r':
		return Black | Rook
	case 'q':
		return Black | Queen
	case 'k':
		return Black | King
	default:
		return Empty
	}
}

// fenChar returns the FEN letter of an occupied square. A piece whose
// kind bits do not decode to exactly one kind is corrupted state and
// panics.
func fenChar(p Piece) byte {
	var ch byte
	switch p.Kind() {
	case Pawn:
		ch = 'p'
	case Knight:
		ch = 'n'
	case Bishop:
		ch = 'b'
	case Rook:
		ch = 'r'
	case Queen:
		ch = 'q'
	case King:
		ch = 'k'
	default:
		panic(fmt.Sprintf("chess: double-flagged piece %#x", uint16(p)))
	}
	if p.Has(White) {
		ch -= 'a' - 'A'
	}
	return ch
}

// ParseFEN parses a FEN record into a Board. Fields are separated by
// ASCII whitespace; only the placement and turn fields are mandatory.
// A missing castling field grants all four rights, a literal "-" none.
// The en passant field is "-" or an algebraic square. Halfmove clock
// and fullmove number are accepted and ignored. On any malformed
// input the error names the offending character or field and no board
// is returned.
func ParseFEN(fen string) (*Board, error) {
	fields := strings.Fields(fen)
	if len(fields) < 2 {
		return nil, errors.New("invalid FEN: placement and turn fields are both required")
	}

	b := newBoard()

	// 1. piece placement: walk a running square index from a8
	index := 0
	for _, ch := range fields[0] {
		switch {
		case ch >= '1' && ch <= '9':
			n := int(ch - '0')
			if n > NumFiles-index%NumFiles {
				return nil, fmt.Errorf("invalid FEN: %d empty squares claimed but the current rank has no room for them", n)
			}
			index += n
		case ch == '/':
			if index%NumFiles != 0 {
				return nil, fmt.Errorf("invalid FEN: rank ended early at delimiter %q", ch)
			}
		default:
			p := pieceFromChar(ch)
			if p == Empty {
				return nil, fmt.Errorf("invalid FEN: unrecognized symbol %q in placement field", ch)
			}
			if index >= NumSquares {
				return nil, fmt.Errorf("invalid FEN: piece %q placed beyond the last square", ch)
			}
			b.pieces[index] = p
			index++
		}
	}
	if index != NumSquares {
		return nil, fmt.Errorf("invalid FEN: placement field covers %d of %d squares", index, NumSquares)
	}

	// 2. active color
	switch fields[1] {
	case "w":
		b.turn = White
	case "b":
		b.turn = Black
	default:
		return nil, fmt.Errorf("invalid FEN: turn field %q must be exactly 'w' or 'b'", fields[1])
	}

	// 3. castling rights; an absent field means all rights available
	b.castling = CastleAll
	if len(fields) > 2 {
		b.castling = 0
		if fields[2] != "-" {
			for _, ch := range fields[2] {
				var right CastlingRights
				switch ch {
				case 'K':
					right = CastleWhiteKingside
				case 'Q':
					right = CastleWhiteQueenside
				case 'k':
					right = CastleBlackKingside
				case 'q':
					right = CastleBlackQueenside
				default:
					return nil, fmt.Errorf("invalid FEN: unexpected character %q in castling field", ch)
				}
				if b.castling&right != 0 {
					return nil, fmt.Errorf("invalid FEN: duplicate castling right %q", ch)
				}
				b.castling |= right
			}
		}
	}

	// 4. en passant target
	if len(fields) > 3 && fields[3] != "-" {
		sq, err := SquareFromAlgebraic(fields[3])
		if err != nil {
			return nil, fmt.Errorf("invalid FEN: en passant field: %w", err)
		}
		b.enPassant = sq
	}

	return b, nil
}

// PlacementFEN serializes the placement field alone, with digit
// run-length encoding of empty squares. This direction has no error
// cases.
func (b *Board) PlacementFEN() string {
	var sb strings.Builder
	for rank := 0; rank < NumRanks; rank++ {
		empty := 0
		for file := 0; file < NumFiles; file++ {
			p := b.pieces[SquareAt(file, rank)]
			if p.Has(None) {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte('0' + byte(empty))
				empty = 0
			}
			sb.WriteByte(fenChar(p))
		}
		if empty > 0 {
			sb.WriteByte('0' + byte(empty))
		}
		if rank < NumRanks-1 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}

// FEN serializes the placement, turn, castling and en passant fields.
func (b *Board) FEN() string {
	var sb strings.Builder
	sb.WriteString(b.PlacementFEN())
	sb.WriteByte(' ')
	if b.turn == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	if b.castling == 0 {
		sb.WriteByte('-')
	} else {
		if b.castling&CastleWhiteKingside != 0 {
			sb.WriteByte('K')
		}
		if b.castling&CastleWhiteQueenside != 0 {
			sb.WriteByte('Q')
		}
		if b.castling&CastleBlackKingside != 0 {
			sb.WriteByte('k')
		}
		if b.castling&CastleBlackQueenside != 0 {
			sb.WriteByte('q')
		}
	}
	sb.WriteByte(' ')
	sb.WriteString(b.enPassant.String())
	return sb.String()
}
