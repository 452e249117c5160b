package board

// Piece codes are a single byte: the upper bits name a kind, the low
// bit names a color. Kind values are the even numbers 2, 4, 6, 8, 10, 12
// (pawn, king, knight, bishop, rook, queen); color is ColorWhite (1) set
// for white, clear for black. 0 is the empty-square sentinel; 1 is
// unused. This mirrors the char<->code tables in a bimap the reference
// engine this was distilled from keeps next to its board type.
const (
	Empty uint8 = 0

	PawnKind   uint8 = 2
	KingKind   uint8 = 4
	KnightKind uint8 = 6
	BishopKind uint8 = 8
	RookKind   uint8 = 10
	QueenKind  uint8 = 12

	ColorWhite uint8 = 1
)

// Castling-rights bits, one per corner.
const (
	WhiteKingSide  uint8 = 1 << 7 // 128
	WhiteQueenSide uint8 = 1 << 6 // 64
	BlackKingSide  uint8 = 1 << 5 // 32
	BlackQueenSide uint8 = 1 << 4 // 16
)

// Kind returns the piece-kind bits of a piece code, stripped of color.
func Kind(code uint8) uint8 {
	return code &^ ColorWhite
}

// IsWhite reports whether a nonzero piece code belongs to white.
func IsWhite(code uint8) bool {
	return code&ColorWhite != 0
}

// MakePiece packs a kind and a color bit into a piece code.
func MakePiece(kind uint8, white bool) uint8 {
	if white {
		return kind | ColorWhite
	}
	return kind
}

// DecodeLetter returns the FEN letter for a piece code (uppercase for
// white, lowercase for black). Decoding anything outside the twelve
// defined codes is a programming error.
func DecodeLetter(code uint8) byte {
	var letter byte
	switch Kind(code) {
	case PawnKind:
		letter = 'p'
	case KingKind:
		letter = 'k'
	case KnightKind:
		letter = 'n'
	case BishopKind:
		letter = 'b'
	case RookKind:
		letter = 'r'
	case QueenKind:
		letter = 'q'
	default:
		fatalf("board: decoding undefined piece code %d", code)
	}
	if IsWhite(code) {
		letter -= 'a' - 'A'
	}
	return letter
}

// EncodeLetter turns a FEN piece letter into a piece code. An
// unrecognized letter is a fatal input error (see FEN parsing contract).
func EncodeLetter(letter byte) (uint8, error) {
	lower := letter
	white := letter >= 'A' && letter <= 'Z'
	if white {
		lower += 'a' - 'A'
	}
	var kind uint8
	switch lower {
	case 'p':
		kind = PawnKind
	case 'k':
		kind = KingKind
	case 'n':
		kind = KnightKind
	case 'b':
		kind = BishopKind
	case 'r':
		kind = RookKind
	case 'q':
		kind = QueenKind
	default:
		return Empty, newFatalError("board: unrecognized FEN piece letter %q", letter)
	}
	return MakePiece(kind, white), nil
}

// CastlingBit returns the castling-rights bit a FEN castling-field
// letter contributes (K/Q/k/q), or 0 for any other letter.
func CastlingBit(letter byte) uint8 {
	switch letter {
	case 'K':
		return WhiteKingSide
	case 'Q':
		return WhiteQueenSide
	case 'k':
		return BlackKingSide
	case 'q':
		return BlackQueenSide
	default:
		return 0
	}
}

// Promotion codes packed into a move's meta byte (bits 1-2).
const (
	PromoBishop uint8 = 0b00
	PromoRook   uint8 = 0b01
	PromoKnight uint8 = 0b10
	PromoQueen  uint8 = 0b11
)

// PromotionKind maps a 2-bit promotion code to the piece kind it denotes.
func PromotionKind(code uint8) uint8 {
	switch code & 0b11 {
	case PromoBishop:
		return BishopKind
	case PromoRook:
		return RookKind
	case PromoKnight:
		return KnightKind
	default:
		return QueenKind
	}
}

// PromotionCodeForKind is the inverse of PromotionKind, used by move
// generation when building promotion moves.
func PromotionCodeForKind(kind uint8) uint8 {
	switch kind {
	case BishopKind:
		return PromoBishop
	case RookKind:
		return PromoRook
	case KnightKind:
		return PromoKnight
	default:
		return PromoQueen
	}
}
