package board

import "fmt"

// String renders a square in algebraic notation, e.g. "e4". Off-board
// squares render as "-".
func (s Square) String() string {
	if !s.OnBoard() {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+byte(s.File()), '1'+byte(s.Rank()))
}

// UCI renders a move in long algebraic notation ("e2e4", "e7e8q"),
// the format engines exchange over the UCI protocol. b must be the
// board the move was generated from, since the promotion suffix is
// only appended for actual pawn-to-back-rank moves: the special bit
// alone does not distinguish a promotion from castling or en passant,
// both of which also set it.
func (m Move) UCI(b *Board) string {
	s := m.From.String() + m.To.String()

	movingKind := Kind(b.Field[m.From.Rank()][m.From.File()])
	isPromotion := movingKind == PawnKind && (m.To.Rank() == 0 || m.To.Rank() == 7)
	if !isPromotion {
		return s
	}

	switch PromotionKind(m.PromotionCode()) {
	case QueenKind:
		return s + "q"
	case RookKind:
		return s + "r"
	case BishopKind:
		return s + "b"
	case KnightKind:
		return s + "n"
	default:
		return s
	}
}

// ParseUCIMove parses a long-algebraic move string ("e2e4", "e7e8q")
// against the position it applies to, filling in the metadata bits
// LegalMoves would have annotated: special (castling/en-passant/
// promotion), promotion kind, and captured kind. It does not itself
// validate legality; pair it with LegalMoves to find the matching
// candidate.
func ParseUCIMove(b *Board, s string) (Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return Move{}, newFatalError("board: invalid UCI move %q", s)
	}
	from, err := ParseSquareName(s[0:2])
	if err != nil {
		return Move{}, err
	}
	to, err := ParseSquareName(s[2:4])
	if err != nil {
		return Move{}, err
	}

	m := Move{From: from, To: to}
	movingCode := b.Field[from.Rank()][from.File()]
	movingKind := Kind(movingCode)
	targetCode := b.Field[to.Rank()][to.File()]

	if len(s) == 5 {
		var promo uint8
		switch s[4] {
		case 'q':
			promo = PromoQueen
		case 'r':
			promo = PromoRook
		case 'b':
			promo = PromoBishop
		case 'n':
			promo = PromoKnight
		default:
			return Move{}, newFatalError("board: invalid UCI promotion letter %q", s[4])
		}
		m.Meta = withSpecial(m.Meta)
		m.Meta = withPromotion(m.Meta, promo)
		if targetCode != Empty {
			m.Meta = withCapturedKind(m.Meta, Kind(targetCode))
		}
		return m, nil
	}

	if movingKind == KingKind && absInt(to.File()-from.File()) == 2 {
		m.Meta = withSpecial(m.Meta)
		return m, nil
	}

	if movingKind == PawnKind && to == b.EnPassant && targetCode == Empty {
		m.Meta = withSpecial(m.Meta)
		m.Meta = withCapturedKind(m.Meta, PawnKind)
		return m, nil
	}

	if targetCode != Empty {
		m.Meta = withCapturedKind(m.Meta, Kind(targetCode))
	}
	return m, nil
}
