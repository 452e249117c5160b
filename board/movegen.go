package board

// CheckHint lets a caller that already knows a position's check status
// (typically the search loop, via a move's own check-annotation bits)
// skip re-deriving it, and lets LegalMoves narrow both the candidate set
// and the legality-filter attack mask accordingly.
type CheckHint int

const (
	CheckUnknown CheckHint = iota
	NotInCheck
	InCheck
	InDoubleCheck
)

// LegalMoves returns every legal move for the side to move, annotated
// with check/double-check bits when annotate is true. hint narrows the
// search: InDoubleCheck restricts candidates to king moves (the only
// legal reply to a double check); NotInCheck lets the legality filter
// use a cheaper attacker mask.
func LegalMoves(b *Board, hint CheckHint, annotate bool) []Move {
	white := b.WhiteToMove
	var candidates []Move

	if hint == InDoubleCheck {
		kingSq := b.WhiteKingSq
		if !white {
			kingSq = b.BlackKingSq
		}
		candidates = genKingMoves(b, kingSq, white, false)
	} else {
		for r := 0; r < 8; r++ {
			for f := 0; f < 8; f++ {
				code := b.Field[r][f]
				if code == Empty || IsWhite(code) != white {
					continue
				}
				from := NewSquare(r, f)
				switch Kind(code) {
				case PawnKind:
					candidates = append(candidates, genPawnMoves(b, from, white)...)
				case KnightKind:
					candidates = append(candidates, genKnightMoves(b, from, white)...)
				case BishopKind:
					candidates = append(candidates, genSliderMoves(b, from, white, diagonalDirs[:])...)
				case RookKind:
					candidates = append(candidates, genSliderMoves(b, from, white, straightDirs[:])...)
				case QueenKind:
					candidates = append(candidates, genSliderMoves(b, from, white, diagonalDirs[:])...)
					candidates = append(candidates, genSliderMoves(b, from, white, straightDirs[:])...)
				case KingKind:
					candidates = append(candidates, genKingMoves(b, from, white, hint == NotInCheck || hint == CheckUnknown)...)
				}
			}
		}
		candidates = append(candidates, genEnPassant(b, white)...)
	}

	legal := make([]Move, 0, len(candidates))
	for _, m := range candidates {
		moving := b.Field[m.From.Rank()][m.From.File()]
		kind := Kind(moving)

		b.Make(m)

		ownKingSq := b.WhiteKingSq
		if !white {
			ownKingSq = b.BlackKingSq
		}
		mask := legalityMask(hint, kind)
		if IsAttacked(b, ownKingSq.Rank(), ownKingSq.File(), !white, mask) {
			b.Unmake()
			continue
		}

		if annotate {
			oppKingSq := b.WhiteKingSq
			if white {
				oppKingSq = b.BlackKingSq
			}
			if kind == KnightKind {
				attackers := CountAttackers(b, oppKingSq.Rank(), oppKingSq.File(), white, fullAttackMask)
				m.Meta = withCheck(m.Meta, attackers >= 1)
				m.Meta = withDoubleCheck(m.Meta, attackers >= 2)
			} else {
				attacked := IsAttacked(b, oppKingSq.Rank(), oppKingSq.File(), white, fullAttackMask)
				m.Meta = withCheck(m.Meta, attacked)
			}
		}

		b.Unmake()
		legal = append(legal, m)
	}

	SortMovesDescending(legal)
	return legal
}

func legalityMask(hint CheckHint, movedKind uint8) AttackMask {
	if hint != NotInCheck {
		return fullAttackMask
	}
	mask := AttackMask{Diagonal: true, Straight: true}
	if movedKind == KingKind {
		mask.Knight = true
		mask.King = true
		mask.Pawn = true
	}
	return mask
}

func genPawnMoves(b *Board, from Square, white bool) []Move {
	var moves []Move
	rank, file := from.Rank(), from.File()
	dir := 1
	startRank := 1
	lastRank := 7
	if !white {
		dir = -1
		startRank = 6
		lastRank = 0
	}

	oneRank := rank + dir
	if onBoard(oneRank, file) && b.Field[oneRank][file] == Empty {
		to := NewSquare(oneRank, file)
		if oneRank == lastRank {
			moves = append(moves, genPromotions(from, to, Empty)...)
		} else {
			moves = append(moves, Move{From: from, To: to})
			twoRank := rank + 2*dir
			if rank == startRank && b.Field[twoRank][file] == Empty {
				moves = append(moves, Move{From: from, To: NewSquare(twoRank, file)})
			}
		}
	}

	for _, df := range [2]int{-1, 1} {
		tf := file + df
		if !onBoard(oneRank, tf) {
			continue
		}
		target := b.Field[oneRank][tf]
		if target == Empty || IsWhite(target) == white {
			continue
		}
		to := NewSquare(oneRank, tf)
		capturedKind := Kind(target)
		if oneRank == lastRank {
			moves = append(moves, genPromotions(from, to, capturedKind)...)
		} else {
			m := Move{From: from, To: to}
			m.Meta = withCapturedKind(m.Meta, capturedKind)
			moves = append(moves, m)
		}
	}

	return moves
}

func genPromotions(from, to Square, capturedKind uint8) []Move {
	codes := [4]uint8{PromoQueen, PromoRook, PromoBishop, PromoKnight}
	moves := make([]Move, 0, 4)
	for _, code := range codes {
		m := Move{From: from, To: to}
		m.Meta = withSpecial(m.Meta)
		m.Meta = withPromotion(m.Meta, code)
		if capturedKind != Empty {
			m.Meta = withCapturedKind(m.Meta, capturedKind)
		}
		moves = append(moves, m)
	}
	return moves
}

// genEnPassant emits the (at most two) en-passant captures available
// this ply, generated once rather than inside the per-pawn scan.
func genEnPassant(b *Board, white bool) []Move {
	if b.EnPassant == SquareNone {
		return nil
	}
	epRank, epFile := b.EnPassant.Rank(), b.EnPassant.File()
	captureRank := epRank - 1
	if !white {
		captureRank = epRank + 1
	}
	var moves []Move
	for _, df := range [2]int{-1, 1} {
		f := epFile + df
		if !onBoard(captureRank, f) {
			continue
		}
		code := b.Field[captureRank][f]
		if code == Empty || IsWhite(code) != white || Kind(code) != PawnKind {
			continue
		}
		m := Move{From: NewSquare(captureRank, f), To: b.EnPassant}
		m.Meta = withSpecial(m.Meta)
		m.Meta = withCapturedKind(m.Meta, PawnKind)
		moves = append(moves, m)
	}
	return moves
}

func genKnightMoves(b *Board, from Square, white bool) []Move {
	var moves []Move
	rank, file := from.Rank(), from.File()
	for _, o := range knightOffsets {
		r, f := rank+o[0], file+o[1]
		if !onBoard(r, f) {
			continue
		}
		target := b.Field[r][f]
		if target != Empty && IsWhite(target) == white {
			continue
		}
		m := Move{From: from, To: NewSquare(r, f)}
		if target != Empty {
			m.Meta = withCapturedKind(m.Meta, Kind(target))
		}
		moves = append(moves, m)
	}
	return moves
}

func genSliderMoves(b *Board, from Square, white bool, dirs [][2]int) []Move {
	var moves []Move
	rank, file := from.Rank(), from.File()
	for _, d := range dirs {
		r, f := rank+d[0], file+d[1]
		for onBoard(r, f) {
			target := b.Field[r][f]
			if target != Empty && IsWhite(target) == white {
				break
			}
			m := Move{From: from, To: NewSquare(r, f)}
			if target != Empty {
				m.Meta = withCapturedKind(m.Meta, Kind(target))
				moves = append(moves, m)
				break
			}
			moves = append(moves, m)
			r += d[0]
			f += d[1]
		}
	}
	return moves
}

// genKingMoves generates the king's own step moves plus, when
// includeCastling is true, its castling moves.
func genKingMoves(b *Board, from Square, white bool, includeCastling bool) []Move {
	var moves []Move
	rank, file := from.Rank(), from.File()
	for _, o := range kingOffsets {
		r, f := rank+o[0], file+o[1]
		if !onBoard(r, f) {
			continue
		}
		target := b.Field[r][f]
		if target != Empty && IsWhite(target) == white {
			continue
		}
		m := Move{From: from, To: NewSquare(r, f)}
		if target != Empty {
			m.Meta = withCapturedKind(m.Meta, Kind(target))
		}
		moves = append(moves, m)
	}

	if includeCastling {
		moves = append(moves, genCastling(b, from, white)...)
	}
	return moves
}

func genCastling(b *Board, kingSq Square, white bool) []Move {
	var moves []Move
	rank := 0
	kingSide, queenSide := WhiteKingSide, WhiteQueenSide
	if !white {
		rank = 7
		kingSide, queenSide = BlackKingSide, BlackQueenSide
	}
	if kingSq != NewSquare(rank, FileE) {
		return nil
	}

	if b.CastlingRights&kingSide != 0 &&
		b.Field[rank][FileF] == Empty && b.Field[rank][FileG] == Empty &&
		!IsAttacked(b, rank, FileE, !white, fullAttackMask) &&
		!IsAttacked(b, rank, FileF, !white, fullAttackMask) &&
		!IsAttacked(b, rank, FileG, !white, fullAttackMask) {
		m := Move{From: kingSq, To: NewSquare(rank, FileG)}
		m.Meta = withSpecial(m.Meta)
		moves = append(moves, m)
	}

	if b.CastlingRights&queenSide != 0 &&
		b.Field[rank][FileD] == Empty && b.Field[rank][FileC] == Empty && b.Field[rank][FileB] == Empty &&
		!IsAttacked(b, rank, FileE, !white, fullAttackMask) &&
		!IsAttacked(b, rank, FileD, !white, fullAttackMask) &&
		!IsAttacked(b, rank, FileC, !white, fullAttackMask) {
		m := Move{From: kingSq, To: NewSquare(rank, FileC)}
		m.Meta = withSpecial(m.Meta)
		moves = append(moves, m)
	}

	return moves
}
