package board

import (
	"strconv"
	"strings"
)

// StartingFEN is the standard chess starting position.
const StartingFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// undoEntry carries the state Unmake cannot recover from the move
// alone: the rights and en-passant/halfmove-clock values as they stood
// immediately before the move that is being undone.
type undoEntry struct {
	move             Move
	prevCastling     uint8
	prevEnPassant    Square
	prevHalfmove     int
	prevWhiteKingSq  Square
	prevBlackKingSq  Square
}

// Board is a mailbox position: an 8x8 array of piece codes plus the
// side-effects state FEN carries (side to move, castling rights,
// en-passant target, halfmove clock, fullmove number). Ownership is the
// caller's: a Board is freely read and mutated by value-holding code,
// and Make/Unmake is the only mutation the core performs on it, always
// in matched pairs.
type Board struct {
	Field [8][8]uint8

	WhiteToMove    bool
	CastlingRights uint8
	EnPassant      Square
	HalfmoveClock  int
	FullmoveNumber int

	WhiteKingSq Square
	BlackKingSq Square

	history []undoEntry
}

// NewBoard returns the standard starting position.
func NewBoard() *Board {
	b, err := ParseFEN(StartingFEN)
	if err != nil {
		// StartingFEN is a compile-time constant; a parse failure here
		// would mean this package itself is broken, not bad input.
		panic(err)
	}
	return b
}

// ParseFEN builds a Board from a FEN string. Any malformed field is a
// fatal input error: the core does not attempt partial recovery.
func ParseFEN(fen string) (*Board, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, newFatalError("board: FEN has %d fields, need at least 4", len(fields))
	}

	b := &Board{EnPassant: SquareNone}

	if err := b.parsePlacement(fields[0]); err != nil {
		return nil, err
	}

	switch fields[1] {
	case "w":
		b.WhiteToMove = true
	case "b":
		b.WhiteToMove = false
	default:
		return nil, newFatalError("board: FEN side-to-move field must be w or b, got %q", fields[1])
	}

	if fields[2] != "-" {
		for i := 0; i < len(fields[2]); i++ {
			bit := CastlingBit(fields[2][i])
			if bit == 0 {
				return nil, newFatalError("board: unrecognized FEN castling letter %q", fields[2][i])
			}
			b.CastlingRights |= bit
		}
	}

	if fields[3] == "-" {
		b.EnPassant = SquareNone
	} else {
		sq, err := ParseSquareName(fields[3])
		if err != nil {
			return nil, err
		}
		b.EnPassant = sq
	}

	b.HalfmoveClock = 0
	if len(fields) > 4 {
		n, err := strconv.Atoi(fields[4])
		if err != nil {
			return nil, newFatalError("board: invalid FEN halfmove clock %q", fields[4])
		}
		b.HalfmoveClock = n
	}

	b.FullmoveNumber = 1
	if len(fields) > 5 {
		n, err := strconv.Atoi(fields[5])
		if err != nil {
			return nil, newFatalError("board: invalid FEN fullmove number %q", fields[5])
		}
		b.FullmoveNumber = n
	}

	b.locateKings()
	return b, nil
}

func (b *Board) parsePlacement(placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return newFatalError("board: FEN placement has %d ranks, need 8", len(ranks))
	}
	for i, rankStr := range ranks {
		rank := 7 - i // FEN lists rank 8 first; rank index 7 is rank 8
		file := 0
		for j := 0; j < len(rankStr); j++ {
			c := rankStr[j]
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			if file >= 8 {
				return newFatalError("board: FEN rank %d overflows the board", i+1)
			}
			code, err := EncodeLetter(c)
			if err != nil {
				return err
			}
			b.Field[rank][file] = code
			file++
		}
		if file != 8 {
			return newFatalError("board: FEN rank %d does not cover 8 files", i+1)
		}
	}
	return nil
}

// ParseSquareName parses an algebraic square name such as "e4".
func ParseSquareName(s string) (Square, error) {
	if len(s) != 2 {
		return SquareNone, newFatalError("board: invalid square name %q", s)
	}
	file := int(s[0] - 'a')
	rank := int(s[1] - '1')
	if !onBoard(rank, file) {
		return SquareNone, newFatalError("board: invalid square name %q", s)
	}
	return NewSquare(rank, file), nil
}

func (b *Board) locateKings() {
	b.WhiteKingSq = SquareNone
	b.BlackKingSq = SquareNone
	for r := 0; r < 8; r++ {
		for f := 0; f < 8; f++ {
			code := b.Field[r][f]
			if Kind(code) == KingKind {
				if IsWhite(code) {
					b.WhiteKingSq = NewSquare(r, f)
				} else {
					b.BlackKingSq = NewSquare(r, f)
				}
			}
		}
	}
}

// String renders the board as an 8-line ASCII diagram, rank 8 first,
// one character per square ('.' for empty). It exists so a caller that
// wants to log a position can pass it to whatever logger it already
// uses; the core itself never prints anything.
func (b *Board) String() string {
	var sb strings.Builder
	for i := 0; i < 8; i++ {
		rank := 7 - i
		for f := 0; f < 8; f++ {
			code := b.Field[rank][f]
			if code == Empty {
				sb.WriteByte('.')
			} else {
				sb.WriteByte(DecodeLetter(code))
			}
			if f < 7 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func oppositeColorBit(colorBit uint8) uint8 {
	return colorBit ^ ColorWhite
}

// Make applies a move unconditionally: the caller (move generation, or
// whoever replays a known-legal sequence) is responsible for only
// handing Make legal moves. It pushes one undo entry per call; every
// Make must be balanced by exactly one Unmake.
func (b *Board) Make(m Move) {
	entry := undoEntry{
		move:            m,
		prevCastling:    b.CastlingRights,
		prevEnPassant:   b.EnPassant,
		prevHalfmove:    b.HalfmoveClock,
		prevWhiteKingSq: b.WhiteKingSq,
		prevBlackKingSq: b.BlackKingSq,
	}
	b.history = append(b.history, entry)

	moving := b.Field[m.From.Rank()][m.From.File()]
	kind := Kind(moving)
	white := IsWhite(moving)

	b.Field[m.From.Rank()][m.From.File()] = Empty
	b.Field[m.To.Rank()][m.To.File()] = moving

	capturedOrPawn := m.CapturedKind() != Empty || kind == PawnKind
	if capturedOrPawn {
		b.HalfmoveClock = 0
	} else {
		b.HalfmoveClock++
	}

	b.EnPassant = SquareNone

	// A rook captured on its own home square loses that side's castling
	// right too, not just a rook that moves away from it.
	if m.CapturedKind() == RookKind {
		clearRookCastlingRight(b, m.To, !white)
	}

	switch kind {
	case PawnKind:
		rankDelta := m.To.Rank() - m.From.Rank()
		if rankDelta == 2 || rankDelta == -2 {
			b.EnPassant = NewSquare((m.From.Rank()+m.To.Rank())/2, m.From.File())
		} else if m.IsSpecial() {
			lastRank := 7
			if !white {
				lastRank = 0
			}
			if m.To.Rank() == lastRank {
				promoted := PromotionKind(m.PromotionCode())
				b.Field[m.To.Rank()][m.To.File()] = MakePiece(promoted, white)
			} else {
				// en-passant capture: the taken pawn sits one rank
				// behind the destination, not on it.
				capturedRank := m.To.Rank() - 1
				if !white {
					capturedRank = m.To.Rank() + 1
				}
				b.Field[capturedRank][m.To.File()] = Empty
			}
		}

	case KingKind:
		if white {
			b.WhiteKingSq = m.To
			b.CastlingRights &^= WhiteKingSide | WhiteQueenSide
		} else {
			b.BlackKingSq = m.To
			b.CastlingRights &^= BlackKingSide | BlackQueenSide
		}
		fileDelta := m.To.File() - m.From.File()
		if fileDelta == 2 || fileDelta == -2 {
			rank := m.From.Rank()
			var rookFrom, rookTo Square
			if fileDelta == 2 {
				rookFrom, rookTo = NewSquare(rank, FileH), NewSquare(rank, FileF)
			} else {
				rookFrom, rookTo = NewSquare(rank, FileA), NewSquare(rank, FileD)
			}
			// The rook relocates even if it is not actually on its
			// canonical square: a rook of the mover's color simply
			// appears at the post-castle square. This reproduces an
			// intentional deviation documented for this engine rather
			// than silently moving whatever (possibly empty) content
			// sat at rookFrom.
			b.Field[rookFrom.Rank()][rookFrom.File()] = Empty
			b.Field[rookTo.Rank()][rookTo.File()] = MakePiece(RookKind, white)
		}

	case RookKind:
		clearRookCastlingRight(b, m.From, white)
	}

	b.WhiteToMove = !b.WhiteToMove
	if b.WhiteToMove {
		b.FullmoveNumber++
	}
}

func clearRookCastlingRight(b *Board, from Square, white bool) {
	if white && from == NewSquare(0, FileA) {
		b.CastlingRights &^= WhiteQueenSide
	} else if white && from == NewSquare(0, FileH) {
		b.CastlingRights &^= WhiteKingSide
	} else if !white && from == NewSquare(7, FileA) {
		b.CastlingRights &^= BlackQueenSide
	} else if !white && from == NewSquare(7, FileH) {
		b.CastlingRights &^= BlackKingSide
	}
}

// Unmake reverts the most recent Make. Calling it with no matching Make
// on the stack is a fatal precondition violation.
func (b *Board) Unmake() {
	n := len(b.history)
	if n == 0 {
		fatalf("board: Unmake called with empty history")
	}
	entry := b.history[n-1]
	b.history = b.history[:n-1]
	m := entry.move

	b.WhiteToMove = !b.WhiteToMove
	if !b.WhiteToMove {
		b.FullmoveNumber--
	}
	b.CastlingRights = entry.prevCastling
	b.EnPassant = entry.prevEnPassant
	b.HalfmoveClock = entry.prevHalfmove
	b.WhiteKingSq = entry.prevWhiteKingSq
	b.BlackKingSq = entry.prevBlackKingSq

	destPiece := b.Field[m.To.Rank()][m.To.File()]
	destKind := Kind(destPiece)
	white := IsWhite(destPiece)
	capturedKind := m.CapturedKind()

	switch {
	case destKind == KingKind && absInt(m.To.File()-m.From.File()) == 2:
		rank := m.From.Rank()
		var rookFrom, rookTo Square
		if m.To.File()-m.From.File() == 2 {
			rookFrom, rookTo = NewSquare(rank, FileH), NewSquare(rank, FileF)
		} else {
			rookFrom, rookTo = NewSquare(rank, FileA), NewSquare(rank, FileD)
		}
		b.Field[m.From.Rank()][m.From.File()] = destPiece
		b.Field[m.To.Rank()][m.To.File()] = Empty
		b.Field[rookTo.Rank()][rookTo.File()] = Empty
		b.Field[rookFrom.Rank()][rookFrom.File()] = MakePiece(RookKind, white)

	case m.IsSpecial() && destKind != PawnKind:
		// promotion, possibly with a capture
		b.Field[m.From.Rank()][m.From.File()] = MakePiece(PawnKind, white)
		if capturedKind != Empty {
			b.Field[m.To.Rank()][m.To.File()] = MakePiece(capturedKind, !white)
		} else {
			b.Field[m.To.Rank()][m.To.File()] = Empty
		}

	case m.IsSpecial() && destKind == PawnKind:
		// en-passant capture
		b.Field[m.From.Rank()][m.From.File()] = destPiece
		b.Field[m.To.Rank()][m.To.File()] = Empty
		capturedRank := m.To.Rank() - 1
		if !white {
			capturedRank = m.To.Rank() + 1
		}
		b.Field[capturedRank][m.To.File()] = MakePiece(PawnKind, !white)

	default:
		b.Field[m.From.Rank()][m.From.File()] = destPiece
		if capturedKind != Empty {
			b.Field[m.To.Rank()][m.To.File()] = MakePiece(capturedKind, !white)
		} else {
			b.Field[m.To.Rank()][m.To.File()] = Empty
		}
	}
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
