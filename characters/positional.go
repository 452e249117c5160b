package characters

import (
	"chessgine/board"
	"chessgine/engine"
)

// pieceValue is material value in centipawns.
var pieceValue = map[uint8]int{
	board.PawnKind:   100,
	board.KnightKind: 320,
	board.BishopKind: 330,
	board.RookKind:   500,
	board.QueenKind:  975,
}

// pst holds one 8x8 (rank 0 = white's back rank) table per piece kind,
// plus a separate king table for the endgame. Values are carried over
// from a bitboard-square indexing (a1=0 ... h8=63, used from each
// side's own perspective) to this repo's [rank][file] mailbox indexing.
var pstPawn = [8][8]int{
	{0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0},
	{-15, 2, 5, 5, 5, 5, 2, -15},
	{-15, -2, 3, 15, 15, 3, -2, -15},
	{-5, -5, -5, -5, -5, -5, -5, -5},
	{0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0},
	{25, 25, 25, 25, 25, 25, 25, 25},
}

var pstKnight = [8][8]int{
	{-15, -15, -15, -15, -15, -15, -15, -15},
	{-2, -2, -2, -2, -2, -2, -2, -2},
	{-5, 0, 25, 25, 25, 25, 0, -5},
	{-5, 0, 15, 25, 25, 15, 0, -5},
	{-5, 0, 15, 25, 25, 15, 0, -5},
	{-5, 0, 2, 2, 2, 2, 0, -5},
	{-2, -2, -2, -2, -2, -2, -2, -2},
	{-15, -15, -15, -15, -15, -15, -15, -15},
}

var pstBishop = [8][8]int{
	{2, -5, -25, 0, 0, -25, -5, 2},
	{2, 15, 5, 0, 0, 5, 15, 2},
	{2, 5, 5, 0, 0, 5, 5, 2},
	{0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0},
}

var pstKingMiddlegame = [8][8]int{
	{75, 50, 0, 0, 0, 0, 50, 75},
	{25, 25, -10, -50, -50, -10, 25, 25},
	{-75, -75, -75, -75, -75, -75, -75, -75},
	{-75, -75, -75, -75, -75, -75, -75, -75},
	{-75, -75, -75, -75, -75, -75, -75, -75},
	{-75, -75, -75, -75, -75, -75, -75, -75},
	{-75, -75, -75, -75, -75, -75, -75, -75},
	{-75, -75, -75, -75, -75, -75, -75, -75},
}

var pstKingEndgame = [8][8]int{
	{-10, -10, -10, -10, -10, -10, -10, -10},
	{-10, -5, -5, -5, -5, -5, -5, -10},
	{-10, 2, 5, 5, 5, 5, 2, -10},
	{-10, 2, 5, 25, 25, 5, 2, -10},
	{-10, 2, 5, 25, 25, 5, 2, -10},
	{-10, 2, 5, 5, 5, 5, 2, -10},
	{-10, -5, -5, -5, -5, -5, -5, -10},
	{-10, -10, -10, -10, -10, -10, -10, -10},
}

// piecesAroundKingValue is the penalty an enemy piece of the given kind
// contributes when it sits adjacent to a king.
var piecesAroundKingValue = map[uint8]int{
	board.PawnKind:   8,
	board.KnightKind: 12,
	board.BishopKind: 12,
	board.RookKind:   16,
	board.QueenKind:  88,
	board.KingKind:   4,
}

// PositionalPST is material plus piece-square tables plus a king-safety
// penalty for enemy pieces adjacent to the king, carried over from a
// bitboard evaluator onto the mailbox board.Board. It satisfies
// engine.Evaluator, so it can serve as the E of engine.Searcher in
// place of Materialist.
type PositionalPST struct {
	*engine.PositionCache
	hasher     *board.ZobristHasher
	depthLimit int
}

func NewPositionalPST(depthLimit int, hasher *board.ZobristHasher) *PositionalPST {
	return &PositionalPST{
		PositionCache: engine.NewPositionCache(),
		hasher:        hasher,
		depthLimit:    depthLimit,
	}
}

// NewPositionalPSTFromConfig builds a PositionalPST entirely from cfg,
// mirroring NewMaterialistFromConfig: the hasher seed, search depth,
// and cache capacity all come from cfg rather than being threaded
// through by the caller.
func NewPositionalPSTFromConfig(cfg engine.Config) *PositionalPST {
	return &PositionalPST{
		PositionCache: engine.NewPositionCacheWithCapacity(cfg.TransTableSizeHint),
		hasher:        board.NewZobristHasher(cfg.ZobristSeed),
		depthLimit:    cfg.DefaultDepthLimit,
	}
}

func (p *PositionalPST) Hash(b *board.Board) uint64 {
	return p.hasher.Hash(b)
}

func (p *PositionalPST) StaticDepthLimit() int {
	return p.depthLimit
}

func (p *PositionalPST) StaticScore(b *board.Board) float64 {
	white := p.evaluateSide(b, true)
	black := p.evaluateSide(b, false)
	return float64(white-black) / 100.0
}

func (p *PositionalPST) StaticScoreMate(b *board.Board) float64 {
	return p.StaticScore(b)
}

func (p *PositionalPST) StaticScoreStalemate(*board.Board) float64 {
	return 0
}

func (p *PositionalPST) evaluateSide(b *board.Board, white bool) int {
	score := 0
	endgame := isEndgame(b)
	var kingSq board.Square
	if white {
		kingSq = b.WhiteKingSq
	} else {
		kingSq = b.BlackKingSq
	}

	for r := 0; r < 8; r++ {
		for f := 0; f < 8; f++ {
			code := b.Field[r][f]
			if code == board.Empty || board.IsWhite(code) != white {
				continue
			}
			kind := board.Kind(code)
			score += pieceValue[kind]
			score += pstValue(kind, r, f, white, endgame)
		}
	}

	enemyWhite := !white
	score -= enemyPenaltyAroundKing(b, kingSq, enemyWhite)
	return score
}

// pstValue looks up a piece-square table value, mirroring the rank for
// black so every table is authored from its own side's perspective
// (rank 0 = that side's back rank).
func pstValue(kind uint8, rank, file int, white, endgame bool) int {
	r := rank
	if !white {
		r = 7 - rank
	}
	switch kind {
	case board.PawnKind:
		return pstPawn[r][file]
	case board.KnightKind:
		return pstKnight[r][file]
	case board.BishopKind:
		return pstBishop[r][file]
	case board.KingKind:
		if endgame {
			return pstKingEndgame[r][file]
		}
		return pstKingMiddlegame[r][file]
	default:
		return 0
	}
}

// isEndgame is a coarse material-based heuristic: no queens, or total
// non-pawn non-king material of both sides at or below 1300 centipawns.
func isEndgame(b *board.Board) bool {
	total := 0
	queens := 0
	for r := 0; r < 8; r++ {
		for f := 0; f < 8; f++ {
			code := b.Field[r][f]
			if code == board.Empty {
				continue
			}
			kind := board.Kind(code)
			if kind == board.QueenKind {
				queens++
			}
			if kind != board.PawnKind && kind != board.KingKind {
				total += pieceValue[kind]
			}
		}
	}
	return queens == 0 || total <= 1300
}

func enemyPenaltyAroundKing(b *board.Board, kingSq board.Square, enemyWhite bool) int {
	if !kingSq.OnBoard() {
		return 0
	}
	penalty := 0
	rank, file := kingSq.Rank(), kingSq.File()
	for dr := -1; dr <= 1; dr++ {
		for df := -1; df <= 1; df++ {
			if dr == 0 && df == 0 {
				continue
			}
			r, f := rank+dr, file+df
			if r < 0 || r > 7 || f < 0 || f > 7 {
				continue
			}
			code := b.Field[r][f]
			if code != board.Empty && board.IsWhite(code) == enemyWhite {
				penalty += piecesAroundKingValue[board.Kind(code)]
			}
		}
	}
	return penalty
}
