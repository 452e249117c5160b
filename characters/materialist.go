// Package characters holds concrete evaluators exercising the
// engine.Evaluator interface. The core itself treats evaluators as
// black boxes; these exist so the board/engine machinery is runnable
// and testable end to end.
package characters

import (
	"chessgine/board"
	"chessgine/engine"
)

// Materialist is a pure material counter: it never looks at piece
// placement, only piece count.
type Materialist struct {
	*engine.PositionCache
	hasher     *board.ZobristHasher
	depthLimit int
}

// NewMaterialist builds a Materialist searching to depthLimit plies,
// hashing positions with hasher.
func NewMaterialist(depthLimit int, hasher *board.ZobristHasher) *Materialist {
	return &Materialist{
		PositionCache: engine.NewPositionCache(),
		hasher:        hasher,
		depthLimit:    depthLimit,
	}
}

// NewMaterialistFromConfig builds a Materialist entirely from cfg: the
// Zobrist hasher is seeded with cfg.ZobristSeed, the search depth comes
// from cfg.DefaultDepthLimit, and the position cache is pre-sized with
// cfg.TransTableSizeHint. This is the construction path a CLI or
// service entry point loading engine.LoadConfig should use instead of
// wiring each field through by hand.
func NewMaterialistFromConfig(cfg engine.Config) *Materialist {
	return &Materialist{
		PositionCache: engine.NewPositionCacheWithCapacity(cfg.TransTableSizeHint),
		hasher:        board.NewZobristHasher(cfg.ZobristSeed),
		depthLimit:    cfg.DefaultDepthLimit,
	}
}

func (m *Materialist) Hash(b *board.Board) uint64 {
	return m.hasher.Hash(b)
}

func (m *Materialist) StaticDepthLimit() int {
	return m.depthLimit
}

func (m *Materialist) StaticScore(b *board.Board) float64 {
	var score float64
	for r := 0; r < 8; r++ {
		for f := 0; f < 8; f++ {
			code := b.Field[r][f]
			if code < 2 {
				continue
			}
			value := materialValue(board.Kind(code))
			if board.IsWhite(code) {
				score += value
			} else {
				score -= value
			}
		}
	}
	return score
}

func (m *Materialist) StaticScoreMate(b *board.Board) float64 {
	return m.StaticScore(b)
}

func (m *Materialist) StaticScoreStalemate(*board.Board) float64 {
	return 0
}

func materialValue(kind uint8) float64 {
	switch kind {
	case board.PawnKind:
		return 1.0
	case board.KnightKind, board.BishopKind:
		return 3.0
	case board.RookKind:
		return 4.5
	case board.QueenKind:
		return 9.0
	case board.KingKind:
		return 255.0
	default:
		return 0
	}
}
