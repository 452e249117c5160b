package engine

import "chessgine/board"

// Evaluator is the capability set the search engine treats a
// "character" as — the core never inspects a concrete evaluator's
// fields, only calls through this interface.
type Evaluator interface {
	// StaticScore returns a heuristic score in pawn units, positive
	// favoring white.
	StaticScore(b *board.Board) float64
	// StaticScoreMate returns the score to report at a checkmate leaf.
	StaticScoreMate(b *board.Board) float64
	// StaticScoreStalemate returns the score to report at a stalemate leaf.
	StaticScoreStalemate(b *board.Board) float64
	// StaticDepthLimit is the maximum ply depth for the main search.
	StaticDepthLimit() int
	// Hash fingerprints b for cache lookups.
	Hash(b *board.Board) uint64

	CacheStore(hash uint64, eval Eval, depth int)
	CachePlay(hash uint64)
	CacheUnplay(hash uint64)
	IsOnCurrentPath(hash uint64) bool
	IsCached(hash uint64) bool
	CachedEval(hash uint64) Eval
	CachedDepth(hash uint64) int
}
