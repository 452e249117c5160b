package engine

import (
	"sort"

	"github.com/google/uuid"

	"chessgine/board"
)

// MoveEval pairs a root move with the evaluation the search assigned it.
type MoveEval struct {
	Move board.Move
	Eval Eval
}

// Searcher drives the alpha-beta search against a statically-dispatched
// evaluator E, so the search's hot recursive path never pays for
// interface-method indirection through a boxed evaluator. Session is a
// search-run identifier a caller embedding this engine in a
// longer-lived service can use to correlate logged search runs; it has
// no effect on search results.
type Searcher[E Evaluator] struct {
	Evaluator E
	Session   uuid.UUID
}

// NewSearcher builds a Searcher around evaluator, stamping it with a
// fresh session id.
func NewSearcher[E Evaluator](evaluator E) *Searcher[E] {
	if evaluator.StaticDepthLimit() < 1 {
		fatalf("engine: evaluator depth limit must be at least 1, got %d", evaluator.StaticDepthLimit())
	}
	return &Searcher[E]{Evaluator: evaluator, Session: uuid.New()}
}

// Analyze returns the searched root moves with their evaluations,
// ordered best-first for the side to move. The root loop stops once
// beta <= alpha, so root moves after that cutoff are not in the result.
func (s *Searcher[E]) Analyze(b *board.Board, alpha, beta Eval) []MoveEval {
	rootWhite := b.WhiteToMove
	rootHash := s.Evaluator.Hash(b)
	s.Evaluator.CachePlay(rootHash)

	moves := board.LegalMoves(b, board.CheckUnknown, true)

	results := make([]MoveEval, 0, len(moves))
	for _, m := range moves {
		b.Make(m)
		childEval := s.minimax(b, 1, alpha, beta, b.WhiteToMove, checkHintFromMove(m))
		b.Unmake()

		results = append(results, MoveEval{Move: m, Eval: childEval})

		if rootWhite {
			alpha = maxEval(alpha, childEval)
		} else {
			beta = minEval(beta, childEval)
		}
		if beta.Compare(alpha) <= 0 {
			break
		}
	}

	s.Evaluator.CacheUnplay(rootHash)

	sort.SliceStable(results, func(i, j int) bool {
		if rootWhite {
			return results[i].Eval.Compare(results[j].Eval) > 0
		}
		return results[i].Eval.Compare(results[j].Eval) < 0
	})
	return results
}

func checkHintFromMove(m board.Move) board.CheckHint {
	switch {
	case m.DeliversDoubleCheck():
		return board.InDoubleCheck
	case m.DeliversCheck():
		return board.InCheck
	default:
		return board.NotInCheck
	}
}

// minimax is the recursive alpha-beta driver. Its cache-reuse rule is
// three-way and depth-aware: a shallower cached mate eval is still
// reusable, rescaled to the current depth counted in moves; a shallower
// cached non-mate eval is not, and forces a re-play-and-recompute.
// Mate distances are in moves of the mating side: (depth+1)/2 turns a
// ply depth into that count whichever side moves at the root.
func (s *Searcher[E]) minimax(b *board.Board, depth int, alpha, beta Eval, maximize bool, hint board.CheckHint) Eval {
	hash := s.Evaluator.Hash(b)
	mateMoves := (depth + 1) / 2

	if s.Evaluator.IsOnCurrentPath(hash) {
		return Draw()
	}

	if s.Evaluator.IsCached(hash) {
		stored := s.Evaluator.CachedEval(hash)
		storedDepth := s.Evaluator.CachedDepth(hash)
		if depth < storedDepth {
			switch {
			case stored.MateDistance < 0:
				eval := Eval{Score: stored.Score, MateDistance: -mateMoves}
				s.Evaluator.CacheStore(hash, eval, depth)
				return eval
			case stored.MateDistance > 0:
				eval := Eval{Score: stored.Score, MateDistance: mateMoves}
				s.Evaluator.CacheStore(hash, eval, depth)
				return eval
			default:
				s.Evaluator.CachePlay(hash)
			}
		} else {
			return stored
		}
	} else {
		s.Evaluator.CachePlay(hash)
	}

	moves := board.LegalMoves(b, hint, true)

	if len(moves) == 0 {
		var eval Eval
		if hint == board.InCheck || hint == board.InDoubleCheck {
			mateDistance := mateMoves
			if maximize {
				mateDistance = -mateMoves
			}
			eval = Eval{Score: s.Evaluator.StaticScoreMate(b), MateDistance: mateDistance}
		} else {
			eval = Eval{Score: s.Evaluator.StaticScoreStalemate(b), MateDistance: 0}
		}
		s.Evaluator.CacheUnplay(hash)
		s.Evaluator.CacheStore(hash, eval, depth)
		return eval
	}

	if depth >= s.Evaluator.StaticDepthLimit() {
		eval := Eval{Score: s.Evaluator.StaticScore(b), MateDistance: 0}
		s.Evaluator.CacheUnplay(hash)
		s.Evaluator.CacheStore(hash, eval, depth)
		return eval
	}

	var best Eval
	if maximize {
		best = Low()
		for _, m := range moves {
			b.Make(m)
			val := s.minimax(b, depth+1, alpha, beta, b.WhiteToMove, checkHintFromMove(m))
			b.Unmake()

			best = maxEval(best, val)
			alpha = maxEval(alpha, val)
			if beta.Compare(alpha) <= 0 {
				break
			}
		}
	} else {
		best = High()
		for _, m := range moves {
			b.Make(m)
			val := s.minimax(b, depth+1, alpha, beta, b.WhiteToMove, checkHintFromMove(m))
			b.Unmake()

			best = minEval(best, val)
			beta = minEval(beta, val)
			if beta.Compare(alpha) <= 0 {
				break
			}
		}
	}

	s.Evaluator.CacheUnplay(hash)
	s.Evaluator.CacheStore(hash, best, depth)
	return best
}
