package engine

// Eval is a position value: a heuristic score in pawn units (positive
// favors white) plus a mate distance. A positive mate distance counts
// white's moves to a forced white mate, negative counts black's moves
// to a forced black mate, zero means "no forced mate known" — the score alone then
// carries the comparison.
type Eval struct {
	Score        float64
	MateDistance int
}

const bigScore = 1 << 20

// Draw is the neutral (0, 0) evaluation.
func Draw() Eval { return Eval{} }

// Low is the worst possible evaluation for white: a black mate in one
// with the lowest score, which Compare ranks below every other Eval.
func Low() Eval { return Eval{Score: -bigScore, MateDistance: -1} }

// High is the best possible evaluation for white: a white mate in one
// with the highest score, which Compare ranks above every other Eval.
func High() Eval { return Eval{Score: bigScore, MateDistance: 1} }

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	default:
		return 0
	}
}

// Compare returns a negative number if e is worse for white than o, a
// positive number if e is better, and 0 if they are equal under this
// total order:
//
//  1. Equal mate distance: ordinary score comparison.
//  2. Both mate distances positive: fewer moves to mate is better for
//     white (so the *smaller* positive mate distance compares greater).
//  3. Both mate distances negative: the *larger magnitude* loss is
//     less bad for white, since the mate takes longer to arrive (so the
//     more negative value compares greater).
//  4. Mixed sign (including "no mate known" vs. a mate): a mate-for-
//     white beats any non-mate, which beats any mate-for-black — decided
//     purely by the sign of the mate distance, ignoring score.
func (e Eval) Compare(o Eval) int {
	if e.MateDistance == o.MateDistance {
		switch {
		case e.Score < o.Score:
			return -1
		case e.Score > o.Score:
			return 1
		default:
			return 0
		}
	}
	if e.MateDistance > 0 && o.MateDistance > 0 {
		if e.MateDistance < o.MateDistance {
			return 1
		}
		return -1
	}
	if e.MateDistance < 0 && o.MateDistance < 0 {
		if e.MateDistance < o.MateDistance {
			return 1
		}
		return -1
	}
	return sign(e.MateDistance) - sign(o.MateDistance)
}

func (e Eval) Less(o Eval) bool    { return e.Compare(o) < 0 }
func (e Eval) Greater(o Eval) bool { return e.Compare(o) > 0 }

func maxEval(a, b Eval) Eval {
	if a.Greater(b) {
		return a
	}
	return b
}

func minEval(a, b Eval) Eval {
	if a.Less(b) {
		return a
	}
	return b
}
