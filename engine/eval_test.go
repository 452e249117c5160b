package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvalMatesOrderByDistanceForWhite(t *testing.T) {
	mateIn1 := Eval{MateDistance: 1}
	mateIn3 := Eval{MateDistance: 3}
	assert.True(t, mateIn1.Greater(mateIn3))
	assert.Equal(t, 1, mateIn1.Compare(mateIn3))
}

func TestEvalMatesOrderByMagnitudeForBlack(t *testing.T) {
	mateInNeg1 := Eval{MateDistance: -1}
	mateInNeg3 := Eval{MateDistance: -3}
	assert.True(t, mateInNeg1.Less(mateInNeg3))
}

func TestEvalEqualMateDistanceOrdersByScore(t *testing.T) {
	a := Eval{Score: 1.5}
	b := Eval{Score: 2.5}
	assert.True(t, b.Greater(a))
}

func TestEvalMateForWhiteBeatsNonMateBeatsMateForBlack(t *testing.T) {
	mateForWhite := Eval{MateDistance: 5}
	nonMate := Eval{Score: 1000}
	mateForBlack := Eval{MateDistance: -5}

	assert.True(t, mateForWhite.Greater(nonMate))
	assert.True(t, nonMate.Greater(mateForBlack))
	assert.True(t, mateForWhite.Greater(mateForBlack))
}

func TestEvalConstants(t *testing.T) {
	assert.True(t, High().Greater(Draw()))
	assert.True(t, Draw().Greater(Low()))
}

func TestEvalCompareIsReflexive(t *testing.T) {
	e := Eval{Score: 3.25, MateDistance: 0}
	assert.Equal(t, 0, e.Compare(e))
}
