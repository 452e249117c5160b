package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSquareString(t *testing.T) {
	assert.Equal(t, "e4", NewSquare(3, FileE).String())
	assert.Equal(t, "-", SquareNone.String())
}

func TestMoveUCIQuietMove(t *testing.T) {
	b := NewBoard()
	m := Move{From: NewSquare(1, FileE), To: NewSquare(3, FileE)}
	assert.Equal(t, "e2e4", m.UCI(b))
}

func TestMoveUCIPromotion(t *testing.T) {
	b, err := ParseFEN("6k1/4Pppp/5P2/8/8/8/8/6K1 w - - 0 1")
	require.NoError(t, err)
	m := Move{From: NewSquare(6, FileE), To: NewSquare(7, FileE)}
	m.Meta = withSpecial(m.Meta)
	m.Meta = withPromotion(m.Meta, PromoQueen)
	assert.Equal(t, "e7e8q", m.UCI(b))
}

func TestMoveUCIDoesNotConfuseCastleWithPromotion(t *testing.T) {
	b, err := ParseFEN("r2k1bnr/ppp1pppp/5N2/8/8/7B/PPP1PP1P/R3K1NR w KQ - 0 1")
	require.NoError(t, err)
	m := Move{From: NewSquare(0, FileE), To: NewSquare(0, FileC)}
	m.Meta = withSpecial(m.Meta)
	assert.Equal(t, "e1c1", m.UCI(b))
}

func TestParseUCIMoveRoundTripsQuietMove(t *testing.T) {
	b := NewBoard()
	m, err := ParseUCIMove(b, "e2e4")
	require.NoError(t, err)
	assert.Equal(t, NewSquare(1, FileE), m.From)
	assert.Equal(t, NewSquare(3, FileE), m.To)
	assert.Equal(t, "e2e4", m.UCI(b))
}

func TestParseUCIMoveDetectsCastling(t *testing.T) {
	b, err := ParseFEN("4k3/8/8/8/8/8/8/4K2R w K - 0 1")
	require.NoError(t, err)
	m, err := ParseUCIMove(b, "e1g1")
	require.NoError(t, err)
	assert.True(t, m.IsSpecial())
}

func TestParseUCIMoveDetectsEnPassant(t *testing.T) {
	b, err := ParseFEN("r3k2r/pp1ppppp/8/8/2pP4/8/PPP1PPPP/R3K2R b KQkq d3 0 1")
	require.NoError(t, err)
	m, err := ParseUCIMove(b, "c4d3")
	require.NoError(t, err)
	assert.True(t, m.IsSpecial())
	assert.Equal(t, PawnKind, m.CapturedKind())
}

func TestParseUCIMoveRejectsMalformedInput(t *testing.T) {
	b := NewBoard()
	_, err := ParseUCIMove(b, "e2")
	assert.Error(t, err)
	_, err = ParseUCIMove(b, "e2e4x")
	assert.Error(t, err)
}
