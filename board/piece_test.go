package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	for _, letter := range []byte{'p', 'P', 'k', 'K', 'n', 'N', 'b', 'B', 'r', 'R', 'q', 'Q'} {
		code, err := EncodeLetter(letter)
		require.NoError(t, err)
		assert.Equal(t, letter, DecodeLetter(code))
	}
}

func TestEncodeLetterRejectsUnknown(t *testing.T) {
	_, err := EncodeLetter('x')
	assert.Error(t, err)
}

func TestDecodeUndefinedCodeIsFatal(t *testing.T) {
	assert.Panics(t, func() { DecodeLetter(0) })
	assert.Panics(t, func() { DecodeLetter(1) })
}

func TestCastlingBit(t *testing.T) {
	assert.Equal(t, WhiteKingSide, CastlingBit('K'))
	assert.Equal(t, WhiteQueenSide, CastlingBit('Q'))
	assert.Equal(t, BlackKingSide, CastlingBit('k'))
	assert.Equal(t, BlackQueenSide, CastlingBit('q'))
	assert.Equal(t, uint8(0), CastlingBit('x'))
}

func TestPromotionCodeRoundTrip(t *testing.T) {
	for _, kind := range []uint8{BishopKind, RookKind, KnightKind, QueenKind} {
		code := PromotionCodeForKind(kind)
		assert.Equal(t, kind, PromotionKind(code))
	}
}

func TestMoveMetaAccessors(t *testing.T) {
	var m Move
	m.Meta = withSpecial(m.Meta)
	m.Meta = withPromotion(m.Meta, PromoQueen)
	m.Meta = withCapturedKind(m.Meta, RookKind)
	m.Meta = withCheck(m.Meta, true)

	assert.True(t, m.IsSpecial())
	assert.Equal(t, PromoQueen, m.PromotionCode())
	assert.Equal(t, RookKind, m.CapturedKind())
	assert.True(t, m.DeliversCheck())
	assert.False(t, m.DeliversDoubleCheck())
}

func TestSortMovesDescending(t *testing.T) {
	moves := []Move{{Meta: 3}, {Meta: 200}, {Meta: 0}, {Meta: 128}}
	SortMovesDescending(moves)
	for i := 1; i < len(moves); i++ {
		assert.LessOrEqual(t, moves[i].Meta, moves[i-1].Meta)
	}
}
