package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZobristSameSeedSameHash(t *testing.T) {
	a := NewZobristHasher(DefaultZobristSeed)
	c := NewZobristHasher(DefaultZobristSeed)
	b := NewBoard()
	assert.Equal(t, a.Hash(b), c.Hash(b))
}

func TestZobristDifferentPositionsDiffer(t *testing.T) {
	z := NewZobristHasher(DefaultZobristSeed)

	b1, err := ParseFEN("rnbqkbnr/1pp1pppp/p7/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	require.NoError(t, err)
	b2, err := ParseFEN("rnbq1bnr/pppppk1p/8/5p2/4P1pP/5PP1/PPPPN3/RNBQKBR1 b Q h3 0 6")
	require.NoError(t, err)

	assert.NotEqual(t, z.Hash(b1), z.Hash(b2))
}

func TestZobristStableAcrossMakeUnmake(t *testing.T) {
	z := NewZobristHasher(DefaultZobristSeed)
	b, err := ParseFEN("r1bqkb1r/pppp1ppp/2n2n2/4p1N1/2B1P3/8/PPPP1PPP/RNBQK2R b KQkq - 5 4")
	require.NoError(t, err)

	h := z.Hash(b)
	b.Make(Move{From: NewSquare(6, FileD), To: NewSquare(4, FileD)})
	h2 := z.Hash(b)
	b.Unmake()
	h3 := z.Hash(b)

	assert.NotEqual(t, h, h2)
	assert.Equal(t, h, h3)
}

func TestZobristIgnoresHalfmoveAndFullmoveCounters(t *testing.T) {
	z := NewZobristHasher(DefaultZobristSeed)
	b1, err := ParseFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	b2, err := ParseFEN("4k3/8/8/8/8/8/8/4K3 w - - 17 42")
	require.NoError(t, err)
	assert.Equal(t, z.Hash(b1), z.Hash(b2))
}
