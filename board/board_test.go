package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFENStartingPosition(t *testing.T) {
	b, err := ParseFEN(StartingFEN)
	require.NoError(t, err)
	assert.True(t, b.WhiteToMove)
	assert.Equal(t, WhiteKingSide|WhiteQueenSide|BlackKingSide|BlackQueenSide, b.CastlingRights)
	assert.Equal(t, SquareNone, b.EnPassant)
	assert.Equal(t, 0, b.HalfmoveClock)
	assert.Equal(t, 1, b.FullmoveNumber)
	assert.Equal(t, NewSquare(0, FileE), b.WhiteKingSq)
	assert.Equal(t, NewSquare(7, FileE), b.BlackKingSq)
	assert.Equal(t, MakePiece(RookKind, true), b.Field[0][FileA])
	assert.Equal(t, MakePiece(PawnKind, false), b.Field[6][FileA])
}

func TestParseFENRejectsBadPlacement(t *testing.T) {
	_, err := ParseFEN("bad w - - 0 1")
	assert.Error(t, err)
}

func TestParseFENRejectsUnknownCastlingLetter(t *testing.T) {
	_, err := ParseFEN("8/8/8/8/8/8/8/8 w X - 0 1")
	assert.Error(t, err)
}

func TestMakeUnmakeRoundTripSequence(t *testing.T) {
	b := NewBoard()
	before := *b

	moves := []Move{
		{From: NewSquare(1, FileE), To: NewSquare(3, FileE)}, // e2e4
		{From: NewSquare(7, FileB), To: NewSquare(5, FileC)}, // b8c6
		{From: NewSquare(3, FileE), To: NewSquare(4, FileE)}, // e4e5
		{From: NewSquare(6, FileD), To: NewSquare(4, FileD)}, // d7d5
		{From: NewSquare(4, FileE), To: NewSquare(5, FileD), Meta: withCapturedKind(0, PawnKind)}, // e5d6 en passant
	}
	moves[4].Meta = withSpecial(moves[4].Meta)

	for _, m := range moves {
		b.Make(m)
	}

	expected, err := ParseFEN("r1bqkbnr/ppp1pppp/2nP4/8/8/8/PPPP1PPP/RNBQKBNR b KQkq - 0 3")
	require.NoError(t, err)
	assert.Equal(t, expected.Field, b.Field)
	assert.Equal(t, expected.WhiteToMove, b.WhiteToMove)
	assert.Equal(t, expected.CastlingRights, b.CastlingRights)
	assert.Equal(t, expected.EnPassant, b.EnPassant)
	assert.Equal(t, expected.FullmoveNumber, b.FullmoveNumber)

	for range moves {
		b.Unmake()
	}

	assert.Equal(t, before.Field, b.Field)
	assert.Equal(t, before.WhiteToMove, b.WhiteToMove)
	assert.Equal(t, before.CastlingRights, b.CastlingRights)
	assert.Equal(t, before.EnPassant, b.EnPassant)
	assert.Equal(t, before.HalfmoveClock, b.HalfmoveClock)
	assert.Equal(t, before.FullmoveNumber, b.FullmoveNumber)
	assert.Equal(t, before.WhiteKingSq, b.WhiteKingSq)
	assert.Equal(t, before.BlackKingSq, b.BlackKingSq)
}

func TestUnmakeOnEmptyHistoryIsFatal(t *testing.T) {
	b := NewBoard()
	assert.Panics(t, func() { b.Unmake() })
}

func TestCastlingRelocatesRookAndClearsRights(t *testing.T) {
	b, err := ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)

	m := Move{From: NewSquare(0, FileE), To: NewSquare(0, FileG)}
	m.Meta = withSpecial(m.Meta)
	b.Make(m)

	assert.Equal(t, MakePiece(KingKind, true), b.Field[0][FileG])
	assert.Equal(t, MakePiece(RookKind, true), b.Field[0][FileF])
	assert.Equal(t, Empty, b.Field[0][FileH])
	assert.Equal(t, BlackKingSide|BlackQueenSide, b.CastlingRights)
	assert.Equal(t, NewSquare(0, FileG), b.WhiteKingSq)

	b.Unmake()
	assert.Equal(t, MakePiece(KingKind, true), b.Field[0][FileE])
	assert.Equal(t, MakePiece(RookKind, true), b.Field[0][FileH])
	assert.Equal(t, Empty, b.Field[0][FileF])
	assert.Equal(t, WhiteKingSide|WhiteQueenSide|BlackKingSide|BlackQueenSide, b.CastlingRights)
}

func TestPhantomRookCastlingMaterializesRook(t *testing.T) {
	// The original rook at h1 is gone, but the king-side right is still
	// set: castling still succeeds and a rook materializes on f1.
	b, err := ParseFEN("4k3/8/8/8/8/8/8/4K3 w K - 0 1")
	require.NoError(t, err)
	b.CastlingRights = WhiteKingSide

	m := Move{From: NewSquare(0, FileE), To: NewSquare(0, FileG)}
	m.Meta = withSpecial(m.Meta)
	b.Make(m)

	assert.Equal(t, MakePiece(RookKind, true), b.Field[0][FileF])
}

func TestCapturingRookOnHomeSquareClearsCastlingRight(t *testing.T) {
	b, err := ParseFEN("r3k2r/8/8/8/8/7Q/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)

	m := Move{From: NewSquare(2, FileH), To: NewSquare(7, FileH)}
	m.Meta = withCapturedKind(m.Meta, RookKind)
	b.Make(m)

	assert.Equal(t, WhiteKingSide|WhiteQueenSide|BlackQueenSide, b.CastlingRights)

	b.Unmake()
	assert.Equal(t, WhiteKingSide|WhiteQueenSide|BlackKingSide|BlackQueenSide, b.CastlingRights)
}

func TestHalfmoveClockResetsOnCaptureOrPawnMove(t *testing.T) {
	b, err := ParseFEN("4k3/8/8/8/3p4/8/3P4/4K3 w - - 5 10")
	require.NoError(t, err)

	m := Move{From: NewSquare(1, FileD), To: NewSquare(3, FileD)}
	b.Make(m)
	assert.Equal(t, 0, b.HalfmoveClock)
}
