package chess

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFENStartingPosition(t *testing.T) {
	pos, err := ParseFEN(StartFEN)
	require.NoError(t, err)
	assert.Equal(t, White, pos.SideToMove())
	assert.Equal(t, castleWK|castleWQ|castleBK|castleBQ, pos.CastleRights())
	assert.Equal(t, NoSquare, pos.EnPassantTarget())
	assert.Equal(t, 1, PopCount(pos.boards[WhiteKing]))
	assert.Equal(t, 1, PopCount(pos.boards[BlackKing]))
}

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"4k3/2R5/4p2p/P4PpP/8/3bP3/2p2K2/8 b - - 0 62",
	}
	for _, fen := range fens {
		pos, err := ParseFEN(fen)
		require.NoError(t, err, fen)
		assert.Equal(t, fen, RenderFEN(pos))
	}
}

func TestParseFENRejectsMalformedInput(t *testing.T) {
	cases := []string{
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKZNR w KQkq - 0 1",
		"rnbqkbnr/ppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",
	}
	for _, fen := range cases {
		_, err := ParseFEN(fen)
		assert.Error(t, err, fen)
	}
}

func TestParseFENRejectsIllegalPosition(t *testing.T) {
	_, err := ParseFEN("8/8/8/8/8/8/8/4K3 w - - 0 1")
	assert.Error(t, err, "missing black king")
}
