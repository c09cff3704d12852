package chess

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeUCIRoundTrip(t *testing.T) {
	pos, err := ParseFEN(StartFEN)
	require.NoError(t, err)
	for _, m := range GenerateMoves(pos) {
		s := EncodeUCI(m)
		decoded, err := DecodeUCI(pos, s)
		require.NoError(t, err, s)
		assert.True(t, m.Eq(decoded), "uci round trip for %s", s)
	}
}

func TestEncodeSANKnownOpeningMove(t *testing.T) {
	pos, err := ParseFEN(StartFEN)
	require.NoError(t, err)
	legal := GenerateMoves(pos)
	var knightMove Move
	found := false
	for _, m := range legal {
		if m.Piece == WhiteKnight && m.S1 == NewSquare(FileG, Rank1) && m.S2 == NewSquare(FileF, Rank3) {
			knightMove = m
			found = true
		}
	}
	require.True(t, found)
	assert.Equal(t, "Nf3", EncodeSAN(pos, knightMove, legal))
}

func TestDecodeSANRoundTrip(t *testing.T) {
	pos, err := ParseFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	legal := GenerateMoves(pos)
	for _, m := range legal {
		san := EncodeSAN(pos, m, legal)
		decoded, err := DecodeSAN(pos, san)
		require.NoError(t, err, san)
		assert.True(t, m.Eq(decoded), "san round trip for %s", san)
	}
}
