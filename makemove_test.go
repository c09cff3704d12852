package chess

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMakeUnmakeRoundTrip exercises the legality testable property from
// spec.md §8: for every move returned by GenerateMoves, MakeMove followed
// by UnmakeMove restores a bit-identical position.
func TestMakeUnmakeRoundTrip(t *testing.T) {
	positions := []string{
		StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"1r4k1/p6p/1n4pP/2b2pP1/2p1KP2/8/1P1R4/7R w - f6 0 36",
		"4k3/2R5/4p2p/P4PpP/8/3bP3/2p2K2/8 b - - 0 62",
	}
	for _, fen := range positions {
		pos, err := ParseFEN(fen)
		require.NoError(t, err, fen)
		before := pos.String()
		for _, m := range GenerateMoves(pos) {
			pos.MakeMove(m)
			pos.UnmakeMove()
			assert.Equal(t, before, pos.String(), "fen=%s move=%s", fen, m)
		}
	}
}

// TestCheckInvariant exercises the check invariant: after applying any
// move returned by GenerateMoves, the side that just moved is not in
// check.
func TestCheckInvariant(t *testing.T) {
	positions := []string{
		StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	}
	for _, fen := range positions {
		pos, err := ParseFEN(fen)
		require.NoError(t, err, fen)
		mover := pos.SideToMove()
		for _, m := range GenerateMoves(pos) {
			pos.MakeMove(m)
			assert.False(t, pos.checkMask(mover) != checkMaskAll, "move %s leaves mover in check", m)
			pos.UnmakeMove()
		}
	}
}
