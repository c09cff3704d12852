package chess

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requirePerft asserts Perft(pos, depth) == want. On mismatch it logs the
// position's FEN and renders pos as an SVG board diagram (C15) into an
// in-memory buffer; the log reports the size of that SVG, not its content.
func requirePerft(t *testing.T, pos *Position, depth int, want int64) {
	t.Helper()
	got := Perft(pos, depth)
	if got == want {
		return
	}
	var buf bytes.Buffer
	if err := pos.RenderSVG(&buf); err != nil {
		t.Logf("perft mismatch at depth %d (fen=%s): got %d, want %d; svg dump failed: %v", depth, pos, got, want, err)
	} else {
		t.Logf("perft mismatch at depth %d (fen=%s): got %d, want %d; rendered %d-byte svg diagnostic", depth, pos, got, want, buf.Len())
	}
	t.Fatalf("perft depth %d: got %d, want %d", depth, got, want)
}

func TestPerftStartingPosition(t *testing.T) {
	pos, err := ParseFEN(StartFEN)
	require.NoError(t, err)

	cases := []struct {
		depth int
		nodes int64
	}{
		{1, 20},
		{2, 400},
		{3, 8902},
	}
	for _, c := range cases {
		requirePerft(t, pos, c.depth, c.nodes)
	}
}

func TestPerftKiwipete(t *testing.T) {
	pos, err := ParseFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	require.NoError(t, err)

	requirePerft(t, pos, 1, 48)
	requirePerft(t, pos, 2, 2039)
	requirePerft(t, pos, 3, 97862)
}

// TestPerftReachesSliderChecks goes deep enough (starting position depth 4,
// Kiwipete depth 4) that the tree contains positions where the side to move
// is in check from a bishop, rook, or queen several squares away from its
// king. A Ray computation that returned the entire shared line instead of
// the bounded segment between attacker and king silently legalizes moves
// that don't address such a check, and neither of the shallower depths
// above is guaranteed to reach one.
func TestPerftReachesSliderChecks(t *testing.T) {
	start, err := ParseFEN(StartFEN)
	require.NoError(t, err)
	requirePerft(t, start, 4, 197281)

	kiwipete, err := ParseFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	requirePerft(t, kiwipete, 4, 4085603)
}

func TestPerftParallelAgreesWithSequential(t *testing.T) {
	pos, err := ParseFEN(StartFEN)
	require.NoError(t, err)

	seq := Perft(pos, 3)
	par := PerftParallel(pos, 3, 4)
	assert.Equal(t, seq, par)
}

func TestPerftDivideSumsToTotal(t *testing.T) {
	pos, err := ParseFEN(StartFEN)
	require.NoError(t, err)

	entries := PerftDivide(pos, 3)
	var sum int64
	for _, e := range entries {
		sum += e.Nodes
	}
	assert.Equal(t, Perft(pos, 3), sum)
}
