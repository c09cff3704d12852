package chess

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttackQuerySymmetry(t *testing.T) {
	pos, err := ParseFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	require.NoError(t, err)

	attacked := AllAttackedSquares(pos, Black, NoSquare)
	for sq := Square(0); sq < numOfSquaresInBoard; sq++ {
		want := attacked&bbForSquare(sq) != 0
		got := IsAttackedBy(pos, sq, Black, NoSquare)
		assert.Equal(t, want, got, "square %s", sq)
	}
}

func TestRayProperty(t *testing.T) {
	a, b := E1, E8
	ray := Ray(a, b)
	assert.NotZero(t, ray&bbForSquare(a))
	assert.NotZero(t, ray&bbForSquare(b))
	assert.Zero(t, ray&^fileMaskOf(a))
}

// TestRayIsBoundedSegment guards against computing Ray as the entire
// shared line instead of the segment between the two squares: neither
// endpoint here sits at the edge of its line, so a ray that leaked past
// either one would be caught.
func TestRayIsBoundedSegment(t *testing.T) {
	a := NewSquare(FileE, Rank2)
	b := NewSquare(FileE, Rank6)
	ray := Ray(a, b)
	assert.Equal(t, PopCount(ray), 5, "ray should contain e2..e6 inclusive")
	for r := Rank1; r <= Rank8; r++ {
		sq := NewSquare(FileE, r)
		want := r >= Rank2 && r <= Rank6
		assert.Equal(t, want, ray&bbForSquare(sq) != 0, "square %s", sq)
	}

	da := NewSquare(FileB, Rank2)
	db := NewSquare(FileF, Rank6)
	diagRay := Ray(da, db)
	assert.Zero(t, diagRay&bbForSquare(NewSquare(FileA, Rank1)), "ray must not extend past b2 toward a1")
	assert.Zero(t, diagRay&bbForSquare(NewSquare(FileG, Rank7)), "ray must not extend past f6 toward g7")
	assert.NotZero(t, diagRay&bbForSquare(NewSquare(FileD, Rank4)), "d4 lies between b2 and f6")
}

func TestNoCheckIsAllBits(t *testing.T) {
	pos, err := ParseFEN(StartFEN)
	require.NoError(t, err)
	assert.Equal(t, checkMaskAll, pos.checkMask(White))
	assert.Equal(t, checkMaskAll, pos.checkMask(Black))
	assert.False(t, pos.InCheck())
}

func TestPinDetection(t *testing.T) {
	// White king on e1, white rook pinned on e2 by a black rook on e8,
	// file e otherwise empty between them; black king on a8.
	pos, err := ParseFEN("k3r3/8/8/8/8/8/4R3/4K3 w - - 0 1")
	require.NoError(t, err)
	ray, pinned := pos.pinRayFor(White, NewSquare(FileE, Rank2))
	require.True(t, pinned)
	assert.NotZero(t, ray&bbForSquare(NewSquare(FileE, Rank8)))
}
