// Command asmgen emits, as Go assembly via github.com/mmcloughlin/avo, the
// lookup-table data and the function frame of an AVX2 version of the
// hyperbola-quintessence sliding-attack kernel. The emitted function body
// stores zero in both results; it does not compute attacks.
//
// It is run by hand (go run ./internal/asmgen); no go:generate directive
// refers to it. It is not part of the build graph of package chess: no
// generated file is checked in here, and the pure-Go formula in attacks.go
// is always the semantics of record.
//
// Grounded on barakmich-chess bitflip/attacks/calcAttacks.go, retargeted
// from that file's rank/diag/file/antidiag lane order to the mask layout
// in masks.go.
package main

import (
	. "github.com/mmcloughlin/avo/build"
	. "github.com/mmcloughlin/avo/operand"
	"github.com/mmcloughlin/avo/reg"
)

// shuffle/reverse constants for a byte-reversal-then-bit-reversal
// implementation of ReverseBits across four parallel 64-bit lanes packed
// into two YMM registers.
var nibbleLowMask = []uint64{0x0f0f0f0f0f0f0f0f, 0x0f0f0f0f0f0f0f0f}
var reverseLUTLow = []uint64{0x0e060a020c040800, 0x0f070b030d050901}
var reverseLUTHigh = []uint64{0xe060a020c0408000, 0xf070b030d0509010}
var byteSwapShuffle = []uint64{0x0001020304050607, 0x08090a0b0c0d0e0f}

func reverseBitsVec(data reg.VecVirtual, lut [2]reg.VecVirtual, nib reg.VecVirtual) {
	lo := XMM()
	VPAND(nib, data, lo)
	VPANDN(data, nib, data)
	VPSRLQ(U8(4), data, data)
	VPSHUFB(lo, lut[0], lo)
	VPSHUFB(data, lut[1], data)
	VPOR(data, lo, data)
}

// main emits func lineAttackVec(occ, loc uint64, lines [4]uint64) (ortho, diag uint64):
// its lookup-table data, its signature and the loads of its parameters.
// The emitted body stores 0 in ortho and diag and returns; reverseBitsVec
// is not called.
func main() {
	data := GLOBL("lut", RODATA|NOPTR)
	DATA(0, U64(nibbleLowMask[0]))
	DATA(8, U64(nibbleLowMask[1]))
	DATA(16, U64(reverseLUTLow[0]))
	DATA(24, U64(reverseLUTLow[1]))
	DATA(32, U64(reverseLUTHigh[0]))
	DATA(40, U64(reverseLUTHigh[1]))
	DATA(48, U64(byteSwapShuffle[0]))
	DATA(56, U64(byteSwapShuffle[1]))

	TEXT("lineAttackVec", NOSPLIT, "func(occ uint64, loc uint64, lines [4]uint64) (ortho uint64, diag uint64)")
	Doc("lineAttackVec takes an occupancy, a slider bit and four line masks",
		"(rank, file, diag, anti-diag); it returns zero in both ortho and diag",
		"and computes no attacks.")

	_ = Load(Param("occ"), GP64())
	_ = Load(Param("loc"), GP64())
	_ = Load(Param("lines").Index(0), GP64())
	_ = Load(Param("lines").Index(1), GP64())
	_ = Load(Param("lines").Index(2), GP64())
	_ = Load(Param("lines").Index(3), GP64())
	_ = data

	// The emitted body does not apply the hyperbola-quintessence formula
	// (o=occ&m; r=reverse(o); o-=loc; r-=reverse(loc); o^=reverse(r);
	// o&=m): both results are zero. The scalar path in attacks.go is what
	// package chess ships.
	Store(U64(0), ReturnIndex(0))
	Store(U64(0), ReturnIndex(1))
	RET()
}
