package sm3

import (
	"math/bits"

	"github.com/zeebo/gmsm/internal/utils"
)

func p0(x uint32) uint32 {
	return x ^ bits.RotateLeft32(x, 9) ^ bits.RotateLeft32(x, 17)
}

func p1(x uint32) uint32 {
	return x ^ bits.RotateLeft32(x, 15) ^ bits.RotateLeft32(x, 23)
}

// expand derives the 68-word schedule w and the 64-word schedule wp from a
// single 64-byte block.
func expand(block *[64]byte, w *[68]uint32, wp *[64]uint32) {
	utils.BytesToWords(block, (*[16]uint32)(w[:16]))

	for j := 16; j < 68; j++ {
		w[j] = p1(w[j-16]^w[j-9]^bits.RotateLeft32(w[j-3], 15)) ^
			bits.RotateLeft32(w[j-13], 7) ^ w[j-6]
	}

	for j := 0; j < 64; j++ {
		wp[j] = w[j] ^ w[j+4]
	}
}

// compress folds one 64-byte block into chain. Additions wrap mod 2^32,
// which the round structure depends on.
func compress(chain *[8]uint32, block *[64]byte) {
	var w [68]uint32
	var wp [64]uint32
	expand(block, &w, &wp)

	a, b, c, d := chain[0], chain[1], chain[2], chain[3]
	e, f, g, h := chain[4], chain[5], chain[6], chain[7]

	for j := 0; j < 16; j++ {
		tj := bits.RotateLeft32(t0, j)
		a12 := bits.RotateLeft32(a, 12)
		ss1 := bits.RotateLeft32(a12+e+tj, 7)
		ss2 := ss1 ^ a12
		tt1 := (a ^ b ^ c) + d + ss2 + wp[j]
		tt2 := (e ^ f ^ g) + h + ss1 + w[j]

		d = c
		c = bits.RotateLeft32(b, 9)
		b = a
		a = tt1
		h = g
		g = bits.RotateLeft32(f, 19)
		f = e
		e = p0(tt2)
	}

	for j := 16; j < 64; j++ {
		tj := bits.RotateLeft32(t1, j%32)
		a12 := bits.RotateLeft32(a, 12)
		ss1 := bits.RotateLeft32(a12+e+tj, 7)
		ss2 := ss1 ^ a12
		tt1 := (a&b | a&c | b&c) + d + ss2 + wp[j]
		tt2 := (e&f | ^e&g) + h + ss1 + w[j]

		d = c
		c = bits.RotateLeft32(b, 9)
		b = a
		a = tt1
		h = g
		g = bits.RotateLeft32(f, 19)
		f = e
		e = p0(tt2)
	}

	chain[0] ^= a
	chain[1] ^= b
	chain[2] ^= c
	chain[3] ^= d
	chain[4] ^= e
	chain[5] ^= f
	chain[6] ^= g
	chain[7] ^= h
}
