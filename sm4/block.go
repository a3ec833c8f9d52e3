package sm4

import (
	"math/bits"

	"github.com/zeebo/gmsm/internal/utils"
)

// tau substitutes each byte of x through the S-box.
func tau(x uint32) uint32 {
	return uint32(sbox[x>>24])<<24 |
		uint32(sbox[x>>16&0xff])<<16 |
		uint32(sbox[x>>8&0xff])<<8 |
		uint32(sbox[x&0xff])
}

// t is the round composite transform: substitution then the round linear
// diffusion L.
func t(x uint32) uint32 {
	b := tau(x)
	return b ^ bits.RotateLeft32(b, 2) ^ bits.RotateLeft32(b, 10) ^
		bits.RotateLeft32(b, 18) ^ bits.RotateLeft32(b, 24)
}

// tKey is the key-schedule composite transform: substitution then the
// schedule linear diffusion L'.
func tKey(x uint32) uint32 {
	b := tau(x)
	return b ^ bits.RotateLeft32(b, 13) ^ bits.RotateLeft32(b, 23)
}

// expandKey derives the 32-word round-key schedule from a 16-byte key.
func expandKey(key *[16]byte, rk *[32]uint32) {
	var k [4]uint32
	utils.BlockToWords(key, &k)

	k[0] ^= fk[0]
	k[1] ^= fk[1]
	k[2] ^= fk[2]
	k[3] ^= fk[3]

	for j := 0; j < 32; j++ {
		next := k[0] ^ tKey(k[1]^k[2]^k[3]^ck[j])
		k[0], k[1], k[2], k[3] = k[1], k[2], k[3], next
		rk[j] = next
	}
}

// cryptBlock runs the 32-round structure over one block. Encryption and
// decryption differ only in schedule order: decrypt reads rk backwards.
// The final four words come out in reverse order, as the standard requires.
func cryptBlock(rk *[32]uint32, dst, src *[16]byte, decrypt bool) {
	var x [4]uint32
	utils.BlockToWords(src, &x)

	j, step := 0, 1
	if decrypt {
		j, step = 31, -1
	}
	for r := 0; r < 32; r++ {
		next := x[0] ^ t(x[1]^x[2]^x[3]^rk[j])
		x[0], x[1], x[2], x[3] = x[1], x[2], x[3], next
		j += step
	}

	x[0], x[1], x[2], x[3] = x[3], x[2], x[1], x[0]
	utils.WordsToBlock(&x, dst)
}
