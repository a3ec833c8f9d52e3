// Package sm3 implements the SM3 cryptographic hash function as defined
// in GB/T 32905-2016.
package sm3

import (
	"encoding/binary"

	"github.com/zeebo/gmsm/internal/utils"
)

const (
	// Size is the length of an SM3 digest in bytes.
	Size = 32

	// BlockSize is the length of a compression block in bytes.
	BlockSize = 64
)

// Sum computes the SM3 digest of data. It is a pure function: the input is
// never mutated, and identical inputs always produce identical digests.
func Sum(data []byte) [Size]byte {
	chain := iv

	padded := pad(data)
	for len(padded) > 0 {
		compress(&chain, (*[BlockSize]byte)(padded))
		padded = padded[BlockSize:]
	}

	var digest [Size]byte
	utils.WordsToBytes(&chain, &digest)
	return digest
}

// pad returns a fresh buffer holding data followed by the 0x80 marker, zero
// fill, and the original length in bits as a big-endian 64-bit integer. The
// result is always a positive multiple of BlockSize, growing by an extra
// block when the marker leaves no room for the length field.
func pad(data []byte) []byte {
	padded := make([]byte, (len(data)+9+63)/64*64)
	copy(padded, data)
	padded[len(data)] = 0x80
	binary.BigEndian.PutUint64(padded[len(padded)-8:], uint64(len(data))*8)
	return padded
}
