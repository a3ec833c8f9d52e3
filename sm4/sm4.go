// Package sm4 implements the SM4 block cipher as defined in
// GB/T 32907-2016.
package sm4

import (
	"errors"
)

const (
	// BlockSize is the cipher block length in bytes.
	BlockSize = 16

	// KeySize is the cipher key length in bytes.
	KeySize = 16
)

var (
	// ErrKeySize is returned by NewCipher for keys that are not exactly
	// KeySize bytes.
	ErrKeySize = errors.New("sm4: invalid key size")

	// ErrBlockSize is returned by Encrypt and Decrypt for inputs that are
	// not exactly BlockSize bytes.
	ErrBlockSize = errors.New("sm4: invalid block size")
)

// Cipher holds the round-key schedule derived from a single 128-bit key.
// The schedule is immutable after NewCipher returns, so a Cipher may be
// shared freely across concurrent Encrypt and Decrypt calls.
type Cipher struct {
	rk [32]uint32
}

// NewCipher derives the round-key schedule from a 16-byte key and returns
// a Cipher ready for use.
func NewCipher(key []byte) (*Cipher, error) {
	if len(key) != KeySize {
		return nil, ErrKeySize
	}
	c := new(Cipher)
	expandKey((*[KeySize]byte)(key), &c.rk)
	return c, nil
}

// Encrypt transforms a single 16-byte block and returns the ciphertext as a
// fresh slice. Multi-block inputs must be split by the caller; no chaining
// is applied.
func (c *Cipher) Encrypt(block []byte) ([]byte, error) {
	return c.crypt(block, false)
}

// Decrypt transforms a single 16-byte block and returns the plaintext as a
// fresh slice. It consumes the same schedule as Encrypt in reverse order.
func (c *Cipher) Decrypt(block []byte) ([]byte, error) {
	return c.crypt(block, true)
}

func (c *Cipher) crypt(block []byte, decrypt bool) ([]byte, error) {
	if len(block) != BlockSize {
		return nil, ErrBlockSize
	}
	out := make([]byte, BlockSize)
	cryptBlock(&c.rk, (*[BlockSize]byte)(out), (*[BlockSize]byte)(block), decrypt)
	return out, nil
}
