package sm4

import (
	"bytes"
	"encoding/hex"
	"errors"
	"sync"
	"testing"

	"github.com/zeebo/assert"
	"github.com/zeebo/pcg"
)

// Standard test vector from GM/T 0002-2012 appendix A.
var (
	stdKey        = mustHex("0123456789abcdeffedcba9876543210")
	stdPlain      = mustHex("0123456789abcdeffedcba9876543210")
	stdCipher     = mustHex("681edf34d206965e86b3e94f536e4246")
	stdCipherIter = mustHex("595298c7c6fd271f0402f804c33d3f66")
)

func mustHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}

func TestVector(t *testing.T) {
	c, err := NewCipher(stdKey)
	assert.NoError(t, err)

	ct, err := c.Encrypt(stdPlain)
	assert.NoError(t, err)
	assert.DeepEqual(t, stdCipher, ct)

	pt, err := c.Decrypt(ct)
	assert.NoError(t, err)
	assert.DeepEqual(t, stdPlain, pt)
}

// The second appendix example applies the encryption a million times over.
func TestVectorIterated(t *testing.T) {
	if testing.Short() {
		t.SkipNow()
	}

	c, err := NewCipher(stdKey)
	assert.NoError(t, err)

	buf := stdPlain
	for i := 0; i < 1000000; i++ {
		buf, err = c.Encrypt(buf)
		assert.NoError(t, err)
	}
	assert.DeepEqual(t, stdCipherIter, buf)
}

func TestRoundTrip(t *testing.T) {
	for i := 0; i < 1000; i++ {
		key := make([]byte, KeySize)
		block := make([]byte, BlockSize)
		for j := range key {
			key[j] = byte(pcg.Uint32())
			block[j] = byte(pcg.Uint32())
		}

		c, err := NewCipher(key)
		assert.NoError(t, err)

		ct, err := c.Encrypt(block)
		assert.NoError(t, err)

		pt, err := c.Decrypt(ct)
		assert.NoError(t, err)
		assert.DeepEqual(t, block, pt)
	}
}

func TestKeySize(t *testing.T) {
	for _, n := range []int{0, 1, 15, 17, 32} {
		c, err := NewCipher(make([]byte, n))
		assert.Error(t, err)
		assert.Equal(t, true, errors.Is(err, ErrKeySize))
		if c != nil {
			t.Fatal("cipher constructed from invalid key")
		}
	}
}

func TestBlockSize(t *testing.T) {
	c, err := NewCipher(stdKey)
	assert.NoError(t, err)

	for _, n := range []int{0, 1, 15, 17, 32} {
		_, err := c.Encrypt(make([]byte, n))
		assert.Equal(t, true, errors.Is(err, ErrBlockSize))

		_, err = c.Decrypt(make([]byte, n))
		assert.Equal(t, true, errors.Is(err, ErrBlockSize))
	}
}

func TestInputNotMutated(t *testing.T) {
	c, err := NewCipher(stdKey)
	assert.NoError(t, err)

	block := append([]byte(nil), stdPlain...)
	ct, err := c.Encrypt(block)
	assert.NoError(t, err)
	assert.DeepEqual(t, stdPlain, block)

	if bytes.Equal(ct, block) {
		t.Fatal("ciphertext aliases plaintext")
	}

	_, err = c.Decrypt(block)
	assert.NoError(t, err)
	assert.DeepEqual(t, stdPlain, block)
}

// A single schedule is read-only after construction and safe to share.
func TestConcurrentUse(t *testing.T) {
	c, err := NewCipher(stdKey)
	assert.NoError(t, err)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(seed byte) {
			defer wg.Done()

			block := bytes.Repeat([]byte{seed}, BlockSize)
			for i := 0; i < 100; i++ {
				ct, err := c.Encrypt(block)
				if err != nil {
					t.Errorf("encrypt: %v", err)
					return
				}
				pt, err := c.Decrypt(ct)
				if err != nil {
					t.Errorf("decrypt: %v", err)
					return
				}
				if !bytes.Equal(block, pt) {
					t.Errorf("round trip: got %x, want %x", pt, block)
					return
				}
			}
		}(byte(g))
	}
	wg.Wait()
}
