package serpent

import (
	"crypto/cipher"
	"encoding/binary"
	"errors"
	"fmt"
	"math/bits"
)

const (
	// BlockSize is the Serpent block size in bytes.
	BlockSize = 16
	// KeySize is the only key size supported, in bytes.
	KeySize = 32

	rounds = 32
	phi    = 0x9e3779b9 // golden ratio round constant
)

// ErrInvalidLength is returned when a block or key does not have the exact size.
var ErrInvalidLength = errors.New("serpent: invalid length")

// Cipher holds the expanded round keys for one 256-bit key.
// It is safe for concurrent use.
type Cipher struct {
	keys [rounds + 1]block
}

var _ cipher.Block = (*Cipher)(nil)

// NewCipher expands key into the 33 round keys.
func NewCipher(key []byte) (*Cipher, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: key is %d bytes, want %d", ErrInvalidLength, len(key), KeySize)
	}

	c := &Cipher{}
	c.expand(key)

	return c, nil
}

// expand runs the key schedule. The S-box for round key i is (32+3-i) mod 8,
// so the boxes are consumed in reverse order relative to the rounds.
func (c *Cipher) expand(key []byte) {
	var w [8 + 4*(rounds+1)]uint32

	for i := 0; i < 8; i++ {
		w[i] = binary.LittleEndian.Uint32(key[4*i:])
	}

	for i := 8; i < len(w); i++ {
		x := w[i-8] ^ w[i-5] ^ w[i-3] ^ w[i-1] ^ phi ^ uint32(i-8)
		w[i] = bits.RotateLeft32(x, 11)
	}

	prekeys := w[8:]

	for i := range c.keys {
		box := &sBoxes[(rounds+3-i)%8]
		c.keys[i] = permute(&ipTable, substituteColumns(box, prekeys[4*i:4*i+4]))
	}
}

// BlockSize returns the cipher block size.
func (c *Cipher) BlockSize() int { return BlockSize }

// Encrypt encrypts the first block of src into dst.
// Dst and src may overlap entirely.
func (c *Cipher) Encrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("serpent: input not full block")
	}

	if len(dst) < BlockSize {
		panic("serpent: output not full block")
	}

	b := permute(&ipTable, loadBlock(src))

	for r := 0; r < rounds; r++ {
		s := substitute(&sBoxes[r%8], b.xor(c.keys[r]))

		if r < rounds-1 {
			b = linear(ltMasks, s)
		} else {
			b = s.xor(c.keys[rounds])
		}
	}

	permute(&fpTable, b).store(dst)
}

// Decrypt decrypts the first block of src into dst.
// Dst and src may overlap entirely.
func (c *Cipher) Decrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("serpent: input not full block")
	}

	if len(dst) < BlockSize {
		panic("serpent: output not full block")
	}

	// The inverse of the final permutation is the initial one and vice versa.
	b := permute(&ipTable, loadBlock(src))

	for r := rounds - 1; r >= 0; r-- {
		var s block

		if r == rounds-1 {
			s = b.xor(c.keys[rounds])
		} else {
			s = linear(ltInverseMasks, b)
		}

		b = substitute(&sBoxesInverse[r%8], s).xor(c.keys[r])
	}

	permute(&fpTable, b).store(dst)
}

// Encrypt encrypts a single 16-byte block under a 32-byte key.
func Encrypt(in, key []byte) ([]byte, error) {
	c, err := oneShot(in, key)
	if err != nil {
		return nil, err
	}

	out := make([]byte, BlockSize)
	c.Encrypt(out, in)

	return out, nil
}

// Decrypt decrypts a single 16-byte block under a 32-byte key.
func Decrypt(in, key []byte) ([]byte, error) {
	c, err := oneShot(in, key)
	if err != nil {
		return nil, err
	}

	out := make([]byte, BlockSize)
	c.Decrypt(out, in)

	return out, nil
}

func oneShot(in, key []byte) (*Cipher, error) {
	if len(in) != BlockSize {
		return nil, fmt.Errorf("%w: block is %d bytes, want %d", ErrInvalidLength, len(in), BlockSize)
	}

	return NewCipher(key)
}
