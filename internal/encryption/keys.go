package encryption

import (
	"unicode/utf8"

	"github.com/mfrancis33/fef/pkg/serpent"
)

// NullPassword is the sentinel used to open a flagged container without a password.
const NullPassword = "\x00"

// DeriveKey builds the 32-byte block key by reading 32 password characters
// starting at offset, wrapping around the password. The characters are UTF-8
// encoded and the first 32 bytes form the key.
func DeriveKey(password string, offset int) [serpent.KeySize]byte {
	return deriveKey([]rune(password), offset)
}

func deriveKey(runes []rune, offset int) [serpent.KeySize]byte {
	buf := make([]byte, 0, serpent.KeySize*utf8.UTFMax)

	for j := 0; j < serpent.KeySize; j++ {
		buf = utf8.AppendRune(buf, runes[(offset+j)%len(runes)])
	}

	var key [serpent.KeySize]byte
	copy(key[:], buf)

	return key
}

// NextOffset advances the rotating key offset by one block for a password of length characters.
func NextOffset(offset, length int) int {
	return (offset + serpent.KeySize%length) % length
}

// keyring hands out one cipher per block, caching the key schedule per distinct key.
type keyring struct {
	runes   []rune
	offset  int
	ciphers map[[serpent.KeySize]byte]*serpent.Cipher
}

func newKeyring(password string) (*keyring, error) {
	if password == "" {
		return nil, ErrEmptyPassword
	}

	return &keyring{
		runes:   []rune(password),
		ciphers: make(map[[serpent.KeySize]byte]*serpent.Cipher),
	}, nil
}

// next returns the cipher for the current block and advances the offset.
func (k *keyring) next() (*serpent.Cipher, error) {
	key := deriveKey(k.runes, k.offset)
	k.offset = NextOffset(k.offset, len(k.runes))

	if c, ok := k.ciphers[key]; ok {
		return c, nil
	}

	c, err := serpent.NewCipher(key[:])
	if err != nil {
		return nil, err
	}

	k.ciphers[key] = c

	return c, nil
}
