package encryption

import (
	"fmt"

	"github.com/mfrancis33/fef/pkg/serpent"
)

// HeaderSize is the number of leading container bytes that are never enciphered:
// magic, version and flag.
const HeaderSize = 5

// Report describes how Open processed a container body.
type Report struct {
	// Blocks is the number of 16-byte blocks decrypted.
	Blocks int
	// Tail is the number of trailing bytes that did not fill a block and
	// were copied through undecrypted.
	Tail int
}

// Aligned reports whether the body was a whole number of blocks.
func (r Report) Aligned() bool {
	return r.Tail == 0
}

// Seal encrypts everything after the header of container with password.
// A short final block is zero-padded, so the result is always block aligned.
// The header bytes are copied unchanged.
func Seal(container []byte, password string) ([]byte, error) {
	if len(container) < HeaderSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrShortContainer, len(container))
	}

	ring, err := newKeyring(password)
	if err != nil {
		return nil, err
	}

	body := zeroPad(container[HeaderSize:], serpent.BlockSize)

	out := make([]byte, HeaderSize+len(body))
	copy(out, container[:HeaderSize])

	for i := 0; i < len(body); i += serpent.BlockSize {
		c, err := ring.next()
		if err != nil {
			return nil, fmt.Errorf("block %d: %w", i/serpent.BlockSize, err)
		}

		c.Encrypt(out[HeaderSize+i:], body[i:i+serpent.BlockSize])
	}

	return out, nil
}

// Open decrypts everything after the header of container with password.
// A wrong password is not detected here; it yields garbage plaintext.
func Open(container []byte, password string) ([]byte, error) {
	out, _, err := OpenWithReport(container, password)

	return out, err
}

// OpenWithReport is Open that also describes the body layout, so callers can
// warn about a ciphertext tail that was not block aligned.
func OpenWithReport(container []byte, password string) ([]byte, Report, error) {
	var report Report

	if len(container) < HeaderSize {
		return nil, report, fmt.Errorf("%w: %d bytes", ErrShortContainer, len(container))
	}

	ring, err := newKeyring(password)
	if err != nil {
		return nil, report, err
	}

	out := make([]byte, len(container))
	copy(out, container[:HeaderSize])

	body := container[HeaderSize:]
	whole := len(body) - len(body)%serpent.BlockSize

	for i := 0; i < whole; i += serpent.BlockSize {
		c, err := ring.next()
		if err != nil {
			return nil, report, fmt.Errorf("block %d: %w", i/serpent.BlockSize, err)
		}

		c.Decrypt(out[HeaderSize+i:], body[i:i+serpent.BlockSize])

		report.Blocks++
	}

	report.Tail = copy(out[HeaderSize+whole:], body[whole:])

	return out, report, nil
}
