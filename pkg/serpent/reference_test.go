package serpent_test

import (
	"bytes"
	"math/rand"
	"testing"

	aead "github.com/aead/serpent"

	"github.com/mfrancis33/fef/pkg/serpent"
)

// The table-driven cipher must agree with an independent bitsliced
// implementation for 256-bit keys.
func TestMatchesBitslicedImplementation(t *testing.T) {
	rng := rand.New(rand.NewSource(2024))

	for i := 0; i < 32; i++ {
		key := make([]byte, serpent.KeySize)
		plain := make([]byte, serpent.BlockSize)
		rng.Read(key)
		rng.Read(plain)

		ours, err := serpent.NewCipher(key)
		if err != nil {
			t.Fatal(err)
		}

		theirs, err := aead.NewCipher(key)
		if err != nil {
			t.Fatal(err)
		}

		want := make([]byte, serpent.BlockSize)
		got := make([]byte, serpent.BlockSize)

		theirs.Encrypt(want, plain)
		ours.Encrypt(got, plain)

		if !bytes.Equal(got, want) {
			t.Fatalf("encrypt mismatch for key %x: got %x, want %x", key, got, want)
		}

		theirs.Decrypt(want, want)
		ours.Decrypt(got, got)

		if !bytes.Equal(got, plain) || !bytes.Equal(want, plain) {
			t.Fatalf("decrypt mismatch for key %x", key)
		}
	}
}
