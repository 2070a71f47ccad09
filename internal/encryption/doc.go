// Package encryption wraps serialized FEF containers in a Serpent envelope.
// The 5-byte container header stays in clear text; everything after it is
// enciphered block by block with keys cycled out of the password.
package encryption
