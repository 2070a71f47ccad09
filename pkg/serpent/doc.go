// Package serpent implements the Serpent-1 block cipher with a 256-bit key.
//
// The implementation follows the non-bitslice description of the cipher:
// initial permutation, 32 rounds of key mixing, S-box substitution and the
// table-driven linear transformation, then the final permutation. The
// reference tables are kept as published and evaluated over 128-bit values
// held in four little-endian 32-bit words.
//
// Encrypt and Decrypt are one-shot helpers that expand the key on every
// call. Callers encrypting many blocks under the same key should build a
// Cipher once with NewCipher and reuse it.
package serpent
