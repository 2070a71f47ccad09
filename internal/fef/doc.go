// Package fef implements the FEF container format.
//
// An FEF container is a 5-byte header followed by a tagged byte stream:
//
//	"FEF" version flag
//	F N name 0x00 L count S
//	    l count s real imag real imag ...
//	    ...
//	E
//	F ...
//
// Counts are big-endian uint32 values. Version 3 stores each coefficient half
// as a big-endian IEEE-754 double, version 2 as a float. The flag byte is 1
// when the body after the header has been enciphered; the codec itself never
// looks at it beyond reporting it.
//
// Decoding is a byte-at-a-time state machine that never looks ahead. Damage
// inside the body is reported as warnings rather than errors, so a partially
// readable container still yields whatever entries it holds.
package fef
