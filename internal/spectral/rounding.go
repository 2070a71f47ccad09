package spectral

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var (
	// ErrOutOfRange is returned by the Strict policy for a sample outside [-128, 127].
	ErrOutOfRange = errors.New("sample out of range")
	// ErrUnknownRounding is returned by ParseRounding.
	ErrUnknownRounding = errors.New("unknown rounding policy")
)

// Rounding decides what happens to samples that round outside the signed byte range.
type Rounding int

const (
	// Clamp saturates to [-128, 127]. NaN becomes 0.
	Clamp Rounding = iota
	// Wrap keeps the low eight bits of the rounded value.
	Wrap
	// Strict fails on the first out-of-range sample.
	Strict
)

var roundingNames = [...]string{Clamp: "clamp", Wrap: "wrap", Strict: "strict"}

func (r Rounding) String() string {
	if r >= 0 && int(r) < len(roundingNames) {
		return roundingNames[r]
	}

	return fmt.Sprintf("Rounding(%d)", int(r))
}

// RoundingNames lists the accepted policy names.
func RoundingNames() []string {
	return roundingNames[:]
}

// ParseRounding parses a policy name, case-insensitively. Empty means Clamp.
func ParseRounding(s string) (Rounding, error) {
	if s == "" {
		return Clamp, nil
	}

	for i, name := range roundingNames {
		if strings.EqualFold(s, name) {
			return Rounding(i), nil
		}
	}

	return Clamp, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownRounding, s, strings.Join(roundingNames[:], ", "))
}

// ToBytes rounds every sample half-to-even and stores it as a signed byte.
// It returns the number of samples that did not fit, handled according to r.
func ToBytes(samples []float64, r Rounding) ([]byte, int, error) {
	out := make([]byte, len(samples))
	outside := 0

	for i, s := range samples {
		v := math.RoundToEven(s)

		if !math.IsNaN(v) && v >= math.MinInt8 && v <= math.MaxInt8 {
			out[i] = byte(int8(v))

			continue
		}

		outside++

		switch r {
		case Strict:
			return nil, outside, fmt.Errorf("%w: sample %d is %g", ErrOutOfRange, i, s)
		case Wrap:
			out[i] = wrap(v)
		default:
			out[i] = clamp(v)
		}
	}

	return out, outside, nil
}

func clamp(v float64) byte {
	switch {
	case math.IsNaN(v):
		return 0
	case v < 0:
		return 0x80
	default:
		return 0x7f
	}
}

func wrap(v float64) byte {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}

	return byte(int64(math.Mod(v, 256)))
}
