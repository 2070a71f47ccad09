package fef

import (
	"encoding/binary"
	"fmt"
	"math"
	"strings"
	"unicode/utf8"
)

// Marshal serializes c. The version defaults to Version3.
func Marshal(c *Container) ([]byte, error) {
	if c == nil {
		return nil, fmt.Errorf("%w: nil container", ErrInvalidEntry)
	}

	version := c.Version
	if version == 0 {
		version = Version3
	}

	if err := checkVersion(version); err != nil {
		return nil, err
	}

	flag := flagClear
	if c.Encrypted {
		flag = flagEncrypted
	}

	size := HeaderSize
	for i := range c.Entries {
		size += encodedSize(&c.Entries[i], version)
	}

	buf := make([]byte, 0, size)
	buf = append(buf, Magic...)
	buf = append(buf, version, flag)

	for i := range c.Entries {
		var err error

		buf, err = appendEntry(buf, &c.Entries[i], version)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
	}

	return buf, nil
}

func validateEntry(e *Entry) error {
	if !utf8.ValidString(e.Name) {
		return fmt.Errorf("%w: name %q is not valid UTF-8", ErrInvalidEntry, e.Name)
	}

	if strings.IndexByte(e.Name, 0) >= 0 {
		return fmt.Errorf("%w: name %q contains a NUL byte", ErrInvalidEntry, e.Name)
	}

	if uint64(len(e.Sections)) > math.MaxUint32 {
		return fmt.Errorf("%w: %q has too many sections", ErrInvalidEntry, e.Name)
	}

	for i, s := range e.Sections {
		if uint64(len(s)) > math.MaxUint32 {
			return fmt.Errorf("%w: %q section %d has too many coefficients", ErrInvalidEntry, e.Name, i)
		}
	}

	return nil
}

func encodedSize(e *Entry, version byte) int {
	// F N name 0 L count S ... E
	size := 1 + 1 + len(e.Name) + 1 + 1 + 4 + 1 + 1

	for _, s := range e.Sections {
		size += 1 + 4 + 1 + 2*sampleWidth(version)*len(s)
	}

	return size
}

func appendEntry(buf []byte, e *Entry, version byte) ([]byte, error) {
	if err := validateEntry(e); err != nil {
		return nil, err
	}

	buf = append(buf, tagFile, tagName)
	buf = append(buf, e.Name...)
	buf = append(buf, 0)

	buf = append(buf, tagSections)
	buf = binary.BigEndian.AppendUint32(buf, uint32(len(e.Sections)))
	buf = append(buf, tagStart)

	for _, s := range e.Sections {
		buf = append(buf, tagCoefficients)
		buf = binary.BigEndian.AppendUint32(buf, uint32(len(s)))
		buf = append(buf, tagSamples)

		for _, c := range s {
			buf = appendSample(buf, real(c), version)
			buf = appendSample(buf, imag(c), version)
		}
	}

	return append(buf, tagEnd), nil
}

func appendSample(buf []byte, v float64, version byte) []byte {
	if version == Version2 {
		return binary.BigEndian.AppendUint32(buf, math.Float32bits(float32(v)))
	}

	return binary.BigEndian.AppendUint64(buf, math.Float64bits(v))
}
