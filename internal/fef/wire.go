package fef

import "fmt"

const (
	// Magic identifies an FEF container.
	Magic = "FEF"

	Version2 byte = 2
	Version3 byte = 3

	// HeaderSize is the length of magic, version and flag.
	HeaderSize = len(Magic) + 2
)

const (
	flagClear     byte = 0
	flagEncrypted byte = 1
)

// Tag bytes of the body stream.
const (
	tagFile         byte = 'F'
	tagName         byte = 'N'
	tagSections     byte = 'L'
	tagStart        byte = 'S'
	tagCoefficients byte = 'l'
	tagSamples      byte = 's'
	tagEnd          byte = 'E'
)

// sampleWidth returns the number of bytes of one coefficient half.
func sampleWidth(version byte) int {
	if version == Version2 {
		return 4
	}

	return 8
}

func checkVersion(version byte) error {
	if version != Version2 && version != Version3 {
		return fmt.Errorf("%w: %d", ErrUnsupportedVersion, version)
	}

	return nil
}

// ParseHeader validates the clear-text header at the start of data.
// Any flag value other than 1 means the body is not enciphered.
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, fmt.Errorf("%w: %d bytes", ErrShortHeader, len(data))
	}

	if string(data[:len(Magic)]) != Magic {
		return Header{}, fmt.Errorf("%w: %q", ErrInvalidMagic, data[:len(Magic)])
	}

	version := data[len(Magic)]
	if err := checkVersion(version); err != nil {
		return Header{}, err
	}

	return Header{
		Version:   version,
		Encrypted: data[len(Magic)+1] == flagEncrypted,
	}, nil
}
