package convert

import (
	"errors"
	"runtime"
)

// DefaultBlockSize is the number of source bytes per section.
const DefaultBlockSize = 64

var (
	// ErrNoInput is returned when Encode is given no files.
	ErrNoInput = errors.New("no input files")
	// ErrInvalidBlockSize is returned for a block size below one byte.
	ErrInvalidBlockSize = errors.New("invalid block size")
	// ErrPasswordRequired is returned when an encrypted container is decoded
	// without a password and without explicitly allowing a degraded decode.
	ErrPasswordRequired = errors.New("container is encrypted: password required")
)

// File is a named byte content.
type File struct {
	Name    string
	Content []byte
}

func limit(parallel int) int {
	if parallel < 1 {
		return runtime.NumCPU()
	}

	return parallel
}
