package fef

import "errors"

var (
	ErrInvalidMagic       = errors.New("fef: invalid magic")
	ErrUnsupportedVersion = errors.New("fef: unsupported version")
	ErrShortHeader        = errors.New("fef: truncated header")
	ErrInvalidEntry       = errors.New("fef: invalid entry")
)
