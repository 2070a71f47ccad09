package encryption

import "errors"

var (
	// ErrEmptyPassword is returned when sealing or opening with an empty password.
	ErrEmptyPassword = errors.New("empty password")
	// ErrShortContainer is returned when the input cannot even hold the clear header.
	ErrShortContainer = errors.New("container shorter than header")
)
