package encryption

// zeroPad returns a copy of data extended with zero bytes to a multiple of blockSize.
// The decoder stops at the last entry terminator, so the zeros are never read as data.
func zeroPad(data []byte, blockSize int) []byte {
	size := len(data)
	if rem := size % blockSize; rem != 0 {
		size += blockSize - rem
	}

	padded := make([]byte, size)
	copy(padded, data)

	return padded
}
