package fef

// Section holds the spectral coefficients of one source block.
type Section []complex128

// Entry is one named file inside a container.
type Entry struct {
	Name     string
	Sections []Section
	// Declared is the section count announced by the L tag. It is only
	// meaningful for decoded entries; Encode writes len(Sections).
	Declared uint32
}

// Container is a fully materialized FEF container.
type Container struct {
	// Version is the wire version. Zero means Version3.
	Version byte
	// Encrypted sets the header flag byte.
	Encrypted bool
	Entries   []Entry
}

// Header is the clear-text prefix of a container.
type Header struct {
	Version   byte
	Encrypted bool
}

// Coefficients returns the total number of coefficients across all sections.
func (e *Entry) Coefficients() int {
	n := 0
	for _, s := range e.Sections {
		n += len(s)
	}

	return n
}
