package fef

import (
	"encoding/binary"
	"fmt"
	"math"
	"strings"
	"unicode/utf8"
)

// Warning is an advisory problem found while decoding.
type Warning struct {
	// Offset is the position of the byte that raised the warning.
	Offset int
	// Entry is the name of the entry being decoded, if any.
	Entry   string
	Message string
}

func (w Warning) String() string {
	if w.Entry == "" {
		return fmt.Sprintf("offset %d: %s", w.Offset, w.Message)
	}

	return fmt.Sprintf("offset %d: %s (%s)", w.Offset, w.Message, w.Entry)
}

type state uint8

const (
	stateHeader state = iota
	stateMode
	stateName
	stateLength
	stateReal
	stateImag
	stateClosed
)

func (s state) String() string {
	switch s {
	case stateHeader:
		return "header"
	case stateMode:
		return "tag"
	case stateName:
		return "name"
	case stateLength:
		return "length"
	case stateReal:
		return "real sample"
	case stateImag:
		return "imaginary sample"
	case stateClosed:
		return "closed"
	default:
		return fmt.Sprintf("state(%d)", uint8(s))
	}
}

// decoder is the per-decode context threaded through every byte.
type decoder struct {
	container *Container
	warnings  []Warning
	index     map[string]int

	state state
	pos   int
	size  int
	width int

	// entry is the index of the open entry, -1 when none is open.
	entry int
	name  []byte

	declared     uint32
	coefficients uint32
	count        uint32

	lengthTag byte
	scratch   []byte
	re        float64

	skipped   int
	skipStart int
}

// Decode validates the header of data and parses the body into a container.
// Only a bad header is fatal. Structural damage in the body produces
// warnings and the entries decoded so far.
func Decode(data []byte) (*Container, []Warning, error) {
	h, err := ParseHeader(data)
	if err != nil {
		return nil, nil, err
	}

	d := &decoder{
		container: &Container{Version: h.Version, Encrypted: h.Encrypted},
		index:     make(map[string]int),
		state:     stateHeader,
		size:      len(data),
		width:     sampleWidth(h.Version),
		entry:     -1,
		scratch:   make([]byte, 0, 8),
	}

	for d.pos = HeaderSize - 1; d.pos < len(data); d.pos++ {
		d.step(data[d.pos])
	}

	d.finish()

	return d.container, d.warnings, nil
}

func (d *decoder) warnf(format string, args ...any) {
	w := Warning{Offset: d.pos, Message: fmt.Sprintf(format, args...)}
	if d.entry >= 0 {
		w.Entry = d.container.Entries[d.entry].Name
	}

	d.warnings = append(d.warnings, w)
}

func (d *decoder) step(b byte) {
	switch d.state {
	case stateHeader:
		d.state = stateMode
	case stateMode:
		d.dispatch(b)
	case stateName:
		if b == 0 {
			d.finishName()

			return
		}

		d.name = append(d.name, b)
	case stateLength:
		d.readLength(b)
	case stateReal, stateImag:
		d.readSample(b)
	case stateClosed:
		if b == tagFile {
			d.resetEntry()
			d.state = stateMode
		}
	}
}

func (d *decoder) dispatch(b byte) {
	switch b {
	case tagEnd, tagFile, tagName, tagSections, tagCoefficients, tagSamples, tagStart:
		d.flushSkipped()
	default:
		if d.skipped == 0 {
			d.skipStart = d.pos
		}

		d.skipped++

		return
	}

	switch b {
	case tagEnd:
		d.closeEntry()
		d.state = stateClosed
	case tagFile:
		if d.entry >= 0 {
			d.warnf("entry not terminated before next file tag")
		}

		d.resetEntry()
	case tagName:
		d.name = d.name[:0]
		d.state = stateName
	case tagSections, tagCoefficients:
		d.lengthTag = b
		d.scratch = d.scratch[:0]
		d.state = stateLength
	case tagSamples:
		d.openSection()
	}
}

// resetEntry clears the per-entry scratch.
func (d *decoder) resetEntry() {
	d.entry = -1
	d.name = d.name[:0]
	d.declared = 0
	d.coefficients = 0
}

func (d *decoder) finishName() {
	d.state = stateMode

	if d.entry >= 0 {
		d.warnf("entry not terminated before next name")
	}

	if len(d.name) == 0 {
		name := DefaultName(d.taken)
		d.openEntry(name)
		d.warnf("entry has no name, defaulting to %s", name)

		return
	}

	name := string(d.name)
	if !utf8.ValidString(name) {
		name = strings.ToValidUTF8(name, string(utf8.RuneError))
		d.openEntry(name)
		d.warnf("entry name is not valid UTF-8")

		return
	}

	d.openEntry(name)
}

func (d *decoder) taken(name string) bool {
	_, ok := d.index[name]

	return ok
}

// openEntry starts a new entry. A name seen before replaces the earlier entry
// in place, so names stay unique within one decode.
func (d *decoder) openEntry(name string) {
	if i, ok := d.index[name]; ok {
		d.container.Entries[i] = Entry{Name: name, Declared: d.declared}
		d.entry = i
		d.warnf("duplicate entry name, replacing the earlier entry")

		return
	}

	d.container.Entries = append(d.container.Entries, Entry{Name: name, Declared: d.declared})
	d.entry = len(d.container.Entries) - 1
	d.index[name] = d.entry
}

func (d *decoder) closeEntry() {
	if d.entry < 0 {
		d.warnf("end tag without an open entry")

		return
	}

	e := &d.container.Entries[d.entry]
	if uint64(len(e.Sections)) != uint64(e.Declared) {
		d.warnf("entry has %d sections, declared %d; output may be corrupt", len(e.Sections), e.Declared)
	}

	d.entry = -1
}

func (d *decoder) openSection() {
	if d.entry < 0 {
		name := DefaultName(d.taken)
		d.openEntry(name)
		d.warnf("section without a named entry, defaulting to %s", name)
	}

	// The declared count is untrusted; never reserve more than the input can hold.
	capacity := min(uint64(d.coefficients), uint64((d.size-d.pos)/(2*d.width)))

	e := &d.container.Entries[d.entry]
	e.Sections = append(e.Sections, make(Section, 0, capacity))

	d.count = 0
	d.scratch = d.scratch[:0]

	if d.coefficients > 0 {
		d.state = stateReal
	}
}

func (d *decoder) readLength(b byte) {
	d.scratch = append(d.scratch, b)
	if len(d.scratch) < 4 {
		return
	}

	n := binary.BigEndian.Uint32(d.scratch)

	if d.lengthTag == tagSections {
		d.declared = n
		if d.entry >= 0 {
			d.container.Entries[d.entry].Declared = n
		}
	} else {
		d.coefficients = n
	}

	d.state = stateMode
}

func (d *decoder) readSample(b byte) {
	d.scratch = append(d.scratch, b)
	if len(d.scratch) < d.width {
		return
	}

	var v float64
	if d.width == 4 {
		v = float64(math.Float32frombits(binary.BigEndian.Uint32(d.scratch)))
	} else {
		v = math.Float64frombits(binary.BigEndian.Uint64(d.scratch))
	}

	d.scratch = d.scratch[:0]

	if d.state == stateReal {
		d.re = v
		d.state = stateImag

		return
	}

	e := &d.container.Entries[d.entry]
	last := len(e.Sections) - 1
	e.Sections[last] = append(e.Sections[last], complex(d.re, v))

	d.count++
	if d.count == d.coefficients {
		d.state = stateMode
	} else {
		d.state = stateReal
	}
}

func (d *decoder) flushSkipped() {
	if d.skipped == 0 {
		return
	}

	pos := d.pos
	d.pos = d.skipStart
	d.warnf("skipped %d unrecognized byte(s)", d.skipped)
	d.pos = pos
	d.skipped = 0
}

func (d *decoder) finish() {
	d.flushSkipped()

	switch d.state {
	case stateName, stateLength, stateReal, stateImag:
		d.warnf("input truncated while reading %s", d.state)
	}

	if d.entry >= 0 {
		d.warnf("entry not terminated")
	}
}
