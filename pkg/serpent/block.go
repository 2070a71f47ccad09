package serpent

import (
	"encoding/binary"
	"math/bits"
)

const blockBits = 128

// block is a 128-bit value. Bit i lives in bit i%32 of word i/32.
type block [4]uint32

func loadBlock(src []byte) block {
	return block{
		binary.LittleEndian.Uint32(src[0:4]),
		binary.LittleEndian.Uint32(src[4:8]),
		binary.LittleEndian.Uint32(src[8:12]),
		binary.LittleEndian.Uint32(src[12:16]),
	}
}

func (b block) store(dst []byte) {
	binary.LittleEndian.PutUint32(dst[0:4], b[0])
	binary.LittleEndian.PutUint32(dst[4:8], b[1])
	binary.LittleEndian.PutUint32(dst[8:12], b[2])
	binary.LittleEndian.PutUint32(dst[12:16], b[3])
}

func (b block) xor(o block) block {
	return block{b[0] ^ o[0], b[1] ^ o[1], b[2] ^ o[2], b[3] ^ o[3]}
}

func (b block) bit(i uint8) uint32 {
	return b[i>>5] >> (i & 31) & 1
}

func (b *block) setBit(i uint8) {
	b[i>>5] |= 1 << (i & 31)
}

// permute moves input bit table[p] to output bit p.
func permute(table *[blockBits]uint8, in block) block {
	var out block

	for p := range table {
		if in.bit(table[p]) != 0 {
			out.setBit(uint8(p))
		}
	}

	return out
}

// compileTaps turns per-output-bit tap lists into masks so that output bit i
// is the parity of in & masks[i].
func compileTaps(taps *[blockBits][]uint8) *[blockBits]block {
	var masks [blockBits]block

	for i, list := range taps {
		for _, tap := range list {
			masks[i][tap>>5] ^= 1 << (tap & 31)
		}
	}

	return &masks
}

var (
	ltMasks        = compileTaps(&ltTaps)
	ltInverseMasks = compileTaps(&ltInverseTaps)
)

func linear(masks *[blockBits]block, in block) block {
	var out block

	for i := range masks {
		m := &masks[i]

		folded := in[0]&m[0] ^ in[1]&m[1] ^ in[2]&m[2] ^ in[3]&m[3]
		if bits.OnesCount32(folded)&1 != 0 {
			out.setBit(uint8(i))
		}
	}

	return out
}

func invertBoxes(boxes *[8][16]uint8) *[8][16]uint8 {
	var inv [8][16]uint8

	for b := range boxes {
		for x, y := range boxes[b] {
			inv[b][y] = uint8(x)
		}
	}

	return &inv
}

var sBoxesInverse = invertBoxes(&sBoxes)

// substitute applies box to each of the 32 nibbles of in.
func substitute(box *[16]uint8, in block) block {
	var out block

	for w, word := range in {
		var sub uint32

		for shift := uint(0); shift < 32; shift += 4 {
			sub |= uint32(box[word>>shift&0xf]) << shift
		}

		out[w] = sub
	}

	return out
}

// substituteColumns feeds bit j of the four words through box as one nibble,
// word 0 supplying the least significant bit.
func substituteColumns(box *[16]uint8, words []uint32) block {
	var out block

	for j := uint(0); j < 32; j++ {
		nibble := words[0]>>j&1 | (words[1]>>j&1)<<1 | (words[2]>>j&1)<<2 | (words[3]>>j&1)<<3
		v := uint32(box[nibble])

		for l := range out {
			out[l] |= (v >> uint(l) & 1) << j
		}
	}

	return out
}
