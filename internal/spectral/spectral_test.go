package spectral_test

import (
	"bytes"
	"errors"
	"math"
	"math/cmplx"
	"math/rand"
	"testing"

	"github.com/mfrancis33/fef/internal/spectral"
)

const tolerance = 1e-9

func TestForwardKnownBlock(t *testing.T) {
	t.Parallel()

	got := spectral.NewAdapter().Forward([]int8{1, 2, 3, 4})
	want := []complex128{2.5, complex(-0.5, -0.5), -0.5, complex(-0.5, 0.5)}

	if len(got) != len(want) {
		t.Fatalf("Forward returned %d coefficients, want %d", len(got), len(want))
	}

	for i := range want {
		if cmplx.Abs(got[i]-want[i]) > tolerance {
			t.Errorf("coefficient %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestInverseRecoversBlocks(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(7))
	a := spectral.NewAdapter()

	for _, n := range []int{1, 2, 3, 4, 7, 64, 100, 256} {
		data := make([]byte, n)
		rng.Read(data)

		block := spectral.Split(data, n)[0]
		samples := a.Inverse(a.Forward(block))

		for i, s := range samples {
			if math.Abs(s-float64(block[i])) > 0.5-tolerance {
				t.Fatalf("n=%d sample %d = %g, want %d", n, i, s, block[i])
			}
		}

		got, outside, err := spectral.ToBytes(samples, spectral.Strict)
		if err != nil || outside != 0 {
			t.Fatalf("n=%d ToBytes: %d outside, err %v", n, outside, err)
		}

		if !bytes.Equal(got, data) {
			t.Errorf("n=%d round trip = %x, want %x", n, got, data)
		}
	}
}

func TestEmptyBlock(t *testing.T) {
	t.Parallel()

	a := spectral.NewAdapter()

	if got := a.Forward(nil); len(got) != 0 {
		t.Errorf("Forward(nil) = %v", got)
	}

	if got := a.Inverse(nil); len(got) != 0 {
		t.Errorf("Inverse(nil) = %v", got)
	}
}

func TestSplit(t *testing.T) {
	t.Parallel()

	blocks := spectral.Split([]byte{0x01, 0xff, 0x80, 0x7f, 0x00}, 2)

	want := [][]int8{{1, -1}, {-128, 127}, {0}}
	if len(blocks) != len(want) {
		t.Fatalf("Split returned %d blocks, want %d", len(blocks), len(want))
	}

	for i := range want {
		if string(int8s(blocks[i])) != string(int8s(want[i])) {
			t.Errorf("block %d = %v, want %v", i, blocks[i], want[i])
		}
	}

	if got := spectral.Split(nil, 4); len(got) != 0 {
		t.Errorf("Split(nil) = %v", got)
	}

	if got := spectral.Split([]byte{1}, 0); got != nil {
		t.Errorf("Split(size 0) = %v", got)
	}
}

func int8s(v []int8) []byte {
	out := make([]byte, len(v))
	for i, x := range v {
		out[i] = byte(x)
	}

	return out
}

func TestToBytesPolicies(t *testing.T) {
	t.Parallel()

	samples := []float64{0.4, -0.6, 2.5, 127.4, 200, -129, -300, math.NaN(), math.Inf(1)}

	tests := []struct {
		rounding spectral.Rounding
		want     []byte
	}{
		{spectral.Clamp, []byte{0, 0xff, 2, 127, 127, 0x80, 0x80, 0, 127}},
		{spectral.Wrap, []byte{0, 0xff, 2, 127, 200, 127, 0xd4, 0, 0}},
	}

	for _, tt := range tests {
		got, outside, err := spectral.ToBytes(samples, tt.rounding)
		if err != nil {
			t.Fatalf("%v: %v", tt.rounding, err)
		}

		if outside != 5 {
			t.Errorf("%v: outside = %d, want 5", tt.rounding, outside)
		}

		if !bytes.Equal(got, tt.want) {
			t.Errorf("%v: ToBytes = % x, want % x", tt.rounding, got, tt.want)
		}
	}

	if _, _, err := spectral.ToBytes(samples, spectral.Strict); !errors.Is(err, spectral.ErrOutOfRange) {
		t.Errorf("Strict: err = %v, want ErrOutOfRange", err)
	}
}

func TestParseRounding(t *testing.T) {
	t.Parallel()

	for _, name := range spectral.RoundingNames() {
		r, err := spectral.ParseRounding(name)
		if err != nil || r.String() != name {
			t.Errorf("ParseRounding(%q) = %v, %v", name, r, err)
		}
	}

	if r, err := spectral.ParseRounding(""); err != nil || r != spectral.Clamp {
		t.Errorf("ParseRounding(\"\") = %v, %v", r, err)
	}

	if r, err := spectral.ParseRounding("WRAP"); err != nil || r != spectral.Wrap {
		t.Errorf("ParseRounding(WRAP) = %v, %v", r, err)
	}

	if _, err := spectral.ParseRounding("floor"); !errors.Is(err, spectral.ErrUnknownRounding) {
		t.Errorf("ParseRounding(floor) err = %v", err)
	}
}
