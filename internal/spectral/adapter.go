package spectral

import (
	"gonum.org/v1/gonum/dsp/fourier"
)

// Adapter runs transforms with FFT plans cached per block length.
// It is not safe for concurrent use; use one Adapter per goroutine.
type Adapter struct {
	plans map[int]*fourier.CmplxFFT
	work  []complex128
}

// NewAdapter returns an Adapter with an empty plan cache.
func NewAdapter() *Adapter {
	return &Adapter{plans: make(map[int]*fourier.CmplxFFT)}
}

func (a *Adapter) plan(n int) *fourier.CmplxFFT {
	p, ok := a.plans[n]
	if !ok {
		p = fourier.NewCmplxFFT(n)
		a.plans[n] = p
	}

	return p
}

func (a *Adapter) scratch(n int) []complex128 {
	if cap(a.work) < n {
		a.work = make([]complex128, n)
	}

	return a.work[:n]
}

// Forward returns the spectral coefficients of block.
func (a *Adapter) Forward(block []int8) []complex128 {
	n := len(block)
	if n == 0 {
		return []complex128{}
	}

	in := a.scratch(n)
	for i, v := range block {
		in[i] = complex(float64(v), 0)
	}

	out := a.plan(n).Sequence(make([]complex128, n), in)

	scale := complex(1/float64(n), 0)
	for i := range out {
		out[i] *= scale
	}

	return out
}

// Inverse returns the real samples described by coeffs.
func (a *Adapter) Inverse(coeffs []complex128) []float64 {
	n := len(coeffs)
	if n == 0 {
		return []float64{}
	}

	out := a.plan(n).Coefficients(a.scratch(n), coeffs)

	samples := make([]float64, n)
	for i, c := range out {
		samples[i] = real(c)
	}

	return samples
}

// Split cuts data into blocks of size signed samples. The last block may be short.
func Split(data []byte, size int) [][]int8 {
	if size < 1 {
		return nil
	}

	blocks := make([][]int8, 0, (len(data)+size-1)/size)

	for start := 0; start < len(data); start += size {
		end := min(start+size, len(data))

		block := make([]int8, end-start)
		for i, b := range data[start:end] {
			block[i] = int8(b)
		}

		blocks = append(blocks, block)
	}

	return blocks
}
