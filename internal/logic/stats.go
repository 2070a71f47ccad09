package logic

import (
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
)

// stats summarizes one run.
type stats struct {
	files        int
	warnings     int
	coefficients int
	input    int64
	output   int64
	start    time.Time
}

func (s stats) print() {
	fmt.Fprintf(os.Stderr, "\nStats\n")
	fmt.Fprintf(os.Stderr, "  Files:     %d\n", s.files)
	fmt.Fprintf(os.Stderr, "  Warnings:  %d\n", s.warnings)

	if s.coefficients > 0 {
		fmt.Fprintf(os.Stderr, "  Spectrum:  %s coefficients\n", humanize.Comma(int64(s.coefficients)))
	}

	//nolint:gosec // sizes are always non-negative (sum of file sizes)
	fmt.Fprintf(os.Stderr, "  Input:     %s\n", humanize.IBytes(uint64(max(0, s.input))))
	//nolint:gosec // sizes are always non-negative (sum of file sizes)
	fmt.Fprintf(os.Stderr, "  Output:    %s\n", humanize.IBytes(uint64(max(0, s.output))))

	if s.input > 0 {
		fmt.Fprintf(os.Stderr, "  Ratio:     %s\n", humanize.FtoaWithDigits(float64(s.output)/float64(s.input), 2))
	}

	fmt.Fprintf(os.Stderr, "  Duration:  %s\n", time.Since(s.start).Round(time.Millisecond))
}
