package convert

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/mfrancis33/fef/internal/encryption"
	"github.com/mfrancis33/fef/internal/fef"
	"github.com/mfrancis33/fef/internal/spectral"
)

// DecodeOptions controls Decode.
type DecodeOptions struct {
	// Password opens an encrypted container.
	Password string
	// AllowNoPassword decodes an encrypted container with the null password
	// instead of failing when Password is empty.
	AllowNoPassword bool
	// Rounding handles samples outside the signed byte range.
	Rounding spectral.Rounding
	// Parallel bounds the number of entries materialized at once. Zero means NumCPU.
	Parallel int
}

// Result is a decoded container.
type Result struct {
	// Files in container order, names unique.
	Files []File
	// Warnings are advisory, in the order they were raised.
	Warnings  []string
	Encrypted bool
	Version   byte
	// Coefficients is the number of spectral coefficients read.
	Coefficients int
}

// Decode converts container bytes back into files.
// A bad header, a missing password or a Strict rounding failure is fatal;
// everything else is reported in Result.Warnings.
func Decode(data []byte, opts DecodeOptions) (*Result, error) {
	header, err := fef.ParseHeader(data)
	if err != nil {
		return nil, err
	}

	result := &Result{Encrypted: header.Encrypted, Version: header.Version}

	switch {
	case header.Encrypted:
		password := opts.Password
		if password == "" {
			if !opts.AllowNoPassword {
				return nil, ErrPasswordRequired
			}

			password = encryption.NullPassword
			result.warn("container is encrypted but no password was given; output is likely corrupt")
		}

		plain, report, err := encryption.OpenWithReport(data, password)
		if err != nil {
			return nil, fmt.Errorf("decrypting container: %w", err)
		}

		if !report.Aligned() {
			result.warn("%d trailing byte(s) do not fill a cipher block and were left as is", report.Tail)
		}

		data = plain
	case opts.Password != "":
		result.warn("container is not encrypted; password ignored")
	}

	container, warnings, err := fef.Decode(data)
	if err != nil {
		return nil, err
	}

	for _, w := range warnings {
		result.Warnings = append(result.Warnings, w.String())
	}

	if err := result.materialize(container.Entries, opts); err != nil {
		return nil, err
	}

	return result, nil
}

func (r *Result) warn(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// materialize runs the inverse transform for every entry. Per-entry warnings
// are appended in entry order.
func (r *Result) materialize(entries []fef.Entry, opts DecodeOptions) error {
	r.Files = make([]File, len(entries))
	outside := make([]int, len(entries))

	group := errgroup.Group{}
	group.SetLimit(limit(opts.Parallel))

	for i, entry := range entries {
		r.Coefficients += entry.Coefficients()

		group.Go(func() error {
			content, n, err := restore(spectral.NewAdapter(), entry.Sections, opts.Rounding)
			if err != nil {
				return fmt.Errorf("restoring %q: %w", entry.Name, err)
			}

			r.Files[i] = File{Name: entry.Name, Content: content}
			outside[i] = n

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}

	for i, n := range outside {
		if n > 0 {
			r.warn("%s: %d sample(s) outside the byte range were %s", entries[i].Name, n, verb(opts.Rounding))
		}
	}

	return nil
}

func verb(r spectral.Rounding) string {
	if r == spectral.Wrap {
		return "wrapped"
	}

	return "clamped"
}

func restore(a *spectral.Adapter, sections []fef.Section, rounding spectral.Rounding) ([]byte, int, error) {
	var (
		content []byte
		outside int
	)

	for _, s := range sections {
		b, n, err := spectral.ToBytes(a.Inverse(s), rounding)
		if err != nil {
			return nil, outside + n, err
		}

		content = append(content, b...)
		outside += n
	}

	if content == nil {
		content = []byte{}
	}

	return content, outside, nil
}
