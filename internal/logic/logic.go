// Package logic runs encode and decode jobs for the command line.
package logic

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mfrancis33/fef/internal/config"
	"github.com/mfrancis33/fef/internal/convert"
	"github.com/mfrancis33/fef/internal/fef"
	"github.com/mfrancis33/fef/internal/fileutil"
	"github.com/mfrancis33/fef/internal/spectral"
)

const (
	containerPerm = 0o600
	folderPerm    = 0o750

	// maxNameLen is the common file name limit of Linux and macOS file systems.
	maxNameLen = 255
)

// RunEncode packs every input file into one container.
func RunEncode(cfg *config.Config) error {
	st := stats{start: time.Now()}

	files, err := readInputs(cfg.Files, cfg.Parallel)
	if err != nil {
		return err
	}

	seen := make(map[string]bool, len(files))

	for _, f := range files {
		st.input += int64(len(f.Content))

		if seen[f.Name] {
			warn(&st, "duplicate entry name %q: only the last one will be restored", f.Name)
		}

		seen[f.Name] = true
	}

	data, err := convert.Encode(files, convert.EncodeOptions{
		BlockSize: cfg.BlockSize,
		Password:  cfg.Password,
		Parallel:  cfg.Parallel,
	})
	if err != nil {
		return fmt.Errorf("encoding: %w", err)
	}

	st.output, err = fileutil.WriteAtomic(cfg.Output, data, containerPerm)
	if err != nil {
		return fmt.Errorf("writing container: %w", err)
	}

	st.files = len(files)

	if !cfg.Quiet {
		fmt.Printf("Encoded %d file(s) -> %q\n", len(files), cfg.Output) //nolint:forbidigo
	}

	if cfg.Stats {
		st.print()
	}

	return nil
}

// readInputs reads every file fully. Entries are named after the base name of the path.
func readInputs(paths []string, parallel int) ([]convert.File, error) {
	files := make([]convert.File, len(paths))

	group := errgroup.Group{}
	group.SetLimit(max(1, parallel))

	for i, path := range paths {
		group.Go(func() error {
			content, err := os.ReadFile(path) //nolint:gosec // reading user supplied inputs is the point
			if err != nil {
				return fmt.Errorf("reading input: %w", err)
			}

			files[i] = convert.File{Name: filepath.Base(path), Content: content}

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return files, nil
}

// RunDecode restores the files of one container into the output folder.
// When the container is encrypted and no password was configured, prompt is
// asked for one; declining aborts without an error.
func RunDecode(cfg *config.Config, prompt Prompter) error {
	st := stats{start: time.Now()}
	input := cfg.Files[0]

	data, err := os.ReadFile(input) //nolint:gosec // reading user supplied inputs is the point
	if err != nil {
		return fmt.Errorf("reading container: %w", err)
	}

	st.input = int64(len(data))

	header, err := fef.ParseHeader(data)
	if err != nil {
		return fmt.Errorf("reading %q: %w", input, err)
	}

	rounding, err := spectral.ParseRounding(cfg.Rounding)
	if err != nil {
		return err
	}

	opts := convert.DecodeOptions{
		Password:        cfg.Password,
		AllowNoPassword: cfg.NoPassword,
		Rounding:        rounding,
		Parallel:        cfg.Parallel,
	}

	if header.Encrypted && opts.Password == "" && !opts.AllowNoPassword {
		proceed, err := askPassword(prompt, &opts)
		if err != nil {
			return err
		}

		if !proceed {
			fmt.Fprintln(os.Stderr, "Aborted")

			return nil
		}
	}

	result, err := convert.Decode(data, opts)
	if err != nil {
		return fmt.Errorf("decoding %q: %w", input, err)
	}

	for _, w := range result.Warnings {
		warn(&st, "%s", w)
	}

	folder := cfg.Folder
	if folder == "" {
		folder = defaultFolder(input)
	}

	if err := os.MkdirAll(folder, folderPerm); err != nil {
		return fmt.Errorf("creating output folder: %w", err)
	}

	written, err := writeOutputs(folder, result.Files, cfg, &st)

	st.files = len(result.Files)
	st.coefficients = result.Coefficients
	st.output = written

	if cfg.Stats {
		st.print()
	}

	if err != nil {
		return fmt.Errorf("writing files: %w", err)
	}

	return nil
}

// defaultFolder strips the extension from the container path. A path without
// one gets a "_files" suffix so the folder never lands on the container itself.
func defaultFolder(input string) string {
	ext := filepath.Ext(input)

	if ext == "" || ext == filepath.Base(input) {
		return input + "_files"
	}

	return strings.TrimSuffix(input, ext)
}

// askPassword fills opts from the prompt. It returns false when the user
// declines to continue without a password.
func askPassword(prompt Prompter, opts *convert.DecodeOptions) (bool, error) {
	if prompt == nil {
		return false, convert.ErrPasswordRequired
	}

	password, err := prompt.Password("Container is encrypted. Password: ")
	if err != nil {
		return false, fmt.Errorf("%w (pass --password or --no-password): %w", convert.ErrPasswordRequired, err)
	}

	if password != "" {
		opts.Password = password

		return true, nil
	}

	ok, err := prompt.Confirm("Proceed without a password? Restored files will likely be corrupt.")
	if err != nil || !ok {
		return false, err
	}

	opts.AllowNoPassword = true

	return true, nil
}

// writeOutputs writes every restored file into folder, in parallel.
func writeOutputs(folder string, files []convert.File, cfg *config.Config, st *stats) (int64, error) {
	names := outputNames(files, st)
	sizes := make([]int64, len(files))

	group := errgroup.Group{}
	group.SetLimit(max(1, cfg.Parallel))

	for i, f := range files {
		group.Go(func() error {
			out := filepath.Join(folder, names[i])

			size, err := fileutil.WriteAtomic(out, f.Content, containerPerm)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", out, err)

				return err
			}

			sizes[i] = size

			if !cfg.Quiet {
				fmt.Printf("Restored %q -> %q\n", f.Name, out) //nolint:forbidigo
			}

			return nil
		})
	}

	err := group.Wait()

	var total int64
	for _, s := range sizes {
		total += s
	}

	return total, err
}

// outputNames maps entry names to safe file names inside the output folder.
// Directory components are dropped; names that would escape the folder, are
// too long or collide get a generated default.
func outputNames(files []convert.File, st *stats) []string {
	names := make([]string, len(files))
	taken := make(map[string]bool, len(files))

	for i, f := range files {
		name := filepath.Base(strings.ReplaceAll(f.Name, `\`, "/"))

		if name == "." || name == ".." || name == "/" || len(name) > maxNameLen || taken[name] {
			name = fef.DefaultName(func(n string) bool { return taken[n] })
		}

		if name != f.Name {
			warn(st, "entry %q written as %q", f.Name, name)
		}

		taken[name] = true
		names[i] = name
	}

	return names
}

func warn(st *stats, format string, args ...any) {
	st.warnings++

	fmt.Fprintf(os.Stderr, "WARNING: "+format+"\n", args...)
}
