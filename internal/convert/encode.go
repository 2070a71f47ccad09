package convert

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/mfrancis33/fef/internal/encryption"
	"github.com/mfrancis33/fef/internal/fef"
	"github.com/mfrancis33/fef/internal/spectral"
)

// EncodeOptions controls Encode.
type EncodeOptions struct {
	// BlockSize is the number of bytes per section. Zero means DefaultBlockSize.
	BlockSize int
	// Password enables the encryption envelope when not empty.
	Password string
	// Parallel bounds the number of files transformed at once. Zero means NumCPU.
	Parallel int
}

// Encode converts files into container bytes. Entries keep the order of files.
func Encode(files []File, opts EncodeOptions) ([]byte, error) {
	if len(files) == 0 {
		return nil, ErrNoInput
	}

	size := opts.BlockSize
	if size == 0 {
		size = DefaultBlockSize
	}

	if size < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBlockSize, size)
	}

	container := &fef.Container{
		Version:   fef.Version3,
		Encrypted: opts.Password != "",
		Entries:   make([]fef.Entry, len(files)),
	}

	group := errgroup.Group{}
	group.SetLimit(limit(opts.Parallel))

	for i, file := range files {
		group.Go(func() error {
			container.Entries[i] = fef.Entry{
				Name:     file.Name,
				Sections: transform(spectral.NewAdapter(), file.Content, size),
			}

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	data, err := fef.Marshal(container)
	if err != nil {
		return nil, fmt.Errorf("serializing container: %w", err)
	}

	if !container.Encrypted {
		return data, nil
	}

	sealed, err := encryption.Seal(data, opts.Password)
	if err != nil {
		return nil, fmt.Errorf("encrypting container: %w", err)
	}

	return sealed, nil
}

func transform(a *spectral.Adapter, content []byte, size int) []fef.Section {
	blocks := spectral.Split(content, size)

	sections := make([]fef.Section, len(blocks))
	for i, block := range blocks {
		sections[i] = a.Forward(block)
	}

	return sections
}
