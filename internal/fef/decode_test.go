package fef_test

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"

	"github.com/mfrancis33/fef/internal/fef"
)

// wantEntry describes one decoded entry in a golden file.
type wantEntry struct {
	Name     string `yaml:"name"`
	Sections []int  `yaml:"sections"`
	Declared uint32 `yaml:"declared"`
}

// decodeCase is one hex-encoded container and what Decode must make of it.
type decodeCase struct {
	Description string      `yaml:"description"`
	Data        string      `yaml:"data"`
	Version     byte        `yaml:"version,omitempty"`
	Encrypted   bool        `yaml:"encrypted,omitempty"`
	Entries     []wantEntry `yaml:"entries"`
	Warnings    []string    `yaml:"warnings"`
}

// decodeGroup is a named collection of decode cases.
type decodeGroup struct {
	Name  string       `yaml:"name"`
	Cases []decodeCase `yaml:"cases"`
}

// loadDecodeCases reads every golden container file under testdata, keyed by file name.
func loadDecodeCases(t *testing.T) map[string][]decodeGroup {
	t.Helper()

	paths, err := filepath.Glob(filepath.Join("testdata", "*.yml"))
	if err != nil || len(paths) == 0 {
		t.Fatalf("no golden containers in testdata (err: %v)", err)
	}

	golden := make(map[string][]decodeGroup, len(paths))

	for _, path := range paths {
		raw, err := os.ReadFile(path) //nolint:gosec // test helper reads known testdata files
		if err != nil {
			t.Fatalf("reading %s: %v", path, err)
		}

		var groups []decodeGroup
		if err := yaml.UnmarshalWithOptions(raw, &groups, yaml.Strict()); err != nil {
			t.Fatalf("parsing %s: %v", path, err)
		}

		golden[filepath.Base(path)] = groups
	}

	return golden
}

// forEachDecodeCase runs fn for every golden case whose group is listed in
// groups, or for every case when groups is empty.
func forEachDecodeCase(t *testing.T, groups []string, fn func(t *testing.T, tc decodeCase)) {
	t.Helper()

	wanted := func(name string) bool {
		return len(groups) == 0 || slices.Contains(groups, name)
	}

	for file, fileGroups := range loadDecodeCases(t) {
		t.Run(file, func(t *testing.T) {
			t.Parallel()

			for _, g := range fileGroups {
				if !wanted(g.Name) {
					continue
				}

				t.Run(g.Name, func(t *testing.T) {
					t.Parallel()

					for i, tc := range g.Cases {
						desc := tc.Description
						if desc == "" {
							desc = fmt.Sprintf("case_%d", i)
						}

						t.Run(desc, func(t *testing.T) {
							t.Parallel()
							fn(t, tc)
						})
					}
				})
			}
		})
	}
}

func decodeHex(t *testing.T, s string) []byte {
	t.Helper()

	data, err := hex.DecodeString(strings.Join(strings.Fields(s), ""))
	if err != nil {
		t.Fatalf("decoding hex %q: %v", s, err)
	}

	return data
}

// TestDecodeGolden runs all golden containers through fef.Decode.
func TestDecodeGolden(t *testing.T) {
	t.Parallel()

	forEachDecodeCase(t, nil, checkDecode)
}

// TestDecodeTruncatedWarns checks that no cut container decodes silently.
func TestDecodeTruncatedWarns(t *testing.T) {
	t.Parallel()

	forEachDecodeCase(t, []string{"truncation"}, func(t *testing.T, tc decodeCase) {
		t.Helper()

		if _, warnings, err := fef.Decode(decodeHex(t, tc.Data)); err != nil || len(warnings) == 0 {
			t.Errorf("Decode = %v warnings, err %v; want at least one warning", warnings, err)
		}
	})
}

func checkDecode(t *testing.T, tc decodeCase) {
	t.Helper()

	c, warnings, err := fef.Decode(decodeHex(t, tc.Data))
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}

	version := tc.Version
	if version == 0 {
		version = fef.Version3
	}

	if c.Version != version || c.Encrypted != tc.Encrypted {
		t.Errorf("header = (%d, %v), want (%d, %v)", c.Version, c.Encrypted, version, tc.Encrypted)
	}

	if len(c.Entries) != len(tc.Entries) {
		t.Fatalf("got %d entries, want %d: %+v", len(c.Entries), len(tc.Entries), c.Entries)
	}

	for i, want := range tc.Entries {
		got := c.Entries[i]

		if got.Name != want.Name {
			t.Errorf("entry %d name = %q, want %q", i, got.Name, want.Name)
		}

		if got.Declared != want.Declared {
			t.Errorf("entry %q declared = %d, want %d", got.Name, got.Declared, want.Declared)
		}

		counts := make([]int, len(got.Sections))
		for j, s := range got.Sections {
			counts[j] = len(s)
		}

		if fmt.Sprint(counts) != fmt.Sprint(want.Sections) {
			t.Errorf("entry %q sections = %v, want %v", got.Name, counts, want.Sections)
		}
	}

	if len(warnings) != len(tc.Warnings) {
		t.Fatalf("got %d warnings %v, want %d %q", len(warnings), warnings, len(tc.Warnings), tc.Warnings)
	}

	for i, want := range tc.Warnings {
		if !strings.Contains(warnings[i].String(), want) {
			t.Errorf("warning %d = %q, want it to contain %q", i, warnings[i], want)
		}
	}
}

func TestDecodeHeaderErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"empty", nil, fef.ErrShortHeader},
		{"short", []byte("FEF\x03"), fef.ErrShortHeader},
		{"bad magic", []byte("FEG\x03\x00"), fef.ErrInvalidMagic},
		{"lowercase magic", []byte("fef\x03\x00"), fef.ErrInvalidMagic},
		{"version 1", []byte("FEF\x01\x00"), fef.ErrUnsupportedVersion},
		{"version 4", []byte("FEF\x04\x00"), fef.ErrUnsupportedVersion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, _, err := fef.Decode(tt.data); !errors.Is(err, tt.want) {
				t.Errorf("Decode error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestDecodeSurvivesArbitraryBytes(t *testing.T) {
	t.Parallel()

	// Every byte value in every state must be survivable.
	data := []byte("FEF\x03\x01")
	for i := 0; i < 4096; i++ {
		data = append(data, byte(i*7919>>3))
	}

	if _, _, err := fef.Decode(data); err != nil {
		t.Fatalf("Decode error: %v", err)
	}
}

func TestDefaultName(t *testing.T) {
	t.Parallel()

	taken := map[string]bool{"output1.txt": true, "output3.txt": true}

	if got := fef.DefaultName(func(n string) bool { return taken[n] }); got != "output2.txt" {
		t.Errorf("DefaultName = %q, want output2.txt", got)
	}

	if got := fef.DefaultName(func(string) bool { return false }); got != "output1.txt" {
		t.Errorf("DefaultName = %q, want output1.txt", got)
	}
}
