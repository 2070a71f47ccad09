package commands_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mfrancis33/fef/internal/commands"
	"github.com/mfrancis33/fef/internal/config"
)

func run(t *testing.T, args ...string) error {
	t.Helper()

	root := commands.NewRootCommand(&config.Config{}, "test")
	root.SetArgs(args)
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})

	return root.Execute()
}

func TestEncodeDecodeCommands(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "note.txt")
	content := []byte("spectral greetings")

	if err := os.WriteFile(input, content, 0o600); err != nil {
		t.Fatal(err)
	}

	container := filepath.Join(dir, "note.fef")
	if err := run(t, "enc", "-q", "-b", "8", "-p", "hunter2", "-o", container, input); err != nil {
		t.Fatalf("encode: %v", err)
	}

	// The password comes from the environment this time.
	t.Setenv("FEF_PASSWORD", "hunter2")

	folder := filepath.Join(dir, "restored")
	if err := run(t, "dec", "-q", "-f", folder, container); err != nil {
		t.Fatalf("decode: %v", err)
	}

	got, err := os.ReadFile(filepath.Join(folder, "note.txt"))
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(got, content) {
		t.Errorf("restored = %q, want %q", got, content)
	}
}

func TestCommandValidation(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"encode without files", []string{"encode"}, "requires at least 1 arg"},
		{"decode two files", []string{"decode", "a.fef", "b.fef"}, "accepts 1 arg"},
		{"bad block size", []string{"encode", "-b", "0", "x"}, "--block-size"},
		{"bad parallel", []string{"encode", "-j", "0", "x"}, "--parallel"},
		{"bad rounding", []string{"decode", "--rounding", "floor", "x.fef"}, "--rounding"},
		{"exclusive password", []string{"decode", "-p", "pw", "--no-password", "x.fef"}, "mutually exclusive"},
		{"missing input", []string{"encode", "-o", filepath.Join(dir, "o.fef"), filepath.Join(dir, "nope")}, "reading input"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := run(t, tt.args...)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %v, want it to contain %q", err, tt.want)
			}
		})
	}
}
