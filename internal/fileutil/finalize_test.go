package fileutil_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/mfrancis33/fef/internal/fileutil"
)

func TestWriteAtomic(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	out := filepath.Join(dir, "out.fef")

	if err := os.WriteFile(out, []byte("old content that is longer"), 0o600); err != nil {
		t.Fatal(err)
	}

	size, err := fileutil.WriteAtomic(out, []byte("new"), 0o640)
	if err != nil {
		t.Fatalf("WriteAtomic: %v", err)
	}

	if size != 3 {
		t.Errorf("size = %d, want 3", size)
	}

	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(got, []byte("new")) {
		t.Errorf("content = %q, want %q", got, "new")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}

	if len(entries) != 1 {
		t.Errorf("directory holds %d entries, want only the output", len(entries))
	}
}

func TestWriteAtomicMissingDirectory(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "missing", "out.fef")

	if _, err := fileutil.WriteAtomic(out, []byte("x"), 0o600); err == nil {
		t.Fatal("WriteAtomic into a missing directory succeeded")
	}
}
