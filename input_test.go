package aoc

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.txt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadLines(t *testing.T) {
	tests := []struct {
		name    string
		content string
		mode    TrimMode
		want    []string
	}{
		{
			name:    "empty",
			content: "",
			mode:    Trimmed,
			want:    []string{},
		},
		{
			name:    "trimmed",
			content: "  a b \n\tc\r\n\nd",
			mode:    Trimmed,
			want:    []string{"a b", "c", "", "d"},
		},
		{
			name:    "line-ending-only",
			content: "  a b \n\tc\n\nd",
			mode:    LineEndingOnly,
			want:    []string{"  a b ", "\tc", "", "d"},
		},
		{
			name:    "trailing-newline",
			content: "x\ny\n",
			mode:    LineEndingOnly,
			want:    []string{"x", "y"},
		},
		{
			name:    "long-line",
			content: strings.Repeat("9", 100_000) + "\n",
			mode:    Trimmed,
			want:    []string{strings.Repeat("9", 100_000)},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadLines(writeFile(t, tt.content), tt.mode)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ReadLines mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReadLinesTestdata(t *testing.T) {
	lines, err := ReadLines(filepath.Join("testdata", "lines.txt"), Trimmed)
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 10 {
		t.Fatalf("got %d lines, want 10", len(lines))
	}
	for _, l := range lines {
		if l != strings.TrimSpace(l) {
			t.Errorf("line %q not trimmed", l)
		}
	}
	if got := TransposeLines(lines); len(got) != 2 {
		t.Errorf("TransposeLines returned %d lines, want 2", len(got))
	}
}

func TestReadLinesMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does_not_exist.txt")
	_, err := ReadLines(path, Trimmed)
	var re *ReadError
	if !errors.As(err, &re) {
		t.Fatalf("ReadLines error = %v, want *ReadError", err)
	}
	if re.Path != path {
		t.Errorf("ReadError.Path = %q, want %q", re.Path, path)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("ReadLines error = %v, want fs.ErrNotExist", err)
	}
}

func TestReadLinesUnreadable(t *testing.T) {
	// A directory opens fine but every read fails with EISDIR.
	got, err := ReadLines(t.TempDir(), Trimmed)
	if err != nil {
		t.Fatalf("ReadLines(dir) error = %v, want nil", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("ReadLines(dir) = %#v, want empty slice", got)
	}
}

func TestEmptyResultsAreNonNil(t *testing.T) {
	lines, err := ReadLines(writeFile(t, ""), Trimmed)
	if err != nil {
		t.Fatal(err)
	}
	nums, err := ExtractNumbers[uint]("none")
	if err != nil {
		t.Fatal(err)
	}
	if lines == nil {
		t.Error("ReadLines of empty file returned nil")
	}
	if got := TransposeLines(nil); got == nil {
		t.Error("TransposeLines(nil) returned nil")
	}
	if nums == nil {
		t.Error("ExtractNumbers without digits returned nil")
	}
}

func TestReadGrid(t *testing.T) {
	g, err := ReadGrid(writeFile(t, "#.\n.#\n"))
	if err != nil {
		t.Fatal(err)
	}
	if got, want := g.Size(), (Pt{2, 2}); got != want {
		t.Errorf("Size = %v, want %v", got, want)
	}
	if got := g.At(Pt{1, 1}); got != '#' {
		t.Errorf("At(1,1) = %q, want '#'", got)
	}
}
