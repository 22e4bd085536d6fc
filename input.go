package aoc

import (
	"bufio"
	"os"
	"strings"
)

// TrimMode controls how ReadLines cleans up each line.
type TrimMode int

const (
	// Trimmed strips all leading and trailing whitespace.
	Trimmed TrimMode = iota
	// LineEndingOnly strips only the trailing newline.
	LineEndingOnly
)

// ReadLines returns the lines of the file at path, in order.
//
// An empty file yields an empty, non-nil slice. A read failure after the
// file has been opened ends the input early instead of being returned.
func ReadLines(path string, mode TrimMode) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}
	defer f.Close()

	lines := []string{}
	r := bufio.NewReader(f)
	for {
		line, err := r.ReadString('\n')
		if line != "" {
			if mode == Trimmed {
				line = strings.TrimSpace(line)
			} else {
				line = strings.TrimSuffix(line, "\n")
			}
			lines = append(lines, line)
		}
		if err != nil {
			// io.EOF or a mid-stream failure; either way there's no more data.
			break
		}
	}
	return lines, nil
}

// ReadGrid reads the file at path as a grid of runes, one row per trimmed
// line.
func ReadGrid(path string) (Grid[rune], error) {
	lines, err := ReadLines(path, Trimmed)
	if err != nil {
		return nil, err
	}
	return GridFromLines(lines), nil
}
