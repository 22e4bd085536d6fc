package aoc

import "fmt"

// ReadError is returned when an input file cannot be opened.
type ReadError struct {
	Path string
	Err  error // underlying I/O error, usually an *fs.PathError
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("reading %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// ParseError is returned when a field of a line is not a valid integer of
// the requested type, or overflows it.
type ParseError struct {
	Field string // offending field, after space stripping
	Line  string // full input line
	Err   error  // usually a *strconv.NumError
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %q in line %q: %v", e.Field, e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
