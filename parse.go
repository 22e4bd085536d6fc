package aoc

import (
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// ParseNumberList parses a comma separated list of integers such as
// "5 , 7 , 20". Spaces anywhere in a field are dropped before parsing, so
// "3  3  4" is the single number 334. Only commas separate fields; a
// trailing comma yields an empty field and therefore an error.
func ParseNumberList[T constraints.Integer](line string) ([]T, error) {
	fields := strings.Split(line, ",")
	out := make([]T, 0, len(fields))
	for _, f := range fields {
		f = strings.ReplaceAll(f, " ", "")
		v, err := parseInt[T](f)
		if err != nil {
			return nil, &ParseError{Field: f, Line: line, Err: err}
		}
		out = append(out, v)
	}
	return out, nil
}

// ExtractNumbers returns every maximal run of ASCII digits in s, in order.
// Any other character ends a run. It fails only if a run overflows T.
func ExtractNumbers[T constraints.Unsigned](s string) ([]T, error) {
	out := []T{}
	start := -1
	flush := func(end int) error {
		if start < 0 {
			return nil
		}
		run := s[start:end]
		start = -1
		v, err := parseInt[T](run)
		if err != nil {
			return &ParseError{Field: run, Line: s, Err: err}
		}
		out = append(out, v)
		return nil
	}
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= '0' && c <= '9' {
			if start < 0 {
				start = i
			}
			continue
		}
		if err := flush(i); err != nil {
			return nil, err
		}
	}
	if err := flush(len(s)); err != nil {
		return nil, err
	}
	return out, nil
}

// parseInt parses a base 10 integer into T, reporting strconv.ErrRange if
// the value does not fit. A single leading '+' is accepted for unsigned
// types as well as signed ones.
func parseInt[T constraints.Integer](s string) (T, error) {
	signed := ^T(0) < 0
	if signed {
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return 0, err
		}
		if v := T(n); int64(v) == n {
			return v, nil
		}
	} else {
		n, err := strconv.ParseUint(strings.TrimPrefix(s, "+"), 10, 64)
		if err != nil {
			return 0, err
		}
		if v := T(n); uint64(v) == n {
			return v, nil
		}
	}
	return 0, &strconv.NumError{Func: "parseInt", Num: s, Err: strconv.ErrRange}
}

// Int returns the int value of the string.
// It panics if s is not a number.
func Int(s string) int {
	return MustGet(strconv.Atoi(strings.TrimSpace(s)))
}

// Ints returns the int values of the strings.
func Ints(s ...string) []int {
	var out []int
	for _, v := range s {
		out = append(out, Int(v))
	}
	return out
}
