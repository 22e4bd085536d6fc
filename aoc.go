// Package aoc are quick & dirty utilities for helping solve Advent of
// Code problems: reading input, reshaping grids, pulling numbers out of
// lines and running each day's parts.
package aoc

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"slices"
	"sync"

	"golang.org/x/exp/maps"
)

// PartFunc solves one part of a day. debug controls the part's own
// verbosity; the runner never interprets it.
type PartFunc func(debug bool) error

// Day is a day's puzzle with its two parts. A nil part is not run.
type Day struct {
	Num   int
	Part1 PartFunc
	Part2 PartFunc
}

// Parts selects which parts of a day to run.
type Parts struct {
	One, Two bool
}

// BothParts runs part 1 and part 2.
var BothParts = Parts{One: true, Two: true}

// RunDay runs the selected parts of d in order, writing progress to w.
//
// If shouldRun is false, a skip notice is written and neither part is
// called. A failing part 1 stops the run before part 2.
func RunDay(w io.Writer, d Day, parts Parts, debug, shouldRun bool) error {
	if !shouldRun {
		fmt.Fprintf(w, "Skipping day %2d because --all is not set\n", d.Num)
		return nil
	}
	fmt.Fprintf(w, "Running day %2d...\n", d.Num)
	if parts.One && d.Part1 != nil {
		fmt.Fprintln(w, "--- Part 1 ---")
		if err := d.Part1(debug); err != nil {
			return err
		}
	}
	if parts.Two && d.Part2 != nil {
		fmt.Fprintln(w, "--- Part 2 ---")
		if err := d.Part2(debug); err != nil {
			return err
		}
	}
	return nil
}

var (
	flagCurDay int
	flagPart   string
	flagDebug  bool
	flagAll    bool
)

func init() {
	flag.IntVar(&flagCurDay, "day", -1, "day to run")
	flag.BoolVar(&flagAll, "all", false, "run every day, not just the latest")
	flag.BoolVar(&flagDebug, "debug", false, "debug mode")
	flag.StringVar(&flagPart, "part", "", "part to run (1 or 2)")
}

var initFlags = sync.OnceFunc(flag.Parse)

type runConfig struct {
	day   int
	part  string
	debug bool
	all   bool
}

func (c runConfig) parts() (Parts, error) {
	switch c.part {
	case "":
		return BothParts, nil
	case "1":
		return Parts{One: true}, nil
	case "2":
		return Parts{Two: true}, nil
	}
	return Parts{}, fmt.Errorf("bad -part %q; want 1 or 2", c.part)
}

// runDays runs the configured days. Without a specific day, the latest
// day always runs and the others only run with c.all set.
func runDays(w io.Writer, c runConfig, days []Day) error {
	parts, err := c.parts()
	if err != nil {
		return err
	}
	byNum := make(map[int]Day, len(days))
	for _, d := range days {
		if _, dup := byNum[d.Num]; dup {
			return fmt.Errorf("day %d registered twice", d.Num)
		}
		byNum[d.Num] = d
	}

	if c.day != -1 {
		d, ok := byNum[c.day]
		if !ok {
			return fmt.Errorf("no day %d", c.day)
		}
		if err := RunDay(w, d, parts, c.debug, true); err != nil {
			return fmt.Errorf("day %d: %w", d.Num, err)
		}
		return nil
	}

	dayNums := maps.Keys(byNum)
	slices.Sort(dayNums)
	for i, num := range dayNums {
		latest := i == len(dayNums)-1
		if err := RunDay(w, byNum[num], parts, c.debug, c.all || latest); err != nil {
			return fmt.Errorf("day %d: %w", num, err)
		}
		fmt.Fprintln(w)
	}
	return nil
}

// Run parses the command line flags and runs the requested days,
// exiting the process on the first failure.
func Run(days ...Day) {
	initFlags()
	c := runConfig{
		day:   flagCurDay,
		part:  flagPart,
		debug: flagDebug,
		all:   flagAll,
	}
	if err := runDays(os.Stdout, c, days); err != nil {
		log.Fatal(err)
	}
}

// MustDo panics if err is non-nil.
func MustDo(err error) {
	if err != nil {
		panic(err)
	}
}

// MustGet returns v as is. It panics if err is non-nil.
func MustGet[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
