package main

import (
	"fmt"

	"github.com/lmh01/aoc"
)

func main() {
	aoc.Run(
		aoc.Day{Num: 1, Part1: d1p1, Part2: d1p2},
		aoc.Day{Num: 2, Part1: d2p1},
	)
}

func d1p1(debug bool) error {
	lines, err := aoc.ReadLines("input/day01.txt", aoc.Trimmed)
	if err != nil {
		return err
	}
	var sum uint
	for _, line := range lines {
		nums, err := aoc.ExtractNumbers[uint](line)
		if err != nil {
			return err
		}
		if debug {
			fmt.Println(line, nums)
		}
		for _, n := range nums {
			sum += n
		}
	}
	fmt.Println(sum)
	return nil
}

func d1p2(debug bool) error {
	g, err := aoc.ReadGrid("input/day01.txt")
	if err != nil {
		return err
	}
	for _, col := range aoc.Lines(g.Transpose()) {
		fmt.Println(col)
	}
	return nil
}

func d2p1(debug bool) error {
	lines, err := aoc.ReadLines("input/day02.txt", aoc.Trimmed)
	if err != nil {
		return err
	}
	if len(lines) == 0 {
		return fmt.Errorf("day 2: empty input")
	}
	draws, err := aoc.ParseNumberList[int](lines[0])
	if err != nil {
		return err
	}
	if debug {
		fmt.Println("draws:", draws)
	}
	fmt.Println(len(draws))
	return nil
}
