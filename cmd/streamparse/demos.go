package main

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/go-streamparse/streamparse"
)

// demo names the built-in example parsers the run and trace
// subcommands can exercise. Each demo operates on a rune stream read
// from stdin or --input, the simplest Source[rune] this package ships.
type demo struct {
	name        string
	description string
	build       func() streamparse.Parser[rune, string]
}

var demos = []demo{
	{
		name:        "digitsum",
		description: "sum every digit in the input (requires at least one)",
		build:       digitSumDemo,
	},
	{
		name:        "csv",
		description: "split comma-separated fields",
		build:       csvDemo,
	},
	{
		name:        "brackets",
		description: "count consecutive () pairs (requires at least one)",
		build:       bracketsDemo,
	},
}

func findDemo(name string) *demo {
	for i := range demos {
		if demos[i].name == name {
			return &demos[i]
		}
	}
	return nil
}

func isDigit(r rune) bool { return unicode.IsDigit(r) }

// digitSumDemo: SplitSome over Satisfy(isDigit), folding into a running
// sum, rendered as a string since every demo shares one result type for
// the CLI's sake.
func digitSumDemo() streamparse.Parser[rune, string] {
	digit := streamparse.Satisfy(isDigit)
	sumFold := streamparse.NewFold(
		func() int { return 0 },
		func(acc int, r rune) int { return acc + int(r-'0') },
		func(acc int) int { return acc },
	)
	p := streamparse.SplitSome(sumFold, digit)
	return streamparse.Map(strconv.Itoa, p)
}

func isComma(r rune) bool { return r == ',' }

// csvDemo: repeated SliceSepBy, each call accumulating runes into a
// field string until a comma, with the trailing field tolerated on
// exhaustion the way SliceSepBy always is.
func csvDemo() streamparse.Parser[rune, string] {
	fieldFold := streamparse.NewFold(
		func() []rune { return nil },
		func(acc []rune, r rune) []rune { return append(acc, r) },
		func(acc []rune) string { return string(acc) },
	)
	field := streamparse.SliceSepBy(isComma, fieldFold)
	fields := streamparse.SplitMany(streamparse.ToListFold[string](), field)
	return streamparse.Map(func(fs []string) string { return strings.Join(fs, "|") }, fields)
}

func isOpenParen(r rune) bool  { return r == '(' }
func isCloseParen(r rune) bool { return r == ')' }

// bracketsDemo: SplitSome over a Split_ pair of Satisfy parsers,
// counting matched "()" occurrences.
func bracketsDemo() streamparse.Parser[rune, string] {
	pair := streamparse.Split_(streamparse.Satisfy(isOpenParen), streamparse.Satisfy(isCloseParen))
	p := streamparse.SplitSome(streamparse.CountFold[rune](), pair)
	return streamparse.Map(strconv.Itoa, p)
}
