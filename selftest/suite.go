package selftest

import (
	"math"

	"github.com/ozontech/numscan/cfg"
	"github.com/ozontech/numscan/xstrconv"
)

type Case struct {
	Name  string
	Input string
	Want  int64
}

// Suite is a named table of cases checked against one primitive, see cfg.Kind* for kinds.
type Suite struct {
	Name  string
	Kind  string
	Cases []Case
}

// Eval runs the primitive the suite checks.
func (s *Suite) Eval(input string) int64 {
	switch s.Kind {
	case cfg.KindDigit:
		if len(input) == 0 {
			return 0
		}
		return int64(xstrconv.DigitValue(input[0]))
	case cfg.KindAtoi:
		return int64(xstrconv.Atoi(input))
	case cfg.KindLength:
		return int64(xstrconv.Length(input))
	default:
		panic("unknown suite kind " + s.Kind)
	}
}

// DefaultSuites builds the startup tables. Every call returns new slices.
func DefaultSuites() []Suite {
	return []Suite{
		{
			Name: cfg.KindDigit,
			Kind: cfg.KindDigit,
			Cases: []Case{
				{Name: "one", Input: "1", Want: 1},
				{Name: "two", Input: "2", Want: 2},
				{Name: "nine", Input: "9", Want: 9},
			},
		},
		{
			Name: cfg.KindAtoi,
			Kind: cfg.KindAtoi,
			Cases: []Case{
				{Name: "ten", Input: "10", Want: 10},
				{Name: "fifty_six", Input: "56", Want: 56},
				{Name: "sixty_five", Input: "65", Want: 65},
				{Name: "four_digits", Input: "6432", Want: 6432},
				{Name: "trailing_zeros", Input: "2000", Want: 2000},
				{Name: "trailing_words", Input: "10 hello", Want: 10},
				{Name: "word", Input: "hello", Want: 0},
				{Name: "punctuation", Input: "!!?????", Want: 0},
				{Name: "leading_spaces", Input: "    10", Want: 10},
				{Name: "only_spaces", Input: "      ", Want: 0},
				{Name: "leading_zeros", Input: "00010", Want: 10},
				{Name: "space_after_zeros", Input: "000  255", Want: 0},
				{Name: "letters_around", Input: "aa56aa", Want: 0},
				{Name: "punctuation_prefix", Input: "!!64", Want: 0},
				{Name: "max_int32", Input: "2147483647", Want: math.MaxInt32},
				{Name: "zero_before_space", Input: "4560 hell", Want: 4560},
			},
		},
		{
			Name: cfg.KindLength,
			Kind: cfg.KindLength,
			Cases: []Case{
				{Name: "words", Input: "hello world", Want: 11},
				{Name: "newline", Input: "hello world\n", Want: 12},
				{Name: "empty", Input: "", Want: 0},
				{Name: "sentinel", Input: "\x00", Want: 0},
				{Name: "sentinel_first", Input: "\x00helloworld", Want: 0},
				{Name: "sentinel_last", Input: "hello world\x00", Want: 11},
				{Name: "single", Input: "1", Want: 1},
				{Name: "heap_buffer", Input: heapBuffer("hello world\x00", 12), Want: 11},
			},
		},
	}
}

// heapBuffer copies s into a fresh zeroed buffer of size n.
func heapBuffer(s string, n int) string {
	buf := make([]byte, n)
	copy(buf, s)

	return string(buf)
}

// FromConfig turns configured cases into suites named "<kind>_config".
func FromConfig(c *cfg.Config) []Suite {
	suites := make([]Suite, 0, len(c.Suites))
	for _, kind := range c.Kinds() {
		cases := make([]Case, 0, len(c.Suites[kind]))
		for _, cc := range c.Suites[kind] {
			cases = append(cases, Case{Name: cc.Name, Input: cc.Input, Want: cc.Want})
		}
		suites = append(suites, Suite{Name: kind + "_config", Kind: kind, Cases: cases})
	}

	return suites
}

// Filter keeps suites whose name or kind is in names, empty names keep everything.
func Filter(suites []Suite, names []string) []Suite {
	if len(names) == 0 {
		return suites
	}

	wanted := make(map[string]struct{}, len(names))
	for _, name := range names {
		wanted[name] = struct{}{}
	}

	filtered := make([]Suite, 0, len(suites))
	for _, s := range suites {
		_, byName := wanted[s.Name]
		_, byKind := wanted[s.Kind]
		if byName || byKind {
			filtered = append(filtered, s)
		}
	}

	return filtered
}
