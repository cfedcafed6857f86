// Package segment splits mixed study text into typed spans: plain prose,
// inline math ($...$), and block math ($$...$$). The LLM is instructed to
// use dollar delimiters for formulas, but nothing is assumed — any
// text without valid delimiters comes back as a single prose segment.
package segment

import (
	"regexp"
	"strings"
)

// Kind identifies the type of a segment.
type Kind int

const (
	KindText Kind = iota
	KindInlineMath
	KindBlockMath
)

func (k Kind) String() string {
	switch k {
	case KindInlineMath:
		return "inline-math"
	case KindBlockMath:
		return "block-math"
	default:
		return "text"
	}
}

// Segment is a contiguous typed span of the source text. For math kinds
// Content holds the raw notation with the dollar delimiters removed.
type Segment struct {
	Kind    Kind
	Content string
}

// mathRe matches the next math span. The block alternative ($$...$$) is
// listed first so it wins over the inline one at the same position; both
// are non-greedy. Only the block alternative may cross newlines, since
// models usually put display formulas on their own lines. A lone
// unmatched $ never matches and stays literal text.
var mathRe = regexp.MustCompile(`(?s:\$\$(.+?)\$\$)|\$(.+?)\$`)

// stripReplacer removes formatting noise the model sometimes emits despite
// instructions. Applied to prose spans only — never to math notation.
var stripReplacer = strings.NewReplacer("*", "", "#", "")

// Parse splits text into an ordered segment sequence in a single
// left-to-right pass. Nested or overlapping delimiters are not detected;
// the first valid match wins and scanning resumes after it.
func Parse(text string) []Segment {
	var segs []Segment
	rest := text

	for {
		loc := mathRe.FindStringSubmatchIndex(rest)
		if loc == nil {
			break
		}

		if before := rest[:loc[0]]; before != "" {
			segs = append(segs, Segment{Kind: KindText, Content: stripReplacer.Replace(before)})
		}

		// Group 1 is the block alternative, group 2 the inline one.
		if loc[2] >= 0 {
			segs = append(segs, Segment{Kind: KindBlockMath, Content: rest[loc[2]:loc[3]]})
		} else {
			segs = append(segs, Segment{Kind: KindInlineMath, Content: rest[loc[4]:loc[5]]})
		}

		rest = rest[loc[1]:]
	}

	if rest != "" || len(segs) == 0 {
		segs = append(segs, Segment{Kind: KindText, Content: stripReplacer.Replace(rest)})
	}

	return segs
}
