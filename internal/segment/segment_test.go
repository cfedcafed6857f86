package segment

import (
	"strings"
	"testing"
)

func TestParse_PlainText(t *testing.T) {
	segs := Parse("The derivative measures the rate of change.")
	if len(segs) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(segs))
	}
	if segs[0].Kind != KindText {
		t.Errorf("expected text segment, got %s", segs[0].Kind)
	}
	if segs[0].Content != "The derivative measures the rate of change." {
		t.Errorf("unexpected content: %q", segs[0].Content)
	}
}

func TestParse_StripsFormattingMarkers(t *testing.T) {
	segs := Parse("## Heading with **bold** text")
	if len(segs) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(segs))
	}
	if segs[0].Content != " Heading with bold text" {
		t.Errorf("expected markers stripped, got %q", segs[0].Content)
	}
}

func TestParse_BlockBeforeInline(t *testing.T) {
	segs := Parse("$$a+b$$ and $c$")
	want := []Segment{
		{Kind: KindBlockMath, Content: "a+b"},
		{Kind: KindText, Content: " and "},
		{Kind: KindInlineMath, Content: "c"},
	}
	if len(segs) != len(want) {
		t.Fatalf("expected %d segments, got %d: %+v", len(want), len(segs), segs)
	}
	for i := range want {
		if segs[i] != want[i] {
			t.Errorf("segment %d: got %+v, want %+v", i, segs[i], want[i])
		}
	}
}

func TestParse_MultilineBlock(t *testing.T) {
	segs := Parse("Energy:\n$$\nE = mc^2\n$$\ndone")
	want := []Segment{
		{Kind: KindText, Content: "Energy:\n"},
		{Kind: KindBlockMath, Content: "\nE = mc^2\n"},
		{Kind: KindText, Content: "\ndone"},
	}
	if len(segs) != len(want) {
		t.Fatalf("expected %d segments, got %d: %+v", len(want), len(segs), segs)
	}
	for i := range want {
		if segs[i] != want[i] {
			t.Errorf("segment %d: got %+v, want %+v", i, segs[i], want[i])
		}
	}
}

func TestParse_InlineDoesNotCrossLines(t *testing.T) {
	// Two stray dollars on separate lines never pair up as inline math.
	segs := Parse("cost $5 now\nand $3 later")
	if len(segs) != 1 {
		t.Fatalf("expected 1 segment, got %d: %+v", len(segs), segs)
	}
	if segs[0].Kind != KindText {
		t.Errorf("expected text, got %s", segs[0].Kind)
	}
}

func TestParse_UnterminatedDollarIsLiteral(t *testing.T) {
	segs := Parse("cost is $5 today")
	if len(segs) != 1 {
		t.Fatalf("expected 1 segment, got %d: %+v", len(segs), segs)
	}
	if segs[0].Kind != KindText || segs[0].Content != "cost is $5 today" {
		t.Errorf("unexpected segment: %+v", segs[0])
	}
}

func TestParse_UnterminatedBlockIsLiteral(t *testing.T) {
	segs := Parse("see $$x+y")
	if len(segs) != 1 {
		t.Fatalf("expected 1 segment, got %d: %+v", len(segs), segs)
	}
	if segs[0].Kind != KindText {
		t.Errorf("expected text, got %s", segs[0].Kind)
	}
}

func TestParse_AdjacentMath(t *testing.T) {
	segs := Parse("$a$$b$")
	// First-match-wins scanning: $a$ then $b$, no text between.
	want := []Segment{
		{Kind: KindInlineMath, Content: "a"},
		{Kind: KindInlineMath, Content: "b"},
	}
	if len(segs) != len(want) {
		t.Fatalf("expected %d segments, got %d: %+v", len(want), len(segs), segs)
	}
	for i := range want {
		if segs[i] != want[i] {
			t.Errorf("segment %d: got %+v, want %+v", i, segs[i], want[i])
		}
	}
}

func TestParse_EmptyInput(t *testing.T) {
	segs := Parse("")
	if len(segs) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(segs))
	}
	if segs[0].Kind != KindText || segs[0].Content != "" {
		t.Errorf("unexpected segment: %+v", segs[0])
	}
}

func TestParse_MathOnly(t *testing.T) {
	segs := Parse("$$E=mc^2$$")
	if len(segs) != 1 {
		t.Fatalf("expected 1 segment, got %d: %+v", len(segs), segs)
	}
	if segs[0].Kind != KindBlockMath || segs[0].Content != "E=mc^2" {
		t.Errorf("unexpected segment: %+v", segs[0])
	}
}

// TestParse_Coverage re-wraps segments with their delimiters and checks the
// result matches the input with only */# removed from prose spans.
func TestParse_Coverage(t *testing.T) {
	inputs := []string{
		"Solve $x^2 = 4$ for x.",
		"$$\\frac{a}{b}$$ reduces when *possible*",
		"no math here at all",
		"# Quadratics\nThe roots are $x = 1$ and $x = -3$.",
		"$a$$b$ then $$c$$",
	}
	for _, in := range inputs {
		var b strings.Builder
		for _, seg := range Parse(in) {
			switch seg.Kind {
			case KindBlockMath:
				b.WriteString("$$" + seg.Content + "$$")
			case KindInlineMath:
				b.WriteString("$" + seg.Content + "$")
			default:
				b.WriteString(seg.Content)
			}
		}
		want := rewrapStrip(in)
		if b.String() != want {
			t.Errorf("input %q: reconstructed %q, want %q", in, b.String(), want)
		}
	}
}

// rewrapStrip removes * and # from the non-math spans of the input,
// mirroring what Parse is expected to do.
func rewrapStrip(in string) string {
	var b strings.Builder
	rest := in
	for {
		loc := mathRe.FindStringIndex(rest)
		if loc == nil {
			b.WriteString(stripReplacer.Replace(rest))
			return b.String()
		}
		b.WriteString(stripReplacer.Replace(rest[:loc[0]]))
		b.WriteString(rest[loc[0]:loc[1]])
		rest = rest[loc[1]:]
	}
}
