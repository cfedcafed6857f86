package segment

import "strings"

// MathRenderer typesets a notation string for display. displayMode selects
// block layout; false means inline. A failed render returns an error and
// the caller falls back to the raw notation.
type MathRenderer interface {
	Render(notation string, displayMode bool) (string, error)
}

// Renderer maps segments to display strings. Math rendering failures are
// absorbed here: the raw notation is emitted instead and the surrounding
// document is never aborted.
type Renderer struct {
	math MathRenderer
}

// NewRenderer creates a Renderer backed by the given math typesetter.
func NewRenderer(math MathRenderer) *Renderer {
	return &Renderer{math: math}
}

// Render returns the display form of a single segment. Text comes through
// untouched (whitespace preserved); math goes through the MathRenderer
// with the display-mode flag set for block segments.
func (r *Renderer) Render(seg Segment) string {
	switch seg.Kind {
	case KindInlineMath, KindBlockMath:
		out, err := r.math.Render(seg.Content, seg.Kind == KindBlockMath)
		if err != nil {
			return seg.Content
		}
		return out
	default:
		return seg.Content
	}
}

// RenderAll parses text and renders every segment, separating block math
// from surrounding prose with newlines.
func (r *Renderer) RenderAll(text string) string {
	var b strings.Builder
	for _, seg := range Parse(text) {
		if seg.Kind == KindBlockMath {
			if b.Len() > 0 && !strings.HasSuffix(b.String(), "\n") {
				b.WriteString("\n")
			}
			b.WriteString(r.Render(seg))
			b.WriteString("\n")
			continue
		}
		b.WriteString(r.Render(seg))
	}
	return b.String()
}
