package mathtex

import (
	"errors"
	"testing"
)

func TestRender_Frac(t *testing.T) {
	r := New()
	out, err := r.Render(`\frac{a}{b}`, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "a/b" {
		t.Errorf("got %q, want %q", out, "a/b")
	}
}

func TestRender_FracParenthesizesLongOperands(t *testing.T) {
	r := New()
	out, err := r.Render(`\frac{a+b}{2}`, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "(a+b)/2" {
		t.Errorf("got %q, want %q", out, "(a+b)/2")
	}
}

func TestRender_Superscript(t *testing.T) {
	r := New()
	out, err := r.Render("x^2 + y^2", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "x² + y²" {
		t.Errorf("got %q, want %q", out, "x² + y²")
	}
}

func TestRender_SubscriptGroup(t *testing.T) {
	r := New()
	out, err := r.Render("a_{12}", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "a₁₂" {
		t.Errorf("got %q, want %q", out, "a₁₂")
	}
}

func TestRender_GreekAndOperators(t *testing.T) {
	r := New()
	out, err := r.Render(`\pi \approx 3.14159`, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "π ≈ 3.14159" {
		t.Errorf("got %q, want %q", out, "π ≈ 3.14159")
	}
}

func TestRender_Sqrt(t *testing.T) {
	r := New()
	out, err := r.Render(`\sqrt{x+1}`, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "√(x+1)" {
		t.Errorf("got %q, want %q", out, "√(x+1)")
	}
}

func TestRender_DisplayModePadding(t *testing.T) {
	r := New()
	out, err := r.Render("E=mc^2", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "  E=mc²  " {
		t.Errorf("got %q", out)
	}
}

func TestRender_UnknownCommandFails(t *testing.T) {
	r := New()
	_, err := r.Render(`\oint_C f`, false)
	if err == nil {
		t.Fatal("expected error for unknown command")
	}
	var nerr *NotationError
	if !errors.As(err, &nerr) {
		t.Fatalf("expected *NotationError, got %T", err)
	}
}

func TestRender_UnbalancedBracesFail(t *testing.T) {
	r := New()
	for _, in := range []string{`\frac{a}{b`, "x^{2", "{a+b"} {
		if _, err := r.Render(in, false); err == nil {
			t.Errorf("input %q: expected error", in)
		}
	}
}

func TestRender_LeftRightStripped(t *testing.T) {
	r := New()
	out, err := r.Render(`\left( x \right)`, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "( x )" {
		t.Errorf("got %q, want %q", out, "( x )")
	}
}
