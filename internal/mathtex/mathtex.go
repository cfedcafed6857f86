// Package mathtex typesets a small LaTeX subset as Unicode text for
// terminal display. It is deliberately strict: anything it cannot typeset
// faithfully fails with a NotationError so callers can fall back to the
// raw notation instead of showing mangled output.
package mathtex

import (
	"fmt"
	"strings"
)

// NotationError reports notation that could not be typeset.
type NotationError struct {
	Notation string
	Reason   string
}

func (e *NotationError) Error() string {
	return fmt.Sprintf("cannot typeset %q: %s", e.Notation, e.Reason)
}

// Renderer converts LaTeX-style notation to Unicode.
type Renderer struct{}

// New creates a math renderer.
func New() *Renderer {
	return &Renderer{}
}

// Render typesets notation. displayMode adds spacing around the result so
// block formulas stand apart from prose; the glyph conversion is the same.
func (r *Renderer) Render(notation string, displayMode bool) (string, error) {
	out, err := typeset(notation)
	if err != nil {
		return "", err
	}
	if displayMode {
		return "  " + out + "  ", nil
	}
	return out, nil
}

// commands maps argument-less LaTeX commands to their Unicode glyph.
var commands = map[string]string{
	"alpha": "α", "beta": "β", "gamma": "γ", "delta": "δ", "epsilon": "ε",
	"zeta": "ζ", "eta": "η", "theta": "θ", "lambda": "λ", "mu": "μ",
	"pi": "π", "rho": "ρ", "sigma": "σ", "tau": "τ", "phi": "φ",
	"chi": "χ", "psi": "ψ", "omega": "ω",
	"Gamma": "Γ", "Delta": "Δ", "Theta": "Θ", "Lambda": "Λ", "Pi": "Π",
	"Sigma": "Σ", "Phi": "Φ", "Psi": "Ψ", "Omega": "Ω",
	"times": "×", "div": "÷", "pm": "±", "mp": "∓", "cdot": "·",
	"leq": "≤", "le": "≤", "geq": "≥", "ge": "≥", "neq": "≠", "ne": "≠",
	"approx": "≈", "equiv": "≡", "propto": "∝",
	"infty": "∞", "partial": "∂", "nabla": "∇",
	"sum": "Σ", "prod": "Π", "int": "∫",
	"in": "∈", "notin": "∉", "subset": "⊂", "subseteq": "⊆", "cup": "∪", "cap": "∩",
	"forall": "∀", "exists": "∃", "emptyset": "∅",
	"rightarrow": "→", "to": "→", "leftarrow": "←", "Rightarrow": "⇒", "Leftarrow": "⇐",
	"ldots": "…", "dots": "…", "cdots": "⋯",
	"degree": "°", "circ": "°", "prime": "′",
	"quad": "  ", ",": " ", " ": " ",
}

// superscripts maps plain characters to Unicode superscript forms.
var superscripts = map[rune]rune{
	'0': '⁰', '1': '¹', '2': '²', '3': '³', '4': '⁴',
	'5': '⁵', '6': '⁶', '7': '⁷', '8': '⁸', '9': '⁹',
	'+': '⁺', '-': '⁻', '=': '⁼', '(': '⁽', ')': '⁾',
	'n': 'ⁿ', 'i': 'ⁱ', 'x': 'ˣ', 'y': 'ʸ', 't': 'ᵗ', 'k': 'ᵏ', 'm': 'ᵐ',
}

// subscripts maps plain characters to Unicode subscript forms.
var subscripts = map[rune]rune{
	'0': '₀', '1': '₁', '2': '₂', '3': '₃', '4': '₄',
	'5': '₅', '6': '₆', '7': '₇', '8': '₈', '9': '₉',
	'+': '₊', '-': '₋', '=': '₌', '(': '₍', ')': '₎',
	'n': 'ₙ', 'i': 'ᵢ', 'x': 'ₓ', 'k': 'ₖ', 'm': 'ₘ', 'a': 'ₐ', 'e': 'ₑ',
}

// typeset walks the notation and converts it to Unicode.
func typeset(src string) (string, error) {
	var b strings.Builder
	runes := []rune(src)
	i := 0

	for i < len(runes) {
		c := runes[i]
		switch c {
		case '\\':
			n, out, err := typesetCommand(src, runes, i)
			if err != nil {
				return "", err
			}
			b.WriteString(out)
			i = n

		case '^', '_':
			arg, n, err := scriptArg(runes, i+1)
			if err != nil {
				return "", &NotationError{Notation: src, Reason: err.Error()}
			}
			table := superscripts
			if c == '_' {
				table = subscripts
			}
			converted, ok := convertScript(arg, table)
			if !ok {
				return "", &NotationError{Notation: src, Reason: fmt.Sprintf("no %c-script form for %q", c, arg)}
			}
			b.WriteString(converted)
			i = n

		case '{', '}':
			// Bare grouping braces disappear after their content is handled.
			depth := braceDepth(runes)
			if depth != 0 {
				return "", &NotationError{Notation: src, Reason: "unbalanced braces"}
			}
			i++

		default:
			b.WriteRune(c)
			i++
		}
	}

	return b.String(), nil
}

// typesetCommand handles a backslash command starting at runes[i].
// Returns the index after the command and its rendered form.
func typesetCommand(src string, runes []rune, i int) (int, string, error) {
	name, n := commandName(runes, i+1)
	if name == "" {
		return 0, "", &NotationError{Notation: src, Reason: "dangling backslash"}
	}

	switch name {
	case "frac":
		num, n2, err := braceArg(runes, n)
		if err != nil {
			return 0, "", &NotationError{Notation: src, Reason: "\\frac: " + err.Error()}
		}
		den, n3, err := braceArg(runes, n2)
		if err != nil {
			return 0, "", &NotationError{Notation: src, Reason: "\\frac: " + err.Error()}
		}
		numOut, err := typeset(num)
		if err != nil {
			return 0, "", err
		}
		denOut, err := typeset(den)
		if err != nil {
			return 0, "", err
		}
		return n3, fracForm(numOut, denOut), nil

	case "sqrt":
		arg, n2, err := braceArg(runes, n)
		if err != nil {
			return 0, "", &NotationError{Notation: src, Reason: "\\sqrt: " + err.Error()}
		}
		argOut, err := typeset(arg)
		if err != nil {
			return 0, "", err
		}
		return n2, "√(" + argOut + ")", nil

	case "text", "mathrm", "mathbf":
		arg, n2, err := braceArg(runes, n)
		if err != nil {
			return 0, "", &NotationError{Notation: src, Reason: "\\" + name + ": " + err.Error()}
		}
		return n2, arg, nil

	case "left", "right":
		// Sizing commands: drop the command, keep the delimiter.
		return n, "", nil
	}

	if out, ok := commands[name]; ok {
		return n, out, nil
	}
	return 0, "", &NotationError{Notation: src, Reason: fmt.Sprintf("unknown command \\%s", name)}
}

// fracForm renders a fraction. Single-character operands use the compact
// a/b form; anything longer is parenthesized for readability.
func fracForm(num, den string) string {
	wrap := func(s string) string {
		if len([]rune(s)) <= 1 {
			return s
		}
		return "(" + s + ")"
	}
	return wrap(num) + "/" + wrap(den)
}

// commandName reads a command name starting at runes[i] (after the
// backslash). Single-character commands like \, are allowed.
func commandName(runes []rune, i int) (string, int) {
	if i >= len(runes) {
		return "", i
	}
	if !isLetter(runes[i]) {
		return string(runes[i]), i + 1
	}
	j := i
	for j < len(runes) && isLetter(runes[j]) {
		j++
	}
	return string(runes[i:j]), j
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// braceArg reads a {…} group starting at runes[i], or a single rune when
// no brace is present (matching LaTeX's single-token argument rule).
func braceArg(runes []rune, i int) (string, int, error) {
	if i >= len(runes) {
		return "", 0, fmt.Errorf("missing argument")
	}
	if runes[i] != '{' {
		return string(runes[i]), i + 1, nil
	}
	depth := 0
	for j := i; j < len(runes); j++ {
		switch runes[j] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return string(runes[i+1 : j]), j + 1, nil
			}
		}
	}
	return "", 0, fmt.Errorf("unterminated brace group")
}

// scriptArg reads the argument of a ^ or _ script.
func scriptArg(runes []rune, i int) (string, int, error) {
	return braceArgErr(runes, i)
}

func braceArgErr(runes []rune, i int) (string, int, error) {
	arg, n, err := braceArg(runes, i)
	if err != nil {
		return "", 0, fmt.Errorf("script: %s", err)
	}
	return arg, n, nil
}

// convertScript maps every rune of arg through the script table.
func convertScript(arg string, table map[rune]rune) (string, bool) {
	var b strings.Builder
	for _, r := range arg {
		m, ok := table[r]
		if !ok {
			return "", false
		}
		b.WriteRune(m)
	}
	return b.String(), true
}

// braceDepth returns the net brace depth of the whole notation; nonzero
// means unbalanced grouping.
func braceDepth(runes []rune) int {
	depth := 0
	for _, r := range runes {
		switch r {
		case '{':
			depth++
		case '}':
			depth--
		}
	}
	return depth
}
