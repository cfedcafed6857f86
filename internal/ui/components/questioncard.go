package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/studium/internal/ui/theme"
)

// QuestionCard renders one multiple-choice question. Cursor movement is
// handled here; committing an answer and revealing the outcome is the
// owner's job via Reveal, after which the card stops reacting to input.
type QuestionCard struct {
	Question    string
	Options     []string
	Correct     int
	Hint        string
	Explanation string

	Cursor   int
	Revealed bool
	Chosen   int
	ShowHint bool
}

// NewQuestionCard creates a card for the given question.
func NewQuestionCard(question string, options []string, correct int, hint, explanation string) QuestionCard {
	return QuestionCard{
		Question:    question,
		Options:     options,
		Correct:     correct,
		Hint:        hint,
		Explanation: explanation,
		Chosen:      -1,
	}
}

// Reveal locks the card with the committed choice.
func (c *QuestionCard) Reveal(chosen int) {
	c.Revealed = true
	c.Chosen = chosen
	c.ShowHint = false
}

// Update handles cursor movement and the hint toggle.
func (c QuestionCard) Update(msg tea.Msg) (QuestionCard, tea.Cmd) {
	if c.Revealed {
		return c, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Cursor > 0 {
			c.Cursor--
		}
	case "down", "j":
		if c.Cursor < len(c.Options)-1 {
			c.Cursor++
		}
	case "?":
		c.ShowHint = !c.ShowHint
	}

	return c, nil
}

// View renders the question with its options and, once revealed, the
// outcome and explanation.
func (c QuestionCard) View() string {
	questionStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	s := questionStyle.Render(c.Question) + "\n\n"

	for i, opt := range c.Options {
		label := string(rune('A' + i))
		prefix := "  "
		if i == c.Cursor && !c.Revealed {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s)  %s", prefix, label, opt)

		if c.Revealed {
			switch {
			case i == c.Correct:
				s += theme.Correct.Render(line) + "\n"
			case i == c.Chosen:
				s += theme.Incorrect.Render(line) + "\n"
			default:
				s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
			}
		} else {
			if i == c.Cursor {
				s += theme.Selected.Render(line) + "\n"
			} else {
				s += theme.Unselected.Render(line) + "\n"
			}
		}
	}

	if c.ShowHint && c.Hint != "" && !c.Revealed {
		s += "\n" + theme.Hint.Render("Hint: "+c.Hint) + "\n"
	}

	if c.Revealed {
		s += "\n"
		if c.Chosen == c.Correct {
			s += theme.Correct.Render("Correct!") + "\n"
		} else {
			s += theme.Incorrect.Render("Not quite.") + "\n"
		}
		if c.Explanation != "" {
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(c.Explanation) + "\n"
		}
	}

	return s
}

// IsCorrect returns true if the revealed choice was right.
func (c QuestionCard) IsCorrect() bool {
	return c.Revealed && c.Chosen == c.Correct
}
