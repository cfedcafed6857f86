package study

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/studium/internal/ui/theme"
)

func (s *StudyScreen) View(width, height int) string {
	switch s.phase {
	case phaseBusy:
		return s.renderBusy(width)
	case phaseResult:
		return s.renderResult(width, height)
	default:
		return s.renderInput(width)
	}
}

// renderInput renders the topic form: text input plus the mode and
// subject pickers.
func (s *StudyScreen) renderInput(width int) string {
	var b strings.Builder
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("What would you like to study?"))
	b.WriteString("\n\n")

	inputLine := "Topic:  " + s.input.View()
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, inputLine))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.mode.View()))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.subject.View()))
	b.WriteString("\n\n")

	if s.notice != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(s.notice))
		b.WriteString("\n")
	}

	return b.String()
}

// renderBusy renders the in-flight spinner.
func (s *StudyScreen) renderBusy(width int) string {
	frame := spinnerFrames[s.spinnerFrame]
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("\n\n\n%s  Asking the model...\n\nEsc to cancel", frame))
}

// renderResult renders the study content and, for practice mode, the
// current question card.
func (s *StudyScreen) renderResult(width, height int) string {
	cur := s.session.Current()
	if cur == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")

	meta := fmt.Sprintf("%s · %s", cur.Mode.Label(), cur.Subject)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(meta))
	b.WriteString("\n\n")

	if len(s.cards) > 0 {
		return b.String() + s.renderPractice(width)
	}

	rendered := s.renderer.RenderAll(cur.Content)
	contentWidth := min(width-8, 80)
	body := lipgloss.NewStyle().
		Width(contentWidth).
		Foreground(theme.Text).
		Render(rendered)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, body))

	return b.String()
}

// renderPractice renders the question card with its position line and,
// once every question is answered, the score.
func (s *StudyScreen) renderPractice(width int) string {
	var b strings.Builder

	progress := s.session.Progress()
	position := fmt.Sprintf("Question %d of %d", s.qIndex+1, len(s.cards))
	if correct, answered := progress.Score(); answered > 0 {
		position += fmt.Sprintf("   %d/%d correct", correct, answered)
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Secondary).
		Render(position))
	b.WriteString("\n")

	if len(s.cards) > 1 {
		marks := make([]string, len(s.cards))
		for i, c := range s.cards {
			switch {
			case !c.Revealed:
				marks[i] = "·"
			case c.IsCorrect():
				marks[i] = "✓"
			default:
				marks[i] = "✗"
			}
		}
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(strings.Join(marks, " ")))
	}
	b.WriteString("\n\n")

	card := s.cards[s.qIndex]
	cardWidth := min(width-8, 76)
	cardView := lipgloss.NewStyle().Width(cardWidth).Render(card.View())
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, cardView))

	if progress.Complete() {
		correct, _ := progress.Score()
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Bold(true).
			Render(fmt.Sprintf("Quiz complete — %d of %d correct", correct, len(s.cards))))
	}

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
