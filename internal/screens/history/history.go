// Package history lists past study results and reopens them.
package history

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/studium/internal/llm"
	"github.com/abhisek/studium/internal/router"
	"github.com/abhisek/studium/internal/screen"
	studyscreen "github.com/abhisek/studium/internal/screens/study"
	"github.com/abhisek/studium/internal/segment"
	sess "github.com/abhisek/studium/internal/session"
	"github.com/abhisek/studium/internal/study"
	"github.com/abhisek/studium/internal/ui/layout"
	"github.com/abhisek/studium/internal/ui/theme"
)

// HistoryScreen displays stored study results, newest first.
type HistoryScreen struct {
	provider llm.Provider
	session  *sess.Session
	renderer *segment.Renderer
	timeout  time.Duration

	entries  []study.Result
	selected int
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen over the session's history store.
func New(provider llm.Provider, session *sess.Session, renderer *segment.Renderer, timeout time.Duration) *HistoryScreen {
	return &HistoryScreen{
		provider: provider,
		session:  session,
		renderer: renderer,
		timeout:  timeout,
		entries:  session.History().List(),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return nil
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Open"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(s.entries)-1 {
			s.selected++
		}
	case "enter":
		if len(s.entries) == 0 {
			return s, nil
		}
		if !s.session.ShowHistoryEntry(s.selected) {
			return s, nil
		}
		return s, func() tea.Msg {
			return router.PushScreenMsg{
				Screen: studyscreen.NewForResult(s.provider, s.session, s.renderer, s.timeout),
			}
		}
	}

	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if len(s.entries) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  Nothing here yet. Ask about a topic first!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, entry := range s.entries {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		detail := entry.Mode.Label()
		if len(entry.Questions) > 0 {
			detail = fmt.Sprintf("%s · %d questions", detail, len(entry.Questions))
		}

		line := fmt.Sprintf("%s%s  %s  [%s · %s]",
			prefix,
			entry.CreatedAt.Format("Jan 02 15:04"),
			entry.Title,
			detail,
			entry.Subject,
		)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}
