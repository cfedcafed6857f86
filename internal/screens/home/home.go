package home

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/studium/internal/llm"
	"github.com/abhisek/studium/internal/router"
	"github.com/abhisek/studium/internal/screen"
	historyscreen "github.com/abhisek/studium/internal/screens/history"
	studyscreen "github.com/abhisek/studium/internal/screens/study"
	"github.com/abhisek/studium/internal/segment"
	sess "github.com/abhisek/studium/internal/session"
	"github.com/abhisek/studium/internal/ui/components"
	"github.com/abhisek/studium/internal/ui/theme"
)

var banner = []string{
	`  ___ _____ _   _ ___ ___ _   _ __  __`,
	` / __|_   _| | | |   \_ _| | | |  \/  |`,
	` \__ \ | | | |_| | |) | || |_| | |\/| |`,
	` |___/ |_|  \___/|___/___|\___/|_|  |_|`,
}

// HomeScreen is the main entry screen of the application.
type HomeScreen struct {
	menu      components.Menu
	session   *sess.Session
	modelID   string
	llmActive bool
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen. A nil provider disables the study
// entries and shows a configuration hint instead.
func New(provider llm.Provider, session *sess.Session, renderer *segment.Renderer, timeout time.Duration) *HomeScreen {
	llmActive := provider != nil

	var modelID string
	if llmActive {
		modelID = provider.ModelID()
	}

	items := []components.MenuItem{
		{Label: "NEW STUDY SESSION", Disabled: !llmActive, Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: studyscreen.New(provider, session, renderer, timeout),
				}
			}
		}},
		{Label: "HISTORY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: historyscreen.New(provider, session, renderer, timeout),
				}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:      components.NewMenu(items),
		session:   session,
		modelID:   modelID,
		llmActive: llmActive,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	art := lipgloss.NewStyle().Foreground(theme.Primary).Render(strings.Join(banner, "\n"))
	sections = append(sections, lipgloss.PlaceHorizontal(width, lipgloss.Center, art))

	sections = append(sections, theme.Subtitle.Width(width).Render("Your AI study companion"))

	if h.llmActive {
		sections = append(sections, theme.Hint.Width(width).Align(lipgloss.Center).
			Render(fmt.Sprintf("model: %s", h.modelID)))
	} else {
		sections = append(sections, lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("No API key found. Set STUDIUM_LLM_PROVIDER or an API key to enable study sessions."))
	}

	if n := h.session.History().Len(); n > 0 {
		label := fmt.Sprintf("%d saved session", n)
		if n > 1 {
			label += "s"
		}
		sections = append(sections, theme.Subtitle.Width(width).Render(label))
	}

	sections = append(sections, lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View()))

	content := strings.Join(sections, "\n\n")
	return lipgloss.NewStyle().Height(height).Render("\n" + content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
