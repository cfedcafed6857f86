package app

import (
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/studium/internal/llm"
	"github.com/abhisek/studium/internal/mathtex"
	"github.com/abhisek/studium/internal/router"
	"github.com/abhisek/studium/internal/screen"
	"github.com/abhisek/studium/internal/screens/home"
	"github.com/abhisek/studium/internal/segment"
	sess "github.com/abhisek/studium/internal/session"
	"github.com/abhisek/studium/internal/ui/layout"
)

// Options carries the dependencies the TUI needs. Provider may be nil
// when no API key is configured; the home screen degrades gracefully.
type Options struct {
	Provider     llm.Provider
	Session      *sess.Session
	MathRenderer segment.MathRenderer
	QueryTimeout time.Duration
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	session *sess.Session
	width   int
	height  int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(opts Options) AppModel {
	if opts.Session == nil {
		opts.Session = sess.New(nil)
	}
	if opts.QueryTimeout <= 0 {
		opts.QueryTimeout = 60 * time.Second
	}
	if opts.MathRenderer == nil {
		opts.MathRenderer = mathtex.New()
	}
	renderer := segment.NewRenderer(opts.MathRenderer)

	homeScreen := home.New(opts.Provider, opts.Session, renderer, opts.QueryTimeout)
	return AppModel{
		router:  router.New(homeScreen),
		session: opts.Session,
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	status := ""
	if m.session.Busy() {
		status = "thinking"
	} else if n := m.session.History().Len(); n > 0 {
		status = fmt.Sprintf("✎ %d saved", n)
	}

	header := layout.RenderHeader(title, status, m.width)

	var footerHints []layout.KeyHint
	if hinted, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hinted.KeyHints()
	}
	if len(footerHints) == 0 {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
