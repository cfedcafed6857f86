package study

import (
	"context"
	"errors"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/studium/internal/llm"
	"github.com/abhisek/studium/internal/router"
	"github.com/abhisek/studium/internal/screen"
	"github.com/abhisek/studium/internal/segment"
	sess "github.com/abhisek/studium/internal/session"
	stu "github.com/abhisek/studium/internal/study"
	"github.com/abhisek/studium/internal/ui/components"
	"github.com/abhisek/studium/internal/ui/layout"
)

type phase int

const (
	phaseInput phase = iota
	phaseBusy
	phaseResult
)

// focus identifies which input-phase control receives keys.
type focus int

const (
	focusTopic focus = iota
	focusMode
	focusSubject
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// StudyScreen drives one study exchange: topic entry, the in-flight
// query, and the rendered result with its practice questions.
type StudyScreen struct {
	provider llm.Provider
	session  *sess.Session
	renderer *segment.Renderer
	timeout  time.Duration

	phase phase
	focus focus

	input   components.TextInput
	mode    components.Picker
	subject components.Picker

	spinnerFrame int
	notice       string

	cards  []components.QuestionCard
	qIndex int
}

var _ screen.Screen = (*StudyScreen)(nil)
var _ screen.KeyHintProvider = (*StudyScreen)(nil)

// New creates a StudyScreen starting at topic entry.
func New(provider llm.Provider, session *sess.Session, renderer *segment.Renderer, timeout time.Duration) *StudyScreen {
	modeLabels := make([]string, 0, len(stu.Modes()))
	for _, m := range stu.Modes() {
		modeLabels = append(modeLabels, m.Label())
	}
	subjectLabels := make([]string, 0, len(stu.Subjects()))
	for _, s := range stu.Subjects() {
		subjectLabels = append(subjectLabels, string(s))
	}

	s := &StudyScreen{
		provider: provider,
		session:  session,
		renderer: renderer,
		timeout:  timeout,
		input:    components.NewTextInput("What do you want to study?", 120),
		mode:     components.NewPicker("Mode", modeLabels),
		subject:  components.NewPicker("Subject", subjectLabels),
	}
	s.setFocus(focusTopic)
	return s
}

// NewForResult creates a StudyScreen already showing the session's
// current result, as when reopened from history.
func NewForResult(provider llm.Provider, session *sess.Session, renderer *segment.Renderer, timeout time.Duration) *StudyScreen {
	s := New(provider, session, renderer, timeout)
	if session.Current() != nil {
		s.phase = phaseResult
		s.buildCards()
	}
	return s
}

func (s *StudyScreen) Init() tea.Cmd {
	if s.phase == phaseInput {
		return s.input.Init()
	}
	return nil
}

func (s *StudyScreen) Title() string {
	switch s.phase {
	case phaseBusy:
		return "Thinking..."
	case phaseResult:
		if cur := s.session.Current(); cur != nil {
			return cur.Title
		}
		return "Result"
	default:
		return "New Session"
	}
}

func (s *StudyScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseBusy:
		return []layout.KeyHint{
			{Key: "Esc", Description: "Cancel"},
		}
	case phaseResult:
		if len(s.cards) > 0 {
			return []layout.KeyHint{
				{Key: "↑↓", Description: "Choose"},
				{Key: "Enter", Description: "Answer"},
				{Key: "←→", Description: "Question"},
				{Key: "?", Description: "Hint"},
				{Key: "N", Description: "New topic"},
				{Key: "Esc", Description: "Back"},
			}
		}
		return []layout.KeyHint{
			{Key: "N", Description: "New topic"},
			{Key: "Esc", Description: "Back"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Tab", Description: "Next field"},
			{Key: "Enter", Description: "Ask"},
			{Key: "Esc", Description: "Back"},
		}
	}
}

func (s *StudyScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case queryDoneMsg:
		return s.handleQueryDone(msg)

	case spinnerTickMsg:
		if s.phase != phaseBusy {
			return s, nil
		}
		s.spinnerFrame = (s.spinnerFrame + 1) % len(spinnerFrames)
		return s, spinnerTick()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.phase == phaseInput && s.focus == focusTopic {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	return s, nil
}

func (s *StudyScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	switch s.phase {
	case phaseBusy:
		if key == "esc" {
			s.session.Cancel()
			s.phase = phaseInput
			s.notice = ""
			return s, s.input.Init()
		}
		return s, nil

	case phaseResult:
		return s.handleResultKey(msg)
	}

	// Input phase.
	switch key {
	case "tab":
		s.setFocus((s.focus + 1) % 3)
		return s, nil
	case "shift+tab":
		s.setFocus((s.focus + 2) % 3)
		return s, nil
	case "enter":
		return s.submit()
	}

	switch s.focus {
	case focusTopic:
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	case focusMode:
		var cmd tea.Cmd
		s.mode, cmd = s.mode.Update(msg)
		return s, cmd
	case focusSubject:
		var cmd tea.Cmd
		s.subject, cmd = s.subject.Update(msg)
		return s, cmd
	}

	return s, nil
}

func (s *StudyScreen) handleResultKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	switch key {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "n", "N":
		// Fresh screen so topic and pickers start from scratch.
		next := New(s.provider, s.session, s.renderer, s.timeout)
		return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
	}

	if len(s.cards) == 0 {
		return s, nil
	}

	switch key {
	case "left", "p":
		if s.qIndex > 0 {
			s.qIndex--
		}
		return s, nil
	case "right":
		if s.qIndex < len(s.cards)-1 {
			s.qIndex++
		}
		return s, nil
	case "enter":
		card := &s.cards[s.qIndex]
		if s.session.Progress().Select(s.qIndex, card.Cursor) {
			card.Reveal(card.Cursor)
		}
		return s, nil
	}

	var cmd tea.Cmd
	s.cards[s.qIndex], cmd = s.cards[s.qIndex].Update(msg)
	return s, cmd
}

func (s *StudyScreen) setFocus(f focus) {
	s.focus = f
	s.mode.Focused = f == focusMode
	s.subject.Focused = f == focusSubject
	if f == focusTopic {
		s.input.Model.Focus()
	} else {
		s.input.Model.Blur()
	}
}

// submit kicks off the generation query for the entered topic.
func (s *StudyScreen) submit() (screen.Screen, tea.Cmd) {
	topic := s.input.Value()
	if topic == "" {
		s.notice = "Enter a topic first."
		return s, nil
	}

	mode := stu.Modes()[s.mode.Selected]
	subject := stu.Subjects()[s.subject.Selected]

	req, err := stu.BuildRequest(topic, mode, subject)
	if err != nil {
		s.notice = err.Error()
		return s, nil
	}

	token, err := s.session.Begin()
	if err != nil {
		s.notice = "Still working on the previous question."
		return s, nil
	}

	s.phase = phaseBusy
	s.notice = ""

	return s, tea.Batch(s.runQuery(token, req, topic, mode, subject), spinnerTick())
}

// runQuery performs the provider call off the update loop.
func (s *StudyScreen) runQuery(token string, req llm.Request, topic string, mode stu.Mode, subject stu.Subject) tea.Cmd {
	provider := s.provider
	timeout := s.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		ctx = llm.WithPurpose(ctx, string(mode))

		resp, err := provider.Generate(ctx, req)
		if err != nil {
			return queryDoneMsg{Token: token, Err: err}
		}

		result, err := stu.ParseResponse(resp.Content, mode, subject, topic)
		if err != nil {
			return queryDoneMsg{Token: token, Err: err}
		}
		return queryDoneMsg{Token: token, Result: result}
	}
}

func (s *StudyScreen) handleQueryDone(msg queryDoneMsg) (screen.Screen, tea.Cmd) {
	if !s.session.Resolve(msg.Token, msg.Result, msg.Err) {
		return s, nil
	}

	if msg.Err != nil {
		s.phase = phaseInput
		s.notice = friendlyError(msg.Err)
		return s, s.input.Init()
	}

	s.phase = phaseResult
	s.buildCards()
	return s, nil
}

// buildCards creates question cards for the current result, restoring
// reveal state from quiz progress.
func (s *StudyScreen) buildCards() {
	s.cards = nil
	s.qIndex = 0

	cur := s.session.Current()
	if cur == nil {
		return
	}

	for i, q := range cur.Questions {
		options := make([]string, len(q.Options))
		for j, opt := range q.Options {
			options[j] = s.renderer.RenderAll(opt)
		}
		card := components.NewQuestionCard(
			s.renderer.RenderAll(q.Question),
			options,
			q.CorrectAnswer,
			s.renderer.RenderAll(q.Hint),
			s.renderer.RenderAll(q.Explanation),
		)
		if a, ok := s.session.Progress().Answered(i); ok {
			card.Reveal(a.Selected)
		}
		s.cards = append(s.cards, card)
	}
}

// friendlyError maps provider failures to a short notice line.
func friendlyError(err error) string {
	var rateLimit *llm.ErrRateLimit
	if errors.As(err, &rateLimit) {
		return "The model is rate limited right now. Try again in a moment."
	}
	var unavailable *llm.ErrProviderUnavailable
	if errors.As(err, &unavailable) {
		return "Could not reach the model. Check your connection and try again."
	}
	var malformed *stu.MalformedResponseError
	if errors.As(err, &malformed) {
		return "The model returned an unusable answer. Try again."
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return "The model took too long. Try again."
	}
	return "Something went wrong: " + err.Error()
}

func spinnerTick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}
