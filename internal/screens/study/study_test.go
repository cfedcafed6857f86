package study

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/studium/internal/llm"
	"github.com/abhisek/studium/internal/mathtex"
	"github.com/abhisek/studium/internal/router"
	"github.com/abhisek/studium/internal/screen"
	"github.com/abhisek/studium/internal/segment"
	sess "github.com/abhisek/studium/internal/session"
	stu "github.com/abhisek/studium/internal/study"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testScreen(responses ...llm.MockResponse) (*StudyScreen, *sess.Session) {
	provider := llm.NewMockProvider(responses...)
	session := sess.New(nil)
	renderer := segment.NewRenderer(mathtex.New())
	return New(provider, session, renderer, 5*time.Second), session
}

func practiceJSON() json.RawMessage {
	return json.RawMessage(`{"title":"Fractions","content":"","questions":[
		{"question":"What is $\\frac{1}{2} + \\frac{1}{2}$?","options":["1","2"],"correctAnswer":0,"explanation":"The halves add to a whole.","hint":"Same denominator."}]}`)
}

func resultScreen(t *testing.T, s *StudyScreen, session *sess.Session) *StudyScreen {
	t.Helper()
	s.input.Model.SetValue("fractions")
	s.mode.Selected = 2 // practice

	var scr screen.Screen = s
	scr, cmd := scr.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected query command after submit")
	}
	ss := scr.(*StudyScreen)
	if ss.phase != phaseBusy {
		t.Fatalf("phase = %d, want busy", ss.phase)
	}

	// Run the batched commands until the query result message appears.
	msg := drainCmd(cmd)
	if msg == nil {
		t.Fatal("query produced no message")
	}
	scr, _ = ss.Update(msg)
	return scr.(*StudyScreen)
}

// drainCmd executes a command tree and returns the first queryDoneMsg.
func drainCmd(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			if m := drainCmd(c); m != nil {
				return m
			}
		}
		return nil
	}
	if done, ok := msg.(queryDoneMsg); ok {
		return done
	}
	return nil
}

func TestStudyScreen_EmptyTopicRejected(t *testing.T) {
	s, session := testScreen()

	var scr screen.Screen = s
	scr, cmd := scr.Update(specialKey(tea.KeyEnter))
	ss := scr.(*StudyScreen)

	if cmd != nil {
		t.Error("empty topic must not start a query")
	}
	if ss.phase != phaseInput {
		t.Error("screen left the input phase on empty topic")
	}
	if ss.notice == "" {
		t.Error("expected a notice for the empty topic")
	}
	if session.Busy() {
		t.Error("session marked busy without a query")
	}
}

func TestStudyScreen_SubmitReachesResult(t *testing.T) {
	s, session := testScreen(llm.MockResponse{Content: practiceJSON()})

	ss := resultScreen(t, s, session)
	if ss.phase != phaseResult {
		t.Fatalf("phase = %d, want result", ss.phase)
	}
	if session.Busy() {
		t.Error("session still busy after resolve")
	}
	if session.Current() == nil || session.Current().Title != "Fractions" {
		t.Errorf("Current() = %+v", session.Current())
	}
	if len(ss.cards) != 1 {
		t.Fatalf("cards = %d, want 1", len(ss.cards))
	}
	if session.History().Len() != 1 {
		t.Errorf("history Len = %d, want 1", session.History().Len())
	}
}

func TestStudyScreen_QuestionMathRendered(t *testing.T) {
	s, session := testScreen(llm.MockResponse{Content: practiceJSON()})

	ss := resultScreen(t, s, session)
	q := ss.cards[0].Question
	if strings.Contains(q, "$") || strings.Contains(q, `\frac`) {
		t.Errorf("math notation not rendered: %q", q)
	}
	if !strings.Contains(q, "1/2") {
		t.Errorf("expected typeset fraction in %q", q)
	}
}

func TestStudyScreen_AnswerOnce(t *testing.T) {
	s, session := testScreen(llm.MockResponse{Content: practiceJSON()})
	ss := resultScreen(t, s, session)

	// Answer with the cursor on the first option.
	var scr screen.Screen = ss
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	ss = scr.(*StudyScreen)

	if !ss.cards[0].Revealed {
		t.Fatal("card not revealed after answering")
	}
	if !ss.cards[0].IsCorrect() {
		t.Error("option 0 should be correct")
	}

	// A second enter must not change the committed answer.
	scr, _ = ss.Update(specialKey(tea.KeyDown))
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	ss = scr.(*StudyScreen)
	a, _ := session.Progress().Answered(0)
	if a.Selected != 0 {
		t.Errorf("answer changed after reveal: %+v", a)
	}
}

func TestStudyScreen_ErrorReturnsToInput(t *testing.T) {
	s, session := testScreen(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})

	ss := resultScreen(t, s, session)
	if ss.phase != phaseInput {
		t.Fatalf("phase = %d, want input after error", ss.phase)
	}
	if ss.notice == "" {
		t.Error("expected a notice after provider error")
	}
	if session.Current() != nil {
		t.Error("failed query must not set a current result")
	}
	if session.Busy() {
		t.Error("session still busy after failed query")
	}
}

func TestStudyScreen_StaleResponseIgnored(t *testing.T) {
	s, session := testScreen(llm.MockResponse{Content: practiceJSON()})

	s.input.Model.SetValue("fractions")
	s.mode.Selected = 2

	var scr screen.Screen = s
	scr, cmd := scr.Update(specialKey(tea.KeyEnter))
	ss := scr.(*StudyScreen)

	// Cancel while the query is in flight.
	scr, _ = ss.Update(specialKey(tea.KeyEscape))
	ss = scr.(*StudyScreen)
	if ss.phase != phaseInput {
		t.Fatal("cancel should return to input")
	}

	// The response lands afterwards and must be dropped.
	msg := drainCmd(cmd)
	scr, _ = ss.Update(msg)
	ss = scr.(*StudyScreen)

	if ss.phase != phaseInput {
		t.Error("stale response moved the screen out of input")
	}
	if session.Current() != nil {
		t.Error("stale result applied to session")
	}
	if session.History().Len() != 0 {
		t.Error("stale result reached history")
	}
}

func TestStudyScreen_BusyGateBlocksSecondQuery(t *testing.T) {
	s, session := testScreen(llm.MockResponse{Content: practiceJSON()})
	if _, err := session.Begin(); err != nil {
		t.Fatal(err)
	}

	s.input.Model.SetValue("fractions")
	var scr screen.Screen = s
	_, cmd := scr.Update(specialKey(tea.KeyEnter))
	if cmd != nil {
		t.Error("submit during an in-flight query must not start another")
	}
}

func TestStudyScreen_FreeTextResult(t *testing.T) {
	s, _ := testScreen(llm.MockResponse{
		Content: json.RawMessage("Photosynthesis converts light into chemical energy: $6CO_2$ and water become glucose."),
	})
	s.input.Model.SetValue("photosynthesis")
	s.mode.Selected = 0 // explain

	var scr screen.Screen = s
	scr, cmd := scr.Update(specialKey(tea.KeyEnter))
	ss := scr.(*StudyScreen)
	scr, _ = ss.Update(drainCmd(cmd))
	ss = scr.(*StudyScreen)

	if ss.phase != phaseResult {
		t.Fatalf("phase = %d, want result", ss.phase)
	}
	if len(ss.cards) != 0 {
		t.Error("free-text result must not build question cards")
	}
	view := ss.View(100, 30)
	if view == "" {
		t.Error("expected non-empty result view")
	}
	if strings.Contains(view, "$6CO_2$") {
		t.Error("inline math left unrendered in result view")
	}
}

func TestStudyScreen_NewSessionReplacesScreen(t *testing.T) {
	s, session := testScreen(llm.MockResponse{Content: practiceJSON()})
	ss := resultScreen(t, s, session)

	_, cmd := ss.Update(keyPress('n'))
	if cmd == nil {
		t.Fatal("expected a command from starting a new session")
	}
	msg := cmd()
	replace, ok := msg.(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", msg)
	}
	next, ok := replace.Screen.(*StudyScreen)
	if !ok {
		t.Fatalf("expected a study screen, got %T", replace.Screen)
	}
	if next.phase != phaseInput {
		t.Errorf("replacement phase = %d, want input", next.phase)
	}
	if next.input.Value() != "" {
		t.Errorf("replacement topic = %q, want empty", next.input.Value())
	}
}

func TestStudyScreen_ProgressMarks(t *testing.T) {
	two := json.RawMessage(`{"title":"Arithmetic","content":"","questions":[
		{"question":"2+2?","options":["4","5"],"correctAnswer":0,"explanation":"","hint":""},
		{"question":"3+3?","options":["5","6"],"correctAnswer":1,"explanation":"","hint":""}]}`)
	s, session := testScreen(llm.MockResponse{Content: two})
	ss := resultScreen(t, s, session)

	view := ss.View(100, 40)
	if !strings.Contains(view, "· ·") {
		t.Errorf("expected unanswered marks in view:\n%s", view)
	}

	// Answer the first question correctly.
	var scr screen.Screen = ss
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	ss = scr.(*StudyScreen)

	view = ss.View(100, 40)
	if !strings.Contains(view, "✓ ·") {
		t.Errorf("expected a correct mark for question 1 in view:\n%s", view)
	}
}

func TestFriendlyError(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{&llm.ErrRateLimit{}, "rate limited"},
		{&llm.ErrProviderUnavailable{}, "reach the model"},
		{&stu.MalformedResponseError{Reason: "bad"}, "unusable"},
		{errors.New("boom"), "boom"},
	}
	for _, tt := range tests {
		got := friendlyError(tt.err)
		if !strings.Contains(got, tt.want) {
			t.Errorf("friendlyError(%v) = %q, want it to contain %q", tt.err, got, tt.want)
		}
	}
}
