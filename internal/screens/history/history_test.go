package history

import (
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
	"github.com/abhisek/studium/internal/study"
)

func testSession(titles ...string) *sess.Session {
	s := sess.New(nil)
	for _, title := range titles {
		token, _ := s.Begin()
		s.Resolve(token, &study.Result{
			Title:     title,
			Mode:      study.ModeExplain,
			Subject:   study.SubjectGeneral,
			CreatedAt: time.Now(),
		}, nil)
	}
	return s
}

func testScreen(session *sess.Session) *HistoryScreen {
	provider := llm.NewMockProvider()
	renderer := segment.NewRenderer(mathtex.New())
	return New(provider, session, renderer, 5*time.Second)
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestView_Empty(t *testing.T) {
	s := testScreen(testSession())
	view := s.View(80, 24)
	if !strings.Contains(view, "Nothing here yet") {
		t.Errorf("expected empty-state message, got %q", view)
	}
}

func TestView_NewestFirst(t *testing.T) {
	s := testScreen(testSession("first", "second"))
	view := s.View(100, 24)

	iFirst := strings.Index(view, "first")
	iSecond := strings.Index(view, "second")
	if iFirst < 0 || iSecond < 0 {
		t.Fatalf("entries missing from view: %q", view)
	}
	if iSecond > iFirst {
		t.Error("newest entry should be listed first")
	}
}

func TestEnter_OpensEntry(t *testing.T) {
	session := testSession("limits")
	s := testScreen(session)

	var scr screen.Screen = s
	_, cmd := scr.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected navigation command")
	}
	if _, ok := cmd().(router.PushScreenMsg); !ok {
		t.Error("expected PushScreenMsg")
	}
	if session.Current() == nil || session.Current().Title != "limits" {
		t.Errorf("Current() = %+v, want the opened entry", session.Current())
	}
}

func TestEnter_EmptyHistoryNoop(t *testing.T) {
	s := testScreen(testSession())
	var scr screen.Screen = s
	_, cmd := scr.Update(specialKey(tea.KeyEnter))
	if cmd != nil {
		t.Error("enter on empty history must not navigate")
	}
}
