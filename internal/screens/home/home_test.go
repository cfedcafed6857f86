package home

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/studium/internal/llm"
	"github.com/abhisek/studium/internal/mathtex"
	"github.com/abhisek/studium/internal/router"
	"github.com/abhisek/studium/internal/segment"
	sess "github.com/abhisek/studium/internal/session"
	stu "github.com/abhisek/studium/internal/study"
)

func newTestHome(provider llm.Provider) *HomeScreen {
	renderer := segment.NewRenderer(mathtex.New())
	return New(provider, sess.New(nil), renderer, 5*time.Second)
}

func enter(h *HomeScreen) tea.Cmd {
	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	return cmd
}

func TestMenuOpensStudyScreen(t *testing.T) {
	h := newTestHome(llm.NewMockProvider())

	cmd := enter(h)
	if cmd == nil {
		t.Fatal("expected a command from selecting the first entry")
	}
	msg := cmd()
	push, ok := msg.(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", msg)
	}
	if push.Screen == nil {
		t.Error("pushed screen should not be nil")
	}
	if push.Screen.Title() != "New Session" {
		t.Errorf("expected the study input screen, got %q", push.Screen.Title())
	}
}

func TestMenuOpensHistoryScreen(t *testing.T) {
	h := newTestHome(llm.NewMockProvider())

	h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	cmd := enter(h)
	if cmd == nil {
		t.Fatal("expected a command from selecting HISTORY")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	if push.Screen.Title() != "History" {
		t.Errorf("expected History screen, got %q", push.Screen.Title())
	}
}

func TestNilProviderDisablesStudy(t *testing.T) {
	h := newTestHome(nil)

	// Selection skips the disabled study entry and lands on HISTORY.
	if h.menu.Selected != 1 {
		t.Errorf("expected initial selection 1, got %d", h.menu.Selected)
	}

	view := h.View(80, 24)
	if !strings.Contains(view, "No API key found") {
		t.Error("expected configuration hint when no provider is set")
	}
	if strings.Contains(view, "model:") {
		t.Error("model line should not appear without a provider")
	}
}

func TestActiveProviderShowsModel(t *testing.T) {
	h := newTestHome(llm.NewMockProvider())

	view := h.View(80, 24)
	if !strings.Contains(view, "model: mock") {
		t.Error("expected model line in view")
	}
	if strings.Contains(view, "No API key found") {
		t.Error("configuration hint should not appear with a provider")
	}
}

func TestSavedSessionCount(t *testing.T) {
	h := newTestHome(llm.NewMockProvider())

	if strings.Contains(h.View(80, 24), "saved session") {
		t.Error("count should be hidden while history is empty")
	}

	token, err := h.session.Begin()
	if err != nil {
		t.Fatal(err)
	}
	h.session.Resolve(token, &stu.Result{Title: "Photosynthesis", Content: "..."}, nil)

	if !strings.Contains(h.View(80, 24), "1 saved session") {
		t.Error("expected saved session count after a stored result")
	}
}
