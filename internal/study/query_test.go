package study

import (
	"errors"
	"strings"
	"testing"
)

func TestBuildRequest_EmptyTopicRejected(t *testing.T) {
	for _, topic := range []string{"", "   ", "\n\t"} {
		_, err := BuildRequest(topic, ModeExplain, SubjectGeneral)
		if !errors.Is(err, ErrEmptyTopic) {
			t.Errorf("topic %q: expected ErrEmptyTopic, got %v", topic, err)
		}
	}
}

func TestBuildRequest_Prompt(t *testing.T) {
	req, err := BuildRequest("the chain rule", ModeSummarize, SubjectMath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(req.Messages) != 1 {
		t.Fatalf("expected 1 message, got %d", len(req.Messages))
	}
	want := "Topic: the chain rule. Mode: summarize."
	if req.Messages[0].Content != want {
		t.Errorf("prompt = %q, want %q", req.Messages[0].Content, want)
	}
}

func TestBuildRequest_SchemaOnlyForPractice(t *testing.T) {
	for _, subject := range Subjects() {
		for _, mode := range Modes() {
			req, err := BuildRequest("photosynthesis", mode, subject)
			if err != nil {
				t.Fatalf("mode %s: unexpected error: %v", mode, err)
			}
			wantSchema := mode == ModePractice
			if (req.Schema != nil) != wantSchema {
				t.Errorf("mode %s subject %s: schema presence = %v, want %v",
					mode, subject, req.Schema != nil, wantSchema)
			}
		}
	}
}

func TestBuildRequest_ReasoningOnlyForExplain(t *testing.T) {
	for _, mode := range Modes() {
		req, err := BuildRequest("entropy", mode, SubjectScience)
		if err != nil {
			t.Fatalf("mode %s: unexpected error: %v", mode, err)
		}
		if req.Reasoning != (mode == ModeExplain) {
			t.Errorf("mode %s: Reasoning = %v", mode, req.Reasoning)
		}
	}
}

func TestBuildRequest_InstructionsMentionSubjectAndDelimiters(t *testing.T) {
	req, err := BuildRequest("the French Revolution", ModeExplain, SubjectHistory)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(req.System, "History") {
		t.Errorf("instructions missing subject: %q", req.System)
	}
	if !strings.Contains(req.System, "$...$") || !strings.Contains(req.System, "$$...$$") {
		t.Errorf("instructions missing math delimiter convention: %q", req.System)
	}
}

func TestBuildRequest_ExplainGetsLargerBudget(t *testing.T) {
	explain, _ := BuildRequest("limits", ModeExplain, SubjectMath)
	practice, _ := BuildRequest("limits", ModePractice, SubjectMath)
	if explain.MaxTokens <= practice.MaxTokens {
		t.Errorf("explain budget %d should exceed practice budget %d",
			explain.MaxTokens, practice.MaxTokens)
	}
}
