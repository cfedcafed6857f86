package study

import (
	"errors"
	"fmt"
	"strings"

	"github.com/abhisek/studium/internal/llm"
)

// ErrEmptyTopic is returned when the topic is empty or whitespace-only.
// Callers reject the submission before any external call is made.
var ErrEmptyTopic = errors.New("topic must not be empty")

// Token budgets per request kind. Explanations get the larger budget to
// go with the reasoning-tier model.
const (
	defaultMaxTokens   = 1024
	reasoningMaxTokens = 4096
)

const instructionsTemplate = `You are a study tutor helping a learner understand %s.

Rules:
- Answer directly. Do not introduce yourself or restate the request.
- Write mathematical notation with dollar delimiters: $...$ for inline formulas, $$...$$ for display formulas. Use standard LaTeX inside the delimiters.
- Do not use the characters * or # for emphasis or headings. Plain paragraphs only.
- Keep the register appropriate for self-study: precise, but no jargon without a one-line definition.`

const practiceInstructions = `
- Produce multiple-choice questions with exactly 4 options each, exactly one correct.
- Distractors should reflect plausible misunderstandings, not random values.
- Every question gets a hint that nudges without revealing, and an explanation of the correct answer.`

// BuildRequest constructs the full instruction contract for one query:
// system instructions, user prompt, output schema (practice mode only),
// and the reasoning flag (explain mode only).
func BuildRequest(topic string, mode Mode, subject Subject) (llm.Request, error) {
	if strings.TrimSpace(topic) == "" {
		return llm.Request{}, ErrEmptyTopic
	}

	instructions := fmt.Sprintf(instructionsTemplate, subjectPhrase(subject))
	req := llm.Request{
		System: instructions,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: fmt.Sprintf("Topic: %s. Mode: %s.", topic, mode)},
		},
		MaxTokens:   defaultMaxTokens,
		Temperature: 0.4,
	}

	switch mode {
	case ModeExplain:
		req.Reasoning = true
		req.MaxTokens = reasoningMaxTokens
	case ModePractice:
		req.System += practiceInstructions
		req.Schema = PracticeSchema
	}

	return req, nil
}

// subjectPhrase renders the subject for the instruction template.
func subjectPhrase(s Subject) string {
	if s == SubjectGeneral || s == "" {
		return "any subject they ask about"
	}
	return string(s)
}
