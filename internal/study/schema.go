package study

import "github.com/abhisek/studium/internal/llm"

// PracticeSchema defines the JSON schema for practice-mode responses.
var PracticeSchema = &llm.Schema{
	Name:        "practice-result",
	Description: "A set of multiple-choice practice questions with answer keys",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "Short title for this practice set (3-8 words)",
			},
			"content": map[string]any{
				"type":        "string",
				"description": "One or two sentences introducing the topic. May be empty.",
			},
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{
							"type":        "string",
							"description": "The question prompt. Use $...$ for inline math and $$...$$ for display math.",
						},
						"options": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "Exactly 4 answer choices, one correct",
						},
						"correctAnswer": map[string]any{
							"type":        "integer",
							"description": "Zero-based index of the correct option",
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "Why the correct answer is right, shown after answering",
						},
						"hint": map[string]any{
							"type":        "string",
							"description": "A nudge toward the answer without giving it away",
						},
					},
					"required":             []any{"question", "options", "correctAnswer", "explanation", "hint"},
					"additionalProperties": false,
				},
				"description": "The practice questions, in presentation order",
			},
		},
		"required":             []any{"title", "content", "questions"},
		"additionalProperties": false,
	},
}
