package study

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrEmptyResponse is returned when the model produced no content at all.
var ErrEmptyResponse = errors.New("empty response from model")

// MalformedResponseError reports a practice-mode payload that failed
// decoding or contained an unusable question table. The caller must not
// store or display anything from such a response.
type MalformedResponseError struct {
	Reason string
	Err    error
}

func (e *MalformedResponseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed structured response: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("malformed structured response: %s", e.Reason)
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }

// DefaultPracticeTitle is used when a practice payload has no usable title.
const DefaultPracticeTitle = "Practice Questions"

// rawResult mirrors PracticeSchema for decoding before validation.
type rawResult struct {
	Title     string        `json:"title"`
	Content   string        `json:"content"`
	Questions []rawQuestion `json:"questions"`
}

type rawQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer *int     `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
	Hint          string   `json:"hint"`
}

// ParseResponse decodes a model response into a Result.
//
// For explain and summarize the raw bytes are the content verbatim and
// fallbackTitle names the result. For practice the payload is decoded
// against PracticeSchema's shape and every field is validated explicitly
// before a Result is constructed — a malformed payload yields a
// *MalformedResponseError and no partial result.
func ParseResponse(raw json.RawMessage, mode Mode, subject Subject, fallbackTitle string) (*Result, error) {
	text := strings.TrimSpace(string(raw))
	if text == "" {
		return nil, ErrEmptyResponse
	}

	now := time.Now()

	if mode != ModePractice {
		return &Result{
			Title:     fallbackTitle,
			Content:   text,
			Mode:      mode,
			Subject:   subject,
			CreatedAt: now,
		}, nil
	}

	var out rawResult
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, &MalformedResponseError{Reason: "invalid JSON", Err: err}
	}

	if len(out.Questions) == 0 {
		return nil, &MalformedResponseError{Reason: "no questions in practice response"}
	}

	questions := make([]PracticeQuestion, 0, len(out.Questions))
	for i, q := range out.Questions {
		if strings.TrimSpace(q.Question) == "" {
			return nil, &MalformedResponseError{Reason: fmt.Sprintf("question %d: empty prompt", i)}
		}
		if len(q.Options) < 2 {
			return nil, &MalformedResponseError{Reason: fmt.Sprintf("question %d: needs at least 2 options, got %d", i, len(q.Options))}
		}
		if q.CorrectAnswer == nil {
			return nil, &MalformedResponseError{Reason: fmt.Sprintf("question %d: missing correctAnswer", i)}
		}
		if *q.CorrectAnswer < 0 || *q.CorrectAnswer >= len(q.Options) {
			return nil, &MalformedResponseError{Reason: fmt.Sprintf("question %d: correctAnswer %d out of range [0,%d)", i, *q.CorrectAnswer, len(q.Options))}
		}
		questions = append(questions, PracticeQuestion{
			Question:      q.Question,
			Options:       q.Options,
			CorrectAnswer: *q.CorrectAnswer,
			Explanation:   q.Explanation,
			Hint:          q.Hint,
		})
	}

	title := strings.TrimSpace(out.Title)
	if title == "" {
		title = DefaultPracticeTitle
	}

	return &Result{
		Title:     title,
		Content:   out.Content,
		Mode:      mode,
		Subject:   subject,
		CreatedAt: now,
		Questions: questions,
	}, nil
}
