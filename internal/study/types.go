// Package study holds the query/result model: it builds the instruction
// contract sent to the LLM for a topic and decodes the response into a
// validated StudyResult.
package study

import "time"

// Mode selects what kind of study material to generate.
type Mode string

const (
	ModeExplain   Mode = "explain"
	ModeSummarize Mode = "summarize"
	ModePractice  Mode = "practice"
)

// Modes lists all modes in display order.
func Modes() []Mode {
	return []Mode{ModeExplain, ModeSummarize, ModePractice}
}

// Label returns the mode's display name.
func (m Mode) Label() string {
	switch m {
	case ModeExplain:
		return "Explain"
	case ModeSummarize:
		return "Summarize"
	case ModePractice:
		return "Practice"
	default:
		return string(m)
	}
}

// Subject narrows the tutor's framing. The set is closed.
type Subject string

const (
	SubjectGeneral    Subject = "General"
	SubjectMath       Subject = "Mathematics"
	SubjectScience    Subject = "Science"
	SubjectHistory    Subject = "History"
	SubjectLiterature Subject = "Literature"
	SubjectCS         Subject = "Computer Science"
)

// Subjects lists all subjects in display order.
func Subjects() []Subject {
	return []Subject{
		SubjectGeneral,
		SubjectMath,
		SubjectScience,
		SubjectHistory,
		SubjectLiterature,
		SubjectCS,
	}
}

// PracticeQuestion is one multiple-choice question from a practice result.
type PracticeQuestion struct {
	// Question is the prompt, possibly containing $-delimited math.
	Question string

	// Options holds at least two answer choices.
	Options []string

	// CorrectAnswer indexes into Options.
	CorrectAnswer int

	// Explanation is shown after the learner answers.
	Explanation string

	// Hint is an optional nudge the learner can request before answering.
	Hint string
}

// Result is the validated outcome of one completed query. Immutable once
// constructed; shared by reference between the history store and the
// current-result view.
type Result struct {
	Title     string
	Content   string
	Mode      Mode
	Subject   Subject
	CreatedAt time.Time

	// Questions is non-empty exactly when Mode is ModePractice.
	Questions []PracticeQuestion
}
