// Package quiz tracks per-question answer state for a practice session.
package quiz

import "github.com/abhisek/studium/internal/study"

// Answer records the choice a learner committed for one question.
type Answer struct {
	Selected int
	Correct  bool
}

// Progress maps question indices to committed answers. A question is
// revealed exactly when it has an entry, so a revealed explanation can
// never exist without a selection behind it.
type Progress struct {
	questions []study.PracticeQuestion
	answers   map[int]Answer
}

// New starts fresh progress over the given questions.
func New(questions []study.PracticeQuestion) *Progress {
	return &Progress{
		questions: questions,
		answers:   make(map[int]Answer),
	}
}

// Len returns the number of questions under play.
func (p *Progress) Len() int { return len(p.questions) }

// Question returns the question at index i, or false when out of range.
func (p *Progress) Question(i int) (study.PracticeQuestion, bool) {
	if i < 0 || i >= len(p.questions) {
		return study.PracticeQuestion{}, false
	}
	return p.questions[i], true
}

// Select commits option choice for question i. The first selection wins;
// later calls for the same question are ignored and return false. A
// selection outside the question's options is also rejected.
func (p *Progress) Select(i, choice int) bool {
	q, ok := p.Question(i)
	if !ok {
		return false
	}
	if choice < 0 || choice >= len(q.Options) {
		return false
	}
	if _, done := p.answers[i]; done {
		return false
	}
	p.answers[i] = Answer{Selected: choice, Correct: choice == q.CorrectAnswer}
	return true
}

// Answered reports the committed answer for question i, if any.
func (p *Progress) Answered(i int) (Answer, bool) {
	a, ok := p.answers[i]
	return a, ok
}

// Score counts correct answers and total committed answers.
func (p *Progress) Score() (correct, answered int) {
	for _, a := range p.answers {
		answered++
		if a.Correct {
			correct++
		}
	}
	return correct, answered
}

// Complete reports whether every question has an answer.
func (p *Progress) Complete() bool {
	return len(p.answers) == len(p.questions) && len(p.questions) > 0
}
