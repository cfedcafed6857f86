// Package session coordinates the active study result, quiz progress
// and history behind a single-flight query gate.
package session

import (
	"errors"

	"github.com/google/uuid"

	"github.com/abhisek/studium/internal/history"
	"github.com/abhisek/studium/internal/quiz"
	"github.com/abhisek/studium/internal/study"
)

// ErrBusy is returned when a query is started while one is in flight.
var ErrBusy = errors.New("a query is already in flight")

// Session owns what the study screens display. At most one query can
// be outstanding; each is tagged with a token so a response that was
// superseded or cancelled is discarded instead of applied.
type Session struct {
	hist     *history.Store
	current  *study.Result
	progress *quiz.Progress

	busy  bool
	token string
}

// New returns a session backed by the given history store.
func New(hist *history.Store) *Session {
	if hist == nil {
		hist = history.New(history.DefaultCapacity)
	}
	return &Session{hist: hist}
}

// Busy reports whether a query is in flight.
func (s *Session) Busy() bool { return s.busy }

// Begin reserves the query slot and returns the token the eventual
// Resolve call must present. It fails with ErrBusy while another
// query is outstanding.
func (s *Session) Begin() (string, error) {
	if s.busy {
		return "", ErrBusy
	}
	s.busy = true
	s.token = uuid.NewString()
	return s.token, nil
}

// Cancel releases the query slot without applying a result. The
// in-flight response, if it ever arrives, no longer matches the token
// and will be dropped.
func (s *Session) Cancel() {
	s.busy = false
	s.token = ""
}

// Resolve applies the outcome of the query identified by token. Stale
// tokens are ignored and reported via the return value. On success the
// result becomes current, is pushed to history, and fresh quiz
// progress is started for its questions; on error nothing changes
// beyond releasing the slot.
func (s *Session) Resolve(token string, res *study.Result, err error) (applied bool) {
	if token == "" || token != s.token {
		return false
	}
	s.busy = false
	s.token = ""
	if err != nil || res == nil {
		return true
	}
	s.current = res
	s.hist.Push(*res)
	s.progress = quiz.New(res.Questions)
	return true
}

// Current returns the result on display, or nil when none is loaded.
func (s *Session) Current() *study.Result { return s.current }

// Progress returns quiz progress for the current result, or nil when
// no result is loaded.
func (s *Session) Progress() *quiz.Progress { return s.progress }

// History returns the underlying history store.
func (s *Session) History() *history.Store { return s.hist }

// ShowHistoryEntry loads the history entry at index i as the current
// result with fresh quiz progress. Earlier answers for that entry are
// not retained.
func (s *Session) ShowHistoryEntry(i int) bool {
	res, ok := s.hist.At(i)
	if !ok {
		return false
	}
	s.current = &res
	s.progress = quiz.New(res.Questions)
	return true
}
