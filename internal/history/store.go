// Package history keeps the most recent study results in memory.
package history

import "github.com/abhisek/studium/internal/study"

// DefaultCapacity bounds how many results the store retains.
const DefaultCapacity = 15

// Store holds study results most-recent-first, dropping the oldest
// once capacity is reached. The zero value is not usable; call New.
type Store struct {
	capacity int
	entries  []study.Result
}

// New returns a store bounded to capacity entries. A non-positive
// capacity falls back to DefaultCapacity.
func New(capacity int) *Store {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Store{capacity: capacity}
}

// Push prepends r, evicting the oldest entry when the store is full.
func (s *Store) Push(r study.Result) {
	s.entries = append([]study.Result{r}, s.entries...)
	if len(s.entries) > s.capacity {
		s.entries = s.entries[:s.capacity]
	}
}

// Len returns the number of stored results.
func (s *Store) Len() int { return len(s.entries) }

// At returns the result at position i, newest first, or false when
// i is out of range.
func (s *Store) At(i int) (study.Result, bool) {
	if i < 0 || i >= len(s.entries) {
		return study.Result{}, false
	}
	return s.entries[i], true
}

// List returns a copy of all stored results, newest first.
func (s *Store) List() []study.Result {
	out := make([]study.Result, len(s.entries))
	copy(out, s.entries)
	return out
}
