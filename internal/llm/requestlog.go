package llm

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// RequestRecord captures one LLM call for inspection.
type RequestRecord struct {
	ID           string
	Timestamp    time.Time
	Model        string
	Purpose      string
	Reasoning    bool
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// RequestLog is a bounded in-memory record of LLM calls, most-recent-first.
// Records do not survive the process; they back `studium ask --stats` and
// the `llm check` probe output.
type RequestLog struct {
	mu       sync.Mutex
	capacity int
	records  []RequestRecord
}

// DefaultRequestLogCapacity bounds the in-memory request log.
const DefaultRequestLogCapacity = 100

// NewRequestLog creates a RequestLog holding at most capacity records.
// Non-positive capacity falls back to the default.
func NewRequestLog(capacity int) *RequestLog {
	if capacity <= 0 {
		capacity = DefaultRequestLogCapacity
	}
	return &RequestLog{capacity: capacity}
}

// Append records a call, evicting the oldest record at capacity.
func (l *RequestLog) Append(rec RequestRecord) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	l.records = append([]RequestRecord{rec}, l.records...)
	if len(l.records) > l.capacity {
		l.records = l.records[:l.capacity]
	}
}

// List returns a copy of the records, most-recent-first.
func (l *RequestLog) List() []RequestRecord {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]RequestRecord, len(l.records))
	copy(out, l.records)
	return out
}

// Len returns the number of recorded calls.
func (l *RequestLog) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.records)
}
