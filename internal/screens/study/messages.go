package study

import (
	"time"

	stu "github.com/abhisek/studium/internal/study"
)

// queryDoneMsg is sent when a generation query completes. Token ties
// the message back to the query that produced it; stale tokens are
// dropped without touching screen state.
type queryDoneMsg struct {
	Token  string
	Result *stu.Result
	Err    error
}

// spinnerTickMsg is sent at short intervals to animate the busy spinner.
type spinnerTickMsg time.Time
