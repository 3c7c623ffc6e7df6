package storage

import "time"

// Entry is one key/value pair written by SaveMany.
type Entry struct {
	Key   string
	Value []byte
}

const (
	OutcomeCompleted = "completed"
	OutcomeFailed    = "failed"
)

type LogEntry struct {
	ID         int64
	QuestID    string
	Title      string
	Outcome    string
	Stat       string
	StatDelta  int
	ExpAwarded int
	RecordedAt time.Time
}
