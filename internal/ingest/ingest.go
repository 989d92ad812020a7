package ingest

import (
	"time"
)

const (
	StatusRunning   = "RUNNING"
	StatusCompleted = "COMPLETED"
	StatusFailed    = "FAILED"
)

// Run records one warm-up pass over a set of subjects.
type Run struct {
	ID            string     `json:"id"`
	StartedAt     time.Time  `json:"started_at"`
	FinishedAt    *time.Time `json:"finished_at,omitempty"`
	Status        string     `json:"status"`
	Subjects      []string   `json:"subjects"`
	PerSubject    int        `json:"per_subject"`
	WorksFetched  int        `json:"works_fetched"`
	BooksResolved int        `json:"books_resolved"`
	BooksFailed   int        `json:"books_failed"`
	Error         string     `json:"error,omitempty"`
}
