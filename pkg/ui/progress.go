package ui

import (
	"fmt"
	"time"
)

// StatusTracker keeps track of fetch progress
type StatusTracker struct {
	RecordsWritten int
	PagesFetched   int
	StartTime      time.Time
}

// NewStatusTracker creates a new status tracker
func NewStatusTracker() *StatusTracker {
	return &StatusTracker{
		StartTime: time.Now(),
	}
}

// AddPage records one fetched page and the data rows it contributed
func (st *StatusTracker) AddPage(rows int) {
	st.PagesFetched++
	st.RecordsWritten += rows
}

// Elapsed returns the time since the tracker was created
func (st *StatusTracker) Elapsed() time.Duration {
	return time.Since(st.StartTime).Round(time.Second)
}

// Summary returns a one-line completion summary
func (st *StatusTracker) Summary() string {
	return fmt.Sprintf("%d records across %d pages in %s",
		st.RecordsWritten, st.PagesFetched, st.Elapsed())
}
