package audit

import "time"

// Entry records a delivered suggestion notification. Entries are appended,
// never mutated; insertion order is chronological order.
type Entry struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Timestamp time.Time `json:"timestamp"`
	Reason    string    `json:"reason"`
}
