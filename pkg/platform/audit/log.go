package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ListStore is the slice of the key-value capability the audit log needs.
type ListStore interface {
	Append(ctx context.Context, key string, value []byte) error
	List(ctx context.Context, key string) ([][]byte, error)
}

// Log is an append-only audit trail persisted as an ordered list of JSON
// records under a single key.
type Log struct {
	store ListStore
	key   string
}

func NewLog(store ListStore, key string) *Log {
	return &Log{store: store, key: key}
}

// Append fills in a missing ID or timestamp and persists the entry.
func (l *Log) Append(ctx context.Context, entry Entry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}
	payload, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshal audit entry: %w", err)
	}
	if err := l.store.Append(ctx, l.key, payload); err != nil {
		return fmt.Errorf("append audit entry: %w", err)
	}
	return nil
}

// Entries returns all readable entries in insertion order. Records that
// fail to decode are skipped; the count of skipped records is returned so
// callers can log it.
func (l *Log) Entries(ctx context.Context) ([]Entry, int, error) {
	raw, err := l.store.List(ctx, l.key)
	if err != nil {
		return nil, 0, fmt.Errorf("list audit entries: %w", err)
	}
	entries := make([]Entry, 0, len(raw))
	skipped := 0
	for _, item := range raw {
		var e Entry
		if err := json.Unmarshal(item, &e); err != nil {
			skipped++
			continue
		}
		entries = append(entries, e)
	}
	return entries, skipped, nil
}
