package audit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type listStore struct {
	items     map[string][][]byte
	appendErr error
	listErr   error
}

func newListStore() *listStore {
	return &listStore{items: make(map[string][][]byte)}
}

func (s *listStore) Append(_ context.Context, key string, value []byte) error {
	if s.appendErr != nil {
		return s.appendErr
	}
	s.items[key] = append(s.items[key], value)
	return nil
}

func (s *listStore) List(_ context.Context, key string) ([][]byte, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.items[key], nil
}

func TestLog_AppendAndEntries(t *testing.T) {
	ctx := context.Background()
	store := newListStore()
	log := NewLog(store, "audit")

	ts := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, log.Append(ctx, Entry{ID: "one", Title: "t1", Body: "b1", Timestamp: ts, Reason: "r1"}))
	require.NoError(t, log.Append(ctx, Entry{Title: "t2", Body: "b2", Reason: "r2"}))

	entries, skipped, err := log.Entries(ctx)
	require.NoError(t, err)
	assert.Zero(t, skipped)
	require.Len(t, entries, 2)

	assert.Equal(t, "one", entries[0].ID)
	assert.True(t, ts.Equal(entries[0].Timestamp))
	assert.Equal(t, "t2", entries[1].Title)
	assert.NotEmpty(t, entries[1].ID, "missing ID is generated")
	assert.False(t, entries[1].Timestamp.IsZero(), "missing timestamp is filled")
}

func TestLog_SkipsUnreadableRecords(t *testing.T) {
	ctx := context.Background()
	store := newListStore()
	store.items["audit"] = [][]byte{[]byte("{not json"), []byte(`{"id":"ok","title":"t"}`)}

	entries, skipped, err := NewLog(store, "audit").Entries(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, skipped)
	require.Len(t, entries, 1)
	assert.Equal(t, "ok", entries[0].ID)
}

func TestLog_StoreErrors(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")

	store := newListStore()
	store.appendErr = boom
	err := NewLog(store, "audit").Append(ctx, Entry{Title: "t"})
	assert.ErrorIs(t, err, boom)

	store = newListStore()
	store.listErr = boom
	_, _, err = NewLog(store, "audit").Entries(ctx)
	assert.ErrorIs(t, err, boom)
}
