package store_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hackgods/care-console/internal/store"
)

type noteFields struct {
	Title string
	Tags  []string
}

type note struct {
	ID     int64
	Fields noteFields
	State  string
}

var noteKind = store.Kind[note, noteFields]{
	Name: "note",
	New: func(id int64, f noteFields) note {
		return note{ID: id, Fields: f, State: "open"}
	},
	Replace: func(rec *note, f noteFields) { rec.Fields = f },
	ID:      func(n note) int64 { return n.ID },
	SetID:   func(n *note, id int64) { n.ID = id },
	Clone: func(n note) note {
		n.Fields.Tags = append([]string(nil), n.Fields.Tags...)
		return n
	},
}

func fixedClock() func() time.Time {
	t := time.Date(2024, 6, 25, 9, 0, 0, 0, time.UTC)
	return func() time.Time { return t }
}

func TestCreate_AssignsUniqueIDsAndInitialState(t *testing.T) {
	s := store.New(noteKind, store.WithClock(fixedClock()))

	seen := make(map[int64]bool)
	for i := 0; i < 50; i++ {
		n := s.Create(noteFields{Title: "n"})
		require.False(t, seen[n.ID], "duplicate id %d", n.ID)
		seen[n.ID] = true
		assert.Equal(t, "open", n.State)
	}
	assert.Equal(t, 50, s.Len())
}

func TestCreate_IDsNeverReusedAfterDelete(t *testing.T) {
	s := store.New(noteKind, store.WithClock(fixedClock()))

	a := s.Create(noteFields{Title: "a"})
	b := s.Create(noteFields{Title: "b"})
	require.True(t, s.Delete(b.ID))

	c := s.Create(noteFields{Title: "c"})
	assert.NotEqual(t, a.ID, c.ID)
	assert.NotEqual(t, b.ID, c.ID)
}

func TestUpdate_ReplacesFieldsAndKeepsOthersUnchanged(t *testing.T) {
	s := store.New(noteKind)
	a := s.Create(noteFields{Title: "a"})
	b := s.Create(noteFields{Title: "b"})
	s.Patch(b.ID, func(n *note) { n.State = "closed" })

	updated, ok := s.Update(b.ID, noteFields{Title: "b2", Tags: []string{"x"}})
	require.True(t, ok)
	assert.Equal(t, "closed", updated.State)

	list := s.List()
	require.Len(t, list, 2)
	assert.Equal(t, a, list[0])
	assert.Equal(t, b.ID, list[1].ID)
	assert.Equal(t, noteFields{Title: "b2", Tags: []string{"x"}}, list[1].Fields)
}

func TestUpdate_UnknownIDIsNoop(t *testing.T) {
	s := store.New(noteKind)
	s.Create(noteFields{Title: "a"})
	before := s.List()

	_, ok := s.Update(42, noteFields{Title: "zzz"})
	assert.False(t, ok)
	assert.Equal(t, before, s.List())
}

func TestPatch_ChangesOnlyTouchedFields(t *testing.T) {
	s := store.New(noteKind)
	n := s.Create(noteFields{Title: "a", Tags: []string{"t"}})

	patched, ok := s.Patch(n.ID, func(rec *note) {
		rec.State = "closed"
		rec.ID = 999
	})
	require.True(t, ok)
	assert.Equal(t, n.ID, patched.ID)
	assert.Equal(t, "closed", patched.State)
	assert.Equal(t, n.Fields, patched.Fields)

	_, ok = s.Patch(12345, func(rec *note) { rec.State = "x" })
	assert.False(t, ok)
}

func TestDelete_RemovesExactlyOneAndIsIdempotent(t *testing.T) {
	s := store.New(noteKind)
	a := s.Create(noteFields{Title: "a"})
	b := s.Create(noteFields{Title: "b"})
	c := s.Create(noteFields{Title: "c"})

	require.True(t, s.Delete(b.ID))
	assert.Equal(t, 2, s.Len())
	assert.False(t, s.Delete(b.ID))
	assert.Equal(t, 2, s.Len())

	list := s.List()
	assert.Equal(t, []int64{a.ID, c.ID}, []int64{list[0].ID, list[1].ID})
}

func TestList_ReturnsSnapshot(t *testing.T) {
	s := store.New(noteKind)
	n := s.Create(noteFields{Title: "a", Tags: []string{"keep"}})

	list := s.List()
	list[0].Fields.Title = "mutated"
	list[0].Fields.Tags[0] = "mutated"

	got, ok := s.Get(n.ID)
	require.True(t, ok)
	assert.Equal(t, "a", got.Fields.Title)
	assert.Equal(t, []string{"keep"}, got.Fields.Tags)
	assert.Equal(t, 1, s.Len())
}

func TestObserver_ReceivesMutations(t *testing.T) {
	var events []store.Event
	s := store.New(noteKind, store.WithObserver(func(ev store.Event) {
		events = append(events, ev)
	}))

	n := s.Create(noteFields{Title: "a"})
	s.Update(n.ID, noteFields{Title: "b"})
	s.Apply(n.ID, store.ActionStatusChanged, func(rec *note) { rec.State = "closed" })
	s.Delete(n.ID)
	s.Delete(n.ID)

	require.Len(t, events, 4)
	assert.Equal(t, store.ActionCreated, events[0].Action)
	assert.Equal(t, store.ActionUpdated, events[1].Action)
	assert.Equal(t, store.ActionStatusChanged, events[2].Action)
	assert.Equal(t, store.ActionDeleted, events[3].Action)
	for _, ev := range events {
		assert.Equal(t, "note", ev.Kind)
		assert.Equal(t, n.ID, ev.EntityID)
	}
}
