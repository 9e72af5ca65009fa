package store

import (
	"sync"
	"time"
)

type Action string

const (
	ActionCreated       Action = "created"
	ActionUpdated       Action = "updated"
	ActionPatched       Action = "patched"
	ActionStatusChanged Action = "status_changed"
	ActionDeleted       Action = "deleted"
)

// Event describes one successful mutation of a store.
type Event struct {
	Kind     string
	Action   Action
	EntityID int64
	Record   any
	At       time.Time
}

// Kind tells a Store how to build and edit records of one entity kind.
// T is the record, F the editable fields (everything but id and status).
type Kind[T, F any] struct {
	Name    string
	New     func(id int64, fields F) T // must apply the kind's initial status
	Replace func(rec *T, fields F)     // must leave id and status untouched
	ID      func(T) int64
	SetID   func(rec *T, id int64)
	Clone   func(T) T // optional, for records holding slices or maps
}

type options struct {
	now     func() time.Time
	observe func(Event)
}

type Option func(*options)

// WithClock overrides the clock used for identifiers and event timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithObserver registers a callback invoked after every successful mutation.
func WithObserver(fn func(Event)) Option {
	return func(o *options) { o.observe = fn }
}

// Store is the authoritative in-memory ordered collection of one entity kind.
// Operations on an unknown id are no-ops and report false.
type Store[T, F any] struct {
	mu     sync.RWMutex
	kind   Kind[T, F]
	items  []T
	lastID int64
	opts   options
}

func New[T, F any](kind Kind[T, F], opts ...Option) *Store[T, F] {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return &Store[T, F]{kind: kind, opts: o}
}

func (s *Store[T, F]) Kind() string {
	return s.kind.Name
}

// Create assigns a fresh identifier, applies the kind's initial status and
// appends the record.
func (s *Store[T, F]) Create(fields F) T {
	s.mu.Lock()
	id := s.nextID()
	rec := s.kind.New(id, fields)
	s.kind.SetID(&rec, id)
	s.items = append(s.items, rec)
	out := s.clone(rec)
	s.mu.Unlock()

	s.emit(ActionCreated, id, out)
	return out
}

// Update replaces every non-identifier field of the record with fields.
// Status is preserved.
func (s *Store[T, F]) Update(id int64, fields F) (T, bool) {
	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		var zero T
		return zero, false
	}
	s.kind.Replace(&s.items[i], fields)
	out := s.clone(s.items[i])
	s.mu.Unlock()

	s.emit(ActionUpdated, id, out)
	return out, true
}

// Patch runs fn against the stored record; fields fn does not touch keep
// their values. The identifier cannot be changed through a patch.
func (s *Store[T, F]) Patch(id int64, fn func(*T)) (T, bool) {
	return s.Apply(id, ActionPatched, fn)
}

// Apply is Patch with an explicit action recorded on the emitted event.
func (s *Store[T, F]) Apply(id int64, action Action, fn func(*T)) (T, bool) {
	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		var zero T
		return zero, false
	}
	rec := s.clone(s.items[i])
	fn(&rec)
	s.kind.SetID(&rec, id)
	s.items[i] = rec
	out := s.clone(rec)
	s.mu.Unlock()

	s.emit(action, id, out)
	return out, true
}

func (s *Store[T, F]) Delete(id int64) bool {
	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		return false
	}
	removed := s.items[i]
	s.items = append(s.items[:i:i], s.items[i+1:]...)
	s.mu.Unlock()

	s.emit(ActionDeleted, id, removed)
	return true
}

func (s *Store[T, F]) Get(id int64) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		var zero T
		return zero, false
	}
	return s.clone(s.items[i]), true
}

// List returns a copy of all records in insertion order.
func (s *Store[T, F]) List() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]T, len(s.items))
	for i, rec := range s.items {
		out[i] = s.clone(rec)
	}
	return out
}

func (s *Store[T, F]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// nextID derives ids from the clock in milliseconds, bumped past the last
// issued value so they never repeat. Caller holds mu.
func (s *Store[T, F]) nextID() int64 {
	id := s.opts.now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

func (s *Store[T, F]) indexOf(id int64) int {
	for i, rec := range s.items {
		if s.kind.ID(rec) == id {
			return i
		}
	}
	return -1
}

func (s *Store[T, F]) clone(rec T) T {
	if s.kind.Clone == nil {
		return rec
	}
	return s.kind.Clone(rec)
}

func (s *Store[T, F]) emit(action Action, id int64, rec T) {
	if s.opts.observe == nil {
		return
	}
	s.opts.observe(Event{
		Kind:     s.kind.Name,
		Action:   action,
		EntityID: id,
		Record:   rec,
		At:       s.opts.now(),
	})
}
