package audit

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/hackgods/care-console/internal/care"
	"github.com/hackgods/care-console/internal/store"
)

type recordingSink struct {
	mu      sync.Mutex
	entries []Entry
	err     error
}

func (s *recordingSink) Name() string { return "recording" }

func (s *recordingSink) Write(_ context.Context, e Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, e)
	return s.err
}

func TestDispatcher_FansOutStoreEvents(t *testing.T) {
	first := &recordingSink{}
	failing := &recordingSink{err: errors.New("down")}
	d := NewDispatcher(zap.NewNop(), 16, failing, first)

	appts := care.NewAppointmentStore(store.WithObserver(d.Observe))
	a := appts.Create(care.AppointmentFields{PatientName: "Maria", Date: "2024-06-25"})
	_, _, err := care.SetAppointmentStatus(appts, a.ID, care.StatusConfirmed)
	require.NoError(t, err)
	appts.Delete(a.ID)

	d.Close()
	d.Close()

	require.Len(t, first.entries, 3)
	assert.Len(t, failing.entries, 3, "a failing sink must not stop delivery")
	assert.Equal(t, "appointment", first.entries[0].Kind)
	assert.Equal(t, string(store.ActionCreated), first.entries[0].Action)
	assert.Equal(t, string(store.ActionStatusChanged), first.entries[1].Action)
	assert.Equal(t, string(store.ActionDeleted), first.entries[2].Action)

	var rec care.Appointment
	require.NoError(t, json.Unmarshal(first.entries[1].Payload, &rec))
	assert.Equal(t, care.StatusConfirmed, rec.Status)
	assert.Equal(t, a.ID, rec.ID)
}

func TestDispatcher_ObserveAfterCloseIsIgnored(t *testing.T) {
	sink := &recordingSink{}
	d := NewDispatcher(zap.NewNop(), 1, sink)
	d.Close()

	d.Observe(store.Event{Kind: "employee", Action: store.ActionCreated, EntityID: 1})
	assert.Empty(t, sink.entries)
}

type fakeStream struct {
	args []*redis.XAddArgs
}

func (f *fakeStream) XAdd(_ context.Context, a *redis.XAddArgs) *redis.StringCmd {
	f.args = append(f.args, a)
	return redis.NewStringResult("1-0", nil)
}

func TestRedisStreamSink_Write(t *testing.T) {
	fs := &fakeStream{}
	s := NewRedisStreamSink(fs, "care:audit")

	err := s.Write(context.Background(), Entry{
		Kind:     "medication",
		Action:   "status_changed",
		EntityID: 42,
		Payload:  json.RawMessage(`{"status":"paused"}`),
		At:       time.Date(2024, 6, 25, 12, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	require.Len(t, fs.args, 1)
	assert.Equal(t, "care:audit", fs.args[0].Stream)
	assert.True(t, fs.args[0].Approx)
	values := fs.args[0].Values.(map[string]any)
	assert.Equal(t, "42", values["entity_id"])
	assert.Equal(t, `{"status":"paused"}`, values["payload"])
}

type fakeExec struct {
	sql  []string
	args [][]any
	err  error
}

func (f *fakeExec) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.sql = append(f.sql, sql)
	f.args = append(f.args, args)
	return pgconn.NewCommandTag("INSERT 0 1"), f.err
}

func TestPostgresSink_Write(t *testing.T) {
	db := &fakeExec{}
	s := NewPostgresSink(db)

	require.NoError(t, s.EnsureSchema(context.Background()))
	require.NoError(t, s.Write(context.Background(), Entry{Kind: "resident", Action: "deleted", EntityID: 7}))

	require.Len(t, db.args, 2)
	assert.Contains(t, db.sql[0], "CREATE TABLE IF NOT EXISTS event_logs")
	args := db.args[1]
	assert.Equal(t, "resident", args[0])
	assert.Equal(t, "deleted", args[1])
	assert.Equal(t, int64(7), args[2])
	assert.Nil(t, args[3])
	assert.Nil(t, args[4])

	db.err = errors.New("connection reset")
	assert.Error(t, s.Write(context.Background(), Entry{Kind: "resident"}))
}
