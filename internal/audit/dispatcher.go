package audit

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/hackgods/care-console/internal/store"
)

// Entry is one audit record as written to sinks.
type Entry struct {
	Kind     string          `json:"kind"`
	Action   string          `json:"action"`
	EntityID int64           `json:"entity_id"`
	Payload  json.RawMessage `json:"payload,omitempty"`
	At       time.Time       `json:"at"`
}

type Sink interface {
	Name() string
	Write(ctx context.Context, e Entry) error
}

// Dispatcher takes store events off the mutation path and fans them out to
// sinks on a single goroutine. When the queue is full new events are dropped.
type Dispatcher struct {
	log          *zap.Logger
	sinks        []Sink
	writeTimeout time.Duration

	mu     sync.Mutex
	closed bool
	queue  chan Entry
	done   chan struct{}
}

func NewDispatcher(log *zap.Logger, buffer int, sinks ...Sink) *Dispatcher {
	if buffer <= 0 {
		buffer = 1
	}
	d := &Dispatcher{
		log:          log,
		sinks:        sinks,
		writeTimeout: 2 * time.Second,
		queue:        make(chan Entry, buffer),
		done:         make(chan struct{}),
	}
	go d.run()
	return d
}

// Observe matches the store observer signature.
func (d *Dispatcher) Observe(ev store.Event) {
	payload, err := json.Marshal(ev.Record)
	if err != nil {
		d.log.Warn("failed to marshal audit payload",
			zap.String("kind", ev.Kind), zap.Int64("entity_id", ev.EntityID), zap.Error(err))
		payload = nil
	}

	e := Entry{
		Kind:     ev.Kind,
		Action:   string(ev.Action),
		EntityID: ev.EntityID,
		Payload:  payload,
		At:       ev.At,
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return
	}
	select {
	case d.queue <- e:
	default:
		d.log.Warn("audit queue full, dropping event",
			zap.String("kind", e.Kind), zap.String("action", e.Action), zap.Int64("entity_id", e.EntityID))
	}
}

// Close stops accepting events and waits for queued ones to be written.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		<-d.done
		return
	}
	d.closed = true
	close(d.queue)
	d.mu.Unlock()

	<-d.done
}

func (d *Dispatcher) run() {
	defer close(d.done)
	for e := range d.queue {
		for _, s := range d.sinks {
			ctx, cancel := context.WithTimeout(context.Background(), d.writeTimeout)
			err := s.Write(ctx, e)
			cancel()
			if err != nil {
				d.log.Error("failed to write audit event",
					zap.String("sink", s.Name()), zap.String("kind", e.Kind),
					zap.Int64("entity_id", e.EntityID), zap.Error(err))
			}
		}
	}
}

// LogSink writes audit entries to the structured log.
type LogSink struct {
	log *zap.Logger
}

func NewLogSink(log *zap.Logger) *LogSink {
	return &LogSink{log: log}
}

func (s *LogSink) Name() string { return "log" }

func (s *LogSink) Write(_ context.Context, e Entry) error {
	s.log.Info("audit",
		zap.String("kind", e.Kind),
		zap.String("action", e.Action),
		zap.Int64("entity_id", e.EntityID),
		zap.Time("at", e.At),
	)
	return nil
}
