package audit

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
)

type streamAdder interface {
	XAdd(ctx context.Context, a *redis.XAddArgs) *redis.StringCmd
}

// RedisStreamSink appends audit entries to a capped Redis stream.
type RedisStreamSink struct {
	client streamAdder
	stream string
	maxLen int64
}

func NewRedisStreamSink(client streamAdder, stream string) *RedisStreamSink {
	return &RedisStreamSink{client: client, stream: stream, maxLen: 10000}
}

func (s *RedisStreamSink) Name() string { return "redis" }

func (s *RedisStreamSink) Write(ctx context.Context, e Entry) error {
	err := s.client.XAdd(ctx, &redis.XAddArgs{
		Stream: s.stream,
		MaxLen: s.maxLen,
		Approx: true,
		Values: map[string]any{
			"kind":      e.Kind,
			"action":    e.Action,
			"entity_id": strconv.FormatInt(e.EntityID, 10),
			"payload":   string(e.Payload),
			"at":        e.At.UTC().Format("2006-01-02T15:04:05.000Z07:00"),
		},
	}).Err()
	if err != nil {
		return fmt.Errorf("xadd %s: %w", s.stream, err)
	}
	return nil
}
