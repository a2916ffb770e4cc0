package stream

import (
	"context"

	"github.com/rs/zerolog"
)

// LogSink writes changes to a logger.
type LogSink struct {
	logger zerolog.Logger
}

// NewLogSink creates a sink that logs each change at info level.
func NewLogSink(logger zerolog.Logger) *LogSink {
	return &LogSink{logger: logger}
}

// Publish logs the change. Images are logged only at debug level.
func (s *LogSink) Publish(_ context.Context, c Change) error {
	ev := s.logger.Info().
		Str("event_id", c.EventID).
		Str("kind", string(c.Kind)).
		Str("op", string(c.Op)).
		Str("pk", c.Key.PK).
		Str("sk", c.Key.SK)
	if c.New != nil {
		ev = ev.Str("updated_at", string(c.New.Meta().UpdatedAt))
	}
	ev.Msg("change")

	if e := s.logger.Debug(); e.Enabled() {
		e.Interface("new", c.New).Interface("old", c.Old).Str("event_id", c.EventID).Msg("change images")
	}
	return nil
}

// SinkFunc adapts a function to a Sink.
type SinkFunc func(ctx context.Context, change Change) error

// Publish calls f(ctx, change).
func (f SinkFunc) Publish(ctx context.Context, change Change) error {
	return f(ctx, change)
}
