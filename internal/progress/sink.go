package progress

import "go.uber.org/zap"

// Emitter publishes individual events. The orchestrator depends on this
// interface so merge logic can be unit-tested without capturing log output.
type Emitter interface {
	Emit(evt Event)
}

// LogEmitter writes each event as a structured zap log line. It is the
// default side-channel for interactive and scheduled runs.
type LogEmitter struct {
	logger *zap.Logger
}

// NewLogEmitter wires a zap logger to the Emitter interface.
func NewLogEmitter(logger *zap.Logger) *LogEmitter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogEmitter{logger: logger}
}

// Emit logs the event using structured fields.
func (e *LogEmitter) Emit(evt Event) {
	e.logger.Info("progress event",
		zap.String("run_id", evt.RunID.String()),
		zap.String("stage", string(evt.Stage)),
		zap.String("tier", string(evt.Tier)),
		zap.String("category", evt.Category),
		zap.Int("count", evt.Count),
		zap.Duration("dur", evt.Dur),
		zap.String("note", evt.Note),
	)
}

// NopEmitter discards every event. Useful in tests that only exercise the
// merge policy.
type NopEmitter struct{}

// Emit implements the Emitter interface; it performs no action.
func (NopEmitter) Emit(Event) {}

// CollectorEmitter appends events to an in-memory slice for inspection.
// It is intended for tests and is not safe for concurrent use.
type CollectorEmitter struct {
	Events []Event
}

// Emit records the event.
func (c *CollectorEmitter) Emit(evt Event) {
	c.Events = append(c.Events, evt)
}
