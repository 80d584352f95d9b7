// Package events implements the solve-lifecycle event timeline: an
// in-process, in-memory record of what the planner did and when, for
// post-solve diagnostics and for structured logging. There is no
// persistence or cross-process bus here, that stays out of scope, just
// the event *shape* and a synchronous dispatcher, with the
// store/subscription machinery a full event-sourcing system would need
// stripped to what a single solve run actually uses.
package events

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Event is one timeline entry in a planning run.
type Event struct {
	Type      string
	Stream    string // e.g. the rolling-horizon window ID, or "global"
	Data      interface{}
	Timestamp time.Time
}

// Handler reacts to events as they are emitted. There is no CanHandle
// filter predicate: every handler here is cheap enough to just receive
// everything and ignore what it doesn't care about.
type Handler interface {
	Handle(Event)
}

// Recorder collects every event emitted during a run (the solve-event
// timeline the rolling-horizon driver and solver adapter both append to)
// and fans each one out to registered handlers synchronously. Every
// Recorder carries a RunID, a solve-request correlation identifier distinct
// from any plan artifact's own deterministic ID (batch/shipment IDs stay
// reproducible per spec; the RunID exists only to tie together the log
// lines and events of one invocation of the pipeline).
type Recorder struct {
	log      *zap.Logger
	RunID    uuid.UUID
	handlers []Handler
	events   []Event
}

// NewRecorder builds a Recorder backed by log for structured output, with a
// freshly generated RunID.
func NewRecorder(log *zap.Logger) *Recorder {
	return &Recorder{log: log, RunID: uuid.New()}
}

// Subscribe registers h to receive every future event.
func (r *Recorder) Subscribe(h Handler) {
	r.handlers = append(r.handlers, h)
}

// Emit appends the event to the timeline, logs it, and notifies handlers.
func (r *Recorder) Emit(eventType, stream string, data interface{}) {
	e := Event{Type: eventType, Stream: stream, Data: data, Timestamp: time.Now()}
	r.events = append(r.events, e)

	if r.log != nil {
		r.log.Info("planning event",
			zap.String("run_id", r.RunID.String()),
			zap.String("type", eventType),
			zap.String("stream", stream),
			zap.Any("data", data),
		)
	}
	for _, h := range r.handlers {
		h.Handle(e)
	}
}

// Timeline returns every event recorded so far, in emission order.
func (r *Recorder) Timeline() []Event {
	return append([]Event(nil), r.events...)
}
