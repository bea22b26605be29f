package timing

import (
	"log"
	"reflect"

	"github.com/sarchlab/cacheblk/sim/hooking"
)

// EventLogger is a hook that prints the event information before each event
// is handled.
type EventLogger struct {
	logger *log.Logger
}

// NewEventLogger returns a new EventLogger which will write in to the logger.
func NewEventLogger(logger *log.Logger) *EventLogger {
	h := new(EventLogger)
	h.logger = logger

	return h
}

// Func writes the event information into the logger.
func (h *EventLogger) Func(ctx hooking.HookCtx) {
	if ctx.Pos != HookPosBeforeEvent {
		return
	}

	evt, ok := ctx.Item.(ScheduledEvent)
	if !ok {
		return
	}

	if evt.Handler == nil {
		h.logger.Printf("%d, %s", evt.Time, reflect.TypeOf(evt.Event))
		return
	}

	h.logger.Printf("%d, %s -> %s",
		evt.Time, reflect.TypeOf(evt.Event), reflect.TypeOf(evt.Handler))
}
