package timing

import "github.com/sarchlab/cacheblk/sim/hooking"

// Handler processes events. Events are plain data; handlers type-switch on
// them:
//
//	func (h *MyHandler) Handle(event any) error {
//	    switch e := event.(type) {
//	    case *MyEvent:
//	        // handle MyEvent
//	    default:
//	        return fmt.Errorf("unknown event type: %T", e)
//	    }
//	    return nil
//	}
type Handler interface {
	Handle(event any) error
}

// EventScheduler schedules events in the simulation timeline.
type EventScheduler interface {
	TimeTeller
	Schedule(event ScheduledEvent)
}

// ScheduledEvent is the engine-facing wrapper for user-defined events.
type ScheduledEvent struct {
	// Event is the payload delivered to the handler.
	Event any

	// Time is the cycle when the event should be processed.
	Time VTimeInCycle

	// Handler is the object that processes this event.
	Handler Handler

	// IsSecondary events run after all primary events of the same cycle.
	IsSecondary bool
}

// HookPosBeforeEvent is a hook position that triggers before handling an
// event.
var HookPosBeforeEvent = &hooking.HookPos{Name: "BeforeEvent"}

// HookPosAfterEvent is a hook position that triggers after handling an event.
var HookPosAfterEvent = &hooking.HookPos{Name: "AfterEvent"}
