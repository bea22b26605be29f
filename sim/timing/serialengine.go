package timing

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/sarchlab/cacheblk/sim/hooking"
)

// SerialEngine processes scheduled events one after another in time order.
type SerialEngine struct {
	*hooking.HookableBase

	timeLock sync.RWMutex
	now      VTimeInCycle

	queue          *eventQueue
	secondaryQueue *eventQueue

	singleRunLock sync.Mutex
}

// NewSerialEngine creates a SerialEngine.
func NewSerialEngine() *SerialEngine {
	return &SerialEngine{
		HookableBase:   hooking.NewHookableBase(),
		queue:          newEventQueue(),
		secondaryQueue: newEventQueue(),
	}
}

// Schedule registers an event to be handled in the future. Scheduling an event
// in the past is a programming error and panics.
func (e *SerialEngine) Schedule(evt ScheduledEvent) {
	now := e.readNow()
	if evt.Time < now {
		panic(fmt.Sprintf(
			"timing: cannot schedule event in the past, evt %s @ %d, now %d",
			reflect.TypeOf(evt.Event), evt.Time, now,
		))
	}

	if evt.IsSecondary {
		e.secondaryQueue.Push(evt)
		return
	}

	e.queue.Push(evt)
}

func (e *SerialEngine) readNow() VTimeInCycle {
	e.timeLock.RLock()
	t := e.now
	e.timeLock.RUnlock()

	return t
}

func (e *SerialEngine) writeNow(t VTimeInCycle) {
	e.timeLock.Lock()
	e.now = t
	e.timeLock.Unlock()
}

// Run processes all scheduled events until the queues are empty. It stops at
// the first handler that returns an error and returns that error.
func (e *SerialEngine) Run() error {
	e.singleRunLock.Lock()
	defer e.singleRunLock.Unlock()

	for !e.noMoreEvent() {
		evt := e.nextEvent()
		e.writeNow(evt.Time)

		hookCtx := hooking.HookCtx{
			Domain: e,
			Pos:    HookPosBeforeEvent,
			Item:   *evt,
		}
		e.InvokeHook(hookCtx)

		if evt.Handler != nil {
			if err := evt.Handler.Handle(evt.Event); err != nil {
				return fmt.Errorf("cycle %d: %w", evt.Time, err)
			}
		}

		hookCtx.Pos = HookPosAfterEvent
		e.InvokeHook(hookCtx)
	}

	return nil
}

func (e *SerialEngine) noMoreEvent() bool {
	return e.queue.Len() == 0 && e.secondaryQueue.Len() == 0
}

func (e *SerialEngine) nextEvent() *ScheduledEvent {
	if e.queue.Len() == 0 {
		return e.secondaryQueue.Pop()
	}

	if e.secondaryQueue.Len() == 0 {
		return e.queue.Pop()
	}

	if e.queue.Peek().Time <= e.secondaryQueue.Peek().Time {
		return e.queue.Pop()
	}

	return e.secondaryQueue.Pop()
}

// CurrentTime returns the cycle of the most recently executed event.
func (e *SerialEngine) CurrentTime() VTimeInCycle {
	return e.readNow()
}

var _ EventScheduler = (*SerialEngine)(nil)
