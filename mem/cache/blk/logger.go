package blk

import (
	"github.com/sarchlab/cacheblk/instrumentation/debug"
	"github.com/sarchlab/cacheblk/sim/hooking"
)

// Levels at which StateChangeLogger prints.
const (
	StateChangeLevel    = 1
	MonitorDiscardLevel = 2
)

// StateChangeLogger is a hook that prints block transitions to a debug sink
// under the Cache flag.
type StateChangeLogger struct {
	sink *debug.Sink
}

// NewStateChangeLogger creates a StateChangeLogger that writes to sink.
func NewStateChangeLogger(sink *debug.Sink) *StateChangeLogger {
	return &StateChangeLogger{sink: sink}
}

// Func prints the transition carried by ctx.
func (l *StateChangeLogger) Func(ctx hooking.HookCtx) {
	switch ctx.Pos {
	case HookPosStateChange:
		if !l.sink.Enabled(debug.Cache, StateChangeLevel) {
			return
		}

		c := ctx.Item.(StateChange)
		l.sink.Printf(debug.Cache, StateChangeLevel,
			"%d: %s: %s", c.Time, c.Domain, c)
	case HookPosMonitorDiscard:
		if !l.sink.Enabled(debug.Cache, MonitorDiscardLevel) {
			return
		}

		d := ctx.Item.(MonitorDiscard)
		l.sink.Printf(debug.Cache, MonitorDiscardLevel,
			"%d: %s: %s", d.Time, d.Domain, d)
	}
}
