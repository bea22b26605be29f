package blk

import (
	"fmt"

	"github.com/sarchlab/cacheblk/datarecording"
	"github.com/sarchlab/cacheblk/sim/hooking"
)

// Tables written by StateChangeRecorder.
const (
	StateChangeTable    = "block_state_changes"
	MonitorDiscardTable = "block_monitor_discards"
)

type stateChangeEntry struct {
	Time      int64
	Domain    string
	Tag       string
	FromState string
	ToState   string
	Op        string
}

type monitorDiscardEntry struct {
	Time        int64
	Domain      string
	Tag         string
	RequestorID int
	ContextID   int
	LowAddr     string
	HighAddr    string
	Op          string
}

// StateChangeRecorder is a hook that stores block transitions and dropped
// monitors into a DataRecorder.
type StateChangeRecorder struct {
	recorder datarecording.DataRecorder
}

// NewStateChangeRecorder creates the recorder tables and returns the hook.
func NewStateChangeRecorder(
	recorder datarecording.DataRecorder,
) *StateChangeRecorder {
	recorder.CreateTable(StateChangeTable, stateChangeEntry{})
	recorder.CreateTable(MonitorDiscardTable, monitorDiscardEntry{})

	return &StateChangeRecorder{recorder: recorder}
}

// Func buffers the record carried by ctx.
func (r *StateChangeRecorder) Func(ctx hooking.HookCtx) {
	switch ctx.Pos {
	case HookPosStateChange:
		c := ctx.Item.(StateChange)
		r.recorder.InsertData(StateChangeTable, stateChangeEntry{
			Time:      int64(c.Time),
			Domain:    c.Domain,
			Tag:       hex(c.Tag),
			FromState: c.From.String(),
			ToState:   c.To.String(),
			Op:        string(c.Op),
		})
	case HookPosMonitorDiscard:
		d := ctx.Item.(MonitorDiscard)
		r.recorder.InsertData(MonitorDiscardTable, monitorDiscardEntry{
			Time:        int64(d.Time),
			Domain:      d.Domain,
			Tag:         hex(d.Tag),
			RequestorID: int(d.Monitor.RequestorID),
			ContextID:   d.Monitor.ContextID,
			LowAddr:     hex(d.Monitor.LowAddr),
			HighAddr:    hex(d.Monitor.HighAddr),
			Op:          string(d.Op),
		})
	}
}

// Flush writes the buffered records.
func (r *StateChangeRecorder) Flush() {
	r.recorder.Flush()
}

func hex(v uint64) string {
	return fmt.Sprintf("%#x", v)
}
