package blk

import (
	"fmt"

	"github.com/sarchlab/cacheblk/sim/hooking"
	"github.com/sarchlab/cacheblk/sim/timing"
)

// HookPosStateChange is raised when a transition changes the coherence label
// of a block. The item is a StateChange and the detail is the *Block.
var HookPosStateChange = &hooking.HookPos{Name: "BlockStateChange"}

// HookPosMonitorDiscard is raised for every load-locked monitor a block drops,
// either because the block is invalidated or because a write clears it. The
// item is a MonitorDiscard and the detail is the *Block.
var HookPosMonitorDiscard = &hooking.HookPos{Name: "BlockMonitorDiscard"}

// Op names the operation that caused a record.
type Op string

// Operations that produce records.
const (
	OpInsert     Op = "insert"
	OpInvalidate Op = "invalidate"
	OpSetDirty   Op = "setDirty"
	OpClearDirty Op = "clearDirty"
	OpWrite      Op = "write"
)

// StateChange records a change of coherence label.
type StateChange struct {
	Time   timing.VTimeInCycle
	Domain string
	Tag    uint64
	From   State
	To     State
	Op     Op
}

func (c StateChange) String() string {
	return fmt.Sprintf("Block %#x state change: %s -> %s (%s)",
		c.Tag, c.From, c.To, c.Op)
}

// MonitorDiscard records a monitor that a block dropped.
type MonitorDiscard struct {
	Time    timing.VTimeInCycle
	Domain  string
	Tag     uint64
	Monitor Monitor
	Op      Op
}

func (d MonitorDiscard) String() string {
	return fmt.Sprintf("Block %#x dropped monitor %s (%s)",
		d.Tag, d.Monitor, d.Op)
}
