package blk

import (
	"fmt"
	"math"

	"github.com/sarchlab/cacheblk/mem"
)

// A Monitor is a load-locked reservation that an execution context holds on
// an address range inside a block. HighAddr is inclusive.
type Monitor struct {
	RequestorID mem.RequestorID
	ContextID   int
	LowAddr     uint64
	HighAddr    uint64
}

func (m Monitor) String() string {
	return fmt.Sprintf("r%s/c%d [%#x, %#x]",
		m.RequestorID, m.ContextID, m.LowAddr, m.HighAddr)
}

// Overlaps tells if the monitor shares at least one byte with [low, high].
func (m Monitor) Overlaps(low, high uint64) bool {
	return m.LowAddr <= high && low <= m.HighAddr
}

// Covers tells if the monitor contains all of [low, high].
func (m Monitor) Covers(low, high uint64) bool {
	return m.LowAddr <= low && high <= m.HighAddr
}

func (m Monitor) sameOwner(requestor mem.RequestorID, context int) bool {
	return m.RequestorID == requestor && m.ContextID == context
}

// A WriteAccess describes a store to a block, for checking against the
// monitors.
type WriteAccess struct {
	RequestorID mem.RequestorID
	ContextID   int
	Addr        uint64
	Size        uint64

	// Conditional marks a store-conditional.
	Conditional bool
}

// lastAddr returns the last byte written. The range must not be empty and
// must not run past the end of the address space.
func (w WriteAccess) lastAddr() uint64 {
	if w.Size == 0 {
		panic(fmt.Sprintf("blk: zero-sized write to %#x", w.Addr))
	}

	if w.Size-1 > math.MaxUint64-w.Addr {
		panic(fmt.Sprintf("blk: write of %d bytes at %#x wraps around",
			w.Size, w.Addr))
	}

	return w.Addr + w.Size - 1
}

// NumMonitors returns the number of monitors on the block.
func (b *Block) NumMonitors() int {
	return len(b.monitors)
}

// Monitors returns a copy of the monitors, oldest first.
func (b *Block) Monitors() []Monitor {
	out := make([]Monitor, len(b.monitors))
	copy(out, b.monitors)

	return out
}

// TrackLoadLocked registers a monitor for a load-locked access. A context
// holds at most one monitor per block; a new one replaces the old one and
// moves to the end of the list. The block must be valid.
func (b *Block) TrackLoadLocked(m Monitor) {
	b.mustBeValid("track load-locked")

	if m.HighAddr < m.LowAddr {
		panic(fmt.Sprintf("blk: monitor %s has an empty range", m))
	}

	b.removeMonitors(func(old Monitor) bool {
		return old.sameOwner(m.RequestorID, m.ContextID)
	}, "")
	b.monitors = append(b.monitors, m)
}

// CheckWrite tells if a write may proceed and updates the monitors.
//
// A store-conditional succeeds only if its own context holds a monitor that
// covers the written range; a failed one changes nothing. A write that
// proceeds drops every monitor overlapping the written range, including the
// writer's own.
func (b *Block) CheckWrite(w WriteAccess) bool {
	last := w.lastAddr()

	if w.Conditional && !b.holdsMonitor(w, last) {
		return false
	}

	b.removeMonitors(func(m Monitor) bool {
		return m.Overlaps(w.Addr, last)
	}, OpWrite)

	return true
}

func (b *Block) holdsMonitor(w WriteAccess, last uint64) bool {
	for _, m := range b.monitors {
		if m.sameOwner(w.RequestorID, w.ContextID) && m.Covers(w.Addr, last) {
			return true
		}
	}

	return false
}

// removeMonitors drops the monitors matching drop, keeping the order of the
// rest. A non-empty op raises each dropped monitor.
func (b *Block) removeMonitors(drop func(Monitor) bool, op Op) {
	kept := make([]Monitor, 0, len(b.monitors))

	for _, m := range b.monitors {
		if !drop(m) {
			kept = append(kept, m)
			continue
		}

		if op != "" {
			b.domain.raiseMonitorDiscard(b, b.tag, m, op)
		}
	}

	b.monitors = kept
}
