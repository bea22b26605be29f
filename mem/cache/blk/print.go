package blk

import (
	"fmt"
	"io"
	"strings"

	"github.com/sarchlab/cacheblk/sim/timing"
)

// FlagString returns the 4-column flag view of the block, for example "VE--"
// for a valid, writable, clean, non-secure block.
func (b *Block) FlagString() string {
	return b.Bits().String()
}

// Print writes the flag view of the block in one line, starting with prefix.
// Verbosity 1 adds the coherence label and the tag. Verbosity 2 adds the
// bookkeeping fields. Print never changes the block.
//
// Printing is best-effort: the view is written in one call and a write error
// is dropped, like a trace line that the log output cannot take.
func (b *Block) Print(w io.Writer, verbosity int, prefix string) {
	bits := b.Bits()

	var sb strings.Builder

	fmt.Fprintf(&sb, "%sblk %s", prefix, bits)

	if verbosity >= 1 {
		fmt.Fprintf(&sb, " state: %s tag: %#x", bits.State(), b.tag)
	}

	if verbosity >= 2 {
		fmt.Fprintf(&sb,
			" refs: %d requestor: %s task: %s partition: %s"+
				" inserted: %d ready: %s monitors: %d",
			b.refCount, b.srcRequestorID, b.taskID, b.partitionID,
			b.tickInserted, formatTime(b.whenReady), len(b.monitors))
	}

	sb.WriteByte('\n')

	_, _ = io.WriteString(w, sb.String())
}

func (b *Block) String() string {
	bits := b.Bits()

	return fmt.Sprintf(
		"state: %s (%s) tag: %#x prefetched: %t refs: %d"+
			" requestor: %s task: %s partition: %s ready: %s",
		bits.State(), bits, b.tag, b.prefetched, b.refCount,
		b.srcRequestorID, b.taskID, b.partitionID, formatTime(b.whenReady))
}

func formatTime(t timing.VTimeInCycle) string {
	if t == timing.FarFuture {
		return "never"
	}

	return fmt.Sprintf("%d", t)
}
