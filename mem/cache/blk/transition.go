package blk

import (
	"fmt"

	"github.com/sarchlab/cacheblk/mem"
)

// Insert fills an invalid block. The insertion counts as the first reference.
// The coherence bits are left as they are; the controller sets them.
//
// Inserting into a valid block is a controller bug and panics without
// touching the block.
func (b *Block) Insert(
	tag uint64,
	requestor mem.RequestorID,
	task mem.TaskID,
	partition mem.PartitionID,
) {
	if b.domain == nil {
		panic("blk: insert into a block not created by Domain.NewBlock")
	}

	if b.valid {
		panic(fmt.Sprintf(
			"blk: insert %#x into valid block %#x, invalidate it first",
			tag, b.tag))
	}

	from := b.State()

	b.tag = tag
	b.valid = true
	b.srcRequestorID = requestor
	b.taskID = task
	b.partitionID = partition
	b.tickInserted = b.domain.CurrentTime()
	b.refCount = 1

	b.domain.raiseStateChange(b, tag, from, b.State(), OpInsert)
}

// Invalidate empties the block and drops all its monitors. Invalidating an
// invalid block changes nothing.
//
// The caller must make sure that no atomic operation still depends on the
// block's monitors. Each dropped monitor is raised at HookPosMonitorDiscard.
func (b *Block) Invalidate() {
	from := b.State()
	tag := b.tag

	for _, m := range b.monitors {
		b.domain.raiseMonitorDiscard(b, tag, m, OpInvalidate)
	}

	b.reset()

	b.domain.raiseStateChange(b, tag, from, b.State(), OpInvalidate)
}

// SetDirty marks that the block holds data not yet written back. The block
// must be valid.
func (b *Block) SetDirty() {
	b.mustBeValid("set dirty")

	if b.dirty {
		return
	}

	from := b.State()
	b.dirty = true
	b.domain.raiseStateChange(b, b.tag, from, b.State(), OpSetDirty)
}

// ClearDirty marks that the data of the block has been written back. The
// block must be valid.
func (b *Block) ClearDirty() {
	b.mustBeValid("clear dirty")

	if !b.dirty {
		return
	}

	from := b.State()
	b.dirty = false
	b.domain.raiseStateChange(b, b.tag, from, b.State(), OpClearDirty)
}
