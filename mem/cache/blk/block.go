package blk

import (
	"fmt"

	"github.com/sarchlab/cacheblk/mem"
	"github.com/sarchlab/cacheblk/sim/timing"
)

// A Block is the state of one cache line.
//
// An invalid block holds the sentinel value in every bookkeeping field, has
// both coherence bits cleared, no monitors and a zero reference count. A
// Block is not safe for concurrent mutation; the owning controller applies at
// most one operation at a time.
//
// Blocks must be created with Domain.NewBlock. The zero Block does not hold
// the sentinels and has no clock, and Insert panics on it.
type Block struct {
	domain *Domain

	tag        uint64
	valid      bool
	dirty      bool
	writable   bool
	secure     bool
	prefetched bool

	refCount       int
	srcRequestorID mem.RequestorID
	taskID         mem.TaskID
	partitionID    mem.PartitionID
	tickInserted   timing.VTimeInCycle
	whenReady      timing.VTimeInCycle

	monitors []Monitor
}

// Domain returns the domain that the block belongs to.
func (b *Block) Domain() *Domain {
	return b.domain
}

// Tag returns the tag of the block. It is mem.InvalidAddr when the block is
// invalid.
func (b *Block) Tag() uint64 {
	return b.tag
}

// IsValid tells if the block holds data.
func (b *Block) IsValid() bool {
	return b.valid
}

// IsDirty tells if the block holds data not yet written back.
func (b *Block) IsDirty() bool {
	return b.dirty
}

// IsWritable tells if the block may be written without asking other holders.
func (b *Block) IsWritable() bool {
	return b.writable
}

// IsSecure tells if the block belongs to the secure address space.
func (b *Block) IsSecure() bool {
	return b.secure
}

// WasPrefetched tells if the block was brought in by a prefetch and has not
// been used since.
func (b *Block) WasPrefetched() bool {
	return b.prefetched
}

// Bits returns a snapshot of the raw flags.
func (b *Block) Bits() Bits {
	return Bits{
		Valid:    b.valid,
		Writable: b.writable,
		Dirty:    b.dirty,
		Secure:   b.secure,
	}
}

// State returns the coherence label of the block.
func (b *Block) State() State {
	return b.Bits().State()
}

// RefCount returns the number of references since the block was inserted.
func (b *Block) RefCount() int {
	return b.refCount
}

// SrcRequestorID returns the requestor that brought the block in.
func (b *Block) SrcRequestorID() mem.RequestorID {
	return b.srcRequestorID
}

// TaskID returns the task the block is attributed to.
func (b *Block) TaskID() mem.TaskID {
	return b.taskID
}

// PartitionID returns the partition the block belongs to.
func (b *Block) PartitionID() mem.PartitionID {
	return b.partitionID
}

// TickInserted returns the cycle of the last insertion.
func (b *Block) TickInserted() timing.VTimeInCycle {
	return b.tickInserted
}

// WhenReady returns the cycle at which the data of the block can be used.
func (b *Block) WhenReady() timing.VTimeInCycle {
	return b.whenReady
}

// IsReady tells if the data of the block can be used at cycle now.
func (b *Block) IsReady(now timing.VTimeInCycle) bool {
	return b.valid && now >= b.whenReady
}

// Age returns the number of cycles since the block was inserted. An invalid
// block has no age.
func (b *Block) Age() timing.VTimeInCycle {
	if !b.valid {
		return 0
	}

	return b.domain.CurrentTime() - b.tickInserted
}

// SetWritable sets the writable bit. The change is the coherence protocol's
// decision and is not recorded.
func (b *Block) SetWritable() {
	b.mustBeValid("set writable")
	b.writable = true
}

// ClearWritable clears the writable bit without recording.
func (b *Block) ClearWritable() {
	b.writable = false
}

// SetSecure marks the block as secure. It is a fill-time attribute and can
// only be set before Insert.
func (b *Block) SetSecure() {
	if b.valid {
		panic(fmt.Sprintf(
			"blk: cannot change the security of valid block %#x", b.tag))
	}

	b.secure = true
}

// SetPrefetched marks that the block was brought in by a prefetch.
func (b *Block) SetPrefetched() {
	b.mustBeValid("set prefetched")
	b.prefetched = true
}

// ClearPrefetched marks that the prefetched block has been used.
func (b *Block) ClearPrefetched() {
	b.prefetched = false
}

// SetWhenReady sets the cycle at which the data of the block becomes usable.
func (b *Block) SetWhenReady(t timing.VTimeInCycle) {
	b.mustBeValid("set ready time")

	if t < b.tickInserted {
		panic(fmt.Sprintf(
			"blk: block %#x cannot be ready at %d, before insertion at %d",
			b.tag, t, b.tickInserted))
	}

	b.whenReady = t
}

func (b *Block) mustBeValid(action string) {
	if !b.valid {
		panic("blk: cannot " + action + " on an invalid block")
	}
}

// reset puts every field of the block to its invalid sentinel.
func (b *Block) reset() {
	b.tag = mem.InvalidAddr
	b.valid = false
	b.secure = false
	b.prefetched = false
	b.dirty = false
	b.writable = false
	b.taskID = mem.UnknownTaskID
	b.partitionID = mem.MaxPartitionID
	b.whenReady = timing.FarFuture
	b.refCount = 0
	b.srcRequestorID = mem.InvalidRequestorID
	b.monitors = nil
}
