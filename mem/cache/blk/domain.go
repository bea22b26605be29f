package blk

import (
	"github.com/sarchlab/cacheblk/sim/hooking"
	"github.com/sarchlab/cacheblk/sim/timing"
)

// A Domain groups the blocks of one cache. The blocks share the domain's
// clock and raise their hooks through it.
type Domain struct {
	*hooking.HookableBase

	name       string
	timeTeller timing.TimeTeller
}

// Name returns the name of the domain, usually the name of the cache.
func (d *Domain) Name() string {
	return d.name
}

// CurrentTime returns the current cycle of the domain's clock.
func (d *Domain) CurrentTime() timing.VTimeInCycle {
	return d.timeTeller.CurrentTime()
}

// NewBlock returns an invalid block that belongs to the domain.
func (d *Domain) NewBlock() *Block {
	b := &Block{domain: d}
	b.reset()

	return b
}

// NewBlocks returns n invalid blocks that belong to the domain.
func (d *Domain) NewBlocks(n int) []*Block {
	blocks := make([]*Block, n)
	for i := range blocks {
		blocks[i] = d.NewBlock()
	}

	return blocks
}

func (d *Domain) hooked() bool {
	return d.NumHooks() > 0
}

func (d *Domain) raiseStateChange(b *Block, tag uint64, from, to State, op Op) {
	if from == to || !d.hooked() {
		return
	}

	d.InvokeHook(hooking.HookCtx{
		Domain: d,
		Pos:    HookPosStateChange,
		Item: StateChange{
			Time:   d.CurrentTime(),
			Domain: d.name,
			Tag:    tag,
			From:   from,
			To:     to,
			Op:     op,
		},
		Detail: b,
	})
}

func (d *Domain) raiseMonitorDiscard(b *Block, tag uint64, m Monitor, op Op) {
	if !d.hooked() {
		return
	}

	d.InvokeHook(hooking.HookCtx{
		Domain: d,
		Pos:    HookPosMonitorDiscard,
		Item: MonitorDiscard{
			Time:    d.CurrentTime(),
			Domain:  d.name,
			Tag:     tag,
			Monitor: m,
			Op:      op,
		},
		Detail: b,
	})
}
