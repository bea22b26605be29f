package blk

import (
	"github.com/sarchlab/cacheblk/sim/hooking"
	"github.com/sarchlab/cacheblk/sim/timing"
)

// A Builder can build block domains.
type Builder struct {
	timeTeller timing.TimeTeller
}

// MakeBuilder returns a Builder with default parameters.
func MakeBuilder() Builder {
	return Builder{}
}

// WithTimeTeller sets the clock that stamps insertions and transition
// records.
func (b Builder) WithTimeTeller(t timing.TimeTeller) Builder {
	b.timeTeller = t
	return b
}

// Build creates a domain with the given name.
func (b Builder) Build(name string) *Domain {
	if b.timeTeller == nil {
		panic("blk: a time teller is required to build a domain")
	}

	return &Domain{
		HookableBase: hooking.NewHookableBase(),
		name:         name,
		timeTeller:   b.timeTeller,
	}
}
