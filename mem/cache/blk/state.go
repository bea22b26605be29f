package blk

// State is the coherence label of a cache block.
type State int

// The four coherence labels.
const (
	Invalid State = iota
	Shared
	Exclusive
	Modified
)

// DeriveState maps the validity and coherence bits of a block to its label.
// It is the only place where the label is computed.
func DeriveState(valid, dirty, writable bool) State {
	switch {
	case !valid:
		return Invalid
	case dirty:
		return Modified
	case writable:
		return Exclusive
	default:
		return Shared
	}
}

// String returns the one-letter label.
func (s State) String() string {
	switch s {
	case Invalid:
		return "I"
	case Shared:
		return "S"
	case Exclusive:
		return "E"
	case Modified:
		return "M"
	default:
		return "?"
	}
}

// Name returns the full name of the label.
func (s State) Name() string {
	switch s {
	case Invalid:
		return "Invalid"
	case Shared:
		return "Shared"
	case Exclusive:
		return "Exclusive"
	case Modified:
		return "Modified"
	default:
		return "Unknown"
	}
}

// Bits is a snapshot of the raw flags of a block. Both the coherence label and
// the print view are computed from a Bits value, so the two never disagree.
type Bits struct {
	Valid    bool
	Writable bool
	Dirty    bool
	Secure   bool
}

// State returns the coherence label of the snapshot.
func (b Bits) State() State {
	return DeriveState(b.Valid, b.Dirty, b.Writable)
}

// String returns the 4-column flag view, in the order valid, exclusive
// (writable), modified (dirty), secure. Cleared columns print as '-'.
func (b Bits) String() string {
	return string([]byte{
		mark(b.Valid, 'V'),
		mark(b.Writable, 'E'),
		mark(b.Dirty, 'M'),
		mark(b.Secure, 'S'),
	})
}

func mark(set bool, c byte) byte {
	if set {
		return c
	}

	return '-'
}
