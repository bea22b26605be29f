// Package mem defines the identifiers that memory-system components use to
// attribute work, and the sentinel values that mean "no such identifier".
package mem

import (
	"math"
	"strconv"
)

// InvalidAddr is the address (and tag) held by an entry that caches nothing.
const InvalidAddr = uint64(math.MaxUint64)

// RequestorID identifies the agent (core, prefetcher, DMA engine, ...) that
// issued a request.
type RequestorID uint16

// InvalidRequestorID is the requestor ID carried by nothing.
const InvalidRequestorID = RequestorID(math.MaxUint16)

// IsValid tells if the ID names a real requestor.
func (id RequestorID) IsValid() bool {
	return id != InvalidRequestorID
}

func (id RequestorID) String() string {
	if !id.IsValid() {
		return "invalid"
	}

	return strconv.FormatUint(uint64(id), 10)
}

// TaskID identifies the software context that work is attributed to.
type TaskID uint32

// Reserved task IDs. Normal tasks use IDs up to MaxNormalTaskID.
const (
	MaxNormalTaskID  TaskID = 1021
	PrefetcherTaskID TaskID = 1022
	DMATaskID        TaskID = 1023
	UnknownTaskID    TaskID = 1024
)

func (id TaskID) String() string {
	switch id {
	case PrefetcherTaskID:
		return "prefetcher"
	case DMATaskID:
		return "dma"
	case UnknownTaskID:
		return "unknown"
	default:
		return strconv.FormatUint(uint64(id), 10)
	}
}

// PartitionID identifies a resource partition, for example a cache way
// partition assigned to a group of tasks.
type PartitionID uint64

// MaxPartitionID means the line belongs to no partition.
const MaxPartitionID = PartitionID(math.MaxUint64)

func (id PartitionID) String() string {
	if id == MaxPartitionID {
		return "none"
	}

	return strconv.FormatUint(uint64(id), 10)
}
