// Package timing provides the logical clock and the discrete-event engine
// that drive cache models.
package timing

import "math"

// VTimeInCycle is a point in simulated time, counted in cycles.
type VTimeInCycle uint64

// FarFuture is a time that no simulation ever reaches. It marks timestamps
// that are not set, such as when the data of an empty cache line is ready.
const FarFuture = VTimeInCycle(math.MaxUint64)

// TimeTeller exposes the current simulation cycle.
type TimeTeller interface {
	CurrentTime() VTimeInCycle
}
