// Package blk models a single cache block: its tag, validity, coherence bits,
// bookkeeping fields and load-locked monitors, together with the transitions
// a cache controller applies to it.
//
// Locating a block, choosing victims and deciding when to fill, invalidate or
// dirty a block are the cache controller's job. A block only guards its own
// invariants. Misuse, such as inserting into a valid block, panics.
//
// Every transition that changes the coherence label raises a hook at
// HookPosStateChange on the block's Domain. Hooks such as StateChangeLogger
// and StateChangeRecorder turn those into trace lines or database rows.
package blk
