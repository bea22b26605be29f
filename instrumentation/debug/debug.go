// Package debug provides a flag-filtered diagnostic sink. Components print
// trace lines under a flag; only lines whose flag is enabled and whose level
// does not exceed the sink's verbosity reach the logger.
package debug

import (
	"log"
	"strings"
	"sync"
)

// Flag names a component whose trace lines can be switched on.
type Flag string

// Known flags.
const (
	Cache Flag = "Cache"
	Event Flag = "Event"
)

// ParseFlags splits a comma-separated flag list. Blank entries are skipped.
func ParseFlags(s string) []Flag {
	var flags []Flag

	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}

		flags = append(flags, Flag(f))
	}

	return flags
}

// A Sink writes trace lines into a logger. A nil *Sink is valid and discards
// everything.
type Sink struct {
	*log.Logger

	lock      sync.RWMutex
	enabled   map[Flag]bool
	verbosity int
}

// NewSink creates a sink with no flag enabled and verbosity 1.
func NewSink(logger *log.Logger) *Sink {
	return &Sink{
		Logger:    logger,
		enabled:   make(map[Flag]bool),
		verbosity: 1,
	}
}

// Enable switches on the given flags.
func (s *Sink) Enable(flags ...Flag) {
	if s == nil {
		return
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	for _, f := range flags {
		s.enabled[f] = true
	}
}

// Disable switches off the given flags.
func (s *Sink) Disable(flags ...Flag) {
	if s == nil {
		return
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	for _, f := range flags {
		delete(s.enabled, f)
	}
}

// SetVerbosity sets the highest level that is printed.
func (s *Sink) SetVerbosity(v int) {
	if s == nil {
		return
	}

	s.lock.Lock()
	s.verbosity = v
	s.lock.Unlock()
}

// Verbosity returns the highest level that is printed.
func (s *Sink) Verbosity() int {
	if s == nil {
		return 0
	}

	s.lock.RLock()
	defer s.lock.RUnlock()

	return s.verbosity
}

// Enabled tells if a line under flag at level would be printed.
func (s *Sink) Enabled(flag Flag, level int) bool {
	if s == nil || s.Logger == nil {
		return false
	}

	s.lock.RLock()
	defer s.lock.RUnlock()

	return s.enabled[flag] && level <= s.verbosity
}

// Printf prints a trace line if the flag is enabled at the given level.
// Arguments are not formatted otherwise.
func (s *Sink) Printf(flag Flag, level int, format string, args ...any) {
	if !s.Enabled(flag, level) {
		return
	}

	s.Logger.Printf("%s: "+format, append([]any{flag}, args...)...)
}
