// Package script reads block operation scripts. A script is a TOML file that
// lists the operations a cache controller applies to one block, each at a
// given cycle:
//
//	domain = "L1"
//
//	[[ops]]
//	at = 10
//	kind = "insert"
//	tag = 0x40
//	requestor = 3
//	task = 7
//
//	[[ops]]
//	at = 12
//	kind = "set-dirty"
package script

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/BurntSushi/toml"
)

// Kind names an operation.
type Kind string

// Supported operations.
const (
	Insert        Kind = "insert"
	Invalidate    Kind = "invalidate"
	SetDirty      Kind = "set-dirty"
	ClearDirty    Kind = "clear-dirty"
	SetWritable   Kind = "set-writable"
	ClearWritable Kind = "clear-writable"
	SetSecure     Kind = "set-secure"
	SetPrefetched Kind = "set-prefetched"
	SetReady      Kind = "set-ready"
	LoadLocked    Kind = "load-locked"
	Write         Kind = "write"
	Print         Kind = "print"
)

var kinds = map[Kind]bool{
	Insert: true, Invalidate: true, SetDirty: true, ClearDirty: true,
	SetWritable: true, ClearWritable: true, SetSecure: true,
	SetPrefetched: true, SetReady: true, LoadLocked: true, Write: true,
	Print: true,
}

// Op is one scripted operation. Which fields are used depends on Kind.
type Op struct {
	At   uint64 `toml:"at"`
	Kind Kind   `toml:"kind"`

	// insert
	Tag       *uint64 `toml:"tag"`
	Requestor uint16  `toml:"requestor"`
	Task      uint32  `toml:"task"`
	Partition uint64  `toml:"partition"`

	// load-locked, write
	Context     int     `toml:"context"`
	Addr        *uint64 `toml:"addr"`
	Size        uint64  `toml:"size"`
	Conditional bool    `toml:"conditional"`

	// set-ready
	Ready *uint64 `toml:"ready"`

	// print
	Verbosity int    `toml:"verbosity"`
	Prefix    string `toml:"prefix"`
}

// Script is a decoded operation script.
type Script struct {
	Domain string `toml:"domain"`
	Ops    []*Op  `toml:"ops"`
}

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid script")

// Parse decodes and validates a script.
func Parse(data string) (*Script, error) {
	s := &Script{}

	md, err := toml.Decode(data, s)
	if err != nil {
		return nil, fmt.Errorf("decoding script: %w", err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: unknown key %q", ErrInvalid, undecoded[0].String())
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}

	return s, nil
}

// Load reads, decodes and validates a script file.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading script: %w", err)
	}

	s, err := Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return s, nil
}

// Validate checks every operation and fills defaults.
func (s *Script) Validate() error {
	if s.Domain == "" {
		s.Domain = "Cache"
	}

	for i, op := range s.Ops {
		if err := op.validate(); err != nil {
			return fmt.Errorf("%w: op %d (%s at %d): %s",
				ErrInvalid, i, op.Kind, op.At, err)
		}
	}

	return nil
}

func (op *Op) validate() error {
	if !kinds[op.Kind] {
		return errors.New("unknown kind")
	}

	switch op.Kind {
	case Insert:
		if op.Tag == nil {
			return errors.New("tag is required")
		}
	case LoadLocked, Write:
		if op.Addr == nil {
			return errors.New("addr is required")
		}

		if op.Size == 0 {
			op.Size = 1
		}

		if op.Size-1 > math.MaxUint64-*op.Addr {
			return errors.New("range wraps around the address space")
		}
	case SetReady:
		if op.Ready == nil {
			return errors.New("ready is required")
		}
	}

	return nil
}
