package cmd

import (
	"fmt"
	"io"
	"log"

	"github.com/sarchlab/cacheblk/blkstate/replay"
	"github.com/sarchlab/cacheblk/blkstate/script"
	"github.com/sarchlab/cacheblk/datarecording"
	"github.com/sarchlab/cacheblk/instrumentation/debug"
	"github.com/sarchlab/cacheblk/mem/cache/blk"
	"github.com/sarchlab/cacheblk/sim/timing"
)

// A session wires one block to an engine, a debug sink and, optionally, a
// data recorder.
type session struct {
	engine   *timing.SerialEngine
	block    *blk.Block
	replayer *replay.Replayer
	recorder datarecording.DataRecorder
	out      io.Writer
}

func newSession(s *script.Script, opts options, out io.Writer) *session {
	engine := timing.NewSerialEngine()

	sink := debug.NewSink(log.New(out, "", 0))
	sink.Enable(debug.ParseFlags(opts.debugFlags)...)
	sink.SetVerbosity(opts.verbosity)

	if sink.Enabled(debug.Event, 1) {
		engine.AcceptHook(timing.NewEventLogger(sink.Logger))
	}

	domain := blk.MakeBuilder().
		WithTimeTeller(engine).
		Build(s.Domain)
	domain.AcceptHook(blk.NewStateChangeLogger(sink))

	ss := &session{
		engine: engine,
		block:  domain.NewBlock(),
		out:    out,
	}

	if opts.dbPath != "" {
		ss.recorder = datarecording.New(opts.dbPath)
		domain.AcceptHook(blk.NewStateChangeRecorder(ss.recorder))
	}

	ss.replayer = replay.New(engine, ss.block, out)
	ss.replayer.Schedule(s)

	return ss
}

func (ss *session) run() error {
	runErr := ss.engine.Run()

	fmt.Fprintf(ss.out, "final @%d: ", ss.engine.CurrentTime())
	ss.block.Print(ss.out, 2, "")

	if ss.recorder != nil {
		if err := ss.recorder.Close(); err != nil && runErr == nil {
			return fmt.Errorf("closing recorder: %w", err)
		}
	}

	return runErr
}
