// Package replay applies scripted operations to a cache block on a serial
// engine.
package replay

import (
	"fmt"
	"io"

	"github.com/sarchlab/cacheblk/blkstate/script"
	"github.com/sarchlab/cacheblk/mem"
	"github.com/sarchlab/cacheblk/mem/cache/blk"
	"github.com/sarchlab/cacheblk/sim/timing"
)

// A Replayer is the handler of scripted operations. It plays the role of the
// cache controller that owns the block.
type Replayer struct {
	engine timing.EventScheduler
	block  *blk.Block
	out    io.Writer
}

// New creates a Replayer that drives block and writes print output to out.
func New(engine timing.EventScheduler, block *blk.Block, out io.Writer) *Replayer {
	return &Replayer{
		engine: engine,
		block:  block,
		out:    out,
	}
}

// Schedule puts every operation of the script on the engine.
func (r *Replayer) Schedule(s *script.Script) {
	for _, op := range s.Ops {
		r.engine.Schedule(timing.ScheduledEvent{
			Event:   op,
			Time:    timing.VTimeInCycle(op.At),
			Handler: r,
		})
	}
}

// Handle applies one operation. A block precondition violation is returned
// as an error, which stops the engine.
func (r *Replayer) Handle(event any) (err error) {
	op, ok := event.(*script.Op)
	if !ok {
		return fmt.Errorf("unknown event type: %T", event)
	}

	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("%s: %v", op.Kind, p)
		}
	}()

	r.apply(op)

	return nil
}

func (r *Replayer) apply(op *script.Op) {
	b := r.block

	switch op.Kind {
	case script.Insert:
		b.Insert(*op.Tag,
			mem.RequestorID(op.Requestor),
			mem.TaskID(op.Task),
			mem.PartitionID(op.Partition))
	case script.Invalidate:
		b.Invalidate()
	case script.SetDirty:
		b.SetDirty()
	case script.ClearDirty:
		b.ClearDirty()
	case script.SetWritable:
		b.SetWritable()
	case script.ClearWritable:
		b.ClearWritable()
	case script.SetSecure:
		b.SetSecure()
	case script.SetPrefetched:
		b.SetPrefetched()
	case script.SetReady:
		b.SetWhenReady(timing.VTimeInCycle(*op.Ready))
	case script.LoadLocked:
		b.TrackLoadLocked(blk.Monitor{
			RequestorID: mem.RequestorID(op.Requestor),
			ContextID:   op.Context,
			LowAddr:     *op.Addr,
			HighAddr:    *op.Addr + op.Size - 1,
		})
	case script.Write:
		r.write(op)
	case script.Print:
		b.Print(r.out, op.Verbosity, op.Prefix)
	default:
		panic(fmt.Sprintf("unsupported op %q", op.Kind))
	}
}

func (r *Replayer) write(op *script.Op) {
	ok := r.block.CheckWrite(blk.WriteAccess{
		RequestorID: mem.RequestorID(op.Requestor),
		ContextID:   op.Context,
		Addr:        *op.Addr,
		Size:        op.Size,
		Conditional: op.Conditional,
	})

	if !ok {
		fmt.Fprintf(r.out, "%d: store-conditional to %#x by r%d/c%d failed\n",
			r.engine.CurrentTime(), *op.Addr, op.Requestor, op.Context)
		return
	}

	r.block.SetDirty()
}
