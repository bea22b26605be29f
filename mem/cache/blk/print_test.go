package blk

import (
	"bytes"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/sarchlab/cacheblk/sim/timing"
)

type failingWriter struct {
	calls int
}

func (w *failingWriter) Write(p []byte) (int, error) {
	w.calls++
	return 0, errors.New("closed")
}

var _ = Describe("Print view", func() {
	var (
		mockCtrl *gomock.Controller
		block    *Block
		buf      *bytes.Buffer
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		timeTeller := NewMockTimeTeller(mockCtrl)
		timeTeller.EXPECT().CurrentTime().Return(timing.VTimeInCycle(10)).AnyTimes()

		block = MakeBuilder().WithTimeTeller(timeTeller).Build("L1").NewBlock()
		buf = new(bytes.Buffer)
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should mark valid and exclusive columns", func() {
		block.Insert(0x40, 3, 7, 0)
		block.SetWritable()

		Expect(block.FlagString()).To(Equal("VE--"))

		block.Print(buf, 0, "  ")
		Expect(buf.String()).To(Equal("  blk VE--\n"))
	})

	It("should print an invalid block as blank", func() {
		block.Print(buf, 0, "")

		Expect(buf.String()).To(Equal("blk ----\n"))
	})

	It("should mark secure and modified columns", func() {
		block.SetSecure()
		block.Insert(0x40, 3, 7, 0)
		block.SetDirty()

		Expect(block.FlagString()).To(Equal("V-MS"))
	})

	It("should add the label and tag at verbosity 1", func() {
		block.Insert(0x40, 3, 7, 0)
		block.SetWritable()

		block.Print(buf, 1, "> ")

		Expect(buf.String()).To(Equal("> blk VE-- state: E tag: 0x40\n"))
	})

	It("should add bookkeeping at verbosity 2", func() {
		block.Insert(0x40, 3, 7, 0)

		block.Print(buf, 2, "")

		Expect(buf.String()).To(Equal(
			"blk V--- state: S tag: 0x40 refs: 1 requestor: 3 task: 7" +
				" partition: 0 inserted: 10 ready: never monitors: 0\n"))
	})

	It("should not change the block", func() {
		block.Insert(0x40, 3, 7, 0)
		before := *block

		block.Print(buf, 2, "")
		_ = block.String()

		Expect(*block).To(Equal(before))
	})

	It("should describe itself", func() {
		block.Insert(0x40, 3, 7, 0)
		block.SetWhenReady(12)

		Expect(block.String()).To(Equal(
			"state: S (V---) tag: 0x40 prefetched: false refs: 1" +
				" requestor: 3 task: 7 partition: 0 ready: 12"))
	})

	It("should ignore write errors without touching the block", func() {
		block.Insert(0x40, 3, 7, 0)
		w := &failingWriter{}

		Expect(func() { block.Print(w, 2, "") }).NotTo(Panic())
		Expect(w.calls).To(Equal(1))
		Expect(block.FlagString()).To(Equal("V---"))
	})
})
