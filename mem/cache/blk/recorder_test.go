package blk

import (
	"database/sql"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/sarchlab/cacheblk/datarecording"
	"github.com/sarchlab/cacheblk/sim/timing"
)

var _ = Describe("StateChangeRecorder", func() {
	var (
		mockCtrl *gomock.Controller
		db       *sql.DB
		recorder *StateChangeRecorder
		block    *Block
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		timeTeller := NewMockTimeTeller(mockCtrl)
		timeTeller.EXPECT().CurrentTime().Return(timing.VTimeInCycle(10)).AnyTimes()

		var err error
		db, err = sql.Open("sqlite3", ":memory:")
		Expect(err).NotTo(HaveOccurred())
		db.SetMaxOpenConns(1)

		recorder = NewStateChangeRecorder(datarecording.NewWithDB(db))

		domain := MakeBuilder().WithTimeTeller(timeTeller).Build("L1")
		domain.AcceptHook(recorder)
		block = domain.NewBlock()
	})

	AfterEach(func() {
		db.Close()
		mockCtrl.Finish()
	})

	It("should store state changes", func() {
		block.Insert(0x40, 3, 7, 0)
		block.SetWritable()
		block.SetDirty()
		recorder.Flush()

		rows, err := db.Query(
			"SELECT Time, Domain, Tag, FromState, ToState, Op FROM " +
				StateChangeTable + " ORDER BY rowid")
		Expect(err).NotTo(HaveOccurred())
		defer rows.Close()

		var got []string
		for rows.Next() {
			var (
				time                     int64
				domain, tag, from, to, op string
			)
			Expect(rows.Scan(&time, &domain, &tag, &from, &to, &op)).To(Succeed())
			Expect(time).To(Equal(int64(10)))
			Expect(domain).To(Equal("L1"))
			Expect(tag).To(Equal("0x40"))
			got = append(got, from+">"+to+":"+op)
		}

		Expect(got).To(Equal([]string{"I>S:insert", "E>M:setDirty"}))
	})

	It("should store dropped monitors", func() {
		block.Insert(0x40, 3, 7, 0)
		block.TrackLoadLocked(Monitor{
			RequestorID: 3, ContextID: 1, LowAddr: 0x40, HighAddr: 0x47,
		})
		block.Invalidate()
		recorder.Flush()

		var (
			requestor, context int
			low, op            string
		)
		err := db.QueryRow(
			"SELECT RequestorID, ContextID, LowAddr, Op FROM " +
				MonitorDiscardTable).Scan(&requestor, &context, &low, &op)

		Expect(err).NotTo(HaveOccurred())
		Expect(requestor).To(Equal(3))
		Expect(context).To(Equal(1))
		Expect(low).To(Equal("0x40"))
		Expect(op).To(Equal("invalidate"))
	})
})
