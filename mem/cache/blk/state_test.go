package blk

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("State", func() {
	DescribeTable("deriving the label from the bits",
		func(valid, dirty, writable bool, expected State) {
			Expect(DeriveState(valid, dirty, writable)).To(Equal(expected))
		},
		Entry("invalid", false, false, false, Invalid),
		Entry("invalid ignores dirty", false, true, false, Invalid),
		Entry("invalid ignores writable", false, false, true, Invalid),
		Entry("invalid ignores both", false, true, true, Invalid),
		Entry("shared", true, false, false, Shared),
		Entry("exclusive", true, false, true, Exclusive),
		Entry("modified", true, true, true, Modified),
		Entry("modified without writable", true, true, false, Modified),
	)

	It("should print one-letter labels", func() {
		Expect(Invalid.String()).To(Equal("I"))
		Expect(Shared.String()).To(Equal("S"))
		Expect(Exclusive.String()).To(Equal("E"))
		Expect(Modified.String()).To(Equal("M"))
		Expect(State(42).String()).To(Equal("?"))
	})

	It("should print full names", func() {
		Expect(Invalid.Name()).To(Equal("Invalid"))
		Expect(Modified.Name()).To(Equal("Modified"))
		Expect(State(-1).Name()).To(Equal("Unknown"))
	})

	Context("bits", func() {
		It("should derive the label through DeriveState", func() {
			bits := Bits{Valid: true, Writable: true, Secure: true}
			Expect(bits.State()).To(Equal(Exclusive))
		})

		It("should ignore secure when deriving the label", func() {
			Expect(Bits{Valid: true, Secure: true}.State()).To(Equal(Shared))
			Expect(Bits{Secure: true}.State()).To(Equal(Invalid))
		})

		DescribeTable("flag view",
			func(bits Bits, expected string) {
				Expect(bits.String()).To(Equal(expected))
			},
			Entry("empty", Bits{}, "----"),
			Entry("valid exclusive", Bits{Valid: true, Writable: true}, "VE--"),
			Entry("valid modified",
				Bits{Valid: true, Writable: true, Dirty: true}, "VEM-"),
			Entry("all", Bits{true, true, true, true}, "VEMS"),
			Entry("secure only", Bits{Secure: true}, "---S"),
		)
	})
})
