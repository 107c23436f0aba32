package action

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("NullAction", func() {
	var (
		a NullAction
	)

	It("should have no name", func() {
		Expect(a.Name()).To(BeEmpty())
	})

	It("should return itself from every report", func() {
		Expect(a.ReportEvent("e")).To(Equal(a))
		Expect(a.ReportIntValue("v", 1)).To(Equal(a))
		Expect(a.ReportDoubleValue("v", 1)).To(Equal(a))
		Expect(a.ReportStringValue("v", "s")).To(Equal(a))
		Expect(a.ReportError("e", 1, "r")).To(Equal(a))
	})

	It("should give null children", func() {
		Expect(IsNull(a.EnterAction("child"))).To(BeTrue())
		Expect(IsNull(a.EnterAction(""))).To(BeTrue())
	})

	It("should return nil when left, as often as asked", func() {
		Expect(a.LeaveAction()).To(BeNil())
		Expect(a.LeaveAction()).To(BeNil())
	})

	It("should not be mistaken for a real action", func() {
		Expect(IsNull(nil)).To(BeFalse())
		Expect(IsNull(&ActionImpl{})).To(BeFalse())
	})
})
