package faultlist_test

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	gomock "github.com/golang/mock/gomock"

	"github.com/MatinHosseinianFard/logicbench/algebra"
	"github.com/MatinHosseinianFard/logicbench/atpg"
	"github.com/MatinHosseinianFard/logicbench/faultlist"
)

var _ = Describe("Parse", func() {
	It("parses one net/stuck-at pair per line", func() {
		faults, err := faultlist.Parse(strings.NewReader("n1 sa0\nn2 sa1\n"))
		Expect(err).NotTo(HaveOccurred())
		Expect(faults).To(Equal([]atpg.Fault{
			{NetName: "n1", StuckAt: algebra.Zero},
			{NetName: "n2", StuckAt: algebra.One},
		}))
	})

	It("skips blank lines and comments", func() {
		faults, err := faultlist.Parse(strings.NewReader("# header\n\nn1 sa0\n"))
		Expect(err).NotTo(HaveOccurred())
		Expect(faults).To(HaveLen(1))
	})

	It("rejects a line with the wrong field count", func() {
		_, err := faultlist.Parse(strings.NewReader("n1 sa0 extra\n"))
		Expect(err).To(HaveOccurred())
	})

	It("rejects an unrecognized stuck-at token", func() {
		_, err := faultlist.Parse(strings.NewReader("n1 stuck-high\n"))
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("Source", func() {
	It("is satisfied by a mock for callers that only need the interface", func() {
		ctrl := gomock.NewController(GinkgoT())
		defer ctrl.Finish()

		mockSource := NewMockSource(ctrl)
		want := []atpg.Fault{{NetName: "n1", StuckAt: algebra.Zero}}
		mockSource.EXPECT().Faults().Return(want, nil)

		got, err := mockSource.Faults()
		Expect(err).NotTo(HaveOccurred())
		Expect(got).To(Equal(want))
	})
})
