package faultlist_test

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/MatinHosseinianFard/logicbench/algebra"
	"github.com/MatinHosseinianFard/logicbench/atpg"
	"github.com/MatinHosseinianFard/logicbench/faultlist"
)

var _ = Describe("ParseYAML", func() {
	It("parses a faults list with \"0\"/\"1\" stuck-at spellings", func() {
		input := `
faults:
  - net: n1
    stuck_at: "0"
  - net: n2
    stuck_at: "1"
`
		faults, err := faultlist.ParseYAML(strings.NewReader(input))
		Expect(err).NotTo(HaveOccurred())
		Expect(faults).To(Equal([]atpg.Fault{
			{NetName: "n1", StuckAt: algebra.Zero},
			{NetName: "n2", StuckAt: algebra.One},
		}))
	})

	It("returns no faults for an empty document", func() {
		faults, err := faultlist.ParseYAML(strings.NewReader(""))
		Expect(err).NotTo(HaveOccurred())
		Expect(faults).To(BeEmpty())
	})

	It("rejects an unknown field", func() {
		input := "faults:\n  - net: n1\n    polarity: high\n"
		_, err := faultlist.ParseYAML(strings.NewReader(input))
		Expect(err).To(HaveOccurred())
	})

	It("rejects a stuck_at value other than \"0\" or \"1\"", func() {
		input := "faults:\n  - net: n1\n    stuck_at: \"high\"\n"
		_, err := faultlist.ParseYAML(strings.NewReader(input))
		Expect(err).To(HaveOccurred())
	})
})
