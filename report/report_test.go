package report_test

import (
	"bytes"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/MatinHosseinianFard/logicbench/algebra"
	"github.com/MatinHosseinianFard/logicbench/atpg"
	"github.com/MatinHosseinianFard/logicbench/netlist"
	"github.com/MatinHosseinianFard/logicbench/report"
	"github.com/MatinHosseinianFard/logicbench/scoap"
)

const andNetlist = `
1 a inpt 1 0
2 b inpt 1 0
3 n1 and 0 2
1 2
`

func mustParse(src string) *netlist.Netlist {
	nl, err := netlist.ParseISCAS(strings.NewReader(src))
	Expect(err).NotTo(HaveOccurred())
	return nl
}

var _ = Describe("WriteTestVectors", func() {
	It("renders one column per primary input", func() {
		nl := mustParse(andNetlist)
		var buf bytes.Buffer

		report.WriteTestVectors(&buf, nl, []algebra.Value{algebra.One, algebra.Zero})

		out := buf.String()
		Expect(out).To(ContainSubstring("Test Vectors"))
		Expect(out).To(ContainSubstring("a"))
		Expect(out).To(ContainSubstring("b"))
	})
})

var _ = Describe("WriteATPG", func() {
	It("renders sa0/sa1 and a formatted pattern for a found fault", func() {
		nl := mustParse(andNetlist)
		var buf bytes.Buffer

		report.WriteATPG(&buf, nl, []report.FaultResult{
			{Fault: atpg.Fault{NetName: "n1", StuckAt: algebra.Zero}, Pattern: []algebra.Value{algebra.One, algebra.One}, Found: true},
			{Fault: atpg.Fault{NetName: "n1", StuckAt: algebra.One}, Found: false},
		})

		out := buf.String()
		Expect(out).To(ContainSubstring("sa0"))
		Expect(out).To(ContainSubstring("sa1"))
		Expect(out).To(ContainSubstring("none found"))
	})
})

var _ = Describe("WriteScoap and WriteScoapJSON", func() {
	It("render the same CC0/CC1/CO data as a table and as JSON", func() {
		nl := mustParse(andNetlist)
		scoap.Compute(nl)

		var table bytes.Buffer
		report.WriteScoap(&table, nl)
		Expect(table.String()).To(ContainSubstring("SCOAP Report"))

		var js bytes.Buffer
		Expect(report.WriteScoapJSON(&js, nl)).To(Succeed())
		Expect(js.String()).To(ContainSubstring(`"name": "n1"`))
		Expect(js.String()).To(ContainSubstring(`"cc1": 3`))
	})
})

var _ = Describe("WriteSummary", func() {
	It("prints a one-line step count", func() {
		var buf bytes.Buffer
		report.WriteSummary(&buf, "trace", 5)
		Expect(buf.String()).To(Equal("trace: 5 steps\n"))
	})
})
