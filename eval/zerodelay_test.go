package eval_test

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/MatinHosseinianFard/logicbench/algebra"
	"github.com/MatinHosseinianFard/logicbench/eval"
	"github.com/MatinHosseinianFard/logicbench/netlist"
)

const andNetlist = `
1 a inpt 1 0
2 b inpt 1 0
3 n1 and 0 2
1 2
`

var _ = Describe("Run", func() {
	It("evaluates a 2-input AND over a topological pass", func() {
		nl, err := netlist.ParseISCAS(strings.NewReader(andNetlist))
		Expect(err).NotTo(HaveOccurred())

		err = eval.Run(nl, map[int]algebra.Value{1: algebra.One, 2: algebra.One})
		Expect(err).NotTo(HaveOccurred())

		out, _ := nl.Gate(3)
		Expect(out.Output).To(Equal(algebra.One))
	})

	It("produces 0 when any input is 0", func() {
		nl, err := netlist.ParseISCAS(strings.NewReader(andNetlist))
		Expect(err).NotTo(HaveOccurred())

		Expect(eval.Run(nl, map[int]algebra.Value{1: algebra.Zero, 2: algebra.One})).To(Succeed())

		out, _ := nl.Gate(3)
		Expect(out.Output).To(Equal(algebra.Zero))
	})

	It("leaves primary inputs absent from the assignment unchanged", func() {
		nl, err := netlist.ParseISCAS(strings.NewReader(andNetlist))
		Expect(err).NotTo(HaveOccurred())

		a, _ := nl.Gate(1)
		a.Output = algebra.One

		Expect(eval.Run(nl, map[int]algebra.Value{2: algebra.One})).To(Succeed())
		Expect(a.Output).To(Equal(algebra.One))
	})

	It("rejects an address that isn't a primary input", func() {
		nl, err := netlist.ParseISCAS(strings.NewReader(andNetlist))
		Expect(err).NotTo(HaveOccurred())

		err = eval.Run(nl, map[int]algebra.Value{3: algebra.One})
		Expect(err).To(HaveOccurred())
	})
})
