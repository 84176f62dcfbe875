package runconfig_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/MatinHosseinianFard/logicbench/runconfig"
)

func writeConfig(dir, contents string) string {
	path := filepath.Join(dir, "run.yaml")
	Expect(os.WriteFile(path, []byte(contents), 0o644)).To(Succeed())
	return path
}

var _ = Describe("Load", func() {
	It("parses a full run configuration", func() {
		path := writeConfig(GinkgoT().TempDir(), `
netlist: c17.bench
stimulus: stim.txt
faults: faults.txt
atpg:
  backtrack_budget: 1000
report:
  trace: trace.txt
  atpg: atpg.txt
  scoap: scoap.txt
  scoap_json: scoap.json
json_logs: true
`)
		cfg, err := runconfig.Load(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Netlist).To(Equal("c17.bench"))
		Expect(cfg.Stimulus).To(Equal("stim.txt"))
		Expect(cfg.ATPG.BacktrackBudget).To(Equal(1000))
		Expect(cfg.Report.ScoapJSON).To(Equal("scoap.json"))
		Expect(cfg.JSONLogs).To(BeTrue())
	})

	It("requires a netlist path", func() {
		path := writeConfig(GinkgoT().TempDir(), "stimulus: stim.txt\n")
		_, err := runconfig.Load(path)
		Expect(err).To(HaveOccurred())
	})

	It("rejects a missing file", func() {
		_, err := runconfig.Load(filepath.Join(GinkgoT().TempDir(), "missing.yaml"))
		Expect(err).To(HaveOccurred())
	})

	It("rejects malformed YAML", func() {
		path := writeConfig(GinkgoT().TempDir(), "netlist: [unterminated\n")
		_, err := runconfig.Load(path)
		Expect(err).To(HaveOccurred())
	})
})
