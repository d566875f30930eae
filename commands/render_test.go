package commands

import (
	"bytes"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"

	"github.com/pivotal-cf/pw-alert/scanners"
	"github.com/pivotal-cf/pw-alert/strength"
)

var _ = Describe("Rendering", func() {
	DescribeTable("meter",
		func(score int, expected string) {
			Expect(meter(score)).To(Equal(expected))
		},
		Entry("empty", 0, "[░░░░░░░░░░░░░░░░░░░░]"),
		Entry("half", 50, "[██████████░░░░░░░░░░]"),
		Entry("rounds down", 54, "[██████████░░░░░░░░░░]"),
		Entry("full", 100, "[████████████████████]"),
	)

	It("renders an analysis with its feedback", func() {
		buf := &bytes.Buffer{}

		renderAnalysis(buf, strength.Analysis{
			Score:     80,
			Level:     strength.Strong,
			Entropy:   79,
			CrackTime: "centuries",
			Feedback: []strength.Feedback{
				{Message: "Good length (12-15 characters)", Type: strength.Success},
				{Message: "Add more character types (e.g., symbols, numbers)", Type: strength.Warning},
			},
		})

		Expect(buf.String()).To(Equal(
			"Strength:      [████████████████░░░░] Strong 80/100\n" +
				"Time to crack: centuries\n" +
				"Entropy:       79 bits\n" +
				"\n" +
				"✅ Good length (12-15 characters)\n" +
				"⚠️ Add more character types (e.g., symbols, numbers)\n",
		))
	})

	It("renders the empty state", func() {
		buf := &bytes.Buffer{}
		renderEmpty(buf)

		Expect(buf.String()).To(ContainSubstring("Enter a password"))
		Expect(buf.String()).To(ContainSubstring("Time to crack: N/A"))
		Expect(buf.String()).To(ContainSubstring("Entropy:       N/A"))
	})
})

var _ = Describe("auditReport", func() {
	var report *auditReport

	record := func(path string, number int, content string, level strength.Level, score int) {
		report.Record(
			scanners.Line{Path: path, LineNumber: number, Content: content},
			strength.Analysis{Level: level, Score: score},
		)
	}

	BeforeEach(func() {
		report = newAuditReport(false)
	})

	It("sorts by source and line and counts every level", func() {
		record("b.txt", 1, "hunter2", strength.VeryWeak, 0)
		record("a.txt", 2, "Tr0ub4dor&3", strength.Medium, 55)
		record("a.txt", 1, "password", strength.VeryWeak, 0)

		buf := &bytes.Buffer{}
		report.Write(buf)

		Expect(buf.String()).To(Equal(
			"[VERY WEAK] a.txt:1 0/100 [p*******]\n" +
				"[MEDIUM] a.txt:2 55/100 [T**********]\n" +
				"[VERY WEAK] b.txt:1 0/100 [h******]\n" +
				"\n" +
				"Audited 3 passwords from 2 sources\n" +
				"  Very Weak:   2\n" +
				"  Weak:        0\n" +
				"  Medium:      1\n" +
				"  Strong:      0\n" +
				"  Very Strong: 0\n",
		))
	})

	It("shows passwords when asked to", func() {
		report = newAuditReport(true)
		record("a.txt", 1, "password", strength.VeryWeak, 0)

		buf := &bytes.Buffer{}
		report.Write(buf)

		Expect(buf.String()).To(ContainSubstring("a.txt:1 0/100 [password]"))
	})
})
