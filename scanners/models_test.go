package scanners_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/pivotal-cf/pw-alert/scanners"
)

var _ = Describe("Line", func() {
	Describe("Redacted", func() {
		It("keeps only the first character", func() {
			line := scanners.Line{Content: "hunter2"}
			Expect(line.Redacted()).To(Equal("h******"))
		})

		It("counts characters rather than bytes", func() {
			line := scanners.Line{Content: "pässwörd"}
			Expect(line.Redacted()).To(Equal("p*******"))
		})

		It("hides a single character entirely", func() {
			Expect(scanners.Line{Content: "x"}.Redacted()).To(Equal("*"))
			Expect(scanners.Line{}.Redacted()).To(Equal(""))
		})
	})
})
