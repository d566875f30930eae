package apply_test

import (
	"bytes"
	"crypto/sha256"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/pivotal-cf/pw-alert/apply"
)

var _ = Describe("ApplyTo", func() {
	var (
		dir    string
		target string
		next   []byte
	)

	BeforeEach(func() {
		var err error
		dir, err = os.MkdirTemp("", "apply")
		Expect(err).NotTo(HaveOccurred())

		target = filepath.Join(dir, "pw-alert")
		Expect(os.WriteFile(target, []byte("old binary"), 0755)).To(Succeed())

		next = []byte("new binary")
	})

	AfterEach(func() {
		Expect(os.RemoveAll(dir)).To(Succeed())
	})

	It("swaps in the new contents when the checksum matches", func() {
		sum := sha256.Sum256(next)

		err := apply.ApplyTo(target, bytes.NewReader(next), sum[:])
		Expect(err).NotTo(HaveOccurred())

		Expect(os.ReadFile(target)).To(Equal(next))
	})

	It("leaves the original in place when the checksum does not match", func() {
		sum := sha256.Sum256([]byte("something else"))

		err := apply.ApplyTo(target, bytes.NewReader(next), sum[:])
		Expect(err).To(HaveOccurred())

		Expect(os.ReadFile(target)).To(Equal([]byte("old binary")))
	})

	It("does not verify anything without a checksum", func() {
		err := apply.ApplyTo(target, bytes.NewReader(next), nil)
		Expect(err).NotTo(HaveOccurred())

		Expect(os.ReadFile(target)).To(Equal(next))
	})
})
