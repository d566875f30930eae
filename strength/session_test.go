package strength_test

import (
	"context"

	"code.cloudfoundry.org/lager"
	"code.cloudfoundry.org/lager/lagertest"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/pivotal-cf/pw-alert/strength"
	"github.com/pivotal-cf/pw-alert/strength/strengthfakes"
)

var _ = Describe("Session", func() {
	var (
		evaluator *strengthfakes.FakePasswordEvaluator
		session   *strength.Session
		release   chan struct{}
	)

	BeforeEach(func() {
		release = make(chan struct{})
		evaluator = &strengthfakes.FakePasswordEvaluator{}
		evaluator.EvaluateStub = func(ctx context.Context, _ lager.Logger, password string) (strength.Analysis, error) {
			switch password {
			case "blocks":
				<-ctx.Done()
				return strength.Analysis{}, ctx.Err()
			case "slow":
				<-release
				return strength.Analysis{Score: 1}, nil
			default:
				return strength.Analysis{Score: len(password)}, nil
			}
		}

		session = strength.NewSession(evaluator, lagertest.NewTestLogger("session"))
	})

	AfterEach(func() {
		select {
		case <-release:
		default:
			close(release)
		}
		session.Close()
	})

	It("delivers the analysis of a submitted password", func() {
		session.Submit("abcd")

		var analysis strength.Analysis
		Eventually(session.Results()).Should(Receive(&analysis))
		Expect(analysis.Score).To(Equal(4))
	})

	It("cancels the evaluation of a superseded input", func() {
		session.Submit("blocks")
		Eventually(evaluator.EvaluateCallCount).Should(Equal(1))

		session.Submit("abcdef")

		var analysis strength.Analysis
		Eventually(session.Results()).Should(Receive(&analysis))
		Expect(analysis.Score).To(Equal(6))

		ctx, _, _ := evaluator.EvaluateArgsForCall(0)
		Expect(ctx.Err()).To(Equal(context.Canceled))
	})

	It("discards a result that completes after a newer input", func() {
		session.Submit("slow")
		Eventually(evaluator.EvaluateCallCount).Should(Equal(1))

		session.Submit("ab")

		var analysis strength.Analysis
		Eventually(session.Results()).Should(Receive(&analysis))
		Expect(analysis.Score).To(Equal(2))

		close(release)
		Consistently(session.Results()).ShouldNot(Receive())
	})

	It("keeps only the latest result when nobody is reading", func() {
		session.Submit("a")
		Eventually(evaluator.EvaluateCallCount).Should(Equal(1))
		session.Submit("abc")
		Eventually(evaluator.EvaluateCallCount).Should(Equal(2))

		var analysis strength.Analysis
		Eventually(func() int {
			select {
			case analysis = <-session.Results():
			default:
			}
			return analysis.Score
		}).Should(Equal(3))
	})

	It("lets the last evaluation finish when waited on", func() {
		session.Submit("blocks")
		session.Submit("abcd")
		session.Wait()

		var analysis strength.Analysis
		Expect(session.Results()).To(Receive(&analysis))
		Expect(analysis.Score).To(Equal(4))
	})

	Describe("Close", func() {
		It("closes the results channel", func() {
			session.Close()
			Expect(session.Results()).To(BeClosed())
		})

		It("cancels the evaluation in flight", func() {
			session.Submit("blocks")
			Eventually(evaluator.EvaluateCallCount).Should(Equal(1))

			session.Close()

			ctx, _, _ := evaluator.EvaluateArgsForCall(0)
			Expect(ctx.Err()).To(HaveOccurred())
		})

		It("ignores submissions afterwards", func() {
			session.Close()
			session.Submit("abc")

			Consistently(evaluator.EvaluateCallCount).Should(BeZero())
		})
	})
})
