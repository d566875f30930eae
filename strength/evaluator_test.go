package strength_test

import (
	"context"
	"errors"
	"net/http"

	"code.cloudfoundry.org/lager"
	"code.cloudfoundry.org/lager/lagertest"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"
	"github.com/onsi/gomega/ghttp"

	"github.com/pivotal-cf/pw-alert/breach"
	"github.com/pivotal-cf/pw-alert/breach/breachfakes"
	"github.com/pivotal-cf/pw-alert/sniff"
	"github.com/pivotal-cf/pw-alert/strength"
)

var _ = Describe("Evaluator", func() {
	var (
		logger    *lagertest.TestLogger
		checker   *breachfakes.FakeChecker
		evaluator *strength.Evaluator
		ctx       context.Context
	)

	BeforeEach(func() {
		logger = lagertest.NewTestLogger("evaluator")
		checker = &breachfakes.FakeChecker{}
		checker.CheckReturns(breach.Failed(errors.New("network unreachable")))
		evaluator = strength.NewEvaluator(sniff.NewDefaultSniffer(), checker)
		ctx = context.Background()
	})

	evaluate := func(password string) strength.Analysis {
		analysis, err := evaluator.Evaluate(ctx, logger, password)
		Expect(err).NotTo(HaveOccurred())
		return analysis
	}

	It("rejects an empty password without looking it up", func() {
		_, err := evaluator.Evaluate(ctx, logger, "")
		Expect(err).To(Equal(strength.ErrEmptyPassword))
		Expect(checker.CheckCallCount()).To(BeZero())
	})

	It("passes the password to the breach checker", func() {
		evaluate("Tr0ub4dor&3")

		Expect(checker.CheckCallCount()).To(Equal(1))
		_, _, password := checker.CheckArgsForCall(0)
		Expect(password).To(Equal("Tr0ub4dor&3"))
	})

	Context("when the breach lookup fails", func() {
		It("scores only the other checks", func() {
			analysis := evaluate("Tr0ub4dor&3")

			Expect(analysis).To(Equal(strength.Analysis{
				Score:     45,
				Level:     strength.Weak,
				Entropy:   72,
				CrackTime: "centuries",
				Feedback: []strength.Feedback{
					{Message: "Minimum length of 8 characters met", Type: strength.Warning},
					{Message: "Excellent mix of character types", Type: strength.Success},
				},
			}))
		})

		It("never mentions breaches in the feedback", func() {
			for _, password := range []string{"password", "aB3$", "Xk9#mP2$vL7@nQ4&"} {
				for _, f := range evaluate(password).Feedback {
					Expect(f.Message).NotTo(ContainSubstring("breach"))
				}
			}
		})

		It("logs why the lookup was skipped", func() {
			evaluate("Tr0ub4dor&3")

			Expect(logger).To(gbytes.Say("evaluator.evaluate.breach-check-skipped"))
			Expect(logger).To(gbytes.Say("network unreachable"))
		})

		It("scores the same as when the lookup is disabled", func() {
			failed := evaluate("Mx!9vZq2Lp#5")

			evaluator = strength.NewEvaluator(sniff.NewDefaultSniffer(), breach.NewNullChecker())
			disabled := evaluate("Mx!9vZq2Lp#5")

			Expect(disabled).To(Equal(failed))
		})
	})

	Context("when the password has not been breached", func() {
		BeforeEach(func() {
			checker.CheckReturns(breach.NotFound())
		})

		It("adds 5 points and a success item at the end", func() {
			analysis := evaluate("Tr0ub4dor&3")

			Expect(analysis.Score).To(Equal(50))
			Expect(analysis.Level).To(Equal(strength.Medium))
			Expect(analysis.Feedback).To(HaveLen(3))
			Expect(analysis.Feedback[2]).To(Equal(strength.Feedback{
				Message: "Not found in known data breaches",
				Type:    strength.Success,
			}))
		})

		It("rates a long mixed password as very strong", func() {
			analysis := evaluate("Xk9#mP2$vL7@nQ4&")

			Expect(analysis.Score).To(Equal(95))
			Expect(analysis.Level).To(Equal(strength.VeryStrong))
			Expect(analysis.Entropy).To(Equal(105))
			Expect(analysis.CrackTime).To(Equal("centuries"))
		})

		It("moves a medium password up to strong", func() {
			analysis := evaluate("Mx!9vZq2Lp#5")

			Expect(analysis.Score).To(Equal(75))
			Expect(analysis.Level).To(Equal(strength.Strong))
		})
	})

	Context("when the password has been breached", func() {
		BeforeEach(func() {
			checker.CheckReturns(breach.Found(3))
		})

		It("takes 50 points and reports the count", func() {
			analysis := evaluate("Tr0ub4dor&3")

			Expect(analysis.Score).To(Equal(0))
			Expect(analysis.Level).To(Equal(strength.VeryWeak))
			Expect(analysis.Feedback).To(ContainElement(strength.Feedback{
				Message: "This password has appeared in 3 data breaches",
				Type:    strength.Error,
			}))
		})

		It("formats large counts with thousands separators", func() {
			checker.CheckReturns(breach.Found(9545824))

			analysis := evaluate("password")
			Expect(analysis.Feedback[len(analysis.Feedback)-1].Message).To(Equal(
				"This password has appeared in 9,545,824 data breaches",
			))
		})

		It("still reports a long password as weak", func() {
			analysis := evaluate("Xk9#mP2$vL7@nQ4&")

			Expect(analysis.Score).To(Equal(40))
			Expect(analysis.Level).To(Equal(strength.Weak))
		})

		It("clamps a heavily penalised password to zero", func() {
			analysis := evaluate("qwerty123")

			Expect(analysis.Score).To(Equal(0))
			Expect(analysis.Level).To(Equal(strength.VeryWeak))
			Expect(analysis.Entropy).To(Equal(47))
			Expect(analysis.CrackTime).To(Equal("4 hours"))
		})
	})

	It("orders feedback as length, variety, patterns then breach", func() {
		checker.CheckReturns(breach.Found(12))

		analysis := evaluate("qwerty123")

		Expect(analysis.Feedback).To(Equal([]strength.Feedback{
			{Message: "Minimum length of 8 characters met", Type: strength.Warning},
			{Message: "Add more character types (e.g., symbols, numbers)", Type: strength.Warning},
			{Message: `Contains a common word: "qwerty"`, Type: strength.Error},
			{Message: `Avoid sequential characters (e.g., "abc", "123")`, Type: strength.Error},
			{Message: `Avoid common keyboard patterns (e.g., "qwerty")`, Type: strength.Error},
			{Message: "This password has appeared in 12 data breaches", Type: strength.Error},
		}))
	})

	It("always produces a score in range with a matching level", func() {
		passwords := []string{
			"a", "abc", "aB3$", "password", "Password1", "qwerty123", "Gr8!wX#m0",
			"Tr0ub4dor&3", "correct horse battery staple", "Xk9#mP2$vL7@nQ4&",
		}

		for _, result := range []breach.Result{breach.Found(1), breach.NotFound(), breach.Failed(errors.New("boom"))} {
			checker.CheckReturns(result)

			for _, password := range passwords {
				analysis := evaluate(password)
				Expect(analysis.Score).To(BeNumerically(">=", 0))
				Expect(analysis.Score).To(BeNumerically("<=", 100))
				Expect(analysis.Level).To(Equal(strength.Classify(analysis.Score)))
			}
		}
	})

	It("returns the same analysis for the same input", func() {
		Expect(evaluate("Password1")).To(Equal(evaluate("Password1")))
	})

	It("tells the user exactly how many characters are missing", func() {
		Expect(evaluate("a").Feedback[0].Message).To(Equal("Too short. Add 7 more characters"))
		Expect(evaluate("aB3$").Feedback[0].Message).To(Equal("Too short. Add 4 more characters"))
	})

	Context("when the caller gives up before the lookup returns", func() {
		It("returns the context error and no analysis", func() {
			cctx, cancel := context.WithCancel(ctx)
			checker.CheckStub = func(context.Context, lager.Logger, string) breach.Result {
				cancel()
				return breach.Failed(context.Canceled)
			}

			analysis, err := evaluator.Evaluate(cctx, logger, "Tr0ub4dor&3")
			Expect(err).To(Equal(context.Canceled))
			Expect(analysis).To(BeZero())
		})
	})

	Describe("against a breach corpus", func() {
		var server *ghttp.Server

		BeforeEach(func() {
			server = ghttp.NewServer()
			evaluator = strength.NewEvaluator(
				sniff.NewDefaultSniffer(),
				breach.NewClient(http.DefaultClient, breach.Options{URL: server.URL()}),
			)
		})

		AfterEach(func() {
			server.Close()
		})

		It("penalises a password whose suffix is in the range", func() {
			server.AppendHandlers(ghttp.CombineHandlers(
				ghttp.VerifyRequest("GET", "/range/87457"),
				ghttp.RespondWith(http.StatusOK, "003D68EB55068C33ACE09247EE4C639306B:3\r\n"+
					"2E7A5AE6A49466A6AC578B98ADBA78C6AA6:3\r\n"),
			))

			analysis := evaluate("Tr0ub4dor&3")
			Expect(analysis.Score).To(Equal(0))
			Expect(analysis.Feedback).To(ContainElement(strength.Feedback{
				Message: "This password has appeared in 3 data breaches",
				Type:    strength.Error,
			}))
		})

		It("ignores a corpus that is unavailable", func() {
			server.AppendHandlers(ghttp.RespondWith(http.StatusServiceUnavailable, ""))

			analysis := evaluate("Tr0ub4dor&3")
			Expect(analysis.Score).To(Equal(45))
			Expect(analysis.Feedback).To(HaveLen(2))
		})
	})
})
