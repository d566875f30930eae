package api_test

import (
	"context"
	"os"
	"time"

	"code.cloudfoundry.org/clock/fakeclock"
	"code.cloudfoundry.org/lager/lagertest"
	"github.com/tedsuo/ifrit"
	"github.com/tedsuo/ifrit/ginkgomon"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/pivotal-cf/pw-alert/api"
	"github.com/pivotal-cf/pw-alert/strength"
	"github.com/pivotal-cf/pw-alert/strength/strengthfakes"
)

var _ = Describe("Reaper", func() {
	var (
		logger   *lagertest.TestLogger
		clock    *fakeclock.FakeClock
		sessions *strength.Sessions
		process  ifrit.Process
		idle     time.Duration
	)

	BeforeEach(func() {
		idle = time.Minute
		logger = lagertest.NewTestLogger("reaper")
		clock = fakeclock.NewFakeClock(time.Now())
		sessions = strength.NewSessions(&strengthfakes.FakePasswordEvaluator{}, clock)

		_, err := sessions.Evaluate(context.Background(), logger, "tab-1", "hunter2")
		Expect(err).NotTo(HaveOccurred())

		process = ginkgomon.Invoke(api.NewReaper(logger, sessions, clock, idle))
	})

	AfterEach(func() {
		ginkgomon.Interrupt(process)
	})

	It("keeps sessions that have not been idle for long", func() {
		clock.WaitForWatcherAndIncrement(idle)
		Consistently(sessions.Len).Should(Equal(1))
	})

	It("forgets idle sessions", func() {
		clock.WaitForWatcherAndIncrement(idle)
		clock.WaitForWatcherAndIncrement(idle)

		Eventually(sessions.Len).Should(BeZero())
	})

	It("exits cleanly when signalled", func() {
		process.Signal(os.Interrupt)
		Eventually(process.Wait()).Should(Receive(BeNil()))
	})
})
