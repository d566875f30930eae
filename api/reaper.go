package api

import (
	"os"
	"time"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager"
	"github.com/tedsuo/ifrit"
)

type Reaper interface {
	Reap(idle time.Duration) int
}

type reaper struct {
	logger   lager.Logger
	sessions Reaper
	clock    clock.Clock
	idle     time.Duration
}

// NewReaper forgets session ids that have been idle for longer than idle,
// checking once per idle period.
func NewReaper(logger lager.Logger, sessions Reaper, clock clock.Clock, idle time.Duration) ifrit.Runner {
	return &reaper{
		logger:   logger.Session("session-reaper", lager.Data{"idle": idle.String()}),
		sessions: sessions,
		clock:    clock,
		idle:     idle,
	}
}

func (r *reaper) Run(signals <-chan os.Signal, ready chan<- struct{}) error {
	close(ready)

	ticker := r.clock.NewTicker(r.idle)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C():
			if reaped := r.sessions.Reap(r.idle); reaped > 0 {
				r.logger.Debug("reaped", lager.Data{"count": reaped})
			}
		case <-signals:
			return nil
		}
	}
}
