package commands

import (
	"fmt"
	"os"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager"
	"github.com/tedsuo/ifrit"
	"github.com/tedsuo/ifrit/grouper"
	"github.com/tedsuo/ifrit/http_server"
	"github.com/tedsuo/ifrit/sigmon"

	"github.com/pivotal-cf/pw-alert/api"
	"github.com/pivotal-cf/pw-alert/strength"
)

type ServeCommand struct{}

func (command *ServeCommand) Execute(args []string) error {
	cfg, err := PwAlert.loadConfig()
	if err != nil {
		return err
	}

	logger := newLogger(cfg).Session("serve")
	clk := clock.NewClock()

	sessions := strength.NewSessions(newEvaluator(cfg), clk)

	handler, err := api.NewHandler(logger, sessions)
	if err != nil {
		logger.Error("failed-to-build-router", err)
		return err
	}

	addr := fmt.Sprintf("%s:%d", cfg.API.BindIP, cfg.API.BindPort)

	members := []grouper.Member{
		{Name: "api", Runner: http_server.New(addr, handler)},
		{Name: "session-reaper", Runner: api.NewReaper(logger, sessions, clk, cfg.API.SessionIdleTimeout)},
	}

	runner := sigmon.New(grouper.NewParallel(os.Interrupt, members))

	serverLogger := logger.Session("server", lager.Data{
		"address": addr,
		"offline": cfg.Breach.Offline,
	})
	serverLogger.Info("starting")
	fmt.Fprintf(os.Stderr, "Listening on %s\n", addr)

	err = <-ifrit.Invoke(runner).Wait()
	if err != nil {
		serverLogger.Error("failed", err)
		return err
	}

	serverLogger.Info("done")

	return nil
}
