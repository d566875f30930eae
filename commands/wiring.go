package commands

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager"
	"github.com/kardianos/osext"
	"github.com/mgutz/ansi"
	"golang.org/x/term"

	"github.com/pivotal-cf/pw-alert/breach"
	"github.com/pivotal-cf/pw-alert/config"
	"github.com/pivotal-cf/pw-alert/net"
	"github.com/pivotal-cf/pw-alert/sniff"
	"github.com/pivotal-cf/pw-alert/strength"
)

func newLogger(cfg *config.Config) lager.Logger {
	level, _ := cfg.LagerLevel()

	logger := lager.NewLogger("pw-alert")
	logger.RegisterSink(lager.NewWriterSink(os.Stderr, level))

	return logger
}

func newChecker(cfg *config.Config) breach.Checker {
	if cfg.Breach.Offline {
		return breach.NewNullChecker()
	}

	httpClient := net.NewRetryingClient(&http.Client{}, clock.NewClock(), cfg.Breach.Retries+1)

	return breach.NewClient(httpClient, breach.Options{
		URL:       cfg.Breach.URL,
		Timeout:   cfg.Breach.Timeout,
		UserAgent: cfg.Breach.UserAgent,
		Padding:   cfg.Breach.Padding,
	})
}

func newEvaluator(cfg *config.Config) *strength.Evaluator {
	return strength.NewEvaluator(sniff.NewDefaultSniffer(), newChecker(cfg))
}

func disableColorsUnlessTerminal(f *os.File) {
	if !term.IsTerminal(int(f.Fd())) {
		ansi.DisableColors(true)
	}
}

func warnIfOldExecutable() {
	const twoWeeks = 14 * 24 * time.Hour

	exePath, err := osext.Executable()
	if err != nil {
		return
	}

	info, err := os.Stat(exePath)
	if err != nil {
		return
	}

	if time.Since(info.ModTime()) > twoWeeks {
		fmt.Fprintln(os.Stderr, yellow("[WARN]"), "Executable is old! Please consider running `pw-alert update`.")
	}
}
