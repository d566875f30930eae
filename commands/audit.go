package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"strings"
	"sync"

	"code.cloudfoundry.org/lager"
	"golang.org/x/sync/errgroup"

	"github.com/pivotal-cf/pw-alert/inflator"
	"github.com/pivotal-cf/pw-alert/scanners"
	"github.com/pivotal-cf/pw-alert/scanners/dirscanner"
	"github.com/pivotal-cf/pw-alert/scanners/filescanner"
	"github.com/pivotal-cf/pw-alert/strength"
)

type AuditCommand struct {
	File          string `short:"f" long:"file" description:"the list, directory, or archive to audit (defaults to STDIN)" value-name:"FILE"`
	Concurrency   int    `short:"c" long:"concurrency" description:"how many passwords to evaluate at once" default:"4" value-name:"N"`
	ShowPasswords bool   `long:"show-passwords" description:"allow passwords to be shown in output"`
}

func (command *AuditCommand) Execute(args []string) error {
	warnIfOldExecutable()
	disableColorsUnlessTerminal(os.Stdout)

	cfg, err := PwAlert.loadConfig()
	if err != nil {
		return err
	}

	logger := newLogger(cfg).Session("audit")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	report := newAuditReport(command.ShowPasswords)
	err = command.run(ctx, logger, newEvaluator(cfg), report)

	report.Write(os.Stdout)

	return err
}

func (command *AuditCommand) run(ctx context.Context, logger lager.Logger, evaluator strength.PasswordEvaluator, report *auditReport) error {
	concurrency := command.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}

	lines := make(chan scanners.Line)
	g, ctx := errgroup.WithContext(ctx)

	for i := 0; i < concurrency; i++ {
		g.Go(func() error {
			for line := range lines {
				analysis, err := evaluator.Evaluate(ctx, logger, line.Content)
				if errors.Is(err, strength.ErrEmptyPassword) {
					continue
				}
				if err != nil {
					return err
				}

				report.Record(line, analysis)
			}

			return nil
		})
	}

	// Unreadable sources are reported after every readable line has been
	// evaluated, so they must not cancel the workers.
	var produceErr error
	g.Go(func() error {
		defer close(lines)

		produceErr = command.produce(logger, func(_ lager.Logger, line scanners.Line) error {
			select {
			case lines <- line:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
		if ctx.Err() != nil {
			return ctx.Err()
		}

		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	return produceErr
}

func (command *AuditCommand) produce(logger lager.Logger, handler dirscanner.Handler) error {
	if command.File == "" {
		return filescanner.ScanAll(logger, os.Stdin, "STDIN", handler)
	}

	fi, err := os.Stat(command.File)
	if err != nil {
		return err
	}

	scanner := dirscanner.New(handler, inflator.New(), inflator.NewScratch("pw-alert-audit"))
	if fi.IsDir() {
		return scanner.Scan(logger, command.File)
	}

	return scanner.ScanFile(logger, command.File)
}

type auditEntry struct {
	line     scanners.Line
	analysis strength.Analysis
}

type auditReport struct {
	showPasswords bool

	mu      sync.Mutex
	entries []auditEntry
}

func newAuditReport(showPasswords bool) *auditReport {
	return &auditReport{showPasswords: showPasswords}
}

func (r *auditReport) Record(line scanners.Line, analysis strength.Analysis) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, auditEntry{line: line, analysis: analysis})
}

// Write lists every password in source order followed by a count per level.
func (r *auditReport) Write(w io.Writer) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sort.Slice(r.entries, func(i, j int) bool {
		a, b := r.entries[i].line, r.entries[j].line
		if a.Path != b.Path {
			return a.Path < b.Path
		}
		return a.LineNumber < b.LineNumber
	})

	counts := map[strength.Level]int{}
	sources := map[string]struct{}{}

	for _, e := range r.entries {
		counts[e.analysis.Level]++
		sources[e.line.Path] = struct{}{}

		password := e.line.Redacted()
		if r.showPasswords {
			password = e.line.Content
		}

		tag := "[" + strings.ToUpper(string(e.analysis.Level)) + "]"
		fmt.Fprintf(w, "%s %s:%d %d/100 [%s]\n", levelColor(e.analysis.Level)(tag), e.line.Path, e.line.LineNumber, e.analysis.Score, password)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Audited %d passwords from %d sources\n", len(r.entries), len(sources))
	for _, level := range strength.Levels {
		fmt.Fprintf(w, "  %-12s %d\n", string(level)+":", counts[level])
	}
}
