package commands

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"code.cloudfoundry.org/lager"
	"golang.org/x/term"

	"github.com/pivotal-cf/pw-alert/strength"
)

type CheckCommand struct {
	JSON  bool `long:"json" description:"print the analysis as JSON"`
	Watch bool `short:"w" long:"watch" description:"evaluate every line read from STDIN, showing only the latest result"`
}

func (command *CheckCommand) Execute(args []string) error {
	warnIfOldExecutable()
	disableColorsUnlessTerminal(os.Stdout)

	cfg, err := PwAlert.loadConfig()
	if err != nil {
		return err
	}

	logger := newLogger(cfg).Session("check")
	evaluator := newEvaluator(cfg)

	if command.Watch {
		return command.watch(logger, evaluator, os.Stdin)
	}

	password, err := readPassword(os.Stdin, os.Stderr)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	analysis, err := evaluator.Evaluate(ctx, logger, password)
	if errors.Is(err, strength.ErrEmptyPassword) {
		if command.JSON {
			return errors.New("no password given")
		}

		renderEmpty(os.Stdout)
		return nil
	}
	if err != nil {
		return err
	}

	return command.print(os.Stdout, analysis)
}

func (command *CheckCommand) watch(logger lager.Logger, evaluator strength.PasswordEvaluator, in io.Reader) error {
	session := strength.NewSession(evaluator, logger)

	printed := make(chan struct{})
	go func() {
		defer close(printed)
		for analysis := range session.Results() {
			command.print(os.Stdout, analysis)
		}
	}()

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		password := strings.TrimSuffix(scanner.Text(), "\r")
		if password == "" {
			continue
		}

		session.Submit(password)
	}

	session.Wait()
	session.Close()
	<-printed

	return scanner.Err()
}

func (command *CheckCommand) print(w io.Writer, analysis strength.Analysis) error {
	if command.JSON {
		return json.NewEncoder(w).Encode(analysis)
	}

	renderAnalysis(w, analysis)
	fmt.Fprintln(w)

	return nil
}

// readPassword prompts without echo on a terminal and otherwise reads the
// first line of in.
func readPassword(in *os.File, prompt io.Writer) (string, error) {
	fd := int(in.Fd())

	if term.IsTerminal(fd) {
		fmt.Fprint(prompt, "Password: ")
		bs, err := term.ReadPassword(fd)
		fmt.Fprintln(prompt)
		if err != nil {
			return "", err
		}

		return string(bs), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}
