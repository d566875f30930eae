package strength

import (
	"context"
	"errors"
	"fmt"

	"code.cloudfoundry.org/lager"
	"github.com/dustin/go-humanize"

	"github.com/pivotal-cf/pw-alert/breach"
	"github.com/pivotal-cf/pw-alert/sniff"
)

var ErrEmptyPassword = errors.New("password is empty")

//go:generate counterfeiter . BreachChecker

type BreachChecker interface {
	Check(ctx context.Context, logger lager.Logger, password string) breach.Result
}

//go:generate counterfeiter . PasswordEvaluator

type PasswordEvaluator interface {
	Evaluate(ctx context.Context, logger lager.Logger, password string) (Analysis, error)
}

type Evaluator struct {
	sniffer sniff.Sniffer
	checker BreachChecker
}

func NewEvaluator(sniffer sniff.Sniffer, checker BreachChecker) *Evaluator {
	return &Evaluator{
		sniffer: sniffer,
		checker: checker,
	}
}

// Evaluate runs every check over the password and returns the completed
// Analysis. A failed breach lookup is left out of the result. The only errors
// are ErrEmptyPassword and the context's error when the caller gave up before
// the evaluation finished; in both cases there is no Analysis.
func (e *Evaluator) Evaluate(ctx context.Context, logger lager.Logger, password string) (Analysis, error) {
	logger = logger.Session("evaluate")
	logger.Debug("starting")
	defer logger.Debug("done")

	if password == "" {
		return Analysis{}, ErrEmptyPassword
	}

	var raw int
	feedback := []Feedback{}
	fold := func(c Contribution) {
		raw += c.ScoreDelta
		feedback = append(feedback, c.Feedback...)
	}

	fold(CheckLength(password))
	fold(CheckVariety(password))
	fold(CheckPatterns(e.sniffer, logger, password))

	result := e.checker.Check(ctx, logger, password)
	if err := ctx.Err(); err != nil {
		logger.Info("abandoned", lager.Data{"reason": err.Error()})
		return Analysis{}, err
	}

	if c, ok := BreachContribution(result); ok {
		fold(c)
	} else {
		logger.Info("breach-check-skipped", lager.Data{"reason": result.Err().Error()})
	}

	metrics := Measure(password)
	raw += metrics.ScoreDelta

	score := Clamp(raw)

	return Analysis{
		Score:     score,
		Level:     Classify(score),
		Entropy:   metrics.Entropy,
		CrackTime: metrics.CrackTime,
		Feedback:  feedback,
	}, nil
}

// BreachContribution reports false for a failed lookup, which must not affect
// the score or the feedback.
func BreachContribution(result breach.Result) (Contribution, bool) {
	switch {
	case result.Failed():
		return Contribution{}, false
	case result.Breached():
		message := fmt.Sprintf("This password has appeared in %s data breaches", humanize.Comma(int64(result.Count())))
		return contribute(-50, message, Error), true
	default:
		return contribute(5, "Not found in known data breaches", Success), true
	}
}
