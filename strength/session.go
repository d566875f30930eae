package strength

import (
	"context"
	"sync"

	"code.cloudfoundry.org/lager"
)

// Session evaluates a stream of inputs from one caller. Submitting a new
// password cancels the evaluation still in flight for the previous one, and
// Results only ever yields the analysis of the most recent input.
type Session struct {
	evaluator PasswordEvaluator
	logger    lager.Logger
	results   chan Analysis

	mu         sync.Mutex
	wg         sync.WaitGroup
	cancel     context.CancelFunc
	generation uint64
	closed     bool
}

func NewSession(evaluator PasswordEvaluator, logger lager.Logger) *Session {
	return &Session{
		evaluator: evaluator,
		logger:    logger.Session("session"),
		results:   make(chan Analysis, 1),
	}
}

func (s *Session) Results() <-chan Analysis {
	return s.results
}

func (s *Session) Submit(password string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	if s.cancel != nil {
		s.cancel()
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.generation++
	generation := s.generation

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer cancel()

		analysis, err := s.evaluator.Evaluate(ctx, s.logger, password)
		if err != nil {
			return
		}

		s.deliver(generation, analysis)
	}()
}

func (s *Session) deliver(generation uint64, analysis Analysis) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || generation != s.generation {
		s.logger.Debug("discarded-stale-result", lager.Data{"generation": generation})
		return
	}

	select {
	case <-s.results:
	default:
	}

	s.results <- analysis
}

// Wait blocks until every evaluation submitted so far has returned. Call it
// from the goroutine that submits, once it has nothing more to submit.
func (s *Session) Wait() {
	s.wg.Wait()
}

// Close cancels any evaluation in flight, waits for it to return and then
// closes the Results channel.
func (s *Session) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	if s.cancel != nil {
		s.cancel()
	}
	s.mu.Unlock()

	s.wg.Wait()
	close(s.results)
}
