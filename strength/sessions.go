package strength

import (
	"context"
	"errors"
	"sync"
	"time"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager"
)

var ErrSuperseded = errors.New("evaluation superseded by a newer request")

type sessionEntry struct {
	cancel     context.CancelFunc
	generation uint64
	lastSeen   time.Time
}

// Sessions tracks in-flight evaluations by caller-supplied id so that a newer
// request for the same id supersedes an older one.
type Sessions struct {
	evaluator PasswordEvaluator
	clock     clock.Clock

	mu      sync.Mutex
	entries map[string]*sessionEntry
}

func NewSessions(evaluator PasswordEvaluator, clk clock.Clock) *Sessions {
	return &Sessions{
		evaluator: evaluator,
		clock:     clk,
		entries:   map[string]*sessionEntry{},
	}
}

func (s *Sessions) Evaluate(ctx context.Context, logger lager.Logger, id string, password string) (Analysis, error) {
	if id == "" {
		return s.evaluator.Evaluate(ctx, logger, password)
	}

	logger = logger.Session("sessions", lager.Data{"session-id": id})

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	s.mu.Lock()
	entry, ok := s.entries[id]
	if !ok {
		entry = &sessionEntry{}
		s.entries[id] = entry
	}
	if entry.cancel != nil {
		logger.Debug("superseding")
		entry.cancel()
	}
	entry.generation++
	generation := entry.generation
	entry.cancel = cancel
	entry.lastSeen = s.clock.Now()
	s.mu.Unlock()

	analysis, err := s.evaluator.Evaluate(ctx, logger, password)

	s.mu.Lock()
	superseded := entry.generation != generation
	if !superseded {
		entry.cancel = nil
		entry.lastSeen = s.clock.Now()
	}
	s.mu.Unlock()

	if superseded {
		return Analysis{}, ErrSuperseded
	}

	return analysis, err
}

// Reap forgets ids that have had nothing in flight for longer than idle.
func (s *Sessions) Reap(idle time.Duration) int {
	now := s.clock.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	reaped := 0
	for id, entry := range s.entries {
		if entry.cancel == nil && now.Sub(entry.lastSeen) > idle {
			delete(s.entries, id)
			reaped++
		}
	}

	return reaped
}

func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.entries)
}
