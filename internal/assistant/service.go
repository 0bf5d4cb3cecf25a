package assistant

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/bigamist7/Bigamist-TaskPal/domain"
)

const (
	// defaultTimeout bounds the wait for a reply; expiry falls through to
	// the fallback path instead of surfacing an error.
	defaultTimeout = 30 * time.Second

	// historyLimit caps how many conversation lines travel as context.
	historyLimit = 10
)

// Request carries one generation attempt to a strategy.
type Request struct {
	Message     string
	Personality domain.Personality
	Tasks       []domain.Task
	Stats       domain.TaskStats
	Context     string
}

// Generator is the pluggable reply strategy: a remote model call or the
// local rule engine, behind the same contract.
type Generator interface {
	Generate(ctx context.Context, req Request) (string, error)
}

// UpstreamReporter receives the outcome of each remote attempt so health
// reporting can expose AI availability.
type UpstreamReporter interface {
	ReportUpstream(ok bool)
}

// Service runs the assistant reply pipeline. One instance exists per
// process and is passed explicitly to whoever needs it; it keeps the
// rolling conversation context that flavors follow-up replies.
type Service struct {
	generator Generator
	reporter  UpstreamReporter
	logger    *zap.Logger
	timeout   time.Duration

	mu      sync.Mutex
	history []string
}

func NewService(generator Generator, reporter UpstreamReporter, timeout time.Duration, logger *zap.Logger) *Service {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		generator: generator,
		reporter:  reporter,
		logger:    logger,
		timeout:   timeout,
	}
}

// Respond produces a reply for the user message. It never fails: any
// generator error is logged, reported, and converted into fallback text.
func (s *Service) Respond(ctx context.Context, message string, personality domain.Personality, tasks []domain.Task, stats domain.TaskStats) string {
	s.remember("User: " + message)

	reqCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	reply, err := s.generator.Generate(reqCtx, Request{
		Message:     message,
		Personality: personality,
		Tasks:       tasks,
		Stats:       stats,
		Context:     s.conversation(),
	})
	if err != nil {
		s.logger.Warn("assistant generation failed",
			zap.String("personality", string(personality)),
			zap.Error(err))
		s.report(false)
		return fallbackReply(personality, err)
	}

	s.report(true)
	s.remember("Assistant: " + reply)
	return reply
}

// ClearHistory resets the rolling conversation context.
func (s *Service) ClearHistory() {
	s.mu.Lock()
	s.history = nil
	s.mu.Unlock()
}

func (s *Service) remember(line string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.history = append(s.history, line)
	if len(s.history) > historyLimit {
		s.history = append([]string(nil), s.history[len(s.history)-historyLimit:]...)
	}
}

func (s *Service) conversation() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return strings.Join(s.history, "\n")
}

func (s *Service) report(ok bool) {
	if s.reporter != nil {
		s.reporter.ReportUpstream(ok)
	}
}
