package chat

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/bigamist7/Bigamist-TaskPal/domain"
	"github.com/bigamist7/Bigamist-TaskPal/repository"
)

// DefaultGreeting seeds every fresh conversation log.
const DefaultGreeting = "Hi! I'm your personal productivity assistant. I'm here to help you organize your tasks and reach your goals. How can I help today?"

// Store owns the append-only conversation log and the active personality.
type Store struct {
	repo     repository.ChatRepository
	logger   *zap.Logger
	now      func() time.Time
	greeting string
	limit    int

	mu          sync.RWMutex
	messages    []domain.ChatMessage
	personality domain.Personality
}

// New creates a chat store seeded with a single bot greeting. limit bounds
// the retained history; zero keeps it unbounded.
func New(repo repository.ChatRepository, greeting string, limit int, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	if greeting == "" {
		greeting = DefaultGreeting
	}
	s := &Store{
		repo:        repo,
		logger:      logger,
		now:         time.Now,
		greeting:    greeting,
		limit:       limit,
		personality: domain.DefaultPersonality,
	}
	s.messages = []domain.ChatMessage{s.greetingMessage()}
	return s
}

// Load restores a previously persisted conversation. An empty or missing
// slot keeps the seeded greeting.
func (s *Store) Load(ctx context.Context) error {
	messages, err := s.repo.Load(ctx)
	if err != nil {
		return domain.WrapError(domain.ErrCodeUnavailable, "loading chat history", err)
	}
	if len(messages) == 0 {
		return nil
	}

	s.mu.Lock()
	s.messages = messages
	s.mu.Unlock()

	s.logger.Info("chat history loaded", zap.Int("count", len(messages)))
	return nil
}

// Append adds a message to the log and persists it. Messages are never
// mutated or reordered afterwards.
func (s *Store) Append(ctx context.Context, content string, msgType domain.MessageType) domain.ChatMessage {
	msg := domain.ChatMessage{
		ID:        uuid.NewString(),
		Type:      msgType,
		Content:   content,
		Timestamp: s.now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.messages = append(s.messages, msg)
	s.trimLocked()
	s.persist(ctx)
	return msg
}

// Clear empties the log. The greeting is not re-seeded; it only exists on
// a fresh store.
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.messages = nil
	s.persist(ctx)
}

// Prune drops the oldest messages beyond the retention limit and reports
// how many were removed. Used by the periodic retention sweep.
func (s *Store) Prune(ctx context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := s.trimLocked()
	if removed > 0 {
		s.persist(ctx)
	}
	return removed
}

// SetPersonality switches the reply flavor. Past messages are unaffected.
func (s *Store) SetPersonality(p domain.Personality) {
	s.mu.Lock()
	s.personality = p
	s.mu.Unlock()
}

func (s *Store) Personality() domain.Personality {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.personality
}

// Messages returns a snapshot copy of the log in insertion order.
func (s *Store) Messages() []domain.ChatMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.ChatMessage(nil), s.messages...)
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.messages)
}

func (s *Store) greetingMessage() domain.ChatMessage {
	return domain.ChatMessage{
		ID:        uuid.NewString(),
		Type:      domain.MessageBot,
		Content:   s.greeting,
		Timestamp: s.now(),
	}
}

func (s *Store) trimLocked() int {
	if s.limit <= 0 || len(s.messages) <= s.limit {
		return 0
	}
	removed := len(s.messages) - s.limit
	s.messages = append([]domain.ChatMessage(nil), s.messages[removed:]...)
	return removed
}

func (s *Store) persist(ctx context.Context) {
	snapshot := append([]domain.ChatMessage(nil), s.messages...)
	if err := s.repo.Save(ctx, snapshot); err != nil {
		s.logger.Error("failed to persist chat history", zap.Error(err))
	}
}
