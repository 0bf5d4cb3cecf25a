package task

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/bigamist7/Bigamist-TaskPal/domain"
	"github.com/bigamist7/Bigamist-TaskPal/repository"
)

// CreateInput carries the caller-supplied fields for a new task. ID,
// creation time and completion state are always assigned by the store.
type CreateInput struct {
	Title       string
	Description string
	Category    domain.Category
	Priority    domain.Priority
}

// Patch holds a partial update; nil fields are left untouched. Completion
// state is deliberately absent: it only moves through Complete.
type Patch struct {
	Title       *string
	Description *string
	Category    *domain.Category
	Priority    *domain.Priority
}

// Store is the sole owner of the task collection. All mutations happen
// under the lock and are followed by a full persist of the slot.
type Store struct {
	repo   repository.TaskRepository
	logger *zap.Logger
	now    func() time.Time

	mu    sync.RWMutex
	tasks []domain.Task
}

func New(repo repository.TaskRepository, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

// Load reads the persisted collection once at startup. A missing slot
// yields an empty collection; a read failure is returned to the caller,
// which treats it as fatal.
func (s *Store) Load(ctx context.Context) error {
	tasks, err := s.repo.Load(ctx)
	if err != nil {
		return domain.WrapError(domain.ErrCodeUnavailable, "loading task collection", err)
	}

	s.mu.Lock()
	s.tasks = tasks
	s.mu.Unlock()

	s.logger.Info("task collection loaded", zap.Int("count", len(tasks)))
	return nil
}

// Add appends a new task. The only validation at this layer is the
// non-empty title; enum validation belongs to callers.
func (s *Store) Add(ctx context.Context, input CreateInput) (*domain.Task, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, domain.ErrEmptyTitle
	}

	task := domain.Task{
		ID:          uuid.NewString(),
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		Priority:    input.Priority,
		Completed:   false,
		CreatedAt:   s.now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.tasks = append(s.tasks, task)
	s.persist(ctx)
	return &task, nil
}

// Update merges the patch into the task matching id. An unknown id is a
// no-op and returns (nil, nil).
func (s *Store) Update(ctx context.Context, id string, patch Patch) (*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return nil, nil
	}

	task := &s.tasks[idx]
	if patch.Title != nil {
		task.Title = *patch.Title
	}
	if patch.Description != nil {
		task.Description = *patch.Description
	}
	if patch.Category != nil {
		task.Category = *patch.Category
	}
	if patch.Priority != nil {
		task.Priority = *patch.Priority
	}

	s.persist(ctx)
	out := *task
	return &out, nil
}

// Delete removes the task matching id. An unknown id leaves the
// collection unchanged.
func (s *Store) Delete(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return
	}

	s.tasks = append(s.tasks[:idx], s.tasks[idx+1:]...)
	s.persist(ctx)
}

// Complete marks the task done and stamps CompletedAt. Unknown ids and
// already-completed tasks are no-ops, so CompletedAt is set exactly once.
func (s *Store) Complete(ctx context.Context, id string) *domain.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return nil
	}

	task := &s.tasks[idx]
	if !task.Completed {
		completedAt := s.now()
		task.Completed = true
		task.CompletedAt = &completedAt
		s.persist(ctx)
	}

	out := *task
	return &out
}

// ByCategory returns the tasks of the given category in insertion order.
func (s *Store) ByCategory(category domain.Category) []domain.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.Task
	for _, task := range s.tasks {
		if task.Category == category {
			out = append(out, task)
		}
	}
	return out
}

// Tasks returns a snapshot copy of the collection.
func (s *Store) Tasks() []domain.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Task(nil), s.tasks...)
}

// Stats computes a fresh statistics snapshot from the current collection.
func (s *Store) Stats() domain.TaskStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.ComputeStats(s.tasks, s.now())
}

// persist flushes the whole collection. Callers hold the write lock. A
// failed save keeps the in-memory state authoritative; the store degrades
// to memory-only operation rather than rejecting the mutation.
func (s *Store) persist(ctx context.Context) {
	snapshot := append([]domain.Task(nil), s.tasks...)
	if err := s.repo.Save(ctx, snapshot); err != nil {
		s.logger.Error("failed to persist task collection", zap.Error(err))
	}
}

func (s *Store) indexOf(id string) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}
