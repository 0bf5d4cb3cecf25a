package repository

import (
	"context"

	"github.com/bigamist7/Bigamist-TaskPal/domain"
)

// TaskRepository persists the whole task collection as one slot. The store
// owns the authoritative in-memory copy; Load runs once at startup and Save
// replaces the slot after every mutation.
type TaskRepository interface {
	Load(ctx context.Context) ([]domain.Task, error)
	Save(ctx context.Context, tasks []domain.Task) error
}
