package repository

import (
	"context"

	"github.com/bigamist7/Bigamist-TaskPal/domain"
)

// ChatRepository persists the conversation log as one slot, mirroring the
// task collection layout.
type ChatRepository interface {
	Load(ctx context.Context) ([]domain.ChatMessage, error)
	Save(ctx context.Context, messages []domain.ChatMessage) error
}
