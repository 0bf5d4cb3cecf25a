package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bigamist7/Bigamist-TaskPal/domain"
	chatUC "github.com/bigamist7/Bigamist-TaskPal/usecase/chat"
)

type memoryChatRepo struct {
	messages []domain.ChatMessage
}

func (r *memoryChatRepo) Load(context.Context) ([]domain.ChatMessage, error) {
	return append([]domain.ChatMessage(nil), r.messages...), nil
}

func (r *memoryChatRepo) Save(_ context.Context, messages []domain.ChatMessage) error {
	r.messages = append([]domain.ChatMessage(nil), messages...)
	return nil
}

func TestSweepTrimsOversizedLog(t *testing.T) {
	repo := &memoryChatRepo{
		messages: []domain.ChatMessage{
			{ID: "1", Type: domain.MessageUser, Content: "a", Timestamp: time.Now()},
			{ID: "2", Type: domain.MessageBot, Content: "b", Timestamp: time.Now()},
			{ID: "3", Type: domain.MessageUser, Content: "c", Timestamp: time.Now()},
			{ID: "4", Type: domain.MessageBot, Content: "d", Timestamp: time.Now()},
		},
	}
	store := chatUC.New(repo, "", 2, nil)
	assert.NoError(t, store.Load(context.Background()))

	sweeper := NewRetentionSweeper(store, nil, SweeperConfig{Interval: time.Minute})
	sweeper.Sweep(context.Background())

	messages := store.Messages()
	assert.Len(t, messages, 2)
	assert.Equal(t, "3", messages[0].ID, "the oldest messages go first")
	assert.Len(t, repo.messages, 2, "the pruned log is persisted")
}

func TestSweepNoopWithinLimit(t *testing.T) {
	repo := &memoryChatRepo{}
	store := chatUC.New(repo, "", 10, nil)

	sweeper := NewRetentionSweeper(store, nil, SweeperConfig{Interval: time.Minute})
	sweeper.Sweep(context.Background())

	assert.Equal(t, 1, store.Len(), "only the greeting is present")
	assert.Empty(t, repo.messages, "a no-op sweep does not persist")
}
