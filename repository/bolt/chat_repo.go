package bolt

import (
	"context"
	"encoding/json"

	bbolt "go.etcd.io/bbolt"

	"github.com/bigamist7/Bigamist-TaskPal/domain"
	"github.com/bigamist7/Bigamist-TaskPal/repository"
)

var chatSlotKey = []byte("chat")

type chatRepository struct {
	db *bbolt.DB
}

// NewChatRepository returns a Bolt-backed implementation of ChatRepository.
func NewChatRepository(db *bbolt.DB) (repository.ChatRepository, error) {
	if err := ensureBucket(db); err != nil {
		return nil, err
	}
	return &chatRepository{db: db}, nil
}

func (r *chatRepository) Load(ctx context.Context) ([]domain.ChatMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var records []messageRecord
	err := r.db.View(func(tx *bbolt.Tx) error {
		raw := tx.Bucket([]byte(bucketName)).Get(chatSlotKey)
		if raw == nil {
			return nil
		}
		return json.Unmarshal(raw, &records)
	})
	if err != nil {
		return nil, err
	}

	messages := make([]domain.ChatMessage, 0, len(records))
	for _, rec := range records {
		messages = append(messages, decodeMessage(rec))
	}
	return messages, nil
}

func (r *chatRepository) Save(ctx context.Context, messages []domain.ChatMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	records := make([]messageRecord, 0, len(messages))
	for _, msg := range messages {
		records = append(records, encodeMessage(msg))
	}

	payload, err := json.Marshal(records)
	if err != nil {
		return err
	}

	return r.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(bucketName)).Put(chatSlotKey, payload)
	})
}
