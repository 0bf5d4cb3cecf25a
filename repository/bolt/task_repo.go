package bolt

import (
	"context"
	"encoding/json"

	bbolt "go.etcd.io/bbolt"

	"github.com/bigamist7/Bigamist-TaskPal/domain"
	"github.com/bigamist7/Bigamist-TaskPal/repository"
)

const bucketName = "taskpal"

var taskSlotKey = []byte("tasks")

type taskRepository struct {
	db *bbolt.DB
}

// NewTaskRepository returns a Bolt-backed implementation of TaskRepository
// and ensures the backing bucket exists.
func NewTaskRepository(db *bbolt.DB) (repository.TaskRepository, error) {
	if err := ensureBucket(db); err != nil {
		return nil, err
	}
	return &taskRepository{db: db}, nil
}

func (r *taskRepository) Load(ctx context.Context) ([]domain.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var records []taskRecord
	err := r.db.View(func(tx *bbolt.Tx) error {
		raw := tx.Bucket([]byte(bucketName)).Get(taskSlotKey)
		if raw == nil {
			return nil
		}
		return json.Unmarshal(raw, &records)
	})
	if err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0, len(records))
	for _, rec := range records {
		tasks = append(tasks, decodeTask(rec))
	}
	return tasks, nil
}

func (r *taskRepository) Save(ctx context.Context, tasks []domain.Task) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	records := make([]taskRecord, 0, len(tasks))
	for _, task := range tasks {
		records = append(records, encodeTask(task))
	}

	payload, err := json.Marshal(records)
	if err != nil {
		return err
	}

	// Single Put inside one tx: the slot is replaced atomically, so readers
	// never observe a partial write.
	return r.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(bucketName)).Put(taskSlotKey, payload)
	})
}

func ensureBucket(db *bbolt.DB) error {
	if db == nil {
		return bbolt.ErrDatabaseNotOpen
	}
	return db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		return err
	})
}
