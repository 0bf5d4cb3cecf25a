package bolt

import (
	"time"

	"github.com/bigamist7/Bigamist-TaskPal/domain"
)

// taskRecord is the serialized form of a task inside the persisted slot.
// Timestamps travel as ISO-8601 strings; there is no schema version, so
// decoding tolerates drift by treating unparseable fields as absent.
type taskRecord struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category"`
	Priority    string `json:"priority"`
	Completed   bool   `json:"completed"`
	CreatedAt   string `json:"createdAt"`
	CompletedAt string `json:"completedAt,omitempty"`
}

type messageRecord struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
}

func encodeTask(task domain.Task) taskRecord {
	rec := taskRecord{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Category:    string(task.Category),
		Priority:    string(task.Priority),
		Completed:   task.Completed,
		CreatedAt:   task.CreatedAt.Format(time.RFC3339Nano),
	}
	if task.CompletedAt != nil {
		rec.CompletedAt = task.CompletedAt.Format(time.RFC3339Nano)
	}
	return rec
}

func decodeTask(rec taskRecord) domain.Task {
	task := domain.Task{
		ID:          rec.ID,
		Title:       rec.Title,
		Description: rec.Description,
		Category:    domain.Category(rec.Category),
		Priority:    domain.Priority(rec.Priority),
		Completed:   rec.Completed,
		CreatedAt:   parseTime(rec.CreatedAt),
	}
	if rec.CompletedAt != "" {
		if ts := parseTime(rec.CompletedAt); !ts.IsZero() {
			task.CompletedAt = &ts
		}
	}
	return task
}

func encodeMessage(msg domain.ChatMessage) messageRecord {
	return messageRecord{
		ID:        msg.ID,
		Type:      string(msg.Type),
		Content:   msg.Content,
		Timestamp: msg.Timestamp.Format(time.RFC3339Nano),
	}
}

func decodeMessage(rec messageRecord) domain.ChatMessage {
	return domain.ChatMessage{
		ID:        rec.ID,
		Type:      domain.MessageType(rec.Type),
		Content:   rec.Content,
		Timestamp: parseTime(rec.Timestamp),
	}
}

// parseTime returns the zero time when the value cannot be parsed, which
// downstream code treats as the field being absent.
func parseTime(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	ts, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}
	}
	return ts
}
