package transport

// TaskCreateRequest is the payload for new tasks.
type TaskCreateRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Priority    string `json:"priority"`
}

// TaskUpdateRequest carries a partial update; absent fields stay untouched.
type TaskUpdateRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Priority    *string `json:"priority"`
}

// ChatMessageRequest is the payload for a user chat message.
type ChatMessageRequest struct {
	Content string `json:"content"`
}

// PersonalityRequest switches the assistant flavor.
type PersonalityRequest struct {
	Personality string `json:"personality"`
}
