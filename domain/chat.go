package domain

import "time"

// MessageType distinguishes between user input and assistant output.
type MessageType string

const (
	MessageUser MessageType = "user"
	MessageBot  MessageType = "bot"
)

func (m MessageType) Valid() bool {
	return m == MessageUser || m == MessageBot
}

// ChatMessage is a single entry in the append-only conversation log.
type ChatMessage struct {
	ID        string      `json:"id"`
	Type      MessageType `json:"type"`
	Content   string      `json:"content"`
	Timestamp time.Time   `json:"timestamp"`
}

// Personality selects the tone of assistant replies. It changes wording
// only, never behavior.
type Personality string

const (
	PersonalityMotivational Personality = "motivational"
	PersonalityZen          Personality = "zen"
	PersonalityProfessional Personality = "professional"
	PersonalityPlayful      Personality = "playful"
)

// DefaultPersonality is the flavor active before the user picks one.
const DefaultPersonality = PersonalityMotivational

func (p Personality) Valid() bool {
	switch p {
	case PersonalityMotivational, PersonalityZen, PersonalityProfessional, PersonalityPlayful:
		return true
	}
	return false
}
