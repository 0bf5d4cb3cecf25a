package usecase

import (
	"context"

	"github.com/bigamist7/Bigamist-TaskPal/domain"
)

// Responder abstracts the assistant reply pipeline so the chat flow stays
// strategy-agnostic. Implementations must always return usable reply text:
// upstream failures surface only as a personality-flavored fallback, never
// as an error to the caller.
type Responder interface {
	Respond(ctx context.Context, message string, personality domain.Personality, tasks []domain.Task, stats domain.TaskStats) string
	ClearHistory()
}
