package assistant

import (
	"context"
	"errors"
	"strings"

	"github.com/bigamist7/Bigamist-TaskPal/domain"
)

var fallbackReplies = map[domain.Personality]string{
	domain.PersonalityMotivational: "Sorry, I ran into a temporary technical problem. But I'm still here for you! How can I keep you motivated today?",
	domain.PersonalityZen:          "Something went wrong, but stay calm. Take a deep breath and tell me how I can help.",
	domain.PersonalityProfessional: "A technical error occurred. How can I help you stay productive?",
	domain.PersonalityPlayful:      "Oops! Something went sideways, but don't give up! How can I make your day more fun?",
}

// fallbackReply converts an upstream failure into reply text the user can
// read. A broken AI call must look like a normal bot reply, so the text is
// an apology keyed to the failure class and personality, never a technical
// error dialog.
func fallbackReply(p domain.Personality, err error) string {
	switch classify(err) {
	case failureKey:
		return "There is a problem with the AI service credentials. Check that the API key is configured correctly."
	case failureTimeout:
		return "The AI is taking too long to respond. Try a simpler question or wait a few seconds before trying again."
	case failureNetwork:
		return "Connection problem detected. Check your network and try again in a few seconds."
	}

	if reply, ok := fallbackReplies[p]; ok {
		return reply
	}
	return fallbackReplies[domain.PersonalityMotivational]
}

type failureClass int

const (
	failureGeneric failureClass = iota
	failureKey
	failureTimeout
	failureNetwork
)

func classify(err error) failureClass {
	if err == nil {
		return failureGeneric
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return failureTimeout
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "api key") || strings.Contains(msg, "unauthorized") || strings.Contains(msg, "permission denied"):
		return failureKey
	case strings.Contains(msg, "timeout") || strings.Contains(msg, "deadline"):
		return failureTimeout
	case strings.Contains(msg, "connection") || strings.Contains(msg, "network") || strings.Contains(msg, "no such host"):
		return failureNetwork
	}
	return failureGeneric
}
