package assistant

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bigamist7/Bigamist-TaskPal/domain"
)

func fixedEngine() *RuleEngine {
	return &RuleEngine{pick: func(int) int { return 0 }}
}

func ruleReply(t *testing.T, message string, p domain.Personality, stats domain.TaskStats) string {
	t.Helper()
	reply, err := fixedEngine().Generate(context.Background(), Request{
		Message:     message,
		Personality: p,
		Stats:       stats,
	})
	require.NoError(t, err)
	return reply
}

func TestRuleEngineRoutesByKeyword(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{"task creation", "How do I create a task?", "help you create a new task"},
		{"stats", "Show my progress", "Here are your statistics"},
		{"tips", "Any productivity tip?", flavors[domain.PersonalityMotivational].tips[0]},
		{"goals", "I want to set a goal", "Setting goals is essential"},
		{"celebration", "I finished everything!", flavors[domain.PersonalityMotivational].celebrations[0]},
		{"small talk", "What's the weather like?", flavors[domain.PersonalityMotivational].smallTalk[0]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reply := ruleReply(t, tt.message, domain.PersonalityMotivational, domain.TaskStats{})
			assert.Contains(t, reply, tt.want)
		})
	}
}

func TestRuleEngineIsCaseInsensitive(t *testing.T) {
	reply := ruleReply(t, "CREATE A TASK PLEASE", domain.PersonalityZen, domain.TaskStats{})
	assert.Contains(t, reply, "help you create a new task")
}

func TestRuleEngineStatsThresholds(t *testing.T) {
	f := flavors[domain.PersonalityProfessional]

	high := ruleReply(t, "stats please", domain.PersonalityProfessional, domain.TaskStats{TotalTasks: 10, CompletedTasks: 9, CompletionRate: 90})
	assert.Contains(t, high, f.celebrations[0])

	mid := ruleReply(t, "stats please", domain.PersonalityProfessional, domain.TaskStats{TotalTasks: 10, CompletedTasks: 6, CompletionRate: 60})
	assert.Contains(t, mid, "You're on the right track!")

	low := ruleReply(t, "stats please", domain.PersonalityProfessional, domain.TaskStats{TotalTasks: 10, CompletedTasks: 1, CompletionRate: 10})
	assert.Contains(t, low, "Every beginning is an opportunity!")
}

func TestRuleEngineFlavorsFollowPersonality(t *testing.T) {
	zen := ruleReply(t, "tell me something", domain.PersonalityZen, domain.TaskStats{})
	playful := ruleReply(t, "tell me something", domain.PersonalityPlayful, domain.TaskStats{})

	assert.Equal(t, flavors[domain.PersonalityZen].smallTalk[0], zen)
	assert.Equal(t, flavors[domain.PersonalityPlayful].smallTalk[0], playful)
	assert.NotEqual(t, zen, playful)
}

func TestRuleEngineUnknownPersonalityFallsBack(t *testing.T) {
	reply := ruleReply(t, "tell me something", domain.Personality("alien"), domain.TaskStats{})
	assert.Equal(t, flavors[domain.PersonalityMotivational].smallTalk[0], reply)
}
