package assistant

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"github.com/bigamist7/Bigamist-TaskPal/domain"
)

// flavor holds the canned phrase pools for one personality.
type flavor struct {
	greetings    []string
	celebrations []string
	tips         []string
	smallTalk    []string
}

var flavors = map[domain.Personality]flavor{
	domain.PersonalityMotivational: {
		greetings: []string{"Let's go!", "You've got this!", "Full energy!"},
		celebrations: []string{
			"Incredible! Another win on the board. Keep it up!",
			"Congratulations! You are crushing it today!",
			"Sensational! Your focus is inspiring!",
		},
		tips: []string{
			"Tip: start with the hardest tasks while your energy is high!",
			"Focus on one task at a time - that's how you go far!",
			"Try the Pomodoro technique: 25 minutes of focus, 5 minutes of break!",
		},
		smallTalk: []string{
			"I'm here to push you forward! How can I help you conquer your goals today?",
			"That's great energy! Let's turn that motivation into concrete action!",
			"Every small step brings you closer to success! What's next?",
		},
	},
	domain.PersonalityZen: {
		greetings: []string{"Take it slow...", "Breathe deeply", "Inner peace"},
		celebrations: []string{
			"Well done. Every step is a quiet victory.",
			"Congratulations. You have found your rhythm.",
			"Excellent. Steady progress brings serenity.",
		},
		tips: []string{
			"Remember: what matters is not speed but consistency.",
			"Pause for five minutes of mindfulness between tasks.",
			"Flow through your tasks - without haste, but without pause.",
		},
		smallTalk: []string{
			"I'm here to walk this journey with you. Breathe deeply and tell me how I can help.",
			"Patience and consistency are your greatest allies. How can I support your flow today?",
			"Find your natural rhythm. I'm here to guide you with serenity.",
		},
	},
	domain.PersonalityProfessional: {
		greetings: []string{"Let's get organized", "Maximum efficiency", "Full focus"},
		celebrations: []string{
			"Task completed efficiently.",
			"Excellent execution. Productivity is trending up.",
			"Objective achieved. On to the next agenda item.",
		},
		tips: []string{
			"Prioritize tasks by impact and urgency (Eisenhower matrix).",
			"Time-blocking: reserve dedicated blocks for each type of task.",
			"Review your list daily and adjust as needed.",
		},
		smallTalk: []string{
			"Let's focus on efficiency. How can I help optimize your productivity?",
			"Time is a valuable resource. How can I contribute to your results today?",
			"Organization is the key to success. Which area needs more structure?",
		},
	},
	domain.PersonalityPlayful: {
		greetings: []string{"Fun time!", "Game on!", "Creativity!"},
		celebrations: []string{
			"Woohoo! You nailed it!",
			"Level up! You're becoming an expert at this!",
			"Amazing! How about a little victory dance?",
		},
		tips: []string{
			"How about a motivating playlist to go with your tasks?",
			"Reward yourself with something nice after each finished task!",
			"Turn your goals into a game - you're the main character!",
		},
		smallTalk: []string{
			"Hey hey! Great to have you here! Shall we make your productivity more fun?",
			"Ready for another productive adventure? How can I make your day more interesting?",
			"Work can be fun too! Tell me what's going on!",
		},
	},
}

// RuleEngine is the local reply strategy: keyword-routed canned responses
// flavored by personality. It never fails, which makes it both a
// standalone strategy and the offline stand-in for the remote model.
type RuleEngine struct {
	pick func(n int) int
}

func NewRuleEngine() *RuleEngine {
	return &RuleEngine{pick: rand.Intn}
}

func (e *RuleEngine) Generate(_ context.Context, req Request) (string, error) {
	message := strings.ToLower(req.Message)
	f := flavorFor(req.Personality)

	switch {
	case strings.Contains(message, "create") && strings.Contains(message, "task"):
		return e.creationHelp(f), nil
	case strings.Contains(message, "stat") || strings.Contains(message, "progress"):
		return e.statsSummary(req.Stats, f), nil
	case strings.Contains(message, "tip") || strings.Contains(message, "productivity") || strings.Contains(message, "help"):
		return f.tips[e.pick(len(f.tips))], nil
	case strings.Contains(message, "goal") || strings.Contains(message, "objective"):
		return e.goalGuidance(f), nil
	case strings.Contains(message, "done") || strings.Contains(message, "finished") || strings.Contains(message, "completed"):
		return f.celebrations[e.pick(len(f.celebrations))], nil
	}
	return f.smallTalk[e.pick(len(f.smallTalk))], nil
}

func (e *RuleEngine) creationHelp(f flavor) string {
	return f.greetings[0] + " I'll help you create a new task! Tell me:\n\n- the task title\n- a category (work, personal, urgent, study)\n- a priority (low, medium, high)\n\nOr head to the Tasks section to create it directly!"
}

func (e *RuleEngine) statsSummary(stats domain.TaskStats, f flavor) string {
	summary := fmt.Sprintf(
		"Here are your statistics:\n\n- Total tasks: %d\n- Completed: %d\n- Completion rate: %.1f%%\n- Current streak: %d days\n\n",
		stats.TotalTasks, stats.CompletedTasks, stats.CompletionRate, stats.Streak,
	)

	switch {
	case stats.CompletionRate >= 80:
		return summary + f.celebrations[0]
	case stats.CompletionRate >= 50:
		return summary + "You're on the right track! " + f.greetings[1]
	default:
		return summary + "Every beginning is an opportunity! " + f.greetings[2]
	}
}

func (e *RuleEngine) goalGuidance(f flavor) string {
	return f.greetings[0] + " Setting goals is essential! Some suggestions:\n\nDaily goals:\n- complete 3-5 important tasks\n- hold focus in 25-50 minute blocks\n- take regular breaks\n\nWeekly goals:\n- keep your completion rate above 70%\n- organize tasks by priority\n- review and adjust your objectives\n\n" + f.tips[e.pick(len(f.tips))]
}

func flavorFor(p domain.Personality) flavor {
	if f, ok := flavors[p]; ok {
		return f
	}
	return flavors[domain.PersonalityMotivational]
}
