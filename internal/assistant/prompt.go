package assistant

import (
	"fmt"
	"strings"

	"github.com/bigamist7/Bigamist-TaskPal/domain"
)

var systemPrompts = map[domain.Personality]string{
	domain.PersonalityMotivational: "You are an extremely motivating, high-energy productivity assistant. Use inspiring language and keep the user pushing toward their goals. Be positive and enthusiastic, and hand out practical productivity tips with contagious energy.",
	domain.PersonalityZen:          "You are a zen, mindful productivity assistant. Use calm, serene, reflective language. Focus on balance, well-being and sustainable growth, and give gentle, contemplative advice that always considers mental well-being.",
	domain.PersonalityProfessional: "You are an efficient, professional productivity assistant. Use clear, direct, structured language. Focus on results, metrics and optimization, and give practical advice grounded in proven time-management methodologies.",
	domain.PersonalityPlayful:      "You are a fun, creative productivity assistant. Use appropriate humor, playful metaphors and a light touch. Make productivity enjoyable and gamified; be witty but always useful.",
}

// systemPrompt returns the personality instruction plus the assistant's
// standing brief, falling back to the motivational flavor for unknown tags.
func systemPrompt(p domain.Personality) string {
	prompt, ok := systemPrompts[p]
	if !ok {
		prompt = systemPrompts[domain.PersonalityMotivational]
	}
	return prompt + "\n\nYou are an expert in productivity and task management. Help the user with task organization and prioritization, productivity techniques (Pomodoro, GTD, and similar), motivation and focus, progress analysis, and personalized suggestions. Be concise but useful."
}

// contextBlock summarizes the user's current state for the model.
func contextBlock(tasks []domain.Task, stats domain.TaskStats, conversation string) string {
	if conversation == "" {
		conversation = "New conversation"
	}

	var b strings.Builder
	b.WriteString("User information:\n")
	fmt.Fprintf(&b, "- Total tasks: %d\n", stats.TotalTasks)
	fmt.Fprintf(&b, "- Completed tasks: %d\n", stats.CompletedTasks)
	fmt.Fprintf(&b, "- Completion rate: %.1f%%\n", stats.CompletionRate)
	fmt.Fprintf(&b, "- Current streak: %d days\n", stats.Streak)
	fmt.Fprintf(&b, "- Active tasks: %d\n", len(tasks))
	b.WriteString("\nConversation context: ")
	b.WriteString(conversation)
	return b.String()
}
