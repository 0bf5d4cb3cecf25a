package domain

// Rarity grades an achievement for display purposes.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// Achievement is a gamification milestone derived from the task collection.
type Achievement struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Rarity      Rarity  `json:"rarity"`
	Unlocked    bool    `json:"unlocked"`
	Progress    float64 `json:"progress"`
	MaxProgress float64 `json:"max_progress"`
}

// EvaluateAchievements derives the fixed achievement set from the current
// tasks and stats snapshot. Achievements are never stored; they are
// recomputed on every query like stats.
func EvaluateAchievements(tasks []Task, stats TaskStats) []Achievement {
	total := float64(len(tasks))
	completed := float64(stats.CompletedTasks)
	streak := float64(stats.Streak)

	return []Achievement{
		{
			ID:          "first-task",
			Title:       "First Step",
			Description: "Created your first task",
			Rarity:      RarityCommon,
			Unlocked:    total > 0,
			Progress:    clampProgress(total, 1),
			MaxProgress: 1,
		},
		{
			ID:          "task-master",
			Title:       "Task Master",
			Description: "Completed 10 tasks",
			Rarity:      RarityRare,
			Unlocked:    completed >= 10,
			Progress:    clampProgress(completed, 10),
			MaxProgress: 10,
		},
		{
			ID:          "productivity-champion",
			Title:       "Productivity Champion",
			Description: "Maintained an 80% completion rate",
			Rarity:      RarityEpic,
			Unlocked:    stats.CompletionRate >= 80,
			Progress:    clampProgress(stats.CompletionRate, 80),
			MaxProgress: 80,
		},
		{
			ID:          "streak-keeper",
			Title:       "Streak Keeper",
			Description: "Kept a 7-day completion streak",
			Rarity:      RarityLegendary,
			Unlocked:    streak >= 7,
			Progress:    clampProgress(streak, 7),
			MaxProgress: 7,
		},
		{
			ID:          "consistent-performer",
			Title:       "Consistent Performer",
			Description: "Completed tasks for 30 days straight",
			Rarity:      RarityLegendary,
			Unlocked:    streak >= 30,
			Progress:    clampProgress(streak, 30),
			MaxProgress: 30,
		},
		{
			ID:          "task-collector",
			Title:       "Task Collector",
			Description: "Created 50 tasks",
			Rarity:      RarityEpic,
			Unlocked:    total >= 50,
			Progress:    clampProgress(total, 50),
			MaxProgress: 50,
		},
	}
}

func clampProgress(value, max float64) float64 {
	if value > max {
		return max
	}
	return value
}
