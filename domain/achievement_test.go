package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func achievementByID(t *testing.T, list []Achievement, id string) Achievement {
	t.Helper()
	for _, a := range list {
		if a.ID == id {
			return a
		}
	}
	t.Fatalf("achievement %q not found", id)
	return Achievement{}
}

func TestEvaluateAchievements(t *testing.T) {
	now := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)

	t.Run("nothing unlocked on empty state", func(t *testing.T) {
		list := EvaluateAchievements(nil, TaskStats{})
		require.Len(t, list, 6)
		for _, a := range list {
			assert.False(t, a.Unlocked, "achievement %s should stay locked", a.ID)
		}
	})

	t.Run("first task unlocks first step", func(t *testing.T) {
		tasks := []Task{{ID: "a", Title: "x", CreatedAt: now}}
		list := EvaluateAchievements(tasks, ComputeStats(tasks, now))

		first := achievementByID(t, list, "first-task")
		assert.True(t, first.Unlocked)
		assert.Equal(t, 1.0, first.Progress)
	})

	t.Run("ten completions unlock task master", func(t *testing.T) {
		var tasks []Task
		for i := 0; i < 10; i++ {
			tasks = append(tasks, completedOn(now))
		}
		list := EvaluateAchievements(tasks, ComputeStats(tasks, now))

		master := achievementByID(t, list, "task-master")
		assert.True(t, master.Unlocked)

		champion := achievementByID(t, list, "productivity-champion")
		assert.True(t, champion.Unlocked, "100%% completion rate clears the 80%% bar")
	})

	t.Run("streak thresholds", func(t *testing.T) {
		list := EvaluateAchievements(nil, TaskStats{Streak: 7})
		assert.True(t, achievementByID(t, list, "streak-keeper").Unlocked)
		assert.False(t, achievementByID(t, list, "consistent-performer").Unlocked)

		list = EvaluateAchievements(nil, TaskStats{Streak: 30})
		assert.True(t, achievementByID(t, list, "consistent-performer").Unlocked)
	})

	t.Run("progress is clamped to max", func(t *testing.T) {
		list := EvaluateAchievements(nil, TaskStats{Streak: 12})
		keeper := achievementByID(t, list, "streak-keeper")
		assert.Equal(t, keeper.MaxProgress, keeper.Progress)
	})
}
