package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func completedOn(ts time.Time) Task {
	return Task{
		ID:          "task-" + ts.Format("0102"),
		Title:       "done",
		Category:    CategoryWork,
		Priority:    PriorityMedium,
		Completed:   true,
		CreatedAt:   ts.Add(-time.Hour),
		CompletedAt: &ts,
	}
}

func TestComputeStatsCompletionRate(t *testing.T) {
	now := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)

	t.Run("empty collection", func(t *testing.T) {
		stats := ComputeStats(nil, now)
		assert.Equal(t, 0, stats.TotalTasks)
		assert.Equal(t, 0, stats.CompletedTasks)
		assert.Equal(t, 0.0, stats.CompletionRate)
		assert.Equal(t, 0, stats.Streak)
	})

	t.Run("partial completion", func(t *testing.T) {
		tasks := []Task{
			{ID: "a", Title: "open", CreatedAt: now},
			{ID: "b", Title: "open too", CreatedAt: now},
			completedOn(now),
		}
		stats := ComputeStats(tasks, now)
		assert.Equal(t, 3, stats.TotalTasks)
		assert.Equal(t, 1, stats.CompletedTasks)
		assert.InDelta(t, 100.0/3, stats.CompletionRate, 1e-9)
	})

	t.Run("all completed", func(t *testing.T) {
		tasks := []Task{completedOn(now), completedOn(now.Add(-time.Minute))}
		stats := ComputeStats(tasks, now)
		assert.Equal(t, 100.0, stats.CompletionRate)
	})
}

func TestComputeStatsStreak(t *testing.T) {
	today := time.Date(2024, 1, 10, 15, 30, 0, 0, time.UTC)
	day := func(d int) time.Time {
		return time.Date(2024, 1, d, 9, 0, 0, 0, time.UTC)
	}

	t.Run("no completions", func(t *testing.T) {
		tasks := []Task{{ID: "a", Title: "open", CreatedAt: today}}
		assert.Equal(t, 0, ComputeStats(tasks, today).Streak)
	})

	t.Run("one task completed today", func(t *testing.T) {
		tasks := []Task{completedOn(day(10))}
		assert.Equal(t, 1, ComputeStats(tasks, today).Streak)
	})

	t.Run("run through yesterday survives an empty today", func(t *testing.T) {
		tasks := []Task{completedOn(day(8)), completedOn(day(9))}
		assert.Equal(t, 2, ComputeStats(tasks, today).Streak)
	})

	t.Run("gap after yesterday stops the scan", func(t *testing.T) {
		tasks := []Task{completedOn(day(9)), completedOn(day(7))}
		assert.Equal(t, 1, ComputeStats(tasks, today).Streak)
	})

	t.Run("gap at yesterday with nothing today", func(t *testing.T) {
		tasks := []Task{completedOn(day(8))}
		assert.Equal(t, 0, ComputeStats(tasks, today).Streak)
	})

	t.Run("time of day is ignored", func(t *testing.T) {
		lateYesterday := time.Date(2024, 1, 9, 23, 59, 59, 0, time.UTC)
		tasks := []Task{completedOn(lateYesterday), completedOn(day(10))}
		assert.Equal(t, 2, ComputeStats(tasks, today).Streak)
	})

	t.Run("window never looks past thirty days", func(t *testing.T) {
		var tasks []Task
		for d := 0; d < 40; d++ {
			tasks = append(tasks, completedOn(today.AddDate(0, 0, -d)))
		}
		assert.Equal(t, 30, ComputeStats(tasks, today).Streak)
	})

	t.Run("multiple completions on one day count once", func(t *testing.T) {
		tasks := []Task{completedOn(day(10)), completedOn(day(10).Add(time.Hour))}
		assert.Equal(t, 1, ComputeStats(tasks, today).Streak)
	})
}

func TestEnumValidity(t *testing.T) {
	assert.True(t, CategoryWork.Valid())
	assert.True(t, CategoryStudy.Valid())
	assert.False(t, Category("chores").Valid())

	assert.True(t, PriorityHigh.Valid())
	assert.False(t, Priority("urgent").Valid())

	assert.True(t, MessageUser.Valid())
	assert.True(t, MessageBot.Valid())
	assert.False(t, MessageType("system").Valid())

	assert.True(t, PersonalityZen.Valid())
	assert.False(t, Personality("grumpy").Valid())
}
