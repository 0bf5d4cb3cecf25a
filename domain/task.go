package domain

import "time"

// Category classifies a task into one of the fixed product areas.
type Category string

const (
	CategoryWork     Category = "work"
	CategoryPersonal Category = "personal"
	CategoryUrgent   Category = "urgent"
	CategoryStudy    Category = "study"
)

// Valid reports whether the category is one of the known values.
func (c Category) Valid() bool {
	switch c {
	case CategoryWork, CategoryPersonal, CategoryUrgent, CategoryStudy:
		return true
	}
	return false
}

// Priority is the urgency level attached to a task.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Task represents a user-created to-do item.
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Category    Category   `json:"category"`
	Priority    Priority   `json:"priority"`
	Completed   bool       `json:"completed"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

func (t *Task) IsCompleted() bool {
	return t != nil && t.Completed
}

// TaskStats is derived from the current task collection and never stored.
type TaskStats struct {
	TotalTasks     int     `json:"total_tasks"`
	CompletedTasks int     `json:"completed_tasks"`
	CompletionRate float64 `json:"completion_rate"`
	Streak         int     `json:"streak"`
}

// streakWindow bounds how far back the streak scan looks.
const streakWindow = 30

// ComputeStats derives aggregate statistics from the task collection as of
// the given reference time. Pure function; safe to call repeatedly.
func ComputeStats(tasks []Task, today time.Time) TaskStats {
	total := len(tasks)
	completed := 0
	for i := range tasks {
		if tasks[i].Completed {
			completed++
		}
	}

	rate := 0.0
	if total > 0 {
		rate = float64(completed) / float64(total) * 100
	}

	return TaskStats{
		TotalTasks:     total,
		CompletedTasks: completed,
		CompletionRate: rate,
		Streak:         computeStreak(tasks, today),
	}
}

// computeStreak counts consecutive days with at least one completion,
// scanning backward from today. A day-zero gap does not break the run: a
// streak maintained through yesterday still counts even when nothing has
// been completed yet today. Older gaps stop the scan.
func computeStreak(tasks []Task, today time.Time) int {
	streak := 0
	for i := 0; i < streakWindow; i++ {
		day := today.AddDate(0, 0, -i)
		count := 0
		for j := range tasks {
			if tasks[j].CompletedAt != nil && sameDay(*tasks[j].CompletedAt, day) {
				count++
			}
		}
		if count > 0 {
			streak++
		} else if i > 0 {
			break
		}
	}
	return streak
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
