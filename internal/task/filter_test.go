package task

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/taskkeeper/internal/models"
)

func sampleTasks() []models.Task {
	return []models.Task{
		{Title: "write report", Priority: models.PriorityHigh, Deadline: "2026-08-20", Category: "Work"},
		{Title: "buy milk", Priority: models.PriorityLow, Deadline: "2026-08-25", Category: "home", Completed: true},
		{Title: "call dentist", Priority: models.PriorityMedium, Deadline: "2026-08-22", Category: "Health"},
		{Title: "clean desk", Priority: models.PriorityLow, Deadline: "2026-08-18", Category: "Work", Completed: true},
		{Title: "pay rent", Priority: models.PriorityHigh, Deadline: "2026-08-19", Category: "Home"},
	}
}

func titles(tasks []models.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.Title
	}
	return out
}

func TestCompletedAndPending(t *testing.T) {
	tasks := sampleTasks()
	require.Equal(t, []string{"buy milk", "clean desk"}, titles(Completed(tasks)))
	require.Equal(t, []string{"write report", "call dentist", "pay rent"}, titles(Pending(tasks)))
}

func TestOverdue(t *testing.T) {
	tasks := sampleTasks()

	// Due today is not overdue, and completed tasks never are.
	got := Overdue(tasks, "2026-08-22")
	require.Equal(t, []string{"write report", "pay rent"}, titles(got))
}

func TestOverdue_EmptyDeadlineNeverOverdue(t *testing.T) {
	tasks := []models.Task{{Title: "undated", Deadline: ""}}
	require.Empty(t, Overdue(tasks, "2026-08-22"))
}

func TestByPriority(t *testing.T) {
	tasks := sampleTasks()
	require.Equal(t, []string{"write report", "pay rent"}, titles(ByPriority(tasks, models.PriorityHigh)))
	require.Equal(t, []string{"call dentist"}, titles(ByPriority(tasks, models.PriorityMedium)))
}

func TestByCategory_CaseInsensitive(t *testing.T) {
	tasks := sampleTasks()
	require.Equal(t, []string{"write report", "clean desk"}, titles(ByCategory(tasks, "work")))
	require.Equal(t, []string{"buy milk", "pay rent"}, titles(ByCategory(tasks, "HOME")))
	require.Empty(t, ByCategory(tasks, "garden"))
}

func TestByDeadlineRange_Inclusive(t *testing.T) {
	tasks := sampleTasks()
	got := ByDeadlineRange(tasks, "2026-08-19", "2026-08-22")
	require.Equal(t, []string{"write report", "call dentist", "pay rent"}, titles(got))
}

func TestSortByPriority(t *testing.T) {
	tasks := sampleTasks()
	got := SortByPriority(tasks)
	require.Equal(t, []string{"write report", "pay rent", "call dentist", "buy milk", "clean desk"}, titles(got))

	// The input keeps its order.
	require.Equal(t, "write report", tasks[0].Title)
	require.Equal(t, "buy milk", tasks[1].Title)
}

func TestSortByDeadline(t *testing.T) {
	got := SortByDeadline(sampleTasks())
	require.Equal(t, []string{"clean desk", "pay rent", "write report", "call dentist", "buy milk"}, titles(got))
}

func TestSortUserTasks(t *testing.T) {
	tasks := []UserTask{
		{Username: "zoe", Task: models.Task{Title: "z1", Priority: models.PriorityHigh, Deadline: "2026-08-20"}},
		{Username: "adam", Task: models.Task{Title: "a1", Priority: models.PriorityHigh, Deadline: "2026-08-20"}},
		{Username: "adam", Task: models.Task{Title: "a2", Priority: models.PriorityLow, Deadline: "2026-08-01"}},
	}

	byPriority := SortUserTasksByPriority(tasks)
	require.Equal(t, "a1", byPriority[0].Title)
	require.Equal(t, "z1", byPriority[1].Title)
	require.Equal(t, "a2", byPriority[2].Title)

	byDeadline := SortUserTasksByDeadline(tasks)
	require.Equal(t, "a2", byDeadline[0].Title)
	require.Equal(t, "a1", byDeadline[1].Title)
	require.Equal(t, "z1", byDeadline[2].Title)

	byUser := SortUserTasksByUser(tasks)
	require.Equal(t, "a2", byUser[0].Title)
	require.Equal(t, "a1", byUser[1].Title)
	require.Equal(t, "z1", byUser[2].Title)
}

func TestCategoryCounts(t *testing.T) {
	counts := CategoryCounts(sampleTasks())
	// Category buckets are case-sensitive as stored.
	require.Equal(t, map[string]int{"Work": 2, "home": 1, "Health": 1, "Home": 1}, counts)
}

func TestCategoryCounts_Uncategorized(t *testing.T) {
	counts := CategoryCounts([]models.Task{{Title: "stray"}})
	require.Equal(t, map[string]int{"Uncategorized": 1}, counts)
}

func TestTopCategories(t *testing.T) {
	tasks := []models.Task{
		{Title: "1", Category: "beta"},
		{Title: "2", Category: "beta"},
		{Title: "3", Category: "alpha"},
		{Title: "4", Category: "alpha"},
		{Title: "5", Category: "gamma"},
		{Title: "6", Category: "delta"},
	}

	top := TopCategories(tasks, 3)
	require.Len(t, top, 3)
	// Equal counts rank alphabetically.
	require.Equal(t, CategoryCount{Category: "alpha", Count: 2}, top[0])
	require.Equal(t, CategoryCount{Category: "beta", Count: 2}, top[1])
	require.Equal(t, CategoryCount{Category: "delta", Count: 1}, top[2])
}

func TestCompletionRate(t *testing.T) {
	require.Zero(t, CompletionRate(nil))
	require.InDelta(t, 40.0, CompletionRate(sampleTasks()), 1e-9)
}

func TestSummarize(t *testing.T) {
	stats := Summarize(sampleTasks(), "2026-08-22")
	require.Equal(t, 5, stats.Total)
	require.Equal(t, 2, stats.Completed)
	require.Equal(t, 3, stats.Pending)
	require.Equal(t, 2, stats.Overdue)
	require.InDelta(t, 40.0, stats.CompletionRate, 1e-9)
	require.Len(t, stats.CategoryCounts, 4)
	require.Len(t, stats.TopCategories, 3)
	require.Equal(t, CategoryCount{Category: "Work", Count: 2}, stats.TopCategories[0])
}
