package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/taskkeeper/internal/models"
	"github.com/dmitrijs2005/taskkeeper/internal/storage"
)

func seedTasks(t *testing.T, store *storage.Store, username string, tasks []models.Task) {
	t.Helper()
	require.NoError(t, store.SaveTasks(username, tasks))
}

func TestTaskMenu_MarkDoneEditRemove(t *testing.T) {
	script := "5\n1\n\n" + // mark task 1 done
		"2\n2\nWalk the dog\n\n\n2026-08-31\n\n\n" + // edit task 2, keep desc/priority/category
		"3\n1\n\n" + // remove task 1
		"0\n"
	app, out, store := newTestApp(t, script)
	seedTasks(t, store, "alice", []models.Task{
		{Title: "Pay rent", Description: "September", Priority: models.PriorityHigh, Deadline: "2026-09-01", Category: "bills"},
		{Title: "Walk dog", Priority: models.PriorityLow, Deadline: "2026-08-30", Category: "home"},
	})

	app.taskMenu(context.Background(), "alice")

	plain := stripANSI(out.String())
	require.Contains(t, plain, "Task 'Pay rent' marked as completed!")
	require.Contains(t, plain, "Task updated successfully!")
	require.Contains(t, plain, "Task 'Pay rent' removed successfully!")

	left := store.LoadTasks("alice")
	require.Len(t, left, 1)
	require.Equal(t, "Walk the dog", left[0].Title)
	require.Equal(t, "2026-08-31", left[0].Deadline)
	require.Equal(t, models.PriorityLow, left[0].Priority)
	require.False(t, left[0].Completed)
}

func TestTaskMenu_PendingSortSkipsCompleted(t *testing.T) {
	script := "4\n1\n\n" + // pending tasks sorted by priority
		"5\n3\ny\nq\n\n" + // task 3 already done, then give up
		"0\n"
	app, out, store := newTestApp(t, script)
	seedTasks(t, store, "alice", []models.Task{
		{Title: "A", Priority: models.PriorityLow, Deadline: "2026-09-03", Category: "x"},
		{Title: "B", Priority: models.PriorityHigh, Deadline: "2026-09-02", Category: "y"},
		{Title: "C", Priority: models.PriorityMedium, Deadline: "2026-09-01", Category: "z", Completed: true},
	})

	app.taskMenu(context.Background(), "alice")

	plain := stripANSI(out.String())
	require.Contains(t, plain, "Sorted by priority (High to Low)")
	require.NotContains(t, plain, "1. C |")

	// High before Low once sorted.
	first := strings.Index(plain, "1. B |")
	second := strings.Index(plain, "2. A |")
	require.Greater(t, first, -1)
	require.Greater(t, second, first)

	require.Contains(t, plain, "Task 'C' is already completed!")
	require.Contains(t, plain, "Operation cancelled.")
}

func TestTaskMenu_OverdueList(t *testing.T) {
	script := "8\n\n0\n"
	app, out, store := newTestApp(t, script)
	seedTasks(t, store, "alice", []models.Task{
		{Title: "Ancient", Priority: models.PriorityHigh, Deadline: "2020-01-01", Category: "x"},
		{Title: "Far out", Priority: models.PriorityLow, Deadline: "2099-01-01", Category: "x"},
		{Title: "Done long ago", Priority: models.PriorityLow, Deadline: "2020-01-01", Category: "x", Completed: true},
	})

	app.taskMenu(context.Background(), "alice")

	plain := stripANSI(out.String())
	require.Contains(t, plain, "Unfinished Tasks for alice")
	require.Contains(t, plain, "Total unfinished tasks: 1")
	require.Contains(t, plain, "Ancient")
	require.NotContains(t, plain, "1. Far out")
	require.NotContains(t, plain, "Done long ago")
}

func TestTaskMenu_StatisticsScreen(t *testing.T) {
	script := "9\n1\n\n0\n0\n"
	app, out, store := newTestApp(t, script)
	seedTasks(t, store, "alice", []models.Task{
		{Title: "A", Priority: models.PriorityHigh, Deadline: "2099-01-01", Category: "work"},
		{Title: "B", Priority: models.PriorityLow, Deadline: "2099-01-02", Category: "work", Completed: true},
		{Title: "C", Priority: models.PriorityMedium, Deadline: "2099-01-03", Category: "home"},
	})

	app.taskMenu(context.Background(), "alice")

	plain := stripANSI(out.String())
	require.Contains(t, plain, "--- Statistics for alice ---")
	require.Contains(t, plain, "Total number of tasks: 3")
	require.Contains(t, plain, "33.3%")
	require.Contains(t, plain, "Tasks per category:")
	require.Contains(t, plain, "work: 2 task(s)")
	require.Contains(t, plain, "Top 3 categories:")
}

func TestTaskMenu_SearchByPriority(t *testing.T) {
	script := "10\n1\n1\n\n0\n0\n"
	app, out, store := newTestApp(t, script)
	seedTasks(t, store, "alice", []models.Task{
		{Title: "Urgent", Description: "do it now", Priority: models.PriorityHigh, Deadline: "2026-09-01", Category: "work"},
		{Title: "Later", Priority: models.PriorityLow, Deadline: "2026-09-02", Category: "home"},
	})

	app.taskMenu(context.Background(), "alice")

	plain := stripANSI(out.String())
	require.Contains(t, plain, "--- Tasks filtered by priority: 1 (High) ---")
	require.Contains(t, plain, "1. Urgent | Priority: 1")
	require.Contains(t, plain, "Description: do it now")
	require.NotContains(t, plain, "Later | Priority: 3")
	require.Contains(t, plain, "Found 1 tasks with priority High")
}
