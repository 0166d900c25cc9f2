package task

import (
	"sort"
	"strings"

	"github.com/dmitrijs2005/taskkeeper/internal/models"
)

func filter(tasks []models.Task, keep func(models.Task) bool) []models.Task {
	var out []models.Task
	for _, t := range tasks {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}

// Completed returns the tasks marked done, in original order.
func Completed(tasks []models.Task) []models.Task {
	return filter(tasks, func(t models.Task) bool { return t.Completed })
}

// Pending returns the tasks not yet done, in original order.
func Pending(tasks []models.Task) []models.Task {
	return filter(tasks, func(t models.Task) bool { return !t.Completed })
}

// Overdue returns the pending tasks whose deadline is strictly before today
// (YYYY-MM-DD). A completed task is never overdue, and a task due today is
// not overdue yet.
func Overdue(tasks []models.Task, today string) []models.Task {
	return filter(tasks, func(t models.Task) bool {
		return !t.Completed && t.Deadline != "" && t.Deadline < today
	})
}

// ByPriority returns the tasks with exactly priority p.
func ByPriority(tasks []models.Task, p models.Priority) []models.Task {
	return filter(tasks, func(t models.Task) bool { return t.Priority == p })
}

// ByCategory returns the tasks in category, compared case-insensitively.
func ByCategory(tasks []models.Task, category string) []models.Task {
	return filter(tasks, func(t models.Task) bool { return strings.EqualFold(t.Category, category) })
}

// ByDeadlineRange returns the tasks with start <= deadline <= end, both ends
// inclusive. Dates are YYYY-MM-DD strings, which order correctly as text.
func ByDeadlineRange(tasks []models.Task, start, end string) []models.Task {
	return filter(tasks, func(t models.Task) bool {
		return t.Deadline >= start && t.Deadline <= end
	})
}

// SortByPriority returns a copy sorted high to low. The sort is stable, so
// tasks sharing a priority keep their stored order.
func SortByPriority(tasks []models.Task) []models.Task {
	out := make([]models.Task, len(tasks))
	copy(out, tasks)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Priority < out[j].Priority })
	return out
}

// SortByDeadline returns a copy sorted earliest deadline first. Stable.
func SortByDeadline(tasks []models.Task) []models.Task {
	out := make([]models.Task, len(tasks))
	copy(out, tasks)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Deadline < out[j].Deadline })
	return out
}

// SortUserTasksByPriority returns a copy sorted high to low, ties broken by
// username.
func SortUserTasksByPriority(tasks []UserTask) []UserTask {
	out := make([]UserTask, len(tasks))
	copy(out, tasks)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Priority != out[j].Priority {
			return out[i].Priority < out[j].Priority
		}
		return out[i].Username < out[j].Username
	})
	return out
}

// SortUserTasksByDeadline returns a copy sorted earliest deadline first,
// ties broken by username.
func SortUserTasksByDeadline(tasks []UserTask) []UserTask {
	out := make([]UserTask, len(tasks))
	copy(out, tasks)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Deadline != out[j].Deadline {
			return out[i].Deadline < out[j].Deadline
		}
		return out[i].Username < out[j].Username
	})
	return out
}

// SortUserTasksByUser returns a copy sorted by username, then deadline.
func SortUserTasksByUser(tasks []UserTask) []UserTask {
	out := make([]UserTask, len(tasks))
	copy(out, tasks)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Username != out[j].Username {
			return out[i].Username < out[j].Username
		}
		return out[i].Deadline < out[j].Deadline
	})
	return out
}
