package task

import (
	"sort"

	"github.com/dmitrijs2005/taskkeeper/internal/models"
)

// CategoryCount pairs a category with how many tasks it holds.
type CategoryCount struct {
	Category string
	Count    int
}

// UserStats aggregates one task list.
type UserStats struct {
	Total          int
	Completed      int
	Pending        int
	Overdue        int
	CompletionRate float64
	CategoryCounts map[string]int
	TopCategories  []CategoryCount
}

// GlobalStats aggregates every registered user's tasks. TotalUsers counts
// registered users whether or not they have tasks.
type GlobalStats struct {
	TotalUsers int
	Overall    UserStats
	PerUser    map[string]UserStats
}

func normalizeCategory(c string) string {
	if c == "" {
		return "Uncategorized"
	}
	return c
}

// CategoryCounts counts tasks per category. Tasks without a category land in
// "Uncategorized".
func CategoryCounts(tasks []models.Task) map[string]int {
	counts := make(map[string]int)
	for _, t := range tasks {
		counts[normalizeCategory(t.Category)]++
	}
	return counts
}

// TopCategories returns the limit most used categories, most used first.
// Ties are broken by category name so the ranking is deterministic.
func TopCategories(tasks []models.Task, limit int) []CategoryCount {
	counts := CategoryCounts(tasks)
	out := make([]CategoryCount, 0, len(counts))
	for c, n := range counts {
		out = append(out, CategoryCount{Category: c, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Category < out[j].Category
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// CompletionRate returns the percentage of tasks done, 0 for an empty list.
func CompletionRate(tasks []models.Task) float64 {
	if len(tasks) == 0 {
		return 0
	}
	return float64(len(Completed(tasks))) / float64(len(tasks)) * 100
}

// Summarize computes the statistics for one task list. The today argument
// (YYYY-MM-DD) anchors the overdue count.
func Summarize(tasks []models.Task, today string) UserStats {
	return UserStats{
		Total:          len(tasks),
		Completed:      len(Completed(tasks)),
		Pending:        len(Pending(tasks)),
		Overdue:        len(Overdue(tasks, today)),
		CompletionRate: CompletionRate(tasks),
		CategoryCounts: CategoryCounts(tasks),
		TopCategories:  TopCategories(tasks, 3),
	}
}

// StatsFor returns username's statistics as of now.
func (s *Service) StatsFor(username string) UserStats {
	today := s.now().Format(models.DeadlineLayout)
	return Summarize(s.store.LoadTasks(username), today)
}

// GlobalStats aggregates statistics across every registered user.
func (s *Service) GlobalStats() GlobalStats {
	today := s.now().Format(models.DeadlineLayout)
	perUser := make(map[string]UserStats)
	var all []models.Task
	names := s.Usernames()
	for _, name := range names {
		tasks := s.store.LoadTasks(name)
		perUser[name] = Summarize(tasks, today)
		all = append(all, tasks...)
	}
	return GlobalStats{
		TotalUsers: len(names),
		Overall:    Summarize(all, today),
		PerUser:    perUser,
	}
}
