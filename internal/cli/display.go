package cli

import (
	"fmt"
	"io"
	"sort"

	"github.com/dmitrijs2005/taskkeeper/internal/models"
	"github.com/dmitrijs2005/taskkeeper/internal/task"
)

// taskLine renders one task in the shared list format. username is included
// in brackets when non-empty, the cross-user views use it.
func taskLine(t models.Task, number int, username string) string {
	status := warn("Pending")
	if t.Completed {
		status = success("Done")
	}

	user := ""
	if username != "" {
		user = fmt.Sprintf("[%s] ", magenta(username))
	}

	return fmt.Sprintf("%s %s%s | %s | Priority: %s | Deadline: %s | Category: %s | Status: %s",
		info(fmt.Sprintf("%d.", number)), user, white(t.Title), t.Description,
		priorityColor(t.Priority)(int(t.Priority)), cyan(t.Deadline), magenta(t.Category), status)
}

func (a *App) showTaskList(tasks []models.Task, heading string) {
	fmt.Fprintln(a.out, title(fmt.Sprintf("\n--- %s ---", heading)))
	if len(tasks) == 0 {
		fmt.Fprintln(a.out, warn("No tasks found."))
		return
	}
	for i, t := range tasks {
		fmt.Fprintln(a.out, taskLine(t, i+1, ""))
	}
}

func (a *App) showUserTaskList(tasks []task.UserTask, heading string) {
	fmt.Fprintln(a.out, title(fmt.Sprintf("\n--- %s ---", heading)))
	if len(tasks) == 0 {
		fmt.Fprintln(a.out, warn("No tasks found."))
		return
	}
	for i, ut := range tasks {
		fmt.Fprintln(a.out, taskLine(ut.Task, i+1, ut.Username))
	}
}

// writeFilteredTask renders a search result. Unlike the plain list format the
// description moves to a dimmed second line and is omitted when empty.
func writeFilteredTask(w io.Writer, t models.Task, number int, username string) {
	status := warn("Pending")
	if t.Completed {
		status = success("Done")
	}

	user := ""
	if username != "" {
		user = fmt.Sprintf("[%s] ", cyan(username))
	}

	fmt.Fprintf(w, "%s %s%s | Priority: %s | Deadline: %s | Category: %s | Status: %s\n",
		info(fmt.Sprintf("%d.", number)), user, white(t.Title),
		priorityColor(t.Priority)(int(t.Priority)), cyan(t.Deadline), magenta(t.Category), status)
	if t.Description != "" {
		fmt.Fprintf(w, "   %s\n", dim("Description: "+t.Description))
	}
}

func (a *App) showFilteredTasks(tasks []models.Task, filterType, filterValue string) {
	fmt.Fprintln(a.out, title(fmt.Sprintf("\n--- Tasks filtered by %s: %s ---", filterType, filterValue)))
	if len(tasks) == 0 {
		fmt.Fprintln(a.out, warn("No tasks found matching the criteria."))
		return
	}
	for i, t := range tasks {
		writeFilteredTask(a.out, t, i+1, "")
	}
}

func (a *App) showFilteredUserTasks(tasks []task.UserTask, filterType, filterValue string) {
	fmt.Fprintln(a.out, title(fmt.Sprintf("\n--- All tasks filtered by %s: %s ---", filterType, filterValue)))
	if len(tasks) == 0 {
		fmt.Fprintln(a.out, warn("No tasks found matching the criteria."))
		return
	}
	for i, ut := range tasks {
		writeFilteredTask(a.out, ut.Task, i+1, ut.Username)
	}
}

// showUserStatistics renders the full statistics block for one user.
func (a *App) showUserStatistics(username string) {
	st := a.tasks.StatsFor(username)

	fmt.Fprintln(a.out, title(fmt.Sprintf("\n--- Statistics for %s ---", username)))
	if st.Total == 0 {
		fmt.Fprintln(a.out, warn("No tasks found for this user."))
		return
	}

	fmt.Fprintf(a.out, "%s %s\n", white("Total number of tasks:"), cyan(st.Total))
	fmt.Fprintf(a.out, "%s %s\n", white("Tasks completion percentage:"),
		rateColor(st.CompletionRate)(fmt.Sprintf("%.1f%%", st.CompletionRate)))
	fmt.Fprintf(a.out, "%s %s\n", white("Completed tasks:"), green(st.Completed))
	fmt.Fprintf(a.out, "%s %s\n", white("Pending tasks:"), yellow(st.Pending))
	fmt.Fprintf(a.out, "%s %s\n", white("Overdue tasks:"), red(st.Overdue))
	fmt.Fprintf(a.out, "%s %s\n", white("Number of unique categories:"), cyan(len(st.CategoryCounts)))

	if len(st.CategoryCounts) > 0 {
		fmt.Fprintln(a.out, info("\nTasks per category:"))
		for _, cat := range sortedKeys(st.CategoryCounts) {
			count := st.CategoryCounts[cat]
			pct := float64(count) / float64(st.Total) * 100
			fmt.Fprintf(a.out, "  %s %s %s %s\n", magenta("•"), white(cat+":"),
				cyan(fmt.Sprintf("%d task(s)", count)), yellow(fmt.Sprintf("(%.1f%%)", pct)))
		}
	}

	if len(st.TopCategories) > 0 {
		fmt.Fprintln(a.out, info("\nTop 3 categories:"))
		for i, cc := range st.TopCategories {
			fmt.Fprintf(a.out, "  %s %s %s\n", rankColor(i+1)(fmt.Sprintf("%d.", i+1)),
				magenta(cc.Category+":"), white(fmt.Sprintf("%d task(s)", cc.Count)))
		}
	}
}

// showGlobalStatistics renders the system-wide statistics block.
func (a *App) showGlobalStatistics() {
	gs := a.tasks.GlobalStats()

	fmt.Fprintln(a.out, title("\n--- Global Statistics ---"))
	fmt.Fprintf(a.out, "%s %s\n", white("Total users:"), cyan(gs.TotalUsers))
	fmt.Fprintf(a.out, "%s %s\n", white("Total tasks:"), cyan(gs.Overall.Total))
	fmt.Fprintf(a.out, "%s %s\n", white("Completed tasks:"), green(gs.Overall.Completed))
	fmt.Fprintf(a.out, "%s %s\n", white("Pending tasks:"), yellow(gs.Overall.Pending))
	fmt.Fprintf(a.out, "%s %s\n", white("Overdue tasks:"), red(gs.Overall.Overdue))
	fmt.Fprintf(a.out, "%s %s\n", white("Global completion rate:"),
		rateColor(gs.Overall.CompletionRate)(fmt.Sprintf("%.1f%%", gs.Overall.CompletionRate)))
	fmt.Fprintf(a.out, "%s %s\n", white("Total unique categories:"), cyan(len(gs.Overall.CategoryCounts)))

	if len(gs.Overall.TopCategories) > 0 {
		fmt.Fprintln(a.out, info("\nTop 3 most used categories globally:"))
		for i, cc := range gs.Overall.TopCategories {
			fmt.Fprintf(a.out, "  %s %s %s\n", rankColor(i+1)(fmt.Sprintf("%d.", i+1)),
				magenta(cc.Category+":"), white(fmt.Sprintf("%d task(s)", cc.Count)))
		}
	}
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
