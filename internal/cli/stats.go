package cli

import (
	"fmt"

	"github.com/dmitrijs2005/taskkeeper/internal/task"
)

func categoryWord(n int) string {
	if n == 1 {
		return "y"
	}
	return "ies"
}

// userStatsMenu runs the statistics screen for one user.
func (a *App) userStatsMenu(username string) {
	lastAction, lastResult := "", ""

	for {
		clearScreen(a.out)
		showLastAction(a.out, lastAction, lastResult)
		boxHeader(a.out, "Statistics - "+username)
		fmt.Fprintln(a.out, title(fmt.Sprintf("\n--- Statistics Menu - %s ---", username)))
		fmt.Fprintln(a.out, cyan("1. ")+white("View all statistics"))
		fmt.Fprintln(a.out, green("2. ")+white("Total number of tasks"))
		fmt.Fprintln(a.out, blue("3. ")+white("Tasks completion percentage"))
		fmt.Fprintln(a.out, magenta("4. ")+white("Unique categories"))
		fmt.Fprintln(a.out, yellow("5. ")+white("Number of tasks per category"))
		fmt.Fprintln(a.out, cyan("6. ")+white("Top 3 most used categories"))
		fmt.Fprintln(a.out, green("7. ")+white("View unfinished tasks"))
		fmt.Fprintln(a.out, blue("8. ")+white("Search & Filter tasks"))
		fmt.Fprintln(a.out, red("0. ")+white("Back to task manager menu"))

		choice, err := readLine(a.reader, a.out, ask("Choose an option: "))
		if err != nil {
			return
		}

		switch choice {
		case "1":
			a.showUserStatistics(username)
			lastAction = success("View all statistics")
			lastResult = success("All statistics displayed successfully")
			a.pause()

		case "2":
			total := len(a.tasks.Tasks(username))
			fmt.Fprintf(a.out, "\n%s %s\n", white("Total number of tasks:"), cyan(total))
			lastAction = success("Total number of tasks")
			lastResult = success(fmt.Sprintf("Found %d tasks", total))
			a.pause()

		case "3":
			pct := task.CompletionRate(a.tasks.Tasks(username))
			fmt.Fprintf(a.out, "\n%s%s\n", white("Tasks completion percentage:"),
				rateColor(pct)(fmt.Sprintf("%.1f%%", pct)))
			lastAction = success("Tasks completion percentage")
			lastResult = success(fmt.Sprintf("Completion rate: %.1f%%", pct))
			a.pause()

		case "4":
			counts := task.CategoryCounts(a.tasks.Tasks(username))
			fmt.Fprintf(a.out, "\n%s%s%s\n", white("Unique categories ("), cyan(len(counts)), white("):"))
			for _, cat := range sortedKeys(counts) {
				fmt.Fprintf(a.out, "  %s %s\n", magenta("•"), white(cat))
			}
			lastAction = success("Unique categories")
			lastResult = success(fmt.Sprintf("Found %d unique categories", len(counts)))
			a.pause()

		case "5":
			tasks := a.tasks.Tasks(username)
			counts := task.CategoryCounts(tasks)
			if len(counts) > 0 {
				fmt.Fprintln(a.out, info("\nNumber of tasks per category:"))
				for _, cat := range sortedKeys(counts) {
					count := counts[cat]
					pct := 0.0
					if len(tasks) > 0 {
						pct = float64(count) / float64(len(tasks)) * 100
					}
					fmt.Fprintf(a.out, "  %s %s %s %s\n", magenta("•"), white(cat+":"),
						cyan(fmt.Sprintf("%d task(s)", count)), yellow(fmt.Sprintf("(%.1f%%)", pct)))
				}
				lastAction = success("Number of tasks per category")
				lastResult = success(fmt.Sprintf("Displayed tasks for %d categories", len(counts)))
			} else {
				fmt.Fprintln(a.out, warn("\nNo categories found."))
				lastAction = warn("Number of tasks per category")
				lastResult = warn("No categories found")
			}
			a.pause()

		case "6":
			tasks := a.tasks.Tasks(username)
			top := task.TopCategories(tasks, 3)
			if len(top) > 0 {
				fmt.Fprintln(a.out, info("\nTop 3 most used categories:"))
				for i, cc := range top {
					pct := 0.0
					if len(tasks) > 0 {
						pct = float64(cc.Count) / float64(len(tasks)) * 100
					}
					fmt.Fprintf(a.out, "  %s %s %s %s\n", rankColor(i+1)(fmt.Sprintf("%d.", i+1)),
						white(cc.Category+":"), cyan(fmt.Sprintf("%d task(s)", cc.Count)),
						yellow(fmt.Sprintf("(%.1f%%)", pct)))
				}
				if len(top) < 3 {
					fmt.Fprintln(a.out, warn(fmt.Sprintf("  Note: Only %d categor%s found.", len(top), categoryWord(len(top)))))
				}
				lastAction = success("Top 3 most used categories")
				lastResult = success(fmt.Sprintf("Displayed top %d categories", len(top)))
			} else {
				fmt.Fprintln(a.out, warn("\nNo categories found."))
				lastAction = warn("Top 3 most used categories")
				lastResult = warn("No categories found")
			}
			a.pause()

		case "7":
			lastAction = info("View unfinished tasks")
			a.listUserOverdue(username)
			lastResult = success("Unfinished tasks displayed")
			a.pause()

		case "8":
			lastAction = info("Search & Filter tasks")
			a.searchMenu(username)
			lastResult = success("Search & filter menu accessed")

		case "0":
			return

		default:
			lastAction = errText("Invalid option: " + choice)
			lastResult = errText("Please choose a valid option")
			fmt.Fprintf(a.out, "\n%s\n", lastResult)
			a.pause()
		}
	}
}

// adminStatsMenu runs the statistics screen covering every user.
func (a *App) adminStatsMenu() {
	lastAction, lastResult := "", ""

	for {
		clearScreen(a.out)
		showLastAction(a.out, lastAction, lastResult)
		boxHeader(a.out, "Admin Statistics")
		fmt.Fprintln(a.out, title("\n--- Statistics Menu ---"))
		fmt.Fprintln(a.out, green("1. ")+white("Total tasks per user"))
		fmt.Fprintln(a.out, blue("2. ")+white("Task completion percentage per user"))
		fmt.Fprintln(a.out, magenta("3. ")+white("Number of tasks per category"))
		fmt.Fprintln(a.out, yellow("4. ")+white("Top 3 most used categories"))
		fmt.Fprintln(a.out, cyan("5. ")+white("View all unfinished tasks"))
		fmt.Fprintln(a.out, green("6. ")+white("Global statistics overview"))
		fmt.Fprintln(a.out, red("0. ")+white("Back"))

		choice, err := readLine(a.reader, a.out, ask("Choose an option: "))
		if err != nil {
			return
		}

		switch choice {
		case "1":
			a.totalTasksPerUser()
			a.pause()
			lastAction = success("Total tasks per user")
			lastResult = success("Statistics displayed successfully")

		case "2":
			a.completionPerUser()
			a.pause()
			lastAction = success("Task completion percentage per user")
			lastResult = success("Statistics displayed successfully")

		case "3":
			a.globalTasksPerCategory()
			a.pause()
			lastAction = success("Number of tasks per category")
			lastResult = success("Statistics displayed successfully")

		case "4":
			a.globalTopCategories()
			a.pause()
			lastAction = success("Top 3 most used categories")
			lastResult = success("Top categories displayed successfully")

		case "5":
			a.listAllOverdue()
			a.pause()
			lastAction = success("View all unfinished tasks")
			lastResult = success("Unfinished tasks displayed successfully")

		case "6":
			a.showGlobalStatistics()
			a.pause()
			lastAction = success("Global statistics overview")
			lastResult = success("Global statistics displayed successfully")

		case "0":
			return

		default:
			lastAction = errText("Invalid option: " + choice)
			lastResult = errText("Please choose a valid option")
			fmt.Fprintf(a.out, "\n%s\n", lastResult)
			a.pause()
		}
	}
}

func (a *App) totalTasksPerUser() {
	names := a.tasks.Usernames()
	fmt.Fprintln(a.out, title("\n--- Total Number of Tasks Per User ---"))
	if len(names) == 0 {
		fmt.Fprintln(a.out, warn("No users found in the system."))
		return
	}
	for _, name := range names {
		fmt.Fprintf(a.out, "%s %s %s\n", cyan(name+":"),
			white(len(a.tasks.Tasks(name))), info("task(s)"))
	}
}

func (a *App) completionPerUser() {
	fmt.Fprintln(a.out, title("\n--- Percentage of Completed Tasks Per User ---"))
	for _, name := range a.tasks.Usernames() {
		tasks := a.tasks.Tasks(name)
		pct := task.CompletionRate(tasks)
		completed := len(task.Completed(tasks))
		fmt.Fprintf(a.out, "%s %s completed (%s/%s)\n", cyan(name+":"),
			rateColor(pct)(fmt.Sprintf("%.2f%%", pct)), green(completed), blue(len(tasks)))
	}
}

func (a *App) globalTasksPerCategory() {
	counts := a.tasks.GlobalStats().Overall.CategoryCounts
	fmt.Fprintln(a.out, title("\n--- Number of Tasks Per Category ---"))
	if len(counts) == 0 {
		fmt.Fprintln(a.out, warn("No categories found."))
		return
	}
	for _, cat := range sortedKeys(counts) {
		fmt.Fprintf(a.out, "%s %s %s\n", magenta(cat+":"), white(counts[cat]), info("task(s)"))
	}
}

func (a *App) globalTopCategories() {
	top := a.tasks.GlobalStats().Overall.TopCategories
	if len(top) == 0 {
		fmt.Fprintln(a.out, warn("\nNo categories found."))
		return
	}
	fmt.Fprintln(a.out, title("\n--- Top 3 Most Used Categories ---"))
	for i, cc := range top {
		fmt.Fprintf(a.out, "%s %s %s %s\n", rankColor(i+1)(fmt.Sprintf("%d.", i+1)),
			magenta(cc.Category+":"), white(cc.Count), info("task(s)"))
	}
	if len(top) < 3 {
		fmt.Fprintln(a.out, warn(fmt.Sprintf("\nNote: Only %d categor%s found in the system.", len(top), categoryWord(len(top)))))
	}
}
