package cli

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/taskkeeper/internal/models"
	"github.com/dmitrijs2005/taskkeeper/internal/task"
)

// searchMenu runs the search screen over one user's tasks.
func (a *App) searchMenu(username string) {
	lastAction, lastResult := "", ""

	for {
		clearScreen(a.out)
		boxHeader(a.out, "Search & Filter - "+username)
		showLastAction(a.out, lastAction, lastResult)

		fmt.Fprintln(a.out, title("\n--- Search & Filter Menu ---"))
		fmt.Fprintln(a.out, green("1. ")+white("Search by priority"))
		fmt.Fprintln(a.out, blue("2. ")+white("Search by category"))
		fmt.Fprintln(a.out, yellow("3. ")+white("Search by date range"))
		fmt.Fprintln(a.out, red("0. ")+white("Back to main menu"))

		choice, err := readLine(a.reader, a.out, ask("Choose an option: "))
		if err != nil {
			return
		}

		switch choice {
		case "1":
			lastAction = info("Search by priority")
			fmt.Fprintf(a.out, "\n%s\n", cyan("Priority options: 1=High, 2=Medium, 3=Low"))
			v, err := readLine(a.reader, a.out, ask("Enter priority (1, 2, or 3): "))
			if err != nil {
				return
			}
			p, perr := models.ParsePriority(v)
			if perr != nil {
				lastResult = errText("Invalid priority. Please enter 1, 2, or 3.")
				fmt.Fprintf(a.out, "\n%s\n", lastResult)
				break
			}
			filtered := task.ByPriority(a.tasks.Tasks(username), p)
			a.showFilteredTasks(filtered, "priority", fmt.Sprintf("%d (%s)", p, p))
			lastResult = success(fmt.Sprintf("Found %d tasks with priority %s", len(filtered), p))

		case "2":
			lastAction = info("Search by category")
			category, err := readLine(a.reader, a.out, ask("Enter category to search for: "))
			if err != nil {
				return
			}
			if category == "" {
				lastResult = errText("Category cannot be empty.")
				fmt.Fprintf(a.out, "\n%s\n", lastResult)
				break
			}
			filtered := task.ByCategory(a.tasks.Tasks(username), category)
			a.showFilteredTasks(filtered, "category", category)
			lastResult = success(fmt.Sprintf("Found %d tasks in category '%s'", len(filtered), category))

		case "3":
			lastAction = info("Search by date range")
			fmt.Fprintln(a.out, cyan("Enter date range (YYYY-MM-DD format)"))
			start, err := readLine(a.reader, a.out, ask("Start date: "))
			if err != nil {
				return
			}
			end, err := readLine(a.reader, a.out, ask("End date: "))
			if err != nil {
				return
			}
			if !validDeadline(start) || !validDeadline(end) {
				lastResult = errText("Invalid date format. Please use YYYY-MM-DD format.")
				fmt.Fprintf(a.out, "\n%s\n", lastResult)
				break
			}
			filtered := task.ByDeadlineRange(a.tasks.Tasks(username), start, end)
			a.showFilteredTasks(filtered, "date range", start+" to "+end)
			lastResult = success(fmt.Sprintf("Found %d tasks in date range", len(filtered)))

		case "0":
			return

		default:
			lastAction = errText("Invalid option: " + choice)
			lastResult = errText("Invalid option. Try again.")
			fmt.Fprintf(a.out, "\n%s\n", lastResult)
		}

		a.pause()
	}
}

// adminSearchMenu runs the search screen across every user's tasks.
func (a *App) adminSearchMenu() {
	lastAction, lastResult := "", ""

	for {
		clearScreen(a.out)
		boxHeader(a.out, "Admin Search & Filter")
		showLastAction(a.out, lastAction, lastResult)

		fmt.Fprintln(a.out, title("\n--- Admin Search & Filter Menu ---"))
		fmt.Fprintln(a.out, green("1. ")+white("Search by priority (all users)"))
		fmt.Fprintln(a.out, blue("2. ")+white("Search by category (all users)"))
		fmt.Fprintln(a.out, yellow("3. ")+white("Search by date range (all users)"))
		fmt.Fprintln(a.out, red("0. ")+white("Back to admin menu"))

		choice, err := readLine(a.reader, a.out, ask("Choose an option: "))
		if err != nil {
			return
		}

		switch choice {
		case "1":
			lastAction = info("Search by priority")
			fmt.Fprintf(a.out, "\n%s\n", cyan("Priority options: 1=High, 2=Medium, 3=Low"))
			v, err := readLine(a.reader, a.out, ask("Enter priority (1, 2, or 3): "))
			if err != nil {
				return
			}
			p, perr := models.ParsePriority(v)
			if perr != nil {
				lastResult = errText("Invalid priority entered")
				fmt.Fprintf(a.out, "\n%s\n", lastResult)
				break
			}
			var filtered []task.UserTask
			for _, ut := range a.tasks.AllTasks() {
				if ut.Priority == p {
					filtered = append(filtered, ut)
				}
			}
			a.showFilteredUserTasks(filtered, "priority", fmt.Sprintf("%d (%s)", p, p))
			lastResult = success(fmt.Sprintf("Found %d tasks with priority %s", len(filtered), p))

		case "2":
			lastAction = info("Search by category")
			category, err := readLine(a.reader, a.out, ask("Enter category to search for: "))
			if err != nil {
				return
			}
			if category == "" {
				lastResult = errText("No category provided")
				fmt.Fprintf(a.out, "\n%s\n", lastResult)
				break
			}
			var filtered []task.UserTask
			for _, ut := range a.tasks.AllTasks() {
				if strings.EqualFold(ut.Category, category) {
					filtered = append(filtered, ut)
				}
			}
			a.showFilteredUserTasks(filtered, "category", category)
			lastResult = success(fmt.Sprintf("Found %d tasks in category '%s'", len(filtered), category))

		case "3":
			lastAction = info("Search by date range")
			fmt.Fprintln(a.out, cyan("Enter date range (YYYY-MM-DD format)"))
			start, err := readLine(a.reader, a.out, ask("Start date: "))
			if err != nil {
				return
			}
			end, err := readLine(a.reader, a.out, ask("End date: "))
			if err != nil {
				return
			}
			if !validDeadline(start) || !validDeadline(end) {
				lastResult = errText("Invalid date format provided")
				fmt.Fprintf(a.out, "\n%s\n", lastResult)
				break
			}
			var filtered []task.UserTask
			for _, ut := range a.tasks.AllTasks() {
				if ut.Deadline >= start && ut.Deadline <= end {
					filtered = append(filtered, ut)
				}
			}
			a.showFilteredUserTasks(filtered, "date range", start+" to "+end)
			lastResult = success(fmt.Sprintf("Found %d tasks in date range", len(filtered)))

		case "0":
			return

		default:
			lastAction = errText("Invalid option: " + choice)
			lastResult = errText("Please choose a valid option (0-3)")
			fmt.Fprintf(a.out, "\n%s\n", lastResult)
		}

		a.pause()
	}
}
