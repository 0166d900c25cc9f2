package cli

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/taskkeeper/internal/task"
)

// adminMainMenu lets an admin pick between impersonating a user and the
// administrative screens.
func (a *App) adminMainMenu(ctx context.Context) {
	for {
		items := []string{
			green("1. ") + white("User View (impersonate any user)"),
			blue("2. ") + white("Admin View (administrative functions)"),
			red("0. ") + white("Logout"),
		}
		fullScreenMenu(a.out, items, "Welcome, Admin!", "Choose how you want to access the system")

		choice, err := readLine(a.reader, a.out, ask("Choose an option: "))
		if err != nil {
			return
		}

		switch choice {
		case "1":
			a.impersonationMenu(ctx)
		case "2":
			a.adminMenu(ctx)
		case "0":
			clearScreen(a.out)
			fmt.Fprintln(a.out, success("Logging out from admin menu..."))
			return
		default:
			fmt.Fprintln(a.out, errText("Invalid option. Please choose 0, 1, or 2."))
			a.pausePlain()
		}
	}
}

// impersonationMenu opens any user's task screen on their behalf.
func (a *App) impersonationMenu(ctx context.Context) {
	users := a.tasks.Users()
	if len(users) == 0 {
		fmt.Fprintln(a.out, warn("No users found in the system."))
		a.pausePlain()
		return
	}

	names := make([]string, 0, len(users))
	for name := range users {
		names = append(names, name)
	}
	sort.Strings(names)

	for {
		clearScreen(a.out)
		boxHeader(a.out, "User Impersonation")
		fmt.Fprintln(a.out, info("Choose a user to view their tasks as:"))
		fmt.Fprintln(a.out)

		for i, name := range names {
			badge := ""
			if users[name].Admin {
				badge = " (Admin)"
			}
			fmt.Fprintln(a.out, cyan(fmt.Sprintf("%d. ", i+1))+white(name+badge))
		}
		fmt.Fprintln(a.out, red("0. ")+white("Back to main admin menu"))
		fmt.Fprintln(a.out, border(strings.Repeat("=", 50)))

		choice, err := readLine(a.reader, a.out, ask("Choose a user: "))
		if err != nil {
			return
		}
		if choice == "0" {
			return
		}

		num, convErr := strconv.Atoi(choice)
		if convErr != nil {
			fmt.Fprintln(a.out, errText("Invalid input. Please enter a number."))
			a.pausePlain()
			continue
		}
		if num < 1 || num > len(names) {
			fmt.Fprintln(a.out, errText("Invalid choice. Please select a valid user number."))
			a.pausePlain()
			continue
		}

		selected := names[num-1]
		fmt.Fprintln(a.out, success("Switching to user view for: "+selected))
		a.pausePlain()
		a.taskMenu(ctx, selected)
	}
}

// adminMenu runs the administrative functions screen.
func (a *App) adminMenu(ctx context.Context) {
	lastAction, lastResult := "", ""

	for {
		items := []string{
			cyan("1. ") + white("List all users"),
			blue("2. ") + white("View all tasks (all users)"),
			yellow("3. ") + white("View all pending tasks (all users)"),
			magenta("4. ") + white("View all completed tasks (all users)"),
			red("5. ") + white("View all unfinished tasks (overdue)"),
			green("6. ") + white("View statistics (all users)"),
			cyan("7. ") + white("Search & Filter tasks (all users)"),
			red("0. ") + white("Back to main menu"),
		}
		fullScreenMenu(a.out, items, "Admin Management", "Administrative Functions")
		showLastAction(a.out, lastAction, lastResult)

		choice, err := readLine(a.reader, a.out, ask("Choose an option: "))
		if err != nil {
			return
		}

		switch choice {
		case "1":
			lastAction = info("List all users")
			a.listUsers()
			a.pause()
			lastResult = success("Users list displayed")
		case "2":
			lastAction = info("View all tasks")
			a.listAllTasks()
			a.pause()
			lastResult = success("All tasks from all users displayed")
		case "3":
			lastAction = info("View all pending tasks")
			a.listAllPendingSorted()
			a.pause()
			lastResult = success("All pending tasks from all users displayed")
		case "4":
			lastAction = info("View all completed tasks")
			a.listAllCompleted()
			a.pause()
			lastResult = success("All completed tasks from all users displayed")
		case "5":
			lastAction = info("View all unfinished tasks")
			a.listAllOverdue()
			a.pause()
			lastResult = success("All unfinished tasks from all users displayed")
		case "6":
			lastAction = info("View statistics")
			a.adminStatsMenu()
			lastResult = success("Statistics menu accessed")
		case "7":
			lastAction = info("Search & filter tasks")
			a.adminSearchMenu()
			lastResult = success("Search & filter menu accessed")
		case "0":
			return
		default:
			lastAction = errText("Invalid option: " + choice)
			lastResult = errText("Please choose a valid option (0-7)")
			fmt.Fprintf(a.out, "\n%s\n", lastResult)
			a.pause()
		}
	}
}

func (a *App) listUsers() {
	users := a.tasks.Users()
	fmt.Fprintln(a.out, title("\n--- Registered Users ---"))
	for i, name := range a.tasks.Usernames() {
		badge := ""
		if users[name].Admin {
			badge = " (Admin)"
		}
		fmt.Fprintf(a.out, "%s %s\n", info(fmt.Sprintf("%d.", i+1)), white(name+badge))
	}
}

func (a *App) listAllTasks() {
	all := a.tasks.AllTasks()
	if len(all) == 0 {
		fmt.Fprintln(a.out, warn("No tasks found for any user."))
		return
	}
	a.showUserTaskList(all, "All Tasks")
}

func (a *App) listAllCompleted() {
	completed := a.tasks.AllCompleted()
	if len(completed) == 0 {
		fmt.Fprintln(a.out, warn("No completed tasks found for any user."))
		return
	}
	a.showUserTaskList(completed, "All Completed Tasks")
}

func (a *App) listAllOverdue() {
	overdue := a.tasks.AllOverdue()
	if len(overdue) == 0 {
		fmt.Fprintln(a.out, warn("No unfinished tasks found for any user."))
		return
	}
	a.showUserTaskList(overdue, "All Unfinished Tasks")
	fmt.Fprintf(a.out, "\n%s\n", red(fmt.Sprintf("Total unfinished tasks: %d", len(overdue))))
}

// listAllPendingSorted shows every user's pending tasks after asking for a
// sort order. Option 4 keeps them grouped per user instead of one flat list.
func (a *App) listAllPendingSorted() {
	pending := a.tasks.AllPending()
	if len(pending) == 0 {
		fmt.Fprintln(a.out, warn("No pending tasks found for any user."))
		return
	}

	fmt.Fprintln(a.out, title("\n--- All Pending Tasks ---"))
	fmt.Fprintln(a.out, cyan("Choose sorting option:"))
	fmt.Fprintln(a.out, yellow("1. ")+white("By Priority (High to Low)"))
	fmt.Fprintln(a.out, yellow("2. ")+white("By Deadline (Earliest first)"))
	fmt.Fprintln(a.out, yellow("3. ")+white("By User (Alphabetical)"))
	fmt.Fprintln(a.out, yellow("4. ")+white("No sorting (by user, original order)"))

	choice, err := readLine(a.reader, a.out, ask("Enter your choice (1-4): "))
	if err != nil {
		return
	}

	switch choice {
	case "1":
		pending = task.SortUserTasksByPriority(pending)
		fmt.Fprintln(a.out, info("Sorted by priority (High to Low), then by user"))
	case "2":
		pending = task.SortUserTasksByDeadline(pending)
		fmt.Fprintln(a.out, info("Sorted by deadline (Earliest first), then by user"))
	case "3":
		pending = task.SortUserTasksByUser(pending)
		fmt.Fprintln(a.out, info("Sorted by user (Alphabetical), then by deadline"))
	case "4":
		fmt.Fprintln(a.out, info("Grouped by user, original order"))
		a.showPendingGroupedByUser(pending)
		return
	default:
		fmt.Fprintln(a.out, warn("Invalid choice, showing grouped by user"))
		a.showPendingGroupedByUser(pending)
		return
	}

	fmt.Fprintln(a.out)
	a.showUserTaskList(pending, "All Pending Tasks")
}

func (a *App) showPendingGroupedByUser(pending []task.UserTask) {
	for _, name := range a.tasks.Usernames() {
		var group []task.UserTask
		for _, ut := range pending {
			if ut.Username == name {
				group = append(group, ut)
			}
		}
		if len(group) == 0 {
			continue
		}
		fmt.Fprintln(a.out, title(fmt.Sprintf("\n--- Pending Tasks for %s ---", name)))
		for i, ut := range group {
			fmt.Fprintln(a.out, taskLine(ut.Task, i+1, ""))
		}
	}
}
