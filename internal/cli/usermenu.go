package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/dmitrijs2005/taskkeeper/internal/models"
	"github.com/dmitrijs2005/taskkeeper/internal/task"
)

// taskMenu runs the task management screen for one user. Admins reach it
// through impersonation as well as through their own login.
func (a *App) taskMenu(ctx context.Context, username string) {
	lastAction, lastResult := "", ""

	clearScreen(a.out)
	boxHeader(a.out, fmt.Sprintf("Welcome, %s!", username))
	fmt.Fprintln(a.out, info("You can manage your personal tasks here."))
	fmt.Fprintln(a.out, info("Add, edit, complete, and organize your tasks."))

	for {
		items := []string{
			green("1. ") + white("Add new task"),
			blue("2. ") + white("Edit a task"),
			red("3. ") + white("Remove a task"),
			yellow("4. ") + white("List pending tasks"),
			magenta("5. ") + white("Mark task as completed"),
			cyan("6. ") + white("View completed tasks"),
			white("7. ") + white("List all tasks"),
			red("8. ") + white("View unfinished tasks (overdue)"),
			green("9. ") + white("Statistics"),
			blue("10. ") + white("Search & Filter tasks"),
			red("0. ") + white("Logout"),
		}
		fullScreenMenu(a.out, items, "Task Management - "+username, "Personal Task Management System")
		showLastAction(a.out, lastAction, lastResult)

		choice, err := readLine(a.reader, a.out, ask("Choose an option: "))
		if err != nil {
			return
		}

		switch choice {
		case "1":
			lastAction = success("Add new task")
			a.addTask(ctx, username)
			lastResult = success("Task addition process completed")
			a.pause()
		case "2":
			lastAction = info("Edit task")
			a.editTask(ctx, username)
			lastResult = success("Task editing process completed")
			a.pause()
		case "3":
			lastAction = warn("Remove task")
			a.removeTask(ctx, username)
			lastResult = success("Task removal process completed")
			a.pause()
		case "4":
			lastAction = info("List pending tasks")
			a.listPendingSorted(username)
			lastResult = success("Pending tasks displayed")
		case "5":
			lastAction = info("Mark task as completed")
			a.markTaskDone(ctx, username)
			lastResult = success("Task completion process executed")
			a.pause()
		case "6":
			lastAction = info("View completed tasks")
			a.showTaskList(task.Completed(a.tasks.Tasks(username)), "Completed Tasks")
			lastResult = success("Completed tasks displayed")
			a.pause()
		case "7":
			lastAction = info("List all tasks")
			a.showTaskList(a.tasks.Tasks(username), "Task List")
			lastResult = success("All tasks displayed")
			a.pause()
		case "8":
			lastAction = info("View unfinished tasks")
			a.listUserOverdue(username)
			lastResult = success("Unfinished tasks displayed")
			a.pause()
		case "9":
			lastAction = info("View statistics")
			a.userStatsMenu(username)
			lastResult = success("Statistics menu accessed")
		case "10":
			lastAction = info("Search & filter tasks")
			a.searchMenu(username)
			lastResult = success("Search & filter menu accessed")
		case "0":
			clearScreen(a.out)
			fmt.Fprintln(a.out, success("Logging out..."))
			return
		default:
			lastAction = errText("Invalid option: " + choice)
			lastResult = errText("Please choose a valid option (0-10)")
			a.pause()
		}
	}
}

func validDeadline(s string) bool {
	_, err := time.Parse(models.DeadlineLayout, s)
	return err == nil
}

// addTask collects a new task field by field, re-prompting until each
// required field is valid.
func (a *App) addTask(ctx context.Context, username string) {
	fmt.Fprintln(a.out, title("\n--- Add New Task ---"))

	var t models.Task
	for {
		v, err := readLine(a.reader, a.out, ask("Title (required): "))
		if err != nil {
			return
		}
		if v != "" {
			t.Title = v
			break
		}
		fmt.Fprintln(a.out, errText("Error: Title is required. Please enter a title."))
	}

	desc, err := readLine(a.reader, a.out, ask("Description (optional): "))
	if err != nil {
		return
	}
	t.Description = desc

	for {
		v, err := readLine(a.reader, a.out, ask("Priority (1=High, 2=Medium, 3=Low): "))
		if err != nil {
			return
		}
		p, perr := models.ParsePriority(v)
		if perr == nil {
			t.Priority = p
			break
		}
		fmt.Fprintln(a.out, errText("Error: Priority must be 1, 2, or 3. Please try again."))
	}

	for {
		v, err := readLine(a.reader, a.out, ask("Deadline (YYYY-MM-DD, required): "))
		if err != nil {
			return
		}
		if v == "" {
			fmt.Fprintln(a.out, errText("Error: Deadline is required. Please enter a deadline."))
			continue
		}
		if validDeadline(v) {
			t.Deadline = v
			break
		}
		fmt.Fprintln(a.out, errText("Error: Deadline must be in YYYY-MM-DD format (e.g., 2025-12-31)."))
	}

	for {
		v, err := readLine(a.reader, a.out, ask("Category (required): "))
		if err != nil {
			return
		}
		if v != "" {
			t.Category = v
			break
		}
		fmt.Fprintln(a.out, errText("Error: Category is required. Please enter a category."))
	}

	if err := a.tasks.Add(ctx, username, t); err != nil {
		a.log.Error(ctx, "error adding task", "error", err)
		fmt.Fprintln(a.out, errText("An error occurred: "+err.Error()))
		return
	}
	fmt.Fprintln(a.out, success("Task added successfully!"))
}

// editTask updates an existing task. Blank answers keep the current value,
// non-blank priority and deadline answers must be valid.
func (a *App) editTask(ctx context.Context, username string) {
	tasks := a.tasks.Tasks(username)
	a.showTaskList(tasks, "Task List")
	if len(tasks) == 0 {
		fmt.Fprintln(a.out, warn("No tasks available to edit."))
		return
	}

	numText, err := readLine(a.reader, a.out, ask("Enter the task number to edit: "))
	if err != nil {
		return
	}
	num, convErr := strconv.Atoi(numText)
	if convErr != nil {
		fmt.Fprintln(a.out, errText("Invalid input. Please enter a valid task number."))
		return
	}
	idx := num - 1
	if idx < 0 || idx >= len(tasks) {
		fmt.Fprintln(a.out, errText("Invalid task number."))
		return
	}

	current := tasks[idx]
	edited := current
	fmt.Fprintln(a.out, info("Leave blank to keep current value."))

	if v, err := readLine(a.reader, a.out, fmt.Sprintf("New title [%s]: ", cyan(current.Title))); err != nil {
		return
	} else if v != "" {
		edited.Title = v
	}

	if v, err := readLine(a.reader, a.out, fmt.Sprintf("New description [%s]: ", cyan(current.Description))); err != nil {
		return
	} else if v != "" {
		edited.Description = v
	}

	for {
		v, err := readLine(a.reader, a.out, fmt.Sprintf("New priority [%s]: ", cyan(int(current.Priority))))
		if err != nil {
			return
		}
		if v == "" {
			break
		}
		p, perr := models.ParsePriority(v)
		if perr != nil {
			fmt.Fprintln(a.out, errText("Error: Priority must be 1, 2, or 3. Please try again."))
			continue
		}
		edited.Priority = p
		break
	}

	for {
		v, err := readLine(a.reader, a.out, fmt.Sprintf("New deadline [%s]: ", cyan(current.Deadline)))
		if err != nil {
			return
		}
		if v == "" {
			break
		}
		if !validDeadline(v) {
			fmt.Fprintln(a.out, errText("Error: Deadline must be in YYYY-MM-DD format (e.g., 2025-12-31)."))
			continue
		}
		edited.Deadline = v
		break
	}

	if v, err := readLine(a.reader, a.out, fmt.Sprintf("New category [%s]: ", cyan(current.Category))); err != nil {
		return
	} else if v != "" {
		edited.Category = v
	}

	if err := a.tasks.Update(ctx, username, idx, edited); err != nil {
		a.log.Error(ctx, "error updating task", "error", err)
		fmt.Fprintln(a.out, errText("An error occurred: "+err.Error()))
		return
	}
	fmt.Fprintln(a.out, success("Task updated successfully!"))
}

func (a *App) removeTask(ctx context.Context, username string) {
	tasks := a.tasks.Tasks(username)
	a.showTaskList(tasks, "Task List")
	if len(tasks) == 0 {
		fmt.Fprintln(a.out, warn("No tasks available to remove."))
		return
	}

	numText, err := readLine(a.reader, a.out, ask("Enter the task number to remove: "))
	if err != nil {
		return
	}
	num, convErr := strconv.Atoi(numText)
	if convErr != nil {
		fmt.Fprintln(a.out, errText("Invalid input. Please enter a valid task number."))
		return
	}

	removed, err := a.tasks.Remove(ctx, username, num-1)
	switch {
	case errors.Is(err, common.ErrorInvalidTaskNumber):
		fmt.Fprintln(a.out, errText("Invalid task number."))
	case err != nil:
		a.log.Error(ctx, "error removing task", "error", err)
		fmt.Fprintln(a.out, errText("An error occurred: "+err.Error()))
	default:
		fmt.Fprintln(a.out, success(fmt.Sprintf("Task '%s' removed successfully!", removed.Title)))
	}
}

// markTaskDone completes a task picked from the full numbered list. The
// prompt loops so a mistyped number or an already finished task does not
// throw the user back to the menu.
func (a *App) markTaskDone(ctx context.Context, username string) {
	tasks := a.tasks.Tasks(username)
	a.showTaskList(tasks, "Task List")
	if len(tasks) == 0 {
		fmt.Fprintln(a.out, warn("No tasks available to mark as done."))
		return
	}

	for {
		v, err := readLine(a.reader, a.out, ask("Enter the task number to mark as done (or 'q' to quit): "))
		if err != nil {
			return
		}

		switch strings.ToLower(v) {
		case "q", "quit", "exit":
			fmt.Fprintln(a.out, info("Operation cancelled."))
			return
		}

		num, convErr := strconv.Atoi(v)
		if convErr != nil {
			fmt.Fprintln(a.out, errText("Error: Please enter a valid number or 'q' to quit."))
			continue
		}

		done, err := a.tasks.Complete(ctx, username, num-1)
		switch {
		case errors.Is(err, common.ErrorInvalidTaskNumber):
			fmt.Fprintln(a.out, errText(fmt.Sprintf("Error: Please enter a number between 1 and %d or 'q' to quit.", len(tasks))))
		case errors.Is(err, common.ErrorTaskCompleted):
			fmt.Fprintln(a.out, warn(fmt.Sprintf("Task '%s' is already completed!", done.Title)))
			again, cerr := readConfirm(a.reader, a.out, ask("Try another task? (y/n): "))
			if cerr != nil || !again {
				return
			}
		case err != nil:
			a.log.Error(ctx, "error completing task", "error", err)
			fmt.Fprintln(a.out, errText("An error occurred: "+err.Error()))
			return
		default:
			fmt.Fprintln(a.out, success(fmt.Sprintf("Task '%s' marked as completed!", done.Title)))
			return
		}
	}
}

// listPendingSorted shows pending tasks after asking for a sort order.
func (a *App) listPendingSorted(username string) {
	pending := task.Pending(a.tasks.Tasks(username))
	if len(pending) == 0 {
		fmt.Fprintln(a.out, warn("No pending tasks found."))
		a.pause()
		return
	}

	fmt.Fprintln(a.out, title("\n--- Pending Tasks ---"))
	fmt.Fprintln(a.out, cyan("Choose sorting option:"))
	fmt.Fprintln(a.out, yellow("1. ")+white("By Priority (High to Low)"))
	fmt.Fprintln(a.out, yellow("2. ")+white("By Deadline (Earliest first)"))
	fmt.Fprintln(a.out, yellow("3. ")+white("No sorting (original order)"))

	choice, err := readLine(a.reader, a.out, ask("Enter your choice (1-3): "))
	if err != nil {
		return
	}
	switch choice {
	case "1":
		pending = task.SortByPriority(pending)
		fmt.Fprintln(a.out, info("Sorted by priority (High to Low)"))
	case "2":
		pending = task.SortByDeadline(pending)
		fmt.Fprintln(a.out, info("Sorted by deadline (Earliest first)"))
	case "3":
		fmt.Fprintln(a.out, info("Original order"))
	default:
		fmt.Fprintln(a.out, warn("Invalid choice, showing in original order"))
	}

	a.showTaskList(pending, "Pending Tasks")
	a.pause()
}

func (a *App) listUserOverdue(username string) {
	overdue := a.tasks.UserOverdue(username)
	if len(overdue) == 0 {
		fmt.Fprintln(a.out, warn("No unfinished tasks found."))
		return
	}
	a.showTaskList(overdue, fmt.Sprintf("Unfinished Tasks for %s", username))
	fmt.Fprintf(a.out, "\n%s\n", red(fmt.Sprintf("Total unfinished tasks: %d", len(overdue))))
}
