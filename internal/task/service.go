// Package task implements the task domain: per-user task lists with
// validation, filtering, sorting and statistics, plus the cross-user views
// the admin screens work from.
package task

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/dmitrijs2005/taskkeeper/internal/logging"
	"github.com/dmitrijs2005/taskkeeper/internal/models"
)

// Store is the slice of the storage layer the task flows need. Loads are
// total: a missing or unreadable file comes back as an empty list.
type Store interface {
	LoadTasks(username string) []models.Task
	SaveTasks(username string, tasks []models.Task) error
	LoadUsers() map[string]models.UserRecord
}

// UserTask pairs a task with the user who owns it, for cross-user views.
type UserTask struct {
	Username string
	models.Task
}

// Service provides task operations on top of a Store. Task lists are read
// from the store on every call rather than cached, so concurrent sessions
// against the same data directory observe each other's saves.
type Service struct {
	store    Store
	log      logging.Logger
	validate *validator.Validate
	now      func() time.Time
}

// NewService constructs a task Service.
func NewService(store Store, log logging.Logger) *Service {
	return &Service{
		store:    store,
		log:      log,
		validate: validator.New(),
		now:      time.Now,
	}
}

// Tasks returns username's tasks in stored order.
func (s *Service) Tasks(username string) []models.Task {
	return s.store.LoadTasks(username)
}

// Add validates t and appends it to username's list.
func (s *Service) Add(ctx context.Context, username string, t models.Task) error {
	if err := s.validate.Struct(&t); err != nil {
		return fmt.Errorf("error validating task: %w", err)
	}
	tasks := append(s.store.LoadTasks(username), t)
	if err := s.store.SaveTasks(username, tasks); err != nil {
		return fmt.Errorf("error saving tasks: %w", err)
	}
	s.log.Info(ctx, "task added", "user", username, "title", t.Title)
	return nil
}

// Update validates t and replaces the task at index (zero-based). The
// completion flag of the existing task is kept; editing never completes or
// reopens a task.
func (s *Service) Update(ctx context.Context, username string, index int, t models.Task) error {
	tasks := s.store.LoadTasks(username)
	if index < 0 || index >= len(tasks) {
		return common.ErrorInvalidTaskNumber
	}
	t.Completed = tasks[index].Completed
	if err := s.validate.Struct(&t); err != nil {
		return fmt.Errorf("error validating task: %w", err)
	}
	tasks[index] = t
	if err := s.store.SaveTasks(username, tasks); err != nil {
		return fmt.Errorf("error saving tasks: %w", err)
	}
	s.log.Info(ctx, "task updated", "user", username, "title", t.Title)
	return nil
}

// Remove deletes the task at index (zero-based) and returns it.
func (s *Service) Remove(ctx context.Context, username string, index int) (models.Task, error) {
	tasks := s.store.LoadTasks(username)
	if index < 0 || index >= len(tasks) {
		return models.Task{}, common.ErrorInvalidTaskNumber
	}
	removed := tasks[index]
	tasks = append(tasks[:index], tasks[index+1:]...)
	if err := s.store.SaveTasks(username, tasks); err != nil {
		return models.Task{}, fmt.Errorf("error saving tasks: %w", err)
	}
	s.log.Info(ctx, "task removed", "user", username, "title", removed.Title)
	return removed, nil
}

// Complete marks the task at index (zero-based) as done and returns it.
// Completing an already completed task returns common.ErrorTaskCompleted
// along with the task, so callers can name it in their message.
func (s *Service) Complete(ctx context.Context, username string, index int) (models.Task, error) {
	tasks := s.store.LoadTasks(username)
	if index < 0 || index >= len(tasks) {
		return models.Task{}, common.ErrorInvalidTaskNumber
	}
	if tasks[index].Completed {
		return tasks[index], common.ErrorTaskCompleted
	}
	tasks[index].Completed = true
	if err := s.store.SaveTasks(username, tasks); err != nil {
		return models.Task{}, fmt.Errorf("error saving tasks: %w", err)
	}
	s.log.Info(ctx, "task completed", "user", username, "title", tasks[index].Title)
	return tasks[index], nil
}

// Usernames returns every registered username in sorted order. Cross-user
// views iterate this list so their output is stable run to run.
func (s *Service) Usernames() []string {
	users := s.store.LoadUsers()
	names := make([]string, 0, len(users))
	for name := range users {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Users returns the registered users keyed by username.
func (s *Service) Users() map[string]models.UserRecord {
	return s.store.LoadUsers()
}

// AllTasks returns every user's tasks with usernames attached, grouped by
// user in sorted-username order.
func (s *Service) AllTasks() []UserTask {
	var out []UserTask
	for _, name := range s.Usernames() {
		for _, t := range s.store.LoadTasks(name) {
			out = append(out, UserTask{Username: name, Task: t})
		}
	}
	return out
}

// AllPending returns every user's unfinished tasks in grouped order.
func (s *Service) AllPending() []UserTask {
	var out []UserTask
	for _, name := range s.Usernames() {
		for _, t := range Pending(s.store.LoadTasks(name)) {
			out = append(out, UserTask{Username: name, Task: t})
		}
	}
	return out
}

// AllCompleted returns every user's completed tasks in grouped order.
func (s *Service) AllCompleted() []UserTask {
	var out []UserTask
	for _, name := range s.Usernames() {
		for _, t := range Completed(s.store.LoadTasks(name)) {
			out = append(out, UserTask{Username: name, Task: t})
		}
	}
	return out
}

// UserOverdue returns username's overdue tasks sorted by deadline, most
// overdue first.
func (s *Service) UserOverdue(username string) []models.Task {
	today := s.now().Format(models.DeadlineLayout)
	return SortByDeadline(Overdue(s.store.LoadTasks(username), today))
}

// AllOverdue returns every user's overdue tasks sorted by deadline.
func (s *Service) AllOverdue() []UserTask {
	today := s.now().Format(models.DeadlineLayout)
	var out []UserTask
	for _, name := range s.Usernames() {
		for _, t := range Overdue(s.store.LoadTasks(name), today) {
			out = append(out, UserTask{Username: name, Task: t})
		}
	}
	return SortUserTasksByDeadline(out)
}
