// Package cli implements the interactive terminal frontend: the entry menu
// with login, registration and admin creation, and the per-user and admin
// task management screens behind it.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/taskkeeper/internal/auth"
	"github.com/dmitrijs2005/taskkeeper/internal/config"
	"github.com/dmitrijs2005/taskkeeper/internal/logging"
	"github.com/dmitrijs2005/taskkeeper/internal/models"
	"github.com/dmitrijs2005/taskkeeper/internal/storage"
	"github.com/dmitrijs2005/taskkeeper/internal/task"
)

// App wires the services to an interactive terminal session. All screens
// share one reader so buffered input is never lost between prompts.
type App struct {
	config *config.Config
	log    logging.Logger
	auth   *auth.Service
	tasks  *task.Service
	state  *models.State
	reader *bufio.Reader
	out    io.Writer

	lastAction string
	lastResult string
}

func NewApp(c *config.Config) (*App, error) {

	logger := newLogger(c)

	store := storage.New(c.DataDir)
	state := &models.State{
		Users:    store.LoadUsers(),
		Attempts: store.LoadAttempts(),
	}

	return &App{
		config: c,
		log:    logger,
		auth:   auth.NewService(store, c, logger),
		tasks:  task.NewService(store, logger),
		state:  state,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}, nil
}

// newLogger resolves the sink path and level from config and tags every
// record with a fresh session id.
func newLogger(c *config.Config) logging.Logger {
	path := c.LogFile
	if path == "" {
		path = filepath.Join(c.DataDir, "taskkeeper.log")
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		level = slog.LevelInfo
	}

	return logging.NewFileLogger(path, level).With("session", uuid.NewString())
}

// Run drives the session until the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}

func (a *App) prompter() *terminalPrompter {
	return &terminalPrompter{reader: a.reader, out: a.out}
}

// pause blocks until Enter before the next screen clears.
func (a *App) pause() {
	fmt.Fprint(a.out, "\n"+info("Press Enter to continue..."))
	a.reader.ReadString('\n')
}

// pausePlain is the undecorated variant used on the account screens.
func (a *App) pausePlain() {
	fmt.Fprint(a.out, "Press Enter to continue...")
	a.reader.ReadString('\n')
}

// pauseReturn blocks until Enter before going back to the entry menu.
func (a *App) pauseReturn() {
	fmt.Fprint(a.out, "Press Enter to return to the main menu...")
	a.reader.ReadString('\n')
}
