package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/taskkeeper/internal/auth"
	"github.com/dmitrijs2005/taskkeeper/internal/common"
)

// Root runs the entry menu until the user exits or input ends.
func (a *App) Root(ctx context.Context) {
	for {
		items := []string{
			green("  1. ") + white("Login"),
			blue("  2. ") + white("Register"),
			magenta("  3. ") + white("Create admin"),
			red("  0. ") + white("Exit"),
		}
		fullScreenMenu(a.out, items, "Welcome to TaskKeeper!", "Task Management System")
		showLastAction(a.out, a.lastAction, a.lastResult)

		choice, err := readLine(a.reader, a.out, centeredPrompt(ask("Enter your choice: ")))
		if err != nil {
			return
		}

		switch choice {
		case "1":
			a.lastAction = success("Login")
			if a.login(ctx) {
				a.lastResult = success("Login successful")
			} else {
				a.lastResult = errText("Login failed")
			}

		case "2":
			a.lastAction = info("Register new user")
			if a.register(ctx, false) {
				a.lastResult = success("Registration successful")
			} else {
				a.lastResult = errText("Registration failed or cancelled")
			}

		case "3":
			a.createAdmin(ctx)

		case "0":
			clearScreen(a.out)
			fmt.Fprintln(a.out, success("\nThank you for using TaskKeeper. Goodbye!"))
			return

		default:
			if _, convErr := strconv.Atoi(choice); convErr != nil {
				a.lastAction = errText("Invalid input: " + choice)
				a.lastResult = errText("Please enter a number (0, 1, 2, or 3).")
			} else {
				a.lastAction = errText("Invalid option: " + choice)
				a.lastResult = errText("Option out of range. Please choose 0, 1, 2, or 3.")
			}
			a.pausePlain()
		}
	}
}

// login runs one login session and, on success, drops the user into their
// menu. It reports whether the login succeeded.
func (a *App) login(ctx context.Context) bool {
	clearScreen(a.out)
	fullScreenHeader(a.out, "Login Page", "Enter your credentials")

	username, err := readLine(a.reader, a.out, ask("Username: "))
	if err != nil {
		return false
	}

	res, err := a.auth.Login(ctx, a.state, username, a.prompter())
	if err != nil {
		a.log.Error(ctx, "login session failed", "error", err)
		fmt.Fprintln(a.out, errText("An error occurred: "+err.Error()))
		a.pauseReturn()
		return false
	}

	if res.Outcome != auth.LoginSuccess {
		a.pauseReturn()
		return false
	}

	clearScreen(a.out)
	if res.Admin {
		a.adminMainMenu(ctx)
	} else {
		a.taskMenu(ctx, res.Username)
	}
	return true
}

// register runs one registration session. The caller decides whether the new
// account gets the admin flag.
func (a *App) register(ctx context.Context, admin bool) bool {
	clearScreen(a.out)
	pageTitle := "Register Page"
	if admin {
		pageTitle += " (Admin)"
	}
	fullScreenHeader(a.out, pageTitle, "Create your account")

	res, err := a.auth.Register(ctx, a.state, admin, a.prompter())
	if err != nil {
		a.log.Error(ctx, "registration session failed", "error", err)
		fmt.Fprintln(a.out, errText("An error occurred: "+err.Error()))
		a.pauseReturn()
		return false
	}

	a.pauseReturn()
	return res.Outcome == auth.RegisterSuccess
}

// createAdmin gates admin registration behind the admin creation passphrase.
func (a *App) createAdmin(ctx context.Context) {
	a.lastAction = magenta("Create admin")

	pass, err := readMaskedPassword(a.reader, a.out, warn("Enter admin creation password: "))
	if err != nil {
		if errors.Is(err, common.ErrCancelled) {
			a.lastResult = warn("Admin creation cancelled")
			fmt.Fprintf(a.out, "\n%s\n", a.lastResult)
			a.pausePlain()
			return
		}
		a.lastResult = errText("Admin creation failed or cancelled")
		return
	}
	defer common.WipeByteArray(pass)

	ok, err := a.auth.VerifyAdminSecret(ctx, pass)
	if err != nil {
		a.log.Error(ctx, "admin secret check failed", "error", err)
		a.lastResult = errText("An error occurred: " + err.Error())
		fmt.Fprintf(a.out, "\n%s\n", a.lastResult)
		a.pausePlain()
		return
	}
	if !ok {
		a.lastResult = errText("Incorrect admin password. Access denied.")
		fmt.Fprintf(a.out, "\n%s\n", a.lastResult)
		a.pausePlain()
		return
	}

	if a.register(ctx, true) {
		a.lastResult = success("Admin creation successful")
	} else {
		a.lastResult = errText("Admin creation failed or cancelled")
	}
}
