package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
)

// Test seams for terminal control. In tests they are replaced with stubs so
// input can be scripted without a real terminal.
var (
	isTerminal      = term.IsTerminal
	makeRaw         = term.MakeRaw
	restoreTerminal = term.Restore
	readPassword    = term.ReadPassword

	// passwordInput is where masked input reads key presses from.
	passwordInput io.Reader = os.Stdin
)

// readLine prints a prompt to w and reads a single line from reader.
// The line is trimmed of surrounding whitespace. If EOF occurs after some
// input was read, the partial line is returned.
func readLine(reader *bufio.Reader, w io.Writer, prompt string) (string, error) {
	if _, err := fmt.Fprint(w, prompt); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// readConfirm asks a yes/no question. Only "y" (any case) counts as yes.
func readConfirm(reader *bufio.Reader, w io.Writer, prompt string) (bool, error) {
	answer, err := readLine(reader, w, prompt)
	if err != nil {
		return false, err
	}
	return strings.EqualFold(answer, "y"), nil
}

// readMaskedPassword reads a password echoing an asterisk per key press.
// Backspace deletes the last character, Esc cancels the prompt with
// common.ErrCancelled, Enter finishes. When stdin is not a terminal the
// password is read as a plain line from reader so scripted sessions work.
//
// The returned byte slice should be wiped by the caller when no longer needed.
func readMaskedPassword(reader *bufio.Reader, w io.Writer, prompt string) ([]byte, error) {
	if _, err := fmt.Fprint(w, prompt); err != nil {
		return nil, err
	}

	fd := int(os.Stdin.Fd())
	if !isTerminal(fd) {
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || len(line) == 0) {
			return nil, err
		}
		fmt.Fprintln(w)
		return []byte(strings.TrimRight(line, "\r\n")), nil
	}

	oldState, err := makeRaw(fd)
	if err != nil {
		// Raw mode can be unavailable on exotic terminals. Fall back to a
		// plain no-echo read without masking.
		pw, rerr := readPassword(fd)
		fmt.Fprintln(w)
		if rerr != nil {
			return nil, rerr
		}
		return pw, nil
	}
	defer restoreTerminal(fd, oldState)

	var password []byte
	buf := make([]byte, 1)
	for {
		if _, err := passwordInput.Read(buf); err != nil {
			fmt.Fprint(w, "\r\n")
			common.WipeByteArray(password)
			return nil, err
		}

		switch c := buf[0]; {
		case c == '\r' || c == '\n':
			fmt.Fprint(w, "\r\n")
			return password, nil

		case c == 0x7f || c == '\b':
			if len(password) > 0 {
				password = password[:len(password)-1]
				fmt.Fprint(w, "\b \b")
			}

		case c == 0x1b:
			common.WipeByteArray(password)
			restoreTerminal(fd, oldState)
			fmt.Fprintln(w)
			fmt.Fprintln(w, "Password input cancelled.")
			return nil, common.ErrCancelled

		case c >= 0x20 && c <= 0x7e:
			password = append(password, c)
			fmt.Fprint(w, "*")
		}
	}
}
