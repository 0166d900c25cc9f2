package cli

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/term"
)

const (
	fallbackWidth = 80
	minWidth      = 60
)

// terminalWidth reports the terminal column count. Swapped in tests.
var terminalWidth = func() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return fallbackWidth
	}
	return w
}

func screenWidth() int {
	w := terminalWidth()
	if w < minWidth {
		w = minWidth
	}
	return w
}

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

// clearScreen resets the terminal with escape sequences only. Shelling out to
// clear/cls would bypass the writer and break scripted sessions.
func clearScreen(w io.Writer) {
	fmt.Fprint(w, "\033[H\033[J\033[2J\033[3J\033[H")
	fmt.Fprint(w, "\n\n")
}

// centerText pads s with spaces to width columns, extra space on the right.
func centerText(s string, width int) string {
	pad := width - utf8.RuneCountInString(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}

// fullScreenHeader draws a boxed banner spanning the terminal width.
func fullScreenHeader(w io.Writer, titleText, subtitle string) {
	width := screenWidth()
	line := strings.Repeat("═", width)

	fmt.Fprintln(w, cyan(line))
	fmt.Fprintln(w, yellow(fmt.Sprintf("║ %s ║", centerText(titleText, width-4))))
	fmt.Fprintln(w, white(fmt.Sprintf("║ %s ║", centerText(subtitle, width-4))))
	fmt.Fprintln(w, cyan(line))
	fmt.Fprintln(w)
}

// fullScreenMenu clears the screen and renders a banner plus centered items.
func fullScreenMenu(w io.Writer, items []string, titleText, subtitle string) {
	clearScreen(w)
	fullScreenHeader(w, titleText, subtitle)

	width := screenWidth()
	for _, item := range items {
		clean := strings.TrimSpace(stripANSI(item))
		padding := (width - utf8.RuneCountInString(clean)) / 2
		if padding < 0 {
			padding = 0
		}
		fmt.Fprintln(w, strings.Repeat(" ", padding)+item)
	}
	fmt.Fprintln(w)
}

// centeredPrompt pads a prompt so it lines up under a centered menu.
func centeredPrompt(text string) string {
	padding := (screenWidth() - utf8.RuneCountInString(stripANSI(text))) / 2
	if padding < 0 {
		padding = 0
	}
	return strings.Repeat(" ", padding) + text
}

// boxHeader draws the small fixed-width banner used by the inner screens.
func boxHeader(w io.Writer, text string) {
	fmt.Fprintln(w, border(strings.Repeat("=", 50)))
	fmt.Fprintln(w, title("        "+text))
	fmt.Fprintln(w, border(strings.Repeat("=", 50)))
}

// showLastAction echoes the previous command and its result above a prompt.
func showLastAction(w io.Writer, command, result string) {
	if command == "" || result == "" {
		return
	}
	fmt.Fprintf(w, "\n%s %s\n", info("Last action:"), command)
	fmt.Fprintf(w, "%s %s\n", info("Result:"), result)
	fmt.Fprintln(w, border(strings.Repeat("-", 50)))
}
