package cli

import (
	"bufio"
	"fmt"
	"io"

	"github.com/dmitrijs2005/taskkeeper/internal/auth"
)

// terminalPrompter adapts the shared reader and writer to auth.Prompter,
// styling prompts and notifications the same way the menus do.
type terminalPrompter struct {
	reader *bufio.Reader
	out    io.Writer
}

func (p *terminalPrompter) ReadLine(prompt string) (string, error) {
	return readLine(p.reader, p.out, ask(prompt))
}

func (p *terminalPrompter) ReadPassword(prompt string) ([]byte, error) {
	return readMaskedPassword(p.reader, p.out, ask(prompt))
}

func (p *terminalPrompter) Confirm(prompt string) (bool, error) {
	return readConfirm(p.reader, p.out, ask(prompt))
}

func (p *terminalPrompter) Notify(kind auth.MessageKind, text string) {
	var styled string
	switch kind {
	case auth.MessageSuccess:
		styled = success(text)
	case auth.MessageWarning:
		styled = warn(text)
	case auth.MessageError:
		styled = errText(text)
	default:
		styled = info(text)
	}
	fmt.Fprintf(p.out, "\n%s\n", styled)
}
