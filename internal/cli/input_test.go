package cli

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/term"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
)

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestReadLine(t *testing.T) {
	var out bytes.Buffer
	got, err := readLine(rdr("  alice  \n"), &out, "Username: ")
	if err != nil || got != "alice" {
		t.Fatalf("got %q, err=%v", got, err)
	}
	if !strings.Contains(out.String(), "Username: ") {
		t.Fatalf("prompt not echoed, output %q", out.String())
	}
}

func TestReadLine_EOFPartial(t *testing.T) {
	var out bytes.Buffer
	got, err := readLine(rdr("lastline"), &out, "> ")
	if err != nil || got != "lastline" {
		t.Fatalf("got %q, err=%v", got, err)
	}
}

func TestReadLine_EOFEmpty(t *testing.T) {
	var out bytes.Buffer
	_, err := readLine(rdr(""), &out, "> ")
	require.ErrorIs(t, err, io.EOF)
}

func TestReadConfirm(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"lowercase yes", "y\n", true},
		{"uppercase yes", "Y\n", true},
		{"no", "n\n", false},
		{"spelled out yes is not accepted", "yes\n", false},
		{"empty line", "\n", false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := readConfirm(rdr(tc.input), &out, "Continue? (y/n): ")
			if err != nil {
				t.Fatal(err)
			}
			if got != tc.want {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}

// stubPipedInput makes readMaskedPassword take the non-terminal branch.
func stubPipedInput(t *testing.T) {
	t.Helper()
	orig := isTerminal
	isTerminal = func(int) bool { return false }
	t.Cleanup(func() { isTerminal = orig })
}

// stubRawTerminal scripts the raw-mode key stream and returns a counter of
// terminal restores.
func stubRawTerminal(t *testing.T, keys string) *int {
	t.Helper()
	restored := 0

	origIsTerminal := isTerminal
	origMakeRaw := makeRaw
	origRestore := restoreTerminal
	origInput := passwordInput
	t.Cleanup(func() {
		isTerminal = origIsTerminal
		makeRaw = origMakeRaw
		restoreTerminal = origRestore
		passwordInput = origInput
	})

	isTerminal = func(int) bool { return true }
	makeRaw = func(int) (*term.State, error) { return &term.State{}, nil }
	restoreTerminal = func(int, *term.State) error { restored++; return nil }
	passwordInput = strings.NewReader(keys)
	return &restored
}

func TestReadMaskedPassword_Piped(t *testing.T) {
	stubPipedInput(t)

	var out bytes.Buffer
	got, err := readMaskedPassword(rdr("hunter2\n"), &out, "Password: ")
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "hunter2" {
		t.Fatalf("got %q, want %q", got, "hunter2")
	}
	if !strings.Contains(out.String(), "Password: ") {
		t.Fatalf("prompt not echoed, output %q", out.String())
	}
}

func TestReadMaskedPassword_PipedEOFWithoutNewline(t *testing.T) {
	stubPipedInput(t)

	var out bytes.Buffer
	got, err := readMaskedPassword(rdr("secret"), &out, "Password: ")
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "secret" {
		t.Fatalf("got %q, want %q", got, "secret")
	}
}

func TestReadMaskedPassword_MasksAndBackspaces(t *testing.T) {
	restored := stubRawTerminal(t, "abc\x7fd\r")

	var out bytes.Buffer
	got, err := readMaskedPassword(rdr(""), &out, "Password: ")
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "abd" {
		t.Fatalf("got %q, want %q", got, "abd")
	}
	if !strings.Contains(out.String(), "***\b \b*") {
		t.Fatalf("masking sequence missing from output %q", out.String())
	}
	if *restored == 0 {
		t.Fatal("terminal was never restored")
	}
}

func TestReadMaskedPassword_Escape(t *testing.T) {
	restored := stubRawTerminal(t, "ab\x1b")

	var out bytes.Buffer
	_, err := readMaskedPassword(rdr(""), &out, "Password: ")
	require.ErrorIs(t, err, common.ErrCancelled)
	require.Contains(t, out.String(), "Password input cancelled.")
	if *restored == 0 {
		t.Fatal("terminal was never restored")
	}
}

func TestReadMaskedPassword_KeyStreamEnds(t *testing.T) {
	stubRawTerminal(t, "ab")

	var out bytes.Buffer
	_, err := readMaskedPassword(rdr(""), &out, "Password: ")
	require.ErrorIs(t, err, io.EOF)
}

func TestReadMaskedPassword_RawUnavailable(t *testing.T) {
	origIsTerminal := isTerminal
	origMakeRaw := makeRaw
	origReadPassword := readPassword
	t.Cleanup(func() {
		isTerminal = origIsTerminal
		makeRaw = origMakeRaw
		readPassword = origReadPassword
	})

	isTerminal = func(int) bool { return true }
	makeRaw = func(int) (*term.State, error) { return nil, errors.New("inappropriate ioctl") }
	readPassword = func(int) ([]byte, error) { return []byte("fallback"), nil }

	var out bytes.Buffer
	got, err := readMaskedPassword(rdr(""), &out, "Password: ")
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "fallback" {
		t.Fatalf("got %q, want %q", got, "fallback")
	}
}
