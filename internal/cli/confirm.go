package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"codeberg.org/snonux/cloudtranslate/internal/session"
)

// TerminalConfirmer asks yes/no questions on the terminal. Prompts are
// written to out, which should be stderr so stdout stays clean for the
// translated text, and answers are read from in.
type TerminalConfirmer struct {
	in  *bufio.Reader
	out io.Writer
}

// NewTerminalConfirmer creates a confirmer reading answers from in and
// prompting on out.
func NewTerminalConfirmer(in io.Reader, out io.Writer) *TerminalConfirmer {
	return &TerminalConfirmer{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Confirm prints the confirmation message and waits for an answer.
// Only "y" and "yes" (case-insensitive) accept. Anything else declines,
// including a closed stdin.
func (t *TerminalConfirmer) Confirm(ctx context.Context, c session.Confirmation) bool {
	fmt.Fprintf(t.out, "%s [y/N] ", c.Message)

	line, err := t.in.ReadString('\n')
	if err != nil && line == "" {
		fmt.Fprintln(t.out)
		return false
	}

	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

// AutoConfirmer accepts every confirmation. It backs the --yes flag.
type AutoConfirmer struct{}

// Confirm always returns true.
func (AutoConfirmer) Confirm(ctx context.Context, c session.Confirmation) bool {
	return true
}
