package ui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/furilabs/furios-reset/pkg/errors"
)

// Terminal implements UI on a terminal or any plain reader. Passphrases are
// read without echo when stdin is a real terminal.
type Terminal struct {
	in     *os.File
	out    io.Writer
	reader *bufio.Reader
}

func NewTerminal(in *os.File, out io.Writer) *Terminal {
	return &Terminal{in: in, out: out, reader: bufio.NewReader(in)}
}

var _ UI = (*Terminal)(nil)

func (t *Terminal) RequestPassword(ctx context.Context, attemptsRemaining int) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	fmt.Fprintf(t.out, "Enter password (%d attempts remaining): ", attemptsRemaining)

	if term.IsTerminal(int(t.in.Fd())) {
		pass, err := term.ReadPassword(int(t.in.Fd()))
		fmt.Fprintln(t.out)
		if err != nil {
			return "", errors.Wrap(err, "read password")
		}
		return string(pass), nil
	}

	line, err := t.reader.ReadString('\n')
	if err != nil {
		if err == io.EOF && line == "" {
			fmt.Fprintln(t.out)
			return "", ErrNoPrompt
		}
		if err != io.EOF {
			return "", errors.Wrap(err, "read password")
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Confirm asks a yes/no question and defaults to no.
func (t *Terminal) Confirm(question string) bool {
	fmt.Fprintf(t.out, "%s [y/N]: ", question)

	line, err := t.reader.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

func (t *Terminal) ShowProgress(message string) {
	fmt.Fprintln(t.out, message)
}

func (t *Terminal) ShowOutcome(message string) {
	fmt.Fprintln(t.out, message)
}
