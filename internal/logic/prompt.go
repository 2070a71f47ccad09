package logic

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ErrNotTerminal is returned when a password is needed but stdin cannot prompt.
var ErrNotTerminal = errors.New("stdin is not a terminal")

// Prompter asks the user for input during a decode.
type Prompter interface {
	// Password reads a password without echo. An empty answer is allowed.
	Password(prompt string) (string, error)
	// Confirm asks a yes/no question, defaulting to no.
	Confirm(question string) (bool, error)
}

// TerminalPrompter prompts on stdin, writing questions to stderr.
type TerminalPrompter struct {
	In  *os.File
	Out io.Writer
}

// NewTerminalPrompter returns a prompter bound to the process stdin and stderr.
func NewTerminalPrompter() *TerminalPrompter {
	return &TerminalPrompter{In: os.Stdin, Out: os.Stderr}
}

// Password implements Prompter.
func (p *TerminalPrompter) Password(prompt string) (string, error) {
	fd := int(p.In.Fd()) //nolint:gosec // file descriptors fit in int

	if !term.IsTerminal(fd) {
		return "", ErrNotTerminal
	}

	fmt.Fprint(p.Out, prompt)

	pw, err := term.ReadPassword(fd)

	fmt.Fprintln(p.Out)

	if err != nil {
		return "", fmt.Errorf("reading password: %w", err)
	}

	return string(pw), nil
}

// Confirm implements Prompter.
func (p *TerminalPrompter) Confirm(question string) (bool, error) {
	fmt.Fprintf(p.Out, "%s [y/N]: ", question)

	return confirm(p.In)
}

// confirm reads one line and accepts only y or yes.
func confirm(r io.Reader) (bool, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("reading answer: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
