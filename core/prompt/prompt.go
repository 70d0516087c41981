package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrCanceled signals that the user aborted the prompt.
var ErrCanceled = errors.New("prompt canceled")

// Prompter defines the interactive prompts the CLI relies on.
type Prompter interface {
	// Select asks the user to pick one of options, by number or literal value.
	Select(label string, options []string) (string, error)
	// Confirm asks a yes/no question. Only "y"/"yes" count as yes.
	Confirm(label string) (bool, error)
}

// New creates a Prompter reading answers from in and writing prompts to out.
func New(in io.Reader, out io.Writer) Prompter {
	return &linePrompter{in: bufio.NewReader(in), out: out}
}

type linePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

func (p *linePrompter) Select(label string, options []string) (string, error) {
	fmt.Fprintln(p.out, label)
	for i, opt := range options {
		fmt.Fprintf(p.out, "  %2d) %s\n", i+1, opt)
	}
	fmt.Fprint(p.out, "Choice (empty to cancel): ")

	answer, err := p.readLine()
	if err != nil {
		return "", err
	}

	if n, err := strconv.Atoi(answer); err == nil {
		if n < 1 || n > len(options) {
			return "", fmt.Errorf("choice %d out of range 1-%d", n, len(options))
		}
		return options[n-1], nil
	}

	// A literal option value is accepted too.
	for _, opt := range options {
		if opt == answer {
			return opt, nil
		}
	}

	return "", fmt.Errorf("unknown choice %q", answer)
}

func (p *linePrompter) Confirm(label string) (bool, error) {
	fmt.Fprintf(p.out, "%s [y/N]: ", label)

	answer, err := p.readLine()
	if err != nil {
		if errors.Is(err, ErrCanceled) {
			return false, nil
		}
		return false, err
	}

	answer = strings.ToLower(answer)
	return answer == "y" || answer == "yes", nil
}

func (p *linePrompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return "", ErrCanceled
	}

	line = strings.TrimSpace(line)
	if line == "" || line == "q" {
		return "", ErrCanceled
	}
	return line, nil
}
