// Package prompt implements selection prompts for the command line.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/stackframe/bentographer/internal/domain"
)

// Terminal asks on out and reads answers line by line from in.
// An empty answer takes the default (first option); "q" or end of input cancels.
type Terminal struct {
	in  *bufio.Reader
	out io.Writer
}

// NewTerminal creates a line-oriented prompter.
func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{in: bufio.NewReader(in), out: out}
}

// Choose lists labels and blocks until a valid answer is read.
// Answers are a 1-based number or an exact label (case-insensitive).
func (t *Terminal) Choose(ctx context.Context, title, message string, labels []string) (int, error) {
	if len(labels) == 0 {
		return 0, domain.NewEmptyCandidates(title)
	}

	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		t.printOptions(title, labels)
		_, _ = fmt.Fprintf(t.out, "%s [1, q to quit]: ", message)

		line, err := t.in.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			if errors.Is(err, io.EOF) {
				_, _ = fmt.Fprintln(t.out)
				return 0, domain.ErrCancelled
			}
			return 0, fmt.Errorf("read selection: %w", err)
		}

		answer := strings.TrimSpace(line)
		if answer == "" {
			return 0, nil
		}
		if strings.EqualFold(answer, "q") {
			return 0, domain.ErrCancelled
		}
		if idx, ok := parseAnswer(answer, labels); ok {
			return idx, nil
		}
		_, _ = fmt.Fprintf(t.out, "Invalid choice %q.\n", answer)
	}
}

func (t *Terminal) printOptions(title string, labels []string) {
	_, _ = fmt.Fprintf(t.out, "\n%s\n", title)
	for i, l := range labels {
		marker := " "
		if i == 0 {
			marker = "*"
		}
		_, _ = fmt.Fprintf(t.out, "%s %2d) %s\n", marker, i+1, l)
	}
}

func parseAnswer(answer string, labels []string) (int, bool) {
	if n, err := strconv.Atoi(answer); err == nil {
		if n >= 1 && n <= len(labels) {
			return n - 1, true
		}
		return 0, false
	}
	for i, l := range labels {
		if strings.EqualFold(l, answer) {
			return i, true
		}
	}
	return 0, false
}
