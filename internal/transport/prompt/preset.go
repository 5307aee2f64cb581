package prompt

import (
	"context"
	"fmt"
	"strings"

	"github.com/stackframe/bentographer/internal/domain"
)

// Chooser is any prompter Preset can fall back to.
type Chooser interface {
	Choose(ctx context.Context, title, message string, labels []string) (int, error)
}

// Preset answers prompts from labels configured per prompt title and defers
// everything else to the wrapped prompter.
type Preset struct {
	next    Chooser
	answers map[string]string
}

// NewPreset wraps next. Empty answers are ignored. next may be nil when every
// prompt is answered up front.
func NewPreset(next Chooser, answers map[string]string) *Preset {
	clean := make(map[string]string, len(answers))
	for title, label := range answers {
		if label != "" {
			clean[title] = label
		}
	}
	return &Preset{next: next, answers: clean}
}

// Choose returns the index of the preset label for title, or asks next.
// A preset must match a label exactly; the first match wins.
func (p *Preset) Choose(ctx context.Context, title, message string, labels []string) (int, error) {
	want, ok := p.answers[title]
	if !ok {
		if p.next == nil {
			return 0, fmt.Errorf("%w: no answer for %s and no interactive prompt", domain.ErrCancelled, title)
		}
		return p.next.Choose(ctx, title, message, labels)
	}

	for i, l := range labels {
		if l == want {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %s %q not among [%s]", domain.ErrUnknownChoice, title, want, strings.Join(labels, ", "))
}
