package lts

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/parley-dev/parley/pkg/domain"
	"github.com/parley-dev/parley/pkg/sos"
)

// DefaultMaxStates bounds exploration when the caller does not set a ceiling.
const DefaultMaxStates = 10000

// Builder explores a term's reachable configurations with the configured
// rule engine and assembles the complete LTS. A visited set keyed by
// canonical form guarantees termination on finitely-branching, guardedly
// recursive terms; traversal order does not affect the result.
type Builder struct {
	deriver   sos.Deriver
	maxStates int
	interner  Interner
	logger    *slog.Logger
}

// Interner deduplicates term instances by canonical form. Optional; the
// builder works without one.
type Interner interface {
	Intern(domain.Term) domain.Term
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithMaxStates caps the number of states explored. Hitting the cap is a
// reported condition, not a silent truncation.
func WithMaxStates(n int) BuilderOption {
	return func(b *Builder) {
		if n > 0 {
			b.maxStates = n
		}
	}
}

// WithInterner shares term instances through the given table.
func WithInterner(i Interner) BuilderOption {
	return func(b *Builder) {
		b.interner = i
	}
}

// WithLogger sets a structured logger for exploration progress.
func WithLogger(logger *slog.Logger) BuilderOption {
	return func(b *Builder) {
		b.logger = logger
	}
}

// NewBuilder creates a builder over the given deriver.
func NewBuilder(d sos.Deriver, opts ...BuilderOption) *Builder {
	b := &Builder{
		deriver:   d,
		maxStates: DefaultMaxStates,
		logger:    slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build explores every configuration reachable from root. It returns
// domain.ErrExplorationLimit (wrapped) when the state ceiling stops
// exploration before the reachable set was exhausted; the partial LTS is
// returned alongside so callers can still inspect it.
func (b *Builder) Build(root domain.Term) (*LTS, error) {
	root = b.intern(root)
	system := New(root)

	visited := map[string]bool{root.String(): true}
	frontier := []domain.Term{root}

	for len(frontier) > 0 {
		current := frontier[0]
		frontier = frontier[1:]

		for _, tr := range b.deriver.Transitions(current) {
			target := b.intern(tr.Target)
			system.Add(domain.Transition{Source: current, Action: tr.Action, Target: target})

			id := target.String()
			if visited[id] {
				continue
			}
			if system.Size() > b.maxStates {
				b.logger.Warn("state ceiling reached", "max_states", b.maxStates, "root", root.String())
				return system, fmt.Errorf("%w: state ceiling %d reached while exploring %s",
					domain.ErrExplorationLimit, b.maxStates, root)
			}
			visited[id] = true
			frontier = append(frontier, target)
		}
	}

	b.logger.Debug("exploration complete", "root", root.String(),
		"states", system.Size(), "transitions", system.TransitionCount())
	return system, nil
}

func (b *Builder) intern(t domain.Term) domain.Term {
	if b.interner == nil {
		return t
	}
	return b.interner.Intern(t)
}
