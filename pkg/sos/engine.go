package sos

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/parley-dev/parley/pkg/domain"
)

// Model selects one structural-operational-semantics rule set.
type Model string

const (
	// CCS interleaves parallel operands and synchronizes complementary
	// actions into the silent action.
	CCS Model = "ccs"
	// CSP interleaves actions outside the synchronization alphabet and
	// requires a multi-way rendezvous, keeping the visible action, for
	// actions on it.
	CSP Model = "csp"
	// ACP interleaves, left-merges and communication-merges via a
	// caller-supplied communication function.
	ACP Model = "acp"
)

// ParseModel resolves a model name. Unknown names are an error, never a
// silent default.
func ParseModel(s string) (Model, error) {
	switch Model(strings.ToLower(s)) {
	case CCS:
		return CCS, nil
	case CSP:
		return CSP, nil
	case ACP:
		return ACP, nil
	default:
		return "", fmt.Errorf("%w: %q", domain.ErrUnknownModel, s)
	}
}

// Deriver computes the one-step transitions of a term. Rules receive one so
// that compound rules (choice, parallel) can derive their subterms under the
// same semantics.
type Deriver interface {
	Transitions(domain.Term) []domain.Transition
}

// Rule contributes transitions for the term shapes it recognizes. Rules must
// be confluent: the engine unions their contributions through a deduplicating
// set, so application order cannot affect the result.
type Rule interface {
	Name() string
	Applies(domain.Term) bool
	Derive(t domain.Term, d Deriver) []domain.Transition
}

// CommunicationFunc is ACP's gamma: a partial binary function on actions.
// The second return value reports definedness.
type CommunicationFunc func(a, b domain.Action) (domain.Action, bool)

// Engine holds the rule set of one semantic model.
type Engine struct {
	model  Model
	rules  []Rule
	logger *slog.Logger
}

// Option configures an Engine.
type Option func(*settings)

type settings struct {
	alphabet []domain.Action
	gamma    CommunicationFunc
	logger   *slog.Logger
}

// WithAlphabet fixes the CSP synchronization alphabet. Actions outside it
// interleave freely; actions on it require a rendezvous.
func WithAlphabet(actions ...domain.Action) Option {
	return func(s *settings) {
		s.alphabet = actions
	}
}

// WithCommunication supplies ACP's communication function.
func WithCommunication(gamma CommunicationFunc) Option {
	return func(s *settings) {
		s.gamma = gamma
	}
}

// WithLogger sets a structured logger for rule tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

// New assembles the rule set for the given model. ACP without a
// communication function is rejected here, before any exploration begins.
func New(model Model, opts ...Option) (*Engine, error) {
	cfg := settings{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	shared := []Rule{prefixRule{}, choiceRule{}, recursionRule{}}

	var parallel Rule
	switch model {
	case CCS:
		parallel = ccsParallelRule{}
	case CSP:
		sync := make(map[domain.Action]bool, len(cfg.alphabet))
		for _, a := range cfg.alphabet {
			sync[a] = true
		}
		parallel = cspParallelRule{alphabet: sync}
	case ACP:
		if cfg.gamma == nil {
			return nil, fmt.Errorf("%w: ACP requires a communication function", domain.ErrInvalidCommunication)
		}
		parallel = acpParallelRule{gamma: cfg.gamma}
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownModel, model)
	}

	return &Engine{
		model:  model,
		rules:  append(shared, parallel),
		logger: cfg.logger.With("model", string(model)),
	}, nil
}

// Model returns the semantic model the engine implements.
func (e *Engine) Model() Model { return e.model }

// Transitions computes the deduplicated union of every applicable rule's
// contribution. A term no rule applies to yields no transitions: that is a
// deadlocked configuration, not an error.
func (e *Engine) Transitions(t domain.Term) []domain.Transition {
	set := domain.NewTransitionSet()
	for _, r := range e.rules {
		if !r.Applies(t) {
			continue
		}
		derived := r.Derive(t, e)
		set.Add(derived...)
		if len(derived) > 0 {
			e.logger.Debug("rule fired", "rule", r.Name(), "term", t.String(), "transitions", len(derived))
		}
	}
	return set.Slice()
}

// ValidateCommunication checks gamma over a finite action alphabet: it must
// be commutative, and associative wherever the composed applications are
// defined. Run before exploration so a bad configuration never produces a
// verdict.
func ValidateCommunication(gamma CommunicationFunc, alphabet []domain.Action) error {
	if gamma == nil {
		return fmt.Errorf("%w: nil", domain.ErrInvalidCommunication)
	}
	for _, a := range alphabet {
		for _, b := range alphabet {
			ab, okAB := gamma(a, b)
			ba, okBA := gamma(b, a)
			if okAB != okBA || (okAB && ab != ba) {
				return fmt.Errorf("%w: gamma(%s,%s) and gamma(%s,%s) disagree", domain.ErrInvalidCommunication, a, b, b, a)
			}
			if !okAB {
				continue
			}
			for _, c := range alphabet {
				left, okL := gamma(ab, c)
				bc, okBC := gamma(b, c)
				if !okBC {
					continue
				}
				right, okR := gamma(a, bc)
				if okL != okR || (okL && left != right) {
					return fmt.Errorf("%w: gamma is not associative on (%s,%s,%s)", domain.ErrInvalidCommunication, a, b, c)
				}
			}
		}
	}
	return nil
}
