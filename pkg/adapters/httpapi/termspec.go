package httpapi

import (
	"fmt"

	"github.com/parley-dev/parley/pkg/domain"
)

// TermSpec is the wire shape of a process term: a structural encoding, not a
// concrete textual syntax. Exactly one variant is populated, selected by
// Kind.
type TermSpec struct {
	Kind     string    `json:"kind" mapstructure:"kind"`
	Action   string    `json:"action,omitempty" mapstructure:"action"`
	Next     *TermSpec `json:"next,omitempty" mapstructure:"next"`
	Left     *TermSpec `json:"left,omitempty" mapstructure:"left"`
	Right    *TermSpec `json:"right,omitempty" mapstructure:"right"`
	Variable string    `json:"variable,omitempty" mapstructure:"variable"`
	Body     *TermSpec `json:"body,omitempty" mapstructure:"body"`
	Name     string    `json:"name,omitempty" mapstructure:"name"`
}

// Term converts the spec into a domain term, validating shape as it goes.
func (s *TermSpec) Term() (domain.Term, error) {
	if s == nil {
		return nil, fmt.Errorf("missing term")
	}
	switch s.Kind {
	case "stop":
		return domain.Stop{}, nil
	case "prefix":
		if s.Action == "" {
			return nil, fmt.Errorf("prefix requires an action")
		}
		next, err := s.Next.Term()
		if err != nil {
			return nil, fmt.Errorf("prefix %q: %w", s.Action, err)
		}
		return domain.Prefix{Action: domain.Action(s.Action), Next: next}, nil
	case "choice", "parallel":
		left, err := s.Left.Term()
		if err != nil {
			return nil, fmt.Errorf("%s left: %w", s.Kind, err)
		}
		right, err := s.Right.Term()
		if err != nil {
			return nil, fmt.Errorf("%s right: %w", s.Kind, err)
		}
		if s.Kind == "choice" {
			return domain.Choice{Left: left, Right: right}, nil
		}
		return domain.Parallel{Left: left, Right: right}, nil
	case "rec":
		if s.Variable == "" {
			return nil, fmt.Errorf("rec requires a variable")
		}
		body, err := s.Body.Term()
		if err != nil {
			return nil, fmt.Errorf("rec %s: %w", s.Variable, err)
		}
		return domain.Recursion{Variable: s.Variable, Body: body}, nil
	case "var":
		if s.Name == "" {
			return nil, fmt.Errorf("var requires a name")
		}
		return domain.Variable{Name: s.Name}, nil
	default:
		return nil, fmt.Errorf("unknown term kind %q", s.Kind)
	}
}
