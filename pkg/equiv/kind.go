package equiv

import (
	"fmt"
	"strings"

	"github.com/parley-dev/parley/pkg/domain"
)

// Kind names one equivalence notion.
type Kind string

const (
	Trace    Kind = "trace"
	Strong   Kind = "strong-bisimulation"
	Weak     Kind = "weak-bisimulation"
	Testing  Kind = "testing"
	Failures Kind = "failures"
)

// Kinds lists every supported equivalence, strongest first.
func Kinds() []Kind {
	return []Kind{Strong, Weak, Failures, Testing, Trace}
}

// ParseKind resolves a kind name, accepting the short aliases "strong" and
// "weak". Unknown names are an error, never a default.
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(s)) {
	case Trace:
		return Trace, nil
	case Strong, "strong":
		return Strong, nil
	case Weak, "weak":
		return Weak, nil
	case Testing:
		return Testing, nil
	case Failures:
		return Failures, nil
	default:
		return "", fmt.Errorf("%w: %q", domain.ErrUnknownEquivalence, s)
	}
}
