package equiv

import (
	"fmt"

	"github.com/parley-dev/parley/pkg/domain"
	"github.com/parley-dev/parley/pkg/sos"
)

// CheckTrace compares the prefix-closed visible trace sets of two terms,
// explored up to depth derivation steps.
//
// A trace present in one set and missing from the other is a real behavioral
// difference, so mismatches are conclusive even under the bound. When the
// sets match but some path was cut short, the positive verdict is marked
// Truncated: it holds up to the configured depth.
func CheckTrace(d sos.Deriver, p, q domain.Term, depth int) domain.Result {
	left := explore(d, p, depth)
	right := explore(d, q, depth)

	if t, ok := left.traces.Diff(right.traces); ok {
		return domain.DistinguishedByTrace(t, fmt.Sprintf("trace %s of %s is not a trace of %s", t, p, q))
	}
	if t, ok := right.traces.Diff(left.traces); ok {
		return domain.DistinguishedByTrace(t, fmt.Sprintf("trace %s of %s is not a trace of %s", t, q, p))
	}
	res := domain.EquivalentResult("identical trace sets")
	if left.truncated || right.truncated {
		res.Truncated = true
		res.Reason = fmt.Sprintf("identical trace sets up to depth %d", depth)
	}
	return res
}
