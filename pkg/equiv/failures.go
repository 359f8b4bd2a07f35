package equiv

import (
	"fmt"
	"sort"

	"github.com/parley-dev/parley/pkg/domain"
	"github.com/parley-dev/parley/pkg/sos"
)

// failureSet maps each visible trace to the refusal sets observed after it.
// A refusal set is recorded per stable state reachable under the trace: the
// visible alphabet minus what that state offers.
type failureSet struct {
	refusals  map[string]map[string][]domain.Action
	traces    *domain.TraceSet
	truncated bool
}

func failuresOf(d sos.Deriver, t domain.Term, depth int, alphabet []domain.Action) *failureSet {
	ex := explore(d, t, depth)
	fs := &failureSet{
		refusals:  make(map[string]map[string][]domain.Action),
		traces:    ex.traces,
		truncated: ex.truncated,
	}
	for trace, states := range ex.after {
		for _, state := range states {
			if !stable(d, state) {
				continue
			}
			refused := refusal(alphabet, initials(d, state))
			if fs.refusals[trace] == nil {
				fs.refusals[trace] = make(map[string][]domain.Action)
			}
			fs.refusals[trace][actionSetKey(refused)] = refused
		}
	}
	return fs
}

// refusal is the alphabet minus the offered actions.
func refusal(alphabet, offered []domain.Action) []domain.Action {
	has := make(map[domain.Action]bool, len(offered))
	for _, a := range offered {
		has[a] = true
	}
	var out []domain.Action
	for _, a := range alphabet {
		if !has[a] {
			out = append(out, a)
		}
	}
	return out
}

func (fs *failureSet) sortedTraces() []string {
	out := make([]string, 0, len(fs.refusals))
	for tr := range fs.refusals {
		out = append(out, tr)
	}
	sort.Strings(out)
	return out
}

// CheckFailures decides failures equivalence: the two terms have the same
// visible traces and, after every shared trace, the same refusal sets.
func CheckFailures(d sos.Deriver, p, q domain.Term, depth int) domain.Result {
	alphabet := visibleAlphabet(p, q)
	left := failuresOf(d, p, depth, alphabet)
	right := failuresOf(d, q, depth, alphabet)

	if t, ok := left.traces.Diff(right.traces); ok {
		return domain.DistinguishedByTrace(t, fmt.Sprintf("trace %s of %s is not a trace of %s", t, p, q))
	}
	if t, ok := right.traces.Diff(left.traces); ok {
		return domain.DistinguishedByTrace(t, fmt.Sprintf("trace %s of %s is not a trace of %s", t, q, p))
	}
	if res, ok := refusalMismatch(left, right, p, q); ok {
		return res
	}
	if res, ok := refusalMismatch(right, left, q, p); ok {
		return res
	}

	res := domain.EquivalentResult("identical traces and refusal sets")
	if left.truncated || right.truncated {
		res.Truncated = true
		res.Reason = fmt.Sprintf("identical traces and refusal sets up to depth %d", depth)
	}
	return res
}

func refusalMismatch(a, b *failureSet, pa, pb domain.Term) (domain.Result, bool) {
	for _, trace := range a.sortedTraces() {
		for key, refused := range a.refusals[trace] {
			if _, ok := b.refusals[trace][key]; !ok {
				return domain.DistinguishedByTrace(traceFromKey(a, trace),
					fmt.Sprintf("after %s, %s can refuse %s but %s cannot", trace, pa, actionSetKey(refused), pb)), true
			}
		}
	}
	return domain.Result{}, false
}

// CheckRefinement decides failures refinement: every trace of impl is a
// trace of spec, and every refusal impl can exhibit after a trace is allowed
// by some refusal of spec after the same trace (subset matching, since
// failure sets are downward closed in the refused actions).
func CheckRefinement(d sos.Deriver, impl, spec domain.Term, depth int) domain.Result {
	alphabet := visibleAlphabet(impl, spec)
	lo := failuresOf(d, impl, depth, alphabet)
	hi := failuresOf(d, spec, depth, alphabet)

	if t, ok := lo.traces.Diff(hi.traces); ok {
		return domain.DistinguishedByTrace(t, fmt.Sprintf("trace %s of %s is not allowed by %s", t, impl, spec))
	}
	for _, trace := range lo.sortedTraces() {
		for _, refused := range lo.refusals[trace] {
			if !refusalAllowed(refused, hi.refusals[trace]) {
				return domain.DistinguishedByTrace(traceFromKey(lo, trace),
					fmt.Sprintf("after %s, %s can refuse %s but %s never does", trace, impl, actionSetKey(refused), spec))
			}
		}
	}

	res := domain.EquivalentResult("all failures of the implementation are allowed by the specification")
	if lo.truncated || hi.truncated {
		res.Truncated = true
		res.Reason = fmt.Sprintf("refinement holds up to depth %d", depth)
	}
	return res
}

func refusalAllowed(refused []domain.Action, allowed map[string][]domain.Action) bool {
	for _, candidate := range allowed {
		if subset(refused, candidate) {
			return true
		}
	}
	return false
}

func subset(a, b []domain.Action) bool {
	has := make(map[domain.Action]bool, len(b))
	for _, x := range b {
		has[x] = true
	}
	for _, x := range a {
		if !has[x] {
			return false
		}
	}
	return true
}

func traceFromKey(fs *failureSet, key string) domain.Trace {
	for _, t := range fs.traces.Slice() {
		if t.String() == key {
			return t
		}
	}
	return nil
}
