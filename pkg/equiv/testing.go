package equiv

import (
	"fmt"

	"github.com/parley-dev/parley/pkg/domain"
	"github.com/parley-dev/parley/pkg/sos"
)

// CheckTesting decides testing equivalence: may-equivalence and
// must-equivalence together. A test here is a visible observation sequence
// drawn from either term's bounded exploration. A term may-passes a test if
// some run performs it, and must-passes it if every run does, internal
// branching included.
func CheckTesting(d sos.Deriver, p, q domain.Term, depth int) domain.Result {
	left := explore(d, p, depth)
	right := explore(d, q, depth)

	// May: the passable-by-some-run sets are exactly the trace sets.
	if t, ok := left.traces.Diff(right.traces); ok {
		return domain.DistinguishedByTrace(t, fmt.Sprintf("%s may pass test %s, %s cannot", p, t, q))
	}
	if t, ok := right.traces.Diff(left.traces); ok {
		return domain.DistinguishedByTrace(t, fmt.Sprintf("%s may pass test %s, %s cannot", q, t, p))
	}

	// Must: every candidate test both terms may pass is re-run demanding
	// success on all internal resolutions.
	for _, test := range left.traces.Slice() {
		mp := mustPass(d, p, test, depth)
		mq := mustPass(d, q, test, depth)
		if mp != mq {
			owner, other := p, q
			if mq {
				owner, other = q, p
			}
			return domain.DistinguishedByTrace(test,
				fmt.Sprintf("%s must pass test %s, %s may fail it", owner, test, other))
		}
	}

	res := domain.EquivalentResult("identical may and must test sets")
	if left.truncated || right.truncated {
		res.Truncated = true
		res.Reason = fmt.Sprintf("identical may and must test sets up to depth %d", depth)
	}
	return res
}

// mustPass reports whether every run of t performs the test. The term first
// resolves its internal steps: each stable state of the tau-closure must
// offer the head action, and every successor it offers must pass the rest of
// the test. A closure with no stable state diverges and fails the test.
func mustPass(d sos.Deriver, t domain.Term, test domain.Trace, depth int) bool {
	if len(test) == 0 {
		return true
	}
	if depth <= 0 {
		return false
	}

	closure := termTauClosure(d, t, depth)
	stableFound := false
	for _, s := range closure {
		if !stable(d, s) {
			continue
		}
		stableFound = true
		offered := false
		for _, tr := range d.Transitions(s) {
			if tr.Action != test[0] {
				continue
			}
			offered = true
			if !mustPass(d, tr.Target, test[1:], depth-1) {
				return false
			}
		}
		if !offered {
			return false
		}
	}
	return stableFound
}

// termTauClosure collects the terms reachable via silent steps only, the
// origin included, giving up beyond the depth budget.
func termTauClosure(d sos.Deriver, t domain.Term, depth int) map[string]domain.Term {
	closure := map[string]domain.Term{t.String(): t}
	frontier := []domain.Term{t}
	for step := 0; step < depth && len(frontier) > 0; step++ {
		var next []domain.Term
		for _, cur := range frontier {
			for _, tr := range d.Transitions(cur) {
				if !tr.Action.Silent() {
					continue
				}
				id := tr.Target.String()
				if _, ok := closure[id]; ok {
					continue
				}
				closure[id] = tr.Target
				next = append(next, tr.Target)
			}
		}
		frontier = next
	}
	return closure
}
