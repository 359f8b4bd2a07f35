package equiv

import (
	"sort"
	"strings"

	"github.com/parley-dev/parley/pkg/domain"
	"github.com/parley-dev/parley/pkg/lts"
	"github.com/parley-dev/parley/pkg/sos"
)

// DefaultDepth bounds trace, testing and failures exploration when the
// caller does not choose a depth. Unbounded recursive terms generate
// infinite trace sets; the bound trades completeness for termination and is
// a caller-visible parameter, never a hidden constant.
const DefaultDepth = 10

// exploration is the result of one depth-bounded walk of a term's
// derivation graph.
type exploration struct {
	traces *domain.TraceSet
	// after maps a visible trace to the terms reachable under it,
	// keyed by canonical form.
	after map[string]map[string]domain.Term
	// truncated reports that the depth bound cut at least one path short,
	// so the recorded sets may be incomplete.
	truncated bool
}

// explore walks every derivation path of root up to depth steps, silent ones
// included. A per-branch visited set keyed by (state, visible trace) stops a
// path from cycling through the same partial trace twice without consuming
// depth budget.
func explore(d sos.Deriver, root domain.Term, depth int) *exploration {
	ex := &exploration{
		traces: domain.NewTraceSet(),
		after:  make(map[string]map[string]domain.Term),
	}
	seen := make(map[string]bool)

	var walk func(cur domain.Term, trace domain.Trace, steps int)
	walk = func(cur domain.Term, trace domain.Trace, steps int) {
		ex.record(trace, cur)

		key := cur.String() + "\x00" + trace.String()
		if seen[key] {
			return
		}
		seen[key] = true
		defer delete(seen, key)

		if steps >= depth {
			ex.truncated = true
			return
		}
		for _, tr := range d.Transitions(cur) {
			next := trace
			if tr.Action.Visible() {
				next = trace.Append(tr.Action)
				ex.traces.Add(next)
			}
			walk(tr.Target, next, steps+1)
		}
	}

	walk(root, domain.Trace{}, 0)
	return ex
}

func (ex *exploration) record(trace domain.Trace, t domain.Term) {
	key := trace.String()
	if ex.after[key] == nil {
		ex.after[key] = make(map[string]domain.Term)
	}
	ex.after[key][t.String()] = t
}

// Traces returns the prefix-closed set of visible traces reachable from t
// within depth derivation steps.
func Traces(d sos.Deriver, t domain.Term, depth int) *domain.TraceSet {
	return explore(d, t, depth).traces
}

// tauClosure returns the states reachable from state via zero or more silent
// transitions, the state itself included.
func tauClosure(l *lts.LTS, state string) map[string]bool {
	closure := map[string]bool{state: true}
	frontier := []string{state}
	for len(frontier) > 0 {
		cur := frontier[0]
		frontier = frontier[1:]
		for _, next := range l.TargetsOf(cur, domain.Tau) {
			if !closure[next] {
				closure[next] = true
				frontier = append(frontier, next)
			}
		}
	}
	return closure
}

// weakTargets returns the states reachable via zero or more silent steps,
// one step on the visible action, and zero or more silent steps.
func weakTargets(l *lts.LTS, state string, a domain.Action) map[string]bool {
	out := make(map[string]bool)
	for pre := range tauClosure(l, state) {
		for _, mid := range l.TargetsOf(pre, a) {
			for post := range tauClosure(l, mid) {
				out[post] = true
			}
		}
	}
	return out
}

// stable reports whether a term has no outgoing silent transition.
func stable(d sos.Deriver, t domain.Term) bool {
	for _, tr := range d.Transitions(t) {
		if tr.Action.Silent() {
			return false
		}
	}
	return true
}

// initials returns the sorted visible actions a term offers in one step.
func initials(d sos.Deriver, t domain.Term) []domain.Action {
	set := make(map[domain.Action]struct{})
	for _, tr := range d.Transitions(t) {
		if tr.Action.Visible() {
			set[tr.Action] = struct{}{}
		}
	}
	out := make([]domain.Action, 0, len(set))
	for a := range set {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// visibleAlphabet unions the syntactic visible actions of the given terms.
func visibleAlphabet(terms ...domain.Term) []domain.Action {
	set := make(map[domain.Action]struct{})
	for _, t := range terms {
		for _, a := range domain.Alphabet(t) {
			if a.Visible() {
				set[a] = struct{}{}
			}
		}
	}
	out := make([]domain.Action, 0, len(set))
	for a := range set {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func actionSetKey(as []domain.Action) string {
	parts := make([]string, len(as))
	for i, a := range as {
		parts[i] = string(a)
	}
	return "{" + strings.Join(parts, ",") + "}"
}
