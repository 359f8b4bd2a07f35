package lts

import (
	"sort"

	"github.com/parley-dev/parley/pkg/domain"
)

// LTS is a labelled transition system: the states, actions and transitions
// discovered while exploring one term. States are identified by the
// canonical textual form of their term. An LTS is built once and read-only
// afterwards; it must not be shared mutably across explorations.
type LTS struct {
	initial  string
	terms    map[string]domain.Term
	actions  map[domain.Action]struct{}
	outgoing map[string][]domain.Transition
	targets  map[string]map[domain.Action][]string
	edges    map[string]struct{}
}

// New creates an empty system rooted at the given term.
func New(initial domain.Term) *LTS {
	l := &LTS{
		initial:  initial.String(),
		terms:    make(map[string]domain.Term),
		actions:  make(map[domain.Action]struct{}),
		outgoing: make(map[string][]domain.Transition),
		targets:  make(map[string]map[domain.Action][]string),
		edges:    make(map[string]struct{}),
	}
	l.addState(initial)
	return l
}

// Initial returns the canonical form of the initial state.
func (l *LTS) Initial() string { return l.initial }

func (l *LTS) addState(t domain.Term) string {
	id := t.String()
	if _, ok := l.terms[id]; !ok {
		l.terms[id] = t
	}
	return id
}

// Add inserts a transition. Insertion is idempotent: re-adding an identical
// triple has no additional effect.
func (l *LTS) Add(t domain.Transition) {
	src := l.addState(t.Source)
	tgt := l.addState(t.Target)

	key := src + "\x00" + string(t.Action) + "\x00" + tgt
	if _, dup := l.edges[key]; dup {
		return
	}
	l.edges[key] = struct{}{}

	l.actions[t.Action] = struct{}{}
	l.outgoing[src] = append(l.outgoing[src], t)
	if l.targets[src] == nil {
		l.targets[src] = make(map[domain.Action][]string)
	}
	l.targets[src][t.Action] = append(l.targets[src][t.Action], tgt)
}

// TransitionsFrom returns all outgoing transitions of a state. Unknown
// states yield an empty slice, not an error.
func (l *LTS) TransitionsFrom(state string) []domain.Transition {
	return l.outgoing[state]
}

// TargetsOf returns the states reachable from state in one step on action.
func (l *LTS) TargetsOf(state string, action domain.Action) []string {
	return l.targets[state][action]
}

// Term resolves a state identifier back to its term.
func (l *LTS) Term(state string) (domain.Term, bool) {
	t, ok := l.terms[state]
	return t, ok
}

// States returns every discovered state in sorted order.
func (l *LTS) States() []string {
	out := make([]string, 0, len(l.terms))
	for id := range l.terms {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Actions returns every action that labels some transition, sorted.
func (l *LTS) Actions() []domain.Action {
	out := make([]domain.Action, 0, len(l.actions))
	for a := range l.actions {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// VisibleActions returns the sorted non-silent actions of the system.
func (l *LTS) VisibleActions() []domain.Action {
	var out []domain.Action
	for _, a := range l.Actions() {
		if a.Visible() {
			out = append(out, a)
		}
	}
	return out
}

// Size returns the number of states.
func (l *LTS) Size() int { return len(l.terms) }

// TransitionCount returns the number of distinct transitions.
func (l *LTS) TransitionCount() int { return len(l.edges) }
