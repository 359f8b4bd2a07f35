package domain

import (
	"fmt"
	"sort"
)

// Transition is one derivation step: Source performs Action and becomes
// Target. Transitions are ephemeral values; identity is structural over all
// three fields.
type Transition struct {
	Source Term
	Action Action
	Target Term
}

func (t Transition) Equal(o Transition) bool {
	return t.Action == o.Action && t.Source.Equal(o.Source) && t.Target.Equal(o.Target)
}

func (t Transition) String() string {
	return fmt.Sprintf("%s -%s-> %s", t.Source, t.Action, t.Target)
}

// key is the deduplication identity of the transition.
func (t Transition) key() string {
	return t.Source.String() + "\x00" + string(t.Action) + "\x00" + t.Target.String()
}

// TransitionSet is a deduplicating container for transitions. Re-adding an
// identical triple has no effect, which is what makes rule application
// order-independent.
type TransitionSet struct {
	members map[string]Transition
}

func NewTransitionSet(ts ...Transition) *TransitionSet {
	s := &TransitionSet{members: make(map[string]Transition)}
	s.Add(ts...)
	return s
}

func (s *TransitionSet) Add(ts ...Transition) {
	for _, t := range ts {
		s.members[t.key()] = t
	}
}

func (s *TransitionSet) Contains(t Transition) bool {
	_, ok := s.members[t.key()]
	return ok
}

func (s *TransitionSet) Len() int { return len(s.members) }

// Slice returns the transitions in a deterministic order.
func (s *TransitionSet) Slice() []Transition {
	keys := make([]string, 0, len(s.members))
	for k := range s.members {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]Transition, 0, len(keys))
	for _, k := range keys {
		out = append(out, s.members[k])
	}
	return out
}

func sortActions(as []Action) {
	sort.Slice(as, func(i, j int) bool { return as[i] < as[j] })
}
