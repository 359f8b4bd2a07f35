package domain

import (
	"sort"
	"strings"
)

// Trace is a finite sequence of actions, observed in order.
type Trace []Action

func (t Trace) String() string {
	if len(t) == 0 {
		return "<>"
	}
	parts := make([]string, len(t))
	for i, a := range t {
		parts[i] = string(a)
	}
	return strings.Join(parts, ".")
}

// Visible returns the trace with silent actions removed.
func (t Trace) Visible() Trace {
	out := make(Trace, 0, len(t))
	for _, a := range t {
		if a.Visible() {
			out = append(out, a)
		}
	}
	return out
}

// Append returns a new trace extended by one action. The receiver is never
// shared with the result, so branches of an exploration cannot alias.
func (t Trace) Append(a Action) Trace {
	out := make(Trace, len(t), len(t)+1)
	copy(out, t)
	return append(out, a)
}

// TraceSet is a prefix-closed set of visible traces. The empty trace is
// always a member.
type TraceSet struct {
	members map[string]Trace
}

func NewTraceSet() *TraceSet {
	s := &TraceSet{members: make(map[string]Trace)}
	s.Add(Trace{})
	return s
}

// Add records the trace and, through repeated use during exploration, keeps
// the set prefix-closed: explorers add every intermediate trace on the way to
// a longer one.
func (s *TraceSet) Add(t Trace) {
	s.members[t.String()] = t
}

func (s *TraceSet) Contains(t Trace) bool {
	_, ok := s.members[t.String()]
	return ok
}

func (s *TraceSet) Len() int { return len(s.members) }

// Slice returns the traces sorted by their textual form.
func (s *TraceSet) Slice() []Trace {
	keys := make([]string, 0, len(s.members))
	for k := range s.members {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]Trace, 0, len(keys))
	for _, k := range keys {
		out = append(out, s.members[k])
	}
	return out
}

// Diff returns a trace present in s but absent from other, or false when s is
// a subset of other.
func (s *TraceSet) Diff(other *TraceSet) (Trace, bool) {
	for _, t := range s.Slice() {
		if !other.Contains(t) {
			return t, true
		}
	}
	return nil, false
}

// Equal reports mutual containment.
func (s *TraceSet) Equal(other *TraceSet) bool {
	if _, ok := s.Diff(other); ok {
		return false
	}
	_, ok := other.Diff(s)
	return !ok
}
