package domain

import "strings"

// Action is an atomic label on a transition. Actions are opaque: the engine
// never interprets them beyond equality, silence and complementation.
type Action string

// Tau is the silent action. It represents an internal step that an external
// observer cannot see; weak equivalences treat it as transparent.
const Tau Action = "tau"

// Silent reports whether the action is the internal step.
func (a Action) Silent() bool {
	return a == Tau
}

// Visible reports whether an observer can see the action.
func (a Action) Visible() bool {
	return a != Tau
}

// Complement returns the co-action used for CCS-style two-party
// synchronization. The complement of "a" is "a'" and vice versa.
// Tau has no complement and is returned unchanged.
func (a Action) Complement() Action {
	if a.Silent() {
		return a
	}
	if strings.HasSuffix(string(a), "'") {
		return Action(strings.TrimSuffix(string(a), "'"))
	}
	return a + "'"
}
