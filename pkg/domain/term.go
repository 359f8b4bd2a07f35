package domain

import "fmt"

// Term is a process expression. The set of variants is closed: Stop, Prefix,
// Choice, Parallel, Recursion and Variable. Terms are immutable values; every
// transformation returns a new term and never mutates its receiver.
//
// The canonical textual form returned by String is deterministic and doubles
// as the identity key for state deduplication, so two terms render identically
// if and only if they are structurally equal.
type Term interface {
	fmt.Stringer

	// Substitute returns the term with every free occurrence of the named
	// variable replaced by the given term. It is a total function: variables
	// that do not occur are simply not replaced.
	Substitute(variable string, replacement Term) Term

	// Derive returns the model-agnostic one-step transitions of the term.
	// Parallel composition is deliberately inert here: its semantics differ
	// per model (CCS, CSP, ACP) and must come from a rule engine.
	Derive() []Transition

	// Equal reports structural equality, variant by variant.
	Equal(other Term) bool

	isTerm()
}

// Stop is the deadlocked process. It has no transitions and substitution on
// it is a no-op.
type Stop struct{}

func (Stop) isTerm() {}

func (s Stop) Substitute(string, Term) Term { return s }

func (Stop) Derive() []Transition { return nil }

func (Stop) Equal(other Term) bool {
	_, ok := other.(Stop)
	return ok
}

func (Stop) String() string { return "0" }

// Prefix performs exactly one action and then behaves as Next.
type Prefix struct {
	Action Action
	Next   Term
}

func (Prefix) isTerm() {}

func (p Prefix) Substitute(v string, r Term) Term {
	return Prefix{Action: p.Action, Next: p.Next.Substitute(v, r)}
}

func (p Prefix) Derive() []Transition {
	return []Transition{{Source: p, Action: p.Action, Target: p.Next}}
}

func (p Prefix) Equal(other Term) bool {
	o, ok := other.(Prefix)
	return ok && p.Action == o.Action && p.Next.Equal(o.Next)
}

func (p Prefix) String() string {
	return fmt.Sprintf("%s.%s", p.Action, p.Next)
}

// Choice offers the transitions of both branches. A visible action commits to
// the branch that performed it; a silent action keeps the alternative open.
type Choice struct {
	Left  Term
	Right Term
}

func (Choice) isTerm() {}

func (c Choice) Substitute(v string, r Term) Term {
	return Choice{Left: c.Left.Substitute(v, r), Right: c.Right.Substitute(v, r)}
}

func (c Choice) Derive() []Transition {
	var out []Transition
	for _, t := range c.Left.Derive() {
		out = append(out, c.branch(t, c.Right, true))
	}
	for _, t := range c.Right.Derive() {
		out = append(out, c.branch(t, c.Left, false))
	}
	return out
}

// branch retargets a branch transition to originate from the choice itself.
// Silent steps do not discard the alternative.
func (c Choice) branch(t Transition, alt Term, fromLeft bool) Transition {
	target := t.Target
	if t.Action.Silent() {
		if fromLeft {
			target = Choice{Left: t.Target, Right: alt}
		} else {
			target = Choice{Left: alt, Right: t.Target}
		}
	}
	return Transition{Source: c, Action: t.Action, Target: target}
}

func (c Choice) Equal(other Term) bool {
	o, ok := other.(Choice)
	return ok && c.Left.Equal(o.Left) && c.Right.Equal(o.Right)
}

func (c Choice) String() string {
	return fmt.Sprintf("(%s + %s)", c.Left, c.Right)
}

// Parallel composes two processes running concurrently. Its transitions are
// model-dependent, so the default derivation is empty: callers that need real
// parallel semantics must go through a rule engine.
type Parallel struct {
	Left  Term
	Right Term
}

func (Parallel) isTerm() {}

func (p Parallel) Substitute(v string, r Term) Term {
	return Parallel{Left: p.Left.Substitute(v, r), Right: p.Right.Substitute(v, r)}
}

func (Parallel) Derive() []Transition { return nil }

func (p Parallel) Equal(other Term) bool {
	o, ok := other.(Parallel)
	return ok && p.Left.Equal(o.Left) && p.Right.Equal(o.Right)
}

func (p Parallel) String() string {
	return fmt.Sprintf("(%s | %s)", p.Left, p.Right)
}

// Recursion binds Variable in Body, standing for Body with every free
// occurrence of Variable replaced by the whole recursive term. Unfolding is
// on demand; the stored structure is always the unexpanded pair, never a
// cyclic graph.
type Recursion struct {
	Variable string
	Body     Term
}

func (Recursion) isTerm() {}

// Substitute on the bound variable replaces the entire recursive term with
// the replacement; on any other variable it recurses into the body.
func (rec Recursion) Substitute(v string, r Term) Term {
	if v == rec.Variable {
		return r
	}
	return Recursion{Variable: rec.Variable, Body: rec.Body.Substitute(v, r)}
}

// Unfold substitutes the recursive term itself for its bound variable.
func (rec Recursion) Unfold() Term {
	return rec.Body.Substitute(rec.Variable, rec)
}

func (rec Recursion) Derive() []Transition {
	var out []Transition
	for _, t := range rec.Unfold().Derive() {
		out = append(out, Transition{Source: rec, Action: t.Action, Target: t.Target})
	}
	return out
}

func (rec Recursion) Equal(other Term) bool {
	o, ok := other.(Recursion)
	return ok && rec.Variable == o.Variable && rec.Body.Equal(o.Body)
}

func (rec Recursion) String() string {
	return fmt.Sprintf("rec %s.%s", rec.Variable, rec.Body)
}

// Variable is a reference to a recursion binder. A free variable is stuck:
// it has no transitions until a substitution replaces it.
type Variable struct {
	Name string
}

func (Variable) isTerm() {}

func (x Variable) Substitute(v string, r Term) Term {
	if x.Name == v {
		return r
	}
	return x
}

func (Variable) Derive() []Transition { return nil }

func (x Variable) Equal(other Term) bool {
	o, ok := other.(Variable)
	return ok && x.Name == o.Name
}

func (x Variable) String() string { return x.Name }

// Alphabet collects every action that occurs syntactically in the term,
// silent or not. It is used to validate ACP communication functions and to
// compute refusal sets.
func Alphabet(t Term) []Action {
	seen := map[Action]struct{}{}
	var walk func(Term)
	walk = func(t Term) {
		switch v := t.(type) {
		case Prefix:
			seen[v.Action] = struct{}{}
			walk(v.Next)
		case Choice:
			walk(v.Left)
			walk(v.Right)
		case Parallel:
			walk(v.Left)
			walk(v.Right)
		case Recursion:
			walk(v.Body)
		}
	}
	walk(t)
	out := make([]Action, 0, len(seen))
	for a := range seen {
		out = append(out, a)
	}
	sortActions(out)
	return out
}
