// Package dsl offers compact combinators for building process terms.
//
// It exists for callers and tests: terms read closer to their algebraic
// notation than raw domain struct literals do.
//
//	vending := dsl.Prefix("coin", dsl.Choice(dsl.Seq("coffee"), dsl.Seq("tea")))
package dsl

import "github.com/parley-dev/parley/pkg/domain"

// Stop is the deadlocked process.
func Stop() domain.Term { return domain.Stop{} }

// Prefix performs one action and continues as next.
func Prefix(action string, next domain.Term) domain.Term {
	return domain.Prefix{Action: domain.Action(action), Next: next}
}

// Tau performs one silent step and continues as next.
func Tau(next domain.Term) domain.Term {
	return domain.Prefix{Action: domain.Tau, Next: next}
}

// Seq chains the actions into nested prefixes ending in Stop.
func Seq(actions ...string) domain.Term {
	term := domain.Term(domain.Stop{})
	for i := len(actions) - 1; i >= 0; i-- {
		term = domain.Prefix{Action: domain.Action(actions[i]), Next: term}
	}
	return term
}

// Choice offers both branches.
func Choice(left, right domain.Term) domain.Term {
	return domain.Choice{Left: left, Right: right}
}

// Parallel composes both operands concurrently.
func Parallel(left, right domain.Term) domain.Term {
	return domain.Parallel{Left: left, Right: right}
}

// Rec binds variable in body.
func Rec(variable string, body domain.Term) domain.Term {
	return domain.Recursion{Variable: variable, Body: body}
}

// Var references a recursion binder.
func Var(name string) domain.Term {
	return domain.Variable{Name: name}
}
