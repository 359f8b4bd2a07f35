package sos

import "github.com/parley-dev/parley/pkg/domain"

// prefixRule: a.P -a-> P.
type prefixRule struct{}

func (prefixRule) Name() string { return "prefix" }

func (prefixRule) Applies(t domain.Term) bool {
	_, ok := t.(domain.Prefix)
	return ok
}

func (prefixRule) Derive(t domain.Term, _ Deriver) []domain.Transition {
	p := t.(domain.Prefix)
	return []domain.Transition{{Source: p, Action: p.Action, Target: p.Next}}
}

// choiceRule: P+Q offers the moves of both branches. A visible move commits
// to its branch; a silent move keeps the alternative.
type choiceRule struct{}

func (choiceRule) Name() string { return "choice" }

func (choiceRule) Applies(t domain.Term) bool {
	_, ok := t.(domain.Choice)
	return ok
}

func (choiceRule) Derive(t domain.Term, d Deriver) []domain.Transition {
	c := t.(domain.Choice)
	var out []domain.Transition
	for _, tr := range d.Transitions(c.Left) {
		target := tr.Target
		if tr.Action.Silent() {
			target = domain.Choice{Left: tr.Target, Right: c.Right}
		}
		out = append(out, domain.Transition{Source: c, Action: tr.Action, Target: target})
	}
	for _, tr := range d.Transitions(c.Right) {
		target := tr.Target
		if tr.Action.Silent() {
			target = domain.Choice{Left: c.Left, Right: tr.Target}
		}
		out = append(out, domain.Transition{Source: c, Action: tr.Action, Target: target})
	}
	return out
}

// recursionRule: rec X.P moves as its one-step unfolding does.
type recursionRule struct{}

func (recursionRule) Name() string { return "recursion" }

func (recursionRule) Applies(t domain.Term) bool {
	_, ok := t.(domain.Recursion)
	return ok
}

func (recursionRule) Derive(t domain.Term, d Deriver) []domain.Transition {
	rec := t.(domain.Recursion)
	var out []domain.Transition
	for _, tr := range d.Transitions(rec.Unfold()) {
		out = append(out, domain.Transition{Source: rec, Action: tr.Action, Target: tr.Target})
	}
	return out
}
