package sos

import "github.com/parley-dev/parley/pkg/domain"

// ccsParallelRule implements CCS parallel composition: free interleaving of
// either operand plus two-party synchronization. When the left side offers a
// visible action and the right side offers its complement, both advance
// together under the silent action. Interleaved and synchronized transitions
// from the same operand states coexist as nondeterministic branches.
type ccsParallelRule struct{}

func (ccsParallelRule) Name() string { return "ccs-parallel" }

func (ccsParallelRule) Applies(t domain.Term) bool {
	_, ok := t.(domain.Parallel)
	return ok
}

func (ccsParallelRule) Derive(t domain.Term, d Deriver) []domain.Transition {
	p := t.(domain.Parallel)
	left := d.Transitions(p.Left)
	right := d.Transitions(p.Right)

	var out []domain.Transition
	for _, lt := range left {
		out = append(out, domain.Transition{
			Source: p,
			Action: lt.Action,
			Target: domain.Parallel{Left: lt.Target, Right: p.Right},
		})
	}
	for _, rt := range right {
		out = append(out, domain.Transition{
			Source: p,
			Action: rt.Action,
			Target: domain.Parallel{Left: p.Left, Right: rt.Target},
		})
	}
	for _, lt := range left {
		if lt.Action.Silent() {
			continue
		}
		for _, rt := range right {
			if rt.Action == lt.Action.Complement() {
				out = append(out, domain.Transition{
					Source: p,
					Action: domain.Tau,
					Target: domain.Parallel{Left: lt.Target, Right: rt.Target},
				})
			}
		}
	}
	return out
}
