package sos

import "github.com/parley-dev/parley/pkg/domain"

// acpParallelRule implements ACP's merge. It decomposes into the classic
// three relations: the left merge of either operand (that operand must move
// first) and the communication merge driven by gamma. The two left merges
// together give free interleaving.
type acpParallelRule struct {
	gamma CommunicationFunc
}

func (acpParallelRule) Name() string { return "acp-merge" }

func (acpParallelRule) Applies(t domain.Term) bool {
	_, ok := t.(domain.Parallel)
	return ok
}

func (r acpParallelRule) Derive(t domain.Term, d Deriver) []domain.Transition {
	p := t.(domain.Parallel)
	left := d.Transitions(p.Left)
	right := d.Transitions(p.Right)

	out := r.leftMerge(p, left, false)
	out = append(out, r.leftMerge(p, right, true)...)
	out = append(out, r.communicationMerge(p, left, right)...)
	return out
}

// leftMerge contributes the moves where one operand steps first and the
// other stays put.
func (acpParallelRule) leftMerge(p domain.Parallel, moves []domain.Transition, mirrored bool) []domain.Transition {
	var out []domain.Transition
	for _, m := range moves {
		target := domain.Parallel{Left: m.Target, Right: p.Right}
		if mirrored {
			target = domain.Parallel{Left: p.Left, Right: m.Target}
		}
		out = append(out, domain.Transition{Source: p, Action: m.Action, Target: target})
	}
	return out
}

// communicationMerge contributes a joint step for every pair of moves gamma
// is defined on, with both operands advancing simultaneously.
func (r acpParallelRule) communicationMerge(p domain.Parallel, left, right []domain.Transition) []domain.Transition {
	var out []domain.Transition
	for _, lt := range left {
		for _, rt := range right {
			if a, ok := r.gamma(lt.Action, rt.Action); ok {
				out = append(out, domain.Transition{
					Source: p,
					Action: a,
					Target: domain.Parallel{Left: lt.Target, Right: rt.Target},
				})
			}
		}
	}
	return out
}
