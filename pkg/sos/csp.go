package sos

import "github.com/parley-dev/parley/pkg/domain"

// cspParallelRule implements CSP alphabetized parallel composition. Actions
// on the synchronization alphabet fire only when every operand offers exactly
// that action, and the composition performs the same visible action (not a
// silent one). Actions outside the alphabet interleave freely. Silent steps
// are never subject to synchronization.
type cspParallelRule struct {
	alphabet map[domain.Action]bool
}

func (cspParallelRule) Name() string { return "csp-parallel" }

func (cspParallelRule) Applies(t domain.Term) bool {
	_, ok := t.(domain.Parallel)
	return ok
}

func (r cspParallelRule) Derive(t domain.Term, d Deriver) []domain.Transition {
	p := t.(domain.Parallel)
	left := d.Transitions(p.Left)
	right := d.Transitions(p.Right)

	var out []domain.Transition
	for _, lt := range left {
		if r.synchronized(lt.Action) {
			continue
		}
		out = append(out, domain.Transition{
			Source: p,
			Action: lt.Action,
			Target: domain.Parallel{Left: lt.Target, Right: p.Right},
		})
	}
	for _, rt := range right {
		if r.synchronized(rt.Action) {
			continue
		}
		out = append(out, domain.Transition{
			Source: p,
			Action: rt.Action,
			Target: domain.Parallel{Left: p.Left, Right: rt.Target},
		})
	}
	for _, lt := range left {
		if !r.synchronized(lt.Action) {
			continue
		}
		for _, rt := range right {
			if rt.Action == lt.Action {
				out = append(out, domain.Transition{
					Source: p,
					Action: lt.Action,
					Target: domain.Parallel{Left: lt.Target, Right: rt.Target},
				})
			}
		}
	}
	return out
}

func (r cspParallelRule) synchronized(a domain.Action) bool {
	return a.Visible() && r.alphabet[a]
}
