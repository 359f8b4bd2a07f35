package equiv

import (
	"fmt"
	"sort"
	"strings"

	"github.com/parley-dev/parley/pkg/domain"
	"github.com/parley-dev/parley/pkg/lts"
)

// CheckStrong decides strong bisimilarity of the two systems' initial states
// by partition refinement: starting from a single block, any block whose
// members disagree on their transition signature is split until a fixed
// point. Each refinement strictly grows the partition and the state count is
// finite, so the loop terminates.
func CheckStrong(a, b *lts.LTS) domain.Result {
	u := union(a, b)
	blocks := refine(u, u.strongSignature)
	if blocks[u.leftInitial] == blocks[u.rightInitial] {
		return domain.EquivalentResult("initial states share a bisimulation block")
	}
	return domain.DistinguishedByPair(
		domain.StatePair{Left: a.Initial(), Right: b.Initial()},
		"initial states end in different blocks under strong partition refinement",
	)
}

// CheckWeak decides weak bisimilarity. The relation is the strong one over
// the saturated system: a weak move on a visible action is tau*, the action,
// tau*; a weak silent move is any tau* walk, the empty one included. Because
// every state weakly reaches itself silently, silent self-loops can never
// force inequivalence.
func CheckWeak(a, b *lts.LTS) domain.Result {
	u := union(a, b)
	blocks := refine(u, u.weakSignature)
	if blocks[u.leftInitial] == blocks[u.rightInitial] {
		return domain.EquivalentResult("initial states share a weak bisimulation block")
	}
	return domain.DistinguishedByPair(
		domain.StatePair{Left: a.Initial(), Right: b.Initial()},
		"initial states end in different blocks under weak partition refinement",
	)
}

// unionSpace is the disjoint union of two systems. State identifiers are
// tagged per side so equal canonical forms from different systems stay
// distinct during refinement.
type unionSpace struct {
	left, right  *lts.LTS
	leftInitial  string
	rightInitial string
	states       []string
}

const (
	leftTag  = "L\x00"
	rightTag = "R\x00"
)

func union(a, b *lts.LTS) *unionSpace {
	u := &unionSpace{
		left:         a,
		right:        b,
		leftInitial:  leftTag + a.Initial(),
		rightInitial: rightTag + b.Initial(),
	}
	for _, s := range a.States() {
		u.states = append(u.states, leftTag+s)
	}
	for _, s := range b.States() {
		u.states = append(u.states, rightTag+s)
	}
	return u
}

func (u *unionSpace) resolve(tagged string) (*lts.LTS, string, string) {
	if strings.HasPrefix(tagged, leftTag) {
		return u.left, strings.TrimPrefix(tagged, leftTag), leftTag
	}
	return u.right, strings.TrimPrefix(tagged, rightTag), rightTag
}

// strongSignature renders the set of (action, target block) pairs a state
// offers in one step.
func (u *unionSpace) strongSignature(tagged string, block map[string]int) string {
	l, state, tag := u.resolve(tagged)
	pairs := make(map[string]struct{})
	for _, tr := range l.TransitionsFrom(state) {
		pairs[fmt.Sprintf("%s->%d", tr.Action, block[tag+tr.Target.String()])] = struct{}{}
	}
	return renderSignature(pairs)
}

// weakSignature renders the same pairs over the saturated relation.
func (u *unionSpace) weakSignature(tagged string, block map[string]int) string {
	l, state, tag := u.resolve(tagged)
	pairs := make(map[string]struct{})
	for target := range tauClosure(l, state) {
		pairs[fmt.Sprintf("%s=>%d", domain.Tau, block[tag+target])] = struct{}{}
	}
	for _, a := range l.VisibleActions() {
		for target := range weakTargets(l, state, a) {
			pairs[fmt.Sprintf("%s=>%d", a, block[tag+target])] = struct{}{}
		}
	}
	return renderSignature(pairs)
}

func renderSignature(pairs map[string]struct{}) string {
	parts := make([]string, 0, len(pairs))
	for p := range pairs {
		parts = append(parts, p)
	}
	sort.Strings(parts)
	return strings.Join(parts, "|")
}

// refine runs partition refinement to a fixed point with the given
// signature function.
func refine(u *unionSpace, signature func(string, map[string]int) string) map[string]int {
	block := make(map[string]int, len(u.states))
	for _, s := range u.states {
		block[s] = 0
	}
	count := 1

	for {
		next := make(map[string]int, len(block))
		ids := make(map[string]int)
		for _, s := range u.states {
			key := fmt.Sprintf("%d\x00%s", block[s], signature(s, block))
			id, ok := ids[key]
			if !ok {
				id = len(ids)
				ids[key] = id
			}
			next[s] = id
		}
		if len(ids) == count {
			return next
		}
		block = next
		count = len(ids)
	}
}
