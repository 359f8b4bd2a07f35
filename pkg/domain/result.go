package domain

import "fmt"

// StatePair names two states, one per compared system, by canonical form.
// It witnesses a behavioral difference found during bisimulation checking.
type StatePair struct {
	Left  string `json:"left"`
	Right string `json:"right"`
}

func (p StatePair) String() string {
	return fmt.Sprintf("(%s, %s)", p.Left, p.Right)
}

// Result is the outcome of one equivalence check.
//
// Equivalent, Inconclusive and Truncated are distinct axes. Inconclusive
// means a state ceiling stopped the checker before it could decide at all;
// callers must not read Equivalent in that case. Truncated marks a positive
// verdict from a depth-bounded checker that holds up to the configured depth:
// differences found under a bound are always real, agreement under a bound is
// agreement up to that bound.
type Result struct {
	Equivalent   bool       `json:"equivalent"`
	Inconclusive bool       `json:"inconclusive,omitempty"`
	Truncated    bool       `json:"truncated,omitempty"`
	Reason       string     `json:"reason,omitempty"`
	WitnessTrace Trace      `json:"witness_trace,omitempty"`
	WitnessPair  *StatePair `json:"witness_pair,omitempty"`
}

// Equivalent builds a positive verdict.
func EquivalentResult(reason string) Result {
	return Result{Equivalent: true, Reason: reason}
}

// DistinguishedByTrace builds a negative verdict witnessed by a trace.
func DistinguishedByTrace(t Trace, reason string) Result {
	return Result{Equivalent: false, Reason: reason, WitnessTrace: t}
}

// DistinguishedByPair builds a negative verdict witnessed by a state pair.
func DistinguishedByPair(p StatePair, reason string) Result {
	return Result{Equivalent: false, Reason: reason, WitnessPair: &p}
}

// InconclusiveResult builds a gave-up verdict.
func InconclusiveResult(reason string) Result {
	return Result{Inconclusive: true, Reason: reason}
}
