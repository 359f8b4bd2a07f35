// Package equiv implements the equivalence checkers: trace, strong and weak
// bisimulation, testing (may/must) and failures, plus failures refinement.
//
// Checkers never mutate their inputs. Trace, testing and failures checks are
// depth-bounded; the bisimulation checks run partition refinement over fully
// built transition systems. Every checker returns a domain.Result carrying
// the verdict and, when a difference is found, the witnessing trace or state
// pair.
package equiv
